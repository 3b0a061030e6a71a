package commands

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	memcontrib "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/contribrepo"
	memgroup "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/grouprepo"
	memmeeting "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/meetingrepo"
	memmember "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/memberrepo"
	mempayout "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/payoutrepo"
	memuser "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/userrepo"
	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixture struct {
	svc      *Service
	groupID  domain.GroupID
	contribs *memcontrib.Repo
	meetings *memmeeting.Repo
	payouts  *mempayout.Repo
	members  *memmember.Repo
	now      time.Time
}

const (
	chairPhone    = "27821110001"
	ordinaryPhone = "27821110002"
	strangerPhone = "27820000000"
	orphanPhone   = "27821110003"
)

// newFixture seeds one group with a chairperson, an ordinary member, and a
// linked user whose member record is missing.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := memuser.NewRepo()
	groups := memgroup.NewRepo()
	members := memmember.NewRepo()
	contribs := memcontrib.NewRepo()
	meetings := memmeeting.NewRepo()
	payouts := mempayout.NewRepo()

	now := time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)

	groupID := domain.GroupID(uuid.NewString())
	if err := groups.Create(ctx, domain.Group{
		ID:                 groupID,
		Name:               "Sunrise Stokvel",
		MemberCount:        12,
		ContributionAmount: 500,
		TotalCollected:     900,
	}); err != nil {
		t.Fatalf("seed group: %v", err)
	}

	chair := domain.Member{
		ID: domain.MemberID(uuid.NewString()), GroupID: groupID,
		Name: "Thabo Dlamini", Phone: chairPhone,
		Role: domain.RoleChairperson, Status: domain.MemberStatusActive,
	}
	ordinary := domain.Member{
		ID: domain.MemberID(uuid.NewString()), GroupID: groupID,
		Name: "Lerato Nkosi", Phone: ordinaryPhone,
		Role: domain.RoleOrdinary, Status: domain.MemberStatusActive,
	}
	for _, m := range []domain.Member{chair, ordinary} {
		if err := members.Create(ctx, m); err != nil {
			t.Fatalf("seed member: %v", err)
		}
	}

	for _, phone := range []string{chairPhone, ordinaryPhone, orphanPhone} {
		u := domain.User{
			ID:       domain.UserID(uuid.NewString()),
			Phone:    phone,
			GroupIDs: []domain.GroupID{groupID},
		}
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	svc := NewService(users, groups, members, contribs, meetings, payouts,
		fixedClock{now}, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &fixture{
		svc: svc, groupID: groupID,
		contribs: contribs, meetings: meetings, payouts: payouts, members: members,
		now: now,
	}
}

func (f *fixture) memberID(t *testing.T, phone string) domain.MemberID {
	t.Helper()
	m, err := f.members.GetByPhone(context.Background(), f.groupID, phone)
	if err != nil {
		t.Fatalf("lookup member: %v", err)
	}
	return m.ID
}

func route(f *fixture, text, phone string) string {
	return f.svc.Route(context.Background(), Parse(text, phone, "Tester"))
}

func TestRouteNotLinked(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	got := route(f, "balance", strangerPhone)
	want := "You're not linked to any stokvel group yet. Ask your chairperson to add your number."
	if got != want {
		t.Errorf("balance reply=%q, want %q", got, want)
	}

	got = route(f, "next payout", strangerPhone)
	if got != "You're not linked to any stokvel group yet." {
		t.Errorf("next payout reply=%q", got)
	}
}

func TestRouteUnknownFallsBackToHelp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	help := route(f, "help", chairPhone)
	if !strings.Contains(help, "*StokvelManager Bot Commands*") {
		t.Fatalf("help reply=%q", help)
	}
	if got := route(f, "what is this", chairPhone); got != help {
		t.Errorf("unknown reply=%q, want help text", got)
	}
	if got := route(f, "", chairPhone); got != help {
		t.Errorf("empty reply=%q, want help text", got)
	}
}

func TestBalance(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	memberID := f.memberID(t, ordinaryPhone)
	mk := func(status domain.ContributionStatus, paid time.Time) domain.Contribution {
		return domain.Contribution{
			ID: domain.ContributionID(uuid.NewString()), GroupID: f.groupID,
			MemberID: memberID, Amount: 500, Status: status,
			DueDate: f.now, PaidDate: paid, CreatedAt: f.now,
		}
	}
	// Two paid this month, one last month, one pending.
	seeds := []domain.Contribution{
		mk(domain.ContributionPaid, f.now.AddDate(0, 0, -1)),
		mk(domain.ContributionPaid, f.now.AddDate(0, 0, -2)),
		mk(domain.ContributionPaid, f.now.AddDate(0, -1, 0)),
		mk(domain.ContributionPending, time.Time{}),
	}
	for _, c := range seeds {
		if err := f.contribs.Create(ctx, c); err != nil {
			t.Fatalf("seed contribution: %v", err)
		}
	}

	got := route(f, "balance", ordinaryPhone)
	want := "📊 *Sunrise Stokvel*\nBalance: R900\n2/12 paid for February\nContribution: R500/month"
	if got != want {
		t.Errorf("reply=%q, want %q", got, want)
	}
}

func TestMyBalance(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	// "My Balance" routes on the phrase, not on the leading word.
	memberID := f.memberID(t, ordinaryPhone)

	got := route(f, "My Balance", ordinaryPhone)
	if got != "📊 *Sunrise Stokvel*\nNo contributions recorded yet." {
		t.Fatalf("empty history reply=%q", got)
	}

	paid := domain.Contribution{
		ID: domain.ContributionID(uuid.NewString()), GroupID: f.groupID,
		MemberID: memberID, Amount: 500, Status: domain.ContributionPaid,
		PaidDate:  time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		CreatedAt: f.now.AddDate(0, -1, 0),
	}
	pending := domain.Contribution{
		ID: domain.ContributionID(uuid.NewString()), GroupID: f.groupID,
		MemberID: memberID, Amount: 500, Status: domain.ContributionPending,
		DueDate: f.now.AddDate(0, 0, 10), CreatedAt: f.now,
	}
	for _, c := range []domain.Contribution{paid, pending} {
		if err := f.contribs.Create(ctx, c); err != nil {
			t.Fatalf("seed contribution: %v", err)
		}
	}

	got = route(f, "my balance", ordinaryPhone)
	want := "📊 *Your balance — Sunrise Stokvel*\n⏳ R500 — Pending\n✅ R500 — Jan 2026"
	if got != want {
		t.Errorf("reply=%q, want %q", got, want)
	}
}

func TestMyBalanceMissingMembership(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if got := route(f, "my balance", orphanPhone); got != "Could not find your membership record." {
		t.Errorf("reply=%q", got)
	}
}

func TestNextPayout(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if got := route(f, "next payout", chairPhone); got != "💰 *Sunrise Stokvel*\nNo upcoming payouts scheduled." {
		t.Fatalf("empty reply=%q", got)
	}

	p := domain.Payout{
		ID: domain.PayoutID(uuid.NewString()), GroupID: f.groupID,
		RecipientName: "Ayanda Mokoena", Amount: 6000,
		PayoutDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.PayoutScheduled,
	}
	if err := f.payouts.Create(ctx, p); err != nil {
		t.Fatalf("seed payout: %v", err)
	}

	got := route(f, "next payout", chairPhone)
	want := "💰 *Next Payout — Sunrise Stokvel*\nRecipient: Ayanda Mokoena\nAmount: " +
		domain.FormatRand(6000) + "\nDate: 1 March 2026"
	if got != want {
		t.Errorf("reply=%q, want %q", got, want)
	}
}

func TestNextMeeting(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if got := route(f, "next meeting", chairPhone); got != "📅 *Sunrise Stokvel*\nNo upcoming meetings scheduled." {
		t.Fatalf("empty reply=%q", got)
	}

	m := domain.Meeting{
		ID: domain.MeetingID(uuid.NewString()), GroupID: f.groupID,
		Title: "March Planning",
		Date:  time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC),
	}
	if err := f.meetings.Create(ctx, m); err != nil {
		t.Fatalf("seed meeting: %v", err)
	}

	got := route(f, "next meeting", chairPhone)
	want := "📅 *Next Meeting — Sunrise Stokvel*\nMarch Planning\nDate: Sat, 7 March, 10:00\nLocation: TBD"
	if got != want {
		t.Errorf("reply=%q, want %q", got, want)
	}
}

func TestRemind(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if got := route(f, "remind", ordinaryPhone); got != "⚠️ Only the chairperson or treasurer can send reminders." {
		t.Errorf("ordinary reply=%q", got)
	}

	got := route(f, "remind", chairPhone)
	want := "🔔 *Payment Reminder — Sunrise Stokvel*\n\nYour R500 contribution is due. Please pay as soon as possible and send proof of payment to the treasurer."
	if got != want {
		t.Errorf("chairperson reply=%q, want %q", got, want)
	}
}
