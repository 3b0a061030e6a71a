package reminders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	memcontrib "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/contribrepo"
	memgroup "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/grouprepo"
	memmember "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/memberrepo"
	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/gateway"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type recordingGateway struct {
	mu      sync.Mutex
	sent    map[string]string
	failFor map[string]bool
}

func (g *recordingGateway) SendText(_ context.Context, to, body string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failFor[to] {
		return errors.New("gateway rejected")
	}
	if g.sent == nil {
		g.sent = map[string]string{}
	}
	g.sent[to] = body
	return nil
}

func (g *recordingGateway) SendTemplate(context.Context, string, string, string, []gateway.TemplateComponent) error {
	return nil
}

type jobFixture struct {
	job      *Job
	gw       *recordingGateway
	groups   *memgroup.Repo
	members  *memmember.Repo
	contribs *memcontrib.Repo
	groupID  domain.GroupID
	now      time.Time
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	ctx := context.Background()

	groups := memgroup.NewRepo()
	members := memmember.NewRepo()
	contribs := memcontrib.NewRepo()
	gw := &recordingGateway{failFor: map[string]bool{}}

	// 2026-02-15 09:00 local; the window is all of 2026-02-18.
	now := time.Date(2026, time.February, 15, 9, 0, 0, 0, time.UTC)

	groupID := domain.GroupID(uuid.NewString())
	if err := groups.Create(ctx, domain.Group{ID: groupID, Name: "Sunrise Stokvel", ContributionAmount: 500}); err != nil {
		t.Fatalf("seed group: %v", err)
	}

	job := NewJob(groups, members, contribs, gw, fixedClock{now}, time.UTC,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &jobFixture{
		job: job, gw: gw,
		groups: groups, members: members, contribs: contribs,
		groupID: groupID, now: now,
	}
}

func (f *jobFixture) addMember(t *testing.T, name, phone string) domain.MemberID {
	t.Helper()
	m := domain.Member{
		ID: domain.MemberID(uuid.NewString()), GroupID: f.groupID,
		Name: name, Phone: phone,
		Role: domain.RoleOrdinary, Status: domain.MemberStatusActive,
	}
	if err := f.members.Create(context.Background(), m); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m.ID
}

func (f *jobFixture) addPending(t *testing.T, memberID domain.MemberID, due time.Time) {
	t.Helper()
	c := domain.Contribution{
		ID: domain.ContributionID(uuid.NewString()), GroupID: f.groupID,
		MemberID: memberID, Amount: 500,
		Status: domain.ContributionPending, DueDate: due, CreatedAt: f.now,
	}
	if err := f.contribs.Create(context.Background(), c); err != nil {
		t.Fatalf("seed contribution: %v", err)
	}
}

func TestRunWindowEdges(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	inStart := f.addMember(t, "Thabo Dlamini", "27821110001")
	inEnd := f.addMember(t, "Lerato Nkosi", "27821110002")
	tooSoon := f.addMember(t, "Ayanda Mokoena", "27821110003")
	tooLate := f.addMember(t, "Sipho Khumalo", "27821110004")

	day := time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC)
	f.addPending(t, inStart, day)                            // midnight on D+3: in
	f.addPending(t, inEnd, day.Add(23*time.Hour+59*time.Minute)) // 23:59 on D+3: in
	f.addPending(t, tooSoon, day.Add(-time.Minute))          // 23:59 on D+2: out
	f.addPending(t, tooLate, day.AddDate(0, 0, 1))           // midnight on D+4: out

	sent := f.job.Run(context.Background())
	if sent != 2 {
		t.Fatalf("sent=%d, want 2", sent)
	}
	if _, ok := f.gw.sent["27821110001"]; !ok {
		t.Error("no reminder for due date at window start")
	}
	if _, ok := f.gw.sent["27821110002"]; !ok {
		t.Error("no reminder for due date at window end")
	}
	if _, ok := f.gw.sent["27821110003"]; ok {
		t.Error("reminded a contribution due in 2 days")
	}
	if _, ok := f.gw.sent["27821110004"]; ok {
		t.Error("reminded a contribution due in 4 days")
	}
}

func TestRunMessageBody(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	id := f.addMember(t, "Thabo Dlamini", "27821110001")
	f.addPending(t, id, time.Date(2026, time.February, 18, 10, 0, 0, 0, time.UTC))

	if sent := f.job.Run(context.Background()); sent != 1 {
		t.Fatalf("sent=%d, want 1", sent)
	}
	got := f.gw.sent["27821110001"]
	want := "🔔 *Reminder — Sunrise Stokvel*\n\nYour R500 contribution is due on Wednesday, 18 February.\nPlease pay and send proof to your treasurer."
	if got != want {
		t.Errorf("body=%q, want %q", got, want)
	}
}

func TestRunSkipsAndContinues(t *testing.T) {
	t.Parallel()
	f := newJobFixture(t)

	due := time.Date(2026, time.February, 18, 10, 0, 0, 0, time.UTC)

	// Contribution whose member record is gone.
	f.addPending(t, domain.MemberID(uuid.NewString()), due)
	// Member with no phone.
	noPhone := f.addMember(t, "Lerato Nkosi", "")
	f.addPending(t, noPhone, due)
	// Send failure for one member must not stop the sweep.
	failing := f.addMember(t, "Ayanda Mokoena", "27821110003")
	f.gw.failFor["27821110003"] = true
	f.addPending(t, failing, due)
	ok := f.addMember(t, "Thabo Dlamini", "27821110001")
	f.addPending(t, ok, due)

	sent := f.job.Run(context.Background())
	if sent != 1 {
		t.Fatalf("sent=%d, want 1", sent)
	}
	if !strings.Contains(f.gw.sent["27821110001"], "Sunrise Stokvel") {
		t.Errorf("surviving send body=%q", f.gw.sent["27821110001"])
	}
}
