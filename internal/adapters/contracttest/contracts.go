// Package contracttest holds port contract suites shared by every storage
// backend. Each adapter package runs the suite for the port it implements,
// so memory and mongo stay behaviorally interchangeable.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	contribrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
	grouprepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
	meetingrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
	payoutrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/payoutrepo"
	userrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/userrepo"
)

type CleanupFunc = func()

type GroupRepoFactory func(t *testing.T) (grouprepoport.Repository, CleanupFunc)
type MemberRepoFactory func(t *testing.T) (memberrepoport.Repository, CleanupFunc)
type ContribRepoFactory func(t *testing.T) (contribrepoport.Repository, CleanupFunc)
type MeetingRepoFactory func(t *testing.T) (meetingrepoport.Repository, CleanupFunc)
type PayoutRepoFactory func(t *testing.T) (payoutrepoport.Repository, CleanupFunc)
type UserRepoFactory func(t *testing.T) (userrepoport.Repository, CleanupFunc)

func RunGroupRepo(t *testing.T, newRepo GroupRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	id := domain.GroupID(uuid.NewString())
	g := domain.Group{
		ID:                 id,
		Name:               "Masibambane Savings Club",
		MemberCount:        12,
		ContributionAmount: 500,
		TotalCollected:     42000,
		CreatedAt:          time.Unix(1000, 0).UTC(),
	}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, g); !errors.Is(err, grouprepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != g.Name || got.MemberCount != 12 || got.ContributionAmount != 500 {
		t.Fatalf("GetByID=%+v", got)
	}

	if _, err := repo.GetByID(ctx, domain.GroupID(uuid.NewString())); !errors.Is(err, grouprepoport.ErrNotFound) {
		t.Fatalf("GetByID missing err=%v, want ErrNotFound", err)
	}

	// Deterministic ordering by name.
	b := domain.Group{ID: domain.GroupID(uuid.NewString()), Name: "Abafazi Circle"}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	gs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(gs) < 2 || gs[0].Name != "Abafazi Circle" {
		t.Fatalf("unexpected ordering: %#v", gs)
	}
}

func RunMemberRepo(t *testing.T, newRepo MemberRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	groupID := domain.GroupID(uuid.NewString())
	otherGroup := domain.GroupID(uuid.NewString())

	thabo := domain.Member{
		ID:      domain.MemberID(uuid.NewString()),
		GroupID: groupID,
		Name:    "Thabo Dlamini",
		Phone:   "27821110001",
		Role:    domain.RoleChairperson,
		Status:  domain.MemberStatusActive,
	}
	if err := repo.Create(ctx, thabo); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, thabo); !errors.Is(err, memberrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, groupID, thabo.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != thabo.Name || got.Role != domain.RoleChairperson {
		t.Fatalf("GetByID=%+v", got)
	}
	// Lookups are group-scoped.
	if _, err := repo.GetByID(ctx, otherGroup, thabo.ID); !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("GetByID wrong group err=%v, want ErrNotFound", err)
	}

	if _, err := repo.GetByPhone(ctx, groupID, "27821110001"); err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	if _, err := repo.GetByPhone(ctx, groupID, "27820000000"); !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("GetByPhone missing err=%v, want ErrNotFound", err)
	}

	// ListActive filters inactive members and orders by name.
	inactive := domain.Member{
		ID:      domain.MemberID(uuid.NewString()),
		GroupID: groupID,
		Name:    "Ayanda Mokoena",
		Phone:   "27821110002",
		Role:    domain.RoleOrdinary,
		Status:  domain.MemberStatusInactive,
	}
	lerato := domain.Member{
		ID:      domain.MemberID(uuid.NewString()),
		GroupID: groupID,
		Name:    "Lerato Nkosi",
		Phone:   "27821110003",
		Role:    domain.RoleTreasurer,
		Status:  domain.MemberStatusActive,
	}
	if err := repo.Create(ctx, inactive); err != nil {
		t.Fatalf("Create inactive: %v", err)
	}
	if err := repo.Create(ctx, lerato); err != nil {
		t.Fatalf("Create lerato: %v", err)
	}

	active, err := repo.ListActive(ctx, groupID)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 || active[0].Name != "Lerato Nkosi" || active[1].Name != "Thabo Dlamini" {
		t.Fatalf("ListActive=%#v", active)
	}
}

func RunContribRepo(t *testing.T, newRepo ContribRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	groupID := domain.GroupID(uuid.NewString())
	memberID := domain.MemberID(uuid.NewString())
	base := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	mk := func(status domain.ContributionStatus, due, paid, created time.Time) domain.Contribution {
		return domain.Contribution{
			ID:        domain.ContributionID(uuid.NewString()),
			GroupID:   groupID,
			MemberID:  memberID,
			Amount:    500,
			Status:    status,
			DueDate:   due,
			PaidDate:  paid,
			CreatedAt: created,
		}
	}

	paidThisMonth := mk(domain.ContributionPaid, base, base.AddDate(0, 0, 3), base.AddDate(0, 0, 1))
	paidLastMonth := mk(domain.ContributionPaid, base.AddDate(0, -1, 0), base.AddDate(0, -1, 3), base.AddDate(0, -1, 1))
	pendingInWindow := mk(domain.ContributionPending, base.AddDate(0, 0, 10), time.Time{}, base.AddDate(0, 0, 2))
	pendingOutside := mk(domain.ContributionPending, base.AddDate(0, 0, 20), time.Time{}, base.AddDate(0, 0, 3))

	for _, c := range []domain.Contribution{paidThisMonth, paidLastMonth, pendingInWindow, pendingOutside} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, paidThisMonth); !errors.Is(err, contribrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	n, err := repo.CountPaidSince(ctx, groupID, base)
	if err != nil {
		t.Fatalf("CountPaidSince: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountPaidSince=%d, want 1", n)
	}

	recent, err := repo.ListRecentByMember(ctx, groupID, memberID, 2)
	if err != nil {
		t.Fatalf("ListRecentByMember: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("ListRecentByMember len=%d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].CreatedAt.Before(recent[1].CreatedAt) {
		t.Fatalf("ListRecentByMember not newest-first: %v then %v", recent[0].CreatedAt, recent[1].CreatedAt)
	}

	// Window is [start, end): due date at start included, at end excluded.
	start := base.AddDate(0, 0, 10)
	end := base.AddDate(0, 0, 11)
	due, err := repo.ListPendingDueBetween(ctx, groupID, start, end)
	if err != nil {
		t.Fatalf("ListPendingDueBetween: %v", err)
	}
	if len(due) != 1 || due[0].ID != pendingInWindow.ID {
		t.Fatalf("ListPendingDueBetween=%#v", due)
	}
	due, err = repo.ListPendingDueBetween(ctx, groupID, end, end.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListPendingDueBetween: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("ListPendingDueBetween past window len=%d, want 0", len(due))
	}
}

func RunMeetingRepo(t *testing.T, newRepo MeetingRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	groupID := domain.GroupID(uuid.NewString())
	now := time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)

	if _, err := repo.NextAfter(ctx, groupID, now); !errors.Is(err, meetingrepoport.ErrNotFound) {
		t.Fatalf("NextAfter empty err=%v, want ErrNotFound", err)
	}

	past := domain.Meeting{ID: domain.MeetingID(uuid.NewString()), GroupID: groupID, Title: "January Meeting", Date: now.AddDate(0, -1, 0)}
	nearer := domain.Meeting{ID: domain.MeetingID(uuid.NewString()), GroupID: groupID, Title: "March Meeting", Date: now.AddDate(0, 0, 14)}
	farther := domain.Meeting{ID: domain.MeetingID(uuid.NewString()), GroupID: groupID, Title: "April Meeting", Date: now.AddDate(0, 2, 0)}
	for _, m := range []domain.Meeting{past, farther, nearer} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, past); !errors.Is(err, meetingrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.NextAfter(ctx, groupID, now)
	if err != nil {
		t.Fatalf("NextAfter: %v", err)
	}
	if got.ID != nearer.ID {
		t.Fatalf("NextAfter=%+v, want %q", got, nearer.Title)
	}
}

func RunPayoutRepo(t *testing.T, newRepo PayoutRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	groupID := domain.GroupID(uuid.NewString())
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	if _, err := repo.NextScheduled(ctx, groupID); !errors.Is(err, payoutrepoport.ErrNotFound) {
		t.Fatalf("NextScheduled empty err=%v, want ErrNotFound", err)
	}

	completed := domain.Payout{ID: domain.PayoutID(uuid.NewString()), GroupID: groupID, RecipientName: "Ayanda", Amount: 6000, PayoutDate: base, Status: domain.PayoutCompleted}
	later := domain.Payout{ID: domain.PayoutID(uuid.NewString()), GroupID: groupID, RecipientName: "Thabo", Amount: 6000, PayoutDate: base.AddDate(0, 2, 0), Status: domain.PayoutScheduled}
	sooner := domain.Payout{ID: domain.PayoutID(uuid.NewString()), GroupID: groupID, RecipientName: "Lerato", Amount: 6000, PayoutDate: base.AddDate(0, 1, 0), Status: domain.PayoutScheduled}
	for _, p := range []domain.Payout{completed, later, sooner} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, completed); !errors.Is(err, payoutrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.NextScheduled(ctx, groupID)
	if err != nil {
		t.Fatalf("NextScheduled: %v", err)
	}
	if got.RecipientName != "Lerato" {
		t.Fatalf("NextScheduled=%+v, want Lerato", got)
	}
}

func RunUserRepo(t *testing.T, newRepo UserRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	g1 := domain.GroupID(uuid.NewString())
	g2 := domain.GroupID(uuid.NewString())
	u := domain.User{
		ID:       domain.UserID(uuid.NewString()),
		Phone:    "27829990001",
		GroupIDs: []domain.GroupID{g1, g2},
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, u); !errors.Is(err, userrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByPhone(ctx, "27829990001")
	if err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	// Stored order is preserved; resolution semantics take the first group.
	if len(got.GroupIDs) != 2 || got.GroupIDs[0] != g1 {
		t.Fatalf("GetByPhone GroupIDs=%v, want first=%v", got.GroupIDs, g1)
	}

	if _, err := repo.GetByPhone(ctx, "27820000000"); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByPhone missing err=%v, want ErrNotFound", err)
	}
}
