package contribrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
)

// Repo is an in-memory implementation of contribrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	byGroup map[domain.GroupID]map[domain.ContributionID]domain.Contribution
}

func NewRepo() *Repo {
	return &Repo{byGroup: make(map[domain.GroupID]map[domain.ContributionID]domain.Contribution)}
}

func (r *Repo) Create(ctx context.Context, c domain.Contribution) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.byGroup[c.GroupID]
	if !ok {
		group = make(map[domain.ContributionID]domain.Contribution)
		r.byGroup[c.GroupID] = group
	}
	if _, ok := group[c.ID]; ok {
		return contribrepo.ErrAlreadyExists
	}
	group[c.ID] = c
	return nil
}

func (r *Repo) CountPaidSince(ctx context.Context, groupID domain.GroupID, since time.Time) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, c := range r.byGroup[groupID] {
		if c.Status != domain.ContributionPaid {
			continue
		}
		if c.PaidDate.Before(since) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *Repo) ListRecentByMember(ctx context.Context, groupID domain.GroupID, memberID domain.MemberID, limit int) ([]domain.Contribution, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Contribution, 0)
	for _, c := range r.byGroup[groupID] {
		if c.MemberID == memberID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repo) ListPendingDueBetween(ctx context.Context, groupID domain.GroupID, start, end time.Time) ([]domain.Contribution, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Contribution, 0)
	for _, c := range r.byGroup[groupID] {
		if c.Status != domain.ContributionPending {
			continue
		}
		// start inclusive, end exclusive.
		if c.DueDate.Before(start) || !c.DueDate.Before(end) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}
