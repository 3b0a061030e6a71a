package payoutrepo

import (
	"context"
	"sync"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/payoutrepo"
)

// Repo is an in-memory implementation of payoutrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	byGroup map[domain.GroupID]map[domain.PayoutID]domain.Payout
}

func NewRepo() *Repo {
	return &Repo{byGroup: make(map[domain.GroupID]map[domain.PayoutID]domain.Payout)}
}

func (r *Repo) Create(ctx context.Context, p domain.Payout) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.byGroup[p.GroupID]
	if !ok {
		group = make(map[domain.PayoutID]domain.Payout)
		r.byGroup[p.GroupID] = group
	}
	if _, ok := group[p.ID]; ok {
		return payoutrepo.ErrAlreadyExists
	}
	group[p.ID] = p
	return nil
}

func (r *Repo) NextScheduled(ctx context.Context, groupID domain.GroupID) (domain.Payout, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best domain.Payout
	found := false
	for _, p := range r.byGroup[groupID] {
		if p.Status != domain.PayoutScheduled {
			continue
		}
		if !found || p.PayoutDate.Before(best.PayoutDate) || (p.PayoutDate.Equal(best.PayoutDate) && p.ID < best.ID) {
			best = p
			found = true
		}
	}
	if !found {
		return domain.Payout{}, payoutrepo.ErrNotFound
	}
	return best, nil
}
