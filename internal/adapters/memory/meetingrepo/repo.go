package meetingrepo

import (
	"context"
	"sync"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
)

// Repo is an in-memory implementation of meetingrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	byGroup map[domain.GroupID]map[domain.MeetingID]domain.Meeting
}

func NewRepo() *Repo {
	return &Repo{byGroup: make(map[domain.GroupID]map[domain.MeetingID]domain.Meeting)}
}

func (r *Repo) Create(ctx context.Context, m domain.Meeting) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	group, ok := r.byGroup[m.GroupID]
	if !ok {
		group = make(map[domain.MeetingID]domain.Meeting)
		r.byGroup[m.GroupID] = group
	}
	if _, ok := group[m.ID]; ok {
		return meetingrepo.ErrAlreadyExists
	}
	group[m.ID] = m
	return nil
}

func (r *Repo) NextAfter(ctx context.Context, groupID domain.GroupID, t time.Time) (domain.Meeting, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best domain.Meeting
	found := false
	for _, m := range r.byGroup[groupID] {
		if m.Date.IsZero() || m.Date.Before(t) {
			continue
		}
		if !found || m.Date.Before(best.Date) || (m.Date.Equal(best.Date) && m.ID < best.ID) {
			best = m
			found = true
		}
	}
	if !found {
		return domain.Meeting{}, meetingrepo.ErrNotFound
	}
	return best, nil
}
