package grouprepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
)

// Repo is an in-memory implementation of grouprepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.GroupID]domain.Group
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.GroupID]domain.Group)}
}

func (r *Repo) Create(ctx context.Context, g domain.Group) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[g.ID]; ok {
		return grouprepo.ErrAlreadyExists
	}
	r.byID[g.ID] = g
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.GroupID) (domain.Group, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return domain.Group{}, grouprepo.ErrNotFound
	}
	return g, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Group, 0, len(r.byID))
	for _, g := range r.byID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		ni := strings.ToLower(out[i].Name)
		nj := strings.ToLower(out[j].Name)
		if ni == nj {
			return out[i].ID < out[j].ID
		}
		return ni < nj
	})
	return out, nil
}
