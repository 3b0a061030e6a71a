package userrepo

import (
	"context"
	"sync"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/userrepo"
)

// Repo is an in-memory implementation of userrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu        sync.RWMutex
	byID      map[domain.UserID]domain.User
	idByPhone map[string]domain.UserID
}

func NewRepo() *Repo {
	return &Repo{
		byID:      make(map[domain.UserID]domain.User),
		idByPhone: make(map[string]domain.UserID),
	}
}

func (r *Repo) Create(ctx context.Context, u domain.User) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; ok {
		return userrepo.ErrAlreadyExists
	}
	if _, ok := r.idByPhone[u.Phone]; ok {
		return userrepo.ErrAlreadyExists
	}
	r.byID[u.ID] = cloneUser(u)
	r.idByPhone[u.Phone] = u.ID
	return nil
}

func (r *Repo) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByPhone[phone]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	return cloneUser(u), nil
}

func cloneUser(u domain.User) domain.User {
	out := u
	if u.GroupIDs != nil {
		out.GroupIDs = append([]domain.GroupID(nil), u.GroupIDs...)
	}
	return out
}
