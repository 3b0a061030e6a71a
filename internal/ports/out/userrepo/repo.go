package userrepo

import (
	"context"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// Repository provides access to persisted users (phone -> groups bindings).
type Repository interface {
	Create(ctx context.Context, u domain.User) error

	// GetByPhone returns the user bound to the phone identity.
	// GroupIDs preserve stored order; callers resolving a single group take
	// the first entry.
	GetByPhone(ctx context.Context, phone string) (domain.User, error)
}
