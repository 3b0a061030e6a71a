package grouprepo

import (
	"context"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// Repository provides access to persisted groups.
//
// Groups are mutated by a separate administrative surface; the bot only
// creates records in tests/seeding and otherwise reads.
type Repository interface {
	Create(ctx context.Context, g domain.Group) error

	GetByID(ctx context.Context, id domain.GroupID) (domain.Group, error)

	// List returns all groups. Used by the daily reminder sweep.
	List(ctx context.Context) ([]domain.Group, error)
}
