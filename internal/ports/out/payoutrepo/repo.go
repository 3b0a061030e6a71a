package payoutrepo

import (
	"context"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// Repository provides access to persisted payouts, group-scoped.
type Repository interface {
	Create(ctx context.Context, p domain.Payout) error

	// NextScheduled returns the earliest payout with status=scheduled,
	// ordered by PayoutDate ascending. Returns ErrNotFound when none exists.
	NextScheduled(ctx context.Context, groupID domain.GroupID) (domain.Payout, error)
}
