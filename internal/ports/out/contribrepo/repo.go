package contribrepo

import (
	"context"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// Repository provides access to persisted contributions, group-scoped.
type Repository interface {
	Create(ctx context.Context, c domain.Contribution) error

	// CountPaidSince counts contributions with status=paid whose PaidDate is
	// at or after since. Used for the monthly "X/Y paid" tallies.
	CountPaidSince(ctx context.Context, groupID domain.GroupID, since time.Time) (int, error)

	// ListRecentByMember returns up to limit contributions for a member,
	// newest first by CreatedAt.
	ListRecentByMember(ctx context.Context, groupID domain.GroupID, memberID domain.MemberID, limit int) ([]domain.Contribution, error)

	// ListPendingDueBetween returns pending contributions with
	// start <= DueDate < end, ordered by DueDate ascending.
	ListPendingDueBetween(ctx context.Context, groupID domain.GroupID, start, end time.Time) ([]domain.Contribution, error)
}
