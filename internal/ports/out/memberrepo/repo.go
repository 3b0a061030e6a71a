package memberrepo

import (
	"context"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// Repository provides access to persisted members. Members live under their
// owning group, so every lookup is group-scoped.
type Repository interface {
	Create(ctx context.Context, m domain.Member) error

	GetByID(ctx context.Context, groupID domain.GroupID, id domain.MemberID) (domain.Member, error)

	// GetByPhone finds the member record for a phone identity within a group.
	GetByPhone(ctx context.Context, groupID domain.GroupID, phone string) (domain.Member, error)

	// ListActive returns the group's active members, ordered by name
	// ascending to keep broadcast behavior deterministic.
	ListActive(ctx context.Context, groupID domain.GroupID) ([]domain.Member, error)
}
