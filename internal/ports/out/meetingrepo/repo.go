package meetingrepo

import (
	"context"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// Repository provides access to persisted meetings, group-scoped.
type Repository interface {
	Create(ctx context.Context, m domain.Meeting) error

	// NextAfter returns the earliest meeting with Date >= t.
	// Returns ErrNotFound when no such meeting exists.
	NextAfter(ctx context.Context, groupID domain.GroupID, t time.Time) (domain.Meeting, error)
}
