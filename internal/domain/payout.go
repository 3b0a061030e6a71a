package domain

import "time"

type PayoutStatus string

const (
	PayoutScheduled PayoutStatus = "scheduled"
	PayoutCompleted PayoutStatus = "completed"
	PayoutCancelled PayoutStatus = "cancelled"
)

// Payout is a scheduled disbursement of pooled funds to one member.
type Payout struct {
	ID      PayoutID
	GroupID GroupID

	RecipientName string
	Amount        float64

	// PayoutDate is the scheduled disbursement date; zero means "TBD".
	PayoutDate time.Time

	Status PayoutStatus
}
