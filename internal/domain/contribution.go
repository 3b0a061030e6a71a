package domain

import "time"

type ContributionStatus string

const (
	ContributionPending ContributionStatus = "pending"
	ContributionPaid    ContributionStatus = "paid"
	ContributionLate    ContributionStatus = "late"
)

// Contribution is one member's payment obligation for a period.
// Lifecycle: pending -> paid or pending -> late, each at most once.
type Contribution struct {
	ID       ContributionID
	GroupID  GroupID
	MemberID MemberID

	// MemberName is the payer's name denormalized onto the record by the
	// administrative surface; may be empty (see PayerName).
	MemberName string

	Amount float64
	Status ContributionStatus

	DueDate time.Time
	// PaidDate is zero until the contribution transitions to paid.
	PaidDate time.Time

	CreatedAt time.Time
}

// PayerName returns the display name used in notifications.
func (c Contribution) PayerName() string {
	if c.MemberName == "" {
		return "A member"
	}
	return c.MemberName
}
