package domain

import "time"

// Group is a rotating savings circle ("stokvel").
type Group struct {
	ID   GroupID
	Name string

	// MemberCount is maintained by the administrative surface that adds and
	// removes members; the bot reads it, it never recomputes it.
	MemberCount int

	// ContributionAmount is the monthly contribution per member, in rand.
	ContributionAmount float64

	// TotalCollected is the running total collected for the group, in rand.
	TotalCollected float64

	CreatedAt time.Time
}
