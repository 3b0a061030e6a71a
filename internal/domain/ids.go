package domain

// GroupID is an internal identifier for a stokvel group record.
type GroupID string

// MemberID is an internal identifier for a member record within a group.
type MemberID string

// ContributionID is an internal identifier for a contribution record.
type ContributionID string

// MeetingID is an internal identifier for a meeting record.
type MeetingID string

// PayoutID is an internal identifier for a payout record.
type PayoutID string

// UserID is an internal identifier for a user record.
type UserID string
