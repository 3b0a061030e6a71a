package domain

import "time"

// Meeting is a scheduled group meeting. Immutable after creation for
// notification purposes: only its creation is announced.
type Meeting struct {
	ID      MeetingID
	GroupID GroupID

	Title string
	// Date is the scheduled date/time; zero means not yet set ("TBD").
	Date time.Time

	// LocationName is a physical venue; VirtualLink a call URL. Either or
	// both may be empty.
	LocationName string
	VirtualLink  string

	CreatedAt time.Time
}
