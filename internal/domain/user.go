package domain

// User binds a phone identity to the groups it belongs to. A phone may
// belong to multiple groups; command handling resolves to the first entry
// of GroupIDs (stored order).
type User struct {
	ID    UserID
	Phone string

	GroupIDs []GroupID
}
