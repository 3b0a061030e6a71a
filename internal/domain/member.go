package domain

import "time"

type MemberRole string

const (
	RoleChairperson MemberRole = "chairperson"
	RoleTreasurer   MemberRole = "treasurer"
	RoleOrdinary    MemberRole = "ordinary"
)

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// Member is one participant in a group. Only active members receive
// broadcast notifications.
type Member struct {
	ID      MemberID
	GroupID GroupID

	Name  string
	Phone string

	Role   MemberRole
	Status MemberStatus

	CreatedAt time.Time
}

// CanSendReminders reports whether the member may use the remind command.
func (m Member) CanSendReminders() bool {
	return m.Role == RoleChairperson || m.Role == RoleTreasurer
}
