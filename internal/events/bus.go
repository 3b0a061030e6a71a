// Package events carries typed state-change events from whatever runtime
// observes ledger writes to the handlers that react to them. The handlers
// never depend on how the platform discovers or invokes them.
package events

import (
	"context"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// ContributionWritten describes one write to a contribution record.
// Before is nil on create; After is nil on delete.
type ContributionWritten struct {
	GroupID domain.GroupID
	Before  *domain.Contribution
	After   *domain.Contribution
}

// MeetingCreated fires once when a meeting record is created.
type MeetingCreated struct {
	GroupID domain.GroupID
	Meeting domain.Meeting
}

// ReminderTick fires once per scheduled daily reminder run.
type ReminderTick struct {
	Now time.Time
}

// Bus delivers events to registered handlers, synchronously and in
// registration order. Handlers own their error handling and must not panic
// across the bus boundary.
//
// Registration happens during wiring, before any publish; the bus is
// read-only afterwards, so no locking is needed.
type Bus struct {
	contributionWritten []func(context.Context, ContributionWritten)
	meetingCreated      []func(context.Context, MeetingCreated)
	reminderTick        []func(context.Context, ReminderTick)
}

func NewBus() *Bus { return &Bus{} }

func (b *Bus) OnContributionWritten(fn func(context.Context, ContributionWritten)) {
	b.contributionWritten = append(b.contributionWritten, fn)
}

func (b *Bus) OnMeetingCreated(fn func(context.Context, MeetingCreated)) {
	b.meetingCreated = append(b.meetingCreated, fn)
}

func (b *Bus) OnReminderTick(fn func(context.Context, ReminderTick)) {
	b.reminderTick = append(b.reminderTick, fn)
}

func (b *Bus) PublishContributionWritten(ctx context.Context, ev ContributionWritten) {
	for _, fn := range b.contributionWritten {
		fn(ctx, ev)
	}
}

func (b *Bus) PublishMeetingCreated(ctx context.Context, ev MeetingCreated) {
	for _, fn := range b.meetingCreated {
		fn(ctx, ev)
	}
}

func (b *Bus) PublishReminderTick(ctx context.Context, ev ReminderTick) {
	for _, fn := range b.reminderTick {
		fn(ctx, ev)
	}
}
