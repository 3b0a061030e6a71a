package events

import (
	"context"
	"testing"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()

	b := NewBus()
	var order []int
	b.OnReminderTick(func(context.Context, ReminderTick) { order = append(order, 1) })
	b.OnReminderTick(func(context.Context, ReminderTick) { order = append(order, 2) })

	b.PublishReminderTick(context.Background(), ReminderTick{Now: time.Unix(0, 0)})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("delivery order=%v, want [1 2]", order)
	}
}

func TestBus_PublishWithoutHandlersIsNoOp(t *testing.T) {
	t.Parallel()

	b := NewBus()
	b.PublishContributionWritten(context.Background(), ContributionWritten{GroupID: domain.GroupID("g1")})
	b.PublishMeetingCreated(context.Background(), MeetingCreated{GroupID: domain.GroupID("g1")})
}
