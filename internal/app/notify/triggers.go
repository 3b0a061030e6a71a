package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/events"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/clock"
	contribrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
	grouprepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
)

// Triggers turns ledger write events into group broadcasts.
type Triggers struct {
	groups     grouprepoport.Repository
	members    memberrepoport.Repository
	contribs   contribrepoport.Repository
	dispatcher *Dispatcher
	clk        clock.Clock
	loc        *time.Location
	log        *slog.Logger
}

func NewTriggers(
	groups grouprepoport.Repository,
	members memberrepoport.Repository,
	contribs contribrepoport.Repository,
	dispatcher *Dispatcher,
	clk clock.Clock,
	loc *time.Location,
	log *slog.Logger,
) *Triggers {
	return &Triggers{
		groups:     groups,
		members:    members,
		contribs:   contribs,
		dispatcher: dispatcher,
		clk:        clk,
		loc:        loc,
		log:        log,
	}
}

// HandleContributionWritten announces a contribution that just transitioned
// to paid. Writes that do not cross the pending-to-paid edge are ignored, so
// re-saving an already-paid record sends nothing.
func (t *Triggers) HandleContributionWritten(ctx context.Context, ev events.ContributionWritten) {
	after := ev.After
	if after == nil {
		return
	}
	if after.Status != domain.ContributionPaid {
		return
	}
	if ev.Before != nil && ev.Before.Status == domain.ContributionPaid {
		return
	}

	group, err := t.groups.GetByID(ctx, ev.GroupID)
	if err != nil {
		if !errors.Is(err, grouprepoport.ErrNotFound) {
			t.log.Error("load group for paid notification failed", "group_id", ev.GroupID, "err", err)
		}
		return
	}

	now := t.clk.Now().In(t.loc)
	paid, err := t.contribs.CountPaidSince(ctx, group.ID, domain.StartOfMonth(now))
	if err != nil {
		t.log.Error("count paid for notification failed", "group_id", group.ID, "err", err)
		return
	}

	body := fmt.Sprintf("✅ %s paid %s. %d/%d members have now paid for %s.",
		after.PayerName(),
		domain.FormatRand(after.Amount),
		paid, group.MemberCount,
		domain.MonthName(now))

	t.broadcastToGroup(ctx, group.ID, body)
}

// HandleMeetingCreated announces a newly scheduled meeting to the group.
func (t *Triggers) HandleMeetingCreated(ctx context.Context, ev events.MeetingCreated) {
	group, err := t.groups.GetByID(ctx, ev.GroupID)
	if err != nil {
		if !errors.Is(err, grouprepoport.ErrNotFound) {
			t.log.Error("load group for meeting notification failed", "group_id", ev.GroupID, "err", err)
		}
		return
	}

	title := ev.Meeting.Title
	if title == "" {
		title = "Monthly Meeting"
	}
	date := "TBD"
	if !ev.Meeting.Date.IsZero() {
		date = domain.FormatMeetingDate(ev.Meeting.Date.In(t.loc))
	}
	location := "TBD"
	switch {
	case ev.Meeting.LocationName != "":
		location = ev.Meeting.LocationName
	case ev.Meeting.VirtualLink != "":
		location = ev.Meeting.VirtualLink
	}

	body := fmt.Sprintf("📅 *Meeting Scheduled — %s*\n\n%s\nDate: %s\nLocation: %s\n\nReply YES or NO to RSVP.",
		group.Name, title, date, location)

	t.broadcastToGroup(ctx, group.ID, body)
}

func (t *Triggers) broadcastToGroup(ctx context.Context, groupID domain.GroupID, body string) {
	members, err := t.members.ListActive(ctx, groupID)
	if err != nil {
		t.log.Error("list active members failed", "group_id", groupID, "err", err)
		return
	}

	phones := make([]string, 0, len(members))
	for _, m := range members {
		if m.Phone == "" {
			continue
		}
		phones = append(phones, m.Phone)
	}
	t.dispatcher.Broadcast(ctx, phones, body)
}
