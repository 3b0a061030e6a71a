// Package reminders runs the daily contribution reminder sweep.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/platform/metrics"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/clock"
	contribrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/gateway"
	grouprepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
)

// reminderLeadDays is how many calendar days before the due date the
// reminder goes out.
const reminderLeadDays = 3

// Job sweeps every group for pending contributions due in exactly
// reminderLeadDays calendar days and sends each payer an individual
// reminder.
type Job struct {
	groups   grouprepoport.Repository
	members  memberrepoport.Repository
	contribs contribrepoport.Repository
	gw       gateway.Gateway
	clk      clock.Clock
	loc      *time.Location
	log      *slog.Logger
}

func NewJob(
	groups grouprepoport.Repository,
	members memberrepoport.Repository,
	contribs contribrepoport.Repository,
	gw gateway.Gateway,
	clk clock.Clock,
	loc *time.Location,
	log *slog.Logger,
) *Job {
	return &Job{
		groups:   groups,
		members:  members,
		contribs: contribs,
		gw:       gw,
		clk:      clk,
		loc:      loc,
		log:      log,
	}
}

// Run executes one sweep and returns the number of reminders sent. A failed
// send never aborts the sweep; the error is logged and the scan continues.
func (j *Job) Run(ctx context.Context) int {
	now := j.clk.Now().In(j.loc)
	start := domain.StartOfDay(now.AddDate(0, 0, reminderLeadDays))
	end := start.AddDate(0, 0, 1)

	groups, err := j.groups.List(ctx)
	if err != nil {
		j.log.Error("reminder sweep: list groups failed", "err", err)
		return 0
	}

	sent := 0
	for _, group := range groups {
		due, err := j.contribs.ListPendingDueBetween(ctx, group.ID, start, end)
		if err != nil {
			j.log.Error("reminder sweep: list due contributions failed", "group_id", group.ID, "err", err)
			continue
		}

		for _, c := range due {
			member, err := j.members.GetByID(ctx, group.ID, c.MemberID)
			if errors.Is(err, memberrepoport.ErrNotFound) {
				j.log.Warn("reminder sweep: member record missing", "group_id", group.ID, "member_id", c.MemberID)
				continue
			}
			if err != nil {
				j.log.Error("reminder sweep: load member failed", "group_id", group.ID, "member_id", c.MemberID, "err", err)
				continue
			}
			if member.Phone == "" {
				j.log.Warn("reminder sweep: member has no phone", "group_id", group.ID, "member_id", member.ID)
				continue
			}

			body := fmt.Sprintf("🔔 *Reminder — %s*\n\nYour %s contribution is due on %s.\nPlease pay and send proof to your treasurer.",
				group.Name,
				domain.FormatRand(c.Amount),
				domain.FormatDueDate(c.DueDate.In(j.loc)))

			if err := j.gw.SendText(ctx, member.Phone, body); err != nil {
				j.log.Warn("reminder sweep: send failed", "phone", member.Phone, "err", err)
				continue
			}
			sent++
			metrics.RemindersSent.Inc()
		}
	}

	j.log.Info("reminder sweep complete", "sent", sent, "window_start", start, "window_end", end)
	return sent
}
