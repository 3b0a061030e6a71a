package reminders

import (
	"context"
	"log/slog"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/events"
)

// Scheduler publishes a ReminderTick once a day at a fixed local wall-clock
// hour. The tick carries the wall time; subscribers do the sweeping.
type Scheduler struct {
	bus  *events.Bus
	loc  *time.Location
	hour int
	log  *slog.Logger
}

func NewScheduler(bus *events.Bus, loc *time.Location, hour int, log *slog.Logger) *Scheduler {
	return &Scheduler{bus: bus, loc: loc, hour: hour, log: log}
}

// Run blocks until ctx is cancelled, firing at the configured hour each day.
// The next fire time is recomputed after every tick, so DST transitions in
// the configured zone shift the wall-clock time, not the interval.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.nextRun(time.Now().In(s.loc))
		s.log.Info("reminder scheduler sleeping", "next_run", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("reminder scheduler stopped")
			return
		case now := <-timer.C:
			s.bus.PublishReminderTick(ctx, events.ReminderTick{Now: now})
		}
	}
}

// nextRun returns the next occurrence of the configured hour strictly after
// now.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
