package reminders

import (
	"testing"
	"time"
)

func TestNextRun(t *testing.T) {
	t.Parallel()

	loc := time.UTC
	s := &Scheduler{loc: loc, hour: 9}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"before the hour fires today",
			time.Date(2026, time.February, 15, 8, 30, 0, 0, loc),
			time.Date(2026, time.February, 15, 9, 0, 0, 0, loc),
		},
		{
			"exactly on the hour fires tomorrow",
			time.Date(2026, time.February, 15, 9, 0, 0, 0, loc),
			time.Date(2026, time.February, 16, 9, 0, 0, 0, loc),
		},
		{
			"after the hour fires tomorrow",
			time.Date(2026, time.February, 15, 14, 0, 0, 0, loc),
			time.Date(2026, time.February, 16, 9, 0, 0, 0, loc),
		},
		{
			"month boundary",
			time.Date(2026, time.February, 28, 10, 0, 0, 0, loc),
			time.Date(2026, time.March, 1, 9, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.nextRun(tt.now); !got.Equal(tt.want) {
				t.Errorf("nextRun(%v)=%v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
