package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ScheduleConfig pins all calendar math (monthly tallies, the 3-day reminder
// window, the daily run time) to one IANA zone.
type ScheduleConfig struct {
	Location *time.Location

	// ReminderHour is the local wall-clock hour of the daily reminder sweep.
	ReminderHour int
}

func LoadScheduleConfigFromEnv() (ScheduleConfig, error) {
	name := os.Getenv("TZ_NAME")
	if name == "" {
		name = "Africa/Johannesburg"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return ScheduleConfig{}, fmt.Errorf("TZ_NAME must be an IANA zone name: %w", err)
	}

	cfg := ScheduleConfig{Location: loc, ReminderHour: 9}

	if v := os.Getenv("REMINDER_HOUR"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h < 0 || h > 23 {
			return ScheduleConfig{}, fmt.Errorf("REMINDER_HOUR must be an hour 0-23, got %q", v)
		}
		cfg.ReminderHour = h
	}

	return cfg, nil
}
