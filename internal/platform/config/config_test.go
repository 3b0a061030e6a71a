package config

import (
	"strings"
	"testing"
)

func TestLoadWhatsAppConfigFromEnv_RequiresCredentials(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_ID", "")
	t.Setenv("VERIFY_TOKEN", "")

	_, err := LoadWhatsAppConfigFromEnv()
	if err == nil {
		t.Fatalf("expected error for missing credentials")
	}
	if !strings.Contains(err.Error(), "WHATSAPP_TOKEN") {
		t.Fatalf("error should name the missing vars, got %v", err)
	}
}

func TestLoadWhatsAppConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "tok")
	t.Setenv("WHATSAPP_PHONE_ID", "123")
	t.Setenv("VERIFY_TOKEN", "secret")
	t.Setenv("GRAPH_API_URL", "")
	t.Setenv("WHATSAPP_HTTP_TIMEOUT", "")

	cfg, err := LoadWhatsAppConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadWhatsAppConfigFromEnv() err=%v", err)
	}
	if cfg.APIBaseURL != "https://graph.facebook.com/v19.0" {
		t.Fatalf("APIBaseURL=%q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout.Seconds() != 10 {
		t.Fatalf("HTTPTimeout=%v", cfg.HTTPTimeout)
	}
}

func TestLoadScheduleConfigFromEnv_DefaultsToJohannesburg(t *testing.T) {
	t.Setenv("TZ_NAME", "")
	t.Setenv("REMINDER_HOUR", "")

	cfg, err := LoadScheduleConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadScheduleConfigFromEnv() err=%v", err)
	}
	if cfg.Location.String() != "Africa/Johannesburg" {
		t.Fatalf("Location=%v", cfg.Location)
	}
	if cfg.ReminderHour != 9 {
		t.Fatalf("ReminderHour=%d", cfg.ReminderHour)
	}
}

func TestLoadScheduleConfigFromEnv_RejectsBadHour(t *testing.T) {
	t.Setenv("REMINDER_HOUR", "25")

	if _, err := LoadScheduleConfigFromEnv(); err == nil {
		t.Fatalf("expected error for hour out of range")
	}
}
