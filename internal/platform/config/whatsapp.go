package config

import (
	"fmt"
	"os"
	"time"
)

// WhatsAppConfig configures the Cloud API gateway and webhook verification.
//
// These values are deployment-provided secrets; a missing credential must
// abort startup before any send attempt.
type WhatsAppConfig struct {
	// Token is the bearer credential for the Graph API.
	Token string
	// PhoneNumberID is the sender channel identifier.
	PhoneNumberID string
	// VerifyToken is the webhook subscription verification secret.
	VerifyToken string

	// APIBaseURL is the Graph API root, overridable for tests.
	APIBaseURL string

	HTTPTimeout time.Duration
}

func LoadWhatsAppConfigFromEnv() (WhatsAppConfig, error) {
	token := os.Getenv("WHATSAPP_TOKEN")
	phoneID := os.Getenv("WHATSAPP_PHONE_ID")
	verify := os.Getenv("VERIFY_TOKEN")
	if token == "" || phoneID == "" || verify == "" {
		return WhatsAppConfig{}, fmt.Errorf("missing required env vars: WHATSAPP_TOKEN, WHATSAPP_PHONE_ID, VERIFY_TOKEN")
	}

	cfg := WhatsAppConfig{
		Token:         token,
		PhoneNumberID: phoneID,
		VerifyToken:   verify,
		APIBaseURL:    "https://graph.facebook.com/v19.0",
		HTTPTimeout:   10 * time.Second,
	}

	if v := os.Getenv("GRAPH_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("WHATSAPP_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return WhatsAppConfig{}, fmt.Errorf("WHATSAPP_HTTP_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}
