// Package whatsapp sends messages through the WhatsApp Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/stokvelmanager/whatsapp-bot/internal/platform/config"
	"github.com/stokvelmanager/whatsapp-bot/internal/platform/metrics"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/gateway"
)

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type templatePayload struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Template         templateBody `json:"template"`
}

type templateBody struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components,omitempty"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templateComponent struct {
	Type       string              `json:"type"`
	Parameters []templateParameter `json:"parameters,omitempty"`
}

type templateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Sender implements gateway.Gateway against the Graph API messages endpoint.
type Sender struct {
	client   *http.Client
	endpoint string
	token    string
	log      *slog.Logger
}

func NewSender(cfg config.WhatsAppConfig, log *slog.Logger) *Sender {
	return &Sender{
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
		endpoint: fmt.Sprintf("%s/%s/messages", cfg.APIBaseURL, cfg.PhoneNumberID),
		token:    cfg.Token,
		log:      log,
	}
}

func (s *Sender) SendText(ctx context.Context, to, body string) error {
	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	}
	return s.post(ctx, payload)
}

func (s *Sender) SendTemplate(ctx context.Context, to, name, languageCode string, components []gateway.TemplateComponent) error {
	tpl := templateBody{
		Name:     name,
		Language: templateLanguage{Code: languageCode},
	}
	for _, c := range components {
		tc := templateComponent{Type: c.Type}
		for _, p := range c.Parameters {
			tc.Parameters = append(tc.Parameters, templateParameter{Type: p.Type, Text: p.Text})
		}
		tpl.Components = append(tpl.Components, tc)
	}

	payload := templatePayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template:         tpl,
	}
	return s.post(ctx, payload)
}

func (s *Sender) post(ctx context.Context, payload any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal message payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("build message request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.MessagesSent.WithLabelValues("error").Inc()
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Graph error bodies carry the useful diagnostics; keep them short.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		metrics.MessagesSent.WithLabelValues("error").Inc()
		s.log.Warn("whatsapp send rejected", "status", resp.StatusCode, "body", string(detail))
		return fmt.Errorf("send message: status %d", resp.StatusCode)
	}

	metrics.MessagesSent.WithLabelValues("ok").Inc()
	return nil
}
