package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stokvelmanager/whatsapp-bot/internal/app/commands"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/gateway"
)

const ackBody = "EVENT_RECEIVED"

// WebhookHandler owns the Cloud API webhook endpoint: the GET verification
// handshake and the POST message ingress.
type WebhookHandler struct {
	verifyToken string
	router      *commands.Service
	gw          gateway.Gateway
	log         *slog.Logger
}

func NewWebhookHandler(verifyToken string, router *commands.Service, gw gateway.Gateway, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{verifyToken: verifyToken, router: router, gw: gw, log: log}
}

// Verify answers the subscription handshake. The challenge echoes back only
// when the mode is "subscribe" and the token matches.
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := q.Get("hub.mode")
	token := q.Get("hub.verify_token")
	challenge := q.Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.log.Info("webhook verified")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}

	h.log.Warn("webhook verification rejected", "mode", mode)
	w.WriteHeader(http.StatusForbidden)
}

// Receive ingests one notification. The 200 acknowledgement is written and
// flushed before any message is parsed or handled, so a slow or failing
// handler can never trigger provider-side redelivery. Processing then runs
// on a context detached from the request.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Warn("webhook payload undecodable", "err", err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(ackBody))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ackBody))
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	if payload.Object != "whatsapp_business_account" {
		return
	}
	h.process(context.WithoutCancel(r.Context()), payload)
}

func (h *WebhookHandler) process(ctx context.Context, payload webhookPayload) {
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			senderName := "Unknown"
			if len(change.Value.Contacts) > 0 && change.Value.Contacts[0].Profile.Name != "" {
				senderName = change.Value.Contacts[0].Profile.Name
			}

			for _, msg := range change.Value.Messages {
				if msg.Type != "text" || msg.Text == nil {
					continue
				}

				cmd := commands.Parse(msg.Text.Body, msg.From, senderName)
				reply := h.router.Route(ctx, cmd)
				if err := h.gw.SendText(ctx, msg.From, reply); err != nil {
					h.log.Error("reply send failed", "to", msg.From, "err", err)
				}
			}
		}
	}
}
