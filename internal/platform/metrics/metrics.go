// Package metrics exposes the bot's operational counters. Partial fan-out
// failure is surfaced here and in logs only, never to chat users.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesSent counts outbound WhatsApp sends by result ("ok"/"error").
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whatsapp_messages_sent_total",
		Help: "Outbound WhatsApp message sends by result.",
	}, []string{"result"})

	// CommandsHandled counts routed inbound commands by resolved handler.
	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_commands_handled_total",
		Help: "Inbound commands handled, by resolved command.",
	}, []string{"command"})

	// RemindersSent counts reminders delivered by the daily sweep.
	RemindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_reminders_sent_total",
		Help: "Contribution reminders successfully sent by the daily sweep.",
	})
)
