// Package commands parses inbound chat messages and routes them to handlers.
package commands

import (
	"strings"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
)

// ParsedCommand is one inbound message split into a routable form.
type ParsedCommand struct {
	// Command is the first normalized token; empty for blank messages.
	Command string
	// Args holds the remaining normalized tokens.
	Args []string
	// RawText is the message exactly as received.
	RawText string

	SenderPhone string
	SenderName  string
}

// Normalized returns the full lower-cased, whitespace-collapsed text.
// Phrase commands ("my balance") match against this, not against Command.
func (c ParsedCommand) Normalized() string {
	return domain.NormalizeMessageText(c.RawText)
}

// Parse splits an inbound message. It never fails; unrecognized input is the
// router's concern.
func Parse(text, senderPhone, senderName string) ParsedCommand {
	cmd := ParsedCommand{
		RawText:     text,
		SenderPhone: senderPhone,
		SenderName:  senderName,
	}
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return cmd
	}
	cmd.Command = fields[0]
	cmd.Args = fields[1:]
	return cmd
}
