package gateway

import "context"

// TemplateComponent mirrors the Cloud API template component object.
type TemplateComponent struct {
	Type       string
	Parameters []TemplateParameter
}

// TemplateParameter is one substitution value inside a template component.
type TemplateParameter struct {
	Type string
	Text string
}

// Gateway sends WhatsApp messages to one phone identity per call.
// Each send is independently fallible; callers that fan out must tolerate
// per-recipient failure.
type Gateway interface {
	// SendText sends a free-form text message.
	SendText(ctx context.Context, to, body string) error

	// SendTemplate sends a pre-approved template message. Templates are
	// required for proactive sends outside the 24h customer-service window.
	SendTemplate(ctx context.Context, to, name, languageCode string, components []TemplateComponent) error
}
