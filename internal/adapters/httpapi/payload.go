package httpapi

// Inbound webhook payload shapes, per the Cloud API notification format.
// Only the fields the bot consumes are modeled.

type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      string          `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string       `json:"field"`
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         webhookMetadata  `json:"metadata"`
	Contacts         []webhookContact `json:"contacts"`
	Messages         []inboundMessage `json:"messages"`
	Statuses         []inboundStatus  `json:"statuses"`
}

type webhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type webhookContact struct {
	WaID    string         `json:"wa_id"`
	Profile webhookProfile `json:"profile"`
}

type webhookProfile struct {
	Name string `json:"name"`
}

type inboundMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *inboundText `json:"text,omitempty"`
}

type inboundText struct {
	Body string `json:"body"`
}

// inboundStatus entries (delivery receipts) are acknowledged and ignored.
type inboundStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
