package whatsapp

import "github.com/t-ega/whatsapp-cloud-sdk/messages"

// WebhookPayload mirrors the envelope Meta's WhatsApp Cloud API posts to a
// registered callback URL.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry is one entry within the webhook body. ID is the WhatsApp
// business account id.
type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

// WebhookChange captures the actual notification contents.
type WebhookChange struct {
	Value WebhookValue `json:"value"`
	Field string       `json:"field"`
}

// WebhookValue contains message metadata, sender contacts and the message
// events themselves. Status-only callbacks carry no messages.
type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         Metadata         `json:"metadata"`
	Contacts         []SenderContact  `json:"contacts"`
	Messages         []InboundMessage `json:"messages"`
	Statuses         []MessageStatus  `json:"statuses"`
	Errors           []WebhookError   `json:"errors"`
}

// Metadata holds the business account phone identifiers.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// SenderContact identifies the WhatsApp user behind an inbound message.
type SenderContact struct {
	Profile ContactProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

// ContactProfile contains the human-friendly sender name.
type ContactProfile struct {
	Name string `json:"name"`
}

// InboundMessage aggregates the inbound message shapes the SDK decodes. At
// most one of the payload pointers is set, matching Type.
type InboundMessage struct {
	From      string             `json:"from"`
	ID        string             `json:"id"`
	Timestamp string             `json:"timestamp"`
	Type      string             `json:"type"`
	Text      *TextContent       `json:"text,omitempty"`
	Reaction  *messages.Reaction `json:"reaction,omitempty"`
	Image     *messages.Image    `json:"image,omitempty"`
	Sticker   *messages.Sticker  `json:"sticker,omitempty"`
	Location  *messages.Location `json:"location,omitempty"`
}

// TextContent contains a text message body.
type TextContent struct {
	Body string `json:"body"`
}

// MessageStatus is a delivery or read receipt coming from WhatsApp.
type MessageStatus struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// WebhookError exposes errors Meta reports inside webhook notifications.
type WebhookError struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
