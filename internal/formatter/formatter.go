// Package formatter builds the exact JSON bodies the WhatsApp Cloud API
// send-message endpoint expects, one constructor per message kind. All
// constructors are pure; identical arguments produce identical payloads.
package formatter

import (
	"errors"

	"github.com/t-ega/whatsapp-cloud-sdk/messages"
)

const (
	product             = "whatsapp"
	recipientIndividual = "individual"
)

// LinkType tags the by-URL message kinds that share one payload shape.
type LinkType string

const (
	LinkTypeImage LinkType = "image"
	LinkTypeAudio LinkType = "audio"
	LinkTypeVideo LinkType = "video"
)

// Context references the message a send replies to.
type Context struct {
	MessageID string `json:"message_id"`
}

// replyContext returns nil for an empty id so the context key is omitted
// entirely rather than serialized as null.
func replyContext(messageID string) *Context {
	if messageID == "" {
		return nil
	}
	return &Context{MessageID: messageID}
}

// TextBody is the text block of a text payload.
type TextBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// TextPayload is the request body for a text send.
type TextPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
	Context          *Context `json:"context,omitempty"`
}

// Text formats a text message. The recipient number passes through verbatim.
func Text(to, body string, previewURL bool, replyTo string) TextPayload {
	return TextPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             "text",
		Text:             TextBody{PreviewURL: previewURL, Body: body},
		Context:          replyContext(replyTo),
	}
}

// Button wraps one reply button in its wire envelope.
type Button struct {
	Type  string                  `json:"type"`
	Reply messages.ButtonContents `json:"reply"`
}

// InteractiveBody is the body text block of an interactive payload.
type InteractiveBody struct {
	Text string `json:"text"`
}

// InteractiveAction holds the buttons of an interactive payload.
type InteractiveAction struct {
	Buttons []Button `json:"buttons"`
}

// Interactive is the interactive block of a button payload.
type Interactive struct {
	Type   string            `json:"type"`
	Body   InteractiveBody   `json:"body"`
	Action InteractiveAction `json:"action"`
}

// ButtonsPayload is the request body for an interactive button send.
type ButtonsPayload struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Interactive      Interactive `json:"interactive"`
	Context          *Context    `json:"context,omitempty"`
}

// Buttons formats a text message with interactive reply buttons. Buttons are
// expected to be validated ButtonContents values already.
func Buttons(to, text string, buttons []messages.ButtonContents, replyTo string) ButtonsPayload {
	wrapped := make([]Button, 0, len(buttons))
	for _, b := range buttons {
		wrapped = append(wrapped, Button{Type: "reply", Reply: b})
	}

	return ButtonsPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             "interactive",
		Interactive: Interactive{
			Type:   "button",
			Body:   InteractiveBody{Text: text},
			Action: InteractiveAction{Buttons: wrapped},
		},
		Context: replyContext(replyTo),
	}
}

// ReactionPayload is the request body for an emoji reaction send.
type ReactionPayload struct {
	MessagingProduct string            `json:"messaging_product"`
	RecipientType    string            `json:"recipient_type"`
	To               string            `json:"to"`
	Type             string            `json:"type"`
	Reaction         messages.Reaction `json:"reaction"`
	Context          *Context          `json:"context,omitempty"`
}

// Reaction formats an emoji reaction to the message identified by messageID.
// The reacted-to message doubles as the reply context.
func Reaction(to, emoji, messageID string) ReactionPayload {
	return ReactionPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             "reaction",
		Reaction:         messages.Reaction{Emoji: emoji, MessageID: messageID},
		Context:          replyContext(messageID),
	}
}

// LinkBody references media by URL. The caption key is omitted when empty.
type LinkBody struct {
	Link    string `json:"link"`
	Caption string `json:"caption,omitempty"`
}

// LinkPayload is the request body shared by image, audio and video by-URL
// sends. Exactly one of the media keys is populated, matching Type.
type LinkPayload struct {
	MessagingProduct string    `json:"messaging_product"`
	RecipientType    string    `json:"recipient_type"`
	To               string    `json:"to"`
	Type             string    `json:"type"`
	Image            *LinkBody `json:"image,omitempty"`
	Audio            *LinkBody `json:"audio,omitempty"`
	Video            *LinkBody `json:"video,omitempty"`
	Context          *Context  `json:"context,omitempty"`
}

// Link formats a media-by-URL message for the given link type.
func Link(to, link string, kind LinkType, caption, replyTo string) LinkPayload {
	p := LinkPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             string(kind),
		Context:          replyContext(replyTo),
	}

	body := &LinkBody{Link: link, Caption: caption}
	switch kind {
	case LinkTypeImage:
		p.Image = body
	case LinkTypeAudio:
		p.Audio = body
	case LinkTypeVideo:
		p.Video = body
	}

	return p
}

// DocumentBody references a document by URL. Unlike the other media kinds the
// caption key is always present, matching the document schema.
type DocumentBody struct {
	Link    string `json:"link"`
	Caption string `json:"caption"`
}

// DocumentPayload is the request body for a document-by-URL send.
type DocumentPayload struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Document         DocumentBody `json:"document"`
	Context          *Context     `json:"context,omitempty"`
}

// Document formats a document-by-URL message. A send explicitly marked as a
// reply must carry the id of the message being replied to.
func Document(to, link, caption string, isReply bool, replyTo string) (DocumentPayload, error) {
	p := DocumentPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             "document",
		Document:         DocumentBody{Link: link, Caption: caption},
	}

	if isReply {
		if replyTo == "" {
			return DocumentPayload{}, errors.New("a reply document message requires the replied-to message id")
		}
		p.Context = &Context{MessageID: replyTo}
	}

	return p, nil
}

// LocationPayload is the request body for a location send.
type LocationPayload struct {
	MessagingProduct string            `json:"messaging_product"`
	RecipientType    string            `json:"recipient_type"`
	To               string            `json:"to"`
	Type             string            `json:"type"`
	Location         messages.Location `json:"location"`
	Context          *Context          `json:"context,omitempty"`
}

// Location formats a location message.
func Location(to string, loc messages.Location, replyTo string) LocationPayload {
	return LocationPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             "location",
		Location:         loc,
		Context:          replyContext(replyTo),
	}
}

// ContactsPayload is the request body for a contacts send. The contacts
// schema is broadcast-shaped and carries no recipient_type key.
type ContactsPayload struct {
	MessagingProduct string             `json:"messaging_product"`
	To               string             `json:"to"`
	Type             string             `json:"type"`
	Contacts         []messages.Contact `json:"contacts"`
	Context          *Context           `json:"context,omitempty"`
}

// Contacts formats a contacts message.
func Contacts(to string, contacts []messages.Contact, replyTo string) ContactsPayload {
	return ContactsPayload{
		MessagingProduct: product,
		To:               to,
		Type:             "contacts",
		Contacts:         contacts,
		Context:          replyContext(replyTo),
	}
}

// StickerBody references a sticker by URL.
type StickerBody struct {
	Link string `json:"link"`
}

// StickerPayload is the request body for a sticker-by-URL send.
type StickerPayload struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Sticker          StickerBody `json:"sticker"`
	Context          *Context    `json:"context,omitempty"`
}

// Sticker formats a sticker-by-URL message.
func Sticker(to, link, replyTo string) StickerPayload {
	return StickerPayload{
		MessagingProduct: product,
		RecipientType:    recipientIndividual,
		To:               to,
		Type:             "sticker",
		Sticker:          StickerBody{Link: link},
		Context:          replyContext(replyTo),
	}
}

// ReadReceiptPayload is the request body marking an inbound message as read.
type ReadReceiptPayload struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// ReadReceipt formats a mark-as-read request for the given message id.
func ReadReceipt(messageID string) ReadReceiptPayload {
	return ReadReceiptPayload{
		MessagingProduct: product,
		Status:           "read",
		MessageID:        messageID,
	}
}
