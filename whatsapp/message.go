package whatsapp

import (
	"context"

	"github.com/t-ega/whatsapp-cloud-sdk/messages"
)

// Message is one decoded inbound WhatsApp event. Exactly one of Text,
// Reaction, Image, Sticker or Location is populated, matching Type.
// Messages are constructed once per webhook call and immutable thereafter.
type Message struct {
	ID                 string
	FromUser           string
	Timestamp          messages.Timestamp
	Type               messages.MessageType
	BusinessID         string
	DisplayPhoneNumber string
	PhoneNumberID      string

	Text     string
	Reaction *messages.Reaction
	Image    *messages.Image
	Sticker  *messages.Sticker
	Location *messages.Location

	bot *Bot
}

// ParseMessage decodes the webhook envelope into a typed Message. It returns
// ErrMalformedWebhook when the entry/changes levels are missing, and
// (nil, nil) when the event carries no actionable message, such as a
// delivery-status callback. The bot reference powers the reply helpers and
// may be nil for decode-only use.
func ParseMessage(payload *WebhookPayload, bot *Bot) (*Message, error) {
	if payload == nil || len(payload.Entry) == 0 {
		return nil, ErrMalformedWebhook
	}
	entry := payload.Entry[0]
	if len(entry.Changes) == 0 {
		return nil, ErrMalformedWebhook
	}
	value := entry.Changes[0].Value

	if len(value.Messages) == 0 {
		return nil, nil
	}
	raw := value.Messages[0]

	msg := &Message{
		ID:                 raw.ID,
		FromUser:           raw.From,
		Timestamp:          messages.ParseTimestamp(raw.Timestamp),
		Type:               messages.ParseMessageType(raw.Type),
		BusinessID:         entry.ID,
		DisplayPhoneNumber: value.Metadata.DisplayPhoneNumber,
		PhoneNumberID:      value.Metadata.PhoneNumberID,
		bot:                bot,
	}

	switch msg.Type {
	case messages.MessageTypeText:
		if raw.Text != nil {
			msg.Text = raw.Text.Body
		}
	case messages.MessageTypeReaction:
		if raw.Reaction != nil {
			reaction := *raw.Reaction
			msg.Reaction = &reaction
		}
	case messages.MessageTypeImage:
		if raw.Image != nil {
			image := *raw.Image
			msg.Image = &image
		}
	case messages.MessageTypeSticker:
		if raw.Sticker != nil {
			sticker := *raw.Sticker
			msg.Sticker = &sticker
		}
	case messages.MessageTypeLocation:
		if raw.Location != nil {
			location := *raw.Location
			msg.Location = &location
		}
	}

	return msg, nil
}

// Equal compares two messages over their identity tuple: id, sender, type
// and timestamp. Payload content does not participate.
func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.ID == other.ID &&
		m.FromUser == other.FromUser &&
		m.Type == other.Type &&
		m.Timestamp.Equal(other.Timestamp)
}

// ReplyText sends a text reply to the sender of this message.
func (m *Message) ReplyText(ctx context.Context, text string) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.SendText(ctx, TextRequest{To: m.FromUser, Body: text, ReplyTo: m.ID})
}

// ReplyWithImageURL replies with an image referenced by URL.
func (m *Message) ReplyWithImageURL(ctx context.Context, link, caption string) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.SendImageByURL(ctx, LinkRequest{To: m.FromUser, Link: link, Caption: caption, ReplyTo: m.ID})
}

// ReplyWithAudioURL replies with an audio file referenced by URL.
func (m *Message) ReplyWithAudioURL(ctx context.Context, link string) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.SendAudioByURL(ctx, AudioRequest{To: m.FromUser, Link: link, ReplyTo: m.ID})
}

// ReplyWithVideoURL replies with a video referenced by URL.
func (m *Message) ReplyWithVideoURL(ctx context.Context, link, caption string) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.SendVideoByURL(ctx, LinkRequest{To: m.FromUser, Link: link, Caption: caption, ReplyTo: m.ID})
}

// ReplyWithDocumentURL replies with a document referenced by URL.
func (m *Message) ReplyWithDocumentURL(ctx context.Context, link, caption string) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.SendDocumentByURL(ctx, DocumentRequest{
		To:      m.FromUser,
		Link:    link,
		Caption: caption,
		IsReply: true,
		ReplyTo: m.ID,
	})
}

// ReplyWithStickerURL replies with a sticker referenced by URL.
func (m *Message) ReplyWithStickerURL(ctx context.Context, link string) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.SendStickerByURL(ctx, StickerRequest{To: m.FromUser, Link: link, ReplyTo: m.ID})
}

// MarkAsRead marks this message as read.
func (m *Message) MarkAsRead(ctx context.Context) (*SendResponse, error) {
	if m.bot == nil {
		return nil, ErrNoBot
	}
	return m.bot.MarkMessageAsRead(ctx, m.ID)
}
