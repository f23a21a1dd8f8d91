package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/t-ega/whatsapp-cloud-sdk/internal/formatter"
	"github.com/t-ega/whatsapp-cloud-sdk/internal/validation"
	"github.com/t-ega/whatsapp-cloud-sdk/messages"
)

// Bot issues the outgoing Cloud API calls. Every operation is a single
// independent request/response; concurrent use needs no coordination.
type Bot struct {
	httpClient    *resty.Client
	phoneNumberID string
	logger        *zap.Logger
}

// NewBot builds a Bot from the provided configuration.
func NewBot(cfg Config, logger *zap.Logger) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(fmt.Sprintf("%s/%s", base, cfg.APIVersion)).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AccessToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &Bot{
		httpClient:    restyClient,
		phoneNumberID: cfg.PhoneNumberID,
		logger:        logger,
	}, nil
}

// SendResponse mirrors the successful response from Meta.
type SendResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// TextRequest is a plain text send. ReplyTo, when set, is the id of the
// message being replied to.
type TextRequest struct {
	To         string
	Body       string
	PreviewURL bool
	ReplyTo    string
}

// SendText sends a text message.
func (b *Bot) SendText(ctx context.Context, req TextRequest) (*SendResponse, error) {
	msg := validation.TextMessage{
		Text:            req.Body,
		RecipientNumber: req.To,
		MessageID:       req.ReplyTo,
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return b.send(ctx, formatter.Text(req.To, req.Body, req.PreviewURL, req.ReplyTo))
}

// ButtonsRequest is a text send with interactive reply buttons.
type ButtonsRequest struct {
	To      string
	Text    string
	Buttons []messages.ButtonContents
	ReplyTo string
}

// SendTextWithButtons sends a text message with reply buttons. Buttons with
// an empty id get a generated unique one.
func (b *Bot) SendTextWithButtons(ctx context.Context, req ButtonsRequest) (*SendResponse, error) {
	msg := validation.ButtonMessage{
		Text:            req.Text,
		RecipientNumber: req.To,
		Buttons:         req.Buttons,
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return b.send(ctx, formatter.Buttons(req.To, req.Text, msg.Buttons, req.ReplyTo))
}

// ReactionRequest is an emoji reaction to a previously received message.
type ReactionRequest struct {
	To        string
	Emoji     string
	MessageID string
}

// SendReaction reacts to the message identified by MessageID.
func (b *Bot) SendReaction(ctx context.Context, req ReactionRequest) (*SendResponse, error) {
	return b.send(ctx, formatter.Reaction(req.To, req.Emoji, req.MessageID))
}

// LinkRequest is a media send referencing content by URL.
type LinkRequest struct {
	To      string
	Link    string
	Caption string
	ReplyTo string
}

// AudioRequest is an audio send referencing content by URL. The audio schema
// takes no caption.
type AudioRequest struct {
	To      string
	Link    string
	ReplyTo string
}

// SendImageByURL sends an image referenced by URL.
func (b *Bot) SendImageByURL(ctx context.Context, req LinkRequest) (*SendResponse, error) {
	return b.sendLink(ctx, formatter.LinkTypeImage, req.To, req.Link, req.Caption, req.ReplyTo)
}

// SendAudioByURL sends an audio file referenced by URL.
func (b *Bot) SendAudioByURL(ctx context.Context, req AudioRequest) (*SendResponse, error) {
	return b.sendLink(ctx, formatter.LinkTypeAudio, req.To, req.Link, "", req.ReplyTo)
}

// SendVideoByURL sends a video referenced by URL.
func (b *Bot) SendVideoByURL(ctx context.Context, req LinkRequest) (*SendResponse, error) {
	return b.sendLink(ctx, formatter.LinkTypeVideo, req.To, req.Link, req.Caption, req.ReplyTo)
}

func (b *Bot) sendLink(ctx context.Context, kind formatter.LinkType, to, link, caption, replyTo string) (*SendResponse, error) {
	msg := validation.LinkMessage{Link: link, Caption: caption, MessageID: replyTo}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return b.send(ctx, formatter.Link(to, link, kind, caption, replyTo))
}

// DocumentRequest is a document send referencing content by URL. A request
// marked IsReply must carry ReplyTo.
type DocumentRequest struct {
	To      string
	Link    string
	Caption string
	IsReply bool
	ReplyTo string
}

// SendDocumentByURL sends a document referenced by URL.
func (b *Bot) SendDocumentByURL(ctx context.Context, req DocumentRequest) (*SendResponse, error) {
	msg := validation.LinkMessage{Link: req.Link, Caption: req.Caption, MessageID: req.ReplyTo}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	payload, err := formatter.Document(req.To, req.Link, req.Caption, req.IsReply, req.ReplyTo)
	if err != nil {
		return nil, err
	}

	return b.send(ctx, payload)
}

// LocationRequest is a location send.
type LocationRequest struct {
	To       string
	Location messages.Location
	ReplyTo  string
}

// SendLocation sends a location pin.
func (b *Bot) SendLocation(ctx context.Context, req LocationRequest) (*SendResponse, error) {
	msg := validation.LocationMessage{
		Latitude:  req.Location.Latitude,
		Longitude: req.Location.Longitude,
		Name:      req.Location.Name,
		Address:   req.Location.Address,
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return b.send(ctx, formatter.Location(req.To, req.Location, req.ReplyTo))
}

// ContactsRequest is a contacts send.
type ContactsRequest struct {
	To       string
	Contacts []messages.Contact
	ReplyTo  string
}

// SendContacts sends one or more contact cards.
func (b *Bot) SendContacts(ctx context.Context, req ContactsRequest) (*SendResponse, error) {
	if len(req.Contacts) == 0 {
		return nil, errors.New("at least one contact is required")
	}
	for i := range req.Contacts {
		if err := req.Contacts[i].Validate(); err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
	}

	return b.send(ctx, formatter.Contacts(req.To, req.Contacts, req.ReplyTo))
}

// StickerRequest is a sticker send referencing content by URL.
type StickerRequest struct {
	To      string
	Link    string
	ReplyTo string
}

// SendStickerByURL sends a sticker referenced by URL.
func (b *Bot) SendStickerByURL(ctx context.Context, req StickerRequest) (*SendResponse, error) {
	msg := validation.LinkMessage{Link: req.Link, MessageID: req.ReplyTo}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return b.send(ctx, formatter.Sticker(req.To, req.Link, req.ReplyTo))
}

// MarkMessageAsRead marks an inbound message as read.
func (b *Bot) MarkMessageAsRead(ctx context.Context, messageID string) (*SendResponse, error) {
	if messageID == "" {
		return nil, errors.New("a message id is required")
	}

	return b.send(ctx, formatter.ReadReceipt(messageID))
}

// send posts one formatted payload to the messages endpoint. Non-2xx
// responses surface as *APIError with the body preserved verbatim; nothing
// is retried.
func (b *Bot) send(ctx context.Context, payload any) (*SendResponse, error) {
	result := new(SendResponse)

	resp, err := b.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		Post(fmt.Sprintf("%s/messages", b.phoneNumberID))
	if err != nil {
		return nil, fmt.Errorf("send whatsapp message: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		b.logger.Warn("whatsapp api rejected request",
			zap.Int("status", resp.StatusCode()))
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return result, nil
}
