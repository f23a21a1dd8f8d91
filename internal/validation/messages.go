// Package validation holds the request schemas checked before any outbound
// payload is formatted. A failed check rejects the send before a network
// call is attempted.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/t-ega/whatsapp-cloud-sdk/messages"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// TextMessage is the schema for a plain text send.
type TextMessage struct {
	Text            string `validate:"required"`
	RecipientNumber string `validate:"required,min=8,max=20"`
	MessageID       string
}

// Validate reports the first set of schema violations, if any.
func (m TextMessage) Validate() error {
	return validate.Struct(m)
}

// ButtonMessage is the schema for an interactive button send. The recipient
// bound [8,12] comes from the interactive message schema and is narrower
// than the text message bound on purpose.
type ButtonMessage struct {
	Text            string                    `validate:"required"`
	RecipientNumber string                    `validate:"required,min=8,max=12"`
	Buttons         []messages.ButtonContents `validate:"required,min=1,dive"`
}

// Validate fills generated ids for id-less buttons, then checks the schema.
func (m *ButtonMessage) Validate() error {
	for i := range m.Buttons {
		if m.Buttons[i].ID == "" {
			m.Buttons[i].ID = uuid.NewString()
		}
	}
	return validate.Struct(m)
}

// LinkMessage is the schema shared by the by-URL sends (image, audio, video,
// document, sticker).
type LinkMessage struct {
	Link      string `validate:"required,url"`
	Caption   string
	MessageID string
}

// Validate reports the first set of schema violations, if any.
func (m LinkMessage) Validate() error {
	return validate.Struct(m)
}

// LocationMessage is the schema for a location send.
type LocationMessage struct {
	Latitude  string `validate:"required"`
	Longitude string `validate:"required"`
	Name      string `validate:"required"`
	Address   string `validate:"required"`
}

// Validate reports the first set of schema violations, if any.
func (m LocationMessage) Validate() error {
	return validate.Struct(m)
}
