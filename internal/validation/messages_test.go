package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t-ega/whatsapp-cloud-sdk/messages"
)

func TestTextMessageRecipientBounds(t *testing.T) {
	valid := TextMessage{Text: "hi", RecipientNumber: "23480000"}
	assert.NoError(t, valid.Validate())

	longest := TextMessage{Text: "hi", RecipientNumber: strings.Repeat("9", 20)}
	assert.NoError(t, longest.Validate())

	tooShort := TextMessage{Text: "hi", RecipientNumber: "2348000"}
	assert.Error(t, tooShort.Validate())

	tooLong := TextMessage{Text: "hi", RecipientNumber: strings.Repeat("9", 21)}
	assert.Error(t, tooLong.Validate())
}

func TestTextMessageRequiresBody(t *testing.T) {
	msg := TextMessage{RecipientNumber: "2348000000000"}
	assert.Error(t, msg.Validate())
}

// Button recipients deliberately use the narrower [8,12] bound from the
// interactive schema, not the [8,20] text bound.
func TestButtonMessageRecipientBounds(t *testing.T) {
	buttons := []messages.ButtonContents{{Title: "Yes"}}

	valid := ButtonMessage{Text: "pick", RecipientNumber: strings.Repeat("9", 12), Buttons: buttons}
	assert.NoError(t, valid.Validate())

	textBoundRecipient := ButtonMessage{Text: "pick", RecipientNumber: strings.Repeat("9", 13), Buttons: buttons}
	assert.Error(t, textBoundRecipient.Validate())
}

func TestButtonTitleBounds(t *testing.T) {
	tooLong := ButtonMessage{
		Text:            "pick",
		RecipientNumber: "234800000000",
		Buttons:         []messages.ButtonContents{{Title: strings.Repeat("x", 21)}},
	}
	assert.Error(t, tooLong.Validate())

	boundary := ButtonMessage{
		Text:            "pick",
		RecipientNumber: "234800000000",
		Buttons:         []messages.ButtonContents{{Title: strings.Repeat("x", 20)}},
	}
	assert.NoError(t, boundary.Validate())

	empty := ButtonMessage{
		Text:            "pick",
		RecipientNumber: "234800000000",
		Buttons:         []messages.ButtonContents{{Title: ""}},
	}
	assert.Error(t, empty.Validate())
}

func TestButtonMessageRequiresButtons(t *testing.T) {
	msg := ButtonMessage{Text: "pick", RecipientNumber: "234800000000"}
	assert.Error(t, msg.Validate())
}

func TestButtonMessageGeneratesMissingIDs(t *testing.T) {
	msg := ButtonMessage{
		Text:            "pick",
		RecipientNumber: "234800000000",
		Buttons: []messages.ButtonContents{
			{Title: "Yes"},
			{ID: "keep-me", Title: "No"},
		},
	}
	require.NoError(t, msg.Validate())

	assert.NotEmpty(t, msg.Buttons[0].ID)
	assert.Equal(t, "keep-me", msg.Buttons[1].ID)

	// Generated ids must be unique per button.
	other := ButtonMessage{
		Text:            "pick",
		RecipientNumber: "234800000000",
		Buttons:         []messages.ButtonContents{{Title: "Yes"}, {Title: "No"}},
	}
	require.NoError(t, other.Validate())
	assert.NotEqual(t, other.Buttons[0].ID, other.Buttons[1].ID)
}

func TestLinkMessageRequiresURL(t *testing.T) {
	assert.Error(t, LinkMessage{}.Validate())
	assert.Error(t, LinkMessage{Link: "not a url"}.Validate())
	assert.NoError(t, LinkMessage{Link: "https://example.com/a.png"}.Validate())
}

func TestLocationMessageRequiredFields(t *testing.T) {
	valid := LocationMessage{Latitude: "1.0", Longitude: "2.0", Name: "N", Address: "A"}
	assert.NoError(t, valid.Validate())

	missing := LocationMessage{Latitude: "1.0", Longitude: "2.0", Name: "N"}
	assert.Error(t, missing.Validate())
}
