package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t-ega/whatsapp-cloud-sdk/messages"
)

func marshal(t *testing.T, payload any) string {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func TestTextPayloadShape(t *testing.T) {
	body := marshal(t, Text("2348000000000", "hi", false, ""))

	assert.Equal(t,
		`{"messaging_product":"whatsapp","recipient_type":"individual","to":"2348000000000","type":"text","text":{"preview_url":false,"body":"hi"}}`,
		body)
}

func TestTextOmitsContextWithoutReply(t *testing.T) {
	body := marshal(t, Text("2348000000000", "hi", false, ""))

	assert.NotContains(t, body, "context")
}

func TestTextAttachesContextForReply(t *testing.T) {
	payload := Text("2348000000000", "hi", true, "wamid.reply")

	require.NotNil(t, payload.Context)
	assert.Equal(t, "wamid.reply", payload.Context.MessageID)
	assert.Contains(t, marshal(t, payload), `"context":{"message_id":"wamid.reply"}`)
}

func TestLinkPayloadIdempotent(t *testing.T) {
	first := marshal(t, Link("2348000000000", "https://cdn.example.com/a.png", LinkTypeImage, "a caption", "wamid.1"))
	second := marshal(t, Link("2348000000000", "https://cdn.example.com/a.png", LinkTypeImage, "a caption", "wamid.1"))

	assert.Equal(t, first, second)
}

func TestLinkPayloadKeysPerKind(t *testing.T) {
	tcs := []struct {
		kind LinkType
		key  string
	}{
		{LinkTypeImage, `"image":{"link":"https://example.com/f"}`},
		{LinkTypeAudio, `"audio":{"link":"https://example.com/f"}`},
		{LinkTypeVideo, `"video":{"link":"https://example.com/f"}`},
	}

	for _, tc := range tcs {
		body := marshal(t, Link("2348000000000", "https://example.com/f", tc.kind, "", ""))
		assert.Contains(t, body, tc.key)
		assert.Contains(t, body, `"type":"`+string(tc.kind)+`"`)
		assert.NotContains(t, body, "caption")
	}
}

func TestLinkCaptionAttachedOnlyWhenPresent(t *testing.T) {
	with := marshal(t, Link("2348000000000", "https://example.com/f.png", LinkTypeImage, "look", ""))
	without := marshal(t, Link("2348000000000", "https://example.com/f.png", LinkTypeImage, "", ""))

	assert.Contains(t, with, `"caption":"look"`)
	assert.NotContains(t, without, "caption")
}

func TestDocumentReplyRequiresMessageID(t *testing.T) {
	_, err := Document("2348000000000", "https://example.com/d.pdf", "", true, "")
	assert.Error(t, err)

	payload, err := Document("2348000000000", "https://example.com/d.pdf", "", true, "wamid.1")
	require.NoError(t, err)
	require.NotNil(t, payload.Context)
	assert.Equal(t, "wamid.1", payload.Context.MessageID)
}

func TestDocumentKeepsCaptionKey(t *testing.T) {
	payload, err := Document("2348000000000", "https://example.com/d.pdf", "", false, "")
	require.NoError(t, err)

	assert.Contains(t, marshal(t, payload), `"document":{"link":"https://example.com/d.pdf","caption":""}`)
	assert.Nil(t, payload.Context)
}

func TestReactionCarriesTargetAsContext(t *testing.T) {
	body := marshal(t, Reaction("2348000000000", "\U0001F44D", "wamid.orig"))

	assert.Contains(t, body, `"reaction":{"emoji":"👍","message_id":"wamid.orig"}`)
	assert.Contains(t, body, `"context":{"message_id":"wamid.orig"}`)
}

func TestButtonsPayloadShape(t *testing.T) {
	payload := Buttons("234800000000", "pick one", []messages.ButtonContents{
		{ID: "b-1", Title: "Yes"},
		{ID: "b-2", Title: "No"},
	}, "")

	body := marshal(t, payload)
	assert.Contains(t, body, `"type":"interactive"`)
	assert.Contains(t, body, `"interactive":{"type":"button","body":{"text":"pick one"}`)
	assert.Contains(t, body, `{"type":"reply","reply":{"id":"b-1","title":"Yes"}}`)
	assert.Contains(t, body, `{"type":"reply","reply":{"id":"b-2","title":"No"}}`)
}

func TestContactsPayloadIsBroadcastShaped(t *testing.T) {
	contact, err := messages.NewContact("Ada Lovelace", "2348000000000")
	require.NoError(t, err)

	body := marshal(t, Contacts("2348111111111", []messages.Contact{*contact}, ""))

	assert.NotContains(t, body, "recipient_type")
	assert.Contains(t, body, `"type":"contacts"`)
	assert.Contains(t, body, `"formatted_name":"Ada Lovelace"`)
	assert.Contains(t, body, `"phones":[{"phone":"2348000000000"}]`)
}

func TestStickerPayloadShape(t *testing.T) {
	body := marshal(t, Sticker("2348000000000", "https://example.com/s.webp", ""))

	assert.Contains(t, body, `"type":"sticker"`)
	assert.Contains(t, body, `"sticker":{"link":"https://example.com/s.webp"}`)
}

func TestLocationPayloadShape(t *testing.T) {
	loc := messages.Location{Latitude: "1.0", Longitude: "2.0", Name: "N", Address: "A"}
	body := marshal(t, Location("2348000000000", loc, ""))

	assert.Contains(t, body, `"type":"location"`)
	assert.Contains(t, body, `"location":{"latitude":"1.0","longitude":"2.0","name":"N","address":"A"}`)
}

func TestReadReceiptShape(t *testing.T) {
	body := marshal(t, ReadReceipt("wamid.1"))

	assert.Equal(t, `{"messaging_product":"whatsapp","status":"read","message_id":"wamid.1"}`, body)
}
