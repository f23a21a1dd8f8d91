package messages

// Image is the media metadata attached to an inbound image message. The
// sha256 is the content hash as delivered by WhatsApp, never recomputed.
type Image struct {
	ID       string `json:"id,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Sha256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// Sticker is the media metadata attached to an inbound sticker message.
type Sticker struct {
	ID       string `json:"id,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Sha256   string `json:"sha256,omitempty"`
}

// Reaction is an emoji reaction to a previously sent message. MessageID
// identifies the message being reacted to.
type Reaction struct {
	Emoji     string `json:"emoji"`
	MessageID string `json:"message_id"`
}

// Location carries the coordinates of an inbound location pin. Latitude and
// longitude are kept as wire strings, preserved exactly as given.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
}
