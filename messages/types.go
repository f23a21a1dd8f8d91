// Package messages contains the value objects exchanged with the WhatsApp
// Cloud API: inbound payload fragments, the message type enumeration and the
// timestamp variant used when decoding webhook events.
package messages

import (
	"strconv"
	"time"
)

// MessageType enumerates the inbound message kinds the SDK recognizes.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeAudio    MessageType = "audio"
	MessageTypeReaction MessageType = "reaction"
	MessageTypeSticker  MessageType = "sticker"
	MessageTypeLocation MessageType = "location"
	MessageTypeUnknown  MessageType = "unknown"
)

// ParseMessageType maps a wire type string onto the closed MessageType set.
// Unrecognized values map to MessageTypeUnknown, never an error.
func ParseMessageType(wire string) MessageType {
	switch t := MessageType(wire); t {
	case MessageTypeText, MessageTypeImage, MessageTypeAudio,
		MessageTypeReaction, MessageTypeSticker, MessageTypeLocation:
		return t
	default:
		return MessageTypeUnknown
	}
}

// Timestamp holds a webhook timestamp in one of two states: parsed from the
// wire seconds-since-epoch value, or raw when the wire value was not a valid
// integer. The raw string is retained in both cases.
type Timestamp struct {
	Time time.Time
	Raw  string

	parsed bool
}

// ParseTimestamp converts a wire timestamp. Malformed values never fail; the
// caller checks IsParsed to decide which representation to use.
func ParseTimestamp(raw string) Timestamp {
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Timestamp{Raw: raw}
	}
	return Timestamp{Time: time.Unix(secs, 0).UTC(), Raw: raw, parsed: true}
}

// IsParsed reports whether the wire value converted to a point in time.
func (t Timestamp) IsParsed() bool {
	return t.parsed
}

// Equal compares two timestamps, treating a parsed and a raw value as
// distinct even when the raw strings match.
func (t Timestamp) Equal(other Timestamp) bool {
	if t.parsed != other.parsed {
		return false
	}
	if t.parsed {
		return t.Time.Equal(other.Time)
	}
	return t.Raw == other.Raw
}

// String renders the parsed time in RFC 3339, or the raw wire value.
func (t Timestamp) String() string {
	if t.parsed {
		return t.Time.Format(time.RFC3339)
	}
	return t.Raw
}
