package whatsapp

import (
	"errors"
	"fmt"
)

// ErrMalformedWebhook indicates an inbound payload missing the structural
// entry/changes levels of the webhook envelope.
var ErrMalformedWebhook = errors.New("malformed webhook payload")

// ErrNoBot is returned by reply helpers on a Message decoded without an
// attached sending client.
var ErrNoBot = errors.New("message has no sending client attached")

// APIError is a non-success response from the Cloud API. Body holds the raw
// response text verbatim for caller inspection.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api: http %d: %s", e.StatusCode, e.Body)
}
