package messages

// ButtonContents is the caller-facing shape of one interactive reply button.
// An empty ID is filled with a generated unique id during validation.
type ButtonContents struct {
	ID    string `json:"id"`
	Title string `json:"title" validate:"required,min=1,max=20"`
}
