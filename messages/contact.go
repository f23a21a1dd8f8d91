package messages

import "errors"

// ErrNoPhones is returned when a contact is built without any phone number.
var ErrNoPhones = errors.New("contact requires at least one phone number")

// Address is a postal address entry on a contact card.
type Address struct {
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Email is an email entry on a contact card.
type Email struct {
	Email string `json:"email,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Name is the structured name on a contact card. FormattedName and FirstName
// are required by the Cloud API.
type Name struct {
	FormattedName string `json:"formatted_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name,omitempty"`
	MiddleName    string `json:"middle_name,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
	Prefix        string `json:"prefix,omitempty"`
}

// Org is the organization block on a contact card.
type Org struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

// Phone is a phone entry on a contact card. Phone is the dialable number,
// WaID the WhatsApp-internal identifier when known.
type Phone struct {
	Phone string `json:"phone"`
	WaID  string `json:"wa_id,omitempty"`
	Type  string `json:"type,omitempty"`
}

// URL is a website entry on a contact card.
type URL struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// Contact is a full contact card sent with a contacts message. Name and a
// non-empty Phones list are required; everything else is optional.
type Contact struct {
	Name      Name      `json:"name"`
	Addresses []Address `json:"addresses,omitempty"`
	Birthday  string    `json:"birthday,omitempty"`
	Emails    []Email   `json:"emails,omitempty"`
	Org       *Org      `json:"org,omitempty"`
	Phones    []Phone   `json:"phones"`
	URLs      []URL     `json:"urls,omitempty"`
}

// NewContact builds a contact from a plain display name and bare dialable
// numbers. The name doubles as formatted and first name, and each number
// becomes a Phone with no type or wa_id.
func NewContact(displayName string, phones ...string) (*Contact, error) {
	if displayName == "" {
		return nil, errors.New("contact requires a display name")
	}

	normalized := make([]Phone, 0, len(phones))
	for _, p := range phones {
		if p == "" {
			continue
		}
		normalized = append(normalized, Phone{Phone: p})
	}
	if len(normalized) == 0 {
		return nil, ErrNoPhones
	}

	return &Contact{
		Name:   Name{FormattedName: displayName, FirstName: displayName},
		Phones: normalized,
	}, nil
}

// Validate enforces the construction invariants on hand-built contacts.
func (c *Contact) Validate() error {
	if c == nil {
		return errors.New("contact is nil")
	}
	if c.Name.FormattedName == "" || c.Name.FirstName == "" {
		return errors.New("contact name requires formatted_name and first_name")
	}
	if len(c.Phones) == 0 {
		return ErrNoPhones
	}
	for _, p := range c.Phones {
		if p.Phone == "" {
			return errors.New("contact phone entry is missing its number")
		}
	}
	return nil
}

// Equal compares two contacts over their identity tuple: name, phones and
// birthday. Other fields do not participate.
func (c *Contact) Equal(other *Contact) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Name != other.Name || c.Birthday != other.Birthday {
		return false
	}
	if len(c.Phones) != len(other.Phones) {
		return false
	}
	for i := range c.Phones {
		if c.Phones[i] != other.Phones[i] {
			return false
		}
	}
	return true
}
