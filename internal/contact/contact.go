package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown contact field")
	ErrMissingField = errors.New("contact field is required")
	ErrNoAddress    = errors.New("contact address is not configured")
)

// Field names accepted by UpdateField, matching the form inputs.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Form holds what the visitor typed into the contact form.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateField returns a copy of f with field set to value.
func UpdateField(f Form, field, value string) (Form, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return f, nil
}

// Validate reports the first field that is blank after trimming spaces.
func Validate(f Form) error {
	for _, fv := range []struct{ name, value string }{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldSubject, f.Subject},
		{FieldMessage, f.Message},
	} {
		if strings.TrimSpace(fv.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, fv.name)
		}
	}
	return nil
}

// ComposeBody builds the message body handed to the mail client.
func ComposeBody(f Form) string {
	return "Name: " + f.Name + "\n" + "Email: " + f.Email + "\n\n" + "Message:\n" + f.Message
}

// ComposeHandoff returns the mailto URI that opens the visitor's mail client
// with subject and body filled in. Inputs are assumed validated.
func ComposeHandoff(address string, f Form) string {
	return "mailto:" + address +
		"?subject=" + EncodeComponent(f.Subject) +
		"&body=" + EncodeComponent(ComposeBody(f))
}

// componentUnescapes undoes the parts of url.QueryEscape that differ from
// encodeURIComponent. Spaces become %20 rather than "+", which mail clients
// do not decode.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a URI query value, leaving
// unreserved characters A-Z a-z 0-9 - _ . ! ~ * ' ( ) as they are.
func EncodeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
