package content

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Contact form limits.
const (
	NameMaxLength    = 100
	EmailMaxLength   = 255
	MessageMaxLength = 2000
)

// Contact form field names. HoneypotField is hidden from people and left
// empty; automated submitters fill it in.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldMessage  = "message"
	HoneypotField = "website"
)

// Validation message keys, resolved through the locale catalogs.
const (
	KeyNameRequired    = "validation.name_required"
	KeyNameTooLong     = "validation.name_too_long"
	KeyEmailInvalid    = "validation.email_invalid"
	KeyEmailTooLong    = "validation.email_too_long"
	KeyMessageRequired = "validation.message_required"
	KeyMessageTooLong  = "validation.message_too_long"
)

// ContactInput is a submitted contact form.
type ContactInput struct {
	Name     string
	Email    string
	Message  string
	Honeypot string
}

// FieldError is a validation failure scoped to one field. Limit is set for
// length errors.
type FieldError struct {
	Field   string
	Key     string
	Message string
	Limit   int
}

// FieldErrors maps field names to their first failure.
type FieldErrors map[string]FieldError

// Has reports whether field failed validation.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Normalized returns the input with the visible fields trimmed. The
// honeypot is kept as submitted.
func (in ContactInput) Normalized() ContactInput {
	return ContactInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Message:  strings.TrimSpace(in.Message),
		Honeypot: in.Honeypot,
	}
}

// IsBot reports whether the honeypot field holds anything, whitespace included.
func (in ContactInput) IsBot() bool {
	return in.Honeypot != ""
}

// Validate checks the trimmed fields. An empty result means the input can
// be written.
func (in ContactInput) Validate() FieldErrors {
	in = in.Normalized()
	errs := FieldErrors{}

	switch n := utf8.RuneCountInString(in.Name); {
	case n == 0:
		errs[FieldName] = FieldError{Field: FieldName, Key: KeyNameRequired, Message: "Name is required"}
	case n > NameMaxLength:
		errs[FieldName] = FieldError{Field: FieldName, Key: KeyNameTooLong, Message: "Name must be at most 100 characters", Limit: NameMaxLength}
	}

	switch {
	case utf8.RuneCountInString(in.Email) > EmailMaxLength:
		errs[FieldEmail] = FieldError{Field: FieldEmail, Key: KeyEmailTooLong, Message: "Email must be at most 255 characters", Limit: EmailMaxLength}
	case !validEmail(in.Email):
		errs[FieldEmail] = FieldError{Field: FieldEmail, Key: KeyEmailInvalid, Message: "Invalid email"}
	}

	switch n := utf8.RuneCountInString(in.Message); {
	case n == 0:
		errs[FieldMessage] = FieldError{Field: FieldMessage, Key: KeyMessageRequired, Message: "Message is required"}
	case n > MessageMaxLength:
		errs[FieldMessage] = FieldError{Field: FieldMessage, Key: KeyMessageTooLong, Message: "Message must be at most 2000 characters", Limit: MessageMaxLength}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Row returns the trimmed row to insert.
func (in ContactInput) Row() ContactMessage {
	in = in.Normalized()
	return ContactMessage{Name: in.Name, Email: in.Email, Message: in.Message}
}

// validEmail accepts a bare local@domain address with a dotted domain.
func validEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(value, "@")
	domain := value[at+1:]
	return at > 0 && strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
