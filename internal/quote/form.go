// Package quote implements the contact form: field validation, the client
// that relays a quote request to the relay endpoint, and the mapping from
// failures to the notices shown to visitors.
package quote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kohinoor-interiors/showroom/internal/models"
)

// Form is a quote request as typed by the visitor. JSON names match the
// relay's wire format; form names match the HTML inputs.
type Form struct {
	FullName    string             `json:"fullName" form:"fullName"`
	Email       string             `json:"email" form:"email"`
	Phone       string             `json:"phone" form:"phone"`
	ProjectType models.ProjectType `json:"projectType" form:"projectType"`
	Message     string             `json:"message" form:"message"`
}

// emailPattern requires a local part, "@", and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// FieldError names one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid quote request: %s", strings.Join(names, ", "))
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Normalize trims every field and lower-cases the project type.
func (f Form) Normalize() Form {
	return Form{
		FullName:    strings.TrimSpace(f.FullName),
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		ProjectType: models.ProjectType(strings.ToLower(strings.TrimSpace(string(f.ProjectType)))),
		Message:     strings.TrimSpace(f.Message),
	}
}

// Validate checks the normalized form. Full name, email, phone and message
// are required; project type is optional but must be a known value.
func (f Form) Validate() error {
	n := f.Normalize()
	var errs []FieldError

	if n.FullName == "" {
		errs = append(errs, FieldError{Field: "fullName", Message: "Full name is required."})
	}
	switch {
	case n.Email == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email address is required."})
	case !ValidEmail(n.Email):
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address."})
	}
	if n.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone number is required."})
	}
	if !n.ProjectType.Valid() {
		errs = append(errs, FieldError{Field: "projectType", Message: "Please choose a listed project type."})
	}
	if n.Message == "" {
		errs = append(errs, FieldError{Field: "message", Message: "Please tell us about your project."})
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Reset returns the empty form shown after a successful submission.
func (f Form) Reset() Form { return Form{} }

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool { return f == Form{} }
