package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/medicare-web/internal/backend"
)

// Submission is a parsed form post.
type Submission struct {
	// Values are the raw entries, kept to refill the form on failure.
	Values  map[string]string
	Errors  map[string]string
	Payload backend.Record
}

// Valid reports whether the submission can be sent.
func (s Submission) Valid() bool {
	return len(s.Errors) == 0
}

// Parse reads the form's fields from values. Only required fields are
// checked; typed fields are converted for the JSON payload and blank
// optional numbers are left out. company, when the form is scoped, is sent
// as company_id.
func (f Form) Parse(values url.Values, v *validator.Validate, company string) Submission {
	sub := Submission{
		Values:  make(map[string]string, len(f.Fields)),
		Errors:  make(map[string]string),
		Payload: make(backend.Record, len(f.Fields)+1),
	}
	for _, field := range f.Fields {
		raw := values.Get(field.Name)
		if field.Kind != KindPassword && field.Kind != KindTextarea {
			raw = strings.TrimSpace(raw)
		}

		if field.Kind == KindSwitch {
			on := raw != "" && raw != "false" && raw != "off"
			if on {
				sub.Values[field.Name] = "true"
			}
			sub.Payload[field.Name] = on
			continue
		}

		if field.Kind != KindPassword {
			sub.Values[field.Name] = raw
		}
		if field.Required {
			if err := v.Var(raw, "required"); err != nil {
				sub.Errors[field.Name] = "This field is required"
				continue
			}
		}

		switch field.Kind {
		case KindNumber:
			if raw == "" {
				continue
			}
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				sub.Errors[field.Name] = "Enter a number"
				continue
			}
			sub.Payload[field.Name] = n
		case KindInteger:
			if raw == "" {
				continue
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				sub.Errors[field.Name] = "Enter a whole number"
				continue
			}
			sub.Payload[field.Name] = n
		default:
			sub.Payload[field.Name] = raw
		}
	}
	sub.Payload["company_id"] = company
	return sub
}

// Defaults returns the form's initial values.
func (f Form) Defaults() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		if field.Default != "" {
			out[field.Name] = field.Default
		}
	}
	return out
}
