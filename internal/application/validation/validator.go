package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
)

// Validator turns raw request bodies into normalized DTOs. It never touches the store.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: validate}
}

// messages maps field and failed tag to the message returned to clients.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
		"min":      "Name is required",
	},
	"email": {
		"required": "Email is required",
		"email":    "Invalid email format",
	},
	"title": {
		"required": "Title is required",
		"min":      "Title is required",
	},
	"content": {
		"required": "Content is required",
		"min":      "Content is required",
	},
	"authorId": {
		"required": "Author ID is required",
		"gt":       "Author ID must be a positive integer",
	},
}

var labels = map[string]string{
	"name":     "Name",
	"email":    "Email",
	"title":    "Title",
	"content":  "Content",
	"authorId": "Author ID",
}

func message(field, rule string) string {
	if msg, ok := messages[field][rule]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", labels[field])
}

// fields is a decoded JSON object. Checks record violations instead of failing fast.
type fields struct {
	raw        map[string]json.RawMessage
	violations []custom_errors.FieldViolation
	invalid    map[string]bool
}

func decode(body []byte) (*fields, error) {
	f := &fields{raw: map[string]json.RawMessage{}, invalid: map[string]bool{}}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return f, nil
	}
	if trimmed[0] != '{' || json.Unmarshal(trimmed, &f.raw) != nil {
		return nil, custom_errors.NewValidation([]custom_errors.FieldViolation{
			{Field: "body", Rule: "type", Message: "Request body must be a JSON object"},
		})
	}
	return f, nil
}

func (f *fields) reject(field, rule, msg string) {
	f.invalid[field] = true
	f.violations = append(f.violations, custom_errors.FieldViolation{Field: field, Rule: rule, Message: msg})
}

func (f *fields) present(field string) (json.RawMessage, bool) {
	raw, ok := f.raw[field]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		f.reject(field, "type", fmt.Sprintf("%s must not be null", labels[field]))
		return nil, false
	}
	return raw, true
}

func (f *fields) str(field string) *string {
	raw, ok := f.present(field)
	if !ok {
		return nil
	}
	var s string
	if raw[0] != '"' || json.Unmarshal(raw, &s) != nil {
		f.reject(field, "type", fmt.Sprintf("%s must be a string", labels[field]))
		return nil
	}
	return &s
}

func (f *fields) integer(field string) *int64 {
	raw, ok := f.present(field)
	if !ok {
		return nil
	}
	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		f.reject(field, "type", fmt.Sprintf("%s must be a number", labels[field]))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		f.reject(field, "type", fmt.Sprintf("%s must be a number", labels[field]))
		return nil
	}
	value, err := n.Int64()
	if err != nil {
		f.reject(field, "int", message(field, "gt"))
		return nil
	}
	return &value
}

// check runs the struct rules and folds their failures into the collected violations.
// Fields that already failed a type check are not reported twice.
func (v *Validator) check(f *fields, req any) error {
	err := v.validate.Struct(req)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate request: %w", err)
		}
		for _, fe := range validationErrors {
			if f.invalid[fe.Field()] {
				continue
			}
			f.reject(fe.Field(), fe.Tag(), message(fe.Field(), fe.Tag()))
		}
	}

	if len(f.violations) > 0 {
		return custom_errors.NewValidation(f.violations)
	}
	return nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	return &normalized
}
