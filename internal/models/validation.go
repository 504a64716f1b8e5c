package models

import (
	"regexp"
	"sort"
	"strings"
)

// ErrorKind classifies a form validation failure
type ErrorKind string

const (
	RequiredField ErrorKind = "required_field"
	InvalidFormat ErrorKind = "invalid_format"
	InvalidValue  ErrorKind = "invalid_value"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is a validation failure on a single form field
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors maps a field name to its error. Every field is checked;
// nothing short-circuits.
type ValidationErrors map[string]FieldError

func (v ValidationErrors) add(field string, kind ErrorKind, message string) {
	v[field] = FieldError{Field: field, Kind: kind, Message: message}
}

// Error implements error with the messages in field order
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, v[field].Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed validation
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Message returns the message for field or an empty string
func (v ValidationErrors) Message(field string) string {
	return v[field].Message
}

// IsValidEmail reports whether email has a basic local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
