// Package common defines sentinel errors and the validation error type shared
// by the GreenPath client layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Store errors.
	ErrEmailAlreadyExists    = errors.New("this email address is already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrCorruptPersistedState = errors.New("corrupt persisted state")
	ErrNoActiveUser          = errors.New("no active user")

	// Flow errors.
	ErrSetupIncomplete = errors.New("profile setup incomplete")
	ErrExternalService = errors.New("external service failure")

	// ErrValidation is the target for errors.Is on any *ValidationError.
	ErrValidation = errors.New("validation error")
)

// ValidationError collects field-level messages for malformed form input.
// Fields maps a form field name to the message shown next to it.
type ValidationError struct {
	Fields map[string]string
}

// Add records msg for field. The first message recorded for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

// OrNil returns e when at least one field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
