package errors

import (
	"fmt"
)

// ValidationError reports input rejected locally before any network call.
// Message is one of the fixed strings shown to the user.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError indicates the remote store has no record with the given ID.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NetworkError represents a failed round trip to the remote API: either a
// transport failure or a response outside the accepted status range.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

// NewNetworkError constructs a NetworkError.
func NewNetworkError(op string, status int, err error) error {
	return &NetworkError{Op: op, Status: status, Err: err}
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("network error on %s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("network error on %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PersistenceError indicates a local preference could not be read or written.
type PersistenceError struct {
	Key string
	Err error
}

// NewPersistenceError constructs a PersistenceError for the given key.
func NewPersistenceError(key string, err error) error {
	return &PersistenceError{Key: key, Err: err}
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("persistence error [%s]: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("persistence error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
