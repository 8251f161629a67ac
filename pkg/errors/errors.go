package errors

import (
	"fmt"
)

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

// ValidationError captures configuration or result validation issues.
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

// CollaboratorError reports a failed call to an external collaborator such as
// the color-suggestion model or the image exporter.
type CollaboratorError struct {
	Collaborator string
	Op           string
	Err          error
}

// NewCollaboratorError constructs a CollaboratorError.
func NewCollaboratorError(collaborator, op string, err error) error {
	return &CollaboratorError{Collaborator: collaborator, Op: op, Err: err}
}

func (e *CollaboratorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("%s %s failed: %v", e.Collaborator, e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Collaborator, e.Err)
}

// Unwrap exposes the root error.
func (e *CollaboratorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
