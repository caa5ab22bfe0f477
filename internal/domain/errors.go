package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation signals malformed or missing tool arguments.
	ErrValidation = errors.New("invalid arguments")
	// ErrUnknownTool signals an invocation of a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrBackendUnavailable signals a network or connection failure to the search engine.
	ErrBackendUnavailable = errors.New("search backend unavailable")
	// ErrBackendError signals a malformed or unexpected search engine response.
	ErrBackendError = errors.New("search backend error")
	// ErrDocumentNotFound signals a document identifier that does not resolve.
	ErrDocumentNotFound = errors.New("document not found")
)

// ValidationError wraps ErrValidation with per-field problems.
type ValidationError struct {
	Tool     string
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return fmt.Sprintf("%s for %s", ErrValidation.Error(), e.Tool)
	}
	return fmt.Sprintf("%s for %s: %s", ErrValidation.Error(), e.Tool, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a validation error for a tool.
func NewValidationError(tool string, problems ...string) error {
	return &ValidationError{Tool: tool, Problems: problems}
}

// UnknownToolError wraps ErrUnknownTool with the requested name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTool.Error(), e.Name)
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

// DocumentNotFoundError wraps ErrDocumentNotFound with the requested identifier.
type DocumentNotFoundError struct {
	ID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDocumentNotFound.Error(), e.ID)
}

func (e *DocumentNotFoundError) Unwrap() error { return ErrDocumentNotFound }
