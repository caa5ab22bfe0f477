package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Unwrap(t *testing.T) {
	err := NewValidationError("search_docs", "limit: Invalid type", "tags: Invalid type")
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected errors.Is(err, ErrValidation)")
	}

	want := "invalid arguments for search_docs: limit: Invalid type; tags: Invalid type"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestValidationError_NoProblems(t *testing.T) {
	err := NewValidationError("list_tags")
	if err.Error() != "invalid arguments for list_tags" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestUnknownToolError_Wrapped(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", &UnknownToolError{Name: "nope"})
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatal("expected errors.Is(err, ErrUnknownTool)")
	}

	var ute *UnknownToolError
	if !errors.As(err, &ute) {
		t.Fatal("expected errors.As to extract UnknownToolError")
	}
	if ute.Name != "nope" {
		t.Errorf("name = %q, want nope", ute.Name)
	}
}

func TestDocumentNotFoundError(t *testing.T) {
	err := &DocumentNotFoundError{ID: "guides/redis"}
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatal("expected errors.Is(err, ErrDocumentNotFound)")
	}
	if err.Error() != "document not found: guides/redis" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
