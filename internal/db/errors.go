package db

import "errors"

// Sentinel errors for backend operations.
var (
	ErrDocumentNotFound = errors.New("db: document not found")
	ErrIndexNotFound    = errors.New("db: index not found")
	// ErrUnavailable covers connection failures, timeouts and gateway errors.
	ErrUnavailable = errors.New("db: backend unavailable")
	// ErrBadResponse covers unexpected statuses and undecodable bodies.
	ErrBadResponse = errors.New("db: bad backend response")
)

// Op constants name backend operations for error context.
const (
	OpHealth      = "health"
	OpSearch      = "search"
	OpGetDocument = "get_document"
	OpStats       = "stats"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
