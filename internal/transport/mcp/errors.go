// Package mcp binds the tool dispatcher to the Model Context Protocol over
// stdio and streamable HTTP.
package mcp

import "errors"

// ErrMissingDispatcher is returned when no dispatcher is provided.
var ErrMissingDispatcher = errors.New("mcp: dispatcher is required")
