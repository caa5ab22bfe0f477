package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

// Handler runs one tool. args is the schema-validated argument object with
// defaults applied. The returned value is serialized into the response.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

type entry struct {
	desc    tool.Descriptor
	handler Handler
}

// Registry maps tool names to descriptors and handlers.
// It is filled once at startup and read-only afterwards.
type Registry struct {
	entries []entry
	byName  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a tool. Names must be unique; listing order is registration order.
func (r *Registry) Register(d tool.Descriptor, h Handler) error {
	if h == nil {
		return fmt.Errorf("tool %s: handler is required", d.Name())
	}
	if _, dup := r.byName[d.Name()]; dup {
		return fmt.Errorf("tool %s: already registered", d.Name())
	}
	r.byName[d.Name()] = len(r.entries)
	r.entries = append(r.entries, entry{desc: d, handler: h})
	return nil
}

// List returns all descriptors in registration order.
func (r *Registry) List() []tool.Descriptor {
	out := make([]tool.Descriptor, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.desc
	}
	return out
}

// Lookup finds a tool by exact name.
func (r *Registry) Lookup(name string) (tool.Descriptor, Handler, bool) {
	i, ok := r.byName[name]
	if !ok {
		return tool.Descriptor{}, nil, false
	}
	e := r.entries[i]
	return e.desc, e.handler, true
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.entries) }
