// Package tool models named, schema-described operations and their
// transport-neutral request and response envelopes.
package tool

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// ParamType is the JSON type of a tool parameter.
type ParamType string

// Supported parameter types.
const (
	String  ParamType = "string"
	Integer ParamType = "integer"
	// StringArray is an array of strings.
	StringArray ParamType = "array"
)

// IsValid checks if the type is one of the supported values.
func (p ParamType) IsValid() bool {
	return p == String || p == Integer || p == StringArray
}

// Param describes one named input parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	// Default is advertised in the schema and applied before the handler runs. Nil means none.
	Default any
}

var toolNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// Descriptor is an immutable tool definition: name, description and input schema.
type Descriptor struct {
	name        string
	description string
	params      []Param
}

// NewDescriptor validates and creates a Descriptor. Parameter order is kept.
func NewDescriptor(name, description string, params ...Param) (Descriptor, error) {
	if !toolNameRe.MatchString(name) {
		return Descriptor{}, fmt.Errorf("invalid tool name %q", name)
	}
	if description == "" {
		return Descriptor{}, fmt.Errorf("tool %s: description is required", name)
	}
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if p.Name == "" {
			return Descriptor{}, fmt.Errorf("tool %s: parameter name is required", name)
		}
		if _, dup := seen[p.Name]; dup {
			return Descriptor{}, fmt.Errorf("tool %s: duplicate parameter %q", name, p.Name)
		}
		seen[p.Name] = struct{}{}
		if !p.Type.IsValid() {
			return Descriptor{}, fmt.Errorf("tool %s: parameter %q has invalid type %q", name, p.Name, p.Type)
		}
		if p.Required && p.Default != nil {
			return Descriptor{}, fmt.Errorf("tool %s: required parameter %q cannot have a default", name, p.Name)
		}
	}
	ps := make([]Param, len(params))
	copy(ps, params)
	return Descriptor{name: name, description: description, params: ps}, nil
}

// MustDescriptor calls NewDescriptor and panics on error.
func MustDescriptor(name, description string, params ...Param) Descriptor {
	d, err := NewDescriptor(name, description, params...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the stable tool identifier.
func (d Descriptor) Name() string { return d.name }

// Description returns the human-readable description.
func (d Descriptor) Description() string { return d.description }

// Params returns a copy of the parameter list.
func (d Descriptor) Params() []Param {
	ps := make([]Param, len(d.params))
	copy(ps, d.params)
	return ps
}

// InputSchema renders the parameters as a JSON Schema object.
// Every call returns a fresh map.
func (d Descriptor) InputSchema() map[string]any {
	props := make(map[string]any, len(d.params))
	var required []string
	for _, p := range d.params {
		prop := map[string]any{"type": string(p.Type)}
		if p.Type == StringArray {
			prop["items"] = map[string]any{"type": string(String)}
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// MarshalJSON encodes the descriptor as {name, description, inputSchema}.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		InputSchema map[string]any `json:"inputSchema"`
	}{d.name, d.description, d.InputSchema()})
}

// Listing is the response to a tool listing request.
type Listing struct {
	Tools []Descriptor `json:"tools"`
}
