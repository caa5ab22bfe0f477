package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"sort"
	"strconv"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

// prepareArgs validates args against the tool's input schema and returns
// them as JSON with parameter defaults filled in.
func prepareArgs(d tool.Descriptor, args map[string]any) (json.RawMessage, error) {
	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, domain.NewValidationError(d.Name(), "arguments are not valid JSON: "+err.Error())
	}

	res, err := gojsonschema.Validate(gojsonschema.NewGoLoader(d.InputSchema()), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("tool %s: schema validation: %w", d.Name(), err)
	}
	if !res.Valid() {
		problems := make([]string, 0, len(res.Errors()))
		for _, desc := range res.Errors() {
			problems = append(problems, desc.String())
		}
		sort.Strings(problems)
		return nil, domain.NewValidationError(d.Name(), problems...)
	}

	filled := withDefaults(d, args)
	if len(filled) == len(args) {
		return raw, nil
	}
	out, err := json.Marshal(filled)
	if err != nil {
		return nil, domain.NewValidationError(d.Name(), "arguments are not valid JSON: "+err.Error())
	}
	return out, nil
}

// withDefaults returns a copy of args with defaults set for absent parameters.
func withDefaults(d tool.Descriptor, args map[string]any) map[string]any {
	out := maps.Clone(args)
	if out == nil {
		out = map[string]any{}
	}
	for _, p := range d.Params() {
		if p.Default == nil {
			continue
		}
		if _, ok := out[p.Name]; !ok {
			out[p.Name] = p.Default
		}
	}
	return out
}

// bind decodes validated arguments into A before calling fn.
func bind[A any](name string, fn func(ctx context.Context, args A) (any, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args A
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, domain.NewValidationError(name, decodeProblem(err))
		}
		return fn(ctx, args)
	}
}

// decodeProblem describes a decode failure without Go type names.
func decodeProblem(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s: unexpected %s", typeErr.Field, typeErr.Value)
	}
	var argErr *argError
	if errors.As(err, &argErr) {
		return argErr.Error()
	}
	return "arguments could not be decoded"
}

type argError struct {
	field, problem string
}

func (e *argError) Error() string { return e.field + ": " + e.problem }

// limitArg accepts any JSON number. Values beyond the int32 range saturate,
// request.ClampLimit then bounds the result.
type limitArg struct {
	set   bool
	value int
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *limitArg) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = limitArg{}
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return &argError{field: "limit", problem: "must be a number"}
	}
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	*l = limitArg{set: true, value: int(f)}
	return nil
}

// Ptr returns nil when the limit was absent.
func (l limitArg) Ptr() *int {
	if !l.set {
		return nil
	}
	v := l.value
	return &v
}
