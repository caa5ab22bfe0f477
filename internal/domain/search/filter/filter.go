package filter

import (
	"fmt"
	"strings"
)

// MaxConditionsPerGroup is the maximum number of conditions per OR group.
const MaxConditionsPerGroup = 32

// Expression is a conjunction of OR groups of exact-match conditions.
// The zero value is an empty expression (no filter).
type Expression struct {
	groups [][]Condition
}

// NewExpression validates and creates an Expression.
// Empty groups are dropped; every remaining group is OR-joined internally
// and the groups are AND-joined together.
func NewExpression(groups ...[]Condition) (Expression, error) {
	kept := make([][]Condition, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if len(g) > MaxConditionsPerGroup {
			return Expression{}, fmt.Errorf("too many conditions in group (max %d)", MaxConditionsPerGroup)
		}
		kept = append(kept, g)
	}
	return Expression{groups: kept}, nil
}

// Groups returns the OR groups.
func (e Expression) Groups() [][]Condition { return e.groups }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.groups) == 0 }

// String renders the expression in the engine's filter syntax, e.g.
// `tags = "go" OR tags = "redis"`. Empty expressions render as "".
func (e Expression) String() string {
	if e.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, len(e.groups))
	for _, g := range e.groups {
		clauses := make([]string, len(g))
		for i, c := range g {
			clauses[i] = c.String()
		}
		joined := strings.Join(clauses, " OR ")
		if len(e.groups) > 1 && len(g) > 1 {
			joined = "(" + joined + ")"
		}
		parts = append(parts, joined)
	}
	return strings.Join(parts, " AND ")
}

// Condition is a single exact-equality clause.
type Condition struct {
	key   string
	value string
}

// NewMatch creates an exact equality condition.
func NewMatch(key, value string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if !validKey(key) {
		return Condition{}, fmt.Errorf("invalid filter key %q", key)
	}
	if value == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, value: value}, nil
}

// AnyOf builds one OR group matching key against each value.
// Duplicate values are kept once, first occurrence wins.
func AnyOf(key string, values []string) ([]Condition, error) {
	seen := make(map[string]struct{}, len(values))
	out := make([]Condition, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		c, err := NewMatch(key, v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Value returns the exact match value.
func (c Condition) Value() string { return c.value }

// String renders the condition as `key = "value"`.
func (c Condition) String() string {
	return c.key + " = " + quote(c.value)
}

func quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		ch := v[i]
		if ch == '"' || ch == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	b.WriteByte('"')
	return b.String()
}

func validKey(key string) bool {
	for i := 0; i < len(key); i++ {
		ch := key[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '_' || ch == '.':
		default:
			return false
		}
	}
	return true
}
