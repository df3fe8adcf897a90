package domain

import (
	"encoding/json"
	"math"
	"strings"
)

// Selections is the normalized list of snack choices carried in a SessionContext.
// It is always a list internally; the single-string form only exists on the wire.
type Selections []string

// MarshalJSON encodes a single selection as a bare string and several as a list.
func (s Selections) MarshalJSON() ([]byte, error) {
	switch len(s) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(s[0])
	default:
		return json.Marshal([]string(s))
	}
}

// UnmarshalJSON accepts a string or a list of strings. Any other shape decodes to nil.
func (s *Selections) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = parseSelections(raw)
	return nil
}

// SessionContext is the accumulated state the caller echoes back every turn.
type SessionContext struct {
	Table  *int       `json:"table,omitempty"`
	Snacks Selections `json:"snacks,omitempty"`
}

// UnmarshalJSON decodes a context object leniently: fields of the wrong type are treated as
// absent instead of failing the request.
func (c *SessionContext) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	obj, _ := raw.(map[string]any)
	*c = ParseSessionContext(obj)
	return nil
}

// ParseSessionContext normalizes a loosely-typed context map.
func ParseSessionContext(raw map[string]any) SessionContext {
	var ctx SessionContext
	if raw == nil {
		return ctx
	}
	if n, ok := integral(raw["table"]); ok {
		ctx.Table = &n
	}
	ctx.Snacks = parseSelections(raw["snacks"])
	return ctx
}

// WithTable returns a copy of the context with the table set.
func (c SessionContext) WithTable(n int) SessionContext {
	c.Table = &n
	return c
}

// WithSnacks returns a copy of the context with the selections replaced.
func (c SessionContext) WithSnacks(s Selections) SessionContext {
	if len(s) == 0 {
		c.Snacks = nil
		return c
	}
	c.Snacks = append(Selections(nil), s...)
	return c
}

func parseSelections(v any) Selections {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return Selections{t}
	case []string:
		return keepNonBlank(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return keepNonBlank(out)
	}
	return nil
}

func keepNonBlank(in []string) Selections {
	var out Selections
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func integral(v any) (int, bool) {
	var f float64
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// Out-of-range tables still count as present so validation can say why they were rejected.
	f = math.Max(math.MinInt32, math.Min(math.MaxInt32, f))
	return int(f), true
}
