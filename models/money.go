package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Amount is a monetary value as the order service serializes it. The
// backend has been observed to emit totals as a JSON number, a numeric
// string, a {"value": "..."} object (BigDecimal style), or null, and to
// zero the field entirely on status-only updates. Amount absorbs all of
// those shapes and keeps the raw bytes so a repair update can resend
// exactly what the server originally returned.
type Amount struct {
	value float64
	valid bool
	raw   json.RawMessage
}

// NewAmount builds an Amount from a plain number.
func NewAmount(v float64) Amount {
	if v < 0 {
		v = 0
	}
	return Amount{value: v, valid: true}
}

// Float64 returns the parsed value, 0 for null or unparseable input.
func (a Amount) Float64() float64 {
	return a.value
}

// Valid reports whether the server sent a parseable, non-null value.
func (a Amount) Valid() bool {
	return a.valid
}

// Lost reports the exact condition the order service exhibits when it
// drops a total on update: a literal 0, "0", null, or a missing field.
// A value like "0.00" is not treated as lost, matching the strict
// comparison the repair was built around.
func (a Amount) Lost() bool {
	if raw := string(bytes.TrimSpace(a.raw)); raw != "" {
		return raw == "0" || raw == `"0"` || raw == "null"
	}
	return !a.valid || a.value == 0
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.raw = append(a.raw[:0], data...)
	a.value = 0
	a.valid = false

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		a.setParsed(s)
	case '{':
		var obj struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil || len(obj.Value) == 0 {
			return nil
		}
		var nested Amount
		if err := nested.UnmarshalJSON(obj.Value); err == nil && nested.valid {
			a.value = nested.value
			a.valid = true
		}
	default:
		a.setParsed(string(trimmed))
	}
	return nil
}

func (a *Amount) setParsed(s string) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return
	}
	if f < 0 {
		f = 0
	}
	a.value = f
	a.valid = true
}

// MarshalJSON re-emits the raw server representation when one was
// captured, so round trips preserve precision and shape.
func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a.raw) > 0 {
		return a.raw, nil
	}
	if !a.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(a.value, 'f', -1, 64)), nil
}
