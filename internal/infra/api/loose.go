package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// looseInt decodes an identifier sent as a number, a numeric string or null.
// Anything unparseable decodes as absent, never as zero.
type looseInt struct {
	value *int64
}

func (l *looseInt) UnmarshalJSON(data []byte) error {
	l.value = parseLooseInt(data)

	return nil
}

// Ptr returns the decoded value or nil.
func (l looseInt) Ptr() *int64 {
	return l.value
}

// Or returns the decoded value or the fallback.
func (l looseInt) Or(fallback int64) int64 {
	if l.value == nil {
		return fallback
	}

	return *l.value
}

// looseFloat decodes a coordinate sent as a number, a numeric string or null.
type looseFloat struct {
	value *float64
}

func (l *looseFloat) UnmarshalJSON(data []byte) error {
	l.value = parseLooseFloat(data)

	return nil
}

// Ptr returns the decoded value or nil.
func (l looseFloat) Ptr() *float64 {
	return l.value
}

func firstInt(values ...looseInt) *int64 {
	for _, v := range values {
		if v.value != nil {
			return v.value
		}
	}

	return nil
}

// parseLooseInt reads integer text exactly; only integral floats such as 7.0 go through float64.
func parseLooseInt(data []byte) *int64 {
	text, ok := looseText(data)
	if !ok {
		return nil
	}

	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &v
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}
	v := int64(f)

	return &v
}

func parseLooseFloat(data []byte) *float64 {
	text, ok := looseText(data)
	if !ok {
		return nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// looseText unwraps a JSON number or string into trimmed text. Null and blanks yield false.
func looseText(data []byte) (string, bool) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		text = strings.TrimSpace(s)
	}

	return text, text != ""
}
