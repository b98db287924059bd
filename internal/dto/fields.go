package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var jsonNull = []byte("null")

// NullableInt is an integer field that accepts a JSON number or a numeric string,
// and remembers whether the key was present and whether it was null.
// Fractional values are truncated.
type NullableInt struct {
	Value   int64
	Present bool
	Null    bool
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Present = true
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		n.Null = true
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			n.Null = true
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid integer value %q", raw)
	}
	n.Value = int64(f)
	return nil
}

// IsSet reports whether a non-null value was supplied
func (n NullableInt) IsSet() bool {
	return n.Present && !n.Null
}

// Cleared reports whether the key was sent as null or 0, which for a reference means "none"
func (n NullableInt) Cleared() bool {
	return n.Present && (n.Null || n.Value == 0)
}

// ID returns the value as an identifier. Zero, negative and missing values are not IDs.
func (n NullableInt) ID() (uint64, bool) {
	if !n.IsSet() || n.Value <= 0 {
		return 0, false
	}
	return uint64(n.Value), true
}

// NullableString is a string field that distinguishes absent, null and set.
type NullableString struct {
	Value   string
	Present bool
	Null    bool
}

// UnmarshalJSON implements json.Unmarshaler
func (s *NullableString) UnmarshalJSON(data []byte) error {
	s.Present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		s.Null = true
		return nil
	}
	return json.Unmarshal(data, &s.Value)
}

// Ptr returns nil for an absent or null value
func (s NullableString) Ptr() *string {
	if !s.Present || s.Null {
		return nil
	}
	v := s.Value
	return &v
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NullableTime is a timestamp field that accepts RFC 3339 strings, plain dates, or
// milliseconds since the epoch. An empty string counts as null.
type NullableTime struct {
	Value   time.Time
	Present bool
	Null    bool
}

// UnmarshalJSON implements json.Unmarshaler
func (t *NullableTime) UnmarshalJSON(data []byte) error {
	t.Present = true
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		t.Null = true
		return nil
	}

	if !bytes.HasPrefix(data, []byte(`"`)) {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %s", data)
		}
		t.Value = time.UnixMilli(ms).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Null = true
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Value = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// Ptr returns nil for an absent or null value
func (t NullableTime) Ptr() *time.Time {
	if !t.Present || t.Null {
		return nil
	}
	v := t.Value
	return &v
}
