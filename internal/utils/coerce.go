package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// LooseInt reads an integer the way a lenient form field would: JSON numbers
// are truncated, strings are parsed up to the first non-digit. Anything else,
// including values outside the int range, yields nil.
func LooseInt(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return leadingInt(s)
	case 'n', 't', 'f', '[', '{':
		return nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	f = math.Trunc(f)
	// float64(math.MaxInt) rounds up to 2^63, which no int can hold.
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return nil
	}
	n := int(f)
	return &n
}

func leadingInt(s string) *int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

// Truthy reports whether a JSON value counts as set: false, 0, "", null and
// absent values are false, everything else is true.
func Truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '[', '{':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && f != 0
}

// LooseString returns a JSON string as-is and a non-zero JSON number or true
// as its literal text. Everything else is "".
func LooseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 't':
		return "true"
	case 'n', 'f', '[', '{':
		return ""
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err != nil || f == 0 {
		return ""
	}
	return string(raw)
}
