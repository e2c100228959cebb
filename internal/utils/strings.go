package utils

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultMaxStringLength is the default maximum length for truncated strings
	DefaultMaxStringLength = 500
)

// JSONToString serialises object to JSON. When indent is true the output is
// pretty-printed with two-space indentation. On marshalling failure it
// returns a JSON-formatted error object instead of panicking.
func JSONToString(object any, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		errorObject, _ := json.Marshal(map[string]string{"error": "failed to marshal to JSON: " + err.Error()})
		return string(errorObject)
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen bytes, appending a suffix that
// records the original total length. The cut never splits a UTF-8 sequence.
// A maxLen of zero or less means [DefaultMaxStringLength].
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:cut], len(s))
}
