package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "short string unchanged", input: "hello", maxLen: 10, expected: "hello"},
		{name: "exact length unchanged", input: "hello", maxLen: 5, expected: "hello"},
		{name: "long string truncated", input: "hello world", maxLen: 5, expected: "hello... (truncated, total: 11 chars)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTruncateString_RuneBoundary(t *testing.T) {
	// "검색" is two 3-byte runes; a 4-byte cut lands inside the second one.
	got := TruncateString("검색 결과", 4)
	if got != "검... (truncated, total: 13 chars)" {
		t.Errorf("unexpected truncation: %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated string is not valid UTF-8: %q", got)
	}
}

func TestTruncateString_DefaultLength(t *testing.T) {
	input := strings.Repeat("a", DefaultMaxStringLength+10)
	got := TruncateString(input, 0)
	if !strings.HasPrefix(got, strings.Repeat("a", DefaultMaxStringLength)+"...") {
		t.Errorf("expected truncation at default length, got %d chars", len(got))
	}

	short := "short"
	if got := TruncateString(short, -1); got != short {
		t.Errorf("expected short string unchanged with default length, got %q", got)
	}
}

func TestJSONToString(t *testing.T) {
	object := map[string]int{"a": 1}

	if got := JSONToString(object); got != `{"a":1}` {
		t.Errorf("unexpected compact JSON: %s", got)
	}
	if got := JSONToString(object, true); got != "{\n  \"a\": 1\n}" {
		t.Errorf("unexpected indented JSON: %q", got)
	}

	got := JSONToString(make(chan int))
	if !strings.HasPrefix(got, `{"error":"failed to marshal to JSON: `) {
		t.Errorf("expected error object for unmarshalable value, got %s", got)
	}
}
