package parse

import (
	"strings"
	"testing"
)

type queryInput struct {
	Query string `json:"query"`
}

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseStringAs_Struct(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected person
	}{
		{name: "valid JSON", content: `{"name":"John","age":30}`, expected: person{Name: "John", Age: 30}},
		{name: "unquoted keys and single quotes", content: `{name: 'John', age: 30}`, expected: person{Name: "John", Age: 30}},
		{name: "trailing comma", content: `{"name":"John","age":30,}`, expected: person{Name: "John", Age: 30}},
		{name: "markdown fence", content: "```json\n{\"name\":\"John\",\"age\":30}\n```", expected: person{Name: "John", Age: 30}},
		{name: "schema wrapped values", content: `{"name":{"type":"string","value":"John"},"age":{"type":"integer","value":30}}`, expected: person{Name: "John", Age: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[person](tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestParseStringAs_SingleStringField(t *testing.T) {
	tests := []struct {
		content  string
		expected string
	}{
		{content: `{"query":"golang news"}`, expected: "golang news"},
		{content: `golang news`, expected: "golang news"},
		{content: `  "golang news"  `, expected: "golang news"},
		{content: `{query: "golang news"}`, expected: "golang news"},
	}

	for _, tt := range tests {
		got, err := ParseStringAs[queryInput](tt.content)
		if err != nil {
			t.Fatalf("ParseStringAs(%q) failed: %v", tt.content, err)
		}
		if got.Query != tt.expected {
			t.Errorf("ParseStringAs(%q) = %q, expected %q", tt.content, got.Query, tt.expected)
		}
	}
}

func TestParseStringAs_BareStringRejectedForMultiFieldStruct(t *testing.T) {
	_, err := ParseStringAs[person](`just words`)
	if err == nil {
		t.Fatal("expected error for bare string into multi-field struct")
	}
	if !strings.Contains(err.Error(), "parse.person") {
		t.Errorf("expected error to name the target type, got %v", err)
	}
}

func TestParseStringAs_Primitives(t *testing.T) {
	if got, err := ParseStringAs[string]("hello"); err != nil || got != "hello" {
		t.Errorf("string: got %q, %v", got, err)
	}
	if got, err := ParseStringAs[string](`{"type":"string","value":"wrapped"}`); err != nil || got != "wrapped" {
		t.Errorf("wrapped string: got %q, %v", got, err)
	}
	if got, err := ParseStringAs[bool](" true "); err != nil || !got {
		t.Errorf("bool: got %v, %v", got, err)
	}
	if got, err := ParseStringAs[int]("42"); err != nil || got != 42 {
		t.Errorf("int: got %d, %v", got, err)
	}
	if got, err := ParseStringAs[int](`{"type":"integer","value":7}`); err != nil || got != 7 {
		t.Errorf("wrapped int: got %d, %v", got, err)
	}
	if got, err := ParseStringAs[uint8]("200"); err != nil || got != 200 {
		t.Errorf("uint8: got %d, %v", got, err)
	}
	if got, err := ParseStringAs[float64]("3.5"); err != nil || got != 3.5 {
		t.Errorf("float64: got %f, %v", got, err)
	}
	if _, err := ParseStringAs[int]("forty-two"); err == nil {
		t.Error("expected error for non-numeric int")
	}
}

func TestParseStringAs_SliceAndMap(t *testing.T) {
	list, err := ParseStringAs[[]string](`["a","b",]`)
	if err != nil || len(list) != 2 || list[1] != "b" {
		t.Errorf("slice: got %v, %v", list, err)
	}

	m, err := ParseStringAs[map[string]int](`{a: 1}`)
	if err != nil || m["a"] != 1 {
		t.Errorf("map: got %v, %v", m, err)
	}
}
