package tool

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/dabomai/dabom-aigo/internal/jsonschema"
)

// Result is either a value (Ok) or a textual error description (Err).
//
// Agent-facing tools return a Result so that failures reach the model as data
// rather than aborting the run. On the wire an Ok result encodes as its value
// and an Err result encodes as a JSON string.
type Result[T any] struct {
	value  T
	errMsg string
	failed bool
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil error is reported as "unknown error".
func Err[T any](err error) Result[T] {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{errMsg: msg, failed: true}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return !r.failed
}

// Value returns the wrapped value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	return r.value, !r.failed
}

// ErrorText returns the error description and true for an Err result.
func (r Result[T]) ErrorText() (string, bool) {
	return r.errMsg, r.failed
}

// Unwrap converts r back into Go's (value, error) convention.
func (r Result[T]) Unwrap() (T, error) {
	if r.failed {
		var zero T
		return zero, errors.New(r.errMsg)
	}
	return r.value, nil
}

// String returns the error description, or the value encoded as JSON.
func (r Result[T]) String() string {
	if r.failed {
		return r.errMsg
	}
	encoded, err := json.Marshal(r.value)
	if err != nil {
		return err.Error()
	}
	return string(encoded)
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.failed {
		return json.Marshal(r.errMsg)
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes a value into an Ok result. A JSON string that does
// not decode as T becomes an Err result.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var value T
	err := json.Unmarshal(data, &value)
	if err == nil {
		*r = Ok(value)
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return err
	}
	var msg string
	if json.Unmarshal(trimmed, &msg) != nil {
		return err
	}
	*r = Result[T]{errMsg: msg, failed: true}
	return nil
}

// JSONSchema describes the value schema or an error string.
func (Result[T]) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			jsonschema.Generate[T](),
			{Type: "string", Description: "Error description when the call failed"},
		},
	}
}
