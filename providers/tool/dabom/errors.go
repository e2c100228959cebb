package dabom

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every [*ConfigurationError].
	ErrConfiguration = errors.New("dabom: configuration error")

	// ErrTransport is matched by every [*TransportError].
	ErrTransport = errors.New("dabom: transport error")

	// ErrMalformedResponse is matched by every [*MalformedResponseError].
	ErrMalformedResponse = errors.New("dabom: malformed response")
)

// ConfigurationError reports a missing or invalid setting detected at
// construction time.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("dabom: invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// TransportError reports a network failure (StatusCode 0, Err set) or a
// response whose status was not accepted.
type TransportError struct {
	StatusCode int
	Reason     string
	// Body is a truncated copy of the error response body
	Body string
	Err  error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("dabom: request failed: %v", e.Err)
	}
	msg := fmt.Sprintf("dabom: error %d: %s", e.StatusCode, e.Reason)
	if e.Body != "" {
		msg += " (" + e.Body + ")"
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// MalformedResponseError reports a response that does not have the expected
// shape. Index is the offending position in the results array, or -1 when
// the envelope itself is wrong.
type MalformedResponseError struct {
	Index  int
	Field  string
	Detail string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	location := "response"
	if e.Index >= 0 {
		location = fmt.Sprintf("result %d", e.Index)
	}
	if e.Field != "" {
		location += fmt.Sprintf(" field %q", e.Field)
	}
	msg := fmt.Sprintf("dabom: malformed response: %s: %s", location, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// ErrInvalidInput is returned for tool input rejected before any request is
// made, such as a blank query.
var ErrInvalidInput = errors.New("dabom: invalid input")
