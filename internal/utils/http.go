package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dabomai/dabom-aigo/providers/observability"
)

// maxResponseBodySize caps how much of a response body is read into memory.
const maxResponseBodySize = 10 * 1024 * 1024

// HTTPError is returned by [DoPostSync] when the response status is not
// accepted. Reason is the status text without the numeric code
// (e.g. "Not Found").
type HTTPError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("non-2xx status %d: %s: %s", e.StatusCode, e.Reason, TruncateString(e.Body, 200))
}

// DecodeError is returned by [DoPostSync] when an accepted response body
// cannot be unmarshaled into the requested output type.
type DecodeError struct {
	StatusCode int
	Preview    string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error unmarshaling response body (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is2xx reports whether code is in the 200-299 range.
func Is2xx(code int) bool {
	return code >= 200 && code < 300
}

// IsExactlyOK reports whether code is 200.
func IsExactlyOK(code int) bool {
	return code == http.StatusOK
}

type postOptions struct {
	accept  func(int) bool
	headers map[string]string
}

// PostOption customises a single [DoPostSync] call.
type PostOption func(*postOptions)

// WithAcceptStatus replaces the default [Is2xx] success check.
func WithAcceptStatus(accept func(int) bool) PostOption {
	return func(o *postOptions) {
		if accept != nil {
			o.accept = accept
		}
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) PostOption {
	return func(o *postOptions) {
		o.headers[key] = value
	}
}

// DoPostSync performs a synchronous HTTP POST request with JSON body and parses the response.
// It handles observability tracing, authorization headers, and proper resource cleanup.
//
// Error Handling Strategy:
//   - Context errors (timeout, cancellation) and connection failures are wrapped and returned
//   - A status rejected by the accept check (default [Is2xx]) returns an [*HTTPError]
//   - A body that does not unmarshal into OutputStruct returns a [*DecodeError]
//   - Response body close errors are logged but don't override primary errors
//
// The API key is only ever placed in the Authorization header; it is never
// recorded on spans or included in returned errors.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any, opts ...PostOption) (*http.Response, *OutputStruct, error) {
	options := &postOptions{accept: Is2xx, headers: map[string]string{}}
	for _, opt := range opts {
		opt(options)
	}

	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent(observability.EventHTTPRequestPrepared,
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for key, value := range options.headers {
		req.Header.Set(key, value)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if span != nil {
			span.AddEvent(observability.EventHTTPRequestError,
				observability.Error(err),
				observability.Duration(observability.AttrHTTPDuration, requestDuration),
			)
		}
		return nil, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent(observability.EventHTTPResponseReceived,
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration(observability.AttrHTTPDuration, requestDuration),
		)
	}

	if !options.accept(res.StatusCode) {
		return res, nil, &HTTPError{
			StatusCode: res.StatusCode,
			Reason:     statusReason(res),
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, &DecodeError{
			StatusCode: res.StatusCode,
			Preview:    TruncateString(string(respBody), 500),
			Err:        err,
		}
	}

	return res, &resStruct, nil
}

// statusReason extracts the reason phrase from res.Status ("404 Not Found"
// -> "Not Found"), falling back to the canonical text for the code.
func statusReason(res *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if reason == "" {
		reason = http.StatusText(res.StatusCode)
	}
	return reason
}

// CloseWithLog closes c and logs, rather than returns, any close error.
func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}
