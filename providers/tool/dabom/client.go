package dabom

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dabomai/dabom-aigo/internal/utils"
	"github.com/dabomai/dabom-aigo/providers/observability"
)

const (
	// DefaultBaseURL is the production endpoint of the Dabom API.
	DefaultBaseURL = "https://api.dabomai.com"

	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "DABOM_API_KEY"

	// DefaultMaxResults is used whenever a non-positive result count is given.
	DefaultMaxResults = 5

	searchPath      = "/search"
	maxErrorBodyLen = 300
	redacted        = "[REDACTED]"
)

// Client talks to the Dabom search endpoint. It is safe for concurrent use.
type Client struct {
	apiKey            string
	baseURL           string
	httpClient        *http.Client
	observer          observability.Provider
	strictAsyncStatus bool
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithBaseURL overrides [DefaultBaseURL]. A trailing slash is ignored.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests. Timeouts configured
// on it apply to every call.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithObserver enables spans, metrics, and logs for every request.
func WithObserver(observer observability.Provider) ClientOption {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithStrictAsyncStatus makes the asynchronous methods accept only status
// 200 instead of any 2xx status.
func WithStrictAsyncStatus() ClientOption {
	return func(c *Client) {
		c.strictAsyncStatus = true
	}
}

// NewClient creates a client authenticating with apiKey. A blank key yields
// a [*ConfigurationError].
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Field: "api key", Reason: "is required (pass it explicitly or set " + EnvAPIKey + ")"}
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClientFromEnv is [NewClient] with the key read from [EnvAPIKey] when
// apiKey is blank.
func NewClientFromEnv(apiKey string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	return NewClient(apiKey, opts...)
}

// RawSearch posts the query and returns the decoded JSON object.
func (c *Client) RawSearch(ctx context.Context, query string, maxResults int) (RawResponse, error) {
	return c.do(ctx, query, maxResults, false)
}

// Search runs [Client.RawSearch] and cleans its "results" array.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]CleanedResult, error) {
	raw, err := c.do(ctx, query, maxResults, false)
	if err != nil {
		return nil, err
	}
	return resultsOf(raw)
}

// RawSearchAsync performs [Client.RawSearch] on its own goroutine. The
// returned channel receives exactly one outcome and is then closed.
func (c *Client) RawSearchAsync(ctx context.Context, query string, maxResults int) <-chan RawSearchOutcome {
	out := make(chan RawSearchOutcome, 1)
	go func() {
		defer close(out)
		raw, err := c.do(ctx, query, maxResults, true)
		out <- RawSearchOutcome{Response: raw, Err: err}
	}()
	return out
}

// SearchAsync performs [Client.Search] on its own goroutine. The returned
// channel receives exactly one outcome and is then closed.
func (c *Client) SearchAsync(ctx context.Context, query string, maxResults int) <-chan SearchOutcome {
	out := make(chan SearchOutcome, 1)
	go func() {
		defer close(out)
		raw, err := c.do(ctx, query, maxResults, true)
		if err != nil {
			out <- SearchOutcome{Err: err}
			return
		}
		results, err := resultsOf(raw)
		out <- SearchOutcome{Results: results, Err: err}
	}()
	return out
}

func (c *Client) do(ctx context.Context, query string, maxResults int, async bool) (RawResponse, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	accept := utils.Is2xx
	if async && c.strictAsyncStatus {
		accept = utils.IsExactlyOK
	}

	var span observability.Span
	if c.observer != nil {
		ctx, span = c.observer.StartSpan(ctx, observability.SpanSearchRequest,
			observability.String(observability.AttrSearchQuery, query),
			observability.Int(observability.AttrSearchMaxResults, maxResults),
			observability.Bool(observability.AttrSearchAsync, async),
		)
		defer span.End()
		ctx = observability.ContextWithSpan(ctx, span)
		c.observer.Counter(observability.MetricSearchRequestCount).Add(ctx, 1)
	}

	start := time.Now()
	res, raw, err := utils.DoPostSync[RawResponse](ctx, c.httpClient, c.baseURL+searchPath, c.apiKey,
		SearchRequest{Query: query, MaxResults: maxResults},
		utils.WithAcceptStatus(accept),
	)
	duration := time.Since(start)

	var response RawResponse
	switch {
	case err != nil:
		err = c.wrapError(err)
	case raw == nil || *raw == nil:
		err = &MalformedResponseError{Index: -1, Detail: "body is not a JSON object"}
	default:
		response = *raw
	}

	if c.observer != nil {
		c.record(ctx, span, res, response, duration, err)
	}
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) record(ctx context.Context, span observability.Span, res *http.Response, response RawResponse, duration time.Duration, err error) {
	attrs := []observability.Attribute{
		observability.Duration(observability.AttrHTTPDuration, duration),
	}
	if res != nil {
		attrs = append(attrs, observability.Int(observability.AttrHTTPStatusCode, res.StatusCode))
	}
	if list, ok := response["results"].([]any); ok {
		attrs = append(attrs, observability.Int(observability.AttrSearchResultsCount, len(list)))
	}
	span.SetAttributes(attrs...)

	c.observer.Histogram(observability.MetricSearchRequestDuration).Record(ctx, float64(duration.Milliseconds()))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
		c.observer.Counter(observability.MetricSearchRequestErrors).Add(ctx, 1,
			observability.String(observability.AttrErrorType, errorType(err)),
		)
		c.observer.Error(ctx, "Dabom search failed", append(attrs, observability.Error(err))...)
		return
	}

	span.SetStatus(observability.StatusOK, "")
	c.observer.Debug(ctx, "Dabom search completed", attrs...)
}

func (c *Client) wrapError(err error) error {
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		return &TransportError{
			StatusCode: httpErr.StatusCode,
			Reason:     httpErr.Reason,
			Body:       utils.TruncateString(c.redact(httpErr.Body), maxErrorBodyLen),
		}
	}

	var decodeErr *utils.DecodeError
	if errors.As(err, &decodeErr) {
		return &MalformedResponseError{Index: -1, Detail: "body is not a JSON object", Err: decodeErr.Err}
	}

	return &TransportError{Err: err}
}

// redact removes the API key from text echoed back by the server.
func (c *Client) redact(s string) string {
	return strings.ReplaceAll(s, c.apiKey, redacted)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unknown"
	}
}
