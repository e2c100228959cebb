package dabom

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dabomai/dabom-aigo/core/cost"
	"github.com/dabomai/dabom-aigo/providers/tool"
)

const (
	// ToolName is the name the search tool is registered under.
	ToolName = "dabom_search_results_json"

	toolDescription = "A search engine optimized for comprehensive, accurate, and trusted results. " +
		"Useful for when you need to answer questions about current events. " +
		"Input should be a search query."
)

var searchMetrics = cost.ToolMetrics{
	Amount:                  0.001,
	Currency:                "USD",
	CostDescription:         "per search query",
	Accuracy:                0.9,
	AverageDurationInMillis: 1000,
}

// Searcher is the part of [Client] the tool depends on.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]CleanedResult, error)
	SearchAsync(ctx context.Context, query string, maxResults int) <-chan SearchOutcome
}

var _ Searcher = (*Client)(nil)

// SearchTool adapts a [Searcher] to agents. It reports every failure as an
// Err result and never returns a Go error.
type SearchTool struct {
	searcher    Searcher
	initErr     error
	name        string
	description string
	maxResults  int
	markdown    bool
	clientOpts  []ClientOption
}

// SearchToolOption configures a [SearchTool].
type SearchToolOption func(*SearchTool)

// WithMaxResults sets how many results each call requests. Non-positive
// values mean [DefaultMaxResults].
func WithMaxResults(n int) SearchToolOption {
	return func(s *SearchTool) {
		if n <= 0 {
			n = DefaultMaxResults
		}
		s.maxResults = n
	}
}

// WithName overrides [ToolName].
func WithName(name string) SearchToolOption {
	return func(s *SearchTool) {
		if name != "" {
			s.name = name
		}
	}
}

// WithDescription overrides the description advertised to agents.
func WithDescription(description string) SearchToolOption {
	return func(s *SearchTool) {
		if description != "" {
			s.description = description
		}
	}
}

// WithMarkdownContent converts HTML result content to Markdown.
func WithMarkdownContent() SearchToolOption {
	return func(s *SearchTool) {
		s.markdown = true
	}
}

// WithClientOptions passes options to the client built by
// [NewDabomSearchTool] and [NewSearchToolForKey].
func WithClientOptions(opts ...ClientOption) SearchToolOption {
	return func(s *SearchTool) {
		s.clientOpts = append(s.clientOpts, opts...)
	}
}

// NewSearchTool wraps searcher, usually a [*Client].
func NewSearchTool(searcher Searcher, opts ...SearchToolOption) *SearchTool {
	s := &SearchTool{
		searcher:    searcher,
		name:        ToolName,
		description: toolDescription,
		maxResults:  DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSearchToolFromError returns a tool whose every call reports err. It lets
// a composition root register the tool even when the client could not be
// built.
func NewSearchToolFromError(err error, opts ...SearchToolOption) *SearchTool {
	s := NewSearchTool(nil, opts...)
	s.initErr = err
	return s
}

// NewSearchToolForKey builds the client itself. The key falls back to
// [EnvAPIKey]; a configuration error is kept and reported in-band.
func NewSearchToolForKey(apiKey string, opts ...SearchToolOption) *SearchTool {
	s := NewSearchTool(nil, opts...)
	client, err := NewClientFromEnv(apiKey, s.clientOpts...)
	if err != nil {
		s.initErr = err
		return s
	}
	s.searcher = client
	return s
}

// NewDabomSearchTool creates the framework tool for web search, ready to be
// added to a [tool.Catalog]. The key falls back to [EnvAPIKey].
func NewDabomSearchTool(apiKey string, opts ...SearchToolOption) (*tool.Tool[SearchInput, tool.Result[[]CleanedResult]], error) {
	s := NewSearchToolForKey(apiKey, opts...)
	if s.initErr != nil {
		return nil, s.initErr
	}
	return s.Tool(), nil
}

// Name returns the registered tool name.
func (s *SearchTool) Name() string {
	return s.name
}

// Description returns the description advertised to agents.
func (s *SearchTool) Description() string {
	return s.description
}

// MaxResults returns the result count requested per call.
func (s *SearchTool) MaxResults() int {
	return s.maxResults
}

// Invoke searches for query and blocks until the result is available.
func (s *SearchTool) Invoke(ctx context.Context, query string) (result tool.Result[[]CleanedResult]) {
	if err := s.check(query); err != nil {
		return tool.Err[[]CleanedResult](err)
	}

	defer func() {
		if r := recover(); r != nil {
			result = tool.Err[[]CleanedResult](fmt.Errorf("dabom: search panicked: %v", r))
		}
	}()

	results, err := s.searcher.Search(ctx, query, s.maxResults)
	return s.result(results, err)
}

// InvokeAsync is [SearchTool.Invoke] without blocking the caller. The
// channel receives exactly one result and is then closed.
func (s *SearchTool) InvokeAsync(ctx context.Context, query string) <-chan tool.Result[[]CleanedResult] {
	out := make(chan tool.Result[[]CleanedResult], 1)
	if err := s.check(query); err != nil {
		out <- tool.Err[[]CleanedResult](err)
		close(out)
		return out
	}

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				out <- tool.Err[[]CleanedResult](fmt.Errorf("dabom: search panicked: %v", r))
			}
		}()

		outcome, ok := <-s.searcher.SearchAsync(ctx, query, s.maxResults)
		if !ok {
			outcome.Err = errors.New("dabom: search finished without an outcome")
		}
		out <- s.result(outcome.Results, outcome.Err)
	}()
	return out
}

// Tool exposes the search as a framework tool. Its Call method reports
// failures as a JSON string output.
func (s *SearchTool) Tool() *tool.Tool[SearchInput, tool.Result[[]CleanedResult]] {
	return tool.NewTool(
		s.name,
		func(ctx context.Context, input SearchInput) (tool.Result[[]CleanedResult], error) {
			return s.Invoke(ctx, input.Query), nil
		},
		tool.WithDescription(s.description),
		tool.WithMetrics(searchMetrics),
		tool.WithInBandErrors(),
	)
}

func (s *SearchTool) check(query string) error {
	if s.initErr != nil {
		return s.initErr
	}
	if s.searcher == nil {
		return &ConfigurationError{Field: "searcher", Reason: "is not set"}
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}
	return nil
}

func (s *SearchTool) result(results []CleanedResult, err error) tool.Result[[]CleanedResult] {
	if err != nil {
		return tool.Err[[]CleanedResult](err)
	}
	if results == nil {
		results = []CleanedResult{}
	}
	if s.markdown {
		results = markdownContent(results)
	}
	return tool.Ok(results)
}
