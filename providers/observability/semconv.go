package observability

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolInput is the tool input (serialized)
	AttrToolInput = "tool.input"

	// AttrToolOutput is the tool output (serialized)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool execution failed
	AttrToolError = "tool.error"

	// AttrToolCostAmount is the advertised cost of one call
	AttrToolCostAmount = "tool.cost.amount"

	// AttrToolCostCurrency is the currency of AttrToolCostAmount
	AttrToolCostCurrency = "tool.cost.currency"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"

	// AttrHTTPDuration is the round-trip time of the request
	AttrHTTPDuration = "http.request.duration"
)

// --- Search Attributes ---

const (
	// AttrSearchQuery is the query sent to a search backend
	AttrSearchQuery = "search.query"

	// AttrSearchMaxResults is the requested result count
	AttrSearchMaxResults = "search.max_results"

	// AttrSearchResultsCount is the number of results returned
	AttrSearchResultsCount = "search.results_count"

	// AttrSearchAsync marks requests issued through the asynchronous path
	AttrSearchAsync = "search.async"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanToolExecution is the span name for tool executions
	SpanToolExecution = "tool.execution"

	// SpanSearchRequest is the span name for search API requests
	SpanSearchRequest = "search.request"
)

// --- Event Names ---

const (
	// EventToolExecutionStart marks the start of tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of tool execution
	EventToolExecutionEnd = "tool.execution.end"

	// EventHTTPRequestPrepared marks a request that is about to be sent
	EventHTTPRequestPrepared = "http.request.prepared"

	// EventHTTPRequestError marks a request that failed before a response arrived
	EventHTTPRequestError = "http.request.error"

	// EventHTTPResponseReceived marks a response that has been read in full
	EventHTTPResponseReceived = "http.response.received"
)

// --- Metric Names ---

const (
	// MetricSearchRequestCount counts search API requests
	MetricSearchRequestCount = "search.request.count"

	// MetricSearchRequestErrors counts failed search API requests
	MetricSearchRequestErrors = "search.request.errors"

	// MetricSearchRequestDuration records search latency in milliseconds
	MetricSearchRequestDuration = "search.request.duration_ms"
)
