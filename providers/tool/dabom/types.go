package dabom

// SearchRequest is the JSON body sent to the search endpoint.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// RawResponse is the unmodified JSON object returned by the service.
type RawResponse map[string]any

// CleanedResult is the projection of one search hit that the tool exposes.
type CleanedResult struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchInput is the argument schema advertised to agents.
type SearchInput struct {
	Query string `json:"query" jsonschema:"description=Search query to look up,required,minLength=1"`
}

// RawSearchOutcome is delivered by [Client.RawSearchAsync].
type RawSearchOutcome struct {
	Response RawResponse
	Err      error
}

// SearchOutcome is delivered by [Client.SearchAsync].
type SearchOutcome struct {
	Results []CleanedResult
	Err     error
}
