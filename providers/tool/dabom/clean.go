package dabom

import "fmt"

// CleanResults projects each raw result record onto its url and content.
// Order and count are preserved and raw is never modified.
func CleanResults(raw []any) ([]CleanedResult, error) {
	cleaned := make([]CleanedResult, 0, len(raw))
	for i, item := range raw {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, &MalformedResponseError{Index: i, Detail: "expected object, got " + jsonKind(item)}
		}

		url, err := stringField(record, i, "url")
		if err != nil {
			return nil, err
		}
		content, err := stringField(record, i, "content")
		if err != nil {
			return nil, err
		}
		cleaned = append(cleaned, CleanedResult{URL: url, Content: content})
	}
	return cleaned, nil
}

// resultsOf extracts and cleans the "results" array of a response.
func resultsOf(raw RawResponse) ([]CleanedResult, error) {
	value, ok := raw["results"]
	if !ok {
		return nil, &MalformedResponseError{Index: -1, Field: "results", Detail: "missing field"}
	}
	list, ok := value.([]any)
	if !ok {
		return nil, &MalformedResponseError{Index: -1, Field: "results", Detail: "expected array, got " + jsonKind(value)}
	}
	return CleanResults(list)
}

func stringField(record map[string]any, index int, name string) (string, error) {
	value, ok := record[name]
	if !ok {
		return "", &MalformedResponseError{Index: index, Field: name, Detail: "missing field"}
	}
	s, ok := value.(string)
	if !ok {
		return "", &MalformedResponseError{Index: index, Field: name, Detail: "expected string, got " + jsonKind(value)}
	}
	return s, nil
}

// jsonKind names the JSON type of a value decoded by encoding/json.
func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
