package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses content into T.
//
// Primitive kinds (string, bool, integers, floats) are converted directly.
// Everything else is JSON-decoded; when decoding fails the content is run
// through jsonrepair and retried, then schema-style {"type","value"} wrappers
// are unwrapped. A struct with exactly one exported string field also
// accepts a bare, non-JSON string as the value of that field.
//
// Example usage:
//
//	type Input struct {
//	    Query string `json:"query"`
//	}
//
//	in, err := ParseStringAs[Input](`{"query": "golang"}`)
//	in, err = ParseStringAs[Input](`{query: 'golang'}`) // repaired
//	in, err = ParseStringAs[Input](`golang`)            // single string field
//	n, err := ParseStringAs[int]("42")
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()

	switch target.Kind() {
	case reflect.String:
		if unwrapped, ok := unwrapPrimitive(content); ok {
			target.SetString(unwrapped)
		} else {
			target.SetString(content)
		}
		return result, nil

	case reflect.Bool:
		val, err := parsePrimitive(content, strconv.ParseBool)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		target.SetBool(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := parsePrimitive(content, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		target.SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := parsePrimitive(content, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) })
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		target.SetUint(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := parsePrimitive(content, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		target.SetFloat(val)
		return result, nil
	}

	cleaned := stripCodeFence(content)
	err := json.Unmarshal([]byte(cleaned), &result)
	if err == nil {
		return result, nil
	}

	if field, ok := singleStringField(target.Type()); ok && !looksLikeJSON(cleaned) {
		var fresh T
		reflect.ValueOf(&fresh).Elem().Field(field).SetString(bareString(cleaned))
		return fresh, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	var repairedResult T
	err = json.Unmarshal([]byte(repaired), &repairedResult)
	if err == nil {
		return repairedResult, nil
	}

	// Models sometimes confuse the schema with the data.
	if unwrapped, unwrapErr := unwrapSchemaValues(repaired); unwrapErr == nil {
		var unwrappedResult T
		if json.Unmarshal([]byte(unwrapped), &unwrappedResult) == nil {
			return unwrappedResult, nil
		}
	}

	return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repaired)
}

// bareString trims content and strips JSON string quoting when present.
func bareString(content string) string {
	trimmed := strings.TrimSpace(content)
	var unquoted string
	if strings.HasPrefix(trimmed, "\"") && json.Unmarshal([]byte(trimmed), &unquoted) == nil {
		return unquoted
	}
	return trimmed
}

func parsePrimitive[V any](content string, parse func(string) (V, error)) (V, error) {
	trimmed := strings.TrimSpace(content)
	val, err := parse(trimmed)
	if err == nil {
		return val, nil
	}
	if unwrapped, ok := unwrapPrimitive(trimmed); ok {
		if val, unwrapErr := parse(unwrapped); unwrapErr == nil {
			return val, nil
		}
	}
	return val, err
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return content
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```")
	if newline := strings.IndexByte(inner, '\n'); newline >= 0 && !strings.ContainsAny(inner[:newline], "{[\"") {
		inner = inner[newline+1:]
	}
	return strings.TrimSpace(inner)
}

func looksLikeJSON(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// singleStringField returns the index of the only exported field of t when
// that field is a string.
func singleStringField(t reflect.Type) (int, bool) {
	if t.Kind() != reflect.Struct {
		return 0, false
	}

	index := -1
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("json") == "-" {
			continue
		}
		if index >= 0 || field.Type.Kind() != reflect.String {
			return 0, false
		}
		index = i
	}
	return index, index >= 0
}

// unwrapPrimitive extracts value from {"type": ..., "value": ...}.
func unwrapPrimitive(content string) (string, bool) {
	if !strings.HasPrefix(strings.TrimSpace(content), "{") {
		return "", false
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", false
	}

	value, ok := schemaWrappedValue(data)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case float64, bool:
		return fmt.Sprintf("%v", v), true
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(encoded), true
	}
}

// unwrapSchemaValues rewrites
//
//	{"name": {"type": "string", "value": "John"}}
//
// into
//
//	{"name": "John"}
//
// at every depth.
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	result, err := json.Marshal(recursiveUnwrap(data))
	if err != nil {
		return "", err
	}
	return string(result), nil
}

func recursiveUnwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if value, ok := schemaWrappedValue(v); ok {
			return recursiveUnwrap(value)
		}
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = recursiveUnwrap(val)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = recursiveUnwrap(val)
		}
		return result
	default:
		return data
	}
}

func schemaWrappedValue(data map[string]any) (any, bool) {
	if len(data) != 2 {
		return nil, false
	}
	if _, hasType := data["type"]; !hasType {
		return nil, false
	}
	value, hasValue := data["value"]
	return value, hasValue
}
