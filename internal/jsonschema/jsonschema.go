package jsonschema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema used to describe tool inputs and outputs.
type Schema struct {
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items is the element schema of an array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties is a schema for map values, or false
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// AnyOf lists alternative schemas
	AnyOf     []*Schema `json:"anyOf,omitempty"`
	Enum      []any     `json:"enum,omitempty"`
	Default   any       `json:"default,omitempty"`
	Minimum   *float64  `json:"minimum,omitempty"`
	Maximum   *float64  `json:"maximum,omitempty"`
	MinLength *int      `json:"minLength,omitempty"`
	MaxLength *int      `json:"maxLength,omitempty"`
	// Ref points into Defs for recursive types
	Ref  string             `json:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// Provider is implemented by types that supply their own schema instead of
// the reflected one. It is called on the zero value of the type.
type Provider interface {
	JSONSchema() *Schema
}

var providerType = reflect.TypeFor[Provider]()

// Generate derives the schema of T.
//
// Struct fields are required unless they are pointers or tagged omitempty;
// the `jsonschema:"required"` tag forces requiredness either way.
func Generate[T any]() *Schema {
	return GenerateFor(reflect.TypeFor[T]())
}

// GenerateFor derives the schema of t.
func GenerateFor(t reflect.Type) *Schema {
	g := &generator{
		inProgress: make(map[reflect.Type]bool),
		defs:       make(map[string]*Schema),
	}
	schema := g.generate(t)
	if len(g.defs) > 0 {
		schema.Defs = g.defs
	}
	return schema
}

type generator struct {
	inProgress map[reflect.Type]bool
	defs       map[string]*Schema
}

func (g *generator) generate(t reflect.Type) *Schema {
	if t.Kind() != reflect.Ptr && t.Implements(providerType) {
		if provider, ok := reflect.Zero(t).Interface().(Provider); ok {
			return provider.JSONSchema()
		}
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: g.generate(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: g.generate(t.Elem())}
	case reflect.Ptr:
		return g.generate(t.Elem())
	case reflect.Struct:
		return g.generateStruct(t)
	default:
		// interfaces and anything else accept any value
		return &Schema{}
	}
}

func (g *generator) generateStruct(t reflect.Type) *Schema {
	defName := strings.ToLower(t.Name())
	if g.inProgress[t] {
		if defName == "" {
			defName = "anonymous"
		}
		g.defs[defName] = nil // filled in once the outer call completes
		return &Schema{Ref: "#/$defs/" + defName}
	}

	g.inProgress[t] = true
	defer delete(g.inProgress, t)

	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fieldSchema := g.generate(field.Type)
		requiredByTag := false
		if fieldSchema.Ref == "" {
			var err error
			requiredByTag, err = applyTag(field.Type, field.Tag.Get("jsonschema"), fieldSchema)
			if err != nil {
				slog.Error("invalid jsonschema tag", "field", name, "error", err)
			}
		}
		schema.Properties[name] = fieldSchema

		if (field.Type.Kind() != reflect.Ptr && !omitEmpty) || requiredByTag {
			schema.Required = append(schema.Required, name)
		}
	}

	if placeholder, exists := g.defs[defName]; exists && placeholder == nil {
		g.defs[defName] = schema
		return &Schema{Ref: "#/$defs/" + defName}
	}
	return schema
}

func jsonFieldName(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	if tag == "" {
		return name, false, false
	}

	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, option := range parts[1:] {
		if option == "omitempty" || option == "omitzero" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// applyTag applies a `jsonschema:"..."` tag to schema and reports whether the
// tag marks the field as required. Supported items:
// description=..., required, enum=..., minimum=..., maximum=...,
// minLength=..., maxLength=..., default=...
//
// Items are comma separated, so descriptions cannot contain commas.
func applyTag(fieldType reflect.Type, tag string, schema *Schema) (bool, error) {
	if tag == "" {
		return false, nil
	}

	required := false
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(strings.TrimSpace(item), "=")
		if !hasValue {
			if key == "required" {
				required = true
			}
			continue
		}

		switch key {
		case "description":
			schema.Description = value
		case "enum":
			v, err := convertValue(fieldType, value)
			if err != nil {
				return required, fmt.Errorf("enum %q: %w", value, err)
			}
			schema.Enum = append(schema.Enum, v)
		case "default":
			v, err := convertValue(fieldType, value)
			if err != nil {
				return required, fmt.Errorf("default %q: %w", value, err)
			}
			schema.Default = v
		case "minimum", "maximum":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return required, fmt.Errorf("%s %q: %w", key, value, err)
			}
			if key == "minimum" {
				schema.Minimum = &v
			} else {
				schema.Maximum = &v
			}
		case "minLength", "maxLength":
			v, err := strconv.Atoi(value)
			if err != nil {
				return required, fmt.Errorf("%s %q: %w", key, value, err)
			}
			if key == "minLength" {
				schema.MinLength = &v
			} else {
				schema.MaxLength = &v
			}
		}
	}
	return required, nil
}

func convertValue(fieldType reflect.Type, value string) (any, error) {
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Bool:
		return strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("unsupported field type %v", fieldType)
	}
}

// String returns the compact JSON representation of the schema.
func (s *Schema) String() string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(encoded)
}
