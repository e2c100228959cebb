package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsv "github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "schema.json"

// Validator checks JSON instances against a compiled schema.
type Validator struct {
	compiled *jsv.Schema
}

// Compile prepares schema for validation.
func Compile(schema *Schema) (*Validator, error) {
	if schema == nil {
		return nil, fmt.Errorf("compile schema: nil schema")
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsv.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{compiled: compiled}, nil
}

// ValidateJSON validates a raw JSON document.
func (v *Validator) ValidateJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return v.compiled.Validate(instance)
}

// ValidateValue validates a Go value by encoding it to JSON first.
func (v *Validator) ValidateValue(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	return v.ValidateJSON(data)
}
