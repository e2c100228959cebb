// Package jsonschema derives JSON Schemas from Go types and validates JSON
// instances against them.
//
// [Generate] walks a type by reflection, honouring `json` tags for names and
// optionality and `jsonschema` tags for descriptions, enums, bounds, and
// explicit requiredness. Types that need a hand-written schema implement
// [Provider]. [Compile] turns a generated schema into a [Validator] backed by
// github.com/santhosh-tekuri/jsonschema.
package jsonschema
