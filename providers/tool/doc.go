// Package tool provides the types that expose Go functions to an AI agent as
// callable tools.
//
// A [Tool] binds a name and description to a strongly-typed function and
// derives JSON schemas for its input and output by reflection. Agents call
// tools through the [GenericTool] interface with JSON-encoded arguments;
// arguments are leniently parsed, validated against the input schema, and
// passed to the function.
//
// Tools created with [WithInBandErrors] report every failure as their output
// instead of as a Go error, which is how agent-facing tools communicate
// problems back to the model. [Result] is the tagged Ok/Err value such tools
// return from their typed entry points.
//
// [Catalog] is a thread-safe, case-insensitive registry of tools.
package tool
