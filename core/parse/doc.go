// Package parse converts raw tool-call arguments produced by a language model
// into typed Go values.
//
// Models often send slightly broken JSON, wrap it in markdown fences, echo
// schema envelopes such as {"type":"string","value":"x"}, or pass a bare
// string to a tool that takes a single text argument. [ParseStringAs]
// recovers from each of these before giving up with a descriptive error.
package parse
