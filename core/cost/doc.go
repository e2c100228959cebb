// Package cost describes the price and quality metadata attached to tools.
//
// [ToolMetrics] is advertised alongside a tool so that callers can reason
// about what a single invocation costs, how accurate it tends to be, and how
// long it usually takes.
package cost
