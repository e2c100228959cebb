// Package observability defines the tracing, metrics, and logging interfaces
// the tool framework and the search client report through.
//
// [Provider] composes [Tracer], [Metrics], and [Logger] into a single
// injectable dependency. An active [Span] travels through a
// [context.Context] via [ContextWithSpan] and is retrieved with
// [SpanFromContext], so low-level helpers can attach events without taking
// the provider as a parameter.
//
// semconv.go holds the attribute keys, span names, and metric names used when
// recording observations.
package observability
