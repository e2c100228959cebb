// Package slogobs implements [observability.Provider] on top of log/slog.
//
// Spans, metric updates, and log calls all become structured slog records.
// Format and level come from functional options or, by default, from the
// AIGO_LOG_FORMAT / LOG_FORMAT and AIGO_LOG_LEVEL / LOG_LEVEL environment
// variables.
package slogobs
