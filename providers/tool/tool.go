package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dabomai/dabom-aigo/core/cost"
	"github.com/dabomai/dabom-aigo/core/parse"
	"github.com/dabomai/dabom-aigo/internal/jsonschema"
	"github.com/dabomai/dabom-aigo/providers/observability"
)

// Info is what a tool advertises to an agent: its name, when to use it, and
// the schema of its arguments.
type Info struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Metrics     *cost.ToolMetrics  `json:"metrics,omitempty"`
}

// Summary renders the info as one line for listings, including the cost and
// quality figures when metrics are set.
func (i Info) Summary() string {
	summary := i.Name
	if i.Description != "" {
		summary += ": " + i.Description
	}
	if i.Metrics == nil {
		return summary
	}
	summary += " [cost: " + i.Metrics.String()
	if quality := i.Metrics.MetricsString(); quality != "" {
		summary += "; " + quality
	}
	return summary + "]"
}

// Tool represents a typed, callable tool. Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics contains optional cost and performance metrics for this tool execution.
	Metrics *cost.ToolMetrics

	inBandErrors bool

	validatorOnce sync.Once
	validator     *jsonschema.Validator
	validatorErr  error
}

// GenericTool is the provider-agnostic interface for all tools.
type GenericTool interface {
	// ToolInfo returns the metadata advertised to the agent.
	ToolInfo() Info

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string.
	Call(ctx context.Context, inputJson string) (string, error)

	// GetMetrics returns the tool's cost metrics, or nil.
	GetMetrics() *cost.ToolMetrics
}

type funcToolOptions struct {
	Description  string
	Metrics      *cost.ToolMetrics
	InBandErrors bool
}

// WithDescription sets a human-readable description for the tool.
// Agents read it to decide when and how to invoke the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// WithMetrics sets the metrics (cost, accuracy, speed) for executing this tool.
func WithMetrics(toolMetrics cost.ToolMetrics) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Metrics = &toolMetrics
	}
}

// WithInBandErrors makes [Tool.Call] return failures as a JSON string output
// with a nil error. Parse, validation, execution, and encoding failures are
// all reported this way.
func WithInBandErrors() func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.InBandErrors = true
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
//
// Example:
//
//	searchTool := tool.NewTool("search", searchFunc,
//	    tool.WithDescription("Searches the web for a query."),
//	    tool.WithMetrics(cost.ToolMetrics{Amount: 0.001, Currency: "USD"}),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:         name,
		Description:  toolOptions.Description,
		Parameters:   jsonschema.Generate[I](),
		Output:       jsonschema.Generate[O](),
		Function:     function,
		Metrics:      toolOptions.Metrics,
		inBandErrors: toolOptions.InBandErrors,
	}
}

// ToolInfo returns the [Info] used to advertise this tool.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Metrics:     t.Metrics,
	}
}

// Run validates input against the parameter schema and executes the function.
func (t *Tool[I, O]) Run(ctx context.Context, input I) (O, error) {
	if err := t.validate(input); err != nil {
		var zero O
		return zero, err
	}
	return t.Function(ctx, input)
}

// Call invokes the tool with a JSON-encoded input and returns the JSON-encoded
// output. Span events are emitted when a span is present in ctx.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (string, error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, inputJson),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()
	output, err := t.call(ctx, inputJson)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		if t.inBandErrors {
			encoded, _ := json.Marshal(err.Error())
			return string(encoded), nil
		}
		return "", err
	}

	if span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrToolOutput, output),
			observability.Duration(observability.AttrToolDuration, duration),
		}
		if t.Metrics != nil {
			attrs = append(attrs,
				observability.Float64(observability.AttrToolCostAmount, t.Metrics.Amount),
				observability.String(observability.AttrToolCostCurrency, t.Metrics.Currency),
			)
		}
		span.SetAttributes(attrs...)
	}

	return output, nil
}

func (t *Tool[I, O]) call(ctx context.Context, inputJson string) (string, error) {
	parsedInput, err := parse.ParseStringAs[I](inputJson)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", t.Name, err)
	}

	output, err := t.Run(ctx, parsedInput)
	if err != nil {
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("tool %s: error marshaling output: %w", t.Name, err)
	}
	return string(outputBytes), nil
}

func (t *Tool[I, O]) validate(input I) error {
	if t.Parameters == nil {
		return nil
	}

	t.validatorOnce.Do(func() {
		t.validator, t.validatorErr = jsonschema.Compile(t.Parameters)
	})
	if t.validatorErr != nil {
		return fmt.Errorf("tool %s: %w", t.Name, t.validatorErr)
	}
	if err := t.validator.ValidateValue(input); err != nil {
		return fmt.Errorf("tool %s: invalid input: %w", t.Name, err)
	}
	return nil
}

// GetMetrics returns the metrics (cost and performance data) for this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}
