package cost

import (
	"fmt"
	"strings"
)

// ToolMetrics holds the per-call cost and quality figures of a tool.
//
// Example usage:
//
//	metrics := cost.ToolMetrics{
//	    Amount:                  0.001,
//	    Currency:                "USD",
//	    CostDescription:         "per search query",
//	    Accuracy:                0.9,
//	    AverageDurationInMillis: 900,
//	}
type ToolMetrics struct {
	// Amount is the cost of executing the tool once
	Amount float64 `json:"amount"`

	// Currency is the unit of Amount (e.g., "USD", "credits")
	Currency string `json:"currency,omitempty"`

	// CostDescription explains what Amount is charged for
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is a reliability score between 0.0 and 1.0
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical wall time of one call
	AverageDurationInMillis int64 `json:"average_duration_ms,omitempty"`
}

// String returns the cost formatted as "<amount> <currency> (<description>)".
// Currency defaults to USD when unset.
func (m ToolMetrics) String() string {
	currency := m.Currency
	if currency == "" {
		currency = "USD"
	}

	result := fmt.Sprintf("%.6f %s", m.Amount, currency)
	if m.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, m.CostDescription)
	}
	return result
}

// MetricsString returns the quality figures that are set, comma separated.
// It returns an empty string when neither accuracy nor duration is known.
func (m ToolMetrics) MetricsString() string {
	var parts []string
	if m.Accuracy > 0 {
		parts = append(parts, fmt.Sprintf("Accuracy: %.1f%%", m.Accuracy*100))
	}
	if m.AverageDurationInMillis > 0 {
		parts = append(parts, fmt.Sprintf("Avg duration: %dms", m.AverageDurationInMillis))
	}
	return strings.Join(parts, ", ")
}
