package cost

import "testing"

func TestToolMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{
			name:     "explicit currency",
			metrics:  ToolMetrics{Amount: 0.001, Currency: "USD"},
			expected: "0.001000 USD",
		},
		{
			name:     "default currency",
			metrics:  ToolMetrics{Amount: 0.05},
			expected: "0.050000 USD",
		},
		{
			name:     "with description",
			metrics:  ToolMetrics{Amount: 0.001, Currency: "EUR", CostDescription: "per search query"},
			expected: "0.001000 EUR (per search query)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestToolMetricsMetricsString(t *testing.T) {
	metrics := ToolMetrics{Accuracy: 0.9, AverageDurationInMillis: 800}
	expected := "Accuracy: 90.0%, Avg duration: 800ms"
	if got := metrics.MetricsString(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	if got := (ToolMetrics{}).MetricsString(); got != "" {
		t.Errorf("expected empty metrics string, got %q", got)
	}
}
