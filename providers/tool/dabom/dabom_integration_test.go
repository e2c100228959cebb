//go:build integration

package dabom

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestClientSearch_Integration(t *testing.T) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		t.Skip("DABOM_API_KEY not set, skipping integration test")
	}

	client, err := NewClient(apiKey)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := client.Search(ctx, "Go programming language", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if len(results) > 3 {
		t.Errorf("expected at most 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.URL == "" {
			t.Errorf("result %d: expected non-empty URL", i)
		}
	}

	t.Logf("First result: %s", results[0].URL)
}

func TestSearchToolInvokeAsync_Integration(t *testing.T) {
	if os.Getenv(EnvAPIKey) == "" {
		t.Skip("DABOM_API_KEY not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := <-NewSearchToolForKey("").InvokeAsync(ctx, "What is the weather in Seoul?")
	results, ok := result.Value()
	if !ok {
		t.Fatalf("InvokeAsync failed: %s", result)
	}

	t.Logf("Search returned %d results", len(results))
}
