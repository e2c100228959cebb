package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dabomai/dabom-aigo/providers/observability"
)

func newTestObserver(buf *bytes.Buffer) *Observer {
	return New(
		WithFormat(FormatJSON),
		WithLevel(slog.LevelDebug),
		WithOutput(buf),
	)
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("failed to decode log line %q: %v", line, err)
		}
		records = append(records, record)
	}
	return records
}

func TestObserver_SpanLifecycle(t *testing.T) {
	var buf bytes.Buffer
	observer := newTestObserver(&buf)

	_, span := observer.StartSpan(context.Background(), "search.request",
		observability.String(observability.AttrSearchQuery, "golang"),
	)
	span.AddEvent("http.response.received", observability.Int(observability.AttrHTTPStatusCode, 200))
	span.SetAttributes(observability.Int(observability.AttrSearchResultsCount, 3))
	span.SetStatus(observability.StatusOK, "")
	span.End()

	records := decodeRecords(t, &buf)
	if len(records) != 3 {
		t.Fatalf("expected 3 records (start, event, end), got %d: %s", len(records), buf.String())
	}

	if records[0]["event"] != "span.start" || records[0][observability.AttrSearchQuery] != "golang" {
		t.Errorf("unexpected start record: %v", records[0])
	}
	if records[1]["event"] != "http.response.received" {
		t.Errorf("unexpected event record: %v", records[1])
	}

	end := records[2]
	if end["event"] != "span.end" {
		t.Errorf("expected span.end, got %v", end["event"])
	}
	if end[observability.AttrSearchResultsCount] != float64(3) {
		t.Errorf("expected results count attribute on span end, got %v", end[observability.AttrSearchResultsCount])
	}
	if end[observability.AttrStatus] != "ok" {
		t.Errorf("expected status ok, got %v", end[observability.AttrStatus])
	}
}

func TestObserver_RecordError(t *testing.T) {
	var buf bytes.Buffer
	observer := newTestObserver(&buf)

	_, span := observer.StartSpan(context.Background(), "op")
	buf.Reset()

	span.RecordError(nil)
	if buf.Len() != 0 {
		t.Errorf("expected nil error to be ignored, got %s", buf.String())
	}

	span.RecordError(errors.New("boom"))
	records := decodeRecords(t, &buf)
	if len(records) != 1 || records[0]["error"] != "boom" || records[0]["level"] != "ERROR" {
		t.Errorf("unexpected error record: %v", records)
	}
}

func TestObserver_Counter(t *testing.T) {
	var buf bytes.Buffer
	observer := newTestObserver(&buf)

	counter := observer.Counter(observability.MetricSearchRequestCount)
	counter.Add(context.Background(), 1)
	counter.Add(context.Background(), 2)

	if same := observer.Counter(observability.MetricSearchRequestCount); same != counter {
		t.Error("expected the same counter instance for the same name")
	}

	if got := counter.(*slogCounter).Value(); got != 3 {
		t.Errorf("expected counter value 3, got %d", got)
	}
}

func TestObserver_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithFormat(FormatText), WithLevel(slog.LevelWarn), WithOutput(&buf))

	observer.Debug(context.Background(), "hidden")
	observer.Logger().Info("hidden too")
	observer.Warn(context.Background(), "visible", observability.String("k", "v"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info records to be filtered, got %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "k=v") {
		t.Errorf("expected warn record with attribute, got %s", out)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	observer := New(WithLogger(logger))
	if observer.Logger() != logger {
		t.Fatal("expected the provided logger to be used")
	}

	observer.Error(context.Background(), "failed")
	if !strings.Contains(buf.String(), "failed") {
		t.Errorf("expected record on provided logger, got %s", buf.String())
	}
}
