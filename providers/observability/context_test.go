package observability

import (
	"context"
	"errors"
	"testing"
)

type recordingSpan struct {
	events []string
}

func (s *recordingSpan) End() {}

func (s *recordingSpan) SetAttributes(...Attribute) {}

func (s *recordingSpan) SetStatus(StatusCode, string) {}

func (s *recordingSpan) RecordError(error) {}

func (s *recordingSpan) AddEvent(name string, _ ...Attribute) {
	s.events = append(s.events, name)
}

func TestSpanFromContext(t *testing.T) {
	if span := SpanFromContext(context.Background()); span != nil {
		t.Errorf("expected nil span on empty context, got %v", span)
	}

	//nolint:staticcheck // nil context is handled explicitly
	if span := SpanFromContext(nil); span != nil {
		t.Errorf("expected nil span on nil context, got %v", span)
	}

	span := &recordingSpan{}
	ctx := ContextWithSpan(context.Background(), span)
	got := SpanFromContext(ctx)
	if got != span {
		t.Fatalf("expected stored span to be returned")
	}

	got.AddEvent("test.event")
	if len(span.events) != 1 || span.events[0] != "test.event" {
		t.Errorf("expected event to be recorded on the original span, got %v", span.events)
	}
}

func TestContextWithSpan_NilContext(t *testing.T) {
	span := &recordingSpan{}
	//nolint:staticcheck // nil context is handled explicitly
	ctx := ContextWithSpan(nil, span)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if SpanFromContext(ctx) != span {
		t.Error("expected span to be retrievable")
	}
}

func TestAttributeConstructors(t *testing.T) {
	if attr := Error(nil); attr.Key != AttrError || attr.Value != "" {
		t.Errorf("unexpected nil error attribute: %+v", attr)
	}
	if attr := Error(errors.New("boom")); attr.Value != "boom" {
		t.Errorf("expected error message value, got %v", attr.Value)
	}
	if attr := Int(AttrHTTPStatusCode, 200); attr.Key != AttrHTTPStatusCode || attr.Value != 200 {
		t.Errorf("unexpected int attribute: %+v", attr)
	}
	if attr := Bool(AttrSearchAsync, true); attr.Value != true {
		t.Errorf("unexpected bool attribute: %+v", attr)
	}
}
