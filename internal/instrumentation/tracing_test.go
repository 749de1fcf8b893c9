package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartRenderSpan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := testProvider(t, ctx)
	if !provider.Enabled() {
		t.Fatal("expected provider to be enabled")
	}

	spanCtx, span := StartRenderSpan(ctx, ViewGridLabel, 7)
	if span == nil {
		t.Fatal("expected span to be non-nil")
	}
	SetSpanSuccess(span)
	span.End()

	if spanCtx == nil {
		t.Fatal("expected span context to be non-nil")
	}
}

func TestStartSourceSpan_Error(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testProvider(t, ctx)

	_, span := StartSourceSpan(ctx, SourceGoogle, OperationList)
	SetSpanError(span, errors.New("fetch failed"))
	span.End()
}

func TestGetTraceID_NoSpan(t *testing.T) {
	if id := GetTraceID(context.Background()); id != "" {
		t.Errorf("expected empty trace ID without span, got %q", id)
	}
}

func TestProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create disabled provider: %v", err)
	}

	if provider.Enabled() {
		t.Error("expected provider to be disabled")
	}
	if provider.Metrics() == nil {
		t.Error("expected no-op metrics recorder, got nil")
	}
	if provider.Tracer("test") == nil {
		t.Error("expected no-op tracer, got nil")
	}
	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("shutdown of disabled provider: %v", err)
	}
}
