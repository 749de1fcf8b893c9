package server

import (
	"context"
	"testing"
	"time"

	"github.com/teemow/tabcal/internal/instrumentation"
)

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{})
	if err == nil {
		t.Fatal("expected error without instrumentation provider")
	}
}

func TestNewMetricsServer_RequiresEnabledProvider(t *testing.T) {
	ctx := context.Background()

	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	_, err = NewMetricsServer(MetricsServerConfig{
		InstrumentationProvider: provider,
	})
	if err == nil {
		t.Fatal("expected error with disabled provider")
	}
}

func TestNewMetricsServer_DefaultAddr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		ServiceName:     "test-service",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	ms, err := NewMetricsServer(MetricsServerConfig{
		InstrumentationProvider: provider,
	})
	if err != nil {
		t.Fatalf("failed to create metrics server: %v", err)
	}
	if ms.Addr() != DefaultMetricsAddr {
		t.Errorf("addr = %q, want %q", ms.Addr(), DefaultMetricsAddr)
	}

	// Shutdown before Start is a no-op.
	if err := ms.Shutdown(ctx); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
