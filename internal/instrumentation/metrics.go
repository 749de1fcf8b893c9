package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrOperation = "operation"
	attrSource    = "source"
	attrView      = "view"
	attrResult    = "result"
	attrAccount   = "account_domain"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	// Render pass metrics
	renderPassesTotal metric.Int64Counter
	renderDuration    metric.Float64Histogram

	// Source fetch metrics
	sourceFetchTotal    metric.Int64Counter
	sourceFetchDuration metric.Float64Histogram
	sourceEvents        metric.Int64Gauge

	// OAuth metrics
	oauthTokenRefreshTotal metric.Int64Counter

	// detailedLabels controls whether high-cardinality labels are included
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The detailedLabels parameter controls whether high-cardinality labels are included.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	m.renderPassesTotal, err = meter.Int64Counter(
		"render_passes_total",
		metric.WithDescription("Total number of page render passes"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create render_passes_total counter: %w", err)
	}

	m.renderDuration, err = meter.Float64Histogram(
		"render_duration_seconds",
		metric.WithDescription("Render pass duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create render_duration_seconds histogram: %w", err)
	}

	m.sourceFetchTotal, err = meter.Int64Counter(
		"source_fetch_total",
		metric.WithDescription("Total number of event source fetches"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create source_fetch_total counter: %w", err)
	}

	m.sourceFetchDuration, err = meter.Float64Histogram(
		"source_fetch_duration_seconds",
		metric.WithDescription("Event source fetch duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create source_fetch_duration_seconds histogram: %w", err)
	}

	m.sourceEvents, err = meter.Int64Gauge(
		"source_events",
		metric.WithDescription("Number of events returned by the last fetch"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create source_events gauge: %w", err)
	}

	m.oauthTokenRefreshTotal, err = meter.Int64Counter(
		"oauth_token_refresh_total",
		metric.WithDescription("Total number of OAuth token refresh attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth_token_refresh_total counter: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordRenderPass records one page render pass.
//
// Parameters:
//   - view: "grid" or "agenda"
//   - status: "success" or "error"
//   - duration: Time taken for the render pass
func (m *Metrics) RecordRenderPass(ctx context.Context, view, status string, duration time.Duration) {
	if m.renderPassesTotal == nil || m.renderDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrView, view),
		attribute.String(attrStatus, status),
	}

	m.renderPassesTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.renderDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordSourceFetch records an event source fetch.
//
// Parameters:
//   - source: source name (google, ics, sample)
//   - operation: operation type (list)
//   - status: "success" or "error"
//   - account: user account; reduced to its domain and only recorded when
//     detailedLabels is enabled
//   - eventCount: number of events returned (ignored on error)
//   - duration: Time taken for the fetch
func (m *Metrics) RecordSourceFetch(ctx context.Context, source, operation, status, account string, eventCount int, duration time.Duration) {
	if m.sourceFetchTotal == nil || m.sourceFetchDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrSource, source),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}
	if m.detailedLabels && account != "" {
		attrs = append(attrs, attribute.String(attrAccount, ExtractUserDomain(account)))
	}

	m.sourceFetchTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.sourceFetchDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if status == StatusSuccess && m.sourceEvents != nil {
		m.sourceEvents.Record(ctx, int64(eventCount), metric.WithAttributes(
			attribute.String(attrSource, source),
		))
	}
}

// RecordOAuthTokenRefresh records an OAuth token refresh attempt with result.
// Result should be one of: "success", "failure", "expired"
func (m *Metrics) RecordOAuthTokenRefresh(ctx context.Context, result string) {
	if m.oauthTokenRefreshTotal == nil {
		return // Instrumentation not initialized
	}

	m.oauthTokenRefreshTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}

// ExtractUserDomain extracts the domain part of an email address so account
// labels stay low-cardinality.
//
// Example:
//
//	ExtractUserDomain("jane@example.com")  // "example.com"
//	ExtractUserDomain("invalid")           // "unknown"
func ExtractUserDomain(email string) string {
	if email == "" {
		return "unknown"
	}

	parts := strings.Split(email, "@")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}

	return "unknown"
}

// Common operation types for source fetch metrics.
const (
	OperationList = "list"
	OperationGet  = "get"
)
