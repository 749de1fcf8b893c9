// Package instrumentation provides OpenTelemetry instrumentation for the
// tabcal service.
//
// # Metrics
//
// Server/HTTP metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Render metrics:
//   - render_passes_total: Counter of page render passes by view and status
//   - render_duration_seconds: Histogram of render pass durations
//
// Source metrics:
//   - source_fetch_total: Counter of event fetches by source and status
//   - source_fetch_duration_seconds: Histogram of fetch durations
//   - source_events: Gauge of events returned by the last fetch per source
//
// OAuth metrics:
//   - oauth_token_refresh_total: Counter of token refresh attempts by result
//
// # Tracing
//
// Spans are created for HTTP request handling, render passes
// (render.<view>) and source fetches (source.<name>.<operation>).
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: tabcal)
package instrumentation
