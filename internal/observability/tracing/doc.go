// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs a global TracerProvider with W3C trace context
// propagation; Middleware wraps HTTP handlers in server spans and exposes
// the trace ID to clients via the X-Trace-Id header. Spans are not
// exported by default — the value is log/trace correlation.
package tracing
