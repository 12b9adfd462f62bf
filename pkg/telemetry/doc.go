// Package telemetry sets up OpenTelemetry tracing.
//
// Setup installs a global tracer provider exporting over OTLP/HTTP when an
// endpoint is configured. Middleware opens a server span per request, which
// the devicedetect middleware then tags with the resolved view.
package telemetry
