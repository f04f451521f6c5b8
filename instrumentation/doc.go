// Package instrumentation provides OpenTelemetry metrics and tracing for the
// web server flow: counters for authorization URLs built, callbacks parsed,
// denials, code exchanges and refreshes, duration histograms for token
// endpoint calls and storage operations, and span attribute conventions.
//
// Instrumentation is optional. When disabled, no-op providers are used and
// recording has zero overhead.
package instrumentation
