package instrumentation

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all metric instruments for the flow library
type Metrics struct {
	// Flow metrics
	AuthorizationStarted metric.Int64Counter
	CallbackParsed       metric.Int64Counter
	AccessDenied         metric.Int64Counter
	CodeExchanged        metric.Int64Counter
	TokenRefreshed       metric.Int64Counter
	ExchangeDuration     metric.Float64Histogram

	// Storage metrics
	StorageOperationTotal    metric.Int64Counter
	StorageOperationDuration metric.Float64Histogram
}

// newMetrics creates and registers all metric instruments
func newMetrics(inst *Instrumentation) (*Metrics, error) {
	m := &Metrics{}
	flowMeter := inst.Meter("flow")
	storageMeter := inst.Meter("storage")

	var err error
	m.AuthorizationStarted, err = flowMeter.Int64Counter(
		"webflow.authorization.started",
		metric.WithDescription("Number of authorization URLs built"),
		metric.WithUnit("{flow}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorization.started counter: %w", err)
	}

	m.CallbackParsed, err = flowMeter.Int64Counter(
		"webflow.callback.parsed",
		metric.WithDescription("Number of authorization callbacks parsed"),
		metric.WithUnit("{callback}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create callback.parsed counter: %w", err)
	}

	m.AccessDenied, err = flowMeter.Int64Counter(
		"webflow.access.denied",
		metric.WithDescription("Number of callbacks where the end user denied authorization"),
		metric.WithUnit("{denial}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create access.denied counter: %w", err)
	}

	m.CodeExchanged, err = flowMeter.Int64Counter(
		"webflow.code.exchanged",
		metric.WithDescription("Number of verification codes exchanged for tokens"),
		metric.WithUnit("{exchange}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create code.exchanged counter: %w", err)
	}

	m.TokenRefreshed, err = flowMeter.Int64Counter(
		"webflow.token.refreshed",
		metric.WithDescription("Number of tokens refreshed"),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token.refreshed counter: %w", err)
	}

	m.ExchangeDuration, err = flowMeter.Float64Histogram(
		"webflow.exchange.duration",
		metric.WithDescription("Token endpoint request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange.duration histogram: %w", err)
	}

	m.StorageOperationTotal, err = storageMeter.Int64Counter(
		"storage.operation.total",
		metric.WithDescription("Total number of storage operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage.operation.total counter: %w", err)
	}

	m.StorageOperationDuration, err = storageMeter.Float64Histogram(
		"storage.operation.duration",
		metric.WithDescription("Storage operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage.operation.duration histogram: %w", err)
	}

	return m, nil
}

// Helper methods for common metric recording patterns

// RecordAuthorizationStarted records an authorization URL being built
func (m *Metrics) RecordAuthorizationStarted(ctx context.Context, clientID string) {
	m.AuthorizationStarted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("client_id", clientID),
	))
}

// RecordCallbackParsed records a parsed authorization callback
func (m *Metrics) RecordCallbackParsed(ctx context.Context, granted bool) {
	m.CallbackParsed.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("granted", granted),
	))
}

// RecordAccessDenied records an end-user denial
func (m *Metrics) RecordAccessDenied(ctx context.Context, errorCode string) {
	m.AccessDenied.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error", errorCode),
	))
}

// RecordCodeExchange records a verification code exchange
func (m *Metrics) RecordCodeExchange(ctx context.Context, clientID string, success bool, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("client_id", clientID),
		attribute.Bool("success", success),
	}
	m.CodeExchanged.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.ExchangeDuration.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("grant_type", "web_server"),
	))
}

// RecordTokenRefresh records a token refresh
func (m *Metrics) RecordTokenRefresh(ctx context.Context, clientID string, success bool, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("client_id", clientID),
		attribute.Bool("success", success),
	}
	m.TokenRefreshed.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.ExchangeDuration.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("grant_type", "refresh_token"),
	))
}

// RecordStorageOperation records a storage operation
func (m *Metrics) RecordStorageOperation(ctx context.Context, operation, result string, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.String("result", result),
	}
	m.StorageOperationTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.StorageOperationDuration.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
