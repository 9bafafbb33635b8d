package tracer

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	generationRequestsTotal   metric.Int64Counter
	generationDurationSeconds metric.Float64Histogram
	generationCacheHitsTotal  metric.Int64Counter
	modelDecodeErrorsTotal    metric.Int64Counter
)

// InitializeMetrics sets up the application's metrics. Call this during startup.
func InitializeMetrics(meter metric.Meter) {
	var err error

	generationRequestsTotal, err = meter.Int64Counter(
		"generation_requests_total",
		metric.WithDescription("Total number of itinerary generation requests"),
	)
	if err != nil {
		log.Fatalf("Failed to create generation_requests_total counter: %v", err)
	}

	generationDurationSeconds, err = meter.Float64Histogram(
		"generation_duration_seconds",
		metric.WithDescription("Duration of itinerary generation calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		log.Fatalf("Failed to create generation_duration_seconds histogram: %v", err)
	}

	generationCacheHitsTotal, err = meter.Int64Counter(
		"generation_cache_hits_total",
		metric.WithDescription("Total number of generation requests served from cache"),
	)
	if err != nil {
		log.Fatalf("Failed to create generation_cache_hits_total counter: %v", err)
	}

	modelDecodeErrorsTotal, err = meter.Int64Counter(
		"model_decode_errors_total",
		metric.WithDescription("Total number of model responses that failed JSON decoding"),
	)
	if err != nil {
		log.Fatalf("Failed to create model_decode_errors_total counter: %v", err)
	}

	log.Println("Application metrics initialized successfully.")
}

// RecordGeneration records one generation round trip. Safe to call before
// InitializeMetrics; it is then a no-op.
func RecordGeneration(ctx context.Context, mode string, elapsed time.Duration, success bool) {
	if generationRequestsTotal == nil || generationDurationSeconds == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("success", success),
	)
	generationRequestsTotal.Add(ctx, 1, attrs)
	generationDurationSeconds.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordCacheHit records a generation request served from the in-memory cache.
func RecordCacheHit(ctx context.Context) {
	if generationCacheHitsTotal == nil {
		return
	}
	generationCacheHitsTotal.Add(ctx, 1)
}

// RecordDecodeError records a model response that could not be decoded.
func RecordDecodeError(ctx context.Context) {
	if modelDecodeErrorsTotal == nil {
		return
	}
	modelDecodeErrorsTotal.Add(ctx, 1)
}
