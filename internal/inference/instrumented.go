package inference

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "docvision/internal/inference"

// Instrumented decorates a Backend with a span, Prometheus metrics and a debug log per call.
type Instrumented struct {
	next     Backend
	tracer   trace.Tracer
	logger   *zap.Logger
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumented registers the inference metrics on reg and wraps next.
func NewInstrumented(next Backend, reg prometheus.Registerer, logger *zap.Logger) (*Instrumented, error) {
	b := &Instrumented{
		next:   next,
		tracer: otel.Tracer(tracerName),
		logger: logger.Named("inference"),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inference_requests_total",
				Help: "Total number of inference backend calls by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inference_request_duration_seconds",
				Help:    "Latency of inference backend calls.",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"operation"},
		),
	}
	for _, c := range []prometheus.Collector{b.requests, b.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Generate forwards the call to the wrapped backend.
func (b *Instrumented) Generate(ctx context.Context, req Request) (string, error) {
	ctx, span := b.tracer.Start(ctx, "inference.generate", trace.WithAttributes(
		attribute.String("inference.operation", req.Operation),
		attribute.Int("inference.parts", len(req.Parts)),
		attribute.Int("inference.images", req.ImageCount()),
	))
	defer span.End()

	start := time.Now()
	text, err := b.next.Generate(ctx, req)
	elapsed := time.Since(start)

	b.duration.WithLabelValues(req.Operation).Observe(elapsed.Seconds())

	outcome := "success"
	switch {
	case err != nil:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case strings.TrimSpace(text) == "":
		outcome = "empty"
	}
	b.requests.WithLabelValues(req.Operation, outcome).Inc()
	span.SetAttributes(attribute.String("inference.outcome", outcome), attribute.Int("inference.response_bytes", len(text)))

	b.logger.Debug("inference call finished",
		zap.String("operation", req.Operation),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
		zap.Int("response_bytes", len(text)),
	)
	return text, err
}
