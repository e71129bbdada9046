package xmetrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xsync/xmetrics"
	unknown                    = "unknown"

	MetricRuns         = "xsync.stress.runs"
	MetricAcquisitions = "xsync.stress.acquisitions"
	MetricDuration     = "xsync.stress.duration"
)

type otelConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
}

// Option OTel Observer 配置选项
type Option func(*otelConfig)

// WithInstrumentationName 设置 instrumentation 名称，空字符串被忽略。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithTracerProvider 设置 TracerProvider，nil 时使用全局实例。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 时使用全局实例。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

type otelObserver struct {
	tracer       trace.Tracer
	runs         metric.Int64Counter
	acquisitions metric.Int64Counter
	duration     metric.Float64Histogram
}

// NewOTelObserver 创建基于 OpenTelemetry 的 Observer。
func NewOTelObserver(opts ...Option) (Observer, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)
	runs, err := meter.Int64Counter(MetricRuns,
		metric.WithDescription("stress runs"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateCounter, MetricRuns, err)
	}
	acquisitions, err := meter.Int64Counter(MetricAcquisitions,
		metric.WithDescription("successful lock acquisitions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateCounter, MetricAcquisitions, err)
	}
	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("stress run duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateHistogram, err)
	}

	return &otelObserver{
		tracer:       cfg.tracerProvider.Tracer(cfg.instrumentationName),
		runs:         runs,
		acquisitions: acquisitions,
		duration:     duration,
	}, nil
}

func (o *otelObserver) Start(ctx context.Context, run Run) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if run.Backend == "" {
		run.Backend = unknown
	}
	if run.Scenario == "" {
		run.Scenario = unknown
	}

	ctx, span := o.tracer.Start(ctx, "stress."+run.Scenario,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("backend", run.Backend),
			attribute.String("scenario", run.Scenario),
			attribute.Int("workers", run.Workers),
		),
	)
	return ctx, &otelSpan{
		span:     span,
		observer: o,
		ctx:      ctx,
		run:      run,
		start:    time.Now(),
	}
}

type otelSpan struct {
	span     trace.Span
	observer *otelObserver
	ctx      context.Context
	run      Run
	start    time.Time
	endOnce  sync.Once
}

func (s *otelSpan) End(result Result) {
	if s == nil {
		return
	}
	s.endOnce.Do(func() {
		status := result.Status()
		if result.Err != nil {
			s.span.RecordError(result.Err)
			s.span.SetStatus(codes.Error, result.Err.Error())
		} else {
			s.span.SetStatus(codes.Ok, "")
		}
		s.span.SetAttributes(attribute.Int64("acquisitions", result.Acquisitions))
		s.span.End()

		// 调用方的 ctx 可能已取消，指标仍需记录。
		ctx := context.WithoutCancel(s.ctx)
		base := []attribute.KeyValue{
			attribute.String("backend", s.run.Backend),
			attribute.String("scenario", s.run.Scenario),
		}
		withStatus := append(base[:len(base):len(base)], attribute.String("status", string(status)))

		s.observer.runs.Add(ctx, 1, metric.WithAttributes(withStatus...))
		s.observer.duration.Record(ctx, time.Since(s.start).Seconds(), metric.WithAttributes(withStatus...))
		if result.Acquisitions > 0 {
			s.observer.acquisitions.Add(ctx, result.Acquisitions, metric.WithAttributes(base...))
		}
	})
}
