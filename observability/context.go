package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunContext tracks one execution of a pipeline for tracing and metrics.
type RunContext struct {
	Engine    string
	StartTime time.Time
	Metrics   *Metrics
}

// NewRunContext creates a run context for the given engine.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(engine string, metrics *Metrics) *RunContext {
	return &RunContext{
		Engine:  engine,
		Metrics: metrics,
	}
}

// Start starts the run span and the run clock.
func (rc *RunContext) Start(ctx context.Context) (context.Context, trace.Span) {
	rc.StartTime = time.Now()
	ctx, span := StartSpan(ctx, SpanStreamRun)
	span.SetAttributes(attribute.String(AttrEngine, rc.Engine))
	return ctx, span
}

// End ends the span and records the outcome of the run. code labels the
// error metric and is ignored when err is nil.
func (rc *RunContext) End(ctx context.Context, span trace.Span, elements int, code string, err error) {
	duration := time.Since(rc.StartTime)

	status := "ok"
	if err != nil {
		status = "error"
		SetSpanError(ctx, err)
	}
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrElements, elements),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordElements(ctx, rc.Engine, int64(elements))
		rc.Metrics.RecordRun(ctx, rc.Engine, status, duration)
		if err != nil {
			rc.Metrics.RecordError(ctx, rc.Engine, code)
		}
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
