package staged

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

const engineName = "staged"

// Option configures a pipeline when its source is created.
type Option func(*options)

type options struct {
	log     *logger.Logger
	metrics *observability.Metrics
	name    string
}

// WithLogger sets the logger used for run logging. Defaults to the
// "staged" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records run outcomes and emitted elements on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithName sets a human-readable pipeline name included in logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// pipeline is the state shared by every stage linked to one source.
type pipeline struct {
	id      string
	name    string
	state   Status
	stages  int
	source  node
	emit    func() (int, error)
	log     *logger.Logger
	metrics *observability.Metrics
}

func newPipeline(opts []Option) *pipeline {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get(engineName)
	}
	return &pipeline{
		id:      uuid.NewString(),
		name:    o.name,
		state:   StatusLinked,
		log:     o.log,
		metrics: o.metrics,
	}
}

func (p *pipeline) stageName(kind string) string {
	p.stages++
	return fmt.Sprintf("%s#%d", kind, p.stages)
}

// validate walks the chain from the source and checks that it ends in a
// terminal stage.
func (p *pipeline) validate() error {
	last := p.source
	for n := p.source.next(); n != nil; n = n.next() {
		last = n
	}
	if !last.terminal() {
		return errors.InvalidState(fmt.Sprintf("pipeline ends at %s; the last stage must be a ForEach", last.Name())).
			WithDetail("pipeline", p.id)
	}
	return nil
}

func (p *pipeline) run() error {
	switch p.state {
	case StatusRunning:
		return errors.InvalidState("pipeline is already running").WithDetail("pipeline", p.id)
	case StatusCompleted, StatusFailed:
		return errors.InvalidState("pipeline has already run").WithDetails(map[string]any{
			"pipeline": p.id,
			"status":   p.state.String(),
		})
	}
	if err := p.validate(); err != nil {
		return err
	}

	log := p.log.WithFields(logger.Fields(logger.FieldPipeline, p.id))
	if p.name != "" {
		log = log.WithFields(logger.Fields("name", p.name))
	}

	p.state = StatusRunning
	start := time.Now()
	log.Debug("pipeline run started")

	// A panicking stage function fails the run before the panic propagates.
	defer func() {
		if r := recover(); r != nil {
			p.state = StatusFailed
			err := errors.Internal(fmt.Errorf("panic: %v", r)).WithDetail("pipeline", p.id)
			p.record(0, time.Since(start), err)
			log.Error("pipeline run panicked", logger.ErrorFields("run", err),
				logger.Fields(logger.FieldStatus, p.state.String()))
			panic(r)
		}
	}()

	n, err := p.emit()
	duration := time.Since(start)

	p.state = StatusCompleted
	if err != nil {
		p.state = StatusFailed
	}
	p.record(n, duration, err)

	fields := logger.Fields(
		logger.FieldElements, n,
		logger.FieldStatus, p.state.String(),
	)
	if err != nil {
		log.Debug("pipeline run failed", logger.MergeWithError(fields, err),
			logger.DurationFields("run", duration))
		return err
	}
	log.Debug("pipeline run completed", fields, logger.DurationFields("run", duration))
	return nil
}

func (p *pipeline) record(n int, duration time.Duration, err error) {
	if p.metrics == nil {
		return
	}
	ctx := context.Background()
	p.metrics.RecordElements(ctx, engineName, int64(n))
	status := "ok"
	if err != nil {
		status = "error"
		appErr, ok := errors.AsAppError(err)
		if !ok {
			appErr = errors.Internal(err)
		}
		p.metrics.RecordError(ctx, engineName, string(appErr.Code))
	}
	p.metrics.RecordRun(ctx, engineName, status, duration)
}
