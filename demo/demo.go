package demo

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/pull"
	"github.com/kbukum/streamkit/push"
	"github.com/kbukum/streamkit/staged"
)

// Bracket renders n as "[n]".
func Bracket(n int) string {
	return fmt.Sprintf("[%d]", n)
}

// IsEven reports whether n is even.
func IsEven(n int) bool {
	return n%2 == 0
}

// Input returns the integers from..to inclusive.
func Input(from, to int) []int {
	return pull.Collect(pull.Range(from, to))
}

// Runner runs the canonical pipeline, tracing each run and recording run
// metrics when configured with them.
type Runner struct {
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewRunner creates a runner. Both arguments are optional.
func NewRunner(metrics *observability.Metrics, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Get("demo")
	}
	return &Runner{metrics: metrics, log: log}
}

// Run builds the canonical pipeline on engine, feeds it input and calls
// emit for every output rune.
func (r *Runner) Run(ctx context.Context, engine Engine, input []int, emit func(rune)) error {
	rc := observability.NewRunContext(engine.String(), r.metrics)
	ctx, span := rc.Start(ctx)
	span.SetAttributes(attribute.Int("stream.input", len(input)))

	emitted := 0
	count := func(c rune) {
		emitted++
		emit(c)
	}

	var err error
	switch engine {
	case EnginePull:
		runPull(input, count)
	case EnginePush:
		runPush(input, count)
	case EngineStaged:
		err = r.runStaged(input, count)
	default:
		err = errors.InvalidInput("engine", fmt.Sprintf("unknown engine %q", engine))
	}

	code := ""
	if err != nil {
		appErr, ok := errors.AsAppError(err)
		if !ok {
			appErr = errors.Internal(err)
		}
		code = string(appErr.Code)
	}
	rc.End(ctx, span, emitted, code, err)

	log := r.log.WithContext(ctx)
	if err != nil {
		log.Error("pipeline run failed", logger.MergeWithError(logger.Fields(logger.FieldEngine, engine.String()), err))
		return err
	}
	log.Debug("pipeline run completed", logger.Fields(
		logger.FieldEngine, engine.String(),
		logger.FieldElements, emitted,
		logger.FieldDuration, rc.Duration().Milliseconds(),
	))
	return nil
}

// Output runs the canonical pipeline on engine and returns what it emitted.
func (r *Runner) Output(ctx context.Context, engine Engine, input []int) (string, error) {
	var b strings.Builder
	if err := r.Run(ctx, engine, input, func(c rune) { b.WriteRune(c) }); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Run runs the canonical pipeline with a default runner.
func Run(ctx context.Context, engine Engine, input []int, emit func(rune)) error {
	return NewRunner(nil, nil).Run(ctx, engine, input, emit)
}

// Output returns the canonical pipeline output of engine for input.
func Output(engine Engine, input []int) (string, error) {
	return NewRunner(nil, nil).Output(context.Background(), engine, input)
}

func runPull(input []int, emit func(rune)) {
	evens := pull.Filter(pull.FromSlice(input), IsEven)
	chars := pull.FlatMap(pull.Map(evens, Bracket), pull.Runes)
	pull.ForEach(chars, emit)
}

// runPush builds the chain back to front, then pushes the input through it.
func runPush(input []int, emit func(rune)) {
	chars := push.ForEach(push.Discard[rune](), emit)
	text := push.FlatMap(chars, func(s string) []rune { return []rune(s) })
	head := push.Filter(push.Map(text, Bracket), IsEven)
	push.PushAll(head, input...)
}

func (r *Runner) runStaged(input []int, emit func(rune)) error {
	src := staged.FromSlice(input, staged.WithLogger(r.log))
	evens, err := staged.Filter(src, IsEven)
	if err != nil {
		return err
	}
	text, err := staged.Map(evens, Bracket)
	if err != nil {
		return err
	}
	chars, err := staged.FlatMap(text, func(s string) staged.Stage[rune] { return staged.Runes(s) })
	if err != nil {
		return err
	}
	out, err := staged.ForEach(chars, emit)
	if err != nil {
		return err
	}
	return out.Run()
}
