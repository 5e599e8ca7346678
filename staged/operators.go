package staged

import (
	"fmt"

	"github.com/kbukum/streamkit/errors"
)

// Filter links a stage forwarding only the values for which p returns true.
func Filter[T any](s Stage[T], p func(T) bool) (Stage[T], error) {
	if err := checkArgs(s, p == nil, "predicate"); err != nil {
		return nil, err
	}
	f := &filterStage[T]{link: newLink[T](s.owner(), "filter"), p: p}
	if err := s.attach(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Map links a stage forwarding fn(v) for every value v.
func Map[I, O any](s Stage[I], fn func(I) O) (Stage[O], error) {
	if err := checkArgs(s, fn == nil, "fn"); err != nil {
		return nil, err
	}
	m := &mapStage[I, O]{link: newLink[O](s.owner(), "map"), fn: fn}
	if err := s.attach(m); err != nil {
		return nil, err
	}
	return m, nil
}

// FlatMap links a stage that, for every value v, builds the sub-pipeline
// fn(v) and runs it to completion, forwarding each of its values before
// the next upstream value arrives. A nil sub-pipeline emits nothing.
func FlatMap[I, O any](s Stage[I], fn func(I) Stage[O]) (Stage[O], error) {
	if err := checkArgs(s, fn == nil, "fn"); err != nil {
		return nil, err
	}
	f := &flatMapStage[I, O]{link: newLink[O](s.owner(), "flatMap"), fn: fn}
	if err := s.attach(f); err != nil {
		return nil, err
	}
	return f, nil
}

// ForEach links a stage calling fn for every value. It forwards the value
// unchanged when a downstream is linked; a pipeline must end in a ForEach.
func ForEach[T any](s Stage[T], fn func(T)) (Stage[T], error) {
	if err := checkArgs(s, fn == nil, "fn"); err != nil {
		return nil, err
	}
	f := &forEachStage[T]{
		link: newLink[T](s.owner(), "forEach"),
		fn: func(v T) error {
			fn(v)
			return nil
		},
	}
	if err := s.attach(f); err != nil {
		return nil, err
	}
	return f, nil
}

func checkArgs[T any](s Stage[T], fnMissing bool, fnName string) error {
	if s == nil {
		return errors.InvalidInput("stage", "upstream stage is nil")
	}
	if fnMissing {
		return errors.InvalidInput(fnName, "function is nil")
	}
	return nil
}

type filterStage[T any] struct {
	link[T]
	p func(T) bool
}

func (f *filterStage[T]) Push(v T) error {
	if !f.p(v) {
		return nil
	}
	return f.forward(v)
}

type mapStage[I, O any] struct {
	link[O]
	fn func(I) O
}

func (m *mapStage[I, O]) Push(v I) error {
	return m.forward(m.fn(v))
}

type flatMapStage[I, O any] struct {
	link[O]
	fn func(I) Stage[O]
}

func (f *flatMapStage[I, O]) Push(v I) error {
	sub := f.fn(v)
	if sub == nil {
		return nil
	}
	fwd := &forEachStage[O]{link: newLink[O](sub.owner(), "forward"), fn: f.forward}
	if err := sub.attach(fwd); err != nil {
		return fmt.Errorf("%s: %w", f.name, err)
	}
	if err := sub.Run(); err != nil {
		return fmt.Errorf("%s: %w", f.name, err)
	}
	return nil
}

type forEachStage[T any] struct {
	link[T]
	fn func(T) error
}

func (f *forEachStage[T]) Push(v T) error {
	if err := f.fn(v); err != nil {
		return err
	}
	if f.down == nil {
		return nil
	}
	return f.down.Push(v)
}

func (f *forEachStage[T]) terminal() bool { return true }

func (f *forEachStage[T]) Status() Status {
	if f.pl.state == StatusLinked {
		return StatusLinked
	}
	return f.pl.state
}
