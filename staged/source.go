package staged

import (
	"iter"
	"slices"

	"github.com/kbukum/streamkit/errors"
)

// Source is the first stage of a pipeline. It emits the values of its
// sequence when the pipeline runs.
type Source[T any] struct {
	link[T]
	seq iter.Seq[T]
}

// FromSeq returns a source emitting the values of seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) Stage[T] {
	pl := newPipeline(opts)
	s := &Source[T]{link: newLink[T](pl, "source"), seq: seq}
	pl.source = s
	pl.emit = s.emit
	return s
}

// FromSlice returns a source emitting items in order.
func FromSlice[T any](items []T, opts ...Option) Stage[T] {
	return FromSeq(slices.Values(items), opts...)
}

// Of returns a source emitting the given values.
func Of[T any](values ...T) Stage[T] {
	return FromSlice(values)
}

// Runes returns a source emitting the runes of s.
func Runes(s string, opts ...Option) Stage[rune] {
	return FromSeq(func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}, opts...)
}

// Push always fails: a source produces values and never receives them.
func (s *Source[T]) Push(T) error {
	return errors.UnsupportedOperation("push", s.name)
}

// emit pushes every value downstream, stopping at the first error. It
// returns the number of values accepted downstream.
func (s *Source[T]) emit() (int, error) {
	n := 0
	for v := range s.seq {
		if err := s.forward(v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
