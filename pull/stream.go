package pull

import "iter"

// Stream provides pull-based sequential access to a sequence of values.
type Stream[T any] interface {
	// Next returns the next value and true, or the zero value and false when
	// the stream is exhausted.
	Next() (T, bool)
}

// StreamFunc is an adapter to allow the use of plain functions as Stream instances.
type StreamFunc[T any] func() (T, bool)

// Next calls f().
func (f StreamFunc[T]) Next() (T, bool) { return f() }

// --- Sources ---

// FromSlice creates a stream over the elements of items.
func FromSlice[T any](items []T) Stream[T] {
	return &sliceStream[T]{items: items}
}

// Of creates a stream over its arguments.
func Of[T any](items ...T) Stream[T] {
	return FromSlice(items)
}

// Empty returns a stream that is exhausted from the start.
func Empty[T any]() Stream[T] {
	return &sliceStream[T]{}
}

// Runes creates a stream over the characters of s.
func Runes(s string) Stream[rune] {
	return FromSlice([]rune(s))
}

// Range creates a stream of the integers from through to, inclusive.
// The stream is empty when to < from.
func Range(from, to int) Stream[int] {
	return &rangeStream{next: from, to: to}
}

// --- Terminals ---

// ForEach pulls every value from s and calls fn for each one. It returns once
// s is exhausted.
func ForEach[T any](s Stream[T], fn func(T)) {
	for {
		val, ok := s.Next()
		if !ok {
			return
		}
		fn(val)
	}
}

// Collect drains s and returns all values as a slice.
func Collect[T any](s Stream[T]) []T {
	var result []T
	ForEach(s, func(v T) { result = append(result, v) })
	return result
}

// Reduce folds every value of s into an accumulator starting at init.
func Reduce[T, R any](s Stream[T], init R, fn func(R, T) R) R {
	acc := init
	ForEach(s, func(v T) { acc = fn(acc, v) })
	return acc
}

// All returns a range-over-func view of s. Breaking out of the loop stops
// pulling; the remaining values stay in s.
func All[T any](s Stream[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := s.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// --- Internal streams ---

type sliceStream[T any] struct {
	items []T
	index int
}

func (s *sliceStream[T]) Next() (T, bool) {
	if s.index >= len(s.items) {
		var zero T
		return zero, false
	}
	val := s.items[s.index]
	s.index++
	return val, true
}

type rangeStream struct {
	next, to int
	done     bool
}

func (s *rangeStream) Next() (int, bool) {
	if s.done || s.next > s.to {
		s.done = true
		return 0, false
	}
	val := s.next
	if val == s.to {
		s.done = true
	} else {
		s.next++
	}
	return val, true
}
