package pull

// Map transforms each value using fn.
func Map[I, O any](s Stream[I], fn func(I) O) Stream[O] {
	return &mapStream[I, O]{source: s, fn: fn}
}

// Filter keeps only values that satisfy the predicate. Rejected values are
// skipped in a loop, so a long run of rejections costs no stack.
func Filter[T any](s Stream[T], fn func(T) bool) Stream[T] {
	return &filterStream[T]{source: s, fn: fn}
}

// FlatMap transforms each value into a sub-stream and flattens the results.
// At most one sub-stream is in flight; it is dropped as soon as it is
// exhausted and before the next upstream value is pulled. A nil sub-stream
// is treated as empty.
func FlatMap[I, O any](s Stream[I], fn func(I) Stream[O]) Stream[O] {
	return &flatMapStream[I, O]{source: s, fn: fn}
}

// Concat joins streams sequentially.
// All values from the first stream are yielded before the second, etc.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	return &concatStream[T]{streams: streams}
}

// --- Stream implementations ---

type mapStream[I, O any] struct {
	source Stream[I]
	fn     func(I) O
}

func (s *mapStream[I, O]) Next() (O, bool) {
	val, ok := s.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return s.fn(val), true
}

type filterStream[T any] struct {
	source Stream[T]
	fn     func(T) bool
}

func (s *filterStream[T]) Next() (T, bool) {
	for {
		val, ok := s.source.Next()
		if !ok {
			return val, false
		}
		if s.fn(val) {
			return val, true
		}
	}
}

// buffer holds the sub-stream currently being drained by a flatMapStream.
type buffer[T any] struct {
	stream Stream[T]
	active bool
}

func (b *buffer[T]) fill(s Stream[T]) {
	b.stream, b.active = s, true
}

func (b *buffer[T]) release() {
	b.stream, b.active = nil, false
}

type flatMapStream[I, O any] struct {
	source  Stream[I]
	fn      func(I) Stream[O]
	current buffer[O]
}

func (s *flatMapStream[I, O]) Next() (O, bool) {
	for {
		if s.current.active {
			if val, ok := s.current.stream.Next(); ok {
				return val, true
			}
			s.current.release()
		}
		in, ok := s.source.Next()
		if !ok {
			var zero O
			return zero, false
		}
		if sub := s.fn(in); sub != nil {
			s.current.fill(sub)
		}
	}
}

type concatStream[T any] struct {
	streams []Stream[T]
	index   int
}

func (s *concatStream[T]) Next() (T, bool) {
	for s.index < len(s.streams) {
		if val, ok := s.streams[s.index].Next(); ok {
			return val, true
		}
		s.index++
	}
	var zero T
	return zero, false
}
