package push

// Map returns a Sink that forwards fn(v) to down for every pushed v.
func Map[I, O any](down Sink[O], fn func(I) O) Sink[I] {
	return &mapSink[I, O]{down: down, fn: fn}
}

// Filter returns a Sink that forwards only the values satisfying fn.
func Filter[T any](down Sink[T], fn func(T) bool) Sink[T] {
	return &filterSink[T]{down: down, fn: fn}
}

// FlatMap returns a Sink that forwards every element of fn(v), in order,
// before Push returns.
func FlatMap[I, O any](down Sink[O], fn func(I) []O) Sink[I] {
	return &flatMapSink[I, O]{down: down, fn: fn}
}

// ForEach returns a Sink that calls fn for each value and then forwards the
// value unchanged, so it can sit in the middle of a chain.
func ForEach[T any](down Sink[T], fn func(T)) Sink[T] {
	return &forEachSink[T]{down: down, fn: fn}
}

// --- Sink implementations ---

type mapSink[I, O any] struct {
	down Sink[O]
	fn   func(I) O
}

func (s *mapSink[I, O]) Push(v I) {
	s.down.Push(s.fn(v))
}

type filterSink[T any] struct {
	down Sink[T]
	fn   func(T) bool
}

func (s *filterSink[T]) Push(v T) {
	if s.fn(v) {
		s.down.Push(v)
	}
}

type flatMapSink[I, O any] struct {
	down Sink[O]
	fn   func(I) []O
}

func (s *flatMapSink[I, O]) Push(v I) {
	for _, out := range s.fn(v) {
		s.down.Push(out)
	}
}

type forEachSink[T any] struct {
	down Sink[T]
	fn   func(T)
}

func (s *forEachSink[T]) Push(v T) {
	s.fn(v)
	s.down.Push(v)
}
