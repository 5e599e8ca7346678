package push

// Sink is implemented by types that accept pushed values.
type Sink[T any] interface {
	// Push accepts one value and forwards zero or more values downstream
	// before returning.
	Push(T)
}

// SinkFunc is an adapter to allow the use of plain functions as Sink instances.
type SinkFunc[T any] func(T)

// Push calls f(v).
func (f SinkFunc[T]) Push(v T) { f(v) }

// Discard returns a Sink that drops every value.
func Discard[T any]() Sink[T] {
	return SinkFunc[T](func(T) {})
}

// Collector is a terminal Sink that records every value pushed into it.
type Collector[T any] struct {
	values []T
}

// NewCollector returns an empty Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

// Push implements Sink.
func (c *Collector[T]) Push(v T) {
	c.values = append(c.values, v)
}

// Values returns the values received so far, in push order.
func (c *Collector[T]) Values() []T {
	return c.values
}

// Len returns the number of values received so far.
func (c *Collector[T]) Len() int {
	return len(c.values)
}

// PushAll pushes each value into s in order.
func PushAll[T any](s Sink[T], values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}
