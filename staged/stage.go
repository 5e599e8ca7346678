package staged

import (
	"fmt"

	"github.com/kbukum/streamkit/errors"
)

// Stage is a pipeline stage emitting values of type T. Stages are created
// by the sources and combinators of this package.
type Stage[T any] interface {
	// Run starts the pipeline's source and blocks until every element has
	// been pushed through the chain or a push fails.
	Run() error
	// Status returns the lifecycle state of the stage.
	Status() Status
	// Pipeline returns the id of the pipeline the stage belongs to.
	Pipeline() string
	// Name returns the stage name, unique within its pipeline.
	Name() string

	attach(down downstream[T]) error
	owner() *pipeline
}

// Receiver is the input side of a stage.
type Receiver[T any] interface {
	Push(v T) error
}

// node is the type-erased view of a stage used to walk a chain from its
// source.
type node interface {
	Name() string
	next() node
	terminal() bool
}

type downstream[T any] interface {
	Receiver[T]
	node
}

// link is embedded by every stage emitting T and holds its downstream.
type link[T any] struct {
	pl   *pipeline
	name string
	down downstream[T]
}

func newLink[T any](pl *pipeline, kind string) link[T] {
	return link[T]{pl: pl, name: pl.stageName(kind)}
}

func (l *link[T]) attach(down downstream[T]) error {
	if l.down != nil {
		return errors.AlreadyLinked(l.name).WithDetail("pipeline", l.pl.id)
	}
	if l.pl.state != StatusLinked {
		return errors.InvalidState(fmt.Sprintf("cannot link %s: pipeline is %s", l.name, l.pl.state)).
			WithDetail("pipeline", l.pl.id)
	}
	l.down = down
	return nil
}

// forward pushes v to the downstream stage.
func (l *link[T]) forward(v T) error {
	if l.down == nil {
		return errors.InvalidState(l.name + " has no downstream stage")
	}
	return l.down.Push(v)
}

func (l *link[T]) next() node {
	if l.down == nil {
		return nil
	}
	return l.down
}

func (l *link[T]) terminal() bool { return false }

func (l *link[T]) owner() *pipeline { return l.pl }

func (l *link[T]) Run() error { return l.pl.run() }

func (l *link[T]) Pipeline() string { return l.pl.id }

func (l *link[T]) Name() string { return l.name }

func (l *link[T]) Status() Status {
	if l.pl.state == StatusLinked && l.down == nil {
		return StatusUnlinked
	}
	return l.pl.state
}

// Must returns s, panicking if err is non-nil. It wraps combinator calls
// whose linking cannot fail:
//
//	out := staged.Must(staged.Map(src, strconv.Itoa))
func Must[T any](s Stage[T], err error) Stage[T] {
	if err != nil {
		panic(err)
	}
	return s
}
