package arg

import (
	"github.com/dshills/cmdstorm/internal/dispatcher"
	"github.com/dshills/cmdstorm/internal/input"
)

// Checker adapts an Arg to the dispatcher's ArgumentChecker capability. The
// checker consumes input by running the parse and discarding the value.
type Checker[C any] struct {
	arg Arg
}

// NewChecker wraps an Arg for use as a graph node checker.
func NewChecker[C any](a Arg) Checker[C] {
	return Checker[C]{arg: a}
}

// Arg returns the wrapped argument parser.
func (c Checker[C]) Arg() Arg { return c.arg }

// Satisfies implements dispatcher.ArgumentChecker.
func (c Checker[C]) Satisfies(_ C, in *input.Input) bool {
	_, ok := c.arg.Parse(in)
	return ok
}

// Equal implements dispatcher.ArgumentChecker. Two checkers are equal when
// they wrap equal args.
func (c Checker[C]) Equal(other dispatcher.ArgumentChecker[C]) bool {
	o, ok := other.(Checker[C])
	return ok && c.arg.Equal(o.arg)
}
