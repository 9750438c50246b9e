package parser

import "github.com/dshills/cmdstorm/internal/input"

// Parser parses one value of type E from the cursor, advancing it on
// success. On failure the cursor state is unspecified; callers that need to
// backtrack must parse against a clone.
type Parser[E any] interface {
	Parse(in *input.Input) (E, bool)
}

// Func adapts a function to the Parser interface.
type Func[E any] func(in *input.Input) (E, bool)

// Parse implements Parser.
func (f Func[E]) Parse(in *input.Input) (E, bool) {
	return f(in)
}

// Lit returns a parser that consumes one token equal to text and extracts
// nothing.
func Lit(text string) Parser[struct{}] {
	return Func[struct{}](func(in *input.Input) (struct{}, bool) {
		if in.Head(input.Sep) != text {
			return struct{}{}, false
		}
		in.TakeHead(input.Sep)
		return struct{}{}, true
	})
}

// Pair holds the extractions of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq runs first then second, extracting both values as a Pair.
func Seq[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(in *input.Input) (Pair[A, B], bool) {
		a, ok := first.Parse(in)
		if !ok {
			return Pair[A, B]{}, false
		}
		b, ok := second.Parse(in)
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: a, Second: b}, true
	})
}

// Map reshapes a parser's extraction through f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Func[B](func(in *input.Input) (B, bool) {
		a, ok := p.Parse(in)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	})
}
