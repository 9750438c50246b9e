package parser

import "github.com/dshills/cmdstorm/internal/input"

// Command pairs an extraction with the handler it was bound to. It is
// produced by an Exec parser and invoked at most once.
type Command[E, C any] struct {
	extracted E
	fn        func(ctx C, extracted E)
}

// Call invokes the bound handler with the owned extraction.
func (c Command[E, C]) Call(ctx C) {
	c.fn(ctx, c.extracted)
}

// Exec wraps inner with a handler binding, producing the terminal parser of
// a command chain. The parse succeeds only if inner succeeds and the cursor
// is fully consumed afterward; trailing unconsumed tokens are a parse
// failure, not an error.
func Exec[E, C any](inner Parser[E], fn func(ctx C, extracted E)) Parser[Command[E, C]] {
	return Func[Command[E, C]](func(in *input.Input) (Command[E, C], bool) {
		ex, ok := inner.Parse(in)
		if !ok {
			return Command[E, C]{}, false
		}
		if !in.Empty() {
			return Command[E, C]{}, false
		}
		return Command[E, C]{extracted: ex, fn: fn}, true
	})
}
