package builder

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/cmdstorm/internal/arg"
	"github.com/dshills/cmdstorm/internal/dispatcher"
	"github.com/dshills/cmdstorm/internal/input"
	"github.com/dshills/cmdstorm/internal/parser"
)

// Handler receives the context and the extracted arguments of one
// invocation.
type Handler[C any] func(ctx C, args Args)

// step is one link of the declaration chain: a literal token or a named
// argument.
type step struct {
	literal string
	argName string
	arg     arg.Arg
}

func (s step) isLiteral() bool { return s.arg == nil }

// Builder accumulates a fluent command declaration. It implements
// dispatcher.Command and can be passed to Register directly.
type Builder[C any] struct {
	id       string
	describe string
	category string
	source   string
	steps    []step
	handler  Handler[C]
}

// New creates an empty declaration. A declaration with no steps and a
// handler is rejected at registration as an executable root.
func New[C any]() *Builder[C] {
	return &Builder[C]{id: uuid.NewString(), source: "core"}
}

// Literal starts a declaration with a literal token.
func Literal[C any](text string) *Builder[C] {
	return New[C]().Literal(text)
}

// Literal appends a literal token to the chain.
func (b *Builder[C]) Literal(text string) *Builder[C] {
	b.steps = append(b.steps, step{literal: text})
	return b
}

// Arg appends a named typed argument to the chain.
func (b *Builder[C]) Arg(name string, a arg.Arg) *Builder[C] {
	b.steps = append(b.steps, step{argName: name, arg: a})
	return b
}

// Handler sets the command handler, terminating the chain.
func (b *Builder[C]) Handler(fn Handler[C]) *Builder[C] {
	b.handler = fn
	return b
}

// Describe sets the command description shown in help output.
func (b *Builder[C]) Describe(text string) *Builder[C] {
	b.describe = text
	return b
}

// Category sets the help category.
func (b *Builder[C]) Category(text string) *Builder[C] {
	b.category = text
	return b
}

// Source records where the command was declared (e.g. "core",
// "script:greet.lua", "alias").
func (b *Builder[C]) Source(text string) *Builder[C] {
	b.source = text
	return b
}

// Meta implements dispatcher.Command.
func (b *Builder[C]) Meta() dispatcher.Meta {
	return dispatcher.Meta{
		ID:          b.id,
		Name:        b.name(),
		Description: b.describe,
		Category:    b.category,
		Usage:       b.usage(),
		Source:      b.source,
	}
}

// name returns the first literal token of the chain, if any.
func (b *Builder[C]) name() string {
	if len(b.steps) > 0 && b.steps[0].isLiteral() {
		return b.steps[0].literal
	}
	return ""
}

// usage renders the chain as display text, e.g. "tp <word> <word>".
func (b *Builder[C]) usage() string {
	parts := make([]string, 0, len(b.steps))
	for _, st := range b.steps {
		if st.isLiteral() {
			parts = append(parts, st.literal)
		} else {
			parts = append(parts, st.arg.Describe())
		}
	}
	return strings.Join(parts, " ")
}

// Node implements dispatcher.Command, projecting the chain to a
// registration tree. The handler, if set, is erased into an exec closure on
// the last node.
func (b *Builder[C]) Node() *dispatcher.CommandNode[C] {
	root := &dispatcher.CommandNode[C]{Kind: dispatcher.RootKind[C]()}

	cur := root
	for _, st := range b.steps {
		var kind dispatcher.NodeKind[C]
		if st.isLiteral() {
			kind = dispatcher.LiteralKind[C](st.literal)
		} else {
			kind = dispatcher.ParserKind[C](arg.NewChecker[C](st.arg))
		}
		next := &dispatcher.CommandNode[C]{Kind: kind}
		cur.Children = []*dispatcher.CommandNode[C]{next}
		cur = next
	}

	if b.handler != nil {
		cur.Exec = b.exec()
	}
	return root
}

// exec binds the typed parse chain to the handler and erases the pairing
// into the uniform handler shape stored on graph nodes. The closure
// re-parses the full raw command text, so the extraction seen by the
// handler is always derived from the original line.
func (b *Builder[C]) exec() dispatcher.ExecFunc[C] {
	steps := b.steps
	handler := b.handler

	seq := parser.Func[Args](func(in *input.Input) (Args, bool) {
		var args Args
		for _, st := range steps {
			if st.isLiteral() {
				if _, ok := parser.Lit(st.literal).Parse(in); !ok {
					return Args{}, false
				}
				continue
			}
			v, ok := st.arg.Parse(in)
			if !ok {
				return Args{}, false
			}
			args.names = append(args.names, st.argName)
			args.values = append(args.values, v)
		}
		return args, true
	})

	bound := parser.Exec(seq, func(ctx C, args Args) {
		handler(ctx, args)
	})

	return func(ctx C, raw string) {
		in := input.New(raw)
		if cmd, ok := bound.Parse(&in); ok {
			cmd.Call(ctx)
		}
	}
}
