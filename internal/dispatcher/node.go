package dispatcher

import "github.com/dshills/cmdstorm/internal/input"

// ArgumentChecker tests whether a parser-backed node can consume the
// remaining input in a given context, advancing the cursor past whatever it
// consumes. Checkers must also support dynamic equality so structurally
// equal nodes can be shared across registrations: equal checkers must behave
// identically for all inputs.
type ArgumentChecker[C any] interface {
	// Satisfies reports whether the remaining input is acceptable,
	// consuming it from the cursor if so.
	Satisfies(ctx C, in *input.Input) bool

	// Equal reports whether other is the same concrete checker with the
	// same configuration.
	Equal(other ArgumentChecker[C]) bool
}

// ExecFunc is a type-erased command handler. It receives the full raw
// command text; the typed extraction happens inside the closure bound at
// declaration time.
type ExecFunc[C any] func(ctx C, raw string)

type kindClass uint8

const (
	classRoot kindClass = iota
	classLiteral
	classParser
)

// NodeKind identifies what a graph node matches: the synthetic root, an
// exact literal token, or a type-erased argument checker.
type NodeKind[C any] struct {
	class   kindClass
	literal string
	checker ArgumentChecker[C]
}

// LiteralKind returns a kind matched by exact token equality.
func LiteralKind[C any](text string) NodeKind[C] {
	return NodeKind[C]{class: classLiteral, literal: text}
}

// ParserKind returns a kind matched by an argument checker.
func ParserKind[C any](checker ArgumentChecker[C]) NodeKind[C] {
	return NodeKind[C]{class: classParser, checker: checker}
}

// RootKind returns the kind of the synthetic root node. Registration trees
// use it only for their own top-level holder node.
func RootKind[C any]() NodeKind[C] {
	return NodeKind[C]{class: classRoot}
}

// Equals reports structural equality: literals compare by text, parser kinds
// by checker dynamic equality. This equality, not identity, drives prefix
// sharing between registrations.
func (k NodeKind[C]) Equals(other NodeKind[C]) bool {
	if k.class != other.class {
		return false
	}
	switch k.class {
	case classLiteral:
		return k.literal == other.literal
	case classParser:
		return k.checker.Equal(other.checker)
	default:
		return true
	}
}

// Literal returns the literal text and whether this is a literal kind.
func (k NodeKind[C]) Literal() (string, bool) {
	return k.literal, k.class == classLiteral
}

// CommandNode is one node of a declared command tree, the external input to
// registration. The tree's top-level node is a synthetic holder with
// RootKind; a handler attached there is rejected as an executable root.
type CommandNode[C any] struct {
	Kind     NodeKind[C]
	Exec     ExecFunc[C]
	Children []*CommandNode[C]
}

// node is an arena entry. Children are ordered by insertion; insertion order
// is the tie-break order at dispatch time.
type node[C any] struct {
	next []NodeKey
	kind NodeKind[C]
	exec ExecFunc[C]
}
