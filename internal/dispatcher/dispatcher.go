package dispatcher

import "github.com/dshills/cmdstorm/internal/input"

// NodeKey is a stable handle into the node arena. Keys are never reused
// while the dispatcher exists.
type NodeKey int

// Command is a declared command ready for registration: its metadata plus
// the node tree projected into the shared graph.
type Command[C any] interface {
	// Meta returns the command's metadata.
	Meta() Meta

	// Node returns the command's declaration tree. The top-level node is
	// a synthetic RootKind holder aligned with the graph root.
	Node() *CommandNode[C]
}

// Dispatcher owns the command graph and resolves input lines against it.
// It is not safe for concurrent registration and dispatch; callers must
// serialize access externally.
type Dispatcher[C any] struct {
	nodes []node[C]
	root  NodeKey
	metas []Meta
}

// New creates a dispatcher with no registered commands.
func New[C any]() *Dispatcher[C] {
	d := &Dispatcher[C]{}
	d.nodes = append(d.nodes, node[C]{kind: RootKind[C]()})
	d.root = 0
	return d
}

// Register merges a command into the graph. Metadata is recorded only for
// successful registrations, regardless of how much arena sharing occurred.
// On error the registration is rejected; prefix nodes already merged are
// left in place and the dispatcher remains usable.
func (d *Dispatcher[C]) Register(cmd Command[C]) error {
	if err := d.merge(d.root, cmd.Node()); err != nil {
		return err
	}
	d.metas = append(d.metas, cmd.Meta())
	return nil
}

// With registers a command, panicking on error. Use Register to handle
// overlapping commands gracefully.
func (d *Dispatcher[C]) With(cmd Command[C]) *Dispatcher[C] {
	if err := d.Register(cmd); err != nil {
		panic(err)
	}
	return d
}

// merge recursively projects the declaration tree rooted at src onto the
// arena node dst. A handler on src attaches to dst itself; each child of
// src maps to the kind-equal child of dst, allocated if absent.
func (d *Dispatcher[C]) merge(dst NodeKey, src *CommandNode[C]) error {
	if src.Exec != nil {
		n := &d.nodes[dst]
		if n.kind.class == classRoot {
			return ErrExecutableRoot
		}
		if n.exec != nil {
			return ErrOverlappingCommands
		}
		n.exec = src.Exec
	}

	for _, child := range src.Children {
		found := NodeKey(-1)
		for _, key := range d.nodes[dst].next {
			if d.nodes[key].kind.Equals(child.Kind) {
				found = key
				break
			}
		}
		if found < 0 {
			d.nodes = append(d.nodes, node[C]{kind: child.Kind})
			found = NodeKey(len(d.nodes) - 1)
			d.nodes[dst].next = append(d.nodes[dst].next, found)
		}
		if err := d.merge(found, child); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch resolves a command line and invokes the matching handler.
// It reports whether a handler was found and executed.
//
// Matching is greedy and first-match: at each node the children are tried in
// insertion order and the first one that consumes the remaining input wins.
// No backtracking to a previously committed ancestor is attempted, even if a
// later sibling would have led to a terminal handler.
func (d *Dispatcher[C]) Dispatch(ctx C, command string) bool {
	current := d.root
	in := input.New(command)

	for !in.Empty() {
		// TODO: optimize the linear child scan with a keyed lookup if
		// child counts grow beyond a handful.
		matched := false
		for _, key := range d.nodes[current].next {
			candidate := in.Clone()
			if d.satisfies(key, ctx, &candidate) {
				current = key
				in = candidate
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if exec := d.nodes[current].exec; exec != nil {
		exec(ctx, command)
		return true
	}
	return false
}

// satisfies reports whether the node can consume the remaining input,
// advancing the candidate cursor past whatever it consumes.
func (d *Dispatcher[C]) satisfies(key NodeKey, ctx C, candidate *input.Input) bool {
	kind := &d.nodes[key].kind
	switch kind.class {
	case classParser:
		return kind.checker.Satisfies(ctx, candidate)
	case classLiteral:
		if kind.literal != candidate.Head(input.Sep) {
			return false
		}
		candidate.TakeHead(input.Sep)
		return true
	default:
		// The root kind never appears outside the root node.
		return false
	}
}

// Metas returns the metadata of every registered command, in registration
// order. The sequence is independent of arena sharing.
func (d *Dispatcher[C]) Metas() []Meta {
	metas := make([]Meta, len(d.metas))
	copy(metas, d.metas)
	return metas
}

// Size returns the number of nodes in the arena, including the root.
func (d *Dispatcher[C]) Size() int {
	return len(d.nodes)
}
