package dispatcher

import "errors"

// Registration errors.
var (
	// ErrOverlappingCommands indicates two commands have an executable
	// node at the same point in the graph.
	ErrOverlappingCommands = errors.New("dispatcher: overlapping commands")

	// ErrExecutableRoot indicates a command attempted to attach a handler
	// directly to the graph root.
	ErrExecutableRoot = errors.New("dispatcher: executable command at graph root")
)
