// Package dispatcher merges declared commands into a shared graph and
// resolves input lines against it.
//
// # Architecture
//
// Commands are declared externally (see the builder package) as trees of
// literal and parser nodes. Registration projects each tree into a single
// append-only node arena, deduplicating structurally equal prefixes: two
// commands beginning "tp ..." share one "tp" node. Nodes are addressed by
// stable integer keys that are never reused for the dispatcher's lifetime.
//
// Dispatch walks the arena from the root, consuming the input cursor. At
// each node the children are tried in insertion order and the first child
// that can consume the remaining input is committed to. Matching is greedy
// and non-backtracking: once a sibling is chosen, no other sibling is
// revisited even if the chosen path later dead-ends. Dispatch succeeds only
// when the cursor is exhausted at a node carrying a handler.
//
// # Registration errors
//
// Registration fails fast with ErrOverlappingCommands when two commands
// terminate at the same node, and with ErrExecutableRoot when a command
// attaches a handler to the graph root (a dispatchable command must consume
// at least one token). A failed registration may leave already-merged prefix
// nodes in the arena; the dispatcher remains usable for further
// registrations and dispatches.
//
// # Concurrency
//
// The dispatcher performs no internal locking. Complete all registrations
// before dispatching, or guard the whole dispatcher externally.
package dispatcher
