// Package console is the interactive terminal front-end.
//
// The console owns a tcell screen showing a scrollback region and a single
// input line. Each submitted line is resolved through the active dispatcher;
// a line no command matches is reported as unknown. There is no input
// history and no completion.
//
// The dispatcher is produced by a build function so it can be rebuilt when a
// reload signal arrives (config or script changes): command registration is
// append-only for a dispatcher's lifetime, so reloading means building a
// fresh one.
package console
