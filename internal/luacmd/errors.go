package luacmd

import "errors"

// Engine errors.
var (
	// ErrEngineClosed is returned when using a closed engine.
	ErrEngineClosed = errors.New("luacmd: engine is closed")

	// ErrBadDeclaration indicates a malformed cmdstorm.command call.
	ErrBadDeclaration = errors.New("luacmd: bad command declaration")
)
