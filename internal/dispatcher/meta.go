package dispatcher

// Meta describes a registered command for enumeration and help output. It
// has no effect on dispatch.
type Meta struct {
	// ID is the unique command identifier.
	ID string

	// Name is the command's first token.
	Name string

	// Description provides additional context about the command.
	Description string

	// Category groups related commands.
	Category string

	// Usage is the display form of the grammar (e.g. "tp <player> <dest>").
	Usage string

	// Source indicates where the command was registered.
	// Examples: "core", "script:greet.lua", "alias"
	Source string
}
