package console

import (
	"fmt"

	"github.com/dshills/cmdstorm/internal/dispatcher"
)

// Session is the handler context for console commands. One session spans
// the console's lifetime; it is borrowed by one handler at a time.
type Session struct {
	console *Console
	quit    bool
}

// Print appends a line to the console scrollback.
func (s *Session) Print(line string) {
	s.console.print(line)
}

// Printf appends a formatted line to the console scrollback.
func (s *Session) Printf(format string, a ...any) {
	s.console.print(fmt.Sprintf(format, a...))
}

// Quit asks the console to exit after the current command returns.
func (s *Session) Quit() {
	s.quit = true
}

// Metas returns the metadata of the commands registered on the active
// dispatcher.
func (s *Session) Metas() []dispatcher.Meta {
	return s.console.dispatcher.Metas()
}
