package console

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cmdstorm/internal/dispatcher"
)

// BuildFunc produces the dispatcher the console resolves input against. It
// is called once at startup and again after each reload signal.
type BuildFunc func() (*dispatcher.Dispatcher[*Session], error)

// Console is the interactive terminal front-end.
type Console struct {
	screen     tcell.Screen
	build      BuildFunc
	dispatcher *dispatcher.Dispatcher[*Session]
	session    *Session

	prompt string
	lines  []string
	in     []rune

	reload <-chan struct{}
	done   chan struct{}
}

// Option configures a Console.
type Option func(*Console)

// WithScreen sets the tcell screen, used by tests to supply a simulation
// screen.
func WithScreen(screen tcell.Screen) Option {
	return func(c *Console) {
		c.screen = screen
	}
}

// WithPrompt sets the input prompt.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// WithReload sets the channel whose signals trigger a dispatcher rebuild.
func WithReload(reload <-chan struct{}) Option {
	return func(c *Console) {
		c.reload = reload
	}
}

// New creates a console. The build function is invoked during Run.
func New(build BuildFunc, opts ...Option) (*Console, error) {
	c := &Console{
		build:  build,
		prompt: "> ",
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("console: creating screen: %w", err)
		}
		c.screen = screen
	}

	c.session = &Session{console: c}
	return c, nil
}

// Session returns the session passed to command handlers.
func (c *Console) Session() *Session {
	return c.session
}

// Run drives the console until the session quits or the screen closes.
func (c *Console) Run() error {
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("console: init screen: %w", err)
	}
	defer c.screen.Fini()
	defer close(c.done)

	d, err := c.build()
	if err != nil {
		return err
	}
	c.dispatcher = d

	if c.reload != nil {
		go c.forwardReloads()
	}

	c.draw()
	for {
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if c.handleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventInterrupt:
			c.rebuild()
		case nil:
			// Screen closed.
			return nil
		}
		c.draw()
	}
}

// forwardReloads turns reload signals into screen events so the poll loop
// sees them.
func (c *Console) forwardReloads() {
	for {
		select {
		case <-c.done:
			return
		case _, ok := <-c.reload:
			if !ok {
				return
			}
			_ = c.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// handleKey processes one key event, reporting whether the console should
// exit.
func (c *Console) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		c.submit(strings.TrimSpace(string(c.in)))
		c.in = c.in[:0]
		return c.session.quit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.in) > 0 {
			c.in = c.in[:len(c.in)-1]
		}
	case tcell.KeyRune:
		c.in = append(c.in, ev.Rune())
	}
	return false
}

// submit echoes and dispatches one input line.
func (c *Console) submit(line string) {
	if line == "" {
		return
	}
	c.print(c.prompt + line)
	if !c.dispatcher.Dispatch(c.session, line) {
		c.print("unknown command: " + line)
	}
}

// rebuild replaces the dispatcher after a reload signal. A failed rebuild
// keeps the current dispatcher.
func (c *Console) rebuild() {
	d, err := c.build()
	if err != nil {
		c.print("reload failed: " + err.Error())
		return
	}
	c.dispatcher = d
	c.print("commands reloaded")
}

// print appends one line to the scrollback.
func (c *Console) print(line string) {
	c.lines = append(c.lines, line)
}

// draw renders the scrollback above the input line.
func (c *Console) draw() {
	c.screen.Clear()
	width, height := c.screen.Size()
	if height < 1 {
		return
	}

	view := height - 1
	start := 0
	if len(c.lines) > view {
		start = len(c.lines) - view
	}
	for row, line := range c.lines[start:] {
		drawText(c.screen, 0, row, width, line, tcell.StyleDefault)
	}

	promptLine := c.prompt + string(c.in)
	drawText(c.screen, 0, height-1, width, promptLine, tcell.StyleDefault.Bold(true))
	c.screen.ShowCursor(len([]rune(promptLine)), height-1)
	c.screen.Show()
}

// drawText writes a clipped single-line string.
func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
