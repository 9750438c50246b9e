package console_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cmdstorm/internal/builder"
	"github.com/dshills/cmdstorm/internal/console"
	"github.com/dshills/cmdstorm/internal/dispatcher"
)

// typeLine injects a line of runes followed by Enter.
func typeLine(sim tcell.SimulationScreen, line string) {
	for _, r := range line {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)
}

func TestRunDispatchesAndQuits(t *testing.T) {
	sim := tcell.NewSimulationScreen("")

	pinged := false
	build := func() (*dispatcher.Dispatcher[*console.Session], error) {
		d := dispatcher.New[*console.Session]()
		for _, cmd := range console.Builtins() {
			if err := d.Register(cmd); err != nil {
				return nil, err
			}
		}
		ping := builder.Literal[*console.Session]("ping").
			Handler(func(s *console.Session, _ builder.Args) {
				pinged = true
				s.Print("pong")
			})
		if err := d.Register(ping); err != nil {
			return nil, err
		}
		return d, nil
	}

	c, err := console.New(build, console.WithScreen(sim), console.WithPrompt("> "))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- c.Run() }()

	// Let the run loop initialize before injecting input.
	time.Sleep(100 * time.Millisecond)
	typeLine(sim, "ping")
	typeLine(sim, "quit")

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for console to quit")
	}

	if !pinged {
		t.Error("expected the ping handler to run")
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	sim := tcell.NewSimulationScreen("")

	build := func() (*dispatcher.Dispatcher[*console.Session], error) {
		return dispatcher.New[*console.Session](), nil
	}

	c, err := console.New(build, console.WithScreen(sim))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- c.Run() }()

	time.Sleep(100 * time.Millisecond)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Ctrl-C to quit")
	}
}

// awaitGen reads one handler report, failing the test on timeout or on a
// report from the wrong build.
func awaitGen(t *testing.T, got <-chan int32, want int32) {
	t.Helper()
	select {
	case n := <-got:
		if n != want {
			t.Fatalf("handler ran from build %d, want %d", n, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
	}
}

// genBuild returns a build function registering a "gen" command whose
// handler reports which build it came from.
func genBuild(builds *atomic.Int32, got chan<- int32) console.BuildFunc {
	return func() (*dispatcher.Dispatcher[*console.Session], error) {
		n := builds.Add(1)
		d := dispatcher.New[*console.Session]()
		for _, cmd := range console.Builtins() {
			if err := d.Register(cmd); err != nil {
				return nil, err
			}
		}
		gen := builder.Literal[*console.Session]("gen").
			Handler(func(_ *console.Session, _ builder.Args) { got <- n })
		if err := d.Register(gen); err != nil {
			return nil, err
		}
		return d, nil
	}
}

func TestRunRebuildsOnReload(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	reload := make(chan struct{}, 1)
	got := make(chan int32, 4)
	var builds atomic.Int32

	c, err := console.New(genBuild(&builds, got),
		console.WithScreen(sim),
		console.WithReload(reload),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- c.Run() }()

	time.Sleep(100 * time.Millisecond)
	typeLine(sim, "gen")
	awaitGen(t, got, 1)

	reload <- struct{}{}
	time.Sleep(200 * time.Millisecond)
	typeLine(sim, "gen")
	awaitGen(t, got, 2)

	typeLine(sim, "quit")
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for console to quit")
	}
}

func TestRunFailedRebuildKeepsDispatcher(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	reload := make(chan struct{}, 1)
	got := make(chan int32, 4)
	var builds atomic.Int32

	goodBuild := genBuild(&builds, got)
	build := func() (*dispatcher.Dispatcher[*console.Session], error) {
		if builds.Load() > 0 {
			builds.Add(1)
			return nil, errors.New("bad config")
		}
		return goodBuild()
	}

	c, err := console.New(build,
		console.WithScreen(sim),
		console.WithReload(reload),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- c.Run() }()

	time.Sleep(100 * time.Millisecond)
	typeLine(sim, "gen")
	awaitGen(t, got, 1)

	reload <- struct{}{}
	time.Sleep(200 * time.Millisecond)

	// The first build's dispatcher must still serve commands.
	typeLine(sim, "gen")
	awaitGen(t, got, 1)

	typeLine(sim, "quit")
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for console to quit")
	}
}

func TestBuiltins(t *testing.T) {
	d := dispatcher.New[*console.Session]()
	for _, cmd := range console.Builtins() {
		if err := d.Register(cmd); err != nil {
			t.Fatalf("Register builtin: %v", err)
		}
	}

	metas := d.Metas()
	if len(metas) != 2 {
		t.Fatalf("len(Metas()) = %d, want 2", len(metas))
	}
	names := map[string]bool{}
	for _, meta := range metas {
		names[meta.Name] = true
	}
	if !names["help"] || !names["quit"] {
		t.Errorf("builtin names = %v", names)
	}
}
