// Package main is the entry point for the cmdstorm console.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cmdstorm/internal/arg"
	"github.com/dshills/cmdstorm/internal/builder"
	"github.com/dshills/cmdstorm/internal/config"
	"github.com/dshills/cmdstorm/internal/console"
	"github.com/dshills/cmdstorm/internal/dispatcher"
	"github.com/dshills/cmdstorm/internal/luacmd"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "cmdstorm.toml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "cmdstorm.toml", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("cmdstorm %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ld := &loader{configPath: configPath}

	watchPaths := []string{configPath}
	if cfg.ScriptDir != "" {
		watchPaths = append(watchPaths, cfg.ScriptDir)
	}
	watcher, err := config.NewWatcher(watchPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: starting watcher: %v\n", err)
		return 1
	}
	defer watcher.Close()

	c, err := console.New(ld.build,
		console.WithPrompt(cfg.Prompt),
		console.WithReload(watcher.Reload()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	ld.session = c.Session()

	if err := c.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loader owns the Lua engine across dispatcher rebuilds.
type loader struct {
	configPath string
	engine     *luacmd.Engine[*console.Session]
	session    *console.Session
}

// build produces a fresh dispatcher. The live dispatcher keeps script
// commands bound to the previous engine, so that engine is closed only
// after the replacement build succeeds; a failed build leaves it open.
func (ld *loader) build() (*dispatcher.Dispatcher[*console.Session], error) {
	next := luacmd.NewEngine[*console.Session](
		luacmd.WithContextBinder[*console.Session](bindSession),
		luacmd.WithErrorFunc[*console.Session](ld.reportScriptError),
	)

	d, err := ld.populate(next)
	if err != nil {
		next.Close()
		return nil, err
	}

	if ld.engine != nil {
		ld.engine.Close()
	}
	ld.engine = next
	return d, nil
}

// populate registers builtins, core commands, script commands, and aliases
// on a new dispatcher.
func (ld *loader) populate(engine *luacmd.Engine[*console.Session]) (*dispatcher.Dispatcher[*console.Session], error) {
	// Reload in case the config itself changed.
	cfg, err := config.Load(ld.configPath)
	if err != nil {
		return nil, err
	}

	d := dispatcher.New[*console.Session]()
	for _, cmd := range console.Builtins() {
		if err := d.Register(cmd); err != nil {
			return nil, err
		}
	}
	if err := registerCore(d); err != nil {
		return nil, err
	}

	if cfg.ScriptDir != "" {
		if err := engine.LoadDir(cfg.ScriptDir); err != nil {
			return nil, err
		}
		for _, cmd := range engine.Commands() {
			if err := d.Register(cmd); err != nil {
				return nil, fmt.Errorf("registering %s: %w", cmd.Meta().Name, err)
			}
		}
	}

	if err := registerAliases(d, cfg.Aliases); err != nil {
		return nil, err
	}
	return d, nil
}

// reportScriptError surfaces Lua handler errors in the scrollback instead
// of writing over the terminal screen.
func (ld *loader) reportScriptError(err error) {
	if ld.session == nil {
		return
	}
	ld.session.Print(err.Error())
}

// registerCore registers the commands built into the binary.
func registerCore(d *dispatcher.Dispatcher[*console.Session]) error {
	echo := builder.Literal[*console.Session]("echo").
		Arg("text", arg.Rest()).
		Describe("Print text back").
		Handler(func(s *console.Session, args builder.Args) {
			s.Print(args.String(0))
		})

	return d.Register(echo)
}

// registerAliases registers each alias as a single-literal command that
// re-dispatches its expansion.
func registerAliases(d *dispatcher.Dispatcher[*console.Session], aliases map[string]string) error {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		expansion := aliases[name]
		cmd := builder.Literal[*console.Session](name).
			Describe("Alias for: " + expansion).
			Source("alias").
			Handler(func(s *console.Session, _ builder.Args) {
				if !d.Dispatch(s, expansion) {
					s.Print("unknown command: " + expansion)
				}
			})
		if err := d.Register(cmd); err != nil {
			return fmt.Errorf("registering alias %s: %w", name, err)
		}
	}
	return nil
}

// bindSession exposes the console session to Lua handlers.
func bindSession(L *lua.LState, s *console.Session) lua.LValue {
	tbl := L.NewTable()
	L.SetField(tbl, "print", L.NewFunction(func(L *lua.LState) int {
		s.Print(L.CheckString(1))
		return 0
	}))
	return tbl
}
