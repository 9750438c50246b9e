package luacmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cmdstorm/internal/arg"
	"github.com/dshills/cmdstorm/internal/builder"
	"github.com/dshills/cmdstorm/internal/dispatcher"
)

// handlerRegistryKey is the global holding Lua handler functions, keyed by
// registration index. Anchoring them in a reachable table prevents the Lua
// GC from collecting handlers between dispatches.
const handlerRegistryKey = "_cmdstorm_handlers"

// ContextBinder converts the Go handler context into the Lua value passed
// as a handler's first argument.
type ContextBinder[C any] func(L *lua.LState, ctx C) lua.LValue

// Option configures an Engine.
type Option[C any] func(*Engine[C])

// WithContextBinder sets the context binder. Without one, handlers receive
// nil as their context argument.
func WithContextBinder[C any](bind ContextBinder[C]) Option[C] {
	return func(e *Engine[C]) {
		e.bind = bind
	}
}

// WithErrorFunc sets the callback invoked when a Lua handler raises an
// error during dispatch. The default logs the error.
func WithErrorFunc[C any](fn func(error)) Option[C] {
	return func(e *Engine[C]) {
		e.onError = fn
	}
}

// Engine loads Lua scripts and collects the commands they declare.
type Engine[C any] struct {
	L        *lua.LState
	bind     ContextBinder[C]
	onError  func(error)
	handlers *lua.LTable
	nextRef  int
	cmds     []dispatcher.Command[C]
	source   string
	closed   bool
}

// NewEngine creates a sandboxed engine ready to load scripts.
func NewEngine[C any](opts ...Option[C]) *Engine[C] {
	e := &Engine[C]{
		onError: func(err error) { log.Printf("luacmd: %v", err) },
		source:  "inline",
	}
	for _, opt := range opts {
		opt(e)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	installSandbox(L)

	e.L = L
	e.handlers = L.NewTable()
	L.SetGlobal(handlerRegistryKey, e.handlers)

	mod := L.NewTable()
	L.SetField(mod, "command", L.NewFunction(e.register))
	L.SetGlobal("cmdstorm", mod)

	return e
}

// Close releases the Lua state. Commands already collected keep referencing
// the state and must not be dispatched after Close.
func (e *Engine[C]) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// DoString runs a chunk of Lua source.
func (e *Engine[C]) DoString(src string) error {
	if e.closed {
		return ErrEngineClosed
	}
	e.source = "inline"
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("luacmd: %w", err)
	}
	return nil
}

// LoadScript runs a single script file. Commands it declares are attributed
// to the script by name.
func (e *Engine[C]) LoadScript(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	e.source = "script:" + filepath.Base(path)
	defer func() { e.source = "inline" }()

	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("luacmd: loading %s: %w", path, err)
	}
	return nil
}

// LoadDir runs every .lua file in dir, in name order. A missing directory
// is not an error.
func (e *Engine[C]) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("luacmd: reading %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".lua" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := e.LoadScript(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Commands returns the commands declared so far, in declaration order.
func (e *Engine[C]) Commands() []dispatcher.Command[C] {
	cmds := make([]dispatcher.Command[C], len(e.cmds))
	copy(cmds, e.cmds)
	return cmds
}

// register implements cmdstorm.command(opts).
func (e *Engine[C]) register(L *lua.LState) int {
	opts := L.CheckTable(1)

	name := getString(L, opts, "name")
	if name == "" {
		L.ArgError(1, "name is required")
		return 0
	}
	handler := L.GetField(opts, "handler")
	if _, ok := handler.(*lua.LFunction); !ok {
		L.ArgError(1, "handler must be a function")
		return 0
	}

	b := builder.Literal[C](name).
		Describe(getString(L, opts, "describe")).
		Category(getString(L, opts, "category")).
		Source(e.source)

	if argsVal := L.GetField(opts, "args"); argsVal != lua.LNil {
		argsTbl, ok := argsVal.(*lua.LTable)
		if !ok {
			L.ArgError(1, "args must be a table of specs")
			return 0
		}
		var specErr string
		argsTbl.ForEach(func(_, v lua.LValue) {
			spec := lua.LVAsString(v)
			argName, a, err := parseArgSpec(spec)
			if err != nil {
				specErr = err.Error()
				return
			}
			b.Arg(argName, a)
		})
		if specErr != "" {
			L.ArgError(1, specErr)
			return 0
		}
	}

	// Anchor the handler function against GC.
	e.nextRef++
	ref := e.nextRef
	e.L.RawSetInt(e.handlers, ref, handler)

	b.Handler(e.bridge(ref))
	e.cmds = append(e.cmds, b)
	return 0
}

// bridge returns a Go handler that calls back into the anchored Lua
// function.
func (e *Engine[C]) bridge(ref int) builder.Handler[C] {
	return func(ctx C, args builder.Args) {
		L := e.L
		fn := L.RawGetInt(e.handlers, ref)

		ctxVal := lua.LValue(lua.LNil)
		if e.bind != nil {
			ctxVal = e.bind(L, ctx)
		}

		argsTbl := L.NewTable()
		for i := 0; i < args.Len(); i++ {
			L.SetField(argsTbl, args.Name(i), toLValue(args.Value(i)))
		}

		L.Push(fn)
		L.Push(ctxVal)
		L.Push(argsTbl)
		if err := L.PCall(2, 0, nil); err != nil {
			e.onError(fmt.Errorf("luacmd: handler: %w", err))
		}
	}
}

// parseArgSpec parses "name:type" with optional type parameters:
// "count:int:1:64", "mode:choice:a|b|c".
func parseArgSpec(spec string) (string, arg.Arg, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || parts[0] == "" {
		return "", nil, fmt.Errorf("%w: %q (want name:type)", ErrBadDeclaration, spec)
	}
	name, kind := parts[0], parts[1]

	switch kind {
	case "word":
		return name, arg.Word(), nil
	case "int":
		if len(parts) == 4 {
			min, err1 := strconv.ParseInt(parts[2], 10, 64)
			max, err2 := strconv.ParseInt(parts[3], 10, 64)
			if err1 != nil || err2 != nil {
				return "", nil, fmt.Errorf("%w: bad int bounds in %q", ErrBadDeclaration, spec)
			}
			return name, arg.IntRange(min, max), nil
		}
		return name, arg.Int(), nil
	case "float":
		return name, arg.Float(), nil
	case "bool":
		return name, arg.Bool(), nil
	case "string":
		return name, arg.Quoted(), nil
	case "choice":
		if len(parts) != 3 || parts[2] == "" {
			return "", nil, fmt.Errorf("%w: choice needs options in %q", ErrBadDeclaration, spec)
		}
		return name, arg.Choice(strings.Split(parts[2], "|")...), nil
	case "rest":
		return name, arg.Rest(), nil
	}
	return "", nil, fmt.Errorf("%w: unknown arg type %q", ErrBadDeclaration, kind)
}

// toLValue converts an extracted argument value to its Lua representation.
func toLValue(v any) lua.LValue {
	switch val := v.(type) {
	case string:
		return lua.LString(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case bool:
		return lua.LBool(val)
	default:
		return lua.LNil
	}
}

// getString reads a string field from a Lua table, empty if absent.
func getString(L *lua.LState, tbl *lua.LTable, field string) string {
	v := L.GetField(tbl, field)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}
