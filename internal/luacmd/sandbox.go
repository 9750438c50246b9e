package luacmd

import lua "github.com/yuin/gopher-lua"

// openSafeLibraries opens only the Lua standard libraries that cannot touch
// the host system.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened:
	// - io (file system access)
	// - os (system calls, execute)
	// - debug (can bypass the sandbox)
	// - package (can load arbitrary modules)
}

// unsafeBaseFunctions are base-library functions removed after OpenBase.
// They load or execute code from outside the script source handed to the
// engine.
var unsafeBaseFunctions = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
}

// installSandbox strips unsafe globals from an opened state.
func installSandbox(L *lua.LState) {
	for _, name := range unsafeBaseFunctions {
		L.SetGlobal(name, lua.LNil)
	}
}
