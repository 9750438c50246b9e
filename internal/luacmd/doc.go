// Package luacmd registers commands declared in Lua scripts.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries opened; io, os, debug and package are withheld,
// and the file-loading base functions are removed. A script declares
// commands through the cmdstorm global:
//
//	cmdstorm.command{
//	    name = "greet",
//	    describe = "Greet a player",
//	    args = { "player:word", "times:int:1:5" },
//	    handler = function(ctx, args)
//	        ctx.print("hello " .. args.player)
//	    end,
//	}
//
// Each declaration becomes a builder command whose handler bridges back
// into the Lua state. Handler functions are anchored in a registry table so
// they survive garbage collection for the life of the engine.
//
// gopher-lua states are not goroutine-safe: an Engine and every dispatcher
// holding its commands must be used from a single goroutine.
package luacmd
