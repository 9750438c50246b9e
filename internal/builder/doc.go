// Package builder turns fluent command declarations into registrable
// commands.
//
// A declaration is a linear chain of literal tokens and typed arguments
// ending in a handler:
//
//	cmd := builder.Literal[*Game]("tp").
//	    Arg("player", arg.Word()).
//	    Arg("destination", arg.Word()).
//	    Describe("Teleport a player").
//	    Handler(func(g *Game, args builder.Args) {
//	        g.Teleport(args.String(0), args.String(1))
//	    })
//
//	err := d.Register(cmd)
//
// Build-time, the chain is projected to a node tree for the dispatch graph.
// The handler is bound through the parser package's Exec terminal before
// type erasure: at dispatch time the full raw command text is re-parsed by
// the typed chain, the extracted arguments are packed into Args, and the
// handler is invoked only if the whole input was consumed.
package builder
