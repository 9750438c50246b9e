// Package arg provides the built-in argument parsers for command grammars.
//
// An Arg parses one argument value from the input cursor and knows how to
// compare itself against other args, which is what lets structurally equal
// argument nodes be shared between commands in the dispatch graph. Checker
// adapts an Arg to the dispatcher's ArgumentChecker capability.
//
// Args are context-free: they inspect only the input text, never the
// handler context.
package arg
