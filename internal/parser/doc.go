// Package parser provides the typed combinator algebra for command grammars.
//
// A Parser[E] reads from an input cursor and either produces an extracted
// value of type E or fails. A failed parse is not required to restore the
// cursor; callers that need the pre-attempt position must parse against a
// clone of the cursor and discard it on failure.
//
// Combinators compose parsers while preserving extraction types:
//
//   - Lit matches one literal token, extracting nothing.
//   - Seq runs two parsers in order, pairing their extractions.
//   - Map reshapes an extraction.
//   - Or tries two parsers as an ordered alternative, extracting an Either.
//   - Exec terminates a chain, binding the extraction to a typed handler and
//     requiring the whole input to have been consumed.
//
// The result of Exec is a Command value that invokes the bound handler
// exactly once via Call.
package parser
