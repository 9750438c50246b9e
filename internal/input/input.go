// Package input provides the cursor over unconsumed command text.
//
// An Input is a cheap-to-copy view of a command string with a logical read
// position. Parsers and checkers advance the cursor as they consume tokens.
// Cloning produces an independent cursor over the same backing text, which is
// how callers try a candidate parse without disturbing their own position:
// parse against the clone, and commit the clone only if that candidate is the
// branch taken.
//
// Tokenization is byte-oriented and separator-delimited. Unicode-aware
// splitting is intentionally not supported.
package input

import "strings"

// Sep is the default token separator.
const Sep = " "

// Input is a read cursor over command text.
type Input struct {
	text string
	pos  int
}

// New creates a cursor positioned at the start of text.
func New(text string) Input {
	return Input{text: text}
}

// Clone returns an independent cursor at the same position over the same text.
func (in *Input) Clone() Input {
	return Input{text: in.text, pos: in.pos}
}

// Empty reports whether any unconsumed content remains.
// A remainder consisting only of separators counts as empty.
func (in *Input) Empty() bool {
	return strings.Trim(in.text[in.pos:], Sep) == ""
}

// Rest returns the unconsumed tail of the text, including any leading
// separators.
func (in *Input) Rest() string {
	return in.text[in.pos:]
}

// Head returns the next token up to (not including) the next occurrence of
// sep, without consuming it. Leading separator runs are skipped.
func (in *Input) Head(sep string) string {
	rest := strings.TrimLeft(in.text[in.pos:], sep)
	if i := strings.Index(rest, sep); i >= 0 {
		return rest[:i]
	}
	return rest
}

// TakeHead consumes and returns the next token, advancing past the token and
// the separator run that follows it.
func (in *Input) TakeHead(sep string) string {
	rest := in.text[in.pos:]
	trimmed := strings.TrimLeft(rest, sep)
	in.pos += len(rest) - len(trimmed)

	head := trimmed
	if i := strings.Index(trimmed, sep); i >= 0 {
		head = trimmed[:i]
	}
	in.pos += len(head)

	// Swallow the separator run after the token so the next read starts
	// on content.
	after := in.text[in.pos:]
	in.pos += len(after) - len(strings.TrimLeft(after, sep))

	return head
}

// Advance moves the cursor forward by n bytes, clamped to the end of text.
func (in *Input) Advance(n int) {
	in.pos += n
	if in.pos > len(in.text) {
		in.pos = len(in.text)
	}
}

// SkipSep advances past any separator run at the cursor.
func (in *Input) SkipSep(sep string) {
	rest := in.text[in.pos:]
	in.pos += len(rest) - len(strings.TrimLeft(rest, sep))
}
