package arg

import (
	"strings"

	"github.com/dshills/cmdstorm/internal/input"
)

// Quoted matches either a double-quoted string (with \" and \\ escapes) or a
// single bare token, extracted as the unescaped string.
func Quoted() Arg { return quotedArg{} }

type quotedArg struct{}

func (quotedArg) Parse(in *input.Input) (any, bool) {
	in.SkipSep(input.Sep)
	rest := in.Rest()

	if !strings.HasPrefix(rest, `"`) {
		tok := in.TakeHead(input.Sep)
		return tok, tok != ""
	}

	var sb strings.Builder
	escaped := false
	for i := 1; i < len(rest); i++ {
		ch := rest[i]
		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			in.Advance(i + 1)
			in.SkipSep(input.Sep)
			return sb.String(), true
		default:
			sb.WriteByte(ch)
		}
	}

	// Unterminated quote.
	return "", false
}

func (quotedArg) Equal(other Arg) bool {
	_, ok := other.(quotedArg)
	return ok
}

func (quotedArg) Describe() string { return "<string>" }
