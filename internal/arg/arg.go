package arg

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/cmdstorm/internal/input"
)

// Arg parses a single argument value from the cursor. Parse advances the
// cursor on success; on failure the cursor state is unspecified and callers
// must have cloned if they need the pre-attempt position.
type Arg interface {
	// Parse extracts one value, advancing the cursor.
	Parse(in *input.Input) (any, bool)

	// Equal reports whether other is the same parser with the same
	// configuration. Equal args must behave identically for all inputs.
	Equal(other Arg) bool

	// Describe returns the display form for usage text, e.g. "<int>".
	Describe() string
}

// Word matches any single non-empty token and extracts it as a string.
func Word() Arg { return wordArg{} }

type wordArg struct{}

func (wordArg) Parse(in *input.Input) (any, bool) {
	tok := in.TakeHead(input.Sep)
	return tok, tok != ""
}

func (wordArg) Equal(other Arg) bool {
	_, ok := other.(wordArg)
	return ok
}

func (wordArg) Describe() string { return "<word>" }

// Int matches one integer token, extracted as int64.
func Int() Arg { return intArg{} }

// IntRange matches one integer token within [min, max] inclusive.
func IntRange(min, max int64) Arg {
	return intArg{min: min, max: max, bounded: true}
}

type intArg struct {
	min, max int64
	bounded  bool
}

func (a intArg) Parse(in *input.Input) (any, bool) {
	n, err := strconv.ParseInt(in.TakeHead(input.Sep), 10, 64)
	if err != nil {
		return int64(0), false
	}
	if a.bounded && (n < a.min || n > a.max) {
		return int64(0), false
	}
	return n, true
}

func (a intArg) Equal(other Arg) bool {
	o, ok := other.(intArg)
	return ok && a == o
}

func (a intArg) Describe() string { return "<int>" }

// Float matches one floating point token, extracted as float64.
func Float() Arg { return floatArg{} }

type floatArg struct{}

func (floatArg) Parse(in *input.Input) (any, bool) {
	f, err := strconv.ParseFloat(in.TakeHead(input.Sep), 64)
	if err != nil {
		return float64(0), false
	}
	return f, true
}

func (floatArg) Equal(other Arg) bool {
	_, ok := other.(floatArg)
	return ok
}

func (floatArg) Describe() string { return "<number>" }

// Bool matches "true" or "false", extracted as bool.
func Bool() Arg { return boolArg{} }

type boolArg struct{}

func (boolArg) Parse(in *input.Input) (any, bool) {
	switch in.TakeHead(input.Sep) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func (boolArg) Equal(other Arg) bool {
	_, ok := other.(boolArg)
	return ok
}

func (boolArg) Describe() string { return "<true|false>" }

// Choice matches one token from a fixed option set, extracted as a string.
func Choice(options ...string) Arg {
	return choiceArg{options: options}
}

type choiceArg struct {
	options []string
}

func (a choiceArg) Parse(in *input.Input) (any, bool) {
	tok := in.TakeHead(input.Sep)
	if slices.Contains(a.options, tok) {
		return tok, true
	}
	return "", false
}

func (a choiceArg) Equal(other Arg) bool {
	o, ok := other.(choiceArg)
	return ok && slices.Equal(a.options, o.options)
}

func (a choiceArg) Describe() string {
	return "<" + strings.Join(a.options, "|") + ">"
}

// Rest greedily matches the entire non-empty remainder of the input,
// extracted as a string with surrounding separators trimmed.
func Rest() Arg { return restArg{} }

type restArg struct{}

func (restArg) Parse(in *input.Input) (any, bool) {
	rest := strings.Trim(in.Rest(), input.Sep)
	in.Advance(len(in.Rest()))
	return rest, rest != ""
}

func (restArg) Equal(other Arg) bool {
	_, ok := other.(restArg)
	return ok
}

func (restArg) Describe() string { return "<text...>" }
