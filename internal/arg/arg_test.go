package arg_test

import (
	"testing"

	"github.com/dshills/cmdstorm/internal/arg"
	"github.com/dshills/cmdstorm/internal/dispatcher"
	"github.com/dshills/cmdstorm/internal/input"
)

func parse(t *testing.T, a arg.Arg, text string) (any, bool) {
	t.Helper()
	in := input.New(text)
	return a.Parse(&in)
}

func TestWord(t *testing.T) {
	v, ok := parse(t, arg.Word(), "Steve spawn")
	if !ok || v.(string) != "Steve" {
		t.Errorf("Word parsed (%v, %v), want (Steve, true)", v, ok)
	}

	if _, ok := parse(t, arg.Word(), "   "); ok {
		t.Error("Word should fail on empty input")
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"4.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		v, ok := parse(t, arg.Int(), tt.text)
		if ok != tt.ok {
			t.Errorf("Int(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && v.(int64) != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.text, v, tt.want)
		}
	}
}

func TestIntRange(t *testing.T) {
	a := arg.IntRange(0, 64)

	if _, ok := parse(t, a, "32"); !ok {
		t.Error("expected in-range value to parse")
	}
	if _, ok := parse(t, a, "65"); ok {
		t.Error("expected out-of-range value to fail")
	}
	if _, ok := parse(t, a, "-1"); ok {
		t.Error("expected below-range value to fail")
	}
}

func TestFloat(t *testing.T) {
	v, ok := parse(t, arg.Float(), "2.5")
	if !ok || v.(float64) != 2.5 {
		t.Errorf("Float parsed (%v, %v), want (2.5, true)", v, ok)
	}
}

func TestBool(t *testing.T) {
	if v, ok := parse(t, arg.Bool(), "true"); !ok || v.(bool) != true {
		t.Errorf("Bool(true) = (%v, %v)", v, ok)
	}
	if v, ok := parse(t, arg.Bool(), "false"); !ok || v.(bool) != false {
		t.Errorf("Bool(false) = (%v, %v)", v, ok)
	}
	if _, ok := parse(t, arg.Bool(), "yes"); ok {
		t.Error("Bool should reject non-canonical tokens")
	}
}

func TestChoice(t *testing.T) {
	a := arg.Choice("survival", "creative")

	if v, ok := parse(t, a, "creative"); !ok || v.(string) != "creative" {
		t.Errorf("Choice = (%v, %v)", v, ok)
	}
	if _, ok := parse(t, a, "hardcore"); ok {
		t.Error("Choice should reject unknown option")
	}
}

func TestRest(t *testing.T) {
	in := input.New("say hello world  ")
	in.TakeHead(input.Sep)

	v, ok := arg.Rest().Parse(&in)
	if !ok || v.(string) != "hello world" {
		t.Errorf("Rest = (%v, %v), want (hello world, true)", v, ok)
	}
	if !in.Empty() {
		t.Error("Rest should consume the remainder")
	}

	if _, ok := parse(t, arg.Rest(), ""); ok {
		t.Error("Rest should fail on empty remainder")
	}
}

func TestQuoted(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{`plain rest`, "plain", true},
		{`"hello world" rest`, "hello world", true},
		{`"say \"hi\""`, `say "hi"`, true},
		{`"back\\slash"`, `back\slash`, true},
		{`"unterminated`, "", false},
		{``, "", false},
	}

	for _, tt := range tests {
		v, ok := parse(t, arg.Quoted(), tt.text)
		if ok != tt.ok {
			t.Errorf("Quoted(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && v.(string) != tt.want {
			t.Errorf("Quoted(%q) = %q, want %q", tt.text, v, tt.want)
		}
	}
}

func TestQuotedAdvancesPastClose(t *testing.T) {
	in := input.New(`"hello world" next`)

	if _, ok := arg.Quoted().Parse(&in); !ok {
		t.Fatal("expected quoted parse to succeed")
	}
	if got := in.Head(input.Sep); got != "next" {
		t.Errorf("cursor at %q after quoted parse, want %q", got, "next")
	}
}

func TestArgEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b arg.Arg
		want bool
	}{
		{"word/word", arg.Word(), arg.Word(), true},
		{"word/int", arg.Word(), arg.Int(), false},
		{"int/int", arg.Int(), arg.Int(), true},
		{"int/range", arg.Int(), arg.IntRange(0, 5), false},
		{"range/range same", arg.IntRange(0, 5), arg.IntRange(0, 5), true},
		{"range/range diff", arg.IntRange(0, 5), arg.IntRange(0, 9), false},
		{"choice same", arg.Choice("a", "b"), arg.Choice("a", "b"), true},
		{"choice diff", arg.Choice("a", "b"), arg.Choice("a"), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCheckerSatisfiesAndEqual(t *testing.T) {
	type ctx struct{}

	c := arg.NewChecker[*ctx](arg.Int())

	in := input.New("42 rest")
	if !c.Satisfies(nil, &in) {
		t.Fatal("expected checker to satisfy integer token")
	}
	if got := in.Head(input.Sep); got != "rest" {
		t.Errorf("checker left cursor at %q, want %q", got, "rest")
	}

	var other dispatcher.ArgumentChecker[*ctx] = arg.NewChecker[*ctx](arg.Int())
	if !c.Equal(other) {
		t.Error("expected checkers over equal args to be equal")
	}

	var diff dispatcher.ArgumentChecker[*ctx] = arg.NewChecker[*ctx](arg.Word())
	if c.Equal(diff) {
		t.Error("expected checkers over different args to differ")
	}
}
