package parser

import "github.com/dshills/cmdstorm/internal/input"

// Either carries the extraction of whichever side of an ordered alternative
// succeeded.
type Either[A, B any] struct {
	a      A
	b      B
	second bool
}

// EitherA wraps a first-branch extraction.
func EitherA[A, B any](a A) Either[A, B] {
	return Either[A, B]{a: a}
}

// EitherB wraps a second-branch extraction.
func EitherB[A, B any](b B) Either[A, B] {
	return Either[A, B]{b: b, second: true}
}

// IsA reports whether the first branch produced the value.
func (e Either[A, B]) IsA() bool { return !e.second }

// IsB reports whether the second branch produced the value.
func (e Either[A, B]) IsB() bool { return e.second }

// A returns the first-branch extraction and whether it is present.
func (e Either[A, B]) A() (A, bool) { return e.a, !e.second }

// B returns the second-branch extraction and whether it is present.
func (e Either[A, B]) B() (B, bool) { return e.b, e.second }

// Or tries first against a clone of the cursor; if it succeeds the extraction
// is returned as the A variant. Otherwise second parses against the caller's
// cursor, advancing it on success, and the extraction is returned as the B
// variant.
//
// Note the asymmetry: a first-branch success advances only the discarded
// clone, so the caller-visible cursor is left at its pre-attempt position.
// This matches the engine's historical behavior and is relied on by callers
// that re-parse; see the package tests.
func Or[A, B any](first Parser[A], second Parser[B]) Parser[Either[A, B]] {
	return Func[Either[A, B]](func(in *input.Input) (Either[A, B], bool) {
		clone := in.Clone()
		if a, ok := first.Parse(&clone); ok {
			return EitherA[A, B](a), true
		}
		if b, ok := second.Parse(in); ok {
			return EitherB[A](b), true
		}
		return Either[A, B]{}, false
	})
}
