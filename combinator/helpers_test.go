package combinator

import (
	"iter"
	"reflect"
	"testing"
	"unicode"
)

// wantValues checks that seq yields exactly want, in order, each consuming all input.
func wantValues[T any](t *testing.T, seq iter.Seq[Result[T]], want ...T) {
	t.Helper()
	got := All(seq)
	if len(got) != len(want) {
		t.Fatalf("got %d results %v, want %d", len(got), got, len(want))
	}
	for i, r := range got {
		if !reflect.DeepEqual(r.Value, want[i]) {
			t.Errorf("result %d: value = %v, want %v", i, r.Value, want[i])
		}
		if r.Rest != "" {
			t.Errorf("result %d: rest = %q, want empty", i, r.Rest)
		}
	}
}

// wantResults checks values and rests.
func wantResults[T any](t *testing.T, seq iter.Seq[Result[T]], want ...Result[T]) {
	t.Helper()
	got := All(seq)
	if !reflect.DeepEqual(got, want) && !(len(got) == 0 && len(want) == 0) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func wantNone[T any](t *testing.T, seq iter.Seq[Result[T]]) {
	t.Helper()
	if got := All(seq); len(got) != 0 {
		t.Fatalf("got %v, want no results", got)
	}
}

// sentinel is a parser that fails the test if it is ever invoked.
func sentinel[T any](t *testing.T) Parser[T] {
	return func(s string) iter.Seq[Result[T]] {
		t.Fatalf("sentinel parser invoked on %q", s)
		return nil
	}
}

// limited yields vals with rest s and fails the test if more than n are pulled.
func limited[T any](t *testing.T, n int, vals ...T) Parser[T] {
	return func(s string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for i, v := range vals {
				if i >= n {
					t.Fatalf("element %d pulled, at most %d allowed", i, n)
				}
				if !yield(NewResult(v, s)) {
					return
				}
			}
		}
	}
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func constant[A, B any](b B) func(A) B {
	return func(A) B { return b }
}

// alnumOrDigit is ambiguous on digits: it yields 'L' and then 'D'.
var alnumOrDigit = Or(
	Map(Char(isLetterOrDigit), constant[rune]('L')),
	Map(Char(unicode.IsDigit), constant[rune]('D')),
)
