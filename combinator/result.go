package combinator

import (
	"fmt"
	"iter"
)

// Result is one successful parse: a value and the unconsumed suffix of the input.
type Result[T any] struct {
	Value T
	Rest  string
}

// NewResult returns the Result holding t with s left over.
func NewResult[T any](t T, s string) Result[T] {
	return Result[T]{Value: t, Rest: s}
}

func (r Result[T]) String() string {
	if r.Rest == "" {
		return fmt.Sprint(r.Value)
	}
	return fmt.Sprintf("%v (rest is %q)", r.Value, r.Rest)
}

// Parser maps an input string to the lazy sequence of its parses.
type Parser[T any] func(s string) iter.Seq[Result[T]]

// empty is the sequence with no elements.
func empty[T any](func(Result[T]) bool) {}

// First pulls at most one element from seq.
func First[T any](seq iter.Seq[Result[T]]) (Result[T], bool) {
	for r := range seq {
		return r, true
	}
	return Result[T]{}, false
}

// Take realizes at most n elements of seq. A non-positive n realizes nothing.
func Take[T any](seq iter.Seq[Result[T]], n int) []Result[T] {
	if n <= 0 {
		return nil
	}
	var out []Result[T]
	for r := range seq {
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}

// All realizes seq completely. It does not terminate on an infinite sequence.
func All[T any](seq iter.Seq[Result[T]]) []Result[T] {
	var out []Result[T]
	for r := range seq {
		out = append(out, r)
	}
	return out
}
