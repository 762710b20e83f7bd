package combinator

import (
	"iter"
	"sync"
)

// Return yields exactly one result holding t and consumes nothing.
func Return[T any](t T) Parser[T] {
	return func(s string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			yield(Result[T]{Value: t, Rest: s})
		}
	}
}

// Fail yields no results for any input.
func Fail[T any]() Parser[T] {
	return func(string) iter.Seq[Result[T]] {
		return empty[T]
	}
}

// Bind runs p and, for every result in order, runs f on its value against its rest,
// concatenating the sub-sequences.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s string) iter.Seq[Result[B]] {
		return func(yield func(Result[B]) bool) {
			for a := range p(s) {
				for b := range f(a.Value)(a.Rest) {
					if !yield(b) {
						return
					}
				}
			}
		}
	}
}

// Map applies f to every value p produces.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Bind(p, func(a A) Parser[B] { return Return(f(a)) })
}

// Filter keeps the results of p whose value satisfies pred.
func Filter[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return Bind(p, func(t T) Parser[T] {
		if pred(t) {
			return Return(t)
		}
		return Fail[T]()
	})
}

// Then runs p and then q, keeping q's value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// Skip runs p and then q, keeping p's value.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Map(q, func(B) A { return a })
	})
}

// Between runs open, p and close in sequence and keeps p's value.
func Between[L, T, R any](open Parser[L], p Parser[T], close Parser[R]) Parser[T] {
	return Then(open, Skip(p, close))
}

// Seq2 runs p and then q and combines both values with f.
func Seq2[A, B, C any](p Parser[A], q Parser[B], f func(A, B) C) Parser[C] {
	return Bind(p, func(a A) Parser[C] {
		return Map(q, func(b B) C { return f(a, b) })
	})
}

// Lazy defers building a parser until it is first invoked. Rules that refer to
// themselves, directly or through other rules, are declared with Lazy so that
// constructing the grammar does not recurse forever. build runs at most once.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return func(s string) iter.Seq[Result[T]] {
		return get()(s)
	}
}
