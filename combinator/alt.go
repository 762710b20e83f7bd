package combinator

import "iter"

// Or yields every result of p1 followed by every result of p2.
// p2 is not invoked until p1's results are exhausted.
func Or[T any](p1, p2 Parser[T]) Parser[T] {
	return func(s string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for r := range p1(s) {
				if !yield(r) {
					return
				}
			}
			for r := range p2(s) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Dor yields the first result of p1 if there is one, and otherwise the first result
// of p2. It pulls at most one element from either operand and does not invoke p2 when
// p1 succeeds.
func Dor[T any](p1, p2 Parser[T]) Parser[T] {
	return func(s string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			if r, ok := First(p1(s)); ok {
				yield(r)
				return
			}
			if r, ok := First(p2(s)); ok {
				yield(r)
			}
		}
	}
}

// OrElse yields every result of p1, or every result of p2 if p1 yields none.
func OrElse[T any](p1, p2 Parser[T]) Parser[T] {
	return func(s string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			matched := false
			for r := range p1(s) {
				matched = true
				if !yield(r) {
					return
				}
			}
			if matched {
				return
			}
			for r := range p2(s) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Choice is Or over any number of parsers. With none it fails.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return fold(Or[T], ps)
}

// DChoice is Dor over any number of parsers. With none it fails.
func DChoice[T any](ps ...Parser[T]) Parser[T] {
	return fold(Dor[T], ps)
}

func fold[T any](alt func(p1, p2 Parser[T]) Parser[T], ps []Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Fail[T]()
	}
	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = alt(ps[i], p)
	}
	return p
}
