package combinator

// Many1 parses one or more occurrences of p greedily, first occurrence first.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(t T) Parser[[]T] {
		return Map(Many(p), func(ts []T) []T { return prepend(t, ts) })
	})
}

// Many parses as many occurrences of p as possible and yields exactly one result.
// Zero occurrences is a success. p must consume input when it succeeds, otherwise
// Many does not terminate.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Dor(Many1(p), Return([]T{}))
}

// LazyMany1 is Many1 built from Or: it yields every repetition count of at least
// one, longest first.
func LazyMany1[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(t T) Parser[[]T] {
		return Map(LazyMany(p), func(ts []T) []T { return prepend(t, ts) })
	})
}

// LazyMany yields every repetition count of p, longest first, ending with zero.
func LazyMany[T any](p Parser[T]) Parser[[]T] {
	return Or(LazyMany1(p), Return([]T{}))
}

// N parses exactly n occurrences of p. For n <= 0 it consumes nothing.
func N[T any](p Parser[T], n int) Parser[[]T] {
	if n <= 0 {
		return Return([]T{})
	}
	return Bind(p, func(t T) Parser[[]T] {
		return Map(N(p, n-1), func(ts []T) []T { return prepend(t, ts) })
	})
}

// SepBy1 parses one or more occurrences of p separated by sep, greedily.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Seq2(p, Many(Then(sep, p)), prepend[T])
}

// SepBy is SepBy1 that also accepts zero occurrences.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Dor(SepBy1(p, sep), Return([]T{}))
}

// prepend returns a new slice; results may share tails so ts is never modified.
func prepend[T any](t T, ts []T) []T {
	out := make([]T, 0, len(ts)+1)
	out = append(out, t)
	return append(out, ts...)
}
