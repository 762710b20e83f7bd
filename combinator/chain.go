package combinator

// ChainL1 parses one or more p separated by op and folds them left-associatively
// with the functions op yields: a op b op c is (a op b) op c.
//
// The chain is greedy: after each operand, continuing is tried first and wins if it
// yields anything. Only the continuation is deterministic. If p is ambiguous on the
// first operand, ChainL1 yields one result per parse of that operand.
func ChainL1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return chainL1(Dor[T], p, op)
}

// LazyChainL1 is ChainL1 built from Or. It yields every left grouping, including
// those that stop early, longest first.
func LazyChainL1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return chainL1(Or[T], p, op)
}

// ChainR1 parses one or more p separated by op and folds them right-associatively:
// a op b op c is a op (b op c). A single p is a valid parse.
func ChainR1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return chainR1(Dor[T], p, op)
}

// LazyChainR1 is ChainR1 built from Or, yielding every right grouping longest first.
func LazyChainR1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return chainR1(Or[T], p, op)
}

func chainL1[T any](alt func(p1, p2 Parser[T]) Parser[T], p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	var rest func(acc T) Parser[T]
	rest = func(acc T) Parser[T] {
		grab := Bind(op, func(f func(T, T) T) Parser[T] {
			return Bind(p, func(t T) Parser[T] { return rest(f(acc, t)) })
		})
		return alt(grab, Return(acc))
	}
	return Bind(p, rest)
}

func chainR1[T any](alt func(p1, p2 Parser[T]) Parser[T], p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	var chain Parser[T]
	chain = Bind(p, func(t T) Parser[T] {
		grab := Bind(op, func(f func(T, T) T) Parser[T] {
			return Map(chain, func(r T) T { return f(t, r) })
		})
		return alt(grab, Return(t))
	})
	return chain
}
