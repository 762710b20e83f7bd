// Package combinator provides a small algebra of lazy, backtracking parser combinators.
//
// A Parser is a function from an input string to a lazily produced sequence of
// Results. Each Result pairs a parsed value with the unconsumed rest of the input.
// Failure is the empty sequence; there is no error channel.
//
// Everything derives from three operations: Return, Fail and Bind. On top of those
// the package offers two kinds of alternation:
//
//   - Or is exhaustive: it yields every parse of its first operand followed by every
//     parse of its second, preserving ambiguity.
//   - Dor is deterministic: it pulls at most one result from each operand and yields
//     the first one found.
//
// Repetition (Many, Many1, N) and operator chaining (ChainL1, ChainR1) are built from
// Dor and therefore return the single longest match. Their Lazy counterparts are built
// from Or and enumerate every length or grouping, longest first.
//
// Result sequences are iter.Seq values, so a consumer may stop ranging at any point
// without paying for the rest. Grammars that recurse into themselves must construct
// the recursive rule with Lazy.
package combinator
