package combinator

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// AnyChar consumes the first rune of a non-empty input.
var AnyChar Parser[rune] = func(s string) iter.Seq[Result[rune]] {
	if s == "" {
		return empty[rune]
	}
	c, size := utf8.DecodeRuneInString(s)
	return Return(c)(s[size:])
}

// Char consumes one rune satisfying pred.
func Char(pred func(rune) bool) Parser[rune] {
	return Filter(AnyChar, pred)
}

// Rune consumes exactly c.
func Rune(c rune) Parser[rune] {
	return Char(func(r rune) bool { return r == c })
}

var (
	Digit  = Char(unicode.IsDigit)
	Letter = Char(unicode.IsLetter)
)

// Str matches lit exactly, rune by rune.
func Str(lit string) Parser[string] {
	return literal(lit, func(a, b rune) bool { return a == b })
}

// StrFold matches lit ignoring case. The value is the matched input text, which may
// differ in case from lit.
func StrFold(lit string) Parser[string] {
	return literal(lit, equalFold)
}

func literal(lit string, eq func(a, b rune) bool) Parser[string] {
	return func(s string) iter.Seq[Result[string]] {
		rest := s
		for _, want := range lit {
			got, size := utf8.DecodeRuneInString(rest)
			if size == 0 || !eq(got, want) {
				return empty[string]
			}
			rest = rest[size:]
		}
		return Return(s[:len(s)-len(rest)])(rest)
	}
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToUpper(a) == unicode.ToUpper(b) || unicode.ToLower(a) == unicode.ToLower(b)
}

// Runes concatenates the runes p produces into a string.
func Runes(p Parser[[]rune]) Parser[string] {
	return Map(p, func(rs []rune) string { return string(rs) })
}

// Space consumes a possibly empty run of white space.
var Space = Runes(Many(Char(unicode.IsSpace)))

// Token runs p and discards the white space that follows it.
func Token[T any](p Parser[T]) Parser[T] {
	return Skip(p, Space)
}

// Symbol matches lit as a token.
func Symbol(lit string) Parser[string] {
	return Token(Str(lit))
}

// SymbolFold matches lit as a token, ignoring case.
func SymbolFold(lit string) Parser[string] {
	return Token(StrFold(lit))
}

// EOF succeeds, consuming nothing, only on empty input.
var EOF Parser[struct{}] = func(s string) iter.Seq[Result[struct{}]] {
	if s != "" {
		return empty[struct{}]
	}
	return Return(struct{}{})(s)
}

// ToEnd keeps only the parses of p that consume the whole input.
func ToEnd[T any](p Parser[T]) Parser[T] {
	return Skip(p, EOF)
}
