package ebnf

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/mipaco/combinator"
	xebnf "golang.org/x/exp/ebnf"
)

type (
	nodeParser = combinator.Parser[[]*Node]
	textParser = combinator.Parser[string]
)

// compiler turns productions into parsers. Production references go through
// combinator.Lazy so recursive grammars compile without recursing.
type compiler struct {
	rules     xebnf.Grammar
	mode      Mode
	syntactic map[string]nodeParser
	lexical   map[string]textParser
	errs      []error
}

// Compile returns a parser for the start production. The parser skips leading white
// space and yields the start node; it does not require the whole input to be consumed,
// wrap it in combinator.ToEnd for that.
func (g *Grammar) Compile(start string, mode Mode) (combinator.Parser[*Node], error) {
	if !g.Has(start) {
		return nil, fmt.Errorf("compile %q: %w", start, ErrUnknownProduction)
	}
	if mode != Greedy && mode != Exhaustive {
		return nil, fmt.Errorf("compile %q: %w: %v", start, ErrUnknownMode, mode)
	}

	c := &compiler{
		rules:     g.rules,
		mode:      mode,
		syntactic: map[string]nodeParser{},
		lexical:   map[string]textParser{},
	}
	for _, name := range g.Productions() {
		prod := g.rules[name]
		if isLexical(name) {
			c.lexical[name] = c.text(name, prod.Expr)
		} else {
			body := c.nodes(name, prod.Expr)
			c.syntactic[name] = combinator.Map(body, func(children []*Node) []*Node {
				return []*Node{newBranch(name, children)}
			})
		}
	}
	if err := errors.Join(c.errs...); err != nil {
		return nil, fmt.Errorf("compile %q: %w", start, err)
	}
	log.Debugf("compiled %d productions from %s in %s mode", len(c.syntactic)+len(c.lexical), g.Filename, mode)

	root := c.ref(start)
	return combinator.Then(combinator.Space, combinator.Map(root, func(ns []*Node) *Node { return ns[0] })), nil
}

func (c *compiler) fail(prod string, err error, detail string) {
	c.errs = append(c.errs, fmt.Errorf("production %s: %w: %s", prod, err, detail))
}

// choice is Choice in exhaustive mode and DChoice in greedy mode.
func choice[T any](mode Mode, ps ...combinator.Parser[T]) combinator.Parser[T] {
	if mode == Exhaustive {
		return combinator.Choice(ps...)
	}
	return combinator.DChoice(ps...)
}

// many is LazyMany in exhaustive mode and Many in greedy mode.
func many[T any](mode Mode, p combinator.Parser[T]) combinator.Parser[[]T] {
	if mode == Exhaustive {
		return combinator.LazyMany(p)
	}
	return combinator.Many(p)
}

// ref yields the node a production reference produces in a syntactic context.
func (c *compiler) ref(name string) nodeParser {
	if isLexical(name) {
		lex := combinator.Lazy(func() textParser { return c.lexical[name] })
		return combinator.Token(combinator.Map(lex, func(s string) []*Node {
			return []*Node{newLexical(name, s)}
		}))
	}
	return combinator.Lazy(func() nodeParser { return c.syntactic[name] })
}

// nodes compiles expr as part of the syntactic production prod.
func (c *compiler) nodes(prod string, expr xebnf.Expression) nodeParser {
	switch e := expr.(type) {
	case *xebnf.Token:
		return combinator.Map(combinator.Symbol(e.String), func(s string) []*Node {
			return []*Node{newLiteral(s)}
		})

	case *xebnf.Range:
		match := c.rangeText(prod, e)
		return combinator.Token(combinator.Map(match, func(s string) []*Node {
			return []*Node{newLiteral(s)}
		}))

	case *xebnf.Name:
		if !c.defined(prod, e.String) {
			return combinator.Fail[[]*Node]()
		}
		return c.ref(e.String)

	case xebnf.Sequence:
		if len(e) == 0 {
			return combinator.Return([]*Node{})
		}
		p := c.nodes(prod, e[0])
		for _, item := range e[1:] {
			p = combinator.Seq2(p, c.nodes(prod, item), concat[*Node])
		}
		return p

	case xebnf.Alternative:
		ps := make([]nodeParser, len(e))
		for i, alt := range e {
			ps[i] = c.nodes(prod, alt)
		}
		return choice(c.mode, ps...)

	case *xebnf.Group:
		return c.nodes(prod, e.Body)

	case *xebnf.Option:
		return choice(c.mode, c.nodes(prod, e.Body), combinator.Return([]*Node{}))

	case *xebnf.Repetition:
		return combinator.Map(many(c.mode, c.nodes(prod, e.Body)), flatten[*Node])

	case nil:
		return combinator.Return([]*Node{})
	}

	c.fail(prod, ErrBadExpression, fmt.Sprintf("%T", expr))
	return combinator.Fail[[]*Node]()
}

// text compiles expr as part of the lexical production prod. No white space is
// skipped inside lexical productions.
func (c *compiler) text(prod string, expr xebnf.Expression) textParser {
	switch e := expr.(type) {
	case *xebnf.Token:
		return combinator.Str(e.String)

	case *xebnf.Range:
		return c.rangeText(prod, e)

	case *xebnf.Name:
		if !c.defined(prod, e.String) {
			return combinator.Fail[string]()
		}
		if !isLexical(e.String) {
			c.fail(prod, ErrBadExpression, "lexical production refers to non-lexical production "+e.String)
			return combinator.Fail[string]()
		}
		name := e.String
		return combinator.Lazy(func() textParser { return c.lexical[name] })

	case xebnf.Sequence:
		if len(e) == 0 {
			return combinator.Return("")
		}
		p := c.text(prod, e[0])
		for _, item := range e[1:] {
			p = combinator.Seq2(p, c.text(prod, item), func(a, b string) string { return a + b })
		}
		return p

	case xebnf.Alternative:
		ps := make([]textParser, len(e))
		for i, alt := range e {
			ps[i] = c.text(prod, alt)
		}
		return choice(c.mode, ps...)

	case *xebnf.Group:
		return c.text(prod, e.Body)

	case *xebnf.Option:
		return choice(c.mode, c.text(prod, e.Body), combinator.Return(""))

	case *xebnf.Repetition:
		return combinator.Map(many(c.mode, c.text(prod, e.Body)), func(parts []string) string {
			return strings.Join(parts, "")
		})

	case nil:
		return combinator.Return("")
	}

	c.fail(prod, ErrBadExpression, fmt.Sprintf("%T", expr))
	return combinator.Fail[string]()
}

func (c *compiler) defined(prod, name string) bool {
	if _, ok := c.rules[name]; ok {
		return true
	}
	c.fail(prod, ErrUnknownProduction, name)
	return false
}

// rangeText matches one character in the inclusive range of e.
func (c *compiler) rangeText(prod string, e *xebnf.Range) textParser {
	lo, loSize := utf8.DecodeRuneInString(e.Begin.String)
	hi, hiSize := utf8.DecodeRuneInString(e.End.String)
	if loSize == 0 || hiSize == 0 || loSize != len(e.Begin.String) || hiSize != len(e.End.String) {
		c.fail(prod, ErrBadExpression, fmt.Sprintf("range %q … %q must be single characters", e.Begin.String, e.End.String))
		return combinator.Fail[string]()
	}
	in := combinator.Char(func(r rune) bool { return lo <= r && r <= hi })
	return combinator.Map(in, func(r rune) string { return string(r) })
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func flatten[T any](xss [][]T) []T {
	out := []T{}
	for _, xs := range xss {
		out = append(out, xs...)
	}
	return out
}
