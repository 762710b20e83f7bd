// Package ebnf compiles EBNF grammars into combinator parsers.
//
// Grammars use the notation of golang.org/x/exp/ebnf. Productions whose name starts
// with an upper-case letter are lexical: they match characters exactly and produce a
// single leaf holding the matched text. All other productions skip white space after
// every literal and lexical reference, and produce a branch node per production.
package ebnf

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	xebnf "golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("mipaco.ebnf")

var (
	ErrUnknownProduction = errors.New("unknown production")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrBadExpression     = errors.New("bad expression")
)

// Grammar is a parsed EBNF grammar.
type Grammar struct {
	Filename string
	rules    xebnf.Grammar
}

// Load reads a grammar from a file.
func Load(filename string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse reads a grammar from r. filename is used in error positions only.
func Parse(filename string, r io.Reader) (*Grammar, error) {
	rules, err := xebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return &Grammar{Filename: filename, rules: rules}, nil
}

// Productions returns the production names in sorted order.
func (g *Grammar) Productions() []string {
	return slices.Sorted(maps.Keys(g.rules))
}

// Has reports whether the grammar defines name.
func (g *Grammar) Has(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Verify checks that every production reachable from start is defined, that every
// defined production is reachable, and that lexical productions only refer to
// lexical productions. With an empty start only definedness is checked by Parse.
func (g *Grammar) Verify(start string) error {
	if start == "" {
		return nil
	}
	if err := xebnf.Verify(g.rules, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// isLexical reports whether name denotes a lexical production.
func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
