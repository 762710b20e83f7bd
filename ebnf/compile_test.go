package ebnf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/mipaco/combinator"
)

const exprGrammar = `
expression = term { ( "+" | "-" ) term } .
term       = factor { ( "*" | "/" ) factor } .
factor     = Number | "(" expression ")" .
Number     = Digit { Digit } .
Digit      = "0" … "9" .
`

const declGrammar = `
decl   = "var" Ident [ "=" Number ] ";" .
Ident  = Letter { Letter | Digit } .
Number = Digit { Digit } .
Letter = "a" … "z" .
Digit  = "0" … "9" .
`

func mustParse(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := Parse("test.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return g
}

func mustCompile(t *testing.T, src, start string, mode Mode) combinator.Parser[*Node] {
	t.Helper()
	p, err := mustParse(t, src).Compile(start, mode)
	if err != nil {
		t.Fatalf("compile %s: %v", start, err)
	}
	return p
}

func parseAll(p combinator.Parser[*Node], input string) []string {
	var out []string
	for r := range combinator.ToEnd(p)(input) {
		out = append(out, r.Value.String())
	}
	return out
}

func TestCompileExpression(t *testing.T) {
	p := mustCompile(t, exprGrammar, "expression", Greedy)

	tests := []struct {
		input string
		want  string
	}{
		{"1", `(expression (term (factor (Number "1"))))`},
		{"  12 + 3", `(expression (term (factor (Number "12"))) "+" (term (factor (Number "3"))))`},
		{"1+2*3", `(expression (term (factor (Number "1"))) "+" (term (factor (Number "2")) "*" (factor (Number "3"))))`},
		{"(1) ", `(expression (term (factor "(" (expression (term (factor (Number "1")))) ")")))`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseAll(p, tt.input)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("got %q, want [%q]", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "1 +", "(1", "1 2", "1 ) "} {
		if got := parseAll(p, bad); len(got) != 0 {
			t.Errorf("%q parsed as %q, want no parse", bad, got)
		}
	}
}

func TestCompileOption(t *testing.T) {
	p := mustCompile(t, declGrammar, "decl", Greedy)

	got := parseAll(p, "var x1 = 42 ;")
	want := `(decl "var" (Ident "x1") "=" (Number "42") ";")`
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = parseAll(p, "var abc;")
	want = `(decl "var" (Ident "abc") ";")`
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// lexical productions do not skip white space
	if got := parseAll(p, "var a b;"); len(got) != 0 {
		t.Errorf("got %q, want no parse", got)
	}
}

func TestCompileLexicalStart(t *testing.T) {
	p := mustCompile(t, exprGrammar+"\nstart = Number .", "Number", Greedy)
	if got := parseAll(p, " 42 "); len(got) != 1 || got[0] != `(Number "42")` {
		t.Errorf("got %q", got)
	}
	if got := parseAll(p, "4 2"); len(got) != 0 {
		t.Errorf("got %q, want no parse", got)
	}
}

func TestCompileModes(t *testing.T) {
	const ambiguous = `s = { "a" } { "a" } .`

	greedy := mustCompile(t, ambiguous, "s", Greedy)
	if got := parseAll(greedy, "a a"); len(got) != 1 {
		t.Errorf("greedy: got %d parses %q, want 1", len(got), got)
	}

	exhaustive := mustCompile(t, ambiguous, "s", Exhaustive)
	if got := parseAll(exhaustive, "a a"); len(got) != 3 {
		t.Errorf("exhaustive: got %d parses %q, want 3", len(got), got)
	}

	choice := mustCompile(t, `s = ( "a" | "a" ) "b" .`, "s", Exhaustive)
	if got := parseAll(choice, "a b"); len(got) != 2 {
		t.Errorf("exhaustive alternative: got %q, want 2 parses", got)
	}

	expr := mustCompile(t, exprGrammar, "expression", Exhaustive)
	if all := combinator.All(expr("12+3")); len(all) < 2 {
		t.Errorf("exhaustive partial parses = %d, want several", len(all))
	}
	if got := parseAll(expr, "12+3"); len(got) != 1 {
		t.Errorf("exhaustive full parses = %q, want 1", got)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		start   string
		mode    Mode
		want    error
	}{
		{"unknown start", exprGrammar, "nope", Greedy, ErrUnknownProduction},
		{"undefined reference", `a = b .`, "a", Greedy, ErrUnknownProduction},
		{"lexical refers to syntactic", `A = b . b = "x" .`, "A", Greedy, ErrBadExpression},
		{"wide range", `A = "ab" … "z" .`, "A", Greedy, ErrBadExpression},
		{"unknown mode", exprGrammar, "expression", Mode(7), ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustParse(t, tt.grammar).Compile(tt.start, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	g := mustParse(t, exprGrammar)
	if err := g.Verify("expression"); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if err := g.Verify(""); err != nil {
		t.Errorf("Verify with no start: %v", err)
	}

	unreachable := mustParse(t, exprGrammar+"\nunused = \"x\" .")
	if err := unreachable.Verify("expression"); err == nil {
		t.Error("Verify accepted an unreachable production")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("bad.ebnf", strings.NewReader(`a = "x" `)); err == nil {
		t.Error("Parse accepted a production without terminating period")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.ebnf")
	if err := os.WriteFile(path, []byte(exprGrammar), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Filename != path {
		t.Errorf("Filename = %q, want %q", g.Filename, path)
	}
	want := []string{"Digit", "Number", "expression", "factor", "term"}
	if got := g.Productions(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Productions = %v, want %v", got, want)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.ebnf")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Greedy, Exhaustive} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("lazy"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(lazy) error = %v", err)
	}
}

func TestNodeString(t *testing.T) {
	n := newBranch("pair", []*Node{newLiteral("("), newLexical("Ident", "x"), newBranch("empty", nil)})
	if got, want := n.String(), `(pair "(" (Ident "x") (empty))`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if !n.Children[1].IsTerminal() || n.IsTerminal() {
		t.Error("IsTerminal misreports leaf and branch")
	}
}
