package ebnf

import (
	"strconv"
	"strings"
)

// Node is a node in the concrete syntax tree built by a compiled grammar.
//
// There are three shapes:
//   - a literal leaf: Kind is empty and Text is the matched literal;
//   - a lexical leaf: Kind names a lexical production and Text is the matched input;
//   - a branch: Kind names a production and Children holds its parts in order.
type Node struct {
	Kind     string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsTerminal returns true if the node is a literal or lexical leaf.
func (n *Node) IsTerminal() bool {
	return n.Children == nil
}

// String renders the node as an s-expression: literals are quoted, lexical leaves
// are (Kind "text") and branches are (kind child...).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Kind == "" {
		b.WriteString(strconv.Quote(n.Text))
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Kind)
	if n.IsTerminal() {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(n.Text))
	}
	for _, child := range n.Children {
		b.WriteByte(' ')
		child.write(b)
	}
	b.WriteByte(')')
}

func newLiteral(text string) *Node {
	return &Node{Text: text}
}

func newLexical(kind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

func newBranch(kind string, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Kind: kind, Children: children}
}
