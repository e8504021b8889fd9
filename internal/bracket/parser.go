// Package bracket converts between ordered labeled trees and their
// bracketed textual form, and applies the normalizing transforms used
// before distance computation.
package bracket

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/tree"
)

// bracketGrammar is the participle grammar for bracketed trees.
// Full form uses ( ) with a mandatory label; skeleton form uses { }
// with an optional label.
//
type bracketGrammar struct {
	Open     string            `parser:"@Open"`
	Elements []*bracketElement `parser:"@@*"`
	Close    string            `parser:"@Close"`
}

type bracketElement struct {
	Subtree *bracketGrammar `parser:"  @@"`
	Token   *string         `parser:"| @Token"`
}

// bracketLexer tokenizes both delimiter pairs. Tokens are maximal runs
// of non-delimiter, non-whitespace characters; the grammar has no escape
// mechanism, so a literal delimiter inside a token cannot be expressed.
var bracketLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `[({]`},
	{Name: "Close", Pattern: `[)}]`},
	{Name: "Token", Pattern: `[^(){}\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var bracketParser = participle.MustBuild[bracketGrammar](
	participle.Lexer(bracketLexer),
	participle.Elide("Whitespace"),
)

// Parse converts bracketed text into a tree. It accepts the fully
// parenthesized labeled form `(LABEL child1 child2 ...)`, the skeleton
// form `{label{child}...}` produced by StripLabels, and a bare token as
// a single-leaf tree. Malformed input yields a FormatError.
func Parse(text string) (*tree.Node, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.NewFormatError("empty input", nil)
	}

	// A bare token (no structural delimiters) is a single-leaf tree.
	// This is the shape a fully collapsed skeleton takes.
	if !strings.ContainsAny(trimmed, "(){}") {
		if len(strings.Fields(trimmed)) != 1 {
			return nil, domain.NewFormatError("multiple root tokens without enclosing brackets: "+trimmed, nil)
		}
		return tree.NewLeaf(trimmed), nil
	}

	parsed, err := bracketParser.ParseString("", trimmed)
	if err != nil {
		return nil, domain.NewFormatError("malformed bracketed tree: "+trimmed, err)
	}

	return buildNode(parsed)
}

// buildNode converts the raw grammar tree into a tree.Node, enforcing
// delimiter pairing and label rules.
func buildNode(g *bracketGrammar) (*tree.Node, error) {
	if expected := closingFor(g.Open); g.Close != expected {
		return nil, domain.NewFormatError("mismatched delimiters: "+g.Open+" closed by "+g.Close, nil)
	}

	elements := g.Elements
	label := ""
	if g.Open == "(" {
		// The labeled form requires a label token right after '('.
		if len(elements) == 0 || elements[0].Token == nil {
			return nil, domain.NewFormatError("missing label after opening parenthesis", nil)
		}
		label = *elements[0].Token
		elements = elements[1:]
	} else if len(elements) > 0 && elements[0].Token != nil {
		// Skeleton nodes carry an optional leading label.
		label = *elements[0].Token
		elements = elements[1:]
	}

	node := tree.NewNode(label)
	for _, el := range elements {
		if el.Subtree != nil {
			child, err := buildNode(el.Subtree)
			if err != nil {
				return nil, err
			}
			node.AddChild(child)
		} else {
			node.AddChild(tree.NewLeaf(*el.Token))
		}
	}
	return node, nil
}

func closingFor(open string) string {
	if open == "(" {
		return ")"
	}
	return "}"
}

// Serialize renders a tree back to bracketed text. Leaves render as bare
// tokens; internal nodes render as `(LABEL child1 child2 ...)`.
func Serialize(n *tree.Node) string {
	var sb strings.Builder
	serialize(n, &sb)
	return sb.String()
}

func serialize(n *tree.Node, sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.Label)
		return
	}
	sb.WriteString("(")
	sb.WriteString(n.Label)
	for _, child := range n.Children {
		sb.WriteString(" ")
		serialize(child, sb)
	}
	sb.WriteString(")")
}
