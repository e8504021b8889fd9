package bracket

import (
	"regexp"
	"strings"

	"github.com/sentlab/sented/domain"
	"github.com/sentlab/sented/internal/tree"
)

// labelHeadPattern matches an internal-node category label immediately
// following an opening parenthesis, e.g. "(NP " or "(WP$ ".
var labelHeadPattern = regexp.MustCompile(`\([A-Z$]+ `)

var whitespacePattern = regexp.MustCompile(`\s+`)

// StripLabels removes internal-node category labels, collapses all
// whitespace and swaps parentheses for braces, leaving a skeleton string
// of bracket structure plus terminal tokens. The brace pair keeps the
// skeleton unambiguous from lexical content containing literal
// parentheses. Applying StripLabels twice yields the same result.
func StripLabels(s string) string {
	s = labelHeadPattern.ReplaceAllString(s, "(")
	s = whitespacePattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "(", "{")
	s = strings.ReplaceAll(s, ")", "}")
	return s
}

// CollapseBeyondDepth returns a new tree in which every subtree rooted
// past maxDepth edges from the root is replaced by a single leaf whose
// token is the space-joined leaf text of that subtree. maxDepth 0 keeps
// only the root node above the collapsed leaves. The input tree is not
// modified.
func CollapseBeyondDepth(n *tree.Node, maxDepth int) *tree.Node {
	return collapse(n, maxDepth, 0)
}

func collapse(n *tree.Node, maxDepth, depth int) *tree.Node {
	if n.IsLeaf() {
		return tree.NewLeaf(n.Label)
	}
	if depth > maxDepth {
		return tree.NewLeaf(n.LeafText())
	}
	node := tree.NewNode(n.Label)
	for _, child := range n.Children {
		node.AddChild(collapse(child, maxDepth, depth+1))
	}
	return node
}

// DepthLimitedString renders a tree to bracketed text, collapsing
// subtrees past the given depth. An unbounded depth renders the tree in
// full.
func DepthLimitedString(n *tree.Node, depth domain.Depth) string {
	if depth.Full {
		return Serialize(n)
	}
	return Serialize(CollapseBeyondDepth(n, depth.Value))
}

// Canonicalize parses bracketed text, applies depth limiting when the
// depth is bounded, and strips category labels, producing the skeleton
// string consumed by the edit distance engine. Both sides of a
// comparison must go through the same canonicalization.
func Canonicalize(text string, depth domain.Depth) (string, error) {
	t, err := Parse(text)
	if err != nil {
		return "", err
	}
	return StripLabels(DepthLimitedString(t, depth)), nil
}

// CanonicalizeTree canonicalizes an already-parsed tree.
func CanonicalizeTree(t *tree.Node, depth domain.Depth) string {
	return StripLabels(DepthLimitedString(t, depth))
}
