package tree

import (
	"fmt"
	"strings"
)

// Node represents a node in an ordered labeled tree.
//
// Leaves of a constituency parse carry terminal tokens (words); internal
// nodes carry syntactic category labels. Sibling order is significant.
type Node struct {
	Label    string
	Children []*Node
	Parent   *Node
}

// NewNode creates a node with the given label and ordered children.
func NewNode(label string, children ...*Node) *Node {
	n := &Node{
		Label:    label,
		Children: []*Node{},
	}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

// NewLeaf creates a leaf node carrying a terminal token.
func NewLeaf(token string) *Node {
	return &Node{Label: token, Children: []*Node{}}
}

// AddChild appends a child node, preserving sibling order.
func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

// IsLeaf returns true if this node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size returns the number of nodes in the subtree rooted at this node.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A leaf has height 1; a preterminal (a node whose children are all
// leaves) has height 2.
func (n *Node) Height() int {
	if n.IsLeaf() {
		return 1
	}
	maxHeight := 0
	for _, child := range n.Children {
		if h := child.Height(); h > maxHeight {
			maxHeight = h
		}
	}
	return maxHeight + 1
}

// Leaves returns the ordered terminal tokens under this node. A leaf
// returns its own label.
func (n *Node) Leaves() []string {
	if n.IsLeaf() {
		return []string{n.Label}
	}
	var leaves []string
	for _, child := range n.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// LeafText returns the space-joined terminal tokens under this node.
func (n *Node) LeafText() string {
	return strings.Join(n.Leaves(), " ")
}

// String returns a short description of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node{Label: %s, Children: %d}", n.Label, len(n.Children))
}
