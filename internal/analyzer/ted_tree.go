package analyzer

import (
	"fmt"
	"sort"

	"github.com/sentlab/sented/internal/tree"
)

// TEDNode represents a node in the ordered tree for the edit distance
// algorithm, carrying the traversal indices the decomposition needs.
type TEDNode struct {
	// Label for the node (category label or terminal token)
	Label string

	// Tree structure
	Children []*TEDNode
	Parent   *TEDNode

	// Decomposition indices
	PostOrderID  int  // Post-order traversal position
	LeftMostLeaf int  // Post-order ID of the left-most leaf descendant
	KeyRoot      bool // Whether this node is a key root
}

// NewTEDNode creates a new node with the given label
func NewTEDNode(label string) *TEDNode {
	return &TEDNode{
		Label:    label,
		Children: []*TEDNode{},
	}
}

// AddChild adds a child node to this node
func (t *TEDNode) AddChild(child *TEDNode) {
	if child != nil {
		child.Parent = t
		t.Children = append(t.Children, child)
	}
}

// IsLeaf returns true if this node has no children
func (t *TEDNode) IsLeaf() bool {
	return len(t.Children) == 0
}

// Size returns the size of the subtree rooted at this node
func (t *TEDNode) Size() int {
	size := 1
	for _, child := range t.Children {
		size += child.Size()
	}
	return size
}

// String returns a string representation of the node
func (t *TEDNode) String() string {
	return fmt.Sprintf("TEDNode{Label: %s, Children: %d}", t.Label, len(t.Children))
}

// FromTree converts a parse tree into an edit distance tree.
func FromTree(n *tree.Node) *TEDNode {
	if n == nil {
		return nil
	}
	node := NewTEDNode(n.Label)
	for _, child := range n.Children {
		node.AddChild(FromTree(child))
	}
	return node
}

// PostOrderTraversal assigns post-order IDs to every node in the tree
func PostOrderTraversal(root *TEDNode) {
	if root == nil {
		return
	}
	postOrderID := 0
	postOrderRecursive(root, &postOrderID)
}

func postOrderRecursive(node *TEDNode, postOrderID *int) {
	for _, child := range node.Children {
		postOrderRecursive(child, postOrderID)
	}
	node.PostOrderID = *postOrderID
	*postOrderID++
}

// ComputeLeftMostLeaves computes left-most leaf descendants for all nodes
func ComputeLeftMostLeaves(root *TEDNode) {
	if root == nil {
		return
	}
	computeLeftMostLeavesRecursive(root)
}

func computeLeftMostLeavesRecursive(node *TEDNode) int {
	if node.IsLeaf() {
		node.LeftMostLeaf = node.PostOrderID
		return node.LeftMostLeaf
	}

	leftMostLeaf := computeLeftMostLeavesRecursive(node.Children[0])
	node.LeftMostLeaf = leftMostLeaf

	for i := 1; i < len(node.Children); i++ {
		computeLeftMostLeavesRecursive(node.Children[i])
	}

	return leftMostLeaf
}

// ComputeKeyRoots identifies key roots for the path decomposition: for
// each left-most leaf, the highest node sharing it. The pre-order walk
// visits ancestors before descendants, so the first node to claim a
// leaf is the maximal one.
func ComputeKeyRoots(root *TEDNode) []int {
	if root == nil {
		return []int{}
	}

	keyRoots := []int{}
	visited := make(map[int]bool)
	computeKeyRootsRecursive(root, &keyRoots, visited)

	// The forest distance recurrence consumes subtree distances of
	// smaller key roots, so they must come first.
	sort.Ints(keyRoots)
	return keyRoots
}

func computeKeyRootsRecursive(node *TEDNode, keyRoots *[]int, visited map[int]bool) {
	if node == nil {
		return
	}

	if !visited[node.LeftMostLeaf] {
		node.KeyRoot = true
		*keyRoots = append(*keyRoots, node.PostOrderID)
		visited[node.LeftMostLeaf] = true
	}

	for _, child := range node.Children {
		computeKeyRootsRecursive(child, keyRoots, visited)
	}
}

// PrepareTree computes all traversal indices the algorithm needs and
// returns the key roots in ascending post-order.
func PrepareTree(root *TEDNode) []int {
	if root == nil {
		return []int{}
	}

	PostOrderTraversal(root)
	ComputeLeftMostLeaves(root)
	return ComputeKeyRoots(root)
}

// PostOrderNodes returns all nodes indexed by their post-order ID.
func PostOrderNodes(root *TEDNode) []*TEDNode {
	if root == nil {
		return []*TEDNode{}
	}

	nodes := make([]*TEDNode, 0, root.Size())
	collectPostOrder(root, &nodes)
	return nodes
}

func collectPostOrder(node *TEDNode, nodes *[]*TEDNode) {
	for _, child := range node.Children {
		collectPostOrder(child, nodes)
	}
	*nodes = append(*nodes, node)
}
