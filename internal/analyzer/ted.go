// Package analyzer implements exact ordered-tree edit distance using
// the Zhang-Shasha key-root decomposition.
package analyzer

import "math"

// Engine computes the minimum-cost sequence of node insert, delete and
// rename operations transforming one ordered labeled tree into another.
// Operations preserve ancestor-descendant and left-to-right sibling
// order. The returned value is the true minimum under the configured
// cost model, not an approximation.
type Engine struct {
	costModel CostModel
}

// NewEngine creates a new edit distance engine with the given cost model
func NewEngine(costModel CostModel) *Engine {
	return &Engine{costModel: costModel}
}

// ComputeDistance computes the tree edit distance between two trees.
// A nil tree is the empty tree: transforming into it costs a whole
// subtree deletion, and out of it a whole subtree insertion.
func (e *Engine) ComputeDistance(tree1, tree2 *TEDNode) float64 {
	if tree1 == nil && tree2 == nil {
		return 0.0
	}
	if tree1 == nil {
		return e.computeInsertCost(tree2)
	}
	if tree2 == nil {
		return e.computeDeleteCost(tree1)
	}

	keyRoots1 := PrepareTree(tree1)
	keyRoots2 := PrepareTree(tree2)

	nodes1 := PostOrderNodes(tree1)
	nodes2 := PostOrderNodes(tree2)

	size1 := len(nodes1)
	size2 := len(nodes2)

	// td[i][j] holds the distance between the subtrees rooted at
	// post-order nodes i and j once their key roots are processed.
	td := make([][]float64, size1)
	for i := range td {
		td[i] = make([]float64, size2)
	}

	for _, i := range keyRoots1 {
		for _, j := range keyRoots2 {
			e.computeForestDistance(nodes1, nodes2, i, j, td)
		}
	}

	return td[size1-1][size2-1]
}

// computeForestDistance fills the forest distance table for the key
// root pair (i, j) and records subtree distances into td.
func (e *Engine) computeForestDistance(nodes1, nodes2 []*TEDNode, i, j int, td [][]float64) {
	li := nodes1[i].LeftMostLeaf
	lj := nodes2[j].LeftMostLeaf

	// fd[x][y] is the distance between the forest of nodes li..li+x-1
	// and the forest lj..lj+y-1; row and column 0 are the empty forest.
	rows := i - li + 2
	cols := j - lj + 2
	fd := make([][]float64, rows)
	for r := range fd {
		fd[r] = make([]float64, cols)
	}

	for x := 1; x < rows; x++ {
		fd[x][0] = fd[x-1][0] + e.costModel.Delete(nodes1[li+x-1])
	}
	for y := 1; y < cols; y++ {
		fd[0][y] = fd[0][y-1] + e.costModel.Insert(nodes2[lj+y-1])
	}

	for x := 1; x < rows; x++ {
		for y := 1; y < cols; y++ {
			nx := nodes1[li+x-1]
			ny := nodes2[lj+y-1]

			deleteCost := fd[x-1][y] + e.costModel.Delete(nx)
			insertCost := fd[x][y-1] + e.costModel.Insert(ny)

			if nx.LeftMostLeaf == li && ny.LeftMostLeaf == lj {
				// Both forests are whole subtrees: the third option
				// aligns nx with ny directly.
				renameCost := fd[x-1][y-1] + e.costModel.Rename(nx, ny)
				fd[x][y] = min3(deleteCost, insertCost, renameCost)
				td[nx.PostOrderID][ny.PostOrderID] = fd[x][y]
			} else {
				// The third option maps the subtree rooted at nx onto
				// the subtree rooted at ny as a unit, at the subtree
				// distance computed under an earlier key root.
				subtreeCost := fd[nx.LeftMostLeaf-li][ny.LeftMostLeaf-lj] + td[nx.PostOrderID][ny.PostOrderID]
				fd[x][y] = min3(deleteCost, insertCost, subtreeCost)
			}
		}
	}
}

// ComputeSimilarity computes a similarity score between two trees in
// [0, 1], normalized by the summed node counts (the distance upper
// bound under unit costs).
func (e *Engine) ComputeSimilarity(tree1, tree2 *TEDNode) float64 {
	distance := e.ComputeDistance(tree1, tree2)

	var total float64
	if tree1 != nil {
		total += float64(tree1.Size())
	}
	if tree2 != nil {
		total += float64(tree2.Size())
	}
	if total == 0 {
		return 1.0
	}

	return 1.0 - (distance / total)
}

func (e *Engine) computeInsertCost(root *TEDNode) float64 {
	if root == nil {
		return 0.0
	}
	cost := e.costModel.Insert(root)
	for _, child := range root.Children {
		cost += e.computeInsertCost(child)
	}
	return cost
}

func (e *Engine) computeDeleteCost(root *TEDNode) float64 {
	if root == nil {
		return 0.0
	}
	cost := e.costModel.Delete(root)
	for _, child := range root.Children {
		cost += e.computeDeleteCost(child)
	}
	return cost
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
