package domain

// Default analysis settings
const (
	// DefaultCostModel is the conventional unit-cost tree edit distance
	DefaultCostModel = CostModelUnit

	// DefaultBatchMaxDistance reports every pair
	DefaultBatchMaxDistance = -1.0
)

// Default cost weights for the weighted model
const (
	DefaultInsertWeight = 1.0
	DefaultDeleteWeight = 1.0
	DefaultRenameWeight = 1.0
)

// DefaultIncludePatterns matches corpus files holding one bracketed
// tree per line.
func DefaultIncludePatterns() []string {
	return []string{"**/*.trees", "**/*.mrg"}
}

// DefaultExcludePatterns is empty by default.
func DefaultExcludePatterns() []string {
	return nil
}

// DefaultDepth compares trees at their natural depth.
func DefaultDepth() Depth {
	return FullDepth()
}

// DefaultCostWeights returns the uniform weighted-model weights.
func DefaultCostWeights() CostWeights {
	return CostWeights{
		Insert: DefaultInsertWeight,
		Delete: DefaultDeleteWeight,
		Rename: DefaultRenameWeight,
	}
}
