package analyzer

// CostModel defines the interface for calculating edit operation costs
type CostModel interface {
	// Insert returns the cost of inserting a node
	Insert(node *TEDNode) float64

	// Delete returns the cost of deleting a node
	Delete(node *TEDNode) float64

	// Rename returns the cost of renaming node1 to node2
	Rename(node1, node2 *TEDNode) float64
}

// UnitCostModel implements the conventional unit-cost model: insert and
// delete cost 1, rename costs 0 when the labels are equal and 1
// otherwise.
type UnitCostModel struct{}

// NewUnitCostModel creates a new unit cost model
func NewUnitCostModel() *UnitCostModel {
	return &UnitCostModel{}
}

// Insert returns the cost of inserting a node
func (c *UnitCostModel) Insert(node *TEDNode) float64 {
	return 1.0
}

// Delete returns the cost of deleting a node
func (c *UnitCostModel) Delete(node *TEDNode) float64 {
	return 1.0
}

// Rename returns the cost of renaming node1 to node2
func (c *UnitCostModel) Rename(node1, node2 *TEDNode) float64 {
	if node1 == nil || node2 == nil {
		return 1.0
	}
	if node1.Label == node2.Label {
		return 0.0
	}
	return 1.0
}

// WeightedCostModel allows custom non-negative weights for each
// operation type. Rename still costs nothing when labels are equal.
type WeightedCostModel struct {
	InsertWeight float64
	DeleteWeight float64
	RenameWeight float64
}

// NewWeightedCostModel creates a weighted cost model
func NewWeightedCostModel(insert, delete, rename float64) *WeightedCostModel {
	return &WeightedCostModel{
		InsertWeight: insert,
		DeleteWeight: delete,
		RenameWeight: rename,
	}
}

// Insert returns the weighted cost of inserting a node
func (c *WeightedCostModel) Insert(node *TEDNode) float64 {
	return c.InsertWeight
}

// Delete returns the weighted cost of deleting a node
func (c *WeightedCostModel) Delete(node *TEDNode) float64 {
	return c.DeleteWeight
}

// Rename returns the weighted cost of renaming node1 to node2
func (c *WeightedCostModel) Rename(node1, node2 *TEDNode) float64 {
	if node1 != nil && node2 != nil && node1.Label == node2.Label {
		return 0.0
	}
	return c.RenameWeight
}
