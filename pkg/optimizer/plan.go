package optimizer

// OpPlanNode is one node of a bound plan tree: a concrete operator
// together with the already-bound subtrees for each of its operands.
// Plan trees are shared and treated as immutable once handed to a
// caller (spec.md §5).
type OpPlanNode struct {
	Op       Operator
	Children []*OpPlanNode
}

// NewOpPlanNode builds a plan node with the given children.
func NewOpPlanNode(op Operator, children ...*OpPlanNode) *OpPlanNode {
	return &OpPlanNode{Op: op, Children: children}
}
