// Package optimizer implements a Cascades-style binding engine over a
// memoized forest of equivalence-class Groups: pattern-directed
// enumeration of plan trees, driven by on-demand rule exploration.
package optimizer

// GroupID identifies a memoization Group within a Forest.
type GroupID int

// OpType enumerates the closed set of operator kinds. Logical and
// physical variants of the same relational operator get distinct
// values so a Pattern can pin one or the other.
type OpType int

const (
	// OpLeaf marks a LeafOperator: a terminal reference into another
	// Group rather than a concrete relational operator.
	OpLeaf OpType = iota
	OpLogicalGet
	OpPhysicalScan
	OpLogicalFilter
	OpPhysicalFilter
	OpLogicalProject
	OpPhysicalProject
	OpLogicalInnerJoin
	OpPhysicalInnerJoin
)

func (t OpType) String() string {
	switch t {
	case OpLeaf:
		return "Leaf"
	case OpLogicalGet:
		return "LogicalGet"
	case OpPhysicalScan:
		return "PhysicalScan"
	case OpLogicalFilter:
		return "LogicalFilter"
	case OpPhysicalFilter:
		return "PhysicalFilter"
	case OpLogicalProject:
		return "LogicalProject"
	case OpPhysicalProject:
		return "PhysicalProject"
	case OpLogicalInnerJoin:
		return "LogicalInnerJoin"
	case OpPhysicalInnerJoin:
		return "PhysicalInnerJoin"
	default:
		return "Unknown"
	}
}

// Operator is the closed sum type every concrete operator implements.
// The set of implementations is fixed; new operator kinds are added by
// extending this file, not by satisfying the interface externally.
type Operator interface {
	Type() OpType
}

// LeafOperator terminates a bound plan tree at a group boundary,
// standing in for "whatever operator this group eventually resolves
// to" without committing to one.
type LeafOperator struct {
	GroupID GroupID
}

func (LeafOperator) Type() OpType { return OpLeaf }

// GetOperator is the logical table scan.
type GetOperator struct {
	Table uint64
}

func (GetOperator) Type() OpType { return OpLogicalGet }

// ScanOperator is GetOperator's physical implementation.
type ScanOperator struct {
	Table uint64
}

func (ScanOperator) Type() OpType { return OpPhysicalScan }

// FilterOperator restricts its child's rows by Predicate. Physical
// selects the logical/physical variant.
type FilterOperator struct {
	Physical  bool
	Child     GroupID
	Predicate string
}

func (f FilterOperator) Type() OpType {
	if f.Physical {
		return OpPhysicalFilter
	}
	return OpLogicalFilter
}

// ProjectOperator narrows its child's rows to Columns.
type ProjectOperator struct {
	Physical bool
	Child    GroupID
	Columns  []int
}

func (p ProjectOperator) Type() OpType {
	if p.Physical {
		return OpPhysicalProject
	}
	return OpLogicalProject
}

// InnerJoinOperator joins Outer and Inner on Predicate. Child order is
// stable: outer before inner, matching spec.md §4.5's binding contract.
type InnerJoinOperator struct {
	Physical  bool
	Outer     GroupID
	Inner     GroupID
	Predicate string
}

func (j InnerJoinOperator) Type() OpType {
	if j.Physical {
		return OpPhysicalInnerJoin
	}
	return OpLogicalInnerJoin
}

// ChildGroups extracts an operator's operand group ids in the stable
// order binding requires (outer then inner for joins). This is the
// visitor spec.md §9 calls for: a single type switch over the closed
// operator set rather than a virtual method on every operator type.
func ChildGroups(op Operator) []GroupID {
	switch o := op.(type) {
	case LeafOperator:
		return nil
	case GetOperator:
		return nil
	case ScanOperator:
		return nil
	case FilterOperator:
		return []GroupID{o.Child}
	case ProjectOperator:
		return []GroupID{o.Child}
	case InnerJoinOperator:
		return []GroupID{o.Outer, o.Inner}
	default:
		return nil
	}
}
