package optimizer

// Rule maps a logical operator to one or more equivalent operators
// added to the same Group during exploration (spec.md §4.5). None of
// the reference rules below ever match the operator they produce, so
// exploration always terminates: a physical operator satisfies no
// rule's Matches, unlike a general Cascades rule set that also
// includes commutative/associative transforms on logical operators.
type Rule interface {
	Name() string
	Matches(op Operator) bool
	Apply(op Operator) []Operator
}

// GetToScanRule implements the logical get with a physical table scan.
type GetToScanRule struct{}

func (GetToScanRule) Name() string { return "GetToScan" }
func (GetToScanRule) Matches(op Operator) bool {
	_, ok := op.(GetOperator)
	return ok
}
func (GetToScanRule) Apply(op Operator) []Operator {
	g := op.(GetOperator)
	return []Operator{ScanOperator{Table: g.Table}}
}

// FilterToPhysicalRule implements a logical filter directly; there is
// only one physical strategy for it in this optimizer.
type FilterToPhysicalRule struct{}

func (FilterToPhysicalRule) Name() string { return "FilterToPhysical" }
func (FilterToPhysicalRule) Matches(op Operator) bool {
	f, ok := op.(FilterOperator)
	return ok && !f.Physical
}
func (FilterToPhysicalRule) Apply(op Operator) []Operator {
	f := op.(FilterOperator)
	return []Operator{FilterOperator{Physical: true, Child: f.Child, Predicate: f.Predicate}}
}

// ProjectToPhysicalRule implements a logical projection directly.
type ProjectToPhysicalRule struct{}

func (ProjectToPhysicalRule) Name() string { return "ProjectToPhysical" }
func (ProjectToPhysicalRule) Matches(op Operator) bool {
	p, ok := op.(ProjectOperator)
	return ok && !p.Physical
}
func (ProjectToPhysicalRule) Apply(op Operator) []Operator {
	p := op.(ProjectOperator)
	return []Operator{ProjectOperator{Physical: true, Child: p.Child, Columns: p.Columns}}
}

// InnerJoinToPhysicalRule implements a logical inner join with a
// nested-loop physical join, preserving operand order.
type InnerJoinToPhysicalRule struct{}

func (InnerJoinToPhysicalRule) Name() string { return "InnerJoinToPhysical" }
func (InnerJoinToPhysicalRule) Matches(op Operator) bool {
	j, ok := op.(InnerJoinOperator)
	return ok && !j.Physical
}
func (InnerJoinToPhysicalRule) Apply(op Operator) []Operator {
	j := op.(InnerJoinOperator)
	return []Operator{InnerJoinOperator{Physical: true, Outer: j.Outer, Inner: j.Inner, Predicate: j.Predicate}}
}

// DefaultRules returns the reference rule set implementing every
// logical operator with its sole physical counterpart.
func DefaultRules() []Rule {
	return []Rule{
		GetToScanRule{},
		FilterToPhysicalRule{},
		ProjectToPhysicalRule{},
		InnerJoinToPhysicalRule{},
	}
}
