package optimizer

// Pattern is a tree whose internal and leaf nodes pin an OpType, except
// where a node is the Leaf wildcard, which matches any group content
// without descending further (spec.md §4.5).
type Pattern struct {
	Wildcard bool
	Type     OpType
	Children []*Pattern
}

// Leaf is the wildcard pattern: binds exactly one plan per group,
// terminating with a LeafOperator instead of expanding the group's
// actual operators.
var Leaf = &Pattern{Wildcard: true}

// NewPattern builds a non-wildcard pattern node pinned to t with the
// given child patterns, in order.
func NewPattern(t OpType, children ...*Pattern) *Pattern {
	return &Pattern{Type: t, Children: children}
}
