package optimizer

// itemBindingIterator enumerates every plan tree rooted at a single
// operator that matches a non-wildcard pattern node. Its state is the
// cartesian product of each child's collected bindings, decoded from a
// flat position counter with the last child varying fastest
// (spec.md §4.5).
type itemBindingIterator struct {
	op       Operator
	bindings [][]*OpPlanNode
	total    int
	pos      int
}

func newItemBindingIterator(forest *Forest, op Operator, pattern *Pattern, rules []Rule) *itemBindingIterator {
	it := &itemBindingIterator{op: op}
	if op.Type() != pattern.Type {
		it.total = 0
		return it
	}
	children := ChildGroups(op)
	if len(children) != len(pattern.Children) {
		it.total = 0
		return it
	}

	it.bindings = make([][]*OpPlanNode, len(children))
	total := 1
	for k, childID := range children {
		childIter := NewGroupBindingIterator(forest, childID, pattern.Children[k], rules)
		var collected []*OpPlanNode
		for childIter.HasNext() {
			collected = append(collected, childIter.Next())
		}
		if len(collected) == 0 {
			it.total = 0
			return it
		}
		it.bindings[k] = collected
		total *= len(collected)
	}
	it.total = total
	return it
}

func (it *itemBindingIterator) HasNext() bool {
	return it.pos < it.total
}

// Next decodes the current position into a per-child index (last child
// fastest) and builds the corresponding OpPlanNode.
func (it *itemBindingIterator) Next() *OpPlanNode {
	rem := it.pos
	children := make([]*OpPlanNode, len(it.bindings))
	for k := len(it.bindings) - 1; k >= 0; k-- {
		n := len(it.bindings[k])
		idx := rem % n
		rem /= n
		children[k] = it.bindings[k][idx]
	}
	it.pos++
	return &OpPlanNode{Op: it.op, Children: children}
}

// GroupBindingIterator enumerates every plan tree rooted in a Group
// that structurally matches a Pattern (spec.md §4.5). Constructing one
// runs the exploration pass over the group's not-yet-explored
// operators; the operator list it enumerates over is fixed at that
// point, so rule firings triggered by other iterators afterward are
// not picked up by this instance.
type GroupBindingIterator struct {
	forest  *Forest
	groupID GroupID
	pattern *Pattern
	rules   []Rule

	ops   []Operator
	opIdx int
	item  *itemBindingIterator

	leafPending bool
}

// NewGroupBindingIterator explores groupID's not-yet-explored operators
// against rules, then prepares to enumerate bindings against pattern.
func NewGroupBindingIterator(forest *Forest, groupID GroupID, pattern *Pattern, rules []Rule) *GroupBindingIterator {
	it := &GroupBindingIterator{forest: forest, groupID: groupID, pattern: pattern, rules: rules, opIdx: -1}
	if g := forest.Group(groupID); g != nil {
		it.ops = g.snapshot(rules)
	}
	if pattern.Wildcard {
		it.leafPending = true
	}
	return it
}

// HasNext reports whether Next would yield another binding.
func (it *GroupBindingIterator) HasNext() bool {
	if it.pattern.Wildcard {
		return it.leafPending
	}
	for it.item == nil || !it.item.HasNext() {
		it.opIdx++
		if it.opIdx >= len(it.ops) {
			it.item = nil
			return false
		}
		it.item = newItemBindingIterator(it.forest, it.ops[it.opIdx], it.pattern, it.rules)
	}
	return true
}

// Next returns the next bound plan tree. Callers must check HasNext
// first.
func (it *GroupBindingIterator) Next() *OpPlanNode {
	if it.pattern.Wildcard {
		it.leafPending = false
		return &OpPlanNode{Op: LeafOperator{GroupID: it.groupID}}
	}
	return it.item.Next()
}
