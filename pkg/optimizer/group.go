package optimizer

import "sync"

// Group is a memoized equivalence class: every operator in the list
// produces the same result set, just by a different plan. explored[i]
// tracks whether operator i has already had every Rule fired against
// it.
type Group struct {
	mu        sync.Mutex
	operators []Operator
	explored  []bool
}

// NewGroup returns an empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends op, unexplored, and returns its index.
func (g *Group) Add(op Operator) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.operators = append(g.operators, op)
	g.explored = append(g.explored, false)
	return len(g.operators) - 1
}

// Len returns the current operator count. Exploration can grow the
// list, so the count may change between calls.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.operators)
}

// OperatorAt returns the operator at index i.
func (g *Group) OperatorAt(i int) Operator {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.operators[i]
}

// snapshot returns a copy of the current operator list, decoupled from
// further mutation, after exploring every not-yet-explored operator
// against rules first. This is the exploration pass
// GroupBindingIterator's constructor performs (spec.md §4.5).
func (g *Group) snapshot(rules []Rule) []Operator {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := 0
	for i < len(g.operators) {
		if !g.explored[i] {
			g.explored[i] = true
			op := g.operators[i]
			for _, r := range rules {
				if !r.Matches(op) {
					continue
				}
				for _, added := range r.Apply(op) {
					g.operators = append(g.operators, added)
					g.explored = append(g.explored, false)
				}
			}
		}
		i++
	}
	return append([]Operator(nil), g.operators...)
}
