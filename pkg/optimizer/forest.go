package optimizer

import "sync"

// Forest is the optimizer's memoization table: an append-only list of
// Groups, each independently mutex-guarded (spec.md §4.5, §5).
type Forest struct {
	mu     sync.Mutex
	groups []*Group
}

// NewForest returns an empty Forest.
func NewForest() *Forest {
	return &Forest{}
}

// NewGroup allocates a fresh, empty Group and returns its id.
func (f *Forest) NewGroup() GroupID {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups = append(f.groups, NewGroup())
	return GroupID(len(f.groups) - 1)
}

// Group resolves an id to its Group, or nil if out of range.
func (f *Forest) Group(id GroupID) *Group {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(id) < 0 || int(id) >= len(f.groups) {
		return nil
	}
	return f.groups[id]
}

// GroupCount returns the number of groups allocated so far.
func (f *Forest) GroupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.groups)
}
