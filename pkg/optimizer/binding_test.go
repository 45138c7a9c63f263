package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(it *GroupBindingIterator) []*OpPlanNode {
	var out []*OpPlanNode
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

func TestLeafPatternYieldsExactlyOne(t *testing.T) {
	f := NewForest()
	g := f.NewGroup()
	f.Group(g).Add(GetOperator{Table: 1})

	it := NewGroupBindingIterator(f, g, Leaf, DefaultRules())
	results := drain(it)
	require.Len(t, results, 1)
	leaf, ok := results[0].Op.(LeafOperator)
	require.True(t, ok)
	assert.Equal(t, g, leaf.GroupID)
}

func TestGetGroupBindsToScanAfterExploration(t *testing.T) {
	f := NewForest()
	g := f.NewGroup()
	f.Group(g).Add(GetOperator{Table: 42})

	pattern := NewPattern(OpPhysicalScan)
	results := drain(NewGroupBindingIterator(f, g, pattern, DefaultRules()))
	require.Len(t, results, 1)
	scan, ok := results[0].Op.(ScanOperator)
	require.True(t, ok)
	assert.Equal(t, uint64(42), scan.Table)
}

func TestFilterOverGetBindsNestedPlan(t *testing.T) {
	f := NewForest()
	getGroup := f.NewGroup()
	f.Group(getGroup).Add(GetOperator{Table: 1})

	filterGroup := f.NewGroup()
	f.Group(filterGroup).Add(FilterOperator{Child: getGroup, Predicate: "x > 0"})

	pattern := NewPattern(OpPhysicalFilter, NewPattern(OpPhysicalScan))
	results := drain(NewGroupBindingIterator(f, filterGroup, pattern, DefaultRules()))
	require.Len(t, results, 1)

	root := results[0]
	filter, ok := root.Op.(FilterOperator)
	require.True(t, ok)
	assert.True(t, filter.Physical)
	require.Len(t, root.Children, 1)
	_, ok = root.Children[0].Op.(ScanOperator)
	assert.True(t, ok)
}

func TestFilterOverLeafBindsWithoutExpandingChild(t *testing.T) {
	f := NewForest()
	getGroup := f.NewGroup()
	f.Group(getGroup).Add(GetOperator{Table: 1})

	filterGroup := f.NewGroup()
	f.Group(filterGroup).Add(FilterOperator{Child: getGroup, Predicate: "x > 0"})

	pattern := NewPattern(OpPhysicalFilter, Leaf)
	results := drain(NewGroupBindingIterator(f, filterGroup, pattern, DefaultRules()))
	require.Len(t, results, 1)
	require.Len(t, results[0].Children, 1)
	leaf, ok := results[0].Children[0].Op.(LeafOperator)
	require.True(t, ok)
	assert.Equal(t, getGroup, leaf.GroupID)
}

func TestJoinBindsCartesianProductOfChildren(t *testing.T) {
	f := NewForest()
	outerGroup := f.NewGroup()
	f.Group(outerGroup).Add(GetOperator{Table: 1})

	innerGroup := f.NewGroup()
	f.Group(innerGroup).Add(GetOperator{Table: 2})
	f.Group(innerGroup).Add(GetOperator{Table: 3}) // two equivalent scans

	joinGroup := f.NewGroup()
	f.Group(joinGroup).Add(InnerJoinOperator{Outer: outerGroup, Inner: innerGroup, Predicate: "a=b"})

	pattern := NewPattern(OpPhysicalInnerJoin, NewPattern(OpPhysicalScan), NewPattern(OpPhysicalScan))
	results := drain(NewGroupBindingIterator(f, joinGroup, pattern, DefaultRules()))

	// One outer binding * two inner bindings = two plans.
	require.Len(t, results, 2)
	var innerTables []uint64
	for _, r := range results {
		join := r.Op.(InnerJoinOperator)
		assert.True(t, join.Physical)
		outerScan := r.Children[0].Op.(ScanOperator)
		assert.Equal(t, uint64(1), outerScan.Table)
		innerTables = append(innerTables, r.Children[1].Op.(ScanOperator).Table)
	}
	assert.ElementsMatch(t, []uint64{2, 3}, innerTables)
}

func TestJoinLastChildVariesFastest(t *testing.T) {
	f := NewForest()
	outerGroup := f.NewGroup()
	f.Group(outerGroup).Add(GetOperator{Table: 10})
	f.Group(outerGroup).Add(GetOperator{Table: 11})

	innerGroup := f.NewGroup()
	f.Group(innerGroup).Add(GetOperator{Table: 20})
	f.Group(innerGroup).Add(GetOperator{Table: 21})

	joinGroup := f.NewGroup()
	f.Group(joinGroup).Add(InnerJoinOperator{Outer: outerGroup, Inner: innerGroup})

	pattern := NewPattern(OpPhysicalInnerJoin, NewPattern(OpPhysicalScan), NewPattern(OpPhysicalScan))
	results := drain(NewGroupBindingIterator(f, joinGroup, pattern, DefaultRules()))
	require.Len(t, results, 4)

	var seq [][2]uint64
	for _, r := range results {
		seq = append(seq, [2]uint64{
			r.Children[0].Op.(ScanOperator).Table,
			r.Children[1].Op.(ScanOperator).Table,
		})
	}
	expected := [][2]uint64{{10, 20}, {10, 21}, {11, 20}, {11, 21}}
	assert.Equal(t, expected, seq)
}

func TestOperatorTypeMismatchYieldsNoBindings(t *testing.T) {
	f := NewForest()
	getGroup := f.NewGroup()
	f.Group(getGroup).Add(GetOperator{Table: 1})

	joinGroup := f.NewGroup()
	f.Group(joinGroup).Add(GetOperator{Table: 99}) // not a join at all

	pattern := NewPattern(OpPhysicalInnerJoin, NewPattern(OpPhysicalScan), NewPattern(OpPhysicalScan))
	results := drain(NewGroupBindingIterator(f, joinGroup, pattern, DefaultRules()))
	assert.Empty(t, results)
}

func TestUnexploredGroupWithNoMatchYieldsEmpty(t *testing.T) {
	f := NewForest()
	g := f.NewGroup()
	f.Group(g).Add(GetOperator{Table: 1})

	pattern := NewPattern(OpPhysicalFilter, Leaf)
	results := drain(NewGroupBindingIterator(f, g, pattern, DefaultRules()))
	assert.Empty(t, results)
}
