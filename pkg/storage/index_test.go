package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapIndexInsertAndScan(t *testing.T) {
	m := NewMapIndex()
	loc1 := ItemPointer{TileGroupID: 1, Slot: 0}
	loc2 := ItemPointer{TileGroupID: 1, Slot: 1}

	require := assert.New(t)
	require.NoError(m.InsertEntry([]Value{IntValue(1)}, loc1))
	require.NoError(m.InsertEntry([]Value{IntValue(1)}, loc2))
	require.NoError(m.InsertEntry([]Value{IntValue(2)}, loc1))

	assert.Equal(t, []ItemPointer{loc1, loc2}, m.ScanKey([]Value{IntValue(1)}))
	assert.Equal(t, []ItemPointer{loc1}, m.ScanKey([]Value{IntValue(2)}))
	assert.Empty(t, m.ScanKey([]Value{IntValue(3)}))
}

func TestIndexProjectsKeyColumns(t *testing.T) {
	backing := NewMapIndex()
	ix := NewIndex("by_name_id", []int{1, 0}, IndexDefault, backing)

	loc := ItemPointer{TileGroupID: 1, Slot: 0}
	require := assert.New(t)
	require.NoError(ix.InsertEntry([]Value{IntValue(5), VarcharValue("bob")}, loc))

	assert.Equal(t, []ItemPointer{loc}, backing.ScanKey([]Value{VarcharValue("bob"), IntValue(5)}))
}

func TestMapIndexDoesNotEnforceUniqueness(t *testing.T) {
	backing := NewMapIndex()
	ix := NewIndex("pk", []int{0}, IndexPrimaryKey, backing)

	loc1 := ItemPointer{TileGroupID: 1, Slot: 0}
	loc2 := ItemPointer{TileGroupID: 1, Slot: 1}
	assert.NoError(t, ix.InsertEntry([]Value{IntValue(1)}, loc1))
	assert.NoError(t, ix.InsertEntry([]Value{IntValue(1)}, loc2))
	assert.Len(t, backing.ScanKey([]Value{IntValue(1)}), 2)
}
