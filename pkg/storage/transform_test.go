package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apoms/peloton-opt/pkg/config"
)

func TestTransformTileGroupPreservesValues(t *testing.T) {
	table, _ := newTestTable(t)
	var locs []ItemPointer
	for i := 0; i < 3; i++ {
		loc, err := table.InsertTuple([]Value{IntValue(int64(i)), VarcharValue("v")})
		require.NoError(t, err)
		locs = append(locs, loc)
	}

	target := ColumnColumnMap(2)
	table.defaultPartition = target
	newID, err := table.TransformTileGroup(0, 0.0)
	require.NoError(t, err)
	require.NotEqual(t, InvalidOid, newID)

	newGroup, ok := table.catalog.GetTileGroup(newID)
	require.True(t, ok)
	assert.True(t, newGroup.ColumnMap().Equal(target))

	for i, loc := range locs {
		assert.Equal(t, int64(i), newGroup.GetValue(loc.Slot, 0).I64)
		assert.Equal(t, "v", newGroup.GetValue(loc.Slot, 1).Varchar)
	}

	// The tile group id never changes across a transform: every
	// ItemPointer returned by the earlier inserts must still resolve,
	// through the same id, to the transformed layout.
	assert.Equal(t, locs[0].TileGroupID, newID)
	for i, loc := range locs {
		resolved, ok := table.catalog.GetTileGroup(loc.TileGroupID)
		require.True(t, ok)
		assert.Same(t, newGroup, resolved)
		assert.Equal(t, int64(i), resolved.GetValue(loc.Slot, 0).I64)
	}
}

func TestTransformTileGroupSkipsBelowTheta(t *testing.T) {
	table, _ := newTestTable(t)
	_, err := table.InsertTuple([]Value{IntValue(1), VarcharValue("v")})
	require.NoError(t, err)

	table.defaultPartition = RowColumnMap(2)
	newID, err := table.TransformTileGroup(0, 0.01)
	require.NoError(t, err)
	assert.Equal(t, InvalidOid, newID)
}

func TestTransformTileGroupRejectsBadOffset(t *testing.T) {
	table, _ := newTestTable(t)
	_, err := table.TransformTileGroup(5, 0.0)
	assert.ErrorIs(t, err, ErrInvalidTileGroupOffset)
}

func TestGetTileGroupLayoutHybridFallsBackToRowBelowThreshold(t *testing.T) {
	cat := NewMemCatalog()
	policy := config.DefaultPolicy() // hybrid, threshold 10
	table, err := NewDataTable(1, 1, testSchema(), cat, WithPolicy(policy))
	require.NoError(t, err)

	m, err := table.GetTileGroupLayout(config.LayoutHybrid)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TileCount())
}

func TestGetTileGroupLayoutUnknownMode(t *testing.T) {
	table, _ := newTestTable(t)
	_, err := table.GetTileGroupLayout(config.LayoutMode(99))
	assert.ErrorIs(t, err, ErrUnknownLayoutMode)
}
