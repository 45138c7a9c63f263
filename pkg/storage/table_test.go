package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apoms/peloton-opt/pkg/config"
)

func newTestTable(t *testing.T, opts ...Option) (*DataTable, *MemCatalog) {
	t.Helper()
	cat := NewMemCatalog()
	policy := config.DefaultPolicy()
	policy.Mode = config.LayoutRow
	policy.TuplesPerTileGroup = 4
	all := append([]Option{WithPolicy(policy)}, opts...)
	table, err := NewDataTable(1, 100, testSchema(), cat, all...)
	require.NoError(t, err)
	return table, cat
}

func TestNewDataTableSeedsOneTileGroup(t *testing.T) {
	table, _ := newTestTable(t)
	assert.Equal(t, 1, table.TileGroupCount())
}

func TestInsertTupleReadBack(t *testing.T) {
	table, _ := newTestTable(t)
	loc, err := table.InsertTuple([]Value{IntValue(42), VarcharValue("hello")})
	require.NoError(t, err)
	require.True(t, loc.Valid())

	group, ok := table.catalog.GetTileGroup(loc.TileGroupID)
	require.True(t, ok)
	assert.Equal(t, int64(42), group.GetValue(loc.Slot, 0).I64)
	assert.Equal(t, "hello", group.GetValue(loc.Slot, 1).Varchar)
}

func TestInsertTupleGrowsTileGroupsPastCapacity(t *testing.T) {
	table, _ := newTestTable(t) // capacity 4 per group

	for i := 0; i < 10; i++ {
		_, err := table.InsertTuple([]Value{IntValue(int64(i)), NullValue(KindVarchar)})
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, table.TileGroupCount(), 3)
	assert.Equal(t, uint64(10), table.ExactTupleCount())
}

func TestInsertTupleRejectsNotNullViolation(t *testing.T) {
	table, _ := newTestTable(t)
	schema := NewSchema([]Column{
		{Name: "id", Type: ColumnType{Kind: KindInt64}, Nullable: false},
	})
	table.schema = schema

	_, err := table.InsertTuple([]Value{NullValue(KindInt64)})
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Equal(t, uint64(0), table.ExactTupleCount())
}

func TestInsertTupleFansOutToAllIndexes(t *testing.T) {
	table, _ := newTestTable(t)
	primary := NewMapIndex()
	secondary := NewMapIndex()
	table.AddIndex(NewIndex("pk", []int{0}, IndexPrimaryKey, primary))
	table.AddIndex(NewIndex("by_name", []int{1}, IndexDefault, secondary))

	loc, err := table.InsertTuple([]Value{IntValue(1), VarcharValue("a")})
	require.NoError(t, err)

	assert.Equal(t, []ItemPointer{loc}, primary.ScanKey([]Value{IntValue(1)}))
	assert.Equal(t, []ItemPointer{loc}, secondary.ScanKey([]Value{VarcharValue("a")}))
}

func TestInsertVersionSkipsPrimaryIndex(t *testing.T) {
	table, _ := newTestTable(t)
	primary := NewMapIndex()
	secondary := NewMapIndex()
	table.AddIndex(NewIndex("pk", []int{0}, IndexPrimaryKey, primary))
	table.AddIndex(NewIndex("by_name", []int{1}, IndexDefault, secondary))

	loc, err := table.InsertVersion([]Value{IntValue(1), VarcharValue("a")})
	require.NoError(t, err)

	assert.Empty(t, primary.ScanKey([]Value{IntValue(1)}))
	assert.Equal(t, []ItemPointer{loc}, secondary.ScanKey([]Value{VarcharValue("a")}))
}

func TestAddDefaultTileGroupIsRaceTolerant(t *testing.T) {
	table, _ := newTestTable(t)
	// The seeded group is empty, so a second call should be a no-op.
	id, err := table.AddDefaultTileGroup()
	require.NoError(t, err)
	assert.Equal(t, InvalidOid, id)
	assert.Equal(t, 1, table.TileGroupCount())
}

func TestApproximateAndExactTupleCounters(t *testing.T) {
	table, _ := newTestTable(t)
	table.IncreaseNumberOfTuplesBy(5.5)
	assert.Equal(t, 5.5, table.ApproximateTupleCount())
	assert.True(t, table.IsDirty())
	table.ResetDirty()
	assert.False(t, table.IsDirty())

	table.DecreaseNumberOfTuplesBy(1.5)
	assert.Equal(t, 4.0, table.ApproximateTupleCount())
}
