package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return NewSchema([]Column{
		{Name: "id", Type: ColumnType{Kind: KindInt64}},
		{Name: "name", Type: ColumnType{Kind: KindVarchar}, Nullable: true},
	})
}

func TestTileGroupInsertAndRead(t *testing.T) {
	schema := testSchema()
	g := NewTileGroup(1, 10, schema, RowColumnMap(2), 4)

	slot, ok := g.Insert([]Value{IntValue(7), VarcharValue("a")})
	require.True(t, ok)
	assert.Equal(t, uint32(0), slot)
	assert.Equal(t, int64(7), g.GetValue(slot, 0).I64)
	assert.Equal(t, "a", g.GetValue(slot, 1).Varchar)
}

func TestTileGroupInsertFillsCapacityThenFails(t *testing.T) {
	schema := testSchema()
	g := NewTileGroup(1, 10, schema, RowColumnMap(2), 2)

	_, ok := g.Insert([]Value{IntValue(1), NullValue(KindVarchar)})
	require.True(t, ok)
	_, ok = g.Insert([]Value{IntValue(2), NullValue(KindVarchar)})
	require.True(t, ok)
	_, ok = g.Insert([]Value{IntValue(3), NullValue(KindVarchar)})
	assert.False(t, ok)
}

func TestTileGroupConcurrentInsertNoDuplicateSlots(t *testing.T) {
	schema := testSchema()
	capacity := 200
	g := NewTileGroup(1, 10, schema, RowColumnMap(2), capacity)

	var wg sync.WaitGroup
	slots := make([]uint32, capacity*2)
	oks := make([]bool, capacity*2)
	for i := 0; i < capacity*2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, ok := g.Insert([]Value{IntValue(int64(i)), NullValue(KindVarchar)})
			slots[i], oks[i] = s, ok
		}(i)
	}
	wg.Wait()

	seen := make(map[uint32]bool)
	successCount := 0
	for i := range oks {
		if !oks[i] {
			continue
		}
		successCount++
		assert.False(t, seen[slots[i]], "slot %d claimed twice", slots[i])
		seen[slots[i]] = true
	}
	assert.Equal(t, capacity, successCount)
}

func TestColumnMapLocateMatchesTileGroupSchemaDifference(t *testing.T) {
	schema := testSchema()
	row := RowColumnMap(2)
	col := ColumnColumnMap(2)
	g := NewTileGroup(1, 10, schema, row, 4)
	// Column 0 sits at (0,0) in both layouts; only column 1 moves.
	assert.Equal(t, 0.5, g.SchemaDifference(col))
	assert.Equal(t, 0.0, g.SchemaDifference(row))
}
