package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumnMapRejectsGaps(t *testing.T) {
	_, err := NewColumnMap(3, map[int]ColumnLocation{
		0: {TileIndex: 0, WithinIndex: 0},
		1: {TileIndex: 0, WithinIndex: 2}, // gap: no withinIndex 1
		2: {TileIndex: 0, WithinIndex: 1},
	})
	assert.ErrorIs(t, err, ErrColumnMapInvalid)
}

func TestNewColumnMapRejectsWrongCount(t *testing.T) {
	_, err := NewColumnMap(3, map[int]ColumnLocation{
		0: {TileIndex: 0, WithinIndex: 0},
		1: {TileIndex: 0, WithinIndex: 1},
	})
	assert.ErrorIs(t, err, ErrColumnMapInvalid)
}

func TestRowColumnMapIsOneTile(t *testing.T) {
	m := RowColumnMap(4)
	require.Equal(t, 1, m.TileCount())
	for c := 0; c < 4; c++ {
		loc := m.Locate(c)
		assert.Equal(t, 0, loc.TileIndex)
		assert.Equal(t, c, loc.WithinIndex)
	}
}

func TestColumnColumnMapIsOnePerTile(t *testing.T) {
	m := ColumnColumnMap(4)
	require.Equal(t, 4, m.TileCount())
	for c := 0; c < 4; c++ {
		loc := m.Locate(c)
		assert.Equal(t, c, loc.TileIndex)
		assert.Equal(t, 0, loc.WithinIndex)
	}
}

func TestColumnMapDifference(t *testing.T) {
	row := RowColumnMap(4)
	col := ColumnColumnMap(4)
	assert.Equal(t, 0.0, row.Difference(row))
	// Column 0 sits at (0,0) in both layouts; the other three move.
	assert.Equal(t, 0.75, row.Difference(col))
}

func TestColumnMapEqual(t *testing.T) {
	a := RowColumnMap(3)
	b := RowColumnMap(3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(ColumnColumnMap(3)))
}
