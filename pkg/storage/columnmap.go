package storage

import "sort"

// ColumnLocation is the physical position of a logical column: which
// tile it lives in, and its offset within that tile's schema.
type ColumnLocation struct {
	TileIndex   int
	WithinIndex int
}

// ColumnMap is a bijection from logical column id to ColumnLocation.
// It is best expressed as a dense array indexed by logical column id
// rather than a general map, per spec.md §9 — construction validates
// the bijection in one pass.
type ColumnMap struct {
	locations []ColumnLocation
	tileCount int
}

// NewColumnMap validates and wraps a raw mapping of logical column id
// -> (tileIndex, withinIndex). raw must cover every column in
// [0, columnCount) exactly once, and within each tile the withinIndex
// values must be dense starting at 0.
func NewColumnMap(columnCount int, raw map[int]ColumnLocation) (*ColumnMap, error) {
	if len(raw) != columnCount {
		return nil, ErrColumnMapInvalid
	}
	locations := make([]ColumnLocation, columnCount)
	maxTile := -1
	perTile := make(map[int][]int) // tileIndex -> sorted withinIndex values seen
	for col := 0; col < columnCount; col++ {
		loc, ok := raw[col]
		if !ok {
			return nil, ErrColumnMapInvalid
		}
		locations[col] = loc
		if loc.TileIndex > maxTile {
			maxTile = loc.TileIndex
		}
		perTile[loc.TileIndex] = append(perTile[loc.TileIndex], loc.WithinIndex)
	}
	for _, withins := range perTile {
		sort.Ints(withins)
		for i, w := range withins {
			if w != i {
				return nil, ErrColumnMapInvalid
			}
		}
	}
	return &ColumnMap{locations: locations, tileCount: maxTile + 1}, nil
}

// Locate returns the physical location of logical column col.
func (m *ColumnMap) Locate(col int) ColumnLocation {
	return m.locations[col]
}

// ColumnCount returns the number of logical columns covered.
func (m *ColumnMap) ColumnCount() int {
	return len(m.locations)
}

// TileCount returns the highest tile index referenced plus one. This
// equals the number of distinct tile indices only when they are dense;
// NewColumnMap does not check that.
func (m *ColumnMap) TileCount() int {
	return m.tileCount
}

// TileColumns returns, for each tile index in order, the logical
// column ids assigned to it in within-tile order. Used to build each
// Tile's schema fragment.
func (m *ColumnMap) TileColumns() [][]int {
	out := make([][]int, m.tileCount)
	for col, loc := range m.locations {
		if len(out[loc.TileIndex]) <= loc.WithinIndex {
			grown := make([]int, loc.WithinIndex+1)
			copy(grown, out[loc.TileIndex])
			out[loc.TileIndex] = grown
		}
		out[loc.TileIndex][loc.WithinIndex] = col
	}
	return out
}

// Equal reports whether two column maps place every logical column at
// the same (tile, within) position.
func (m *ColumnMap) Equal(other *ColumnMap) bool {
	if m.ColumnCount() != other.ColumnCount() {
		return false
	}
	for i, loc := range m.locations {
		if other.locations[i] != loc {
			return false
		}
	}
	return true
}

// Difference computes the fraction of columns whose placement in m
// differs from target, per spec.md §4.1 schema_difference.
func (m *ColumnMap) Difference(target *ColumnMap) float64 {
	if m.ColumnCount() == 0 {
		return 0
	}
	diff := 0
	for i, loc := range m.locations {
		if target.locations[i] != loc {
			diff++
		}
	}
	return float64(diff) / float64(m.ColumnCount())
}

// RowColumnMap builds the pure-row layout: every column in tile 0, in
// logical order.
func RowColumnMap(columnCount int) *ColumnMap {
	raw := make(map[int]ColumnLocation, columnCount)
	for c := 0; c < columnCount; c++ {
		raw[c] = ColumnLocation{TileIndex: 0, WithinIndex: c}
	}
	m, _ := NewColumnMap(columnCount, raw)
	return m
}

// ColumnColumnMap builds the pure-column layout: one tile per column.
func ColumnColumnMap(columnCount int) *ColumnMap {
	raw := make(map[int]ColumnLocation, columnCount)
	for c := 0; c < columnCount; c++ {
		raw[c] = ColumnLocation{TileIndex: c, WithinIndex: 0}
	}
	m, _ := NewColumnMap(columnCount, raw)
	return m
}
