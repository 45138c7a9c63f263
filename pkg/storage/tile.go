package storage

// Tile is a fixed-width column-slab backing store for a contiguous
// subset of columns over N tuple slots. It is owned exclusively by its
// TileGroup.
type Tile struct {
	Schema *Schema
	rows   int
	cols   [][]Value // cols[withinIndex][row]
}

// NewTile allocates a Tile with capacity for rows tuples across the
// columns described by schema.
func NewTile(schema *Schema, rows int) *Tile {
	cols := make([][]Value, schema.ColumnCount())
	for i, c := range schema.Columns {
		col := make([]Value, rows)
		for r := range col {
			col[r] = NullValue(c.Type.Kind)
		}
		cols[i] = col
	}
	return &Tile{Schema: schema, rows: rows, cols: cols}
}

// GetValue returns the value at (row, withinIndex).
func (t *Tile) GetValue(row, withinIndex int) Value {
	return t.cols[withinIndex][row]
}

// SetValue stores v at (row, withinIndex).
func (t *Tile) SetValue(v Value, row, withinIndex int) {
	t.cols[withinIndex][row] = v
}

// Rows returns the tile's tuple capacity.
func (t *Tile) Rows() int {
	return t.rows
}
