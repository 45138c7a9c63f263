package storage

import "sync"

// TileGroup is a horizontal partition of Capacity() tuples, composed
// of an ordered list of Tiles plus the column map that ties logical
// column ids to (tile, within-tile) positions. TileGroups are jointly
// owned by the Catalog (the canonical shared handle) and are borrowed
// read-only by DataTable via lookup; the back-reference to the owning
// table is a non-owning oid handle, not a pointer, so the two can be
// looked up independently through the catalog (spec.md §9).
type TileGroup struct {
	mu sync.Mutex // tile_group_mutex: guards rare metadata swaps

	id        uint64
	ownerOid  uint64
	header    *TileGroupHeader
	tiles     []*Tile
	columnMap *ColumnMap
}

// NewTileGroup allocates a TileGroup for schema laid out according to
// columnMap, with room for capacity tuples.
func NewTileGroup(id, ownerOid uint64, schema *Schema, columnMap *ColumnMap, capacity int) *TileGroup {
	tileCols := columnMap.TileColumns()
	tiles := make([]*Tile, len(tileCols))
	for i, cols := range tileCols {
		tiles[i] = NewTile(schema.Slice(cols), capacity)
	}
	return &TileGroup{
		id:        id,
		ownerOid:  ownerOid,
		header:    NewTileGroupHeader(capacity),
		tiles:     tiles,
		columnMap: columnMap,
	}
}

func (g *TileGroup) ID() uint64             { return g.id }
func (g *TileGroup) OwnerOid() uint64       { return g.ownerOid }
func (g *TileGroup) Header() *TileGroupHeader { return g.header }
func (g *TileGroup) ColumnMap() *ColumnMap  { return g.columnMap }
func (g *TileGroup) TileCount() int         { return len(g.tiles) }
func (g *TileGroup) Capacity() int          { return g.header.Capacity() }

// Tile returns the tile at the given offset within the group.
func (g *TileGroup) Tile(tileIndex int) *Tile {
	return g.tiles[tileIndex]
}

// Locate returns (tile_ix, within_ix) for a logical column, O(1) via
// the column map (spec.md §4.1).
func (g *TileGroup) Locate(col int) ColumnLocation {
	return g.columnMap.Locate(col)
}

// GetValue reads a logical column for a row via the column map.
func (g *TileGroup) GetValue(row uint32, col int) Value {
	loc := g.columnMap.Locate(col)
	return g.tiles[loc.TileIndex].GetValue(int(row), loc.WithinIndex)
}

// SetValue writes a logical column for a row via the column map.
func (g *TileGroup) SetValue(v Value, row uint32, col int) {
	loc := g.columnMap.Locate(col)
	g.tiles[loc.TileIndex].SetValue(v, int(row), loc.WithinIndex)
}

// Insert atomically claims the next free slot from the header and, on
// success, copies every logical column of tuple into place. Returns
// (0, false) if the group is full — the caller (DataTable) is
// responsible for adding a fresh group and retrying.
func (g *TileGroup) Insert(tuple []Value) (uint32, bool) {
	slot, ok := g.header.ReserveNext()
	if !ok {
		return 0, false
	}
	for col, v := range tuple {
		g.SetValue(v, slot, col)
	}
	return slot, true
}

// SchemaDifference returns the fraction of columns whose placement in
// this group differs from target (spec.md §4.1).
func (g *TileGroup) SchemaDifference(target *ColumnMap) float64 {
	return g.columnMap.Difference(target)
}

// swapMetadata guards rare in-place metadata swaps (e.g. header
// replacement during recovery) behind tile_group_mutex, per spec.md §5.
func (g *TileGroup) swapMetadata(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}
