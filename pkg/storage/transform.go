package storage

// TransformTileGroup rewrites the tile group at offset into the
// table's current default_partition column map, provided the rewrite
// is worth doing: the group's SchemaDifference from that map must be
// at least theta, mirroring spec.md §4.3's threshold on churn (the
// new layout is always the table's own default partition, never a
// caller-supplied one — original_source/data_table.cpp:849-850 takes
// only tile_group_offset and theta). It builds the new group and
// copies every row and the MVCC header verbatim, then re-registers it
// in the catalog under the SAME id the old group held, replacing
// rather than dropping the catalog entry, so any ItemPointer a caller
// already holds against this tile group stays resolvable across a
// successful transform (spec.md §4.3, §8 invariant 1). Returns the
// tile-group id on success, or InvalidOid if the rewrite was skipped.
func (t *DataTable) TransformTileGroup(offset int, theta float64) (uint64, error) {
	id, err := t.TileGroupIDAt(offset)
	if err != nil {
		return InvalidOid, err
	}
	old, ok := t.catalog.GetTileGroup(id)
	if !ok {
		return InvalidOid, ErrTileGroupNotFound
	}
	target := t.DefaultPartition()

	if old.SchemaDifference(target) < theta {
		return InvalidOid, nil
	}

	fresh := NewTileGroup(id, t.tableOid, tileGroupSchema(old), target, old.Capacity())

	n := old.Header().NextTupleSlot()
	for slot := uint32(0); slot < n; slot++ {
		for col := 0; col < target.ColumnCount(); col++ {
			fresh.SetValue(old.GetValue(slot, col), slot, col)
		}
	}
	old.Header().CloneInto(fresh.header)

	t.catalog.AddTileGroup(id, fresh)

	t.log.WithField("table", t.tableOid).
		WithField("tile_group", id).
		Info("transformed tile group layout")
	return id, nil
}

// tileGroupSchema recovers the full logical schema a tile group was
// built from by re-slicing each tile's own schema back onto its
// original column ids via the group's column map.
func tileGroupSchema(g *TileGroup) *Schema {
	colCount := g.columnMap.ColumnCount()
	cols := make([]Column, colCount)
	for c := 0; c < colCount; c++ {
		loc := g.columnMap.Locate(c)
		tileSchema := g.tiles[loc.TileIndex].Schema
		col := tileSchema.GetColumn(loc.WithinIndex)
		col.Idx = c
		cols[c] = col
	}
	return NewSchema(cols)
}
