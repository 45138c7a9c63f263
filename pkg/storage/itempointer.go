package storage

// ItemPointer uniquely identifies a physical row: the tile group that
// holds it, and its slot offset within that group. Both fields are
// valid or both are INVALID (spec.md §3).
type ItemPointer struct {
	TileGroupID uint64
	Slot        uint32
}

// InvalidItemPointer is the sentinel returned on constraint failure or
// allocator exhaustion.
var InvalidItemPointer = ItemPointer{TileGroupID: InvalidOid, Slot: 0}

// Valid reports whether the pointer refers to an actual row.
func (p ItemPointer) Valid() bool {
	return p.TileGroupID != InvalidOid
}
