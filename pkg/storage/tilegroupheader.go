package storage

import "sync/atomic"

// MaxCommitID marks a slot whose end-commit-id has not been set: the
// tuple version is still the newest one for its key.
const MaxCommitID = ^uint64(0)

// SlotHeader is the per-slot MVCC metadata the transaction manager
// consults to decide visibility. The storage core never interprets
// these fields itself; it only stores and copies them.
type SlotHeader struct {
	TxnID         uint64
	BeginCommitID uint64
	EndCommitID   uint64
}

// TileGroupHeader holds per-slot MVCC metadata for a TileGroup plus a
// bump allocator yielding the next empty slot. next is monotonically
// non-decreasing and bounded by the slot count.
type TileGroupHeader struct {
	next  uint32 // atomic
	slots []SlotHeader
}

// NewTileGroupHeader allocates a header for a TileGroup with the given
// slot capacity.
func NewTileGroupHeader(capacity int) *TileGroupHeader {
	return &TileGroupHeader{
		slots: make([]SlotHeader, capacity),
	}
}

// Capacity returns the total number of slots this header covers.
func (h *TileGroupHeader) Capacity() int {
	return len(h.slots)
}

// NextTupleSlot returns the current bump-allocator cursor: the number
// of slots that have ever been claimed.
func (h *TileGroupHeader) NextTupleSlot() uint32 {
	return atomic.LoadUint32(&h.next)
}

// ReserveNext atomically claims the next free slot, returning
// (slot, true), or (0, false) if the header is full. This is the sole
// slot-acquisition path and requires no external lock: it is safe for
// concurrent callers.
func (h *TileGroupHeader) ReserveNext() (uint32, bool) {
	for {
		cur := atomic.LoadUint32(&h.next)
		if int(cur) >= len(h.slots) {
			return 0, false
		}
		if atomic.CompareAndSwapUint32(&h.next, cur, cur+1) {
			return cur, true
		}
	}
}

// SetSlot installs MVCC metadata for a slot. The storage core itself
// never calls it: TileGroup.Insert leaves slot metadata zeroed, and
// TransformTileGroup copies headers with CloneInto.
func (h *TileGroupHeader) SetSlot(slot uint32, meta SlotHeader) {
	h.slots[slot] = meta
}

// Slot returns the MVCC metadata for a slot.
func (h *TileGroupHeader) Slot(slot uint32) SlotHeader {
	return h.slots[slot]
}

// CloneInto copies this header's full slot state onto dst byte-for-byte,
// preserving the bump cursor. Used by TransformTileGroup so MVCC
// visibility survives a layout rewrite (spec.md §4.3).
func (h *TileGroupHeader) CloneInto(dst *TileGroupHeader) {
	dst.slots = make([]SlotHeader, len(h.slots))
	copy(dst.slots, h.slots)
	atomic.StoreUint32(&dst.next, atomic.LoadUint32(&h.next))
}

// VisibilityChecker is the transaction manager's consumed contract
// (spec.md §6): given a slot's MVCC header, decide if it is visible.
type VisibilityChecker interface {
	IsVisible(header *TileGroupHeader, slot uint32) bool
}

// AlwaysVisible is a reference VisibilityChecker for use outside of a
// real MVCC transaction manager: any slot that has actually been
// allocated (below the bump cursor) is visible.
type AlwaysVisible struct{}

func (AlwaysVisible) IsVisible(header *TileGroupHeader, slot uint32) bool {
	return slot < header.NextTupleSlot()
}
