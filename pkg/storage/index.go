package storage

import "sync"

// IndexType distinguishes the visibility semantics an Index enforces
// at higher layers. Storage does not itself check uniqueness — see the
// open question resolved in DESIGN.md.
type IndexType int

const (
	IndexDefault IndexType = iota
	IndexPrimaryKey
	IndexUnique
)

// Index is the consumed contract of an index implementation
// (spec.md §6). Storage fans out inserts to every registered index but
// never enforces uniqueness itself: primary/unique visibility checks
// belong to the transaction manager, which alone can tell whether a
// conflicting entry is actually visible to the inserting transaction.
type Index struct {
	Name       string
	KeyColumns []int
	Type       IndexType
	impl       IndexImpl
}

// IndexImpl is the pluggable backing store an Index wraps.
type IndexImpl interface {
	InsertEntry(key []Value, location ItemPointer) error
}

// NewIndex wraps impl with the metadata DataTable's fan-out needs.
func NewIndex(name string, keyColumns []int, typ IndexType, impl IndexImpl) *Index {
	return &Index{Name: name, KeyColumns: keyColumns, Type: typ, impl: impl}
}

// InsertEntry projects tuple onto the index's key columns and inserts
// the (key, location) pair into the backing implementation.
func (ix *Index) InsertEntry(tuple []Value, location ItemPointer) error {
	key := make([]Value, len(ix.KeyColumns))
	for i, col := range ix.KeyColumns {
		key[i] = tuple[col]
	}
	return ix.impl.InsertEntry(key, location)
}

// MapIndex is a reference IndexImpl backed by a map from the encoded
// key to the set of item pointers stored under it. It does not reject
// duplicate keys for primary/unique indexes — per spec.md §9, storage
// does not enforce uniqueness; the caller (transaction manager) must.
type MapIndex struct {
	mu      sync.Mutex
	entries map[string][]ItemPointer
}

// NewMapIndex constructs an empty MapIndex.
func NewMapIndex() *MapIndex {
	return &MapIndex{entries: make(map[string][]ItemPointer)}
}

func encodeKey(key []Value) string {
	var buf []byte
	for _, v := range key {
		enc := v.Encode()
		buf = append(buf, byte(len(enc)))
		buf = append(buf, enc...)
	}
	return string(buf)
}

func (m *MapIndex) InsertEntry(key []Value, location ItemPointer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := encodeKey(key)
	m.entries[k] = append(m.entries[k], location)
	return nil
}

// ScanKey returns every item pointer stored under an exact key match.
func (m *MapIndex) ScanKey(key []Value) []ItemPointer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ItemPointer(nil), m.entries[encodeKey(key)]...)
}
