package storage

import (
	"math/rand"

	"github.com/axiomhq/hyperloglog"
	"github.com/google/btree"
	"github.com/sirupsen/logrus"
)

// RowSampler is the injectable PRNG contract SampleRows draws slot
// offsets from, so tests can pin the sequence instead of depending on
// wall-clock entropy (spec.md §9).
type RowSampler interface {
	Uint64n(n uint64) uint64
}

// MathRandSampler is a reference RowSampler backed by math/rand. It is
// not cryptographically secure and is not meant to be: sampling for
// statistics has no adversarial model.
type MathRandSampler struct {
	r *rand.Rand
}

// NewMathRandSampler builds a MathRandSampler seeded deterministically,
// so two tables constructed with the same seed sample identically.
func NewMathRandSampler(seed int64) *MathRandSampler {
	return &MathRandSampler{r: rand.New(rand.NewSource(seed))}
}

func (s *MathRandSampler) Uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return uint64(s.r.Int63n(int64(n)))
}

// pointerItem adapts ItemPointer to btree.Item so sampled offsets can
// be deduplicated within a SampleRows call in O(log n) instead of a
// linear scan.
type pointerItem ItemPointer

func (p pointerItem) Less(than btree.Item) bool {
	o := than.(pointerItem)
	if p.TileGroupID != o.TileGroupID {
		return p.TileGroupID < o.TileGroupID
	}
	return p.Slot < o.Slot
}

// sampleState holds sample_mutex-guarded state: the working sample of
// row locations, the materialized sample tile group's id (if any),
// its per-sample-column cardinality cache, and the approximate
// per-column sketches. It is embedded directly into DataTable rather
// than pulled out into its own type with a pointer, since it has no
// independent lifetime.
type sampleState struct {
	sampled           *btree.BTree
	sampleTileGroupID uint64
	cardinalityCache  map[int]uint64 // keyed by sample-column id
	sketches          map[int]*hyperloglog.Sketch
}

// buildInlineColumnMap scans schema once and returns the table-column
// to sample-column translation table plus the ordered list of table
// column ids it covers. Only inlined (fixed-width) columns are ever
// mapped into a sample; varchar/varbinary columns are variable-width
// and are excluded from statistics collection entirely, not just
// truncated (spec.md §4.4's "inline-column map built at table
// construction").
func buildInlineColumnMap(schema *Schema) (map[int]int, []int) {
	inlineMap := make(map[int]int)
	cols := make([]int, 0, schema.ColumnCount())
	for _, c := range schema.Columns {
		if c.Type.Inlined() {
			inlineMap[c.Idx] = len(cols)
			cols = append(cols, c.Idx)
		}
	}
	return inlineMap, cols
}

// SampleRows draws up to n distinct, currently-visible row locations
// from the table. If n covers the whole table (n >= total_tuples), it
// takes the deterministic path: every row id 0..total_tuples-1 is
// enumerated in order, with no PRNG involved and no visibility filter
// (spec.md §4.4, §8 "SampleRows(n) with n >= total_tuples returns
// exactly total_tuples"). Otherwise it draws a row id uniformly over
// [0, total_tuples), decomposes it into (group_offset, within) by the
// table's fixed tuples-per-tile-group capacity, and keeps it only if
// the transaction manager considers it visible, retrying up to
// policy.SampleRetryRounds times per draw (spec.md §4.4;
// original_source/data_table.cpp:1083-1132). It returns the number of
// rows actually added, which can be less than n if the table is small
// or mostly invisible.
//
// A fresh call always starts from a clean slate: the prior sample
// pointer list, any materialized sample tile group, and the
// cardinality cache are all dropped first, so a re-sample never
// accumulates on top of stale state (spec.md §4.4, §8 "re-calling
// SampleRows drops prior state cleanly").
func (t *DataTable) SampleRows(n int) (int, error) {
	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()

	t.sampled = btree.New(32)
	t.cardinalityCache = nil
	if t.sampleTileGroupID != InvalidOid {
		t.catalog.DropTileGroup(t.sampleTileGroupID)
		t.sampleTileGroupID = InvalidOid
	}

	tuplesPerGroup := int(t.policy.TuplesPerTileGroup)
	totalTuples := int(t.ExactTupleCount())
	if n <= 0 || totalTuples == 0 || tuplesPerGroup <= 0 {
		return 0, nil
	}

	if n >= totalTuples {
		for rowID := 0; rowID < totalTuples; rowID++ {
			id, err := t.TileGroupIDAt(rowID / tuplesPerGroup)
			if err != nil {
				continue
			}
			t.sampled.ReplaceOrInsert(pointerItem{TileGroupID: id, Slot: uint32(rowID % tuplesPerGroup)})
		}
		return t.sampled.Len(), nil
	}

	added := 0
	for i := 0; i < n; i++ {
		for round := 0; round < t.policy.SampleRetryRounds; round++ {
			rowID := int(t.sampler.Uint64n(uint64(totalTuples)))
			groupOffset := rowID / tuplesPerGroup
			within := uint32(rowID % tuplesPerGroup)

			group, err := t.TileGroupAt(groupOffset)
			if err != nil {
				continue
			}
			if !t.visibility.IsVisible(group.Header(), within) {
				continue
			}
			id, _ := t.TileGroupIDAt(groupOffset)
			candidate := pointerItem{TileGroupID: id, Slot: within}
			if t.sampled.Has(candidate) {
				continue
			}
			t.sampled.ReplaceOrInsert(candidate)
			added++
			break
		}
	}
	return added, nil
}

// SampledRowCount returns how many row locations are currently held in
// the working sample.
func (t *DataTable) SampledRowCount() int {
	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()
	if t.sampled == nil {
		return 0
	}
	return t.sampled.Len()
}

// ClearSample discards the working sample and any materialized sample
// tile group, e.g. once statistics have been consumed from it.
func (t *DataTable) ClearSample() {
	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()
	t.sampled = nil
	t.cardinalityCache = nil
	if t.sampleTileGroupID != InvalidOid {
		t.catalog.DropTileGroup(t.sampleTileGroupID)
		t.sampleTileGroupID = InvalidOid
	}
}

// MaterializeSample builds a dedicated, purely-columnar sample tile
// group covering every inlined column of the current working sample
// and registers it in the catalog, dropping and replacing any prior
// materialization. Each row of the new group is filled column-by-
// column from the live table cell the corresponding sampled
// ItemPointer names (spec.md §4.4, §6, §8 invariant 4).
//
// Materializing before SampleRows has produced anything is optimizer
// misuse, not a hard failure: it is logged and left a no-op (spec.md
// §7).
func (t *DataTable) MaterializeSample() error {
	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()

	if t.sampleTileGroupID != InvalidOid {
		t.catalog.DropTileGroup(t.sampleTileGroupID)
		t.sampleTileGroupID = InvalidOid
	}
	t.cardinalityCache = nil

	if t.sampled == nil || t.sampled.Len() == 0 {
		t.log.WithField("table", t.tableOid).Warn("materialize sample called with no working sample")
		return nil
	}
	if len(t.sampleColumns) == 0 {
		t.log.WithField("table", t.tableOid).Warn("table has no inlined columns to materialize a sample over")
		return nil
	}

	pointers := make([]ItemPointer, 0, t.sampled.Len())
	t.sampled.Ascend(func(item btree.Item) bool {
		pointers = append(pointers, ItemPointer(item.(pointerItem)))
		return true
	})

	sampleSchema := t.schema.Slice(t.sampleColumns)
	columnMap := ColumnColumnMap(len(t.sampleColumns))
	id := t.catalog.NextOid()
	group := NewTileGroup(id, t.tableOid, sampleSchema, columnMap, len(pointers))

	for _, p := range pointers {
		src, ok := t.catalog.GetTileGroup(p.TileGroupID)
		if !ok {
			return ErrTileGroupNotFound
		}
		slot, ok := group.Header().ReserveNext()
		if !ok {
			return ErrAllocationFailed
		}
		for sampleCol, tableCol := range t.sampleColumns {
			group.SetValue(src.GetValue(p.Slot, tableCol), slot, sampleCol)
		}
	}

	t.catalog.AddTileGroup(id, group)
	t.sampleTileGroupID = id
	return nil
}

// computeSampleCardinalityLocked hashes every value of sampleCol
// across the materialized sample tile group's rows and caches the
// distinct count. Must be called with sampleMu held.
func (t *DataTable) computeSampleCardinalityLocked(sampleCol int) uint64 {
	if t.cardinalityCache == nil {
		t.cardinalityCache = make(map[int]uint64)
	}
	if card, ok := t.cardinalityCache[sampleCol]; ok {
		return card
	}
	if t.sampleTileGroupID == InvalidOid {
		t.log.WithField("table", t.tableOid).Warn("cardinality requested before a sample was materialized")
		return 0
	}
	group, ok := t.catalog.GetTileGroup(t.sampleTileGroupID)
	if !ok || sampleCol < 0 || sampleCol >= group.ColumnMap().ColumnCount() {
		return 0
	}
	n := group.Header().NextTupleSlot()
	seen := make(map[uint64]struct{}, n)
	for slot := uint32(0); slot < n; slot++ {
		seen[fnv1aHash(group.GetValue(slot, sampleCol).Encode())] = struct{}{}
	}
	card := uint64(len(seen))
	t.cardinalityCache[sampleCol] = card
	return card
}

// ComputeSampleCardinality returns the exact number of distinct values
// column sampleCol — a column id in the materialized sample tile
// group's own numbering, not the table's — takes across the current
// sample, computing and caching the result. Mirrors the original's
// ComputeSampleCardinality(sample_column_id).
func (t *DataTable) ComputeSampleCardinality(sampleCol int) uint64 {
	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()
	return t.computeSampleCardinalityLocked(sampleCol)
}

// ComputeTableCardinality translates tableCol into the sample-column
// space via the inline column map built at construction and delegates
// to ComputeSampleCardinality. A variable-length or otherwise
// untranslatable column is optimizer misuse, not a hard failure: it
// is logged and returns 0 rather than erroring (spec.md §7, §8
// invariant 5).
func (t *DataTable) ComputeTableCardinality(tableCol int) uint64 {
	t.sampleMu.Lock()
	sampleCol, ok := t.inlineColumnMap[tableCol]
	if !ok {
		t.sampleMu.Unlock()
		t.log.WithFields(logrus.Fields{"table": t.tableOid, "column": tableCol}).
			Warn("table cardinality requested for a column outside the inline column map")
		return 0
	}
	card := t.computeSampleCardinalityLocked(sampleCol)
	t.sampleMu.Unlock()
	return card
}

// GetTableCardinality returns the cardinality cached by the most
// recent ComputeTableCardinality/ComputeSampleCardinality call for
// tableCol without ever triggering a computation itself. It returns 0
// if tableCol is variable-length, was never sampled, or its
// cardinality has not yet been computed (spec.md §6, mirroring the
// original's read-only GetSampleCardinality/GetTableCardinality pair).
func (t *DataTable) GetTableCardinality(tableCol int) uint64 {
	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()
	sampleCol, ok := t.inlineColumnMap[tableCol]
	if !ok || t.cardinalityCache == nil {
		return 0
	}
	return t.cardinalityCache[sampleCol]
}

// ApproxTableCardinality returns a HyperLogLog estimate of the number
// of distinct values column col takes across the whole live table
// (spec.md §4.7). Unlike the exact sample-restricted functions above,
// this scans every visible row of the table itself, and it does so on
// every call: the per-column sketch is kept across calls, and
// re-inserting values it has already seen does not change its
// estimate.
func (t *DataTable) ApproxTableCardinality(col int) (uint64, error) {
	if !t.schema.GetColumn(col).Type.Inlined() {
		return 0, ErrColumnNotInlined
	}
	t.sampleMu.Lock()
	if t.sketches == nil {
		t.sketches = make(map[int]*hyperloglog.Sketch)
	}
	sk, ok := t.sketches[col]
	if !ok {
		sk = hyperloglog.New()
		t.sketches[col] = sk
	}
	t.sampleMu.Unlock()

	groupCount := t.TileGroupCount()
	for offset := 0; offset < groupCount; offset++ {
		group, err := t.TileGroupAt(offset)
		if err != nil {
			return 0, err
		}
		n := group.Header().NextTupleSlot()
		for slot := uint32(0); slot < n; slot++ {
			if !t.visibility.IsVisible(group.Header(), slot) {
				continue
			}
			sk.Insert([]byte(encodeKey([]Value{group.GetValue(slot, col)})))
		}
	}

	t.sampleMu.Lock()
	defer t.sampleMu.Unlock()
	return sk.Estimate(), nil
}
