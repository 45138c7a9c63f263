package storage

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/apoms/peloton-opt/pkg/config"
)

// DataTable is a table's storage core: an ordered, append-only list of
// tile-group ids sharing one Schema, plus the indexes, foreign keys
// and workload-tracking state layered over them (spec.md §3, §4.2,
// §4.3). Every tile group it references is looked up through the
// Catalog rather than held by pointer, so the catalog remains the
// single owner of tile-group lifetime.
type DataTable struct {
	dbOid    uint64
	tableOid uint64
	schema   *Schema
	catalog  Catalog
	policy   config.TableLayoutPolicy
	log      *logrus.Logger

	mu               sync.Mutex // table_mutex: guards tileGroups, indexes, foreignKeys, defaultPartition
	tileGroups       []uint64
	indexes          []*Index
	foreignKeys      []ForeignKey
	defaultPartition *ColumnMap

	visibility VisibilityChecker
	sampler    RowSampler
	clusterer  Clusterer

	countMu          sync.Mutex // guards approxTupleCount only; exact/dirty are atomic
	approxTupleCount float64
	exactTupleCount  uint64 // atomic
	dirty            int32  // atomic bool

	sampleMu sync.Mutex // sample_mutex: guards the embedded sampleState (sample, sample tile group id, cardinality cache, sketches)
	sampleState

	inlineColumnMap map[int]int // table column id -> sample column id, built once, inlined columns only
	sampleColumns   []int       // sample column id -> table column id

	clusteringMu sync.Mutex // clustering_mutex: serializes ProcessSample/Partitioning calls
}

// Option configures a DataTable at construction time.
type Option func(*DataTable)

// WithPolicy overrides the default layout policy.
func WithPolicy(p config.TableLayoutPolicy) Option {
	return func(t *DataTable) { t.policy = p }
}

// WithVisibilityChecker installs the transaction manager's visibility
// contract. Defaults to AlwaysVisible.
func WithVisibilityChecker(v VisibilityChecker) Option {
	return func(t *DataTable) { t.visibility = v }
}

// WithRowSampler installs the PRNG used by SampleRows. Defaults to a
// MathRandSampler with the fixed seed 1.
func WithRowSampler(s RowSampler) Option {
	return func(t *DataTable) { t.sampler = s }
}

// WithClusterer installs the workload-driven layout advisor's
// collaborator. Defaults to a fresh HeuristicClusterer.
func WithClusterer(c Clusterer) Option {
	return func(t *DataTable) { t.clusterer = c }
}

// WithLogger overrides the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(t *DataTable) { t.log = l }
}

// NewDataTable constructs a table over schema and seeds it with one
// tile group, so a table is never empty of storage (spec.md §4.2).
func NewDataTable(dbOid, tableOid uint64, schema *Schema, catalog Catalog, opts ...Option) (*DataTable, error) {
	t := &DataTable{
		dbOid:            dbOid,
		tableOid:         tableOid,
		schema:           schema,
		catalog:          catalog,
		policy:           config.DefaultPolicy(),
		visibility:       AlwaysVisible{},
		clusterer:        NewHeuristicClusterer(),
		log:              logrus.StandardLogger(),
		defaultPartition: RowColumnMap(schema.ColumnCount()),
	}
	t.inlineColumnMap, t.sampleColumns = buildInlineColumnMap(schema)
	for _, opt := range opts {
		opt(t)
	}
	if t.sampler == nil {
		t.sampler = NewMathRandSampler(1)
	}
	if _, err := t.AddDefaultTileGroup(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *DataTable) DBOid() uint64    { return t.dbOid }
func (t *DataTable) TableOid() uint64 { return t.tableOid }
func (t *DataTable) Schema() *Schema  { return t.schema }

// AddIndex registers ix. All future InsertTuple calls fan out to it.
func (t *DataTable) AddIndex(ix *Index) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.indexes = append(t.indexes, ix)
}

// Indexes returns the table's registered indexes.
func (t *DataTable) Indexes() []*Index {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Index(nil), t.indexes...)
}

// AddForeignKey registers fk's metadata. Storage never validates it.
func (t *DataTable) AddForeignKey(fk ForeignKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.foreignKeys = append(t.foreignKeys, fk)
}

// ForeignKeys returns the table's registered foreign keys.
func (t *DataTable) ForeignKeys() []ForeignKey {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]ForeignKey(nil), t.foreignKeys...)
}

func (t *DataTable) checkNulls(tuple []Value) error {
	for i, c := range t.schema.Columns {
		if tuple[i].IsNull && !c.Nullable {
			t.log.WithFields(logrus.Fields{"table": t.tableOid, "column": c.Name}).
				Debug("not null constraint violated")
			return ErrConstraintViolation
		}
	}
	return nil
}

// checkConstraints runs every per-row constraint check. Cross-table
// foreign key validation is a non-goal (spec.md §1); only NOT NULL is
// enforced here.
func (t *DataTable) checkConstraints(tuple []Value) error {
	return t.checkNulls(tuple)
}

// TileGroupCount returns the number of tile groups this table owns.
func (t *DataTable) TileGroupCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tileGroups)
}

// TileGroupIDAt returns the tile-group id at offset in insertion order.
func (t *DataTable) TileGroupIDAt(offset int) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if offset < 0 || offset >= len(t.tileGroups) {
		return InvalidOid, ErrInvalidTileGroupOffset
	}
	return t.tileGroups[offset], nil
}

// TileGroupAt resolves the tile group at offset through the catalog.
func (t *DataTable) TileGroupAt(offset int) (*TileGroup, error) {
	id, err := t.TileGroupIDAt(offset)
	if err != nil {
		return nil, err
	}
	g, ok := t.catalog.GetTileGroup(id)
	if !ok {
		return nil, ErrTileGroupNotFound
	}
	return g, nil
}

// GetTileGroupLayout decides the column map a fresh tile group should
// use under mode. Hybrid delegates to the table's current
// defaultPartition once the column count clears the policy's
// threshold, so a table starts row-major and only pays for column
// splitting once clustering has actually run (spec.md §4.2, §9).
func (t *DataTable) GetTileGroupLayout(mode config.LayoutMode) (*ColumnMap, error) {
	colCount := t.schema.ColumnCount()
	switch mode {
	case config.LayoutRow:
		return RowColumnMap(colCount), nil
	case config.LayoutColumn:
		return ColumnColumnMap(colCount), nil
	case config.LayoutHybrid:
		if colCount < t.policy.HybridColumnThreshold {
			return RowColumnMap(colCount), nil
		}
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.defaultPartition, nil
	default:
		return nil, ErrUnknownLayoutMode
	}
}

// AddDefaultTileGroup appends a fresh tile group laid out per the
// table's policy, unless another caller already added one that still
// has room — in which case it is a no-op and returns InvalidOid, nil
// (spec.md §4.2's race-tolerant contract). The candidate group is
// built ahead of the lock (allocation never needs table_mutex), but
// the "is the last group actually full" check and the append that
// follows it are performed under one held table_mutex acquisition, so
// two goroutines racing on the same full last group can never both
// pass the check and both append (spec.md §4.2, §8 boundary
// "inserting into a full group triggers exactly one new-group
// append").
func (t *DataTable) AddDefaultTileGroup() (uint64, error) {
	columnMap, err := t.GetTileGroupLayout(t.policy.Mode)
	if err != nil {
		return InvalidOid, err
	}
	id := t.catalog.NextOid()
	group := NewTileGroup(id, t.tableOid, t.schema, columnMap, int(t.policy.TuplesPerTileGroup))

	t.mu.Lock()
	if n := len(t.tileGroups); n > 0 {
		lastID := t.tileGroups[n-1]
		if last, ok := t.catalog.GetTileGroup(lastID); ok {
			if last.Header().NextTupleSlot() < uint32(last.Capacity()) {
				t.mu.Unlock()
				return InvalidOid, nil
			}
		}
	}
	t.catalog.AddTileGroup(id, group)
	t.tileGroups = append(t.tileGroups, id)
	t.mu.Unlock()

	t.log.WithFields(logrus.Fields{"table": t.tableOid, "tile_group": id}).Debug("added default tile group")
	return id, nil
}

// AddTileGroupWithOid unconditionally appends a new, unpartitioned
// (row-major) tile group under a caller-supplied id, bypassing the
// race check AddDefaultTileGroup performs. Used during recovery, where
// tile-group ids are replayed rather than freshly minted.
func (t *DataTable) AddTileGroupWithOid(id uint64) uint64 {
	columnMap := RowColumnMap(t.schema.ColumnCount())
	group := NewTileGroup(id, t.tableOid, t.schema, columnMap, int(t.policy.TuplesPerTileGroup))
	t.catalog.AddTileGroup(id, group)

	t.mu.Lock()
	t.tileGroups = append(t.tileGroups, id)
	t.mu.Unlock()
	return id
}

// GetTupleSlot reserves a slot for tuple, adding tile groups as
// needed, and optionally checks constraints first. It never blocks
// indefinitely: each retry either lands a slot or observes that
// another goroutine already grew the table, in which case the next
// iteration's Insert call is against a group with room.
func (t *DataTable) GetTupleSlot(tuple []Value, checkConstraints bool) (ItemPointer, error) {
	if checkConstraints {
		if err := t.checkConstraints(tuple); err != nil {
			return InvalidItemPointer, err
		}
	}
	for {
		t.mu.Lock()
		n := len(t.tileGroups)
		lastID := t.tileGroups[n-1]
		t.mu.Unlock()

		group, ok := t.catalog.GetTileGroup(lastID)
		if !ok {
			return InvalidItemPointer, ErrTileGroupNotFound
		}
		if slot, ok := group.Insert(tuple); ok {
			return ItemPointer{TileGroupID: lastID, Slot: slot}, nil
		}
		if _, err := t.AddDefaultTileGroup(); err != nil {
			return InvalidItemPointer, err
		}
	}
}

func (t *DataTable) insertInIndexes(tuple []Value, loc ItemPointer) error {
	for _, ix := range t.Indexes() {
		if err := ix.InsertEntry(tuple, loc); err != nil {
			return err
		}
	}
	return nil
}

// insertInSecondaryIndexes fans out to every non-primary, non-unique
// index. Primary/unique visibility belongs to the transaction manager
// (spec.md §9), so version-chain inserts skip those indexes entirely.
func (t *DataTable) insertInSecondaryIndexes(tuple []Value, loc ItemPointer) error {
	for _, ix := range t.Indexes() {
		if ix.Type == IndexPrimaryKey || ix.Type == IndexUnique {
			continue
		}
		if err := ix.InsertEntry(tuple, loc); err != nil {
			return err
		}
	}
	return nil
}

// InsertTuple checks constraints, reserves a slot, fans the tuple out
// to every index, and bumps the tuple counters.
func (t *DataTable) InsertTuple(tuple []Value) (ItemPointer, error) {
	loc, err := t.GetTupleSlot(tuple, true)
	if err != nil {
		return InvalidItemPointer, err
	}
	if err := t.insertInIndexes(tuple, loc); err != nil {
		return InvalidItemPointer, err
	}
	t.increaseTupleCount(1)
	return loc, nil
}

// InsertEmptyVersion reserves a slot for an MVCC placeholder version
// without checking constraints, fanning out only to secondary indexes.
// Used by higher-level update paths that install the real values via a
// later InsertVersion.
func (t *DataTable) InsertEmptyVersion(tuple []Value) (ItemPointer, error) {
	loc, err := t.GetTupleSlot(tuple, false)
	if err != nil {
		return InvalidItemPointer, err
	}
	if err := t.insertInSecondaryIndexes(tuple, loc); err != nil {
		return InvalidItemPointer, err
	}
	t.increaseTupleCount(1)
	return loc, nil
}

// InsertVersion reserves a slot for a new MVCC version, checking
// constraints but fanning out only to secondary indexes — the primary
// key already points at the version chain's head.
func (t *DataTable) InsertVersion(tuple []Value) (ItemPointer, error) {
	loc, err := t.GetTupleSlot(tuple, true)
	if err != nil {
		return InvalidItemPointer, err
	}
	if err := t.insertInSecondaryIndexes(tuple, loc); err != nil {
		return InvalidItemPointer, err
	}
	t.increaseTupleCount(1)
	return loc, nil
}

func (t *DataTable) increaseTupleCount(n float64) {
	t.countMu.Lock()
	t.approxTupleCount += n
	t.countMu.Unlock()
	atomic.AddUint64(&t.exactTupleCount, uint64(n))
	atomic.StoreInt32(&t.dirty, 1)
}

// IncreaseNumberOfTuplesBy adjusts the approximate tuple count, e.g.
// after a bulk load whose exact count is tracked elsewhere.
func (t *DataTable) IncreaseNumberOfTuplesBy(amount float64) {
	t.countMu.Lock()
	t.approxTupleCount += amount
	t.countMu.Unlock()
	atomic.StoreInt32(&t.dirty, 1)
}

// DecreaseNumberOfTuplesBy adjusts the approximate tuple count downward.
func (t *DataTable) DecreaseNumberOfTuplesBy(amount float64) {
	t.IncreaseNumberOfTuplesBy(-amount)
}

// SetNumberOfTuples overwrites the approximate tuple count outright.
func (t *DataTable) SetNumberOfTuples(n float64) {
	t.countMu.Lock()
	t.approxTupleCount = n
	t.countMu.Unlock()
	atomic.StoreInt32(&t.dirty, 1)
}

// ApproximateTupleCount returns the table's approximate row count.
func (t *DataTable) ApproximateTupleCount() float64 {
	t.countMu.Lock()
	defer t.countMu.Unlock()
	return t.approxTupleCount
}

// ExactTupleCount returns the number of rows actually inserted through
// this DataTable instance (does not survive process restart).
func (t *DataTable) ExactTupleCount() uint64 {
	return atomic.LoadUint64(&t.exactTupleCount)
}

// IsDirty reports whether the tuple count has changed since the last
// ResetDirty, signaling that cached statistics are stale.
func (t *DataTable) IsDirty() bool {
	return atomic.LoadInt32(&t.dirty) != 0
}

// ResetDirty clears the dirty flag, typically after statistics have
// been recomputed.
func (t *DataTable) ResetDirty() {
	atomic.StoreInt32(&t.dirty, 0)
}

// RecordSample hands a workload observation to the clusterer under
// clustering_mutex, matching spec.md §5's serialization of accumulator
// access.
func (t *DataTable) RecordSample(s Sample) {
	t.clusteringMu.Lock()
	defer t.clusteringMu.Unlock()
	t.clusterer.ProcessSample(s)
}

// UpdateDefaultPartition asks the clusterer for a fresh partitioning
// and installs it as the table's default for future hybrid tile
// groups. It does not retroactively rewrite existing tile groups; call
// TransformTileGroup for that.
func (t *DataTable) UpdateDefaultPartition() *ColumnMap {
	t.clusteringMu.Lock()
	partition := t.clusterer.Partitioning(t.policy.MaxClusteringTileCount, t.schema.ColumnCount())
	t.clusteringMu.Unlock()

	t.mu.Lock()
	t.defaultPartition = partition
	t.mu.Unlock()
	return partition
}

// DefaultPartition returns the table's current default column map for
// hybrid-mode tile groups.
func (t *DataTable) DefaultPartition() *ColumnMap {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.defaultPartition
}
