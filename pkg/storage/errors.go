package storage

import "errors"

var (
	// ErrConstraintViolation is returned by InsertTuple/InsertVersion
	// when a NOT NULL column holds a null value.
	ErrConstraintViolation = errors.New("storage: not null constraint violated")

	// ErrInvalidTileGroupOffset is returned when an offset does not
	// index into a table's tile-group list.
	ErrInvalidTileGroupOffset = errors.New("storage: tile group offset out of range")

	// ErrUnknownLayoutMode is returned by GetTileGroupLayout for an
	// unrecognized LayoutMode.
	ErrUnknownLayoutMode = errors.New("storage: unknown tile group layout mode")

	// ErrColumnMapInvalid is returned when a column map fails the
	// bijection/density validation in NewColumnMap.
	ErrColumnMapInvalid = errors.New("storage: column map is not a valid bijection")

	// ErrTileGroupNotFound is returned by a Catalog lookup miss.
	ErrTileGroupNotFound = errors.New("storage: tile group not found in catalog")

	// ErrIndexEntryExists is available to IndexImpl implementations
	// that reject a duplicate key insert. MapIndex accepts duplicates
	// and never returns it.
	ErrIndexEntryExists = errors.New("storage: index entry already exists")

	// ErrAllocationFailed is returned by MaterializeSample when a slot
	// cannot be reserved in the sample tile group it is filling.
	ErrAllocationFailed = errors.New("storage: failed to allocate backing storage")

	// ErrColumnNotInlined is returned when a cardinality computation is
	// asked to cover a varchar column, which the sampling path never
	// maps (spec.md §4.4's "inline-column map built at table
	// construction").
	ErrColumnNotInlined = errors.New("storage: column is not inlined and cannot be sampled")
)
