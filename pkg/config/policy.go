// Package config loads the ambient tuning knobs a DataTable is
// constructed with, lifting what spec.md §9 calls "global layout-mode
// state" into an explicit, per-table policy instead of a package
// global.
package config

import "github.com/BurntSushi/toml"

// LayoutMode selects how AddDefaultTileGroup partitions a fresh tile
// group's columns.
type LayoutMode int

const (
	LayoutRow LayoutMode = iota
	LayoutColumn
	LayoutHybrid
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutRow:
		return "row"
	case LayoutColumn:
		return "column"
	case LayoutHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// TableLayoutPolicy bundles the tuning knobs a DataTable needs at
// construction time.
type TableLayoutPolicy struct {
	Mode                   LayoutMode `toml:"-"`
	ModeName               string     `toml:"mode"`
	HybridColumnThreshold  int        `toml:"hybrid_column_threshold"`
	TuplesPerTileGroup     uint32     `toml:"tuples_per_tile_group"`
	SampleRetryRounds      int        `toml:"sample_retry_rounds"`
	MaxClusteringTileCount int        `toml:"max_clustering_tile_count"`
}

// DefaultPolicy returns sensible defaults matching the original's
// literal constants (spec.md §4.2, §4.4, §9).
func DefaultPolicy() TableLayoutPolicy {
	return TableLayoutPolicy{
		Mode:                   LayoutHybrid,
		ModeName:               "hybrid",
		HybridColumnThreshold:  10,
		TuplesPerTileGroup:     1000,
		SampleRetryRounds:      10,
		MaxClusteringTileCount: 4,
	}
}

// LoadPolicy reads a TOML file into a TableLayoutPolicy, starting from
// DefaultPolicy for any field the file omits.
func LoadPolicy(path string) (TableLayoutPolicy, error) {
	p := DefaultPolicy()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return TableLayoutPolicy{}, err
	}
	p.Mode = parseMode(p.ModeName)
	return p, nil
}

func parseMode(name string) LayoutMode {
	switch name {
	case "row":
		return LayoutRow
	case "column":
		return LayoutColumn
	default:
		return LayoutHybrid
	}
}
