package storage

import "fmt"

// Column describes one logical column of a Schema.
type Column struct {
	Name     string
	Idx      int
	Type     ColumnType
	Nullable bool
}

// Schema is an ordered, immutable-after-build list of Columns.
type Schema struct {
	Columns   []Column
	nameIndex map[string]int
}

// NewSchema builds a Schema from an ordered column list, assigning Idx
// to each column's position. The column count is fixed thereafter.
func NewSchema(columns []Column) *Schema {
	s := &Schema{
		Columns:   make([]Column, len(columns)),
		nameIndex: make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		c.Idx = i
		s.Columns[i] = c
		s.nameIndex[c.Name] = i
	}
	return s
}

// ColumnCount returns the number of columns in the schema.
func (s *Schema) ColumnCount() int {
	return len(s.Columns)
}

// GetColumn returns the column at the given logical offset.
func (s *Schema) GetColumn(idx int) Column {
	return s.Columns[idx]
}

// GetColIdx returns the column index for a name, or -1 if absent.
func (s *Schema) GetColIdx(name string) int {
	idx, ok := s.nameIndex[name]
	if !ok {
		return -1
	}
	return idx
}

// AllowNull reports whether the column at idx accepts NULL.
func (s *Schema) AllowNull(idx int) bool {
	return s.Columns[idx].Nullable
}

// Valid reports whether the schema's column indices and names form a
// bijection: dense indices, no duplicate names.
func (s *Schema) Valid() bool {
	if s == nil || len(s.Columns) == 0 {
		return false
	}
	seen := make(map[string]bool, len(s.Columns))
	for i, c := range s.Columns {
		if c.Idx != i {
			return false
		}
		if seen[c.Name] {
			return false
		}
		seen[c.Name] = true
	}
	return true
}

// String renders a compact debug representation.
func (s *Schema) String() string {
	if s == nil {
		return "<nil schema>"
	}
	out := fmt.Sprintf("Schema[%d]{", len(s.Columns))
	for i, c := range s.Columns {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s:%s", c.Name, c.Type.Kind)
	}
	return out + "}"
}

// Slice returns the sub-schema for the given logical column ids, in
// the order given. Used to build a Tile's schema fragment from a
// column map bucket.
func (s *Schema) Slice(idxs []int) *Schema {
	cols := make([]Column, len(idxs))
	for i, idx := range idxs {
		c := s.Columns[idx]
		c.Idx = i
		cols[i] = c
	}
	return NewSchema(cols)
}
