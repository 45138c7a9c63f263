// Package storage implements the table storage core of a hybrid
// row/column relational database: tile-group layout, in-place tuple
// insertion, online layout transformation, and the sampling path
// consumed by a query optimizer's statistics collector.
package storage

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Kind enumerates the value kinds a Column can carry. Only Varchar is
// variable-width; every other kind is inlined and therefore eligible
// for sampling and cardinality estimation.
type Kind uint8

const (
	KindInt64 Kind = iota
	KindFloat64
	KindBool
	KindVarchar
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindVarchar:
		return "varchar"
	default:
		return "unknown"
	}
}

// Inlined reports whether values of this kind are fixed-width and thus
// eligible for columnar sampling (see ColumnType.Inlined).
func (k Kind) Inlined() bool {
	return k != KindVarchar
}

// ColumnType describes the physical representation of a column.
type ColumnType struct {
	Kind Kind
}

// Inlined reports whether the column is fixed-width.
func (t ColumnType) Inlined() bool {
	return t.Kind.Inlined()
}

// Value is a single cell. Exactly one of the typed fields is
// meaningful, selected by Kind; IsNull overrides all of them.
type Value struct {
	Kind    Kind
	IsNull  bool
	I64     int64
	F64     float64
	Bool    bool
	Varchar string
}

// NullValue returns a null value of the given kind.
func NullValue(k Kind) Value {
	return Value{Kind: k, IsNull: true}
}

func IntValue(v int64) Value      { return Value{Kind: KindInt64, I64: v} }
func FloatValue(v float64) Value  { return Value{Kind: KindFloat64, F64: v} }
func BoolValue(v bool) Value      { return Value{Kind: KindBool, Bool: v} }
func VarcharValue(v string) Value { return Value{Kind: KindVarchar, Varchar: v} }

// Encode produces a stable byte representation used for hashing and
// equality during cardinality estimation. It is not a wire format.
func (v Value) Encode() []byte {
	if v.IsNull {
		return []byte{0xff}
	}
	switch v.Kind {
	case KindInt64:
		buf := make([]byte, 9)
		buf[0] = byte(v.Kind)
		binary.BigEndian.PutUint64(buf[1:], uint64(v.I64))
		return buf
	case KindFloat64:
		buf := make([]byte, 9)
		buf[0] = byte(v.Kind)
		binary.BigEndian.PutUint64(buf[1:], math.Float64bits(v.F64))
		return buf
	case KindBool:
		b := byte(0)
		if v.Bool {
			b = 1
		}
		return []byte{byte(v.Kind), b}
	case KindVarchar:
		buf := make([]byte, 0, len(v.Varchar)+1)
		buf = append(buf, byte(v.Kind))
		buf = append(buf, v.Varchar...)
		return buf
	default:
		return []byte{byte(v.Kind)}
	}
}

func (v Value) String() string {
	if v.IsNull {
		return "NULL"
	}
	switch v.Kind {
	case KindInt64:
		return fmt.Sprintf("%d", v.I64)
	case KindFloat64:
		return fmt.Sprintf("%g", v.F64)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindVarchar:
		return v.Varchar
	default:
		return "?"
	}
}

// fnv1aHash hashes the value's encoded bytes with FNV-1a, matching the
// original's "hash the column's values with a fixed non-cryptographic
// hash" requirement (spec.md §4.4).
func fnv1aHash(b []byte) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}
