package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEncodeDistinguishesKindsAndValues(t *testing.T) {
	a := IntValue(1).Encode()
	b := IntValue(2).Encode()
	c := FloatValue(1).Encode()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c, "same bit pattern across kinds must not collide")
}

func TestValueEncodeNullIsDistinctFromZero(t *testing.T) {
	null := NullValue(KindInt64).Encode()
	zero := IntValue(0).Encode()
	assert.NotEqual(t, null, zero)
}

func TestValueStringRoundTripsForDisplay(t *testing.T) {
	assert.Equal(t, "NULL", NullValue(KindInt64).String())
	assert.Equal(t, "7", IntValue(7).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "x", VarcharValue("x").String())
}

func TestKindInlined(t *testing.T) {
	assert.True(t, KindInt64.Inlined())
	assert.False(t, KindVarchar.Inlined())
}
