package nonzero

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Station-Manager/numconv"
)

func TestNew(t *testing.T) {
	n, err := New(int8(-5))
	require.NoError(t, err)
	assert.Equal(t, int8(-5), n.Get())
	assert.False(t, n.IsZero())

	_, err = New(int8(0))
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)

	_, err = New(uint64(0))
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)

	m, err := New(uint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), m.Get())
}

func TestMust(t *testing.T) {
	assert.Equal(t, uint16(80), Must(uint16(80)).Get())
	require.Panics(t, func() { Must(uint16(0)) })
}

func TestZeroValueIsInvalid(t *testing.T) {
	var n Int32
	assert.True(t, n.IsZero())
	assert.Equal(t, int32(0), n.Get())
}

func TestAliases(t *testing.T) {
	// the per-width names are aliases, not distinct types
	var n Uint8 = Must(uint8(1))
	var g N[uint8] = n
	assert.Equal(t, n, g)
}

func TestFrom_Widening(t *testing.T) {
	src := Must(uint8(math.MaxUint8))
	dst := From[int16](src)
	assert.Equal(t, int16(255), dst.Get())
	assert.False(t, dst.IsZero())

	neg := Must(int8(math.MinInt8))
	wide := From[int64](neg)
	assert.Equal(t, int64(math.MinInt8), wide.Get())
}

func TestFrom_PanicsOnFalliblePair(t *testing.T) {
	src := Must(int16(1))
	require.Panics(t, func() { From[int8](src) })
}

func TestTryFrom(t *testing.T) {
	src := Must(int32(200))
	dst, err := TryFrom[uint8](src)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), dst.Get())

	big := Must(int32(256))
	_, err = TryFrom[uint8](big)
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)

	neg := Must(int32(-1))
	_, err = TryFrom[uint8](neg)
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}

func TestTryNew(t *testing.T) {
	n, err := TryNew[uint8](int64(200))
	require.NoError(t, err)
	assert.Equal(t, uint8(200), n.Get())

	// range violation reported before the zero check
	_, err = TryNew[uint8](int64(300))
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)

	// in-range zero still rejected
	_, err = TryNew[uint8](int64(0))
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}
