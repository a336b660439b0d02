package nonzero

import (
	"math"
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Station-Manager/numconv"
)

func TestNewU128(t *testing.T) {
	n, err := NewU128(num.U128From64(1))
	require.NoError(t, err)
	assert.False(t, n.IsZero())
	assert.Equal(t, num.U128From64(1), n.Get())

	_, err = NewU128(num.U128{})
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}

func TestNewI128(t *testing.T) {
	n, err := NewI128(num.I128From64(-1))
	require.NoError(t, err)
	assert.False(t, n.IsZero())

	_, err = NewI128(num.I128{})
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}

func TestU128From_Widening(t *testing.T) {
	src := Must(uint64(math.MaxUint64))
	wide := U128From(src)
	assert.False(t, wide.IsZero())
	assert.Equal(t, num.U128From64(math.MaxUint64), wide.Get())
}

func TestI128From_Widening(t *testing.T) {
	neg := I128From(Must(int64(math.MinInt64)))
	assert.Equal(t, num.I128From64(math.MinInt64), neg.Get())

	// unsigned source keeps its magnitude
	pos := I128From(Must(uint64(math.MaxUint64)))
	assert.True(t, pos.Get().Sign() > 0)
}

func TestTryFromU128_Narrowing(t *testing.T) {
	src, err := NewU128(num.U128From64(200))
	require.NoError(t, err)

	n, err := TryFromU128[uint8](src)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), n.Get())

	big, err := NewU128(num.U128From64(256))
	require.NoError(t, err)
	_, err = TryFromU128[uint8](big)
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}

func TestTryFromI128_Narrowing(t *testing.T) {
	src, err := NewI128(num.I128From64(-5))
	require.NoError(t, err)

	n, err := TryFromI128[int8](src)
	require.NoError(t, err)
	assert.Equal(t, int8(-5), n.Get())

	_, err = TryFromI128[uint8](src)
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}

func TestCrossings(t *testing.T) {
	u, err := NewU128(num.U128From64(42))
	require.NoError(t, err)
	i, err := TryI128FromU128(u)
	require.NoError(t, err)
	assert.Equal(t, num.I128From64(42), i.Get())

	back, err := TryU128FromI128(i)
	require.NoError(t, err)
	assert.Equal(t, u, back)

	neg, err := NewI128(num.I128From64(-1))
	require.NoError(t, err)
	_, err = TryU128FromI128(neg)
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)

	// 2^127 exceeds the signed range
	huge, err := NewU128(num.U128FromRaw(1<<63, 0))
	require.NoError(t, err)
	_, err = TryI128FromU128(huge)
	assert.ErrorIs(t, err, numconv.ErrOutOfRange)
}
