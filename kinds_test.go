package numconv

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindU8, KindOf[uint8]())
	assert.Equal(t, KindU16, KindOf[uint16]())
	assert.Equal(t, KindU32, KindOf[uint32]())
	assert.Equal(t, KindU64, KindOf[uint64]())
	assert.Equal(t, KindUsize, KindOf[uint]())
	assert.Equal(t, KindI8, KindOf[int8]())
	assert.Equal(t, KindI16, KindOf[int16]())
	assert.Equal(t, KindI32, KindOf[int32]())
	assert.Equal(t, KindI64, KindOf[int64]())
	assert.Equal(t, KindIsize, KindOf[int]())
	assert.Equal(t, KindF32, KindOf[float32]())
	assert.Equal(t, KindF64, KindOf[float64]())
}

func TestKindOf_NamedAndAliasTypes(t *testing.T) {
	type Celsius float64
	type Count uint

	assert.Equal(t, KindF64, KindOf[Celsius]())
	assert.Equal(t, KindUsize, KindOf[Count]())

	// byte and rune are aliases, not named types
	assert.Equal(t, KindU8, KindOf[byte]())
	assert.Equal(t, KindI32, KindOf[rune]())
}

func TestKind_Predicates(t *testing.T) {
	for _, k := range []Kind{KindU8, KindU16, KindU32, KindU64, KindU128, KindUsize} {
		assert.True(t, k.IsUnsigned(), "%s", k)
		assert.True(t, k.IsInteger(), "%s", k)
		assert.False(t, k.IsSigned(), "%s", k)
		assert.False(t, k.IsFloat(), "%s", k)
	}
	for _, k := range []Kind{KindI8, KindI16, KindI32, KindI64, KindI128, KindIsize} {
		assert.True(t, k.IsSigned(), "%s", k)
		assert.True(t, k.IsInteger(), "%s", k)
		assert.False(t, k.IsUnsigned(), "%s", k)
	}
	for _, k := range []Kind{KindF32, KindF64} {
		assert.True(t, k.IsFloat(), "%s", k)
		assert.False(t, k.IsInteger(), "%s", k)
	}
	assert.False(t, KindBool.IsInteger())
	assert.False(t, KindBool.IsFloat())
}

func TestKind_Bits(t *testing.T) {
	assert.Equal(t, 8, KindU8.Bits())
	assert.Equal(t, 8, KindI8.Bits())
	assert.Equal(t, 16, KindI16.Bits())
	assert.Equal(t, 32, KindU32.Bits())
	assert.Equal(t, 32, KindF32.Bits())
	assert.Equal(t, 64, KindU64.Bits())
	assert.Equal(t, 64, KindF64.Bits())
	assert.Equal(t, 128, KindU128.Bits())
	assert.Equal(t, 128, KindI128.Bits())
	assert.Equal(t, bits.UintSize, KindUsize.Bits())
	assert.Equal(t, bits.UintSize, KindIsize.Bits())

	require.Panics(t, func() { KindBool.Bits() })
	require.Panics(t, func() { Kind(0).Bits() })
}

func TestKind_String(t *testing.T) {
	names := map[Kind]string{
		KindBool: "bool", KindU8: "u8", KindU128: "u128", KindUsize: "usize",
		KindI8: "i8", KindI128: "i128", KindIsize: "isize",
		KindF32: "f32", KindF64: "f64",
	}
	for k, want := range names {
		assert.Equal(t, want, k.String())
	}
	assert.Equal(t, "invalid", Kind(0).String())
	assert.Equal(t, "invalid", Kind(kindTotal).String())
}
