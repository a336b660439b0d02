package numconv

import (
	"math/bits"
	"reflect"
)

// Signed is the set of built-in signed integer types, including the
// pointer-sized int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of built-in unsigned integer types, including the
// pointer-sized uint. uintptr is deliberately excluded: its width is an
// implementation detail of the runtime, not part of the conversion matrix.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of built-in integer types covered by the matrix.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of built-in binary floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the full numeric type set accepted by the conversion operations.
type Number interface {
	Integer | Float
}

// Kind identifies one scalar type of the closed conversion set. The
// pointer-sized kinds (KindUsize, KindIsize) are distinct from the
// fixed-width kinds even on platforms where their widths coincide.
type Kind int

const (
	_ Kind = iota // zero value reserved as invalid

	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindUsize
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindIsize
	KindF32
	KindF64

	kindTotal = int(iota)
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindU128:
		return "u128"
	case KindUsize:
		return "usize"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindI128:
		return "i128"
	case KindIsize:
		return "isize"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	}
	return "invalid"
}

func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindI8, KindI16, KindI32, KindI64, KindI128, KindIsize:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindU8, KindU16, KindU32, KindU64, KindU128, KindUsize:
		return true
	}
}

func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// Bits reports the width of the kind on the current platform. The
// pointer-sized kinds resolve to the build target's pointer width.
func (k Kind) Bits() int {
	switch k {
	default:
		panic("numconv: no meaningful bit width for kind " + k.String())
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32, KindF32:
		return 32
	case KindU64, KindI64, KindF64:
		return 64
	case KindU128, KindI128:
		return 128
	case KindUsize, KindIsize:
		return bits.UintSize
	}
}

// KindOf resolves a type parameter to its matrix Kind. Named types classify
// by their underlying type, so a `type Port uint16` converts with uint16's
// range.
func KindOf[T Number]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		return KindIsize
	case reflect.Int8:
		return KindI8
	case reflect.Int16:
		return KindI16
	case reflect.Int32:
		return KindI32
	case reflect.Int64:
		return KindI64
	case reflect.Uint:
		return KindUsize
	case reflect.Uint8:
		return KindU8
	case reflect.Uint16:
		return KindU16
	case reflect.Uint32:
		return KindU32
	case reflect.Uint64:
		return KindU64
	case reflect.Float32:
		return KindF32
	case reflect.Float64:
		return KindF64
	}
	return 0
}
