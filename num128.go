package numconv

import (
	"math"

	num "github.com/shabbyrobe/go-num"
)

// 128-bit column of the matrix. Go has no native 128-bit integers, so the
// U128/I128 kinds are represented by the value types from
// github.com/shabbyrobe/go-num and get dedicated operations instead of the
// generic ones; the registries still record their pairs, and the policies
// below mirror exactly what the registries derive.

// maxI128AsU128 is 2^127-1 viewed as an unsigned magnitude, the upper bound
// for the u128 -> i128 crossing.
var maxI128AsU128 = num.U128FromRaw(math.MaxInt64, math.MaxUint64)

// U128From widens any unsigned integer to u128. Total for every unsigned
// source: Go guarantees uint is at most 64 bits wide, so the pointer-sized
// source cannot overflow even though the registry books uint -> u128 as a
// (vacuously unbounded) fallible pair for portability.
func U128From[Src Unsigned](v Src) num.U128 {
	return num.U128From64(uint64(v))
}

// I128From widens any integer, signed or unsigned, to i128.
func I128From[Src Integer](v Src) num.I128 {
	if KindOf[Src]().IsUnsigned() {
		// Route through u128 so a full-range uint64 is not misread as
		// negative; the high word stays zero, so the i128 view is exact.
		return num.U128From64(uint64(v)).AsI128()
	}
	return num.I128From64(int64(v))
}

// U128FromBool and I128FromBool complete the bool row for the 128-bit kinds.
func U128FromBool(b bool) num.U128 {
	if b {
		return num.U128From64(1)
	}
	return num.U128{}
}

func I128FromBool(b bool) num.I128 {
	if b {
		return num.I128From64(1)
	}
	return num.I128{}
}

// TryFromU128 narrows a u128 to any integer kind of at most 64 bits. Every
// such pair is upper-bounded: a single comparison against the destination
// maximum.
func TryFromU128[Dst Integer](v num.U128) (Dst, error) {
	b := kindBounds[KindOf[Dst]()]
	if v.Cmp(num.U128From64(b.umax)) > 0 {
		return 0, ErrOutOfRange
	}
	return Dst(v.AsUint64()), nil
}

// TryFromI128 narrows an i128 to any integer kind of at most 64 bits.
// Unsigned destinations check sign then magnitude; signed destinations check
// both interval ends.
func TryFromI128[Dst Integer](v num.I128) (Dst, error) {
	b := kindBounds[KindOf[Dst]()]
	if KindOf[Dst]().IsUnsigned() {
		if v.Sign() < 0 {
			return 0, ErrOutOfRange
		}
		u := v.AsU128()
		if u.Cmp(num.U128From64(b.umax)) > 0 {
			return 0, ErrOutOfRange
		}
		return Dst(u.AsUint64()), nil
	}
	if v.Cmp(num.I128From64(b.min)) < 0 || v.Cmp(num.I128From64(int64(b.umax))) > 0 {
		return 0, ErrOutOfRange
	}
	return Dst(v.AsInt64()), nil
}

// TryI128FromU128 is the u128 -> i128 crossing, upper-bounded at 2^127-1.
func TryI128FromU128(v num.U128) (num.I128, error) {
	if v.Cmp(maxI128AsU128) > 0 {
		return num.I128{}, ErrOutOfRange
	}
	return v.AsI128(), nil
}

// TryU128FromI128 is the i128 -> u128 crossing, lower-bounded at zero.
func TryU128FromI128(v num.I128) (num.U128, error) {
	if v.Sign() < 0 {
		return num.U128{}, ErrOutOfRange
	}
	return v.AsU128(), nil
}
