package numconv

import "math"

// IEEE 754 floats represent integers exactly only while they fit in the
// significand: 24 effective bits for float32, 53 for float64. Integer kinds
// whose full range fits below these limits convert to the float losslessly;
// everything wider is excluded from the matrix rather than rounded.
const (
	f32SignificandBits = 24
	f64SignificandBits = 53
)

// intBounds is the representable interval of an integer kind of at most 64
// bits, normalized so one struct covers both signednesses: min is the lowest
// value (0 for unsigned kinds) and umax the highest value as a magnitude.
type intBounds struct {
	min  int64
	umax uint64
}

var kindBounds = [kindTotal]intBounds{
	KindU8:    {0, math.MaxUint8},
	KindU16:   {0, math.MaxUint16},
	KindU32:   {0, math.MaxUint32},
	KindU64:   {0, math.MaxUint64},
	KindUsize: {0, math.MaxUint},
	KindI8:    {math.MinInt8, math.MaxInt8},
	KindI16:   {math.MinInt16, math.MaxInt16},
	KindI32:   {math.MinInt32, math.MaxInt32},
	KindI64:   {math.MinInt64, math.MaxInt64},
	KindIsize: {math.MinInt, math.MaxInt},
}

// intRange describes an integer kind's interval symbolically, so the policy
// for a pair can be derived without materializing 128-bit bounds.
type intRange struct {
	signed bool
	bits   int
}

// rangeOf resolves a kind's interval under an explicit pointer width, which
// lets the pointer-width tables be derived for targets other than the one
// compiling this package.
func rangeOf(k Kind, ptrWidth int) intRange {
	switch k {
	case KindUsize:
		return intRange{signed: false, bits: ptrWidth}
	case KindIsize:
		return intRange{signed: true, bits: ptrWidth}
	default:
		return intRange{signed: k.IsSigned(), bits: k.Bits()}
	}
}

// maxExp is the n for which the range's maximum value equals 2^n - 1.
func (r intRange) maxExp() int {
	if r.signed {
		return r.bits - 1
	}
	return r.bits
}

// coversMin reports whether dst can hold src's minimum value.
func coversMin(dst, src intRange) bool {
	if !src.signed {
		return true // src minimum is 0, every kind holds it
	}
	return dst.signed && dst.bits >= src.bits
}

// coversMax reports whether dst can hold src's maximum value.
func coversMax(dst, src intRange) bool {
	return dst.maxExp() >= src.maxExp()
}
