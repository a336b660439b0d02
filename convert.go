package numconv

import "fmt"

// Conversion operations as top-level generic functions (methods cannot have
// type parameters). From/Into execute lossless entries, TryFrom/TryInto
// fallible ones; Into and TryInto are the argument-order conveniences derived
// from their counterparts and carry no registry state of their own.

// From converts v to Dst for pairs registered lossless and for the reflexive
// case. It is total: a registered pair can never fail at runtime. Calling it
// for any other pair is a programming error and panics; use TryFrom for
// pairs that need a bounds check.
func From[Dst, Src Number](v Src) Dst {
	src, dst := KindOf[Src](), KindOf[Dst]()
	switch classTable[src][dst].class {
	case ClassReflexive, ClassLossless:
		return Dst(v)
	case ClassFallible:
		panic("numconv: conversion " + src.String() + "->" + dst.String() + " is fallible, use TryFrom")
	default:
		panic("numconv: no conversion " + src.String() + "->" + dst.String())
	}
}

// Into is From expressed from the source value's perspective.
func Into[Dst, Src Number](v Src) Dst {
	return From[Dst](v)
}

// FromBool converts a bool to any numeric kind: 0 for false, 1 for true
// (positive zero for float destinations). The type-set constraints cannot
// mix bool with the numeric kinds in a single signature, so the bool column
// of the lossless registry is exposed as its own operation.
func FromBool[Dst Number](b bool) Dst {
	if b {
		return 1
	}
	return 0
}

// TryFrom converts v to Dst, validating the value against Dst's representable
// interval with exactly the comparisons the registered policy requires.
// Pairs registered lossless (and the reflexive case) succeed unconditionally.
// Pairs outside the matrix - the deliberately excluded lossy float
// conversions - panic: absence from the matrix is a contract, not a runtime
// condition.
func TryFrom[Dst, Src Number](v Src) (Dst, error) {
	src, dst := KindOf[Src](), KindOf[Dst]()
	entry := classTable[src][dst]
	switch entry.class {
	case ClassReflexive, ClassLossless:
		return Dst(v), nil
	case ClassFallible:
	default:
		panic("numconv: no conversion " + src.String() + "->" + dst.String())
	}

	b := kindBounds[dst]
	switch entry.policy {
	case PolicyUnbounded:
		// Fallible only for a pointer width this build does not have.
		return Dst(v), nil
	case PolicyLowerBounded:
		if v < 0 {
			return 0, ErrOutOfRange
		}
		return Dst(v), nil
	case PolicyUpperBounded:
		// Upper-bounded sources are unsigned throughout the matrix, so the
		// magnitude comparison is exact.
		if uint64(v) > b.umax {
			return 0, ErrOutOfRange
		}
		return Dst(v), nil
	default: // PolicyBothBounded
		// Both-bounded sources are signed and strictly wider than the
		// destination, so the destination bounds are representable in int64.
		if int64(v) < b.min || int64(v) > int64(b.umax) {
			return 0, ErrOutOfRange
		}
		return Dst(v), nil
	}
}

// TryInto is TryFrom expressed from the source value's perspective.
func TryInto[Dst, Src Number](v Src) (Dst, error) {
	return TryFrom[Dst](v)
}

// Must is TryFrom for values the caller guarantees are in range; it panics
// on a range violation instead of returning it.
func Must[Dst, Src Number](v Src) Dst {
	d, err := TryFrom[Dst](v)
	if err != nil {
		panic(fmt.Sprintf("numconv: %v does not fit %s", v, KindOf[Dst]()))
	}
	return d
}
