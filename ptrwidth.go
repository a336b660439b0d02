package numconv

import "math/bits"

// PointerWidth is the build target's pointer width in bits. The matrix
// supports 16-, 32- and 64-bit targets; each width activates a different set
// of fallible entries for the pointer-sized kinds.
const PointerWidth = bits.UintSize

// Builds on an unsupported pointer width must fail to compile, not fall back
// to some default table. When the condition below is false both map keys are
// the constant false, which the compiler rejects as a duplicate key.
var _ = map[bool]struct{}{
	false: {},
	PointerWidth == 16 || PointerWidth == 32 || PointerWidth == 64: {},
}

// MatrixEntry is one fallible registration: a pair and its policy.
type MatrixEntry struct {
	Pair   Pair
	Policy Policy
}

// pointerEntries derives the fallible entries between the pointer-sized kinds
// and every fixed-width integer kind for the given pointer width. Both
// directions of every crossing are produced in the same pass, so each width's
// table is internally consistent: a pair is either here or in the lossless
// registry, never absent. Widths other than 16, 32 and 64 are a
// configuration error.
func pointerEntries(width int) []MatrixEntry {
	switch width {
	case 16, 32, 64:
	default:
		panic("numconv: unsupported pointer width")
	}

	var entries []MatrixEntry
	add := func(from, to Kind) {
		p := Pair{From: from, To: to}
		if Lossless(from, to) {
			return
		}
		entries = append(entries, MatrixEntry{
			Pair:   p,
			Policy: derivePolicy(rangeOf(from, width), rangeOf(to, width)),
		})
	}

	for _, ptr := range []Kind{KindUsize, KindIsize} {
		for _, fixed := range fixedIntegers {
			add(ptr, fixed)
			add(fixed, ptr)
		}
	}
	return entries
}
