package numconv

// The conversion matrix. Registration order matters only in one place: the
// pointer-width entries skip pairs that are already lossless, so the lossless
// registry must be complete first.

var (
	fixedUnsigned = [...]Kind{KindU8, KindU16, KindU32, KindU64, KindU128}
	fixedSigned   = [...]Kind{KindI8, KindI16, KindI32, KindI64, KindI128}

	fixedIntegers = [...]Kind{
		KindU8, KindU16, KindU32, KindU64, KindU128,
		KindI8, KindI16, KindI32, KindI64, KindI128,
	}

	allIntegers = [...]Kind{
		KindU8, KindU16, KindU32, KindU64, KindU128, KindUsize,
		KindI8, KindI16, KindI32, KindI64, KindI128, KindIsize,
	}
)

func init() {
	registerBoolEntries()
	registerWidenings()
	registerFloatEntries()
	registerPointerLossless()
	registerNarrowings()
	registerFixedPointerCrossings()
	finalizeMatrix()
}

// bool converts losslessly into every integer and float kind (false -> 0,
// true -> 1); nothing converts into bool.
func registerBoolEntries() {
	for _, k := range allIntegers {
		registerLossless(KindBool, k)
	}
	registerLossless(KindBool, KindF32)
	registerLossless(KindBool, KindF64)
}

// Same-signedness widenings plus unsigned into strictly wider signed.
func registerWidenings() {
	for _, s := range fixedUnsigned {
		for _, d := range fixedUnsigned {
			if d.Bits() > s.Bits() {
				registerLossless(s, d)
			}
		}
	}
	for _, s := range fixedSigned {
		for _, d := range fixedSigned {
			if d.Bits() > s.Bits() {
				registerLossless(s, d)
			}
		}
	}
	for _, s := range fixedUnsigned {
		for _, d := range fixedSigned {
			if d.Bits() > s.Bits() {
				registerLossless(s, d)
			}
		}
	}
}

// Integer kinds whose entire range fits the float significand convert
// losslessly; wider integers are excluded from the matrix altogether rather
// than rounded. Pointer-sized kinds never convert to float: their width is
// not portable.
func registerFloatEntries() {
	narrow := []Kind{KindU8, KindU16, KindU32, KindI8, KindI16, KindI32}
	for _, s := range narrow {
		r := rangeOf(s, PointerWidth)
		if r.maxExp() <= f32SignificandBits {
			registerLossless(s, KindF32)
		}
		if r.maxExp() <= f64SignificandBits {
			registerLossless(s, KindF64)
		}
	}
	registerLossless(KindF32, KindF64)
}

// Only conversions safe under the minimum standardized pointer width (16
// bits, per C99's bounds on INTPTR_MIN/INTPTR_MAX/UINTPTR_MAX) are lossless
// into the pointer-sized kinds. Everything wider goes through the fallible
// registry with a width-dependent policy.
func registerPointerLossless() {
	registerLossless(KindU8, KindUsize)
	registerLossless(KindU16, KindUsize)
	registerLossless(KindU8, KindIsize)
	registerLossless(KindI8, KindIsize)
	registerLossless(KindI16, KindIsize)
}

// Every ordered fixed-width integer pair not covered by the lossless registry
// gets exactly one fallible entry, with the policy derived from the static
// ranges.
func registerNarrowings() {
	for _, s := range fixedIntegers {
		for _, d := range fixedIntegers {
			if s == d {
				continue
			}
			if Lossless(s, d) {
				continue
			}
			registerFallible(s, d, derivePolicy(rangeOf(s, PointerWidth), rangeOf(d, PointerWidth)))
		}
	}
}

// Pointer-sized entries: the two width-independent pairs between the
// pointer-sized kinds themselves, then the width-dependent crossings against
// every fixed-width kind for the compile-time pointer width.
func registerFixedPointerCrossings() {
	registerFallible(KindUsize, KindIsize, PolicyUpperBounded)
	registerFallible(KindIsize, KindUsize, PolicyLowerBounded)

	for _, e := range pointerEntries(PointerWidth) {
		registerFallible(e.Pair.From, e.Pair.To, e.Policy)
	}
}

// finalizeMatrix flattens the registries into the dispatch table and puts the
// universal reflexive rule on the diagonal.
func finalizeMatrix() {
	for p := range losslessPairs {
		classTable[p.From][p.To] = classEntry{class: ClassLossless}
	}
	for p, pol := range falliblePairs {
		classTable[p.From][p.To] = classEntry{class: ClassFallible, policy: pol}
	}
	for k := Kind(1); int(k) < kindTotal; k++ {
		classTable[k][k] = classEntry{class: ClassReflexive}
	}
}
