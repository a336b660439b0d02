package numconv

// Policy is the minimal set of comparisons a fallible conversion must perform
// to validate a value against the destination's interval. The policy for a
// pair is fixed at registration time from the static ranges; the runtime
// check never probes beyond what the policy names.
type Policy int

const (
	// PolicyUnbounded performs no check. It appears only on pairs whose
	// fallibility is a portability artifact of the pointer-sized kinds: the
	// destination covers the source on this target, but not on every
	// supported target.
	PolicyUnbounded Policy = iota
	// PolicyLowerBounded rejects negative values; the destination's upper
	// bound is not tighter than the source's.
	PolicyLowerBounded
	// PolicyUpperBounded rejects values above the destination's maximum; the
	// destination's lower bound is not tighter than the source's.
	PolicyUpperBounded
	// PolicyBothBounded checks both ends of the destination's interval.
	PolicyBothBounded
)

func (p Policy) String() string {
	switch p {
	case PolicyUnbounded:
		return "unbounded"
	case PolicyLowerBounded:
		return "lower-bounded"
	case PolicyUpperBounded:
		return "upper-bounded"
	case PolicyBothBounded:
		return "both-bounded"
	}
	return "invalid"
}

// derivePolicy picks the policy for a fallible pair by comparing the static
// intervals. A pair whose destination covers the source entirely derives
// PolicyUnbounded; such pairs are registered fallible only for the
// pointer-width-dependent cases (see pointerEntries).
func derivePolicy(src, dst intRange) Policy {
	minOK := coversMin(dst, src)
	maxOK := coversMax(dst, src)
	switch {
	case minOK && maxOK:
		return PolicyUnbounded
	case maxOK:
		return PolicyLowerBounded
	case minOK:
		return PolicyUpperBounded
	default:
		return PolicyBothBounded
	}
}

// Pair is an ordered (source, destination) tuple in the matrix.
type Pair struct {
	From, To Kind
}

func (p Pair) String() string { return p.From.String() + "->" + p.To.String() }

// Class is the classification of an ordered pair: exactly one of the three
// applies to every pair inside the supported set, and ClassUnsupported marks
// the deliberate scope exclusions (lossy float conversions, anything
// converting into bool).
type Class int

const (
	ClassUnsupported Class = iota
	ClassReflexive
	ClassLossless
	ClassFallible
)

func (c Class) String() string {
	switch c {
	case ClassReflexive:
		return "reflexive"
	case ClassLossless:
		return "lossless"
	case ClassFallible:
		return "fallible"
	}
	return "unsupported"
}

// The two registries. Registration happens once, from init; afterwards the
// maps are read-only facts. classTable is the flattened dispatch form the
// conversion operations consult.
var (
	losslessPairs = make(map[Pair]struct{})
	falliblePairs = make(map[Pair]Policy)

	classTable [kindTotal][kindTotal]classEntry
)

type classEntry struct {
	class  Class
	policy Policy
}

// registerLossless records a pair whose destination represents every source
// value exactly. Violating the registry invariants is a defect in the fact
// table, not a runtime condition, so it panics at package load.
func registerLossless(from, to Kind) {
	p := Pair{From: from, To: to}
	if from == to {
		panic("numconv: reflexive pair " + p.String() + " is covered by the universal identity rule")
	}
	if _, ok := losslessPairs[p]; ok {
		panic("numconv: duplicate lossless entry " + p.String())
	}
	if _, ok := falliblePairs[p]; ok {
		panic("numconv: pair " + p.String() + " registered as both lossless and fallible")
	}
	losslessPairs[p] = struct{}{}
}

// registerFallible records a pair that needs a runtime bounds check, with the
// policy derived from the static ranges.
func registerFallible(from, to Kind, policy Policy) {
	p := Pair{From: from, To: to}
	if from == to {
		panic("numconv: reflexive pair " + p.String() + " is covered by the universal identity rule")
	}
	if _, ok := falliblePairs[p]; ok {
		panic("numconv: duplicate fallible entry " + p.String())
	}
	if _, ok := losslessPairs[p]; ok {
		panic("numconv: pair " + p.String() + " registered as both lossless and fallible")
	}
	falliblePairs[p] = policy
}

// Classify reports how the matrix treats an ordered pair of kinds. For
// fallible pairs the returned policy is the check the conversion performs;
// for every other class the policy is meaningless.
func Classify(from, to Kind) (Class, Policy) {
	e := classTable[from][to]
	return e.class, e.policy
}

// Lossless reports whether the pair is registered in the lossless registry.
// The reflexive case is intentionally excluded: it belongs to neither
// registry.
func Lossless(from, to Kind) bool {
	_, ok := losslessPairs[Pair{From: from, To: to}]
	return ok
}

// PolicyOf returns the bound-check policy for a registered fallible pair.
func PolicyOf(from, to Kind) (Policy, bool) {
	p, ok := falliblePairs[Pair{From: from, To: to}]
	return p, ok
}
