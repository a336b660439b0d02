// Package numconv provides uniform, exhaustive conversion between the
// built-in fixed-width numeric types: signed and unsigned integers of 8 to
// 128 bits, the pointer-sized int/uint, float32/float64 and bool.
//
// Every ordered (source, destination) pair inside that closed set is
// classified exactly once, at package load, into one of three classes:
//
//  1. Reflexive: a type converting to itself, handled by a single universal
//     identity rule.
//  2. Lossless: the destination represents every source value exactly.
//     Executed by From/Into/FromBool with no failure path.
//  3. Fallible: the destination's interval is tighter on at least one end.
//     Executed by TryFrom/TryInto/Must with the minimal bounds check
//     (zero, one or two comparisons) derived from the static ranges.
//
// # Basic Usage
//
//	wide := numconv.From[int16](uint8(255))        // always succeeds: 255
//	n, err := numconv.TryFrom[uint8](int32(200))   // Ok: 200
//	_, err = numconv.TryFrom[uint8](int32(-1))     // numconv.ErrOutOfRange
//
// # Scope
//
// Conversions between floats and integers that could lose precision, and
// float narrowing (float64 -> float32), are deliberately outside the matrix:
// requesting one panics rather than guessing a rounding mode. Integer ->
// float pairs whose whole range fits the float significand (for example
// uint16 -> float32, int32 -> float64) are lossless and registered.
//
// # Pointer-Sized Kinds
//
// int and uint are their own kinds, distinct from the fixed widths. Whether
// a crossing like uint32 -> uint needs a bounds check depends on the build
// target's pointer width; the matrix derives the correct policy set at
// compile time for 16-, 32- and 64-bit targets and refuses to build on any
// other width.
//
// # Non-Zero Wrappers
//
// The nonzero subpackage layers guaranteed-non-zero integer wrappers on top
// of the same matrix; the converters subpackage adapts checked conversions
// to the adapter library's field-converter shape.
//
// # Thread Safety
//
// The matrix is immutable after package load and every operation is a pure
// function, so the package is safe for unrestricted concurrent use.
package numconv
