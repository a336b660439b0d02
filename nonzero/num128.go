package nonzero

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/Station-Manager/numconv"
)

// Non-zero variants of the 128-bit kinds. They mirror N for the go-num value
// types; the delegated conversions come from numconv's 128-bit column.

// U128 is a guaranteed-non-zero unsigned 128-bit integer.
type U128 struct {
	v num.U128
}

// I128 is a guaranteed-non-zero signed 128-bit integer.
type I128 struct {
	v num.I128
}

// NewU128 wraps v, rejecting zero.
func NewU128(v num.U128) (U128, error) {
	if v == (num.U128{}) {
		return U128{}, numconv.ErrOutOfRange
	}
	return U128{v: v}, nil
}

// NewI128 wraps v, rejecting zero.
func NewI128(v num.I128) (I128, error) {
	if v == (num.I128{}) {
		return I128{}, numconv.ErrOutOfRange
	}
	return I128{v: v}, nil
}

func (n U128) Get() num.U128 { return n.v }
func (n I128) Get() num.I128 { return n.v }

func (n U128) IsZero() bool { return n.v == (num.U128{}) }
func (n I128) IsZero() bool { return n.v == (num.I128{}) }

// U128From widens a non-zero unsigned wrapper to a non-zero u128. Lossless,
// so the result is wrapped without re-validation (same proof as wrap).
func U128From[Src numconv.Unsigned](n N[Src]) U128 {
	return U128{v: numconv.U128From(n.Get())}
}

// I128From widens any non-zero wrapper to a non-zero i128.
func I128From[Src numconv.Integer](n N[Src]) I128 {
	return I128{v: numconv.I128From(n.Get())}
}

// TryFromU128 narrows a non-zero u128 into a native-width wrapper.
func TryFromU128[Dst numconv.Integer](n U128) (N[Dst], error) {
	v, err := numconv.TryFromU128[Dst](n.Get())
	if err != nil {
		return N[Dst]{}, err
	}
	return wrap(v), nil
}

// TryFromI128 narrows a non-zero i128 into a native-width wrapper.
func TryFromI128[Dst numconv.Integer](n I128) (N[Dst], error) {
	v, err := numconv.TryFromI128[Dst](n.Get())
	if err != nil {
		return N[Dst]{}, err
	}
	return wrap(v), nil
}

// TryI128FromU128 and TryU128FromI128 cross between the non-zero 128-bit
// wrappers along the fallible plain crossings.
func TryI128FromU128(n U128) (I128, error) {
	v, err := numconv.TryI128FromU128(n.Get())
	if err != nil {
		return I128{}, err
	}
	return I128{v: v}, nil
}

func TryU128FromI128(n I128) (U128, error) {
	v, err := numconv.TryU128FromI128(n.Get())
	if err != nil {
		return U128{}, err
	}
	return U128{v: v}, nil
}
