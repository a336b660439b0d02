// Package nonzero provides integer wrappers whose invariant excludes the
// value zero, layered on the numconv conversion matrix. A wrapper pair
// converts exactly when the underlying plain pair converts: the wrapper
// layer unwraps, delegates to the plain registry entry and re-wraps the
// result without re-validating, since an exact conversion of a non-zero
// value cannot produce zero.
package nonzero

import (
	"github.com/Station-Manager/numconv"
)

// N is a guaranteed-non-zero integer. The zero value of N is invalid; build
// values with New, Must or the conversion functions. The invariant enables
// compact optional encodings downstream (a zero N slot means "absent").
type N[T numconv.Integer] struct {
	v T
}

// Per-width names for the wrapper, matching the kinds of the underlying
// matrix.
type (
	Uint8  = N[uint8]
	Uint16 = N[uint16]
	Uint32 = N[uint32]
	Uint64 = N[uint64]
	Uint   = N[uint]
	Int8   = N[int8]
	Int16  = N[int16]
	Int32  = N[int32]
	Int64  = N[int64]
	Int    = N[int]
)

// New wraps v, rejecting exactly the value zero. The rejection is orthogonal
// to range checking: an in-range zero still fails.
func New[T numconv.Integer](v T) (N[T], error) {
	if v == 0 {
		return N[T]{}, numconv.ErrOutOfRange
	}
	return N[T]{v: v}, nil
}

// Must wraps v and panics on zero. For literals and other values the caller
// guarantees.
func Must[T numconv.Integer](v T) N[T] {
	n, err := New(v)
	if err != nil {
		panic("nonzero: zero value")
	}
	return n
}

// Get returns the plain underlying value.
func (n N[T]) Get() T {
	return n.v
}

// IsZero reports whether n is the invalid zero value of the wrapper type,
// i.e. was never constructed through the package API.
func (n N[T]) IsZero() bool {
	return n.v == 0
}

// wrap restores the invariant after a delegated conversion.
// Proof obligation: the source wrapper held a non-zero value and the
// delegated conversion succeeded exactly, so v cannot be zero. Debug builds
// (tag nonzerodebug) re-validate anyway.
func wrap[T numconv.Integer](v T) N[T] {
	if debugChecks && v == 0 {
		panic("nonzero: conversion produced zero from a non-zero source")
	}
	return N[T]{v: v}
}

// From converts between wrapper widths along a lossless plain pair. Same
// totality contract as numconv.From: unregistered pairs panic.
func From[Dst, Src numconv.Integer](n N[Src]) N[Dst] {
	return wrap(numconv.From[Dst](n.Get()))
}

// TryFrom converts between wrapper widths along a fallible plain pair,
// returning numconv.ErrOutOfRange when the underlying value does not fit.
func TryFrom[Dst, Src numconv.Integer](n N[Src]) (N[Dst], error) {
	v, err := numconv.TryFrom[Dst](n.Get())
	if err != nil {
		return N[Dst]{}, err
	}
	return wrap(v), nil
}

// TryNew converts a plain integer into a wrapper of a possibly different
// width: the range check of the plain pair composed with the zero rejection.
func TryNew[Dst, Src numconv.Integer](v Src) (N[Dst], error) {
	d, err := numconv.TryFrom[Dst](v)
	if err != nil {
		return N[Dst]{}, err
	}
	return New(d)
}
