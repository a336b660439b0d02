// Package converters adapts the numconv matrix to the adapter library's
// field-converter shape, so struct adaptation gets overflow-checked numeric
// conversion instead of Go's silently truncating builtin conversions.
package converters

import (
	"github.com/Station-Manager/errors"

	"github.com/Station-Manager/numconv"
)

// ConverterFunc is the field converter signature the adapter library
// consumes: it is registered by field name and applies to any source or
// destination struct pair.
type ConverterFunc func(src any) (any, error)

// Checked returns a ConverterFunc that converts Src field values to Dst
// through the fallible registry. Out-of-range values fail the adaptation
// instead of wrapping around.
func Checked[Dst, Src numconv.Number]() ConverterFunc {
	return func(src any) (any, error) {
		const op errors.Op = "converters.Checked"
		srcVal, ok := src.(Src)
		if !ok {
			var want Src
			return nil, errors.New(op).Errorf("Given parameter not a %T, got %T", want, src)
		}
		dst, err := numconv.TryFrom[Dst](srcVal)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		return dst, nil
	}
}

// Widened returns a ConverterFunc for a lossless pair. It never fails on the
// value; the only error path is a mistyped source field.
func Widened[Dst, Src numconv.Number]() ConverterFunc {
	return func(src any) (any, error) {
		const op errors.Op = "converters.Widened"
		srcVal, ok := src.(Src)
		if !ok {
			var want Src
			return nil, errors.New(op).Errorf("Given parameter not a %T, got %T", want, src)
		}
		return numconv.From[Dst](srcVal), nil
	}
}

// CheckInt64 extracts a plain int64 from a source field, accepting the
// widths DB models commonly carry.
func CheckInt64(src any) (int64, error) {
	const op errors.Op = "converters.CheckInt64"
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	}
	return 0, errors.New(op).Msg(ErrMsgNotInteger)
}
