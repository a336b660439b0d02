package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"

	"github.com/Station-Manager/numconv"
)

// Converters between nullable model columns and plain typed fields. An
// invalid (NULL) source converts to the destination zero value; a present
// value is range-checked through the matrix.

// ModelToTypeInt32Converter converts a model null.Int64 to an int32.
func ModelToTypeInt32Converter(src any) (any, error) {
	const op errors.Op = "converters.ModelToTypeInt32Converter"

	if nullInt, ok := src.(null.Int64); ok {
		if !nullInt.Valid {
			return int32(0), nil
		}
		dst, err := numconv.TryFrom[int32](nullInt.Int64)
		if err != nil {
			return int32(0), errors.New(op).Err(err)
		}
		return dst, nil
	}

	srcVal, err := CheckInt64(src)
	if err != nil {
		return int32(0), errors.New(op).Err(err)
	}
	dst, err := numconv.TryFrom[int32](srcVal)
	if err != nil {
		return int32(0), errors.New(op).Err(err)
	}
	return dst, nil
}

// ModelToTypeUint8Converter converts a model null.Int64 to a uint8,
// rejecting negative and overflowing values.
func ModelToTypeUint8Converter(src any) (any, error) {
	const op errors.Op = "converters.ModelToTypeUint8Converter"

	if nullInt, ok := src.(null.Int64); ok {
		if !nullInt.Valid {
			return uint8(0), nil
		}
		dst, err := numconv.TryFrom[uint8](nullInt.Int64)
		if err != nil {
			return uint8(0), errors.New(op).Err(err)
		}
		return dst, nil
	}

	srcVal, err := CheckInt64(src)
	if err != nil {
		return uint8(0), errors.New(op).Err(err)
	}
	dst, err := numconv.TryFrom[uint8](srcVal)
	if err != nil {
		return uint8(0), errors.New(op).Err(err)
	}
	return dst, nil
}

// TypeToModelInt64Converter converts a plain integer field to a model
// null.Int64. Widening is lossless for every accepted source width, so the
// only error path is a mistyped parameter.
func TypeToModelInt64Converter(src any) (any, error) {
	const op errors.Op = "converters.TypeToModelInt64Converter"

	srcVal, err := CheckInt64(src)
	if err != nil {
		return null.Int64{}, errors.New(op).Err(err)
	}
	return null.Int64From(srcVal), nil
}

// TypeToModelUint32Converter converts a plain unsigned field to a model
// null.Uint32 with a range check for wider sources.
func TypeToModelUint32Converter(src any) (any, error) {
	const op errors.Op = "converters.TypeToModelUint32Converter"

	switch v := src.(type) {
	case uint32:
		return null.Uint32From(v), nil
	case uint16:
		return null.Uint32From(numconv.From[uint32](v)), nil
	case uint64:
		dst, err := numconv.TryFrom[uint32](v)
		if err != nil {
			return null.Uint32{}, errors.New(op).Err(err)
		}
		return null.Uint32From(dst), nil
	case int64:
		dst, err := numconv.TryFrom[uint32](v)
		if err != nil {
			return null.Uint32{}, errors.New(op).Err(err)
		}
		return null.Uint32From(dst), nil
	}
	return null.Uint32{}, errors.New(op).Msg(ErrMsgNotUnsigned)
}
