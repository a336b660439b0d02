package numconv

import "errors"

// ErrOutOfRange reports that a source value lies outside the destination
// type's representable interval. It is the only failure a fallible conversion
// can produce; it carries no payload so conversions stay allocation-free.
// Non-zero wrapper constructors reuse it for the rejected zero value.
var ErrOutOfRange = errors.New("numconv: value out of representable range")
