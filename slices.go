package numconv

import "fmt"

// Bulk forms of the conversion operations. A slice converts element-wise;
// the fallible form reports the first offending element by index so callers
// can point at the bad record instead of the whole batch.

// FromSlice converts every element of s along a lossless pair. Nil in, nil
// out; the result is always a fresh slice otherwise.
func FromSlice[Dst, Src Number](s []Src) []Dst {
	if s == nil {
		return nil
	}
	out := make([]Dst, len(s))
	for i, v := range s {
		out[i] = From[Dst](v)
	}
	return out
}

// TryFromSlice converts every element of s along a fallible pair, stopping
// at the first out-of-range element.
func TryFromSlice[Dst, Src Number](s []Src) ([]Dst, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]Dst, len(s))
	for i, v := range s {
		d, err := TryFrom[Dst](v)
		if err != nil {
			return nil, fmt.Errorf("element %d (%v): %w", i, v, err)
		}
		out[i] = d
	}
	return out, nil
}
