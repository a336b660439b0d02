package nonzero

import (
	"github.com/goccy/go-json"
)

// JSON support for the wrappers: a wrapper marshals as its plain value, and
// unmarshaling enforces the invariant, so a zero on the wire is a decode
// error rather than a silently invalid wrapper.

func (n N[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

func (n *N[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	nn, err := New(v)
	if err != nil {
		return err
	}
	*n = nn
	return nil
}
