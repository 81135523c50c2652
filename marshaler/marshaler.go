// Package marshaler provides implementations of [Marshaler] that convert
// values to and from the string form held by a [kv.Store].
//
// [kv.Store]: github.com/randakar/repldbkit/kv.Store
package marshaler

// Marshaler is an interface for types that can marshal and unmarshal values of
// type T to and from strings.
type Marshaler[T any] interface {
	Marshal(T) (string, error)
	Unmarshal(string) (T, error)
}

// New returns a new [Marshaler] that marshals and unmarshals values of type T
// using the given functions.
func New[T any](
	marshal func(T) (string, error),
	unmarshal func(string) (T, error),
) Marshaler[T] {
	return marshaler[T]{marshal, unmarshal}
}

type marshaler[T any] struct {
	marshal   func(T) (string, error)
	unmarshal func(string) (T, error)
}

func (m marshaler[T]) Marshal(v T) (string, error)      { return m.marshal(v) }
func (m marshaler[T]) Unmarshal(data string) (T, error) { return m.unmarshal(data) }
