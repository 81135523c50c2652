package typedkv

// Marshaler is a constraint for types that can marshal and unmarshal values of
// type T to and from strings.
type Marshaler[T any] interface {
	Marshal(T) (string, error)
	Unmarshal(string) (T, error)
}
