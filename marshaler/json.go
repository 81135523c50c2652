package marshaler

import "encoding/json"

// NewJSON returns a marshaler that marshals and unmarshals an arbitrary type
// using Go's standard JSON encoding.
func NewJSON[T any]() Marshaler[T] {
	return marshaler[T]{
		func(v T) (string, error) {
			data, err := json.Marshal(v)
			return string(data), err
		},
		func(data string) (T, error) {
			var v T
			return v, json.Unmarshal([]byte(data), &v)
		},
	}
}
