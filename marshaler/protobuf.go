package marshaler

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// NewProto returns a marshaler that marshals and unmarshals Protocol Buffers
// messages using their canonical JSON representation.
func NewProto[
	T interface {
		proto.Message
		*S
	},
	S any,
]() Marshaler[T] {
	return marshaler[T]{
		func(t T) (string, error) {
			data, err := protojson.Marshal(t)
			return string(data), err
		},
		func(data string) (T, error) {
			var v T = new(S)
			return v, protojson.Unmarshal([]byte(data), v)
		},
	}
}
