package kv

import "context"

// Store is a remote collection of string key/value pairs.
//
// Every operation round-trips to the underlying storage; implementations hold
// no local copy of the data. Keys are unique within a store.
type Store interface {
	// Get returns the value associated with k.
	//
	// If the key does not exist ok is false and v is empty.
	Get(ctx context.Context, k string) (v string, ok bool, err error)

	// Set associates v with k, replacing any existing value.
	Set(ctx context.Context, k, v string) error

	// Delete removes k from the store.
	//
	// It is not an error to delete a key that does not exist.
	Delete(ctx context.Context, k string) error

	// List returns the keys that start with prefix, in the order the
	// underlying storage returns them. An empty prefix lists every key.
	List(ctx context.Context, prefix string) ([]string, error)
}
