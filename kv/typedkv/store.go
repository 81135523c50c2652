// Package typedkv provides a view of a [kv.Store] that maps keys of type K to
// values of type V.
package typedkv

import (
	"context"
	"fmt"

	"github.com/randakar/repldbkit/kv"
)

// A RangeFunc is a function used to range over the key/value pairs in a
// [Store].
//
// If err is non-nil, ranging stops and err is propagated up the stack.
// Otherwise, if ok is false, ranging stops without any error being propagated.
type RangeFunc[K, V any] func(context.Context, K, V) (ok bool, err error)

// Store maps keys of type K to values of type V, storing them in an
// underlying [kv.Store].
type Store[K, V any, KM Marshaler[K], VM Marshaler[V]] struct {
	kv.Store
	KeyMarshaler   KM
	ValueMarshaler VM
}

// Get returns the value associated with k.
//
// If the key does not exist v is the zero-value and ok is false.
func (s Store[K, V, KM, VM]) Get(ctx context.Context, k K) (v V, ok bool, err error) {
	key, err := s.KeyMarshaler.Marshal(k)
	if err != nil {
		return v, false, err
	}

	data, ok, err := s.Store.Get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}

	v, err = s.ValueMarshaler.Unmarshal(data)
	if err != nil {
		return v, false, fmt.Errorf("unable to unmarshal value of %q: %w", key, err)
	}

	return v, true, nil
}

// Set associates v with k, replacing any existing value.
func (s Store[K, V, KM, VM]) Set(ctx context.Context, k K, v V) error {
	key, err := s.KeyMarshaler.Marshal(k)
	if err != nil {
		return err
	}

	data, err := s.ValueMarshaler.Marshal(v)
	if err != nil {
		return err
	}

	return s.Store.Set(ctx, key, data)
}

// Delete removes k from the store.
func (s Store[K, V, KM, VM]) Delete(ctx context.Context, k K) error {
	key, err := s.KeyMarshaler.Marshal(k)
	if err != nil {
		return err
	}
	return s.Store.Delete(ctx, key)
}

// Keys returns every key in the store.
func (s Store[K, V, KM, VM]) Keys(ctx context.Context) ([]K, error) {
	keys, err := s.Store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	result := make([]K, 0, len(keys))

	for _, key := range keys {
		k, err := s.KeyMarshaler.Unmarshal(key)
		if err != nil {
			return nil, fmt.Errorf("unable to unmarshal key %q: %w", key, err)
		}
		result = append(result, k)
	}

	return result, nil
}

// Range invokes fn for each key in the store, in the order the store lists
// them.
//
// Keys that are deleted after they are listed but before their value is
// fetched are skipped.
func (s Store[K, V, KM, VM]) Range(ctx context.Context, fn RangeFunc[K, V]) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}

	for _, k := range keys {
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		ok, err = fn(ctx, k, v)
		if !ok || err != nil {
			return err
		}
	}

	return nil
}
