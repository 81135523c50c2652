package kv

import (
	"context"
	"strings"
)

// WithKeyPrefix returns a [Store] that adds the given prefix to all keys,
// allowing several independent collections to share one database.
//
// List only returns keys within the prefix, with the prefix removed.
func WithKeyPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return prefixedStore{s, prefix}
}

// prefixedStore is a [Store] that adds a prefix to all keys.
type prefixedStore struct {
	Next   Store
	prefix string
}

func (s prefixedStore) Get(ctx context.Context, k string) (string, bool, error) {
	return s.Next.Get(ctx, s.prefix+k)
}

func (s prefixedStore) Set(ctx context.Context, k, v string) error {
	return s.Next.Set(ctx, s.prefix+k, v)
}

func (s prefixedStore) Delete(ctx context.Context, k string) error {
	return s.Next.Delete(ctx, s.prefix+k)
}

func (s prefixedStore) List(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.Next.List(ctx, s.prefix+prefix)
	if err != nil {
		return nil, err
	}

	trimmed := keys[:0]
	for _, k := range keys {
		if k, ok := strings.CutPrefix(k, s.prefix); ok {
			trimmed = append(trimmed, k)
		}
	}

	return trimmed, nil
}
