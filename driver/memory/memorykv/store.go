package memorykv

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/randakar/repldbkit/kv"
)

// Store is an in-memory implementation of [kv.Store].
//
// The zero-value is an empty store, ready to use. List returns keys in
// lexical order.
type Store struct {
	m      sync.RWMutex
	values map[string]string
}

var _ kv.Store = (*Store)(nil)

// Get returns the value associated with k.
func (s *Store) Get(ctx context.Context, k string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.m.RLock()
	defer s.m.RUnlock()

	v, ok := s.values[k]
	return v, ok, nil
}

// Set associates v with k.
func (s *Store) Set(ctx context.Context, k, v string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.m.Lock()
	defer s.m.Unlock()

	if s.values == nil {
		s.values = map[string]string{}
	}

	s.values[k] = v

	return nil
}

// Delete removes k from the store.
func (s *Store) Delete(ctx context.Context, k string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.m.Lock()
	defer s.m.Unlock()

	delete(s.values, k)

	return nil
}

// List returns the keys that start with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.m.RLock()
	keys := slices.Sorted(maps.Keys(s.values))
	s.m.RUnlock()

	return slices.DeleteFunc(keys, func(k string) bool {
		return !strings.HasPrefix(k, prefix)
	}), nil
}
