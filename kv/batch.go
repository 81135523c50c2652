package kv

import "context"

// The batch operations below apply a single-key operation to each key in
// turn. They are not atomic: if an operation fails the remaining keys are not
// visited, and the changes already made are left in place.

// GetMany returns the values associated with each of the given keys.
//
// The result has the same length and order as keys. The value for a key that
// does not exist is empty.
func GetMany(ctx context.Context, s Store, keys ...string) ([]string, error) {
	values := make([]string, len(keys))

	for i, k := range keys {
		v, _, err := s.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// SetAll associates each value in m with its key, in the iteration order of
// m.
func SetAll(ctx context.Context, s Store, m map[string]string) error {
	for k, v := range m {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes each of the given keys, in order.
func DeleteAll(ctx context.Context, s Store, keys []string) error {
	for _, k := range keys {
		if err := s.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// Empty removes every key in the store.
//
// Keys written by concurrent writers after the keys are listed survive.
func Empty(ctx context.Context, s Store) error {
	keys, err := s.List(ctx, "")
	if err != nil {
		return err
	}

	return DeleteAll(ctx, s, keys)
}
