package kv

import (
	"context"
	"sync/atomic"
)

// Interceptor defines functions that are invoked around store mutations.
//
// The functions may be replaced at any time, including while the store is in
// use.
type Interceptor struct {
	beforeSet    atomic.Pointer[func(string, string) error]
	afterSet     atomic.Pointer[func(string, string) error]
	beforeDelete atomic.Pointer[func(string) error]
	afterDelete  atomic.Pointer[func(string) error]
}

// BeforeSet sets the function that is invoked before a key/value pair is set.
// If it returns an error the pair is not set.
func (i *Interceptor) BeforeSet(fn func(k, v string) error) {
	setMutationFn(&i.beforeSet, fn)
}

// AfterSet sets the function that is invoked after a key/value pair is set.
func (i *Interceptor) AfterSet(fn func(k, v string) error) {
	setMutationFn(&i.afterSet, fn)
}

// BeforeDelete sets the function that is invoked before a key is deleted. If
// it returns an error the key is not deleted.
func (i *Interceptor) BeforeDelete(fn func(k string) error) {
	setDeleteFn(&i.beforeDelete, fn)
}

// AfterDelete sets the function that is invoked after a key is deleted.
func (i *Interceptor) AfterDelete(fn func(k string) error) {
	setDeleteFn(&i.afterDelete, fn)
}

// WithInterceptor returns a [Store] that invokes the functions defined by the
// given [Interceptor] when performing operations on s.
func WithInterceptor(s Store, in *Interceptor) Store {
	if in == nil {
		return s
	}

	return &interceptedStore{
		Next:        s,
		Interceptor: in,
	}
}

func setMutationFn(dst *atomic.Pointer[func(string, string) error], fn func(string, string) error) {
	if fn == nil {
		dst.Store(nil)
		return
	}

	dst.Store(&fn)
}

func setDeleteFn(dst *atomic.Pointer[func(string) error], fn func(string) error) {
	if fn == nil {
		dst.Store(nil)
		return
	}

	dst.Store(&fn)
}

func load[F any](p *atomic.Pointer[F]) (F, bool) {
	if fn := p.Load(); fn != nil {
		return *fn, true
	}

	var zero F
	return zero, false
}

type interceptedStore struct {
	Next        Store
	Interceptor *Interceptor
}

func (s *interceptedStore) Get(ctx context.Context, k string) (string, bool, error) {
	return s.Next.Get(ctx, k)
}

func (s *interceptedStore) Set(ctx context.Context, k, v string) error {
	if fn, ok := load(&s.Interceptor.beforeSet); ok {
		if err := fn(k, v); err != nil {
			return err
		}
	}

	if err := s.Next.Set(ctx, k, v); err != nil {
		return err
	}

	if fn, ok := load(&s.Interceptor.afterSet); ok {
		return fn(k, v)
	}

	return nil
}

func (s *interceptedStore) Delete(ctx context.Context, k string) error {
	if fn, ok := load(&s.Interceptor.beforeDelete); ok {
		if err := fn(k); err != nil {
			return err
		}
	}

	if err := s.Next.Delete(ctx, k); err != nil {
		return err
	}

	if fn, ok := load(&s.Interceptor.afterDelete); ok {
		return fn(k)
	}

	return nil
}

func (s *interceptedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.Next.List(ctx, prefix)
}
