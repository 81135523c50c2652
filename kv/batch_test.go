package kv_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/randakar/repldbkit/driver/memory/memorykv"
	. "github.com/randakar/repldbkit/kv"
)

func TestSetAll(t *testing.T) {
	t.Parallel()

	t.Run("it leaves earlier pairs in place when a later pair fails", func(t *testing.T) {
		t.Parallel()

		store := &memorykv.Store{}
		in := &Interceptor{}
		s := WithInterceptor(store, in)

		want := errors.New("<error>")
		var attempted []string

		in.BeforeSet(func(k, v string) error {
			attempted = append(attempted, k)
			if len(attempted) == 3 {
				return want
			}
			return nil
		})

		err := SetAll(
			t.Context(),
			s,
			map[string]string{
				"a": "1",
				"b": "2",
				"c": "3",
				"d": "4",
			},
		)
		if err != want {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}

		keys, err := store.List(t.Context(), "")
		if err != nil {
			t.Fatal(err)
		}

		// Map iteration order is unspecified, so the committed keys are the
		// first two that were attempted, whichever they were.
		expect := slices.Clone(attempted[:2])
		slices.Sort(expect)

		if diff := cmp.Diff(expect, keys); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestDeleteAll(t *testing.T) {
	t.Parallel()

	t.Run("it stops at the first failure", func(t *testing.T) {
		t.Parallel()

		store := &memorykv.Store{}
		in := &Interceptor{}
		s := WithInterceptor(store, in)

		if err := SetAll(
			t.Context(),
			store,
			map[string]string{
				"a": "1",
				"b": "2",
				"c": "3",
			},
		); err != nil {
			t.Fatal(err)
		}

		want := errors.New("<error>")
		in.BeforeDelete(func(k string) error {
			if k == "b" {
				return want
			}
			return nil
		})

		if err := DeleteAll(t.Context(), s, []string{"a", "b", "c"}); err != want {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}

		keys, err := store.List(t.Context(), "")
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]string{"b", "c"}, keys); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	t.Run("it leaves the remaining keys in place when a delete fails", func(t *testing.T) {
		t.Parallel()

		store := &memorykv.Store{}
		in := &Interceptor{}
		s := WithInterceptor(store, in)

		if err := SetAll(
			t.Context(),
			store,
			map[string]string{
				"a": "1",
				"b": "2",
				"c": "3",
			},
		); err != nil {
			t.Fatal(err)
		}

		want := errors.New("<error>")
		in.BeforeDelete(func(k string) error {
			if k == "b" {
				return want
			}
			return nil
		})

		if err := Empty(t.Context(), s); err != want {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}

		keys, err := store.List(t.Context(), "")
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]string{"b", "c"}, keys); diff != "" {
			t.Fatal(diff)
		}
	})
}
