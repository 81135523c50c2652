package kv

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/randakar/repldbkit/internal/x/xtesting"
	"pgregory.net/rapid"
)

// RunTests runs tests that confirm a [Store] implementation behaves correctly.
//
// Each test operates within its own uniquely-named key prefix, so store may
// be shared with other tests or contain unrelated data.
func RunTests(
	t *testing.T,
	store Store,
) {
	setup := func(t *testing.T) Store {
		s := WithKeyPrefix(store, xtesting.UniqueName("test")+"/")

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := Empty(ctx, s); err != nil {
				t.Error(err)
			}
		})

		return s
	}

	t.Run("Get", func(t *testing.T) {
		t.Parallel()

		t.Run("it reports that the key is absent if it doesn't exist", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			v, ok, err := s.Get(t.Context(), "<key>")
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("expected key to be absent")
			}
			if v != "" {
				t.Fatalf("expected empty value, got %q", v)
			}
		})

		t.Run("it reports that the key is absent if it has been deleted", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			if err := s.Set(t.Context(), "<key>", "<value>"); err != nil {
				t.Fatal(err)
			}

			if err := s.Delete(t.Context(), "<key>"); err != nil {
				t.Fatal(err)
			}

			v, ok, err := s.Get(t.Context(), "<key>")
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatalf("expected key to be absent, got value %q", v)
			}
		})

		t.Run("it returns the value if the key exists", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			for i := range 5 {
				k := fmt.Sprintf("<key-%d>", i)
				v := fmt.Sprintf("<value-%d>", i)

				if err := s.Set(t.Context(), k, v); err != nil {
					t.Fatal(err)
				}
			}

			for i := range 5 {
				k := fmt.Sprintf("<key-%d>", i)
				expect := fmt.Sprintf("<value-%d>", i)

				actual, ok, err := s.Get(t.Context(), k)
				if err != nil {
					t.Fatal(err)
				}
				if !ok {
					t.Fatalf("expected key %q to be present", k)
				}
				if actual != expect {
					t.Fatalf("unexpected value, want %q, got %q", expect, actual)
				}
			}
		})

		t.Run("it returns the value that was most recently set", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			rapid.Check(t, func(t *rapid.T) {
				k := nonBlank().Draw(t, "key")
				v := nonBlank().Draw(t, "value")

				if err := s.Set(context.Background(), k, v); err != nil {
					t.Fatal(err)
				}

				actual, ok, err := s.Get(context.Background(), k)
				if err != nil {
					t.Fatal(err)
				}
				if !ok {
					t.Fatalf("expected key %q to be present", k)
				}
				if actual != v {
					t.Fatalf("unexpected value, want %q, got %q", v, actual)
				}
			})
		})

		t.Run("it returns an error if the context is canceled", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			ctx, cancel := context.WithCancel(t.Context())
			cancel()

			if _, _, err := s.Get(ctx, "<key>"); !errors.Is(err, context.Canceled) {
				t.Fatalf("unexpected error: got %v, want %v", err, context.Canceled)
			}
		})
	})

	t.Run("GetMany", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns values in the same order as the keys", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			if err := SetAll(
				t.Context(),
				s,
				map[string]string{
					"a": "1",
					"b": "2",
					"c": "3",
				},
			); err != nil {
				t.Fatal(err)
			}

			actual, err := GetMany(t.Context(), s, "c", "missing", "a", "b", "a")
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff([]string{"3", "", "1", "2", "1"}, actual); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it returns an empty slice when no keys are given", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			actual, err := GetMany(t.Context(), s)
			if err != nil {
				t.Fatal(err)
			}
			if len(actual) != 0 {
				t.Fatalf("expected no values, got %q", actual)
			}
		})
	})

	t.Run("Set", func(t *testing.T) {
		t.Parallel()

		t.Run("it replaces the existing value", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			if err := s.Set(t.Context(), "<key>", "<value-1>"); err != nil {
				t.Fatal(err)
			}

			if err := s.Set(t.Context(), "<key>", "<value-2>"); err != nil {
				t.Fatal(err)
			}

			v, _, err := s.Get(t.Context(), "<key>")
			if err != nil {
				t.Fatal(err)
			}

			if v != "<value-2>" {
				t.Fatalf("unexpected value, want %q, got %q", "<value-2>", v)
			}
		})

		t.Run("it preserves reserved and non-ASCII characters", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			pairs := map[string]string{
				"a/b?c=d&e":      "x=y&z",
				"50% off+tax":    "100%",
				"héllo wörld":    "日本語 テキスト",
				"line\nbreak":    "multi\nline\nvalue",
				" padded key ":   "  padded value  ",
				"#fragment;semi": "'quoted' \"double\"",
				".":              "dot",
				"..":             "dot-dot",
			}

			if err := SetAll(t.Context(), s, pairs); err != nil {
				t.Fatal(err)
			}

			for k, expect := range pairs {
				actual, ok, err := s.Get(t.Context(), k)
				if err != nil {
					t.Fatal(err)
				}
				if !ok {
					t.Fatalf("expected key %q to be present", k)
				}
				if actual != expect {
					t.Fatalf("unexpected value for key %q, want %q, got %q", k, expect, actual)
				}
			}

			keys, err := s.List(t.Context(), "")
			if err != nil {
				t.Fatal(err)
			}

			expect := slices.Sorted(maps.Keys(pairs))
			slices.Sort(keys)

			if diff := cmp.Diff(expect, keys); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Parallel()

		t.Run("it does not return an error if the key doesn't exist", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			if err := s.Delete(t.Context(), "<key>"); err != nil {
				t.Fatal(err)
			}
		})

		t.Run("it only removes the given key", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			if err := SetAll(t.Context(), s, map[string]string{"a": "1", "b": "2"}); err != nil {
				t.Fatal(err)
			}

			if err := s.Delete(t.Context(), "a"); err != nil {
				t.Fatal(err)
			}

			v, ok, err := s.Get(t.Context(), "b")
			if err != nil {
				t.Fatal(err)
			}
			if !ok || v != "2" {
				t.Fatalf("unexpected value for key %q: got (%q, %t), want (%q, true)", "b", v, ok, "2")
			}
		})
	})

	t.Run("DeleteAll", func(t *testing.T) {
		t.Parallel()

		t.Run("it removes each of the given keys", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			if err := SetAll(t.Context(), s, map[string]string{"a": "1", "b": "2", "c": "3"}); err != nil {
				t.Fatal(err)
			}

			if err := DeleteAll(t.Context(), s, []string{"a", "c", "missing"}); err != nil {
				t.Fatal(err)
			}

			keys, err := s.List(t.Context(), "")
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff([]string{"b"}, keys); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("List", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns no keys if the store is empty", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			keys, err := s.List(t.Context(), "")
			if err != nil {
				t.Fatal(err)
			}
			if len(keys) != 0 {
				t.Fatalf("expected no keys, got %q", keys)
			}
		})

		t.Run("it returns every key when the prefix is empty", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			expect := []string{"apple", "apricot", "banana"}
			for _, k := range expect {
				if err := s.Set(t.Context(), k, "<value>"); err != nil {
					t.Fatal(err)
				}
			}

			keys, err := s.List(t.Context(), "")
			if err != nil {
				t.Fatal(err)
			}

			slices.Sort(keys)
			if diff := cmp.Diff(expect, keys); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it only returns keys that start with the prefix", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			for _, k := range []string{"apple", "apricot", "banana", "xap"} {
				if err := s.Set(t.Context(), k, "<value>"); err != nil {
					t.Fatal(err)
				}
			}

			keys, err := s.List(t.Context(), "ap")
			if err != nil {
				t.Fatal(err)
			}

			slices.Sort(keys)
			if diff := cmp.Diff([]string{"apple", "apricot"}, keys); diff != "" {
				t.Fatal(diff)
			}

			for _, k := range keys {
				if !strings.HasPrefix(k, "ap") {
					t.Fatalf("key %q does not have the prefix", k)
				}
			}
		})
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		t.Run("it removes every key", func(t *testing.T) {
			t.Parallel()

			s := setup(t)

			for i := range 5 {
				if err := s.Set(t.Context(), fmt.Sprintf("<key-%d>", i), "<value>"); err != nil {
					t.Fatal(err)
				}
			}

			if err := Empty(t.Context(), s); err != nil {
				t.Fatal(err)
			}

			keys, err := s.List(t.Context(), "")
			if err != nil {
				t.Fatal(err)
			}
			if len(keys) != 0 {
				t.Fatalf("expected no keys, got %q", keys)
			}
		})
	})

	t.Run("it behaves as a key/value store end-to-end", func(t *testing.T) {
		t.Parallel()

		s := setup(t)

		if err := s.Set(t.Context(), "a", "1"); err != nil {
			t.Fatal(err)
		}
		if err := s.Set(t.Context(), "b", "2"); err != nil {
			t.Fatal(err)
		}

		keys, err := s.List(t.Context(), "")
		if err != nil {
			t.Fatal(err)
		}
		slices.Sort(keys)
		if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
			t.Fatal(diff)
		}

		values, err := GetMany(t.Context(), s, "a", "b")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"1", "2"}, values); diff != "" {
			t.Fatal(diff)
		}

		if err := s.Delete(t.Context(), "a"); err != nil {
			t.Fatal(err)
		}

		keys, err = s.List(t.Context(), "")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"b"}, keys); diff != "" {
			t.Fatal(diff)
		}
	})
}

// nonBlank generates strings that contain at least one non-whitespace
// character.
func nonBlank() *rapid.Generator[string] {
	return rapid.String().Filter(func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}
