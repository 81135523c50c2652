package kv

import (
	"context"
	"fmt"
	"testing"

	"github.com/randakar/repldbkit/internal/x/xtesting"
)

// RunBenchmarks runs benchmarks against a [Store] implementation.
func RunBenchmarks(
	b *testing.B,
	store Store,
) {
	b.Run("Get", func(b *testing.B) {
		b.Run("non-existent key", func(b *testing.B) {
			s := benchmarkStore(b, store)

			xtesting.Benchmark(
				b,
				// SETUP
				nil,
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(ctx context.Context) error {
					_, _, err := s.Get(ctx, "<key>")
					return err
				},
				// AFTER EACH
				nil,
			)
		})

		b.Run("existing key", func(b *testing.B) {
			s := benchmarkStore(b, store)

			xtesting.Benchmark(
				b,
				// SETUP
				func(ctx context.Context) error {
					return s.Set(ctx, "<key>", "<value>")
				},
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(ctx context.Context) error {
					_, _, err := s.Get(ctx, "<key>")
					return err
				},
				// AFTER EACH
				nil,
			)
		})
	})

	b.Run("Set", func(b *testing.B) {
		b.Run("new key", func(b *testing.B) {
			s := benchmarkStore(b, store)

			var key string

			xtesting.Benchmark(
				b,
				// SETUP
				nil,
				// BEFORE EACH
				func(context.Context) error {
					key = xtesting.SequentialName("key")
					return nil
				},
				// BENCHMARKED CODE
				func(ctx context.Context) error {
					return s.Set(ctx, key, "<value>")
				},
				// AFTER EACH
				nil,
			)
		})

		b.Run("existing key", func(b *testing.B) {
			s := benchmarkStore(b, store)

			xtesting.Benchmark(
				b,
				// SETUP
				func(ctx context.Context) error {
					return s.Set(ctx, "<key>", "<value>")
				},
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(ctx context.Context) error {
					return s.Set(ctx, "<key>", "<value>")
				},
				// AFTER EACH
				nil,
			)
		})
	})

	b.Run("Delete", func(b *testing.B) {
		s := benchmarkStore(b, store)

		xtesting.Benchmark(
			b,
			// SETUP
			nil,
			// BEFORE EACH
			func(ctx context.Context) error {
				return s.Set(ctx, "<key>", "<value>")
			},
			// BENCHMARKED CODE
			func(ctx context.Context) error {
				return s.Delete(ctx, "<key>")
			},
			// AFTER EACH
			nil,
		)
	})

	b.Run("List", func(b *testing.B) {
		s := benchmarkStore(b, store)

		xtesting.Benchmark(
			b,
			// SETUP
			func(ctx context.Context) error {
				for i := range 100 {
					if err := s.Set(ctx, fmt.Sprintf("<key-%d>", i), "<value>"); err != nil {
						return err
					}
				}
				return nil
			},
			// BEFORE EACH
			nil,
			// BENCHMARKED CODE
			func(ctx context.Context) error {
				_, err := s.List(ctx, "")
				return err
			},
			// AFTER EACH
			nil,
		)
	})
}

// benchmarkStore returns a view of store that is isolated to a single
// benchmark, and emptied when the benchmark ends.
func benchmarkStore(b *testing.B, store Store) Store {
	s := WithKeyPrefix(store, xtesting.UniqueName("bench")+"/")

	b.Cleanup(func() {
		if err := Empty(context.Background(), s); err != nil {
			b.Error(err)
		}
	})

	return s
}
