package xtesting

import (
	"context"
	"testing"
	"time"
)

// StepTimeout is the maximum amount of time that any one step of a benchmark
// may take. It is generous enough to accommodate stores that are accessed over
// the network.
const StepTimeout = 30 * time.Second

// Benchmark benchmarks fn.
//
// setup is called once, before the first iteration. pre and post are called
// before and after each iteration, respectively. Any of them may be nil.
//
// Only the time spent in fn is measured.
func Benchmark(
	b *testing.B,
	setup func(context.Context) error,
	pre func(context.Context) error,
	fn func(context.Context) error,
	post func(context.Context) error,
) {
	skipIfTooFast(b)

	ctx := b.Context()
	step(b, ctx, setup)

	for b.Loop() {
		b.StopTimer()
		step(b, ctx, pre)

		b.StartTimer()
		err := fn(ctx)
		b.StopTimer()

		step(b, ctx, post)

		if err != nil {
			b.Fatal(err)
		}
	}
}

// step calls fn, if it is non-nil, with a context bounded by [StepTimeout].
func step(b *testing.B, ctx context.Context, fn func(context.Context) error) {
	if fn == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, StepTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		b.Fatal(err)
	}
}

// skipIfTooFast skips the benchmark if the number of iterations is too high
// for each iteration to have been timed meaningfully.
func skipIfTooFast(b *testing.B) {
	const threshold = 1_000_000
	if b.N >= threshold {
		b.Skipf("benchmark skipped, too many iterations (%d)", b.N)
	}
}
