package memorykv_test

import (
	"testing"

	. "github.com/randakar/repldbkit/driver/memory/memorykv"
	"github.com/randakar/repldbkit/kv"
)

func TestStore(t *testing.T) {
	kv.RunTests(t, &Store{})
}

func BenchmarkStore(b *testing.B) {
	kv.RunBenchmarks(b, &Store{})
}
