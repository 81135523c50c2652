package telemetry

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
)

func TestAttr(t *testing.T) {
	t.Parallel()

	t.Run("it converts attributes to their otel representation", func(t *testing.T) {
		t.Parallel()

		type named string

		actual := asAttrKeyValues([]Attr{
			String("s", named("<value>")),
			Bool("b", true),
			Int("i", uint8(42)),
			Type("t", &strings.Builder{}),
			{},
		})

		expect := []attribute.KeyValue{
			attribute.String("s", "<value>"),
			attribute.Bool("b", true),
			attribute.Int64("i", 42),
			attribute.String("t", "strings.Builder"),
		}

		if diff := cmp.Diff(expect, actual, cmp.Comparer(func(a, b attribute.Value) bool {
			return a.Emit() == b.Emit() && a.Type() == b.Type()
		})); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it quotes text", func(t *testing.T) {
		t.Parallel()

		a := Text("key", "line\nbreak")

		if a.key != "key" || a.str != `"line\nbreak"` {
			t.Fatalf("unexpected attribute: %#v", a)
		}
	})

	t.Run("it truncates long text", func(t *testing.T) {
		t.Parallel()

		a := Text("value", strings.Repeat("x", 100))

		if a.key != "value_truncated" {
			t.Fatalf("unexpected key: %q", a.key)
		}

		if expect := `"` + strings.Repeat("x", maxTextLen) + `"`; a.str != expect {
			t.Fatalf("unexpected value: %q", a.str)
		}
	})
}
