package errorx_test

import (
	"errors"
	"testing"

	. "github.com/randakar/repldbkit/internal/errorx"
	"github.com/randakar/repldbkit/kv"
)

func TestBackend(t *testing.T) {
	t.Run("it leaves a nil error unchanged", func(t *testing.T) {
		var err error
		Backend(&err, "get", "<key>")

		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	})

	t.Run("it wraps the error in a backend error", func(t *testing.T) {
		cause := errors.New("<cause>")
		err := cause
		Backend(&err, "set", "<key>")

		var target *kv.BackendError
		if !errors.As(err, &target) {
			t.Fatalf("unexpected error: got %v, want a backend error", err)
		}
		if target.Op != "set" || target.Key != "<key>" || target.Cause != cause {
			t.Fatalf("unexpected error details: %#v", target)
		}
	})

	t.Run("it does not wrap a backend error twice", func(t *testing.T) {
		original := &kv.BackendError{
			Op:    "list",
			Key:   "<prefix>",
			Cause: errors.New("<cause>"),
		}

		var err error = original
		Backend(&err, "delete", "<key>")

		if err != original {
			t.Fatalf("unexpected error: got %v, want %v", err, original)
		}
	})
}
