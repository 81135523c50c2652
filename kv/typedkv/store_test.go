package typedkv_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/randakar/repldbkit/driver/http/replitkv/replittest"
	"github.com/randakar/repldbkit/driver/memory/memorykv"
	. "github.com/randakar/repldbkit/kv/typedkv"
	"github.com/randakar/repldbkit/marshaler"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestStore(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	store := Store[string, int, marshaler.Marshaler[string], marshaler.Marshaler[int]]{
		Store:          &memorykv.Store{},
		KeyMarshaler:   marshaler.String,
		ValueMarshaler: marshaler.NewJSON[int](),
	}

	pairs := map[string]int{
		"one": 1,
		"two": 2,
	}

	for k, v := range pairs {
		if err := store.Set(ctx, k, v); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	fn := func(ctx context.Context, k string, v int) (bool, error) {
		expect := pairs[k]
		if v != expect {
			t.Fatalf("unexpected value for key %q: got %d, want %d", k, v, expect)
		}
		return true, nil
	}

	if err := store.Range(ctx, fn); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for k := range pairs {
		v, ok, err := store.Get(ctx, k)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !ok {
			t.Fatalf("expected key %q to exist", k)
		}
		fn(ctx, k, v)

		if err := store.Delete(ctx, k); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		_, ok, err = store.Get(ctx, k)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if ok {
			t.Fatalf("expected key %q to be deleted", k)
		}
	}

	if err := store.Range(
		ctx,
		func(ctx context.Context, k string, v int) (bool, error) {
			return false, fmt.Errorf("unexpected range function invocation (%q, %d)", k, v)
		},
	); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestStore_Range(t *testing.T) {
	t.Run("it stops ranging when the function returns false", func(t *testing.T) {
		store := Store[string, bool, marshaler.Marshaler[string], marshaler.Marshaler[bool]]{
			Store:          &memorykv.Store{},
			KeyMarshaler:   marshaler.String,
			ValueMarshaler: marshaler.Bool,
		}

		for _, k := range []string{"a", "b", "c"} {
			if err := store.Set(t.Context(), k, true); err != nil {
				t.Fatal(err)
			}
		}

		calls := 0
		if err := store.Range(
			t.Context(),
			func(context.Context, string, bool) (bool, error) {
				calls++
				return false, nil
			},
		); err != nil {
			t.Fatal(err)
		}

		if calls != 1 {
			t.Fatalf("unexpected number of calls: got %d, want 1", calls)
		}
	})

	t.Run("it returns an error if a value cannot be unmarshaled", func(t *testing.T) {
		underlying := &memorykv.Store{}
		store := Store[string, bool, marshaler.Marshaler[string], marshaler.Marshaler[bool]]{
			Store:          underlying,
			KeyMarshaler:   marshaler.String,
			ValueMarshaler: marshaler.Bool,
		}

		if err := underlying.Set(t.Context(), "<key>", "<not a bool>"); err != nil {
			t.Fatal(err)
		}

		if err := store.Range(
			t.Context(),
			func(context.Context, string, bool) (bool, error) {
				t.Fatal("unexpected call")
				return false, nil
			},
		); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestStore_protocolBuffers(t *testing.T) {
	store := Store[
		string,
		*timestamppb.Timestamp,
		marshaler.Marshaler[string],
		marshaler.Marshaler[*timestamppb.Timestamp],
	]{
		Store:          replittest.NewClient(t, &memorykv.Store{}),
		KeyMarshaler:   marshaler.String,
		ValueMarshaler: marshaler.NewProto[*timestamppb.Timestamp](),
	}

	expect := timestamppb.New(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))

	if err := store.Set(t.Context(), "last seen/alice", expect); err != nil {
		t.Fatal(err)
	}

	actual, ok, err := store.Get(t.Context(), "last seen/alice")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}

	if !proto.Equal(actual, expect) {
		t.Fatalf("unexpected value: got %v, want %v", actual, expect)
	}

	keys, err := store.Keys(t.Context())
	if err != nil {
		t.Fatal(err)
	}

	if len(keys) != 1 || keys[0] != "last seen/alice" {
		t.Fatalf("unexpected keys: %q", keys)
	}
}
