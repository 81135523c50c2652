package marshaler_test

import (
	"testing"

	. "github.com/randakar/repldbkit/marshaler"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"pgregory.net/rapid"
)

func TestString(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.String().Draw(t, "value")

		data, err := String.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := String.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if actual != v {
			t.Fatalf("unexpected value: got %q, want %q", actual, v)
		}
	})
}

func TestBool(t *testing.T) {
	for _, v := range []bool{true, false} {
		data, err := Bool.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := Bool.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if actual != v {
			t.Fatalf("unexpected value: got %t, want %t", actual, v)
		}
	}

	if _, err := Bool.Unmarshal("<not a bool>"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestInt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64().Draw(t, "value")

		data, err := Int.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := Int.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if actual != v {
			t.Fatalf("unexpected value: got %d, want %d", actual, v)
		}
	})

	if _, err := Int.Unmarshal("1.5"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewJSON(t *testing.T) {
	type record struct {
		Name  string
		Count int
	}

	m := NewJSON[record]()

	data, err := m.Marshal(record{"Alice", 3})
	if err != nil {
		t.Fatal(err)
	}

	if data != `{"Name":"Alice","Count":3}` {
		t.Fatalf("unexpected data: %s", data)
	}

	actual, err := m.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if actual != (record{"Alice", 3}) {
		t.Fatalf("unexpected value: %#v", actual)
	}
}

func TestNewProto(t *testing.T) {
	t.Run("it marshals a message to its JSON form", func(t *testing.T) {
		m := NewProto[*wrapperspb.StringValue]()

		data, err := m.Marshal(wrapperspb.String("hello"))
		if err != nil {
			t.Fatal(err)
		}

		if data != `"hello"` {
			t.Fatalf("unexpected data: %s", data)
		}
	})

	t.Run("it unmarshals the message that was marshaled", func(t *testing.T) {
		m := NewProto[*structpb.Struct]()

		expect, err := structpb.NewStruct(map[string]any{
			"name":  "<name>",
			"count": 3,
		})
		if err != nil {
			t.Fatal(err)
		}

		data, err := m.Marshal(expect)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := m.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if !proto.Equal(actual, expect) {
			t.Fatalf("unexpected message: got %v, want %v", actual, expect)
		}
	})

	t.Run("it returns an error if the data is not valid", func(t *testing.T) {
		m := NewProto[*wrapperspb.Int64Value]()

		if _, err := m.Unmarshal("<not json>"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
