package telemetry

import (
	"reflect"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"
	"golang.org/x/exp/constraints"
)

// Attr is a telemetry attribute that can be attached to a span, a log record
// or a metric measurement.
type Attr struct {
	key   string
	kind  attrKind
	str   string
	num   int64
	truth bool
}

type attrKind uint8

const (
	kindString attrKind = iota + 1
	kindBool
	kindInt
)

// String returns a string attribute.
func String[T ~string](k string, v T) Attr {
	return Attr{key: k, kind: kindString, str: string(v)}
}

// Type returns a string attribute set to the name of the type of v, with any
// pointer indirection removed.
func Type[T any](k string, v T) Attr {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return String(k, t.String())
}

// Bool returns a boolean attribute.
func Bool[T ~bool](k string, v T) Attr {
	return Attr{key: k, kind: kindBool, truth: bool(v)}
}

// Int returns an int64 attribute.
func Int[T constraints.Integer](k string, v T) Attr {
	return Attr{key: k, kind: kindInt, num: int64(v)}
}

// maxTextLen is the number of bytes of a key or value that are recorded by
// [Text].
const maxTextLen = 64

// Text returns a string attribute containing v, quoted as a Go string so that
// control characters are visible. Values longer than maxTextLen bytes are
// truncated and the key is suffixed with "_truncated".
func Text(k, v string) Attr {
	if len(v) > maxTextLen {
		v = v[:maxTextLen]
		k += "_truncated"
	}
	return String(k, strconv.QuoteToASCII(v))
}

func asAttrKeyValues(attrs []Attr) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attrs))

	for _, a := range attrs {
		switch a.kind {
		case kindString:
			kvs = append(kvs, attribute.String(a.key, a.str))
		case kindBool:
			kvs = append(kvs, attribute.Bool(a.key, a.truth))
		case kindInt:
			kvs = append(kvs, attribute.Int64(a.key, a.num))
		}
	}

	return kvs
}

func asLogKeyValues(attrs []Attr) []log.KeyValue {
	kvs := make([]log.KeyValue, 0, len(attrs))

	for _, a := range attrs {
		switch a.kind {
		case kindString:
			kvs = append(kvs, log.String(a.key, a.str))
		case kindBool:
			kvs = append(kvs, log.Bool(a.key, a.truth))
		case kindInt:
			kvs = append(kvs, log.Int64(a.key, a.num))
		}
	}

	return kvs
}
