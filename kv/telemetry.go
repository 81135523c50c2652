package kv

import (
	"context"

	"github.com/randakar/repldbkit/internal/telemetry"
	"github.com/randakar/repldbkit/internal/x/xtelemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a [Store] that adds telemetry to s.
func WithTelemetry(
	s Store,
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) Store {
	provider := telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  m,
		LoggerProvider: l,
	}

	telem := provider.Recorder(
		"github.com/randakar/repldbkit/kv",
		telemetry.Type("kv.store", s),
		telemetry.String("kv.handle", xtelemetry.HandleID()),
	)

	return &instrumentedStore{
		Next:       s,
		Telemetry:  telem,
		Misses:     telem.Counter("misses", "{operation}", "The number of times the value associated with a specific key was requested but not present in the store."),
		KeyIO:      telem.Counter("key.io", "By", "The cumulative size of the keys that have been operated upon."),
		ValueIO:    telem.Counter("value.io", "By", "The cumulative size of the values that have been operated upon."),
		KeySize:    telem.Histogram("key.size", "By", "The sizes of the keys that have been operated upon."),
		ValueSize:  telem.Histogram("value.size", "By", "The sizes of the values that have been operated upon."),
		KeysListed: telem.Counter("keys.listed", "{key}", "The number of keys returned by list operations."),
	}
}

// instrumentedStore is a decorator that adds instrumentation to a [Store].
type instrumentedStore struct {
	Next      Store
	Telemetry *telemetry.Recorder

	Misses     telemetry.Instrument[int64]
	KeyIO      telemetry.Instrument[int64]
	ValueIO    telemetry.Instrument[int64]
	KeySize    telemetry.Instrument[int64]
	ValueSize  telemetry.Instrument[int64]
	KeysListed telemetry.Instrument[int64]
}

func (s *instrumentedStore) Get(ctx context.Context, k string) (string, bool, error) {
	keySize := int64(len(k))

	ctx, span := s.Telemetry.StartSpan(
		ctx,
		"kv.get",
		telemetry.Text("key", k),
		telemetry.Int("key_size", keySize),
	)
	defer span.End()

	s.KeyIO(ctx, keySize, telemetry.WriteDirection)
	s.KeySize(ctx, keySize, telemetry.WriteDirection)

	v, ok, err := s.Next.Get(ctx, k)
	if err != nil {
		s.Telemetry.Error(ctx, "kv.get.error", "unable to fetch value associated with key", err)
		return "", false, err
	}

	span.SetAttributes(telemetry.Bool("key_present", ok))

	if !ok {
		s.Misses(ctx, 1)
		s.Telemetry.Info(ctx, "kv.get.ok", "key is not present in store")
		return v, ok, nil
	}

	valueSize := int64(len(v))

	s.ValueIO(ctx, valueSize, telemetry.ReadDirection)
	s.ValueSize(ctx, valueSize, telemetry.ReadDirection)

	span.SetAttributes(
		telemetry.Text("value", v),
		telemetry.Int("value_size", valueSize),
	)

	s.Telemetry.Info(ctx, "kv.get.ok", "fetched value associated with key")

	return v, ok, nil
}

func (s *instrumentedStore) Set(ctx context.Context, k, v string) error {
	keySize := int64(len(k))
	valueSize := int64(len(v))

	ctx, span := s.Telemetry.StartSpan(
		ctx,
		"kv.set",
		telemetry.Text("key", k),
		telemetry.Int("key_size", keySize),
		telemetry.Text("value", v),
		telemetry.Int("value_size", valueSize),
	)
	defer span.End()

	s.KeyIO(ctx, keySize, telemetry.WriteDirection)
	s.KeySize(ctx, keySize, telemetry.WriteDirection)
	s.ValueIO(ctx, valueSize, telemetry.WriteDirection)
	s.ValueSize(ctx, valueSize, telemetry.WriteDirection)

	if err := s.Next.Set(ctx, k, v); err != nil {
		s.Telemetry.Error(ctx, "kv.set.error", "unable to set key/value pair", err)
		return err
	}

	s.Telemetry.Info(ctx, "kv.set.ok", "set key/value pair")

	return nil
}

func (s *instrumentedStore) Delete(ctx context.Context, k string) error {
	keySize := int64(len(k))

	ctx, span := s.Telemetry.StartSpan(
		ctx,
		"kv.delete",
		telemetry.Text("key", k),
		telemetry.Int("key_size", keySize),
	)
	defer span.End()

	s.KeyIO(ctx, keySize, telemetry.WriteDirection)
	s.KeySize(ctx, keySize, telemetry.WriteDirection)

	if err := s.Next.Delete(ctx, k); err != nil {
		s.Telemetry.Error(ctx, "kv.delete.error", "unable to delete key/value pair", err)
		return err
	}

	s.Telemetry.Info(ctx, "kv.delete.ok", "deleted key/value pair")

	return nil
}

func (s *instrumentedStore) List(ctx context.Context, prefix string) ([]string, error) {
	ctx, span := s.Telemetry.StartSpan(
		ctx,
		"kv.list",
		telemetry.Text("prefix", prefix),
	)
	defer span.End()

	s.Telemetry.Info(ctx, "kv.list.start", "listing keys")

	keys, err := s.Next.List(ctx, prefix)
	if err != nil {
		s.Telemetry.Error(ctx, "kv.list.error", "unable to list keys", err)
		return nil, err
	}

	var totalSize int64
	for _, k := range keys {
		keySize := int64(len(k))
		totalSize += keySize

		s.KeyIO(ctx, keySize, telemetry.ReadDirection)
		s.KeySize(ctx, keySize, telemetry.ReadDirection)
	}

	s.KeysListed(ctx, int64(len(keys)))

	span.SetAttributes(
		telemetry.Int("keys_read", len(keys)),
		telemetry.Int("bytes_read", totalSize),
	)

	s.Telemetry.Info(ctx, "kv.list.ok", "listed keys")

	return keys, nil
}
