package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  kind  ", Value: "  catalog  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "kind" || fields[0].String != "catalog" {
		t.Fatalf("unexpected kind field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestSourceFields(t *testing.T) {
	fields := SourceFields("  catalog  ", "https://example.com/sheet.csv")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldSourceKind || fields[0].String != "catalog" {
		t.Fatalf("unexpected kind field: %+v", fields[0])
	}

	if fields[1].Key != FieldSourceURL || fields[1].String != "https://example.com/sheet.csv" {
		t.Fatalf("unexpected url field: %+v", fields[1])
	}

	if empty := SourceFields("", ""); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithSource(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithSource(logger, "profile", "profile.csv").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldSourceKind] != "profile" {
		t.Fatalf("expected kind field to be profile, got %q", ctx[FieldSourceKind])
	}
	if ctx[FieldSourceURL] != "profile.csv" {
		t.Fatalf("expected url field to be profile.csv, got %q", ctx[FieldSourceURL])
	}

	WithSource(nil, "profile", "profile.csv").Info("another log")
}
