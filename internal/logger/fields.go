package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldSourceKind is the structured log field key for the kind of tabular source (catalog or profile).
	FieldSourceKind = "source_kind"
	// FieldSourceURL is the structured log field key for the location of a tabular source.
	FieldSourceURL = "source_url"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger.
// A nil logger is replaced with a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SourceFields returns zap fields describing a tabular source.
// Empty values are skipped.
func SourceFields(kind, url string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSourceKind, Value: kind},
		StringField{Key: FieldSourceURL, Value: url},
	)
}

// WithSource attaches the source fields to the provided logger.
func WithSource(logger *zap.Logger, kind, url string) *zap.Logger {
	return WithFields(logger, SourceFields(kind, url)...)
}
