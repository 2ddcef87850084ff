package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skill-gap/internal/analysis"
)

const (
	// FieldRunID is the structured log field key for the analysis run identifier.
	FieldRunID = "run_id"
	// FieldSource is the structured log field key for an input reference.
	FieldSource = "source"
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

// WithFields attaches the provided fields to the logger, defaulting to a
// no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithRun tags every entry of the logger with the analysis run identifier.
func WithRun(logger *zap.Logger, runID string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldRunID, Value: runID})...)
}

// AnalysisFields summarizes an analysis result for a single log entry.
func AnalysisFields(result *analysis.Result) []zap.Field {
	if result == nil {
		return nil
	}

	return []zap.Field{
		zap.Float64("match_percentage", result.MatchPercentage),
		zap.String("similarity_method", result.SimilarityMethod),
		zap.Bool("fallback_used", result.FallbackUsed),
		zap.Int("matched", result.MatchCount),
		zap.Int("missing", len(result.MissingSkills)),
		zap.Int("extra", len(result.ExtraSkills)),
	}
}
