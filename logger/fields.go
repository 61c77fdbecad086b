package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across fuzzmatch.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRequestID = "request_id"
	FieldComponent = "component"
	FieldSymbol    = "symbol"

	// Matching
	FieldQuery       = "query"
	FieldQueryLength = "query_length"
	FieldMatches     = "matches"
	FieldCandidates  = "candidates"
	FieldSimilarity  = "similarity"
	FieldTopMatch    = "top_match"

	// Corpus
	FieldCorpusSize  = "size"
	FieldRawSize     = "raw_size"
	FieldFingerprint = "fingerprint"
	FieldFormat      = "format"

	// Timing
	FieldDurationUS = "duration_us"

	// Errors
	FieldError = "error"

	// Files
	FieldFile = "file"
	FieldPath = "path"

	// Tools
	FieldTool = "tool"
)

// Context keys for propagating logging context
type contextKey string

const (
	requestIDKey contextKey = "logger_request_id"
	componentKey contextKey = "logger_component"
)

// WithRequestID adds a request ID to the context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		fields = append(fields, FieldRequestID, requestID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
// Use this to get a logger that automatically includes request_id etc.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{
//	        logger: logger.ComponentLogger("fuzzmatch.watch"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	queryLogger := logger.ChildLogger(baseLogger, "request_id", id)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
