package logger

import (
	"go.uber.org/zap"

	"github.com/teranos/fuzzmatch/sym"
)

// Symbol-aware logging helpers.
// These functions log with the symbol as a structured field, not in the message.
//
// Usage:
//
//	// Instead of:
//	logger.Infow(sym.Corpus + " Corpus loaded", "size", n)
//
//	// Use:
//	logger.CorpusInfow("Corpus loaded", "size", n)
//
// This makes logs queryable by symbol and keeps messages clean.

// MatchInfow logs an info message with the Match symbol (≈)
func MatchInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Match}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// MatchDebugw logs a debug message with the Match symbol (≈)
func MatchDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Match}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// CorpusInfow logs an info message with the Corpus symbol (⊞)
// Used for corpus load/reload operations
func CorpusInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Corpus}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// CorpusDebugw logs a debug message with the Corpus symbol (⊞)
func CorpusDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Corpus}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// CorpusWarnw logs a warning message with the Corpus symbol (⊞)
func CorpusWarnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Corpus}, keysAndValues...)
		Logger.Warnw(msg, fields...)
	}
}

// ServeInfow logs an info message with the Serve symbol (⟐)
// Used for MCP server lifecycle operations
func ServeInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Serve}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// ServeErrorw logs an error message with the Serve symbol (⟐)
func ServeErrorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Serve}, keysAndValues...)
		Logger.Errorw(msg, fields...)
	}
}

// WatchInfow logs an info message with the Watch symbol (◉)
// Used for watch-mode lifecycle operations
func WatchInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Watch}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// WatchDebugw logs a debug message with the Watch symbol (◉)
func WatchDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Watch}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// WithSymbol returns a logger with the given symbol as a field.
// For ad-hoc symbol usage not covered by the helpers above.
//
// Example:
//
//	symbolLogger := logger.WithSymbol(sym.Span)
//	symbolLogger.Infow("Span located", "start", s.Start)
func WithSymbol(symbol string) *zap.SugaredLogger {
	return Logger.With(FieldSymbol, symbol)
}

// SymbolInfow logs with any symbol - for dynamic symbol usage
func SymbolInfow(symbol, msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, symbol}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// ============================================================================
// Instance logger wrappers
// ============================================================================
// These functions wrap any logger with a symbol field, useful when you have
// an instance logger (e.g., s.logger, w.logger) rather than the global Logger.
//
// Usage:
//
//	// At initialization:
//	type Watcher struct {
//	    log *zap.SugaredLogger
//	}
//	w.log = logger.AddWatchSymbol(baseLogger)

// AddMatchSymbol wraps a logger with the Match symbol (≈)
func AddMatchSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Match)
}

// AddCorpusSymbol wraps a logger with the Corpus symbol (⊞)
func AddCorpusSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Corpus)
}

// AddServeSymbol wraps a logger with the Serve symbol (⟐)
func AddServeSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Serve)
}

// AddWatchSymbol wraps a logger with the Watch symbol (◉)
func AddWatchSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Watch)
}
