package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Files and positions
	FieldFile   = "file"
	FieldOutput = "output"
	FieldLine   = "line"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Compilation
	FieldTarget      = "target"
	FieldReplacement = "replacement"
	FieldLanguage    = "language_version"
	FieldModule      = "module"
	FieldSkipped     = "emit_skipped"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Program struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewProgram() *Program {
//	    return &Program{logger: logger.ComponentLogger("compiler.program")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
