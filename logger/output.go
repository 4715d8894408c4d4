package logger

// OutputCategory defines a category of output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Emitted text
	OutputErrors                        // Fatal errors

	// Level 1 (-v)
	OutputDiagnostics // Syntax and type diagnostics of the program
	OutputEmitSummary // Files written, skipped state

	// Level 2 (-vv)
	OutputConfig // Compiler options in effect
	OutputTiming // Per-phase timing

	// Level 3 (-vvv)
	OutputReplacements // Every rewritten literal with its position
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:      VerbosityUser,
	OutputErrors:       VerbosityUser,
	OutputDiagnostics:  VerbosityInfo,
	OutputEmitSummary:  VerbosityInfo,
	OutputConfig:       VerbosityDebug,
	OutputTiming:       VerbosityDebug,
	OutputReplacements: VerbosityTrace,
}

// ShouldOutput reports whether the category is visible at the given verbosity.
// Unknown categories are only shown at trace verbosity.
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
