package compiler

import (
	"go/parser"
	"go/printer"
	"strings"
)

// Defaults for Options. These are the literal values the demo compiles with.
const (
	DefaultLanguageVersion = "go1.21"
	DefaultModulePath      = "example.com/app"
	DefaultTabWidth        = 8
	DefaultOutputSuffix    = "_gen.go"
)

// Options controls parsing, checking and emission.
type Options struct {
	// LanguageVersion is the Go version the unit is checked against (types.Config.GoVersion)
	LanguageVersion string
	// ModulePath is the package path the unit is checked under
	ModulePath string
	// EmitTypeMetadata appends a designParamTypes map describing the
	// parameter types of every function and method that takes any
	EmitTypeMetadata bool
	// ParseComments keeps comments and directives in trees and output
	ParseComments bool
	// SourcePositions emits //line directives mapping output back to source
	SourcePositions bool
	// NoEmitOnError skips emission when any error diagnostic exists
	NoEmitOnError bool
	// TabWidth is passed to go/printer
	TabWidth int
	// OutputSuffix replaces the ".go" extension of an input to name its output
	OutputSuffix string
}

// DefaultOptions returns the fixed compilation options.
func DefaultOptions() Options {
	return Options{
		LanguageVersion:  DefaultLanguageVersion,
		ModulePath:       DefaultModulePath,
		EmitTypeMetadata: true,
		ParseComments:    true,
		SourcePositions:  false,
		NoEmitOnError:    false,
		TabWidth:         DefaultTabWidth,
		OutputSuffix:     DefaultOutputSuffix,
	}
}

// ParserMode is the go/parser mode implied by the options.
func (o Options) ParserMode() parser.Mode {
	mode := parser.SkipObjectResolution
	if o.ParseComments {
		mode |= parser.ParseComments
	}
	return mode
}

func (o Options) printerConfig() *printer.Config {
	mode := printer.UseSpaces | printer.TabIndent
	if o.SourcePositions {
		mode |= printer.SourcePos
	}
	width := o.TabWidth
	if width <= 0 {
		width = DefaultTabWidth
	}
	return &printer.Config{Mode: mode, Tabwidth: width}
}

// OutputName maps an input path to the path its emitted text is stored under.
// "/file.go" becomes "/file_gen.go" with the default suffix.
func (o Options) OutputName(name string) string {
	suffix := o.OutputSuffix
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	return strings.TrimSuffix(name, ".go") + suffix
}
