// Package am holds memcompile's configuration ("I am"): the compiler
// options, the literal transform and logging preferences.
//
// Defaults are the fixed literal options the demo compiles with. A project
// memcompile.toml and MEMCOMPILE_* environment variables can override them.
package am

import "github.com/teranos/memcompile/compiler"

// Config represents the memcompile configuration
type Config struct {
	Compiler  CompilerConfig  `mapstructure:"compiler" toml:"compiler" yaml:"compiler" json:"compiler"`
	Transform TransformConfig `mapstructure:"transform" toml:"transform" yaml:"transform" json:"transform"`
	Log       LogConfig       `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// CompilerConfig mirrors compiler.Options
type CompilerConfig struct {
	LanguageVersion  string `mapstructure:"language_version" toml:"language_version" yaml:"language_version" json:"language_version"`       // go/types language version (default: go1.21)
	ModulePath       string `mapstructure:"module_path" toml:"module_path" yaml:"module_path" json:"module_path"`                          // package path the unit is checked under
	EmitTypeMetadata bool   `mapstructure:"emit_type_metadata" toml:"emit_type_metadata" yaml:"emit_type_metadata" json:"emit_type_metadata"` // append designParamTypes
	ParseComments    bool   `mapstructure:"parse_comments" toml:"parse_comments" yaml:"parse_comments" json:"parse_comments"`
	SourcePositions  bool   `mapstructure:"source_positions" toml:"source_positions" yaml:"source_positions" json:"source_positions"` // //line directives
	NoEmitOnError    bool   `mapstructure:"no_emit_on_error" toml:"no_emit_on_error" yaml:"no_emit_on_error" json:"no_emit_on_error"`
	TabWidth         int    `mapstructure:"tab_width" toml:"tab_width" yaml:"tab_width" json:"tab_width"`
	OutputSuffix     string `mapstructure:"output_suffix" toml:"output_suffix" yaml:"output_suffix" json:"output_suffix"` // "/file.go" -> "/file_gen.go"
}

// TransformConfig configures the string literal rewrite
type TransformConfig struct {
	Target      string `mapstructure:"target" toml:"target" yaml:"target" json:"target"`                // literal value to replace (default: "change me")
	Replacement string `mapstructure:"replacement" toml:"replacement" yaml:"replacement" json:"replacement"` // value written instead (default: "changed")
}

// LogConfig configures logger.Initialize
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" yaml:"verbosity" json:"verbosity"` // same scale as -v count
}

// Transform defaults
const (
	DefaultTransformTarget      = "change me"
	DefaultTransformReplacement = "changed"
)

// ProjectConfigName is searched for from the working directory upwards
const ProjectConfigName = "memcompile.toml"

// Options converts the configuration into compiler options
func (c CompilerConfig) Options() compiler.Options {
	return compiler.Options{
		LanguageVersion:  c.LanguageVersion,
		ModulePath:       c.ModulePath,
		EmitTypeMetadata: c.EmitTypeMetadata,
		ParseComments:    c.ParseComments,
		SourcePositions:  c.SourcePositions,
		NoEmitOnError:    c.NoEmitOnError,
		TabWidth:         c.TabWidth,
		OutputSuffix:     c.OutputSuffix,
	}
}
