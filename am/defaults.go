package am

import (
	"github.com/spf13/viper"
	"github.com/teranos/memcompile/compiler"
)

// SetDefaults configures default values for all configuration options.
// Compiler defaults come straight from compiler.DefaultOptions so the two
// cannot drift apart.
func SetDefaults(v *viper.Viper) {
	opts := compiler.DefaultOptions()

	// Compiler defaults
	v.SetDefault("compiler.language_version", opts.LanguageVersion)
	v.SetDefault("compiler.module_path", opts.ModulePath)
	v.SetDefault("compiler.emit_type_metadata", opts.EmitTypeMetadata)
	v.SetDefault("compiler.parse_comments", opts.ParseComments)
	v.SetDefault("compiler.source_positions", opts.SourcePositions)
	v.SetDefault("compiler.no_emit_on_error", opts.NoEmitOnError)
	v.SetDefault("compiler.tab_width", opts.TabWidth)
	v.SetDefault("compiler.output_suffix", opts.OutputSuffix)

	// Transform defaults
	v.SetDefault("transform.target", DefaultTransformTarget)
	v.SetDefault("transform.replacement", DefaultTransformReplacement)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns the configuration built from defaults alone
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode; reaching here is a programming error
		panic(err)
	}
	return cfg
}
