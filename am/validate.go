package am

import (
	"go/version"
	"strings"

	"github.com/teranos/memcompile/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Language version must be a Go language version such as go1.21
	if !version.IsValid(c.Compiler.LanguageVersion) {
		return errors.NewInvalidConfigError("compiler.language_version %q is not a valid Go version (e.g. go1.21)", c.Compiler.LanguageVersion)
	}

	if strings.TrimSpace(c.Compiler.ModulePath) == "" {
		return errors.NewInvalidConfigError("compiler.module_path cannot be empty")
	}

	if c.Compiler.TabWidth <= 0 {
		return errors.NewInvalidConfigError("compiler.tab_width must be > 0, got %d", c.Compiler.TabWidth)
	}

	// Output must stay a Go file and must not overwrite its own input
	if !strings.HasSuffix(c.Compiler.OutputSuffix, ".go") || c.Compiler.OutputSuffix == ".go" {
		return errors.NewInvalidConfigError("compiler.output_suffix must end in .go and differ from it, got %q", c.Compiler.OutputSuffix)
	}

	// Replacing the empty string would match every "" literal
	if c.Transform.Target == "" {
		return errors.NewInvalidConfigError("transform.target cannot be empty")
	}

	if c.Log.Verbosity < 0 {
		return errors.NewInvalidConfigError("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
