package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/memcompile/am"
)

// LoadConfig resolves the configuration for cmd: --config when given,
// otherwise the layered am.Load, then persistent flag overrides.
func LoadConfig(cmd *cobra.Command) (*am.Config, error) {
	var (
		cfg *am.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = am.LoadFromFile(path)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, err
	}
	// am.Load hands out a shared config; overrides stay with this command
	overridden := *cfg
	cfg = &overridden

	// Flags win over every other source
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity, _ = cmd.Flags().GetCount("verbose")
	}
	if cmd.Flags().Changed("json-log") {
		cfg.Log.JSON, _ = cmd.Flags().GetBool("json-log")
	}
	return cfg, nil
}
