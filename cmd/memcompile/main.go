package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/memcompile/cmd/memcompile/commands"
	"github.com/teranos/memcompile/logger"
)

var rootCmd = &cobra.Command{
	Use:   "memcompile",
	Short: "Compile, transform and emit a Go file entirely in memory",
	Long: `memcompile - drive the Go front end through an in-memory host.

Registers one synthetic Go source with an in-memory host, parses and
type-checks it, rewrites the string literal "change me" to "changed",
and prints the emitted file. Nothing touches the real filesystem.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (MEMCOMPILE_* prefix)
3. ./memcompile.toml found upwards from the working directory
4. Default values

--config replaces layers 2 and 3: only that file and the defaults are read,
and MEMCOMPILE_* variables are ignored.

Examples:
  memcompile                    # Compile the demo and print the output
  memcompile -v                 # Also show diagnostics and an emit summary
  memcompile am show            # Show the configuration in effect
  memcompile version            # Show build information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commands.LoadConfig(cmd)
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: commands.RunCompile,
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Emit logs as JSON on stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to a memcompile.toml; disables the MEMCOMPILE_* environment layer (default: search upwards from the working directory)")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
