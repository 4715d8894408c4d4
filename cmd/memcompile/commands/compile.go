package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/memcompile/display"
	"github.com/teranos/memcompile/logger"
	"github.com/teranos/memcompile/script"
)

// RunCompile runs the demo flow and prints the emitted file to stdout.
// Diagnostics go to stderr from -v upwards.
func RunCompile(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	result, runErr := script.Run(cfg, cmd.OutOrStdout())
	if result != nil && logger.ShouldOutput(cfg.Log.Verbosity, logger.OutputDiagnostics) {
		ctx := display.ContextTerminal
		if cfg.Log.JSON {
			ctx = display.ContextPlain
		}
		display.PrintDiagnostics(cmd.ErrOrStderr(), result.Program.Diagnostics(), ctx)
	}
	if result != nil && logger.ShouldOutput(cfg.Log.Verbosity, logger.OutputEmitSummary) {
		cmd.PrintErrln(display.Summary(result.Emit))
	}
	return runErr
}
