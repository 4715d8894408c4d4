// Package script runs the compile, transform and emit flow end to end:
// configure, register the source with an in-memory host, build the program,
// emit with the string literal transform, and print the result.
package script

import (
	"fmt"
	"io"

	"github.com/teranos/memcompile/am"
	"github.com/teranos/memcompile/compiler"
	"github.com/teranos/memcompile/display"
	"github.com/teranos/memcompile/errors"
	"github.com/teranos/memcompile/host"
	"github.com/teranos/memcompile/logger"
	"github.com/teranos/memcompile/transform"
)

// SuccessBanner precedes the emitted text on w
const SuccessBanner = "Emit successful:"

// Result is everything a run produced, for callers that want more than the
// printed text.
type Result struct {
	Host    *host.MemoryHost
	Program *compiler.Program
	Emit    compiler.EmitResult
	Output  string
}

// Run compiles the demo source with cfg and prints the emitted file to w.
func Run(cfg *am.Config, w io.Writer) (*Result, error) {
	return RunSource(cfg, DemoFile, DemoSource, w)
}

// RunSource is Run over arbitrary source text registered as name.
// When emission is skipped it returns errors.ErrEmitFailed, with the
// diagnostics attached as details; nothing has been written to the host and
// nothing is printed.
func RunSource(cfg *am.Config, name, source string, w io.Writer) (*Result, error) {
	if cfg == nil {
		cfg = am.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := cfg.Compiler.Options()

	h := host.NewMemoryHost(opts.ParserMode())
	if err := h.AddFile(name, source); err != nil {
		return nil, err
	}
	name = h.CanonicalFileName(name)
	log := logger.ChildLogger(logger.ComponentLogger("script"), logger.FieldFile, name)

	program := compiler.NewProgram([]string{name}, opts, h)
	for _, d := range program.Diagnostics() {
		log.Infow("Diagnostic", logger.FieldLine, d.Line, "message", d.Message)
	}

	result := program.Emit(name, compiler.Transformers{
		Before: []transform.Factory{
			transform.ReplaceStringLiteral(cfg.Transform.Target, cfg.Transform.Replacement),
		},
	})
	log.Infow(display.Summary(result), logger.FieldSkipped, result.EmitSkipped)

	run := &Result{Host: h, Program: program, Emit: result}
	if result.EmitSkipped {
		err := errors.WithDetailf(errors.ErrEmitFailed, "file %s", name)
		for _, d := range result.Diagnostics {
			err = errors.WithDetail(err, display.FormatDiagnostic(d, display.ContextPlain))
		}
		return run, err
	}

	output, ok := h.Output(opts.OutputName(name))
	if !ok {
		return run, errors.WithDetailf(errors.ErrEmitFailed, "no output recorded for %s", name)
	}
	run.Output = output

	fmt.Fprintln(w, SuccessBanner)
	fmt.Fprintln(w, output)
	return run, nil
}
