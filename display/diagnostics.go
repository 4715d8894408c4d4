// Package display formats compiler results for the terminal and for
// machine consumption.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/teranos/memcompile/compiler"
)

// Context selects how much decoration output gets
type Context int

const (
	ContextTerminal Context = iota // colored, multi-line
	ContextPlain                   // single line, no ANSI codes (logs, JSON, pipes)
)

// FormatDiagnostic renders one diagnostic for the given context
func FormatDiagnostic(d compiler.Diagnostic, ctx Context) string {
	if ctx == ContextPlain {
		return fmt.Sprintf("%s [%s/%s]", d.String(), d.Category, d.Kind)
	}

	var label string
	switch d.Category {
	case compiler.CategoryError:
		label = pterm.Red(string(d.Category))
	case compiler.CategoryWarning:
		label = pterm.Yellow(string(d.Category))
	default:
		label = string(d.Category)
	}

	location := d.File
	if d.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	}
	if location == "" {
		return fmt.Sprintf("%s %s %s", label, pterm.Gray("("+string(d.Kind)+")"), d.Message)
	}
	return fmt.Sprintf("%s %s %s %s", pterm.LightCyan(location), label, pterm.Gray("("+string(d.Kind)+")"), d.Message)
}

// PrintDiagnostics writes every diagnostic on its own line
func PrintDiagnostics(w io.Writer, diags []compiler.Diagnostic, ctx Context) {
	for _, d := range diags {
		fmt.Fprintln(w, FormatDiagnostic(d, ctx))
	}
}

// Summary describes an emit result in one line, e.g.
// "emitted 1 file (/file_gen.go), 0 errors, 1 warning"
func Summary(result compiler.EmitResult) string {
	errs, warns := 0, 0
	for _, d := range result.Diagnostics {
		if d.IsError() {
			errs++
		} else {
			warns++
		}
	}

	var b strings.Builder
	if result.EmitSkipped {
		b.WriteString("emit skipped")
	} else {
		fmt.Fprintf(&b, "emitted %s", plural(len(result.EmittedFiles), "file"))
		if len(result.EmittedFiles) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(result.EmittedFiles, ", "))
		}
	}
	fmt.Fprintf(&b, ", %s, %s", plural(errs, "error"), plural(warns, "warning"))
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
