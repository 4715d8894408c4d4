package compiler

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"time"

	"github.com/teranos/memcompile/logger"
	"github.com/teranos/memcompile/transform"
)

// Transformers are applied to each emitted file. Before runs on the tree as
// parsed; After runs once generated declarations (type metadata) are added.
type Transformers struct {
	Before []transform.Factory
	After  []transform.Factory
}

// EmitResult reports what Emit did. When EmitSkipped is set nothing was
// written to the host.
type EmitResult struct {
	EmitSkipped  bool         `json:"emit_skipped"`
	Diagnostics  []Diagnostic `json:"diagnostics,omitempty"`
	EmittedFiles []string     `json:"emitted_files,omitempty"`
}

// generatedHeader marks emitted files as generated (see go help generate)
const generatedHeader = "// Code generated by memcompile from %s. DO NOT EDIT.\n\n"

type pendingOutput struct {
	name string
	text string
}

// Emit transforms and prints name, or every root when name is empty, and
// records the text with the host. Emission is all-or-nothing: if any target
// cannot be emitted, no output is written.
func (p *Program) Emit(name string, transformers Transformers) EmitResult {
	start := time.Now()
	targets := p.roots
	if name != "" {
		targets = []string{p.host.CanonicalFileName(name)}
	}

	var result EmitResult
	skip := func(d Diagnostic) {
		result.EmitSkipped = true
		result.Diagnostics = append(result.Diagnostics, d)
	}

	if p.options.NoEmitOnError && hasErrors(p.Diagnostics()) {
		result.EmitSkipped = true
		result.Diagnostics = p.Diagnostics()
		p.logSkipped(result)
		return result
	}

	var pending []pendingOutput
	for _, target := range targets {
		if _, ok := p.trees[target]; !ok {
			if !p.isRoot(target) {
				skip(Diagnostic{Category: CategoryError, Kind: KindEmit, File: target, Message: "not a root file of the program"})
				continue
			}
			// A root without a tree already carries its syntactic diagnostics
			result.EmitSkipped = true
			result.Diagnostics = append(result.Diagnostics, p.diagnosticsFor(target)...)
			continue
		}

		text, warnings, err := p.emitFile(target, transformers)
		result.Diagnostics = append(result.Diagnostics, warnings...)
		if err != nil {
			skip(Diagnostic{Category: CategoryError, Kind: KindEmit, File: target, Message: err.Error()})
			continue
		}
		pending = append(pending, pendingOutput{name: p.options.OutputName(target), text: text})
	}

	if result.EmitSkipped {
		p.logSkipped(result)
		return result
	}

	for _, out := range pending {
		if err := p.host.WriteFile(out.name, out.text); err != nil {
			skip(Diagnostic{Category: CategoryError, Kind: KindEmit, File: out.name, Message: err.Error()})
			p.logSkipped(result)
			return result
		}
		result.EmittedFiles = append(result.EmittedFiles, out.name)
	}

	p.logger.Infow("Emit complete",
		logger.FieldCount, len(result.EmittedFiles),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return result
}

// emitFile transforms a private copy of target and prints it. The program's
// checked tree is only read, for type metadata.
func (p *Program) emitFile(target string, transformers Transformers) (string, []Diagnostic, error) {
	text, err := p.host.ReadFile(target)
	if err != nil {
		return "", nil, err
	}
	file, err := parser.ParseFile(p.fset(), target, text, p.options.ParserMode())
	if err != nil {
		return "", nil, err
	}

	ctx := transform.NewContext(p.fset(), p.pkg, p.info)
	file = transform.Apply(ctx, file, transformers.Before)

	var warnings []Diagnostic
	if p.options.EmitTypeMetadata {
		if w := p.injectTypeMetadata(file, target); w != nil {
			warnings = append(warnings, *w)
		}
	}

	file = transform.Apply(ctx, file, transformers.After)

	out, err := p.print(target, file)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

func (p *Program) print(target string, file *ast.File) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, generatedHeader, target)
	if err := p.options.printerConfig().Fprint(&buf, p.fset(), file); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *Program) isRoot(name string) bool {
	for _, r := range p.roots {
		if r == name {
			return true
		}
	}
	return false
}

func (p *Program) diagnosticsFor(name string) []Diagnostic {
	var out []Diagnostic
	for _, d := range p.syntactic {
		if d.File == name {
			out = append(out, d)
		}
	}
	return out
}

func (p *Program) logSkipped(result EmitResult) {
	p.logger.Warnw("Emit skipped",
		logger.FieldSkipped, true,
		"diagnostics", len(result.Diagnostics))
}
