// Package compiler turns sources held by a host.Host into a checked
// compilation unit and emits (optionally transformed) Go text back to the
// host.
//
// The heavy lifting is done by the standard Go front end: go/parser builds
// the trees, go/types checks them as one package and go/printer generates
// the output. This package only wires those stages to the host, collects
// diagnostics and runs transformers between checking and printing.
package compiler

import (
	"go/ast"
	"go/scanner"
	"go/token"
	"go/types"
	"time"

	"github.com/teranos/memcompile/errors"
	"github.com/teranos/memcompile/host"
	"github.com/teranos/memcompile/logger"
	"go.uber.org/zap"
)

// Program is one compilation unit: the root files, their trees, and the
// result of checking them together as a single package.
type Program struct {
	options Options
	host    host.Host
	roots   []string
	trees   map[string]*ast.File

	syntactic []Diagnostic
	semantic  []Diagnostic

	pkg  *types.Package
	info *types.Info

	logger *zap.SugaredLogger
}

// NewProgram resolves rootNames through h and type-checks whatever parsed.
// Problems are recorded as diagnostics rather than returned.
func NewProgram(rootNames []string, options Options, h host.Host) *Program {
	p := &Program{
		options: options,
		host:    h,
		trees:   make(map[string]*ast.File),
		logger:  logger.ComponentLogger("compiler.program"),
	}

	start := time.Now()
	for _, name := range rootNames {
		name = h.CanonicalFileName(name)
		p.roots = append(p.roots, name)
		p.load(name)
	}
	p.check()

	p.logger.Infow("Program created",
		logger.FieldCount, len(p.roots),
		logger.FieldModule, options.ModulePath,
		logger.FieldLanguage, options.LanguageVersion,
		"diagnostics", len(p.syntactic)+len(p.semantic),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return p
}

func (p *Program) load(name string) {
	tree, err := p.host.SourceFile(name)
	if err == nil {
		p.trees[name] = tree
		return
	}

	var list scanner.ErrorList
	switch {
	case errors.As(err, &list):
		p.syntactic = append(p.syntactic, syntaxDiagnostics(list)...)
	case errors.IsNotFoundError(err):
		p.syntactic = append(p.syntactic, Diagnostic{
			Category: CategoryError, Kind: KindHost, File: name, Message: "file not found",
		})
	default:
		p.syntactic = append(p.syntactic, Diagnostic{
			Category: CategoryError, Kind: KindHost, File: name, Message: err.Error(),
		})
	}
	p.logger.Warnw("Source not loaded", logger.FieldFile, name, logger.FieldError, err)
}

// check runs go/types over every parsed root as one package.
func (p *Program) check() {
	files := p.parsedRoots()
	if len(files) == 0 {
		return
	}

	p.info = &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{
		GoVersion: p.options.LanguageVersion,
		Importer:  hostImporter{},
		Error: func(err error) {
			p.semantic = append(p.semantic, semanticDiagnostic(err))
		},
	}
	// Errors are delivered through conf.Error; the package is usable regardless
	p.pkg, _ = conf.Check(p.options.ModulePath, p.host.FileSet(), files, p.info)
}

func (p *Program) parsedRoots() []*ast.File {
	var files []*ast.File
	for _, name := range p.roots {
		if tree, ok := p.trees[name]; ok {
			files = append(files, tree)
		}
	}
	return files
}

// SourceFile returns the checked tree for name, or nil if it did not parse.
// The tree belongs to the program and must not be mutated; Emit works on
// its own copies.
func (p *Program) SourceFile(name string) *ast.File {
	return p.trees[p.host.CanonicalFileName(name)]
}

// RootNames returns the canonical root paths in the order given.
func (p *Program) RootNames() []string {
	return append([]string(nil), p.roots...)
}

func (p *Program) Options() Options { return p.options }

// Package is the checked package, nil when no root parsed.
func (p *Program) Package() *types.Package { return p.pkg }

// Info holds the type information recorded while checking.
func (p *Program) Info() *types.Info { return p.info }

func (p *Program) SyntacticDiagnostics() []Diagnostic {
	return append([]Diagnostic(nil), p.syntactic...)
}

func (p *Program) SemanticDiagnostics() []Diagnostic {
	return append([]Diagnostic(nil), p.semantic...)
}

// Diagnostics returns syntactic diagnostics followed by semantic ones.
func (p *Program) Diagnostics() []Diagnostic {
	out := p.SyntacticDiagnostics()
	return append(out, p.semantic...)
}

func (p *Program) fset() *token.FileSet { return p.host.FileSet() }

// hostImporter resolves imports for a unit that lives entirely in memory.
// Only unsafe is built in; every other path is reported as not found.
type hostImporter struct{}

func (hostImporter) Import(path string) (*types.Package, error) {
	if path == "unsafe" {
		return types.Unsafe, nil
	}
	return nil, errors.NewNotFoundError("package %q", path)
}
