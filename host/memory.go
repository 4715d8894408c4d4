package host

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"sort"

	"github.com/spf13/afero"
	"github.com/teranos/memcompile/errors"
	"github.com/teranos/memcompile/logger"
	"go.uber.org/zap"
)

const filePermissions = 0644

// MemoryHost keeps sources, parsed trees and outputs in process memory.
// Sources and outputs are separate afero.MemMapFs instances so an output can
// never shadow a source of the same name.
type MemoryHost struct {
	fset    *token.FileSet
	sources afero.Fs
	outputs afero.Fs
	trees   map[string]*ast.File
	mode    parser.Mode
	logger  *zap.SugaredLogger
}

// NewMemoryHost creates an empty host. mode is passed to go/parser when a
// tree is first derived from a source.
func NewMemoryHost(mode parser.Mode) *MemoryHost {
	return &MemoryHost{
		fset:    token.NewFileSet(),
		sources: afero.NewMemMapFs(),
		outputs: afero.NewMemMapFs(),
		trees:   make(map[string]*ast.File),
		mode:    mode,
		logger:  logger.ComponentLogger("host.memory"),
	}
}

func (h *MemoryHost) FileSet() *token.FileSet { return h.fset }

// AddFile registers source text under name, replacing any earlier text and
// dropping a tree derived from it.
func (h *MemoryHost) AddFile(name, text string) error {
	name = h.CanonicalFileName(name)
	if err := afero.WriteFile(h.sources, name, []byte(text), filePermissions); err != nil {
		return errors.Wrapf(err, "failed to register %s", name)
	}
	delete(h.trees, name)
	h.logger.Debugw("Registered source", logger.FieldFile, name, logger.FieldSize, len(text))
	return nil
}

func (h *MemoryHost) FileExists(name string) bool {
	ok, err := afero.Exists(h.sources, h.CanonicalFileName(name))
	return err == nil && ok
}

func (h *MemoryHost) ReadFile(name string) (string, error) {
	name = h.CanonicalFileName(name)
	data, err := afero.ReadFile(h.sources, name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("source %s", name)
		}
		return "", errors.Wrapf(err, "failed to read %s", name)
	}
	return string(data), nil
}

// SourceFile returns the tree for name, parsing the registered text on first
// use. Failed parses are not cached; the returned error keeps the
// scanner.ErrorList reachable through errors.As.
func (h *MemoryHost) SourceFile(name string) (*ast.File, error) {
	name = h.CanonicalFileName(name)
	if tree, ok := h.trees[name]; ok {
		return tree, nil
	}

	text, err := h.ReadFile(name)
	if err != nil {
		return nil, err
	}

	tree, err := parser.ParseFile(h.fset, name, text, h.mode)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", name)
	}
	h.trees[name] = tree
	return tree, nil
}

func (h *MemoryHost) WriteFile(name, text string) error {
	name = h.CanonicalFileName(name)
	if err := afero.WriteFile(h.outputs, name, []byte(text), filePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	h.logger.Debugw("Captured output", logger.FieldOutput, name, logger.FieldSize, len(text))
	return nil
}

// Output returns emitted text recorded under name.
func (h *MemoryHost) Output(name string) (string, bool) {
	data, err := afero.ReadFile(h.outputs, h.CanonicalFileName(name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Outputs returns a copy of every recorded output keyed by path.
func (h *MemoryHost) Outputs() map[string]string {
	out := make(map[string]string)
	_ = afero.Walk(h.outputs, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if data, err := afero.ReadFile(h.outputs, p); err == nil {
			out[p] = string(data)
		}
		return nil
	})
	return out
}

// SourceNames lists registered sources in lexical order.
func (h *MemoryHost) SourceNames() []string {
	var names []string
	_ = afero.Walk(h.sources, "/", func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

func (h *MemoryHost) CurrentDirectory() string { return "/" }

// CanonicalFileName roots relative names at the current directory and
// cleans the result. Case is preserved.
func (h *MemoryHost) CanonicalFileName(name string) string {
	if !path.IsAbs(name) {
		name = path.Join(h.CurrentDirectory(), name)
	}
	return path.Clean(name)
}

func (h *MemoryHost) UseCaseSensitiveFileNames() bool { return true }

func (h *MemoryHost) NewLine() string { return "\n" }

var _ Host = (*MemoryHost)(nil)
