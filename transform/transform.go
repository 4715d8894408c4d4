// Package transform rewrites parsed Go syntax trees between type checking
// and emission.
//
// A Factory receives the Context of the compilation and returns the
// Transformer applied to each emitted file. Factories run in the order they
// are given, each seeing the output of the previous one.
package transform

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/teranos/memcompile/logger"
	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/astutil"
)

// Context is the state shared with transformers during one emit.
// Package and Info are nil when type checking produced nothing usable.
// Info is keyed by the nodes of the checked trees, not of the copy being
// transformed, so objects should be looked up by name through Package.
type Context struct {
	Fset    *token.FileSet
	Package *types.Package
	Info    *types.Info
	Logger  *zap.SugaredLogger
}

// NewContext returns a Context logging under the transform component.
func NewContext(fset *token.FileSet, pkg *types.Package, info *types.Info) *Context {
	return &Context{
		Fset:    fset,
		Package: pkg,
		Info:    info,
		Logger:  logger.ComponentLogger("transform"),
	}
}

// Transformer rewrites one file and returns the result.
type Transformer func(file *ast.File) *ast.File

// Factory builds a Transformer for a compilation.
type Factory func(ctx *Context) Transformer

// Visitor is called for every node in pre-order. Returning a node other than
// n (and not nil) replaces n; the replacement is not visited. Returning n or
// nil leaves n in place and its children are visited next.
type Visitor func(n ast.Node) ast.Node

// VisitNode walks root depth first, left to right, applying v once per node.
// It returns root, or its replacement when v replaced root itself.
func VisitNode(root ast.Node, v Visitor) ast.Node {
	return astutil.Apply(root, func(c *astutil.Cursor) bool {
		n := c.Node()
		if n == nil {
			return true
		}
		if r := v(n); r != nil && r != n {
			c.Replace(r)
			return false
		}
		return true
	}, nil)
}

// Apply runs factories over file in order.
func Apply(ctx *Context, file *ast.File, factories []Factory) *ast.File {
	for _, f := range factories {
		file = f(ctx)(file)
	}
	return file
}
