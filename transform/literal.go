package transform

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/teranos/memcompile/logger"
)

// ReplaceStringLiteral returns a Factory replacing every string literal whose
// value equals target with a double-quoted literal holding replacement.
// Interpreted and raw literals are compared by their unquoted value.
func ReplaceStringLiteral(target, replacement string) Factory {
	return func(ctx *Context) Transformer {
		return func(file *ast.File) *ast.File {
			replaced := 0
			visitor := func(n ast.Node) ast.Node {
				lit, ok := n.(*ast.BasicLit)
				if !ok || !isStringLiteral(lit, target) {
					return n
				}
				replaced++
				if ctx != nil && ctx.Logger != nil && ctx.Fset != nil {
					ctx.Logger.Debugw("Replacing string literal",
						logger.FieldFile, ctx.Fset.Position(lit.Pos()).String(),
						logger.FieldTarget, target,
						logger.FieldReplacement, replacement)
				}
				return &ast.BasicLit{
					ValuePos: lit.ValuePos,
					Kind:     token.STRING,
					Value:    strconv.Quote(replacement),
				}
			}
			out := VisitNode(file, visitor).(*ast.File)
			if ctx != nil && ctx.Logger != nil {
				ctx.Logger.Infow("String literal transform complete",
					logger.FieldTarget, target, logger.FieldCount, replaced)
			}
			return out
		}
	}
}

// CountStringLiterals reports how many string literals under root hold value.
func CountStringLiterals(root ast.Node, value string) int {
	count := 0
	ast.Inspect(root, func(n ast.Node) bool {
		if lit, ok := n.(*ast.BasicLit); ok && isStringLiteral(lit, value) {
			count++
		}
		return true
	})
	return count
}

func isStringLiteral(lit *ast.BasicLit, value string) bool {
	if lit.Kind != token.STRING {
		return false
	}
	s, err := strconv.Unquote(lit.Value)
	return err == nil && s == value
}
