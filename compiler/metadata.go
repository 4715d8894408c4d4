package compiler

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

// MetadataVarName is the package-level variable type metadata is emitted as.
const MetadataVarName = "designParamTypes"

// injectTypeMetadata appends
//
//	var designParamTypes = map[string][]string{"F": {"T1", "T2"}, "Recv.M": {...}}
//
// to file when target is the metadata owner: the first root, in root order,
// declaring a function that takes parameters. The map describes the functions
// of every root so the emitted files still form one package. Types are written
// relative to the checked package. A warning is returned when the name is
// already taken.
func (p *Program) injectTypeMetadata(file *ast.File, target string) *Diagnostic {
	if p.info == nil || p.pkg == nil {
		return nil
	}
	owner, elts := p.typeMetadata()
	if owner != target {
		return nil
	}
	if p.pkg.Scope().Lookup(MetadataVarName) != nil {
		return &Diagnostic{
			Category: CategoryWarning,
			Kind:     KindEmit,
			File:     target,
			Message:  MetadataVarName + " is already declared; type metadata not emitted",
		}
	}

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(MetadataVarName)},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: &ast.MapType{
					Key:   ast.NewIdent("string"),
					Value: &ast.ArrayType{Elt: ast.NewIdent("string")},
				},
				Elts: elts,
			}},
		}},
	})
	return nil
}

// typeMetadata collects map entries for every root in declaration order and
// names the root that carries them. owner is empty when no function qualifies.
func (p *Program) typeMetadata() (owner string, elts []ast.Expr) {
	qualifier := types.RelativeTo(p.pkg)
	for _, root := range p.roots {
		checked, ok := p.trees[root]
		if !ok {
			continue
		}
		for _, decl := range checked.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			fn, ok := p.info.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}
			sig := fn.Type().(*types.Signature)
			if sig.Params().Len() == 0 {
				continue
			}

			params := make([]ast.Expr, 0, sig.Params().Len())
			for i := 0; i < sig.Params().Len(); i++ {
				params = append(params, stringLit(types.TypeString(sig.Params().At(i).Type(), qualifier)))
			}
			elts = append(elts, &ast.KeyValueExpr{
				Key:   stringLit(metadataKey(fn, sig, qualifier)),
				Value: &ast.CompositeLit{Elts: params},
			})
			if owner == "" {
				owner = root
			}
		}
	}
	return owner, elts
}

// metadataKey is "Name" for functions and "Recv.Name" for methods.
func metadataKey(fn *types.Func, sig *types.Signature, qualifier types.Qualifier) string {
	if sig.Recv() == nil {
		return fn.Name()
	}
	recv := strings.TrimPrefix(types.TypeString(sig.Recv().Type(), qualifier), "*")
	return recv + "." + fn.Name()
}

func stringLit(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}
