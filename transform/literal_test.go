package transform

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "/file.go", src, parser.ParseComments)
	require.NoError(t, err)
	return fset, file
}

func render(t *testing.T, fset *token.FileSet, node ast.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, fset, node))
	return buf.String()
}

func TestReplaceStringLiteral(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantCount int
		contains  []string
		absent    []string
	}{
		{
			name:      "top level",
			src:       "package app\n\nvar _ = \"change me\"\n",
			wantCount: 1,
			contains:  []string{`var _ = "changed"`},
			absent:    []string{"change me"},
		},
		{
			name: "nested expression",
			src: `package app

func f() []string {
	return append([]string{}, fmt("x", map[string]string{"k": "change me"}))
}

func fmt(string, map[string]string) string { return "" }
`,
			wantCount: 1,
			contains:  []string{`"k": "changed"`},
			absent:    []string{"change me"},
		},
		{
			name:      "raw literal",
			src:       "package app\n\nconst c = `change me`\n",
			wantCount: 1,
			contains:  []string{`const c = "changed"`},
		},
		{
			name:      "several occurrences",
			src:       "package app\n\nvar a, b = \"change me\", \"change me\"\n",
			wantCount: 2,
			contains:  []string{`var a, b = "changed", "changed"`},
		},
		{
			name:      "similar values untouched",
			src:       "package app\n\nvar a = \"change me please\"\nvar b = 'c'\n",
			wantCount: 0,
			contains:  []string{`"change me please"`, `'c'`},
			absent:    []string{"changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fset, file := parse(t, tt.src)
			assert.Equal(t, tt.wantCount, CountStringLiterals(file, "change me"))

			ctx := NewContext(fset, nil, nil)
			out := ReplaceStringLiteral("change me", "changed")(ctx)(file)

			text := render(t, fset, out)
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, text, s)
			}
			assert.Equal(t, 0, CountStringLiterals(out, "change me"))
		})
	}
}

func TestReplaceStringLiteral_IdempotentOnNonMatching(t *testing.T) {
	src := `package app

// SomeClass has no literals to rewrite.
type SomeClass struct {
	Name string ` + "`json:\"name\"`" + `
}

func describe(s SomeClass) string {
	if s.Name == "" {
		return "anonymous"
	}
	return s.Name
}
`
	fset, file := parse(t, src)
	before := render(t, fset, file)

	transformer := ReplaceStringLiteral("change me", "changed")(NewContext(fset, nil, nil))
	once := render(t, fset, transformer(file))
	twice := render(t, fset, transformer(file))

	assert.Equal(t, before, once)
	assert.Equal(t, once, twice)
}

func TestReplaceStringLiteral_SecondPassIsNoop(t *testing.T) {
	fset, file := parse(t, "package app\n\nvar _ = []string{\"change me\", \"keep\"}\n")
	transformer := ReplaceStringLiteral("change me", "changed")(NewContext(fset, nil, nil))

	first := render(t, fset, transformer(file))
	second := render(t, fset, transformer(file))
	assert.Equal(t, first, second)
	assert.Contains(t, second, `[]string{"changed", "keep"}`)
}

func TestVisitNode_PreOrderLeftToRight(t *testing.T) {
	_, file := parse(t, "package app\n\nvar _ = f(\"a\", g(\"b\"), \"c\")\n")

	var seen []string
	VisitNode(file, func(n ast.Node) ast.Node {
		if lit, ok := n.(*ast.BasicLit); ok {
			seen = append(seen, lit.Value)
		}
		return n
	})
	assert.Equal(t, []string{`"a"`, `"b"`, `"c"`}, seen)
}

func TestVisitNode_ReplacementNotDescended(t *testing.T) {
	fset, file := parse(t, "package app\n\nvar _ = h(\"x\")\n")

	calls := 0
	out := VisitNode(file, func(n ast.Node) ast.Node {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return n
		}
		calls++
		// Replacement contains a call too; it must not be visited again
		return &ast.CallExpr{Fun: ast.NewIdent("wrapped"), Args: []ast.Expr{call}}
	})
	assert.Equal(t, 1, calls)
	assert.Contains(t, render(t, fset, out), `wrapped(h("x"))`)
}

func TestApply_RunsFactoriesInOrder(t *testing.T) {
	fset, file := parse(t, "package app\n\nvar _ = \"a\"\n")
	ctx := NewContext(fset, nil, nil)

	out := Apply(ctx, file, []Factory{
		ReplaceStringLiteral("a", "b"),
		ReplaceStringLiteral("b", "c"),
	})
	assert.Contains(t, render(t, fset, out), `var _ = "c"`)
}
