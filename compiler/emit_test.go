package compiler

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/memcompile/transform"
)

func replaceChangeMe() Transformers {
	return Transformers{Before: []transform.Factory{
		transform.ReplaceStringLiteral("change me", "changed"),
	}}
}

func TestEmit_ReplacesTargetLiteral(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": decoratedSource})
	p := NewProgram([]string{"/file.go"}, opts, h)

	result := p.Emit("/file.go", replaceChangeMe())

	require.False(t, result.EmitSkipped)
	assert.Equal(t, []string{"/file_gen.go"}, result.EmittedFiles)

	out, ok := h.Output("/file_gen.go")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(out, "// Code generated by memcompile from /file.go. DO NOT EDIT.\n"))
	assert.Contains(t, out, `var _ = "changed"`)
	assert.NotContains(t, out, "change me")
	assert.Contains(t, out, "type AppComponent struct")
}

func TestEmit_NoTargetLiteralMatchesPlainEmit(t *testing.T) {
	src := "package app\n\n// Greeting is untouched.\nfunc Greeting(name string) string {\n\treturn \"hello \" + name\n}\n"
	opts := DefaultOptions()

	plainHost := newHost(t, opts, map[string]string{"/file.go": src})
	plain := NewProgram([]string{"/file.go"}, opts, plainHost).Emit("", Transformers{})
	require.False(t, plain.EmitSkipped)

	transformedHost := newHost(t, opts, map[string]string{"/file.go": src})
	transformed := NewProgram([]string{"/file.go"}, opts, transformedHost).Emit("", replaceChangeMe())
	require.False(t, transformed.EmitSkipped)

	want, _ := plainHost.Output("/file_gen.go")
	got, _ := transformedHost.Output("/file_gen.go")
	assert.Equal(t, want, got)
}

func TestEmit_NestedLiteralReplaced(t *testing.T) {
	src := `package app

type pair struct{ k, v string }

func build() []pair {
	return []pair{{k: "a", v: func() string { return "change me" }()}}
}
`
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": src})
	result := NewProgram([]string{"/file.go"}, opts, h).Emit("", replaceChangeMe())
	require.False(t, result.EmitSkipped)

	out, _ := h.Output("/file_gen.go")
	assert.Contains(t, out, `return "changed"`)
	assert.NotContains(t, out, "change me")
}

func TestEmit_EmptyInputSkipsWithoutOutput(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": ""})
	p := NewProgram([]string{"/file.go"}, opts, h)

	result := p.Emit("/file.go", replaceChangeMe())

	assert.True(t, result.EmitSkipped)
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, KindSyntax, result.Diagnostics[0].Kind)
	assert.Empty(t, result.EmittedFiles)
	assert.Empty(t, h.Outputs())
}

func TestEmit_UnregisteredFileSkips(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, nil)
	result := NewProgram([]string{"/file.go"}, opts, h).Emit("", Transformers{})

	assert.True(t, result.EmitSkipped)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, KindHost, result.Diagnostics[0].Kind)
	assert.Empty(t, h.Outputs())
}

func TestEmit_AllOrNothing(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{
		"/a.go": "package app\n\nvar A = \"change me\"\n",
		"/b.go": "package app\n\nvar B = \n",
	})
	p := NewProgram([]string{"/a.go", "/b.go"}, opts, h)

	result := p.Emit("", replaceChangeMe())
	assert.True(t, result.EmitSkipped)
	assert.Empty(t, h.Outputs(), "a.go must not be written when b.go fails")

	// Emitting only the healthy root still works
	single := p.Emit("/a.go", replaceChangeMe())
	require.False(t, single.EmitSkipped)
	assert.Equal(t, []string{"/a_gen.go"}, single.EmittedFiles)
}

func TestEmit_NonRootName(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/a.go": "package app\n", "/b.go": "package app\n"})
	result := NewProgram([]string{"/a.go"}, opts, h).Emit("/b.go", Transformers{})

	assert.True(t, result.EmitSkipped)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, KindEmit, result.Diagnostics[0].Kind)
	assert.Empty(t, h.Outputs())
}

func TestEmit_SemanticErrorsDoNotBlockByDefault(t *testing.T) {
	src := "package app\n\nimport \"fmt\"\n\nvar _ = fmt.Sprint(\"change me\")\n"

	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": src})
	p := NewProgram([]string{"/file.go"}, opts, h)
	require.NotEmpty(t, p.SemanticDiagnostics())

	result := p.Emit("", replaceChangeMe())
	require.False(t, result.EmitSkipped)
	out, _ := h.Output("/file_gen.go")
	assert.Contains(t, out, `fmt.Sprint("changed")`)

	opts.NoEmitOnError = true
	strict := newHost(t, opts, map[string]string{"/file.go": src})
	blocked := NewProgram([]string{"/file.go"}, opts, strict).Emit("", replaceChangeMe())
	assert.True(t, blocked.EmitSkipped)
	assert.NotEmpty(t, blocked.Diagnostics)
	assert.Empty(t, strict.Outputs())
}

func TestEmit_TypeMetadata(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": decoratedSource})
	require.False(t, NewProgram([]string{"/file.go"}, opts, h).Emit("", Transformers{}).EmitSkipped)

	out, _ := h.Output("/file_gen.go")
	assert.Contains(t, out, "var designParamTypes = map[string][]string{")
	assert.Contains(t, out, `"classDecorator": {"func(SomeClass) T"}`)
	assert.Contains(t, out, `"NewAppComponent": {"SomeClass"}`)
	assert.Contains(t, out, `"AppComponent.Rename": {"string", "bool"}`)

	opts.EmitTypeMetadata = false
	plain := newHost(t, opts, map[string]string{"/file.go": decoratedSource})
	require.False(t, NewProgram([]string{"/file.go"}, opts, plain).Emit("", Transformers{}).EmitSkipped)
	out, _ = plain.Output("/file_gen.go")
	assert.NotContains(t, out, MetadataVarName)
}

func TestEmit_TypeMetadataSkippedWithoutParams(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": "package app\n\nfunc run() {}\n"})
	require.False(t, NewProgram([]string{"/file.go"}, opts, h).Emit("", Transformers{}).EmitSkipped)

	out, _ := h.Output("/file_gen.go")
	assert.NotContains(t, out, MetadataVarName)
}

func TestEmit_TypeMetadataNameCollision(t *testing.T) {
	src := "package app\n\nvar designParamTypes = 1\n\nfunc f(x int) {}\n"
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": src})

	result := NewProgram([]string{"/file.go"}, opts, h).Emit("", Transformers{})
	require.False(t, result.EmitSkipped)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, CategoryWarning, result.Diagnostics[0].Category)

	out, _ := h.Output("/file_gen.go")
	assert.Equal(t, 1, strings.Count(out, MetadataVarName))
}

func TestEmit_TypeMetadataOncePerPackage(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{
		"/a.go": "package app\n\nfunc A(x int) {}\n",
		"/b.go": "package app\n\nfunc B(y string) {}\n",
	})

	result := NewProgram([]string{"/a.go", "/b.go"}, opts, h).Emit("", Transformers{})
	require.False(t, result.EmitSkipped)
	assert.Equal(t, []string{"/a_gen.go", "/b_gen.go"}, result.EmittedFiles)

	a, _ := h.Output("/a_gen.go")
	b, _ := h.Output("/b_gen.go")
	assert.Contains(t, a, `"A": {"int"}`)
	assert.Contains(t, a, `"B": {"string"}`)
	assert.NotContains(t, b, MetadataVarName)

	fset := token.NewFileSet()
	var files []*ast.File
	for _, name := range []string{"/a_gen.go", "/b_gen.go"} {
		text, _ := h.Output(name)
		f, err := parser.ParseFile(fset, name, text, 0)
		require.NoError(t, err)
		files = append(files, f)
	}
	_, err := (&types.Config{}).Check(DefaultModulePath, fset, files, nil)
	assert.NoError(t, err)
}

func TestEmit_TypeMetadataSingleTargetFollowsOwner(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{
		"/a.go": "package app\n\nfunc A(x int) {}\n",
		"/b.go": "package app\n\nfunc B(y string) {}\n",
	})
	p := NewProgram([]string{"/a.go", "/b.go"}, opts, h)

	require.False(t, p.Emit("/b.go", Transformers{}).EmitSkipped)
	b, _ := h.Output("/b_gen.go")
	assert.NotContains(t, b, MetadataVarName)

	require.False(t, p.Emit("/a.go", Transformers{}).EmitSkipped)
	a, _ := h.Output("/a_gen.go")
	assert.Contains(t, a, `"B": {"string"}`)
}

func TestEmit_AfterTransformersSeeMetadata(t *testing.T) {
	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": "package app\n\ntype SomeClass struct{}\n\nfunc f(s SomeClass) {}\n"})

	result := NewProgram([]string{"/file.go"}, opts, h).Emit("", Transformers{
		After: []transform.Factory{transform.ReplaceStringLiteral("SomeClass", "app.SomeClass")},
	})
	require.False(t, result.EmitSkipped)

	out, _ := h.Output("/file_gen.go")
	assert.Contains(t, out, `"f": {"app.SomeClass"}`)
}

func TestEmit_SourcePositions(t *testing.T) {
	opts := DefaultOptions()
	opts.SourcePositions = true
	h := newHost(t, opts, map[string]string{"/file.go": decoratedSource})
	require.False(t, NewProgram([]string{"/file.go"}, opts, h).Emit("", replaceChangeMe()).EmitSkipped)

	out, _ := h.Output("/file_gen.go")
	assert.Contains(t, out, "//line /file.go:")
}

func TestEmit_ParseCommentsOption(t *testing.T) {
	src := "package app\n\n// Keep documents X.\nvar X = 1\n"

	opts := DefaultOptions()
	h := newHost(t, opts, map[string]string{"/file.go": src})
	require.False(t, NewProgram([]string{"/file.go"}, opts, h).Emit("", Transformers{}).EmitSkipped)
	out, _ := h.Output("/file_gen.go")
	assert.Contains(t, out, "// Keep documents X.")

	opts.ParseComments = false
	bare := newHost(t, opts, map[string]string{"/file.go": src})
	require.False(t, NewProgram([]string{"/file.go"}, opts, bare).Emit("", Transformers{}).EmitSkipped)
	out, _ = bare.Output("/file_gen.go")
	assert.NotContains(t, out, "Keep documents")
}
