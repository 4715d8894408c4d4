package host

import (
	"go/parser"
	"go/scanner"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/memcompile/errors"
)

func TestMemoryHost_ReadFile(t *testing.T) {
	h := NewMemoryHost(parser.ParseComments)
	require.NoError(t, h.AddFile("/file.go", "package app\n"))

	text, err := h.ReadFile("/file.go")
	require.NoError(t, err)
	assert.Equal(t, "package app\n", text)
	assert.True(t, h.FileExists("/file.go"))

	_, err = h.ReadFile("/missing.go")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, h.FileExists("/missing.go"))
}

func TestMemoryHost_CanonicalFileName(t *testing.T) {
	h := NewMemoryHost(0)

	assert.Equal(t, "/file.go", h.CanonicalFileName("file.go"))
	assert.Equal(t, "/a/File.go", h.CanonicalFileName("/a/b/../File.go"))

	require.NoError(t, h.AddFile("file.go", "package app\n"))
	assert.True(t, h.FileExists("/file.go"))
	assert.False(t, h.FileExists("/FILE.go"), "lookups are case sensitive")
	assert.True(t, h.UseCaseSensitiveFileNames())
	assert.Equal(t, "/", h.CurrentDirectory())
	assert.Equal(t, "\n", h.NewLine())
}

func TestMemoryHost_SourceFileCachesTree(t *testing.T) {
	h := NewMemoryHost(0)
	require.NoError(t, h.AddFile("/file.go", "package app\n\nvar x = 1\n"))

	first, err := h.SourceFile("/file.go")
	require.NoError(t, err)
	second, err := h.SourceFile("/file.go")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "app", first.Name.Name)

	// Re-registering drops the derived tree
	require.NoError(t, h.AddFile("/file.go", "package other\n"))
	third, err := h.SourceFile("/file.go")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, "other", third.Name.Name)
}

func TestMemoryHost_SourceFileErrors(t *testing.T) {
	h := NewMemoryHost(0)

	_, err := h.SourceFile("/missing.go")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, h.AddFile("/empty.go", ""))
	_, err = h.SourceFile("/empty.go")
	require.Error(t, err)

	var list scanner.ErrorList
	require.True(t, errors.As(err, &list))
	require.NotEmpty(t, list)
	assert.Equal(t, "/empty.go", list[0].Pos.Filename)
}

func TestMemoryHost_Outputs(t *testing.T) {
	h := NewMemoryHost(0)
	require.NoError(t, h.AddFile("/file.go", "package app\n"))
	assert.Empty(t, h.Outputs())

	require.NoError(t, h.WriteFile("/file_gen.go", "package app\n"))

	text, ok := h.Output("/file_gen.go")
	require.True(t, ok)
	assert.Equal(t, "package app\n", text)

	_, ok = h.Output("/file.go")
	assert.False(t, ok, "sources are not outputs")

	assert.Equal(t, map[string]string{"/file_gen.go": "package app\n"}, h.Outputs())
	assert.Equal(t, []string{"/file.go"}, h.SourceNames())
}
