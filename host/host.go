// Package host supplies source files to the compiler and captures what it
// emits, without touching a real filesystem.
package host

import (
	"go/ast"
	"go/token"
)

// Host is the set of callbacks the compiler uses to resolve files.
type Host interface {
	// FileSet is shared by every tree the host hands out.
	FileSet() *token.FileSet

	// SourceFile returns the parsed tree for name.
	SourceFile(name string) (*ast.File, error)
	FileExists(name string) bool
	// ReadFile returns an error wrapping errors.ErrNotFound for unknown paths.
	ReadFile(name string) (string, error)
	WriteFile(name, text string) error

	CurrentDirectory() string
	CanonicalFileName(name string) string
	UseCaseSensitiveFileNames() bool
	NewLine() string
}
