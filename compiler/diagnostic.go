package compiler

import (
	"fmt"
	"go/scanner"
	"go/token"
	"go/types"
)

// Category is the severity of a diagnostic.
type Category string

const (
	CategoryError   Category = "error"
	CategoryWarning Category = "warning"
)

// Kind says which phase produced a diagnostic.
type Kind string

const (
	KindHost     Kind = "host"     // file could not be resolved
	KindSyntax   Kind = "syntax"   // go/parser
	KindSemantic Kind = "semantic" // go/types
	KindEmit     Kind = "emit"     // printing or writing output
)

// Diagnostic is a positioned message from any phase of the compilation.
type Diagnostic struct {
	Category Category `json:"category"`
	Kind     Kind     `json:"kind"`
	File     string   `json:"file"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
}

// String formats the diagnostic the way the go tool does: file:line:col: message
func (d Diagnostic) String() string {
	switch {
	case d.Line > 0 && d.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
	case d.Line > 0:
		return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
	case d.File != "":
		return fmt.Sprintf("%s: %s", d.File, d.Message)
	default:
		return d.Message
	}
}

// IsError reports whether the diagnostic blocks NoEmitOnError emission.
func (d Diagnostic) IsError() bool { return d.Category == CategoryError }

func positioned(kind Kind, pos token.Position, msg string) Diagnostic {
	return Diagnostic{
		Category: CategoryError,
		Kind:     kind,
		File:     pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Message:  msg,
	}
}

func syntaxDiagnostics(list scanner.ErrorList) []Diagnostic {
	diags := make([]Diagnostic, 0, len(list))
	for _, e := range list {
		diags = append(diags, positioned(KindSyntax, e.Pos, e.Msg))
	}
	return diags
}

func semanticDiagnostic(err error) Diagnostic {
	if terr, ok := err.(types.Error); ok {
		return positioned(KindSemantic, terr.Fset.Position(terr.Pos), terr.Msg)
	}
	return Diagnostic{Category: CategoryError, Kind: KindSemantic, Message: err.Error()}
}

func hasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}
