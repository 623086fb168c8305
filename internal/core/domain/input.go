// Package domain contains the core domain types for ripple.
package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// InputType classifies a driver input by what the compiler does with it.
type InputType uint8

const (
	// InputTypeSource is a compilable source file. Only inputs of this
	// type participate in incremental scheduling.
	InputTypeSource InputType = iota
	// InputTypeInterface is a module interface file consumed, not compiled.
	InputTypeInterface
	// InputTypeResource is a file copied into the build output verbatim.
	InputTypeResource
	// InputTypeUnknown is anything the driver does not recognize.
	InputTypeUnknown
)

// String returns the lowercase name of the input type.
func (t InputType) String() string {
	switch t {
	case InputTypeSource:
		return "source"
	case InputTypeInterface:
		return "interface"
	case InputTypeResource:
		return "resource"
	case InputTypeUnknown:
		return "unknown"
	}
	return "invalid"
}

// Input is an abstract reference to a driver input file.
// It is a small comparable value so it can key maps directly.
type Input struct {
	Path InternedPath
	Type InputType
}

// NewInput creates an Input, deriving the type from the path extension.
func NewInput(path string) Input {
	return Input{
		Path: InternPath(path),
		Type: TypeOfPath(path),
	}
}

// NewSourceInput creates an Input forced to the source type.
// Tests use this to construct inputs without relying on extensions.
func NewSourceInput(path string) Input {
	return Input{Path: InternPath(path), Type: InputTypeSource}
}

// String returns the input's logical path.
func (in Input) String() string {
	return in.Path.String()
}

// Basename returns the final path component of the input.
func (in Input) Basename() string {
	return filepath.Base(in.Path.String())
}

// Compiles reports whether the input participates in compilation.
func (in Input) Compiles() bool {
	return in.Type == InputTypeSource
}

// TypeOfPath derives the input type from a path extension.
func TypeOfPath(path string) InputType {
	switch filepath.Ext(path) {
	case ".src":
		return InputTypeSource
	case ".iface":
		return InputTypeInterface
	case ".res":
		return InputTypeResource
	}
	return InputTypeUnknown
}

// SortInputs sorts inputs by path name in place for deterministic ordering.
func SortInputs(inputs []Input) {
	slices.SortFunc(inputs, func(a, b Input) int {
		return strings.Compare(a.Path.String(), b.Path.String())
	})
}
