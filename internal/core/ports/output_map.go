package ports

import "go.trai.ch/ripple/internal/core/domain"

// OutputFileMap resolves inputs to their per-type output paths and back.
//
//go:generate mockgen -source=output_map.go -destination=mocks/mock_output_map.go -package=mocks
type OutputFileMap interface {
	// GetOutput returns the output path of the given type for an input.
	GetOutput(in domain.Input, outputType domain.OutputType) (string, bool)
	// GetInput reverse-maps an output file to its input.
	GetInput(outputFile string) (domain.Input, bool)
}
