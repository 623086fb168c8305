// Package outputmap loads the output-file map relating inputs to their
// per-type output paths.
package outputmap

import (
	"fmt"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.OutputFileMap = (*Map)(nil)

// entry is the YAML shape of one input's outputs.
type entry struct {
	// Object is the compiled object path.
	Object string `yaml:"object"`
	// Deps is the dependency summary path.
	Deps string `yaml:"deps"`
}

// Map implements ports.OutputFileMap over a parsed YAML file.
type Map struct {
	outputs map[domain.Input]entry
	inputs  map[string]domain.Input
}

// Load reads and parses the output-file map at path through the given
// filesystem. A missing file is an error; the driver treats it as "no
// output file map provided".
func Load(fs ports.FileSystem, path string) (*Map, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutputMapReadFailed, path)
	}

	var file map[string]entry
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputMapUnmarshalFailed.Error()), "path", path)
	}

	m := &Map{
		outputs: make(map[domain.Input]entry, len(file)),
		inputs:  make(map[string]domain.Input, len(file)*2),
	}
	for inputPath, e := range file {
		in := domain.NewInput(inputPath)
		m.outputs[in] = e
		if e.Object != "" {
			m.inputs[e.Object] = in
		}
		if e.Deps != "" {
			m.inputs[e.Deps] = in
		}
	}
	return m, nil
}

// GetOutput returns the output path of the given type for an input.
func (m *Map) GetOutput(in domain.Input, outputType domain.OutputType) (string, bool) {
	e, ok := m.outputs[in]
	if !ok {
		return "", false
	}
	switch outputType {
	case domain.OutputTypeObject:
		return e.Object, e.Object != ""
	case domain.OutputTypeDependencySummary:
		return e.Deps, e.Deps != ""
	}
	return "", false
}

// GetInput reverse-maps an output file to its input.
func (m *Map) GetInput(outputFile string) (domain.Input, bool) {
	in, ok := m.inputs[outputFile]
	return in, ok
}
