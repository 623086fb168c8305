package depgraph

import (
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// summaryFile is the YAML shape of a dependency summary.
type summaryFile struct {
	Provides []string `yaml:"provides"`
	Depends  []string `yaml:"depends"`
	External []string `yaml:"external"`
}

// loadSummary reads and parses one dependency summary file.
func loadSummary(fs ports.FileSystem, path string) (*domain.DependencySummary, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.ErrSummaryReadFailed, "path", path)
	}

	var file summaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSummaryUnmarshalFailed.Error()), "path", path)
	}

	return &domain.DependencySummary{
		Provides:  file.Provides,
		Depends:   file.Depends,
		Externals: file.External,
	}, nil
}
