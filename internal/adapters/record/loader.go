// Package record loads the persisted build record of the previous run.
package record

import (
	"fmt"
	"time"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecordLoader = (*Loader)(nil)

// Loader implements ports.RecordLoader over a YAML file.
type Loader struct {
	fs ports.FileSystem
}

// NewLoader creates a new Loader reading through the given filesystem.
func NewLoader(fs ports.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load parses the build record under root and captures the current
// modification time of every given input. The returned error's message is
// the human-readable reason incrementality gets disabled.
func (l *Loader) Load(root string, inputs []domain.Input) (*domain.BuildRecord, error) {
	path := domain.DefaultRecordPath(root)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordReadFailed, path)
	}

	var file recordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordUnmarshalFailed.Error()), "path", path)
	}

	if file.BuildTime.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordMissingBuildTime, path)
	}

	rec := &domain.BuildRecord{
		BuildTime:     file.BuildTime,
		InputInfos:    make(map[domain.InternedPath]domain.InputInfo, len(file.Inputs)),
		InputModTimes: make(map[domain.Input]time.Time, len(inputs)),
	}

	for path, entry := range file.Inputs {
		status, ok := domain.ParseInputStatus(entry.Status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrRecordUnknownStatus, entry.Status)
		}
		rec.InputInfos[domain.InternPath(path)] = domain.InputInfo{
			Status:          status,
			PreviousModTime: entry.ModTime,
		}
	}

	// Capture current mtimes once, at load time. Inputs that cannot be
	// stated stay absent, which the detector treats as infinitely future.
	for _, in := range inputs {
		if !in.Compiles() {
			continue
		}
		info, err := l.fs.GetFileInfo(in.String())
		if err != nil {
			continue
		}
		rec.InputModTimes[in] = info.ModTime
	}

	return rec, nil
}
