package record

import "time"

// recordFile is the YAML shape of .ripple/build-record.yaml.
type recordFile struct {
	// BuildTime is the wall-clock start of the last successful build.
	BuildTime time.Time `yaml:"build_time"`
	// Inputs maps input paths to their per-input entries.
	Inputs map[string]inputEntry `yaml:"inputs"`
}

// inputEntry is one input's persisted state.
type inputEntry struct {
	// Status is the record-file spelling of the input's status.
	Status string `yaml:"status"`
	// ModTime is the input's modification time observed at the last build.
	ModTime time.Time `yaml:"mtime"`
}
