package domain

import "path/filepath"

const (
	// RippleDirName is the name of the internal build-state directory.
	RippleDirName = ".ripple"

	// RecordFileName is the name of the persisted build record.
	RecordFileName = "build-record.yaml"

	// SummaryDirName is the directory of per-input dependency summaries.
	SummaryDirName = "deps"

	// OutputMapFileName is the name of the output file map.
	OutputMapFileName = "output-map.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRipplePath returns the root directory for ripple metadata.
func DefaultRipplePath() string {
	return RippleDirName
}

// DefaultRecordPath returns the path of the build record under root.
func DefaultRecordPath(root string) string {
	return filepath.Join(root, RippleDirName, RecordFileName)
}

// DefaultSummaryDir returns the dependency summary directory under root.
func DefaultSummaryDir(root string) string {
	return filepath.Join(root, RippleDirName, SummaryDirName)
}

// DefaultOutputMapPath returns the path of the output file map under root.
func DefaultOutputMapPath(root string) string {
	return filepath.Join(root, RippleDirName, OutputMapFileName)
}
