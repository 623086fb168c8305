package domain

import "go.trai.ch/zerr"

var (
	// ErrRecordReadFailed is returned when the prior build record cannot be read.
	ErrRecordReadFailed = zerr.New("could not read build record")

	// ErrRecordUnmarshalFailed is returned when the build record cannot be parsed.
	ErrRecordUnmarshalFailed = zerr.New("malformed build record")

	// ErrRecordMissingBuildTime is returned when the build record lacks a build time.
	ErrRecordMissingBuildTime = zerr.New("build record has no build time")

	// ErrRecordUnknownStatus is returned when an input carries an unknown status string.
	ErrRecordUnknownStatus = zerr.New("unknown input status in build record")

	// ErrOutputMapReadFailed is returned when the output file map cannot be read.
	ErrOutputMapReadFailed = zerr.New("could not read output file map")

	// ErrOutputMapUnmarshalFailed is returned when the output file map cannot be parsed.
	ErrOutputMapUnmarshalFailed = zerr.New("malformed output file map")

	// ErrOutputMapMissingEntry is returned when an input has no output map entry.
	ErrOutputMapMissingEntry = zerr.New("no output file map entry for input")

	// ErrSummaryReadFailed is returned when a dependency summary cannot be read.
	ErrSummaryReadFailed = zerr.New("could not read dependency summary")

	// ErrSummaryUnmarshalFailed is returned when a dependency summary cannot be parsed.
	ErrSummaryUnmarshalFailed = zerr.New("malformed dependency summary")

	// ErrGraphConstructionFailed is returned when the module dependency graph
	// cannot be built from the prior summaries.
	ErrGraphConstructionFailed = zerr.New("could not build module dependency graph")

	// ErrStatFailed is returned when stating a path fails.
	ErrStatFailed = zerr.New("failed to stat path")

	// ErrCompileFailed is returned when a compile job's subprocess fails.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrLinkFailed is returned when the link job fails.
	ErrLinkFailed = zerr.New("link failed")

	// ErrBuildExecutionFailed is returned when the overall build fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrNoInputs is returned when the build command receives no inputs.
	ErrNoInputs = zerr.New("no input files")

	// ErrWatcherStartFailed is returned when the file watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
