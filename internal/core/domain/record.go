package domain

import "time"

// InputInfo is the prior state of one input as persisted by the last build.
type InputInfo struct {
	// Status is the input's state at the end of the previous build.
	Status InputStatus
	// PreviousModTime is the input's modification time observed then.
	PreviousModTime time.Time
}

// BuildRecord is the parsed snapshot of the previous build.
// It is read once at scheduler construction and never re-read.
type BuildRecord struct {
	// BuildTime is the wall-clock timestamp of the last successful build start.
	BuildTime time.Time

	// InputInfos maps each input path to its prior status and mtime.
	InputInfos map[InternedPath]InputInfo

	// InputModTimes maps each input to its current modification time as
	// observed at driver startup. This is the authoritative "current mtime"
	// the change detector consults; an input missing from this map is
	// treated as modified infinitely far in the future.
	InputModTimes map[Input]time.Time
}

// Info returns the prior info for an input, reporting whether the input
// appeared in the previous build at all.
func (r *BuildRecord) Info(in Input) (InputInfo, bool) {
	info, ok := r.InputInfos[in.Path]
	return info, ok
}

// ModTime returns the current modification time captured for an input.
// The second result is false when no mtime is known, which callers must
// treat as "infinitely future".
func (r *BuildRecord) ModTime(in Input) (time.Time, bool) {
	t, ok := r.InputModTimes[in]
	return t, ok
}
