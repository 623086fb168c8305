package domain

// InputStatus is the per-input state recorded by the previous build.
// It is a closed enumeration; the change detector switches over it
// exhaustively.
type InputStatus uint8

const (
	// StatusUpToDate indicates the input compiled successfully last time.
	StatusUpToDate InputStatus = iota
	// StatusNewlyAdded indicates the input was absent from the prior record.
	StatusNewlyAdded
	// StatusNeedsCascadingBuild indicates the input must rebuild and its
	// dependents must be rechecked.
	StatusNeedsCascadingBuild
	// StatusNeedsNonCascadingBuild indicates the input must rebuild but its
	// dependents need not be preemptively scheduled.
	StatusNeedsNonCascadingBuild
)

// String returns the record-file spelling of the status.
func (s InputStatus) String() string {
	switch s {
	case StatusUpToDate:
		return "up-to-date"
	case StatusNewlyAdded:
		return "newly-added"
	case StatusNeedsCascadingBuild:
		return "needs-cascading-build"
	case StatusNeedsNonCascadingBuild:
		return "needs-non-cascading-build"
	}
	return "invalid"
}

// ParseInputStatus parses the record-file spelling of a status.
func ParseInputStatus(s string) (InputStatus, bool) {
	switch s {
	case "up-to-date":
		return StatusUpToDate, true
	case "newly-added":
		return StatusNewlyAdded, true
	case "needs-cascading-build":
		return StatusNeedsCascadingBuild, true
	case "needs-non-cascading-build":
		return StatusNeedsNonCascadingBuild, true
	}
	return 0, false
}
