package incremental

import (
	"go.trai.ch/ripple/internal/core/domain"
)

// changedInput pairs an input that must compile with the prior status that
// drove the decision. The speculative expander keys off the status.
type changedInput struct {
	input  domain.Input
	status domain.InputStatus
}

// computeChangedInputs diffs each compiling input's current modification
// time against the prior build record and returns the inputs that must
// compile, preserving input-list order.
//
// An input absent from the record is newly added; an input with no
// captured mtime is treated as modified infinitely far in the future, which
// guarantees scheduling.
func (s *Scheduler) computeChangedInputs(
	inputs []domain.Input,
	record *domain.BuildRecord,
) []changedInput {
	var changed []changedInput

	for _, in := range inputs {
		if !in.Compiles() {
			continue
		}

		status := domain.StatusNewlyAdded
		if info, ok := record.Info(in); ok {
			status = info.Status
		}

		modTime, hasModTime := record.ModTime(in)

		switch status {
		case domain.StatusUpToDate:
			if hasModTime && modTime.Before(record.BuildTime) {
				s.rep.report("Skipping current", in)
				continue
			}
			s.rep.report("Scheduling changed input", in)

		case domain.StatusNewlyAdded:
			s.rep.report("Scheduling new", in)

		case domain.StatusNeedsCascadingBuild:
			s.rep.report("Scheduling cascading build", in)

		case domain.StatusNeedsNonCascadingBuild:
			s.rep.report("Scheduling noncascading build", in)
		}

		changed = append(changed, changedInput{input: in, status: status})
	}

	return changed
}
