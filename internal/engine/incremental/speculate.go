package incremental

import (
	"go.trai.ch/ripple/internal/core/domain"
)

// computeSpeculativeInputs queries the graph for dependents of every
// changed input whose prior status requires a cascading build. If a file
// previously required a cascading rebuild its public interface is suspect,
// so its dependents are queued eagerly even though the fresh dependency
// summary (available only after the file recompiles) may show that fewer
// are truly needed. The set is approximate; the second wave corrects any
// over- or under-approximation.
func (s *Scheduler) computeSpeculativeInputs(changed []changedInput) map[domain.Input]struct{} {
	cascading := make(map[domain.Input]struct{})
	for _, c := range changed {
		if c.status == domain.StatusNeedsCascadingBuild {
			cascading[c.input] = struct{}{}
		}
	}

	speculative := make(map[domain.Input]struct{})
	for _, c := range changed {
		switch c.status {
		case domain.StatusUpToDate:
			// The nature of the change is unknown, so dependents are not
			// presumed affected.
			s.rep.report("Not scheduling dependents; unknown changes to", c.input)

		case domain.StatusNewlyAdded:
			s.rep.report("Not scheduling dependents; no prior record of", c.input)

		case domain.StatusNeedsNonCascadingBuild:
			s.rep.report("Not scheduling dependents; noncascading build of", c.input)

		case domain.StatusNeedsCascadingBuild:
			s.rep.report("Scheduling dependents of", c.input)
			for _, dep := range s.graph.FindDependentSources(c.input) {
				if _, isCascading := cascading[dep]; isCascading {
					// Already reported as cascading; not a speculative add.
					continue
				}
				if _, seen := speculative[dep]; seen {
					continue
				}
				speculative[dep] = struct{}{}
				s.rep.report("Immediately scheduling dependent", dep)
			}
		}
	}

	return speculative
}
