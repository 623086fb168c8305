package incremental

import (
	"path/filepath"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
)

// computeExternallyDependentInputs walks each external dependency of the
// graph and collects the inputs implicated by deps modified at or after
// the prior build time. An unreadable or missing mtime counts as future,
// so the dependents are always scheduled.
//
// The graph's tracing bit guarantees each summary node is visited at most
// once across the run, even over multiple scheduler passes in one process.
func (s *Scheduler) computeExternallyDependentInputs(
	fs ports.FileSystem,
	record *domain.BuildRecord,
) map[domain.Input]struct{} {
	implicated := make(map[domain.Input]struct{})

	for _, ext := range s.graph.ExternalDependencies() {
		if !s.externalDepIsNewer(fs, ext, record) {
			continue
		}

		s.graph.ForEachUntracedDependent(ext, func(node ports.SummaryNode) {
			in, ok := s.graph.SourceOf(node)
			if !ok {
				// Summary with no owning input; nothing to schedule.
				return
			}
			if _, seen := implicated[in]; !seen {
				s.rep.report("Scheduling externally-dependent on newer "+filepath.Base(ext.Path), in)
			}
			implicated[in] = struct{}{}
		})
	}

	return implicated
}

// externalDepIsNewer reports whether the external dep's file was modified
// at or after the prior build time. Note >= : a dep stamped exactly at the
// build time still schedules its dependents.
func (s *Scheduler) externalDepIsNewer(
	fs ports.FileSystem,
	ext ports.ExternalDependency,
	record *domain.BuildRecord,
) bool {
	if ext.Path == "" {
		return true
	}
	info, err := fs.GetFileInfo(ext.Path)
	if err != nil {
		return true
	}
	return !info.ModTime.Before(record.BuildTime)
}
