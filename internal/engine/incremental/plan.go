package incremental

import (
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
)

// computeFirstWave merges the changed, externally-dependent, and
// speculative sets into the first wave, sorted by path name, and derives
// the skipped set from the record's mtime map.
func (s *Scheduler) computeFirstWave(
	inputs []domain.Input,
	record *domain.BuildRecord,
	fs ports.FileSystem,
) {
	changed := s.computeChangedInputs(inputs, record)
	external := s.computeExternallyDependentInputs(fs, record)
	speculative := s.computeSpeculativeInputs(changed)

	// definite = changed ∪ external; speculative inputs join only when not
	// already definite, so an input is never reported as both initial and
	// dependent.
	definite := make(map[domain.Input]struct{}, len(changed)+len(external))
	for _, c := range changed {
		definite[c.input] = struct{}{}
	}
	for in := range external {
		definite[in] = struct{}{}
	}

	wave := make([]domain.Input, 0, len(definite)+len(speculative))
	inWave := make(map[domain.Input]struct{}, len(definite)+len(speculative))
	for in := range definite {
		wave = append(wave, in)
		inWave[in] = struct{}{}
	}
	for in := range speculative {
		if _, ok := definite[in]; ok {
			continue
		}
		wave = append(wave, in)
		inWave[in] = struct{}{}
	}
	domain.SortInputs(wave)
	s.firstWave = wave

	for _, in := range wave {
		if _, initial := definite[in]; initial {
			s.rep.report("Queuing (initial):", in)
		} else {
			s.rep.report("Queuing (dependent):", in)
		}
	}

	// Everything the record knows a current mtime for and the wave does
	// not include is skipped.
	skipped := make([]domain.Input, 0, len(record.InputModTimes))
	for in := range record.InputModTimes {
		if !in.Compiles() {
			continue
		}
		if _, ok := inWave[in]; ok {
			continue
		}
		s.skippedInputs[in] = struct{}{}
		skipped = append(skipped, in)
	}
	domain.SortInputs(skipped)
	for _, in := range skipped {
		s.rep.report("Skipping:", in)
	}
}
