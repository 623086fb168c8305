package domain

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// DependencySummary is the per-input artifact written by the compiler
// describing what the input provides and consumes. The dependency graph is
// assembled from these.
type DependencySummary struct {
	// Provides are the names the input defines.
	Provides []string
	// Depends are the names the input consumes from other inputs.
	Depends []string
	// Externals are paths outside the module the input depends on.
	Externals []string
}

// InterfaceDigest hashes the provided-name set. Two summaries with equal
// digests expose the same interface, so dependents of the input need not
// be recompiled when only the body changed.
func (s *DependencySummary) InterfaceDigest() uint64 {
	provides := slices.Clone(s.Provides)
	slices.Sort(provides)

	h := xxhash.New()
	for _, name := range provides {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
