// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/ripple/internal/core/domain"

// ExternalDependency is an opaque handle to a file outside the module that
// one or more inputs depend on.
type ExternalDependency struct {
	// Path is the dependency's filesystem path; empty when unknown.
	Path string
}

// SummaryNode is an opaque handle to a per-input dependency summary node
// inside the graph.
type SummaryNode struct {
	// ID identifies the node within its graph.
	ID int
}

// DependencyGraph is the scheduler's oracle over cross-input dependencies.
// The scheduler couples to the graph only through this capability set so it
// can be tested against a fake.
//
//go:generate mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type DependencyGraph interface {
	// ExternalDependencies enumerates the external dependencies known to
	// the graph.
	ExternalDependencies() []ExternalDependency

	// ForEachUntracedDependent visits each summary node directly dependent
	// on the external dep, marking it traced so a given summary is visited
	// at most once across the run.
	ForEachUntracedDependent(dep ExternalDependency, visit func(SummaryNode))

	// SourceOf reverse-maps a summary node to its owning input. The second
	// result is false for summaries with no owning input.
	SourceOf(node SummaryNode) (domain.Input, bool)

	// FindDependentSources returns the inputs transitively reachable as
	// dependents of in.
	FindDependentSources(in domain.Input) []domain.Input

	// FindSourcesToCompileAfter recomputes, from the just-produced summary
	// of a finished compile, the further inputs now known to need
	// compilation. ok is false when the graph cannot give a precise answer,
	// in which case the caller must fall back to everything it skipped.
	FindSourcesToCompileAfter(in domain.Input) (sources []domain.Input, ok bool)
}
