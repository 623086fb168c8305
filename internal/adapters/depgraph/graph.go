// Package depgraph implements the module dependency graph over the
// per-input dependency summaries written by the compiler.
package depgraph

import (
	"slices"
	"strings"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyGraph = (*Graph)(nil)

// node is one input's summary state inside the graph.
type node struct {
	input   domain.Input
	summary domain.DependencySummary
	digest  uint64
}

// Graph implements ports.DependencyGraph. It is constructed before the
// scheduler from the summaries of the previous build and outlives it; the
// traced bits are its only state mutated during scheduling.
type Graph struct {
	fs        ports.FileSystem
	outputMap ports.OutputFileMap

	nodes   []*node
	byInput map[domain.Input]int

	// providers and dependers index node IDs by symbol name.
	providers map[string][]int
	dependers map[string][]int

	// externals indexes node IDs by external dependency path.
	externals map[string][]int

	// traced marks summary nodes already visited by the external-dep scan.
	traced map[int]bool
}

// Build constructs the graph by reading the dependency summary of every
// compiling input. A missing or malformed summary fails construction; the
// graph emits its own remark and the scheduler declines silently.
func Build(
	fs ports.FileSystem,
	outputMap ports.OutputFileMap,
	diag ports.Diagnostics,
	inputs []domain.Input,
) (*Graph, error) {
	g := &Graph{
		fs:        fs,
		outputMap: outputMap,
		byInput:   make(map[domain.Input]int),
		providers: make(map[string][]int),
		dependers: make(map[string][]int),
		externals: make(map[string][]int),
		traced:    make(map[int]bool),
	}

	for _, in := range inputs {
		if !in.Compiles() {
			continue
		}
		summary, err := g.readSummary(in)
		if err != nil {
			diag.Remark(ports.DiagIncrementalDisabled,
				"Incremental compilation has been disabled, because "+err.Error())
			return nil, zerr.Wrap(err, domain.ErrGraphConstructionFailed.Error())
		}
		g.addNode(in, summary)
	}

	return g, nil
}

func (g *Graph) addNode(in domain.Input, summary *domain.DependencySummary) {
	id := len(g.nodes)
	g.nodes = append(g.nodes, &node{
		input:   in,
		summary: *summary,
		digest:  summary.InterfaceDigest(),
	})
	g.byInput[in] = id

	for _, name := range summary.Provides {
		g.providers[name] = append(g.providers[name], id)
	}
	for _, name := range summary.Depends {
		g.dependers[name] = append(g.dependers[name], id)
	}
	for _, ext := range summary.Externals {
		g.externals[ext] = append(g.externals[ext], id)
	}
}

// ExternalDependencies enumerates the graph's external dependencies in
// path order.
func (g *Graph) ExternalDependencies() []ports.ExternalDependency {
	paths := make([]string, 0, len(g.externals))
	for path := range g.externals {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	deps := make([]ports.ExternalDependency, len(paths))
	for i, path := range paths {
		deps[i] = ports.ExternalDependency{Path: path}
	}
	return deps
}

// ForEachUntracedDependent visits each untraced summary node directly
// depending on the external dep, setting its traced bit so the same
// summary is visited at most once across the run.
func (g *Graph) ForEachUntracedDependent(dep ports.ExternalDependency, visit func(ports.SummaryNode)) {
	for _, id := range g.externals[dep.Path] {
		if g.traced[id] {
			continue
		}
		g.traced[id] = true
		visit(ports.SummaryNode{ID: id})
	}
}

// SourceOf reverse-maps a summary node to its owning input.
func (g *Graph) SourceOf(sn ports.SummaryNode) (domain.Input, bool) {
	if sn.ID < 0 || sn.ID >= len(g.nodes) {
		return domain.Input{}, false
	}
	return g.nodes[sn.ID].input, true
}

// FindDependentSources returns the inputs transitively reachable as
// dependents of in, sorted by path name.
func (g *Graph) FindDependentSources(in domain.Input) []domain.Input {
	start, ok := g.byInput[in]
	if !ok {
		return nil
	}

	visited := map[int]bool{start: true}
	queue := []int{start}
	var dependents []domain.Input

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, depID := range g.directDependents(id) {
			if visited[depID] {
				continue
			}
			visited[depID] = true
			dependents = append(dependents, g.nodes[depID].input)
			queue = append(queue, depID)
		}
	}

	domain.SortInputs(dependents)
	return dependents
}

// directDependents returns the IDs of nodes depending on any name the
// given node provides.
func (g *Graph) directDependents(id int) []int {
	var out []int
	seen := make(map[int]bool)
	for _, name := range g.nodes[id].summary.Provides {
		for _, depID := range g.dependers[name] {
			if depID == id || seen[depID] {
				continue
			}
			seen[depID] = true
			out = append(out, depID)
		}
	}
	return out
}

// FindSourcesToCompileAfter re-reads the just-produced summary of a
// finished compile and returns the inputs depending on any name whose
// provision changed. ok is false when the summary cannot be read, in which
// case the scheduler falls back to everything it skipped.
func (g *Graph) FindSourcesToCompileAfter(in domain.Input) ([]domain.Input, bool) {
	id, known := g.byInput[in]
	if !known {
		return nil, false
	}

	fresh, err := g.readSummary(in)
	if err != nil {
		return nil, false
	}

	n := g.nodes[id]
	freshDigest := fresh.InterfaceDigest()
	if freshDigest == n.digest {
		// Interface unchanged; only the body was touched.
		return nil, true
	}

	changed := symmetricDifference(n.summary.Provides, fresh.Provides)

	// Re-index the node under its fresh summary before answering.
	g.reindex(id, fresh, freshDigest)

	found := make(map[int]bool)
	var sources []domain.Input
	for _, name := range changed {
		for _, depID := range g.dependers[name] {
			if depID == id || found[depID] {
				continue
			}
			found[depID] = true
			sources = append(sources, g.nodes[depID].input)
		}
	}

	domain.SortInputs(sources)
	return sources, true
}

// reindex replaces a node's summary, moving its provider and external
// entries to the fresh sets. Depender entries of other nodes are
// untouched.
func (g *Graph) reindex(id int, fresh *domain.DependencySummary, digest uint64) {
	old := g.nodes[id].summary

	for _, name := range old.Provides {
		g.providers[name] = removeID(g.providers[name], id)
	}
	for _, name := range old.Depends {
		g.dependers[name] = removeID(g.dependers[name], id)
	}
	for _, ext := range old.Externals {
		g.externals[ext] = removeID(g.externals[ext], id)
	}

	g.nodes[id].summary = *fresh
	g.nodes[id].digest = digest

	for _, name := range fresh.Provides {
		g.providers[name] = append(g.providers[name], id)
	}
	for _, name := range fresh.Depends {
		g.dependers[name] = append(g.dependers[name], id)
	}
	for _, ext := range fresh.Externals {
		g.externals[ext] = append(g.externals[ext], id)
	}
}

func removeID(ids []int, id int) []int {
	return slices.DeleteFunc(ids, func(x int) bool { return x == id })
}

// symmetricDifference returns the names present in exactly one of a and b.
func symmetricDifference(a, b []string) []string {
	inA := make(map[string]bool, len(a))
	for _, s := range a {
		inA[s] = true
	}
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}

	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !inA[s] {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// readSummary loads and parses an input's dependency summary via the
// output-file map.
func (g *Graph) readSummary(in domain.Input) (*domain.DependencySummary, error) {
	path, ok := g.outputMap.GetOutput(in, domain.OutputTypeDependencySummary)
	if !ok || strings.TrimSpace(path) == "" {
		return nil, zerr.With(domain.ErrSummaryReadFailed, "input", in.String())
	}
	return loadSummary(g.fs, path)
}
