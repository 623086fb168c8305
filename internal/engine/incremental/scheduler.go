// Package incremental implements the two-wave incremental compilation
// scheduler. From file modification times, the prior build record, and the
// module dependency graph it selects a first wave of compile jobs, then
// promotes previously-skipped jobs as each finished compile produces a
// fresh dependency summary.
package incremental

import (
	"slices"
	"strings"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
)

// Options are the driver flags the construction gate inspects.
type Options struct {
	// Incremental is the -incremental flag.
	Incremental bool
	// ShowIncremental is the -driver-show-incremental flag; it enables
	// per-decision remarks.
	ShowIncremental bool
	// EmbedBitcode is the -embed-bitcode flag, incompatible with
	// incremental scheduling.
	EmbedBitcode bool
	// Mode is the compiler mode for this invocation.
	Mode domain.CompilerMode
}

// Params carries everything scheduler construction needs.
type Params struct {
	Options Options
	// Root is the project root the build record lives under.
	Root string
	// Inputs are all driver inputs; non-compiling types are filtered out.
	Inputs []domain.Input
	// OutputMap is the output-file map, or nil when none was provided.
	OutputMap ports.OutputFileMap
	// RecordLoader reads the prior build record.
	RecordLoader ports.RecordLoader
	// BuildGraph constructs the module dependency graph from the prior
	// dependency summaries. The graph outlives the scheduler.
	BuildGraph func() (ports.DependencyGraph, error)
	// FS is used for external-dependency modification times.
	FS ports.FileSystem
	// Diag receives warnings and remarks.
	Diag ports.Diagnostics
}

// Scheduler decides which inputs compile on this invocation and streams
// the resulting jobs to the executor.
//
// All state mutation happens inside construction, AddSkippedCompileJobs,
// AddPostCompileJobs, or JobFinished; the executor contract is that
// JobFinished is never invoked concurrently.
type Scheduler struct {
	graph ports.DependencyGraph
	rep   *reporter

	// jobs is the closeable stream of dynamically discovered work.
	jobs *JobQueue

	// inJobFinished guards against concurrent completion callbacks. The
	// executor serializes them; a violation is a hard failure, not silent
	// corruption.
	inJobFinished bool

	firstWave []domain.Input

	// pendingInputs holds every input whose compile job has been queued
	// but not yet observed finished.
	pendingInputs map[domain.Input]struct{}

	// skippedInputs holds the inputs not compiling in the first wave.
	skippedInputs map[domain.Input]struct{}

	// skippedJobs registers the not-yet-scheduled job for each skipped
	// input, keyed by primary input.
	skippedJobs map[domain.Input]*domain.CompileJob

	// postCompileJobs accumulates jobs released once the pending set
	// drains.
	postCompileJobs []*domain.CompileJob
}

// New constructs the scheduler for one driver invocation, computing the
// first wave and the skipped set. It declines (returns ok == false) when
// incrementality is off, unsupported by the mode or flags, or a
// prerequisite is missing; the driver then falls back to a full build.
// Decline reasons surface as diagnostics, never as errors.
func New(p Params) (s *Scheduler, ok bool) {
	rep := newReporter(p.Diag, p.Options.ShowIncremental)

	if !p.Options.Incremental {
		return nil, false
	}
	if !p.Options.Mode.SupportsIncremental() {
		p.Diag.Remark(ports.DiagIncrementalDisabled,
			"Incremental compilation has been disabled, because it is not compatible with "+p.Options.Mode.String()+" mode")
		return nil, false
	}
	if p.Options.EmbedBitcode {
		p.Diag.Remark(ports.DiagIncrementalDisabled,
			"Incremental compilation has been disabled, because it is not currently compatible with embedding LLVM IR bitcode")
		return nil, false
	}
	if p.OutputMap == nil {
		p.Diag.Warning(ports.DiagIncrementalRequiresOutputMap,
			"ignoring -incremental (currently requires an output file map)")
		return nil, false
	}

	record, err := p.RecordLoader.Load(p.Root, p.Inputs)
	if err != nil {
		p.Diag.Remark(ports.DiagIncrementalDisabled,
			"Incremental compilation has been disabled, because "+err.Error())
		return nil, false
	}

	// The graph emits its own remark on failure.
	graph, err := p.BuildGraph()
	if err != nil {
		return nil, false
	}

	s = &Scheduler{
		graph:         graph,
		rep:           rep,
		jobs:          NewJobQueue(),
		pendingInputs: make(map[domain.Input]struct{}),
		skippedInputs: make(map[domain.Input]struct{}),
		skippedJobs:   make(map[domain.Input]*domain.CompileJob),
	}

	s.computeFirstWave(p.Inputs, record, p.FS)

	for _, in := range s.firstWave {
		s.pendingInputs[in] = struct{}{}
	}

	// Nothing to compile: release post-compile jobs and close immediately.
	s.maybeFinishedWithCompilations()

	return s, true
}

// FirstWaveInputs returns the initial compile set in path-name sort order.
func (s *Scheduler) FirstWaveInputs() []domain.Input {
	return slices.Clone(s.firstWave)
}

// SkippedInputs returns the inputs not compiling in the first wave, sorted
// by path name.
func (s *Scheduler) SkippedInputs() []domain.Input {
	skipped := make([]domain.Input, 0, len(s.skippedInputs))
	for in := range s.skippedInputs {
		skipped = append(skipped, in)
	}
	domain.SortInputs(skipped)
	return skipped
}

// Jobs returns the stream of dynamically discovered jobs. The driver
// drains it until it closes.
func (s *Scheduler) Jobs() *JobQueue {
	return s.jobs
}

// AddSkippedCompileJobs registers the driver-built jobs for inputs the
// first wave skipped, keyed by primary input. Registering two jobs for
// the same input is a programming error.
func (s *Scheduler) AddSkippedCompileJobs(jobs []*domain.CompileJob) {
	for _, job := range jobs {
		for _, in := range job.Primaries {
			if _, dup := s.skippedJobs[in]; dup {
				panic("incremental: duplicate skipped compile job for " + in.String())
			}
			s.skippedJobs[in] = job
		}
	}
}

// EnqueueFirstWaveJobs appends the driver-built first-wave jobs to the job
// stream in the given order.
func (s *Scheduler) EnqueueFirstWaveJobs(jobs []*domain.CompileJob) {
	if len(jobs) == 0 {
		return
	}
	s.jobs.Append(jobs...)
}

// AddPostCompileJobs registers jobs that must run only after every compile
// job's completion has been observed. When the queue has already closed no
// more compile work will ever arrive, so the jobs are appended directly;
// otherwise they are buffered and released by the terminal transition.
func (s *Scheduler) AddPostCompileJobs(jobs []*domain.CompileJob) {
	for _, job := range jobs {
		if s.jobs.IsOpen() {
			s.postCompileJobs = append(s.postCompileJobs, job)
		} else {
			s.jobs.appendClosed(job)
		}
	}
}

// JobFinished is the executor's per-job completion callback. It re-reads
// the just-produced dependency summaries through the graph, promotes
// previously-skipped jobs into the run, and drains the pending set. A
// non-success result updates state identically; the driver decides
// whether to abort the build.
func (s *Scheduler) JobFinished(job *domain.CompileJob, result domain.JobResult) {
	if s.inJobFinished {
		panic("incremental: concurrent JobFinished")
	}
	s.inJobFinished = true
	defer func() { s.inJobFinished = false }()

	if job.Kind == domain.JobKindCompile {
		s.scheduleSecondWave(s.collectInputsToCompileAfter(job))
	}

	for _, in := range job.Primaries {
		delete(s.pendingInputs, in)
	}

	s.maybeFinishedWithCompilations()
}

// collectInputsToCompileAfter consults the graph for each primary of the
// finished job and returns the sorted, deduplicated union of inputs now
// known to need compilation. When the graph cannot answer precisely the
// whole skipped set is returned.
func (s *Scheduler) collectInputsToCompileAfter(job *domain.CompileJob) []domain.Input {
	found := make(map[domain.Input]struct{})
	for _, in := range job.Primaries {
		sources, ok := s.graph.FindSourcesToCompileAfter(in)
		if !ok {
			// Conservative fallback: everything previously skipped is now
			// potentially required.
			for skipped := range s.skippedInputs {
				found[skipped] = struct{}{}
			}
			continue
		}
		for _, src := range sources {
			found[src] = struct{}{}
		}
	}

	inputs := make([]domain.Input, 0, len(found))
	for in := range found {
		inputs = append(inputs, in)
	}
	domain.SortInputs(inputs)
	return inputs
}

// scheduleSecondWave transfers the previously-skipped job of each input
// into the dynamic stream. Inputs with no registered job were already
// scheduled; that is not an error.
func (s *Scheduler) scheduleSecondWave(inputs []domain.Input) {
	var promoted []*domain.CompileJob
	for _, in := range inputs {
		job, ok := s.skippedJobs[in]
		if !ok {
			s.rep.report("Tried to schedule 2nd wave input again", in)
			continue
		}
		s.rep.report("Scheduling for 2nd wave", in)
		delete(s.skippedJobs, in)
		for _, primary := range job.Primaries {
			delete(s.skippedInputs, primary)
			s.pendingInputs[primary] = struct{}{}
			s.rep.report("Queuing because of dependencies discovered later:", primary)
		}
		promoted = append(promoted, job)
	}
	if len(promoted) > 0 {
		s.jobs.Append(promoted...)
	}
}

// maybeFinishedWithCompilations performs the terminal transition: once the
// pending set has drained, the accumulated post-compile jobs are appended
// and the stream closes. The append happens at most once; closure makes
// later post-compile additions bypass the buffer.
func (s *Scheduler) maybeFinishedWithCompilations() {
	if len(s.pendingInputs) != 0 {
		return
	}
	if !s.jobs.IsOpen() {
		return
	}
	if len(s.postCompileJobs) > 0 {
		s.jobs.Append(s.postCompileJobs...)
		s.postCompileJobs = nil
	}
	s.jobs.Close()
}

// reporter forwards scheduling decisions to the diagnostics sink under the
// "Incremental compilation:" remark when enabled.
type reporter struct {
	diag    ports.Diagnostics
	enabled bool
}

func newReporter(diag ports.Diagnostics, enabled bool) *reporter {
	return &reporter{diag: diag, enabled: enabled}
}

// report emits one scheduling decision, optionally tagged with the inputs
// it concerns.
func (r *reporter) report(msg string, inputs ...domain.Input) {
	if !r.enabled {
		return
	}
	parts := make([]string, 0, 1+len(inputs))
	parts = append(parts, msg)
	for _, in := range inputs {
		parts = append(parts, in.String())
	}
	r.diag.Remark(ports.DiagIncrementalDecision,
		"Incremental compilation: "+strings.Join(parts, " "))
}
