package incremental_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/ripple/internal/core/ports/mocks"
	"go.trai.ch/ripple/internal/engine/incremental"
	"go.uber.org/mock/gomock"
)

type schedulerTestMocks struct {
	graph     *mocks.MockDependencyGraph
	fs        *mocks.MockFileSystem
	loader    *mocks.MockRecordLoader
	outputMap *mocks.MockOutputFileMap
	diag      *mocks.MockDiagnostics

	remarks  *[]string
	warnings *[]string
}

// setupSchedulerTest creates the common mocks. The diagnostics mock
// records every message so tests can assert on report wording.
func setupSchedulerTest(t *testing.T) schedulerTestMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	remarks := &[]string{}
	warnings := &[]string{}

	m := schedulerTestMocks{
		graph:     mocks.NewMockDependencyGraph(ctrl),
		fs:        mocks.NewMockFileSystem(ctrl),
		loader:    mocks.NewMockRecordLoader(ctrl),
		outputMap: mocks.NewMockOutputFileMap(ctrl),
		diag:      mocks.NewMockDiagnostics(ctrl),
		remarks:   remarks,
		warnings:  warnings,
	}

	m.diag.EXPECT().Remark(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ ports.DiagID, msg string) {
			*remarks = append(*remarks, msg)
		},
	).AnyTimes()
	m.diag.EXPECT().Warning(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ ports.DiagID, msg string) {
			*warnings = append(*warnings, msg)
		},
	).AnyTimes()

	return m
}

// params builds scheduler Params wired to the mocks with incrementality on.
func (m schedulerTestMocks) params(inputs []domain.Input, rec *domain.BuildRecord) incremental.Params {
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(rec, nil).AnyTimes()
	return incremental.Params{
		Options: incremental.Options{
			Incremental:     true,
			ShowIncremental: true,
			Mode:            domain.ModeStandardCompile,
		},
		Root:         "/proj",
		Inputs:       inputs,
		OutputMap:    m.outputMap,
		RecordLoader: m.loader,
		BuildGraph: func() (ports.DependencyGraph, error) {
			return m.graph, nil
		},
		FS:   m.fs,
		Diag: m.diag,
	}
}

// countRemarks counts recorded remarks containing the fragment.
func countRemarks(remarks []string, fragment string) int {
	n := 0
	for _, r := range remarks {
		if strings.Contains(r, fragment) {
			n++
		}
	}
	return n
}

// makeRecord assembles a BuildRecord from plain maps keyed by path.
func makeRecord(
	buildTime time.Time,
	infos map[string]domain.InputInfo,
	mtimes map[string]time.Time,
) *domain.BuildRecord {
	rec := &domain.BuildRecord{
		BuildTime:     buildTime,
		InputInfos:    make(map[domain.InternedPath]domain.InputInfo),
		InputModTimes: make(map[domain.Input]time.Time),
	}
	for path, info := range infos {
		rec.InputInfos[domain.InternPath(path)] = info
	}
	for path, mt := range mtimes {
		rec.InputModTimes[domain.NewInput(path)] = mt
	}
	return rec
}

func paths(inputs []domain.Input) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = in.String()
	}
	return out
}

// drainQueue collects every job until the queue reports closed and empty.
// Only safe once the queue is known closed.
func drainQueue(q *incremental.JobQueue) []*domain.CompileJob {
	var jobs []*domain.CompileJob
	for {
		job, ok := q.Next()
		if !ok {
			return jobs
		}
		jobs = append(jobs, job)
	}
}

func TestScheduler_NoChanges(t *testing.T) {
	// Scenario: nothing changed since the last successful build.
	// Expectation: empty first wave, everything skipped, queue closes with
	// only the post-compile jobs.
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusUpToDate},
			"b.src": {Status: domain.StatusUpToDate},
		},
		map[string]time.Time{
			"a.src": time.Unix(90, 0),
			"b.src": time.Unix(80, 0),
		},
	)

	m.graph.EXPECT().ExternalDependencies().Return(nil)

	inputs := []domain.Input{domain.NewInput("a.src"), domain.NewInput("b.src")}
	s, ok := incremental.New(m.params(inputs, rec))
	require.True(t, ok)

	require.Empty(t, s.FirstWaveInputs())
	require.Equal(t, []string{"a.src", "b.src"}, paths(s.SkippedInputs()))

	// The pending set was never non-empty, so the queue is already closed.
	require.False(t, s.Jobs().IsOpen())

	// Post-compile jobs arriving after closure are appended directly.
	link := &domain.CompileJob{Kind: domain.JobKindLink}
	s.AddPostCompileJobs([]*domain.CompileJob{link})

	jobs := drainQueue(s.Jobs())
	require.Equal(t, []*domain.CompileJob{link}, jobs)

	require.Equal(t, 2, countRemarks(*m.remarks, "Skipping current"))
	require.Equal(t, 2, countRemarks(*m.remarks, "Skipping:"))
}

func TestScheduler_OneNonCascadingChange(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusNeedsNonCascadingBuild},
			"b.src": {Status: domain.StatusUpToDate},
		},
		map[string]time.Time{
			"a.src": time.Unix(200, 0),
			"b.src": time.Unix(80, 0),
		},
	)

	m.graph.EXPECT().ExternalDependencies().Return(nil)

	inputs := []domain.Input{domain.NewInput("a.src"), domain.NewInput("b.src")}
	s, ok := incremental.New(m.params(inputs, rec))
	require.True(t, ok)

	require.Equal(t, []string{"a.src"}, paths(s.FirstWaveInputs()))
	require.Equal(t, []string{"b.src"}, paths(s.SkippedInputs()))
	require.True(t, s.Jobs().IsOpen())

	require.Equal(t, 1, countRemarks(*m.remarks, "Scheduling noncascading build"))
	require.Zero(t, countRemarks(*m.remarks, "Queuing (dependent):"))
}

func TestScheduler_CascadingChangePullsDependent(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	a := domain.NewInput("a.src")
	b := domain.NewInput("b.src")

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusNeedsCascadingBuild},
			"b.src": {Status: domain.StatusUpToDate},
		},
		map[string]time.Time{
			"a.src": time.Unix(90, 0),
			"b.src": time.Unix(80, 0),
		},
	)

	m.graph.EXPECT().ExternalDependencies().Return(nil)
	m.graph.EXPECT().FindDependentSources(a).Return([]domain.Input{b})

	s, ok := incremental.New(m.params([]domain.Input{a, b}, rec))
	require.True(t, ok)

	require.Equal(t, []string{"a.src", "b.src"}, paths(s.FirstWaveInputs()))
	require.Empty(t, s.SkippedInputs())

	require.Equal(t, 1, countRemarks(*m.remarks, "Queuing (initial): a.src"))
	require.Equal(t, 1, countRemarks(*m.remarks, "Queuing (dependent): b.src"))
}

func TestScheduler_ExternalDepChange(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	c := domain.NewInput("c.src")

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"c.src": {Status: domain.StatusUpToDate},
		},
		map[string]time.Time{
			"c.src": time.Unix(50, 0),
		},
	)

	ext := ports.ExternalDependency{Path: "/sdk/Ext.iface"}
	node := ports.SummaryNode{ID: 7}

	m.graph.EXPECT().ExternalDependencies().Return([]ports.ExternalDependency{ext})
	m.fs.EXPECT().GetFileInfo("/sdk/Ext.iface").Return(ports.FileInfo{ModTime: time.Unix(150, 0)}, nil)
	m.graph.EXPECT().ForEachUntracedDependent(ext, gomock.Any()).DoAndReturn(
		func(_ ports.ExternalDependency, visit func(ports.SummaryNode)) {
			visit(node)
		},
	)
	m.graph.EXPECT().SourceOf(node).Return(c, true)

	s, ok := incremental.New(m.params([]domain.Input{c}, rec))
	require.True(t, ok)

	// c.src is in the first wave regardless of its own (old) mtime.
	require.Equal(t, []string{"c.src"}, paths(s.FirstWaveInputs()))
	require.Equal(t, 1, countRemarks(*m.remarks, "Scheduling externally-dependent on newer Ext.iface"))
}

func TestScheduler_SecondWavePromotion(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	a := domain.NewInput("a.src")
	b := domain.NewInput("b.src")

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusNeedsNonCascadingBuild},
			"b.src": {Status: domain.StatusUpToDate},
		},
		map[string]time.Time{
			"a.src": time.Unix(200, 0),
			"b.src": time.Unix(80, 0),
		},
	)

	m.graph.EXPECT().ExternalDependencies().Return(nil)

	s, ok := incremental.New(m.params([]domain.Input{a, b}, rec))
	require.True(t, ok)
	require.Equal(t, []string{"a.src"}, paths(s.FirstWaveInputs()))

	jobA := domain.NewCompileJob(a, "a.o", "a.d.yaml")
	jobB := domain.NewCompileJob(b, "b.o", "b.d.yaml")
	link := &domain.CompileJob{Kind: domain.JobKindLink}

	s.AddSkippedCompileJobs([]*domain.CompileJob{jobB})
	s.AddPostCompileJobs([]*domain.CompileJob{link})
	s.EnqueueFirstWaveJobs([]*domain.CompileJob{jobA})

	// a.src's fresh summary implicates b.src.
	m.graph.EXPECT().FindSourcesToCompileAfter(a).Return([]domain.Input{b}, true)
	s.JobFinished(jobA, domain.JobResult{})

	// b.src was promoted: removed from the skipped set, job in the stream,
	// queue still open because b.src is now pending.
	require.Empty(t, s.SkippedInputs())
	require.True(t, s.Jobs().IsOpen())

	m.graph.EXPECT().FindSourcesToCompileAfter(b).Return(nil, true)
	s.JobFinished(jobB, domain.JobResult{})

	require.False(t, s.Jobs().IsOpen())
	require.Equal(t, []*domain.CompileJob{jobA, jobB, link}, drainQueue(s.Jobs()))
	require.Equal(t, 1, countRemarks(*m.remarks, "Scheduling for 2nd wave b.src"))
}

func TestScheduler_GraphPessimismPromotesEverything(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	a := domain.NewInput("a.src")
	b := domain.NewInput("b.src")
	c := domain.NewInput("c.src")

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusNeedsNonCascadingBuild},
			"b.src": {Status: domain.StatusUpToDate},
			"c.src": {Status: domain.StatusUpToDate},
		},
		map[string]time.Time{
			"a.src": time.Unix(200, 0),
			"b.src": time.Unix(80, 0),
			"c.src": time.Unix(70, 0),
		},
	)

	m.graph.EXPECT().ExternalDependencies().Return(nil)

	s, ok := incremental.New(m.params([]domain.Input{a, b, c}, rec))
	require.True(t, ok)
	require.Equal(t, []string{"b.src", "c.src"}, paths(s.SkippedInputs()))

	jobA := domain.NewCompileJob(a, "a.o", "a.d.yaml")
	jobB := domain.NewCompileJob(b, "b.o", "b.d.yaml")
	jobC := domain.NewCompileJob(c, "c.o", "c.d.yaml")

	s.AddSkippedCompileJobs([]*domain.CompileJob{jobB, jobC})
	s.EnqueueFirstWaveJobs([]*domain.CompileJob{jobA})

	// The graph cannot determine a precise answer.
	m.graph.EXPECT().FindSourcesToCompileAfter(a).Return(nil, false)
	s.JobFinished(jobA, domain.JobResult{})

	// Every skipped input was promoted, each exactly once.
	require.Empty(t, s.SkippedInputs())
	require.True(t, s.Jobs().IsOpen())
	require.Equal(t, 1, countRemarks(*m.remarks, "Scheduling for 2nd wave b.src"))
	require.Equal(t, 1, countRemarks(*m.remarks, "Scheduling for 2nd wave c.src"))

	m.graph.EXPECT().FindSourcesToCompileAfter(b).Return(nil, true)
	s.JobFinished(jobB, domain.JobResult{})
	require.True(t, s.Jobs().IsOpen())

	m.graph.EXPECT().FindSourcesToCompileAfter(c).Return(nil, true)
	s.JobFinished(jobC, domain.JobResult{})
	require.False(t, s.Jobs().IsOpen())

	require.Equal(t, []*domain.CompileJob{jobA, jobB, jobC}, drainQueue(s.Jobs()))
}

func TestScheduler_AlreadyScheduledSecondWaveInputIsNotAnError(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	a := domain.NewInput("a.src")
	b := domain.NewInput("b.src")

	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusNeedsNonCascadingBuild},
			"b.src": {Status: domain.StatusNeedsNonCascadingBuild},
		},
		map[string]time.Time{
			"a.src": time.Unix(200, 0),
			"b.src": time.Unix(200, 0),
		},
	)

	m.graph.EXPECT().ExternalDependencies().Return(nil)

	s, ok := incremental.New(m.params([]domain.Input{a, b}, rec))
	require.True(t, ok)
	require.Equal(t, []string{"a.src", "b.src"}, paths(s.FirstWaveInputs()))

	jobA := domain.NewCompileJob(a, "a.o", "a.d.yaml")
	jobB := domain.NewCompileJob(b, "b.o", "b.d.yaml")
	s.EnqueueFirstWaveJobs([]*domain.CompileJob{jobA, jobB})

	// b.src is already compiling in the first wave; no skipped job exists.
	m.graph.EXPECT().FindSourcesToCompileAfter(a).Return([]domain.Input{b}, true)
	s.JobFinished(jobA, domain.JobResult{})

	require.Equal(t, 1, countRemarks(*m.remarks, "Tried to schedule 2nd wave input again"))
	require.True(t, s.Jobs().IsOpen())

	m.graph.EXPECT().FindSourcesToCompileAfter(b).Return(nil, true)
	s.JobFinished(jobB, domain.JobResult{})
	require.False(t, s.Jobs().IsOpen())
}

func TestScheduler_Determinism(t *testing.T) {
	// Two constructions over identical inputs yield identical waves.
	buildTime := time.Unix(100, 0)

	build := func(t *testing.T) ([]string, []string) {
		m := setupSchedulerTest(t)
		a := domain.NewInput("a.src")
		rec := makeRecord(buildTime,
			map[string]domain.InputInfo{
				"a.src": {Status: domain.StatusNeedsCascadingBuild},
				"b.src": {Status: domain.StatusUpToDate},
				"c.src": {Status: domain.StatusUpToDate},
			},
			map[string]time.Time{
				"a.src": time.Unix(90, 0),
				"b.src": time.Unix(80, 0),
				"c.src": time.Unix(70, 0),
			},
		)
		m.graph.EXPECT().ExternalDependencies().Return(nil)
		m.graph.EXPECT().FindDependentSources(a).Return([]domain.Input{domain.NewInput("b.src")})

		inputs := []domain.Input{a, domain.NewInput("b.src"), domain.NewInput("c.src")}
		s, ok := incremental.New(m.params(inputs, rec))
		require.True(t, ok)
		return paths(s.FirstWaveInputs()), paths(s.SkippedInputs())
	}

	wave1, skipped1 := build(t)
	wave2, skipped2 := build(t)
	require.Equal(t, wave1, wave2)
	require.Equal(t, skipped1, skipped2)
	require.Equal(t, []string{"a.src", "b.src"}, wave1)
	require.Equal(t, []string{"c.src"}, skipped1)
}

func TestScheduler_JobFailureStillDrainsPending(t *testing.T) {
	m := setupSchedulerTest(t)
	buildTime := time.Unix(100, 0)

	a := domain.NewInput("a.src")
	rec := makeRecord(buildTime,
		map[string]domain.InputInfo{
			"a.src": {Status: domain.StatusNeedsNonCascadingBuild},
		},
		map[string]time.Time{
			"a.src": time.Unix(200, 0),
		},
	)
	m.graph.EXPECT().ExternalDependencies().Return(nil)

	s, ok := incremental.New(m.params([]domain.Input{a}, rec))
	require.True(t, ok)

	jobA := domain.NewCompileJob(a, "a.o", "a.d.yaml")
	s.EnqueueFirstWaveJobs([]*domain.CompileJob{jobA})

	// A failed job leaves the pending set exactly like a successful one.
	m.graph.EXPECT().FindSourcesToCompileAfter(a).Return(nil, true)
	s.JobFinished(jobA, domain.JobResult{Err: domain.ErrCompileFailed})

	require.False(t, s.Jobs().IsOpen())
}
