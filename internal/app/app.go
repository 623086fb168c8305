// Package app implements the application layer for ripple.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ripple/internal/adapters/depgraph"
	"go.trai.ch/ripple/internal/adapters/outputmap"
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/ripple/internal/engine/incremental"
	"go.trai.ch/zerr"
)

// App represents the main driver logic.
type App struct {
	fs           ports.FileSystem
	recordLoader ports.RecordLoader
	executor     ports.Executor
	diag         ports.Diagnostics
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	fs ports.FileSystem,
	recordLoader ports.RecordLoader,
	executor ports.Executor,
	diag ports.Diagnostics,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		fs:           fs,
		recordLoader: recordLoader,
		executor:     executor,
		diag:         diag,
		logger:       log,
		tracer:       tracer,
		watcher:      watcher,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Incremental is the -incremental flag.
	Incremental bool
	// ShowIncremental is the -driver-show-incremental flag.
	ShowIncremental bool
	// EmbedBitcode is the -embed-bitcode flag.
	EmbedBitcode bool
	// Mode is the compiler mode spelling.
	Mode string
	// Root is the project root; "." when unset.
	Root string
	// OutputMapPath overrides the output-file map location.
	OutputMapPath string
	// Output is the link output path.
	Output string
}

// Build runs one driver invocation over the given input paths.
func (a *App) Build(ctx context.Context, inputPaths []string, opts BuildOptions) error {
	if len(inputPaths) == 0 {
		return domain.ErrNoInputs
	}

	mode, ok := domain.ParseCompilerMode(opts.Mode)
	if !ok {
		return zerr.With(zerr.New("unknown compiler mode"), "mode", opts.Mode)
	}

	if opts.Root == "" {
		opts.Root = "."
	}

	inputs := make([]domain.Input, len(inputPaths))
	for i, path := range inputPaths {
		inputs[i] = domain.NewInput(path)
	}

	setupOTel()

	outputMap := a.loadOutputMap(&opts)

	var om ports.OutputFileMap
	if outputMap != nil {
		om = outputMap
	}

	sched, ok := incremental.New(incremental.Params{
		Options: incremental.Options{
			Incremental:     opts.Incremental,
			ShowIncremental: opts.ShowIncremental,
			EmbedBitcode:    opts.EmbedBitcode,
			Mode:            mode,
		},
		Root:         opts.Root,
		Inputs:       inputs,
		OutputMap:    om,
		RecordLoader: a.recordLoader,
		BuildGraph: func() (ports.DependencyGraph, error) {
			return depgraph.Build(a.fs, om, a.diag, inputs)
		},
		FS:   a.fs,
		Diag: a.diag,
	})
	if !ok {
		return a.fullBuild(ctx, inputs, outputMap, opts)
	}

	return a.incrementalBuild(ctx, sched, inputs, outputMap, opts)
}

// incrementalBuild streams the first wave plus dynamically discovered jobs
// through the scheduler's queue.
func (a *App) incrementalBuild(
	ctx context.Context,
	sched *incremental.Scheduler,
	inputs []domain.Input,
	outputMap *outputmap.Map,
	opts BuildOptions,
) error {
	firstWave := sched.FirstWaveInputs()
	inWave := make(map[domain.Input]struct{}, len(firstWave))
	for _, in := range firstWave {
		inWave[in] = struct{}{}
	}

	var firstWaveJobs, skippedJobs []*domain.CompileJob
	for _, in := range inputs {
		if !in.Compiles() {
			continue
		}
		job := a.compileJob(in, outputMap)
		if _, ok := inWave[in]; ok {
			firstWaveJobs = append(firstWaveJobs, job)
		} else {
			skippedJobs = append(skippedJobs, job)
		}
	}

	// First-wave jobs follow the scheduler's path-sorted input order.
	sortJobsByPrimary(firstWaveJobs)

	sched.AddSkippedCompileJobs(skippedJobs)
	sched.AddPostCompileJobs([]*domain.CompileJob{a.linkJob(opts)})
	sched.EnqueueFirstWaveJobs(firstWaveJobs)

	names := make([]string, len(firstWave))
	for i, in := range firstWave {
		names[i] = in.String()
	}
	a.tracer.EmitPlan(ctx, names)

	if err := a.executor.Run(ctx, sched.Jobs(), sched.JobFinished); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

// fullBuild compiles every input; the scheduler declined.
func (a *App) fullBuild(
	ctx context.Context,
	inputs []domain.Input,
	outputMap *outputmap.Map,
	opts BuildOptions,
) error {
	queue := incremental.NewJobQueue()

	var names []string
	for _, in := range inputs {
		if !in.Compiles() {
			continue
		}
		queue.Append(a.compileJob(in, outputMap))
		names = append(names, in.String())
	}
	queue.Append(a.linkJob(opts))
	queue.Close()

	a.tracer.EmitPlan(ctx, names)

	onFinished := func(_ *domain.CompileJob, _ domain.JobResult) {}
	if err := a.executor.Run(ctx, queue, onFinished); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

// loadOutputMap reads the output-file map, returning nil when none exists.
// The scheduler turns the nil into its missing-prerequisite warning.
//
// An explicit -output-file-map path wins. Otherwise the driver walks up
// from the project root until it finds .ripple/output-map.yaml, so a
// build started in a subdirectory still locates its project; the
// discovered directory becomes the root the build record is read from.
func (a *App) loadOutputMap(opts *BuildOptions) *outputmap.Map {
	path := opts.OutputMapPath
	if path == "" {
		found, root, ok := a.findOutputMap(opts.Root)
		if !ok {
			return nil
		}
		path = found
		opts.Root = root
	}
	m, err := outputmap.Load(a.fs, path)
	if err != nil {
		return nil
	}
	return m
}

// findOutputMap walks up from start looking for .ripple/output-map.yaml.
// It returns the map's path and the directory that becomes the project
// root.
func (a *App) findOutputMap(start string) (path, root string, ok bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", "", false
	}

	for {
		candidate := domain.DefaultOutputMapPath(dir)
		if _, err := a.fs.GetFileInfo(candidate); err == nil {
			return candidate, dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root
			return "", "", false
		}
		dir = parent
	}
}

// compileJob builds one input's compile job from the output map, deriving
// conventional paths when no map is available.
func (a *App) compileJob(in domain.Input, outputMap *outputmap.Map) *domain.CompileJob {
	object := in.String() + ".o"
	summary := filepath.Join(domain.DefaultSummaryDir("."), in.Basename()+".d.yaml")

	if outputMap != nil {
		if path, ok := outputMap.GetOutput(in, domain.OutputTypeObject); ok {
			object = path
		}
		if path, ok := outputMap.GetOutput(in, domain.OutputTypeDependencySummary); ok {
			summary = path
		}
	}

	return domain.NewCompileJob(in, object, summary)
}

// linkJob builds the post-compile link job.
func (a *App) linkJob(opts BuildOptions) *domain.CompileJob {
	output := opts.Output
	if output == "" {
		output = "a.out"
	}
	return &domain.CompileJob{Kind: domain.JobKindLink, Object: output}
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Record removes the persisted build record.
	Record bool
	// Summaries removes the dependency summary directory.
	Summaries bool
}

// Clean removes persisted build state based on the provided options.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	var errs error

	remove := func(path, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.Record {
		remove(domain.DefaultRecordPath("."), "build record")
	}
	if opts.Summaries {
		remove(domain.DefaultSummaryDir("."), "dependency summaries")
	}

	return errs
}

// sortJobsByPrimary orders jobs by their first primary's path.
func sortJobsByPrimary(jobs []*domain.CompileJob) {
	primary := func(job *domain.CompileJob) string {
		if len(job.Primaries) == 0 {
			return ""
		}
		return job.Primaries[0].String()
	}
	slices.SortFunc(jobs, func(a, b *domain.CompileJob) int {
		return strings.Compare(primary(a), primary(b))
	})
}

// setupOTel registers a tracer provider so job spans are recorded.
func setupOTel() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
}
