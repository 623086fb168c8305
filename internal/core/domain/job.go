package domain

// JobKind distinguishes compile jobs from the jobs released after the
// pending set drains.
type JobKind uint8

const (
	// JobKindCompile compiles a single primary input.
	JobKindCompile JobKind = iota
	// JobKindLink is a post-compile job combining all objects.
	JobKindLink
	// JobKindGenerateModule is a post-compile job emitting the module
	// interface file.
	JobKindGenerateModule
)

// String returns a short name for the job kind.
func (k JobKind) String() string {
	switch k {
	case JobKindCompile:
		return "compile"
	case JobKindLink:
		return "link"
	case JobKindGenerateModule:
		return "generate-module"
	}
	return "invalid"
}

// CompileJob is a unit of work delivered to the executor.
type CompileJob struct {
	// Kind is the job's category.
	Kind JobKind
	// Primaries are the inputs this job compiles. Compile jobs carry
	// exactly one primary; post-compile jobs carry none.
	Primaries []Input
	// Object is the output object path, from the output-file map.
	Object string
	// SummaryPath is where the compiler writes the job's dependency summary.
	SummaryPath string
}

// NewCompileJob creates a single-primary compile job.
func NewCompileJob(primary Input, object, summaryPath string) *CompileJob {
	return &CompileJob{
		Kind:        JobKindCompile,
		Primaries:   []Input{primary},
		Object:      object,
		SummaryPath: summaryPath,
	}
}

// JobResult is the executor's report for one finished job.
type JobResult struct {
	// Err is non-nil when the job failed or was cancelled. The scheduler
	// updates its state identically either way; the driver decides whether
	// to short-circuit the build.
	Err error
}

// OutputType selects an entry of the output-file map.
type OutputType uint8

const (
	// OutputTypeObject is the compiled object file.
	OutputTypeObject OutputType = iota
	// OutputTypeDependencySummary is the per-input dependency summary.
	OutputTypeDependencySummary
)
