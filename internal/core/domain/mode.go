package domain

// CompilerMode is the driver's overall compilation strategy.
type CompilerMode uint8

const (
	// ModeStandardCompile compiles each input separately.
	ModeStandardCompile CompilerMode = iota
	// ModeImmediate interprets the inputs directly.
	ModeImmediate
	// ModeREPL runs the interactive loop.
	ModeREPL
	// ModeBatchCompile groups inputs into batched compile jobs.
	ModeBatchCompile
	// ModeWholeModule compiles every input in a single job.
	ModeWholeModule
	// ModePrecompileModule emits a precompiled module only.
	ModePrecompileModule
)

// String returns the flag spelling of the mode.
func (m CompilerMode) String() string {
	switch m {
	case ModeStandardCompile:
		return "standard"
	case ModeImmediate:
		return "immediate"
	case ModeREPL:
		return "repl"
	case ModeBatchCompile:
		return "batch"
	case ModeWholeModule:
		return "whole-module"
	case ModePrecompileModule:
		return "precompile-module"
	}
	return "invalid"
}

// ParseCompilerMode parses the flag spelling of a mode.
func ParseCompilerMode(s string) (CompilerMode, bool) {
	switch s {
	case "standard", "":
		return ModeStandardCompile, true
	case "immediate":
		return ModeImmediate, true
	case "repl":
		return ModeREPL, true
	case "batch":
		return ModeBatchCompile, true
	case "whole-module":
		return ModeWholeModule, true
	case "precompile-module":
		return ModePrecompileModule, true
	}
	return 0, false
}

// SupportsIncremental reports whether the mode can schedule incrementally.
// Whole-module and precompiled-module builds compile everything at once,
// so there is nothing to skip.
func (m CompilerMode) SupportsIncremental() bool {
	switch m {
	case ModeStandardCompile, ModeImmediate, ModeREPL, ModeBatchCompile:
		return true
	case ModeWholeModule, ModePrecompileModule:
		return false
	}
	return false
}
