package ports

// DiagID is a stable identifier for a diagnostic message. The identifiers
// are a user-facing contract; tooling keys off them.
type DiagID string

const (
	// DiagIncrementalRequiresOutputMap warns that -incremental was ignored.
	DiagIncrementalRequiresOutputMap DiagID = "incremental_requires_output_file_map"
	// DiagIncrementalDisabled remarks that incrementality was turned off.
	DiagIncrementalDisabled DiagID = "incremental_disabled"
	// DiagIncrementalDecision carries one scheduling decision report.
	DiagIncrementalDecision DiagID = "incremental_decision"
)

// Diagnostics is the sink for driver warnings and remarks.
//
//go:generate mockgen -source=diagnostics.go -destination=mocks/mock_diagnostics.go -package=mocks
type Diagnostics interface {
	// Warning emits a warning diagnostic.
	Warning(id DiagID, msg string)
	// Remark emits a remark diagnostic.
	Remark(id DiagID, msg string)
}
