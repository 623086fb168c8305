package ports

import "go.trai.ch/ripple/internal/core/domain"

// RecordLoader reads the persisted build record of the previous run.
//
//go:generate mockgen -source=record_loader.go -destination=mocks/mock_record_loader.go -package=mocks
type RecordLoader interface {
	// Load parses the build record under root and captures the current
	// modification times of the given inputs. The error's message is
	// surfaced as the human-readable reason incrementality was disabled.
	Load(root string, inputs []domain.Input) (*domain.BuildRecord, error)
}
