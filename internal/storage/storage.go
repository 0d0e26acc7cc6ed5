package storage

import (
	"time"

	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// Storage persists and loads audit runs (for report, review and publish).
type Storage interface {
	Save(results []domain.CheckResult, ev *checks.Evidence, duration time.Duration, workers int) error
	Load() (*domain.AuditOutput, error)
	// SaveOutput writes the full output back (e.g. after triage updates).
	SaveOutput(output *domain.AuditOutput) error
}

// JSONStorage stores audit runs in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
