package execution

import (
	"time"

	"webaudit/internal/checks"
	"webaudit/internal/domain"
	"webaudit/internal/ui"
)

// Executor evaluates snapshot checks and returns their results
type Executor interface {
	Execute(list []checks.SnapshotCheck, ev *checks.Evidence) ([]domain.CheckResult, time.Duration, error)
	ExecuteWithOptions(list []checks.SnapshotCheck, ev *checks.Evidence, failFast bool) ([]domain.CheckResult, time.Duration, error)
	SetProgress(progress *ui.ProgressBar)
}
