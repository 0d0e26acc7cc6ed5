package ui

import "webaudit/internal/domain"

// Viewer displays audit findings in an interactive TUI
type Viewer interface {
	Review(output *domain.AuditOutput) error
}
