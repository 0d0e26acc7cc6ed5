package commands

import (
	"github.com/spf13/cobra"
	"webaudit/internal/config"
	"webaudit/internal/storage"
	"webaudit/internal/ui"
)

// ReviewCommand handles the review command
type ReviewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewReviewCommand creates a new ReviewCommand
func NewReviewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ReviewCommand {
	return &ReviewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (rc *ReviewCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := rc.storage.Load()
	if err != nil {
		return err
	}

	return rc.viewer.Review(output)
}
