package commands

import (
	"github.com/spf13/cobra"
	"webaudit/internal/config"
	"webaudit/internal/history"
	"webaudit/internal/storage"
)

// PublishCommand handles the publish command
type PublishCommand struct {
	config    *config.Config
	storage   storage.Storage
	publisher *history.Publisher
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(cfg *config.Config, st storage.Storage, publisher *history.Publisher) *PublishCommand {
	return &PublishCommand{
		config:    cfg,
		storage:   st,
		publisher: publisher,
	}
}

// Execute runs the command
func (pc *PublishCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := pc.storage.Load()
	if err != nil {
		return err
	}

	return pc.publisher.Publish(cmd.Context(), output)
}
