package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"webaudit/internal/checks"
	"webaudit/internal/config"
	"webaudit/internal/storage"
	"webaudit/internal/ui"
)

// ChecksCommand handles the checks command
type ChecksCommand struct {
	config    *config.Config
	registry  *checks.Registry
	filter    *checks.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewChecksCommand creates a new ChecksCommand
func NewChecksCommand(
	cfg *config.Config,
	registry *checks.Registry,
	filter *checks.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *ChecksCommand {
	return &ChecksCommand{
		config:    cfg,
		registry:  registry,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *ChecksCommand) Execute(cmd *cobra.Command, args []string) error {
	list := cc.registry.All()
	list = cc.filter.ByName(list, cc.config.Flags.Filter)
	list = cc.filter.ByCategory(list, cc.config.Flags.Category)

	if len(list) == 0 {
		color.Yellow("No checks match")
		return nil
	}

	// Mark checks flagged by the last stored run, if one exists
	flagged := make(map[string]struct{})
	if output, err := cc.storage.Load(); err == nil {
		for _, finding := range output.Findings {
			flagged[finding.CheckID] = struct{}{}
		}
	}

	cc.formatter.PrintCheckList(list, cc.config.Flags.Describe, flagged)
	return nil
}
