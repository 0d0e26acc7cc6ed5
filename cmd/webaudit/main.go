package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"webaudit/internal/cli"
	"webaudit/internal/cli/commands"
	"webaudit/internal/config"
)

var version = "dev"

func main() {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	// Create root command
	rootCmd := &cobra.Command{
		Use:     "webaudit",
		Short:   "Automated website QA auditor",
		Long:    `An automated QA auditor for websites. Captures the target page in desktop and mobile viewports, probes the URLs it references and evaluates a battery of layout, style, network, content and performance checks, producing reports a QA engineer could file.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
