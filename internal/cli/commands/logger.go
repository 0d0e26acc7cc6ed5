package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"webaudit/internal/config"
)

// NewDebugLogger builds the logger for an audit run. With --debug set it
// writes development-formatted entries to the debug log file, otherwise
// logging is a no-op. The returned func flushes buffered entries.
func NewDebugLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	if !cfg.Flags.Debug {
		return zap.NewNop(), func() {}, nil
	}

	logPath := cfg.GetDebugLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.OutputPaths = []string{logPath}
	logCfg.ErrorOutputPaths = []string{logPath}

	logger, err := logCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	return logger, func() { _ = logger.Sync() }, nil
}
