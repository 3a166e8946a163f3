package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/search"
	"github.com/spf13/cobra"
)

// runSearch implements the root command logic
func runSearch(cmd *cobra.Command, args []string, lookupEnv search.LookupEnvFunc) error {
	// The parser expects a process argument list, program name first
	searchCfg, err := search.NewConfig(append([]string{cmd.Name()}, args...), lookupEnv)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr(), runID)
	if err != nil {
		return err
	}
	defer closeLog()

	log.LogDebug(fmt.Sprintf("run %s: query=%q file=%s mode=%s", runID, searchCfg.Query, searchCfg.Filename, searchCfg.Mode()))

	if err := search.NewRunner(cmd.OutOrStdout(), log).Run(searchCfg); err != nil {
		log.LogInfo(fmt.Sprintf("run %s failed: %v", runID, err))
		return err
	}

	log.LogDebug(fmt.Sprintf("run %s complete", runID))
	return nil
}

// loadConfig reads the config file and merges CLI flags over it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	home, err := config.GetHome()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve minigrep home: %w", err)
	}

	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(home)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr)
	cfg.ResolveLogDir(home)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the console logger and, when enabled, the per-run file logger.
// The returned func closes the file logger.
func newLogger(cfg *config.Config, stderr io.Writer, runID string) (logger.Logger, func(), error) {
	console := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	multi := logger.NewMultiLogger(console)
	if !cfg.LogFile {
		return multi, func() {}, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	multi.Add(fileLog)

	return multi, func() { closeRunLog(fileLog, console) }, nil
}

// closeRunLog closes the run log, reporting a failure on the console.
func closeRunLog(c io.Closer, console logger.Logger) {
	if err := c.Close(); err != nil {
		console.LogWarn(fmt.Sprintf("failed to close run log: %v", err))
	}
}
