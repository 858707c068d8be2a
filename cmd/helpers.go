package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/scons/sconsweb/internal/artifacts"
	"github.com/scons/sconsweb/internal/config"
	"github.com/scons/sconsweb/internal/logging"
	"github.com/scons/sconsweb/internal/page"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sconsweb init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. --verbose forces debug.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.Log.Format)
}

// warnConfig logs the non-fatal problems of cfg: differing releases and,
// when docs.root is set, missing or undeclared documentation artifacts.
// It returns the artifact warnings.
func warnConfig(cfg *config.Config, logger *zap.Logger) ([]artifacts.Warning, error) {
	if cfg.ReleaseMismatch() {
		logger.Warn("download release differs from the current release",
			zap.String("release", cfg.Release.Current),
			zap.String("download_release", cfg.Download.Release))
	}
	if cfg.Docs.Root == "" {
		return nil, nil
	}
	if _, err := os.Stat(cfg.Docs.Root); err != nil {
		return nil, fmt.Errorf("docs.root: %w", err)
	}
	warnings, err := artifacts.Check(os.DirFS(cfg.Docs.Root), cfg.Docs.Versions, page.ManPageTable, page.UserGuideTable)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn(w.String(),
			zap.String("kind", string(w.Kind)),
			zap.String("version", w.Version))
	}
	return warnings, nil
}
