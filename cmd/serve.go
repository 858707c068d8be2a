package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scons/sconsweb/internal/config"
	"github.com/scons/sconsweb/internal/livereload"
	"github.com/scons/sconsweb/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website over HTTP",
	Long: `Starts an HTTP server rendering every page on request. With --watch the
config file is reloaded on change and open browsers refresh themselves; with
--dev page content is re-read from content.dir on every request.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("dev", false, "re-read content on every request")
	serveCmd.Flags().Bool("watch", false, "reload the config file on change and refresh browsers")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if dev, _ := cmd.Flags().GetBool("dev"); dev {
		cfg.Server.Dev = true
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		cfg.Server.Watch = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if _, err := warnConfig(cfg, logger); err != nil {
		return err
	}

	var hub *livereload.Hub
	if cfg.Server.Watch {
		hub = livereload.NewHub(logger.Named("livereload"))
	}

	srv, err := server.New(cfg, logger, hub)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if cfg.Server.Watch {
		unwatch, err := watchConfig(srv, logger)
		if err != nil {
			return err
		}
		defer func() { _ = unwatch() }()
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// watchConfig reloads srv whenever the config file changes. Flags given on
// the command line keep their effect across reloads.
func watchConfig(srv *server.Server, logger *zap.Logger) (func() error, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		return nil, fmt.Errorf("--watch needs a config file: %w", err)
	}
	return config.Watch(cfgFile,
		func(cfg *config.Config) {
			current := srv.Config()
			cfg.Server.Port = current.Server.Port
			cfg.Server.Dev = current.Server.Dev
			cfg.Server.Watch = true
			if err := srv.Reload(cfg); err != nil {
				logger.Error("config reload failed", zap.Error(err))
				return
			}
			if _, err := warnConfig(cfg, logger); err != nil {
				logger.Warn("checking documentation artifacts", zap.Error(err))
			}
		},
		func(err error) {
			logger.Error("config reload failed", zap.Error(err))
		})
}
