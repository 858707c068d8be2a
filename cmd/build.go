package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scons/sconsweb/internal/progress"
	"github.com/scons/sconsweb/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the website as static HTML",
	Long: `Renders every page into the output directory as <page>.html, together
with css/scons.css and a build.json manifest. Use --pages to build a subset.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringSlice("pages", nil, "only build pages matching these glob patterns (e.g. 'doc*')")
	buildCmd.Flags().String("output", "", "override the output directory")
	buildCmd.Flags().Bool("serve", false, "serve the built site afterwards")
	buildCmd.Flags().Int("port", 8080, "port for --serve")
	buildCmd.Flags().Bool("open", false, "open a browser when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if _, err := warnConfig(cfg, logger); err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := site.NewGenerator(cfg, outputDir)
	g.Patterns, _ = cmd.Flags().GetStringSlice("pages")
	g.Reporter = progress.NewReporter()
	g.Logger = logger

	manifest, err := g.Generate(ctx)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	fmt.Printf("Site built: %s (%d pages, build %s)\n", outputDir, len(manifest.Pages), manifest.BuildID)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")
		fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
		if err := site.Serve(ctx, outputDir, port, open, logger); err != nil {
			logger.Error("serving site", zap.Error(err))
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
