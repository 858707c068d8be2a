package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the config and the documentation artifacts under docs.root",
	Long: `Validates the config file and, when docs.root is set, reports every
documentation file the version tables link to that does not exist, plus any
version found under doc/ that docs.versions does not list. Problems with
artifacts are warnings; use --strict to turn them into a failing exit status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if cfg.Docs.Root == "" {
			fmt.Println("Config OK. docs.root is not set, so documentation artifacts were not checked.")
			return nil
		}

		warnings, err := warnConfig(cfg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("Checked %d documented versions under %s: %d warnings\n", len(cfg.Docs.Versions), cfg.Docs.Root, len(warnings))

		if strict, _ := cmd.Flags().GetBool("strict"); strict && len(warnings) > 0 {
			return errors.New("documentation artifacts are incomplete")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "exit non-zero when any warning is reported")
	rootCmd.AddCommand(checkCmd)
}
