package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scons/sconsweb/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the release, download location, documented versions and output settings, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
