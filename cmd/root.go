package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sconsweb",
	Short: "Build and serve the SCons project website",
	Long: `sconsweb renders the SCons project website: the page frame with its
navigation menu, the version-specific documentation tables, and every page
body. It can write the site as static HTML or serve it directly.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "site.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
