package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it. Every prompt defaults to the production value.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the SCons website.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Current release.
	release, err := (&promptui.Prompt{
		Label:    "Current release",
		Default:  cfg.Release.Current,
		Validate: required,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("current release: %w", err)
	}
	cfg.Release.Current = release
	cfg.Download.Release = release

	// 2. Download base URL.
	downloadPage, err := (&promptui.Prompt{
		Label:    "Download base URL",
		Default:  cfg.Release.DownloadPage,
		Validate: func(s string) error { return validURL("download base URL", s) },
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("download base URL: %w", err)
	}
	cfg.Release.DownloadPage = downloadPage

	// 3. Documented releases.
	versions, err := (&promptui.Prompt{
		Label:   "Documented releases, newest first (comma-separated)",
		Default: strings.Join(cfg.Docs.Versions, ", "),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("documented releases: %w", err)
	}
	cfg.Docs.Versions = splitAndTrim(versions)

	// 4. Documentation root.
	docsRoot, err := (&promptui.Prompt{
		Label:   "Directory holding doc/<version>/ artifacts (blank to skip)",
		Default: "",
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("documentation root: %w", err)
	}
	if docsRoot != "" {
		if info, err := os.Stat(docsRoot); err != nil || !info.IsDir() {
			fmt.Printf("Note: %s is not a directory yet; sconsweb check will report missing artifacts.\n", docsRoot)
		}
	}
	cfg.Docs.Root = docsRoot

	// 5. Output directory.
	outputDir, err := (&promptui.Prompt{
		Label:    "Output directory for the static build",
		Default:  cfg.OutputDir,
		Validate: required,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 6. Log encoding.
	_, format, err := (&promptui.Select{
		Label: "Log format",
		Items: []string{"console", "json"},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = format

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(s string) error {
	if s == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}
