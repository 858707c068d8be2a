package config

import "time"

// LinkStyle controls how internal page links are written.
type LinkStyle string

const (
	// LinkClean writes extensionless paths, e.g. "/download".
	LinkClean LinkStyle = "clean"
	// LinkHTML writes relative file names, e.g. "download.html".
	LinkHTML LinkStyle = "html"
)

// Config is the top-level site configuration, corresponding to site.yml.
type Config struct {
	Site      SiteConfig     `yaml:"site" koanf:"site"`
	Release   ReleaseConfig  `yaml:"release" koanf:"release"`
	Download  DownloadConfig `yaml:"download" koanf:"download"`
	Docs      DocsConfig     `yaml:"docs" koanf:"docs"`
	Lists     ListsConfig    `yaml:"lists" koanf:"lists"`
	Content   ContentConfig  `yaml:"content" koanf:"content"`
	Server    ServerConfig   `yaml:"server" koanf:"server"`
	OutputDir string         `yaml:"output_dir" koanf:"output_dir"`
	Log       LogConfig      `yaml:"log" koanf:"log"`
}

// SiteConfig holds the values printed by the page frame.
type SiteConfig struct {
	Name          string      `yaml:"name" koanf:"name"`
	Copyright     string      `yaml:"copyright" koanf:"copyright"`
	FoundationURL string      `yaml:"foundation_url" koanf:"foundation_url"`
	WikiURL       string      `yaml:"wiki_url" koanf:"wiki_url"`
	TigrisURL     string      `yaml:"tigris_url" koanf:"tigris_url"`
	Hosting       HostingLink `yaml:"hosting" koanf:"hosting"`
}

// HostingLink credits the hosting provider in the menu column.
type HostingLink struct {
	Label string `yaml:"label" koanf:"label"`
	URL   string `yaml:"url" koanf:"url"`
}

// ReleaseConfig names the release the menu and documentation pages point at.
type ReleaseConfig struct {
	Current      string `yaml:"current" koanf:"current"`
	DownloadPage string `yaml:"download_page" koanf:"download_page"`
}

// DownloadConfig holds the release whose packages the download page lists.
// It is kept apart from Release.Current so that a new release can be staged
// on the download page first.
type DownloadConfig struct {
	Release string `yaml:"release" koanf:"release"`
}

// DocsConfig lists the releases with published documentation.
type DocsConfig struct {
	// Versions are shown newest first, in the order given.
	Versions []string `yaml:"versions" koanf:"versions"`
	// Root is the directory holding doc/<version>/... artifacts. Empty
	// disables serving and checking them.
	Root string `yaml:"root" koanf:"root"`
}

// ListsConfig locates the mailing list archives.
type ListsConfig struct {
	ArchiveURL string `yaml:"archive_url" koanf:"archive_url"`
}

// ContentConfig overrides the embedded page bodies.
type ContentConfig struct {
	// Dir, when set, is read instead of the embedded content.
	Dir string `yaml:"dir" koanf:"dir"`
}

// ServerConfig holds settings for sconsweb serve.
type ServerConfig struct {
	Port           int           `yaml:"port" koanf:"port"`
	Dev            bool          `yaml:"dev" koanf:"dev"`
	Watch          bool          `yaml:"watch" koanf:"watch"`
	AllowedOrigins []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
