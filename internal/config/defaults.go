package config

import "time"

// DefaultRelease is the release shipped with the site content.
const DefaultRelease = "0.96.1"

// DefaultVersions are the releases with published documentation, newest
// first.
var DefaultVersions = []string{"0.96.1", "0.96", "0.95", "0.94", "0.93", "0.92"}

// DefaultConfig returns a Config with the values of the production site.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:          "SCons",
			Copyright:     "2004",
			FoundationURL: "http://www.scons.org",
			WikiURL:       "/wiki/index.html",
			TigrisURL:     "http://scons.tigris.org",
			Hosting: HostingLink{
				Label: "pair.com",
				URL:   "http://www.pair.com/",
			},
		},
		Release: ReleaseConfig{
			Current:      DefaultRelease,
			DownloadPage: "http://prdownloads.sourceforge.net/scons",
		},
		Download: DownloadConfig{
			Release: DefaultRelease,
		},
		Docs: DocsConfig{
			Versions: append([]string(nil), DefaultVersions...),
		},
		Lists: ListsConfig{
			ArchiveURL: "http://scons.tigris.org/servlets/SummarizeList",
		},
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		OutputDir: "public",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
