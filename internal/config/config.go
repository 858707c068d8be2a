package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SCONSWEB_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SCONSWEB_*). A double underscore separates
// nested keys: SCONSWEB_RELEASE__CURRENT sets release.current.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps SCONSWEB_DOCS__VERSIONS to docs.versions.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// envValue splits comma-separated values for list keys.
func envValue(key, value string) (string, interface{}) {
	key = envKey(key)
	switch key {
	case "docs.versions", "server.allowed_origins":
		return key, splitAndTrim(value)
	}
	return key, value
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogFormats is the set of recognized log encodings.
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Release.Current == "" {
		return fmt.Errorf("release.current is required")
	}
	if c.Download.Release == "" {
		return fmt.Errorf("download.release is required")
	}
	if err := validURL("release.download_page", c.Release.DownloadPage); err != nil {
		return err
	}
	if err := validURL("lists.archive_url", c.Lists.ArchiveURL); err != nil {
		return err
	}

	for i, v := range c.Docs.Versions {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("docs.versions[%d] is empty", i)
		}
		if strings.ContainsAny(v, `/\`) || v == "." || v == ".." {
			return fmt.Errorf("docs.versions[%d] %q is not a valid version", i, v)
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server timeouts must be non-negative")
	}

	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of json, console", c.Log.Format)
	}

	return nil
}

func validURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute URL", key, raw)
	}
	return nil
}

// ReleaseMismatch reports whether the download page lists a different
// release than the rest of the site. Both values are honored as configured;
// callers surface the mismatch as a warning.
func (c *Config) ReleaseMismatch() bool {
	return c.Release.Current != c.Download.Release
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
