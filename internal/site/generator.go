// Package site writes the website as static files and serves a built copy.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scons/sconsweb/internal/config"
	"github.com/scons/sconsweb/internal/content"
	"github.com/scons/sconsweb/internal/progress"
)

// ManifestName is the file describing a build, written next to the pages.
const ManifestName = "build.json"

// StylesheetPath is the stylesheet location relative to the output dir.
const StylesheetPath = "css/scons.css"

// Manifest records what a build produced.
type Manifest struct {
	BuildID   string    `json:"build_id"`
	Release   string    `json:"release"`
	Download  string    `json:"download_release"`
	Versions  []string  `json:"doc_versions"`
	Pages     []string  `json:"pages"`
	Generated time.Time `json:"generated"`
}

// Generator renders every catalog page into OutputDir.
type Generator struct {
	Config    *config.Config
	OutputDir string
	// Patterns restricts the build to pages whose file name matches one of
	// the doublestar patterns. Empty builds every page.
	Patterns []string
	Reporter progress.Reporter
	Logger   *zap.Logger
}

// NewGenerator creates a Generator writing cfg's site to outputDir.
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	return &Generator{
		Config:    cfg,
		OutputDir: outputDir,
		Reporter:  progress.Nop(),
		Logger:    zap.NewNop(),
	}
}

// Generate builds the static site and returns its manifest.
func (g *Generator) Generate(ctx context.Context) (*Manifest, error) {
	for _, p := range g.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid page pattern %q", p)
		}
	}

	renderer, err := content.NewRenderer(g.Config, content.Options{LinkStyle: config.LinkHTML})
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	pages := g.selectPages()
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages match %v", g.Patterns)
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, filepath.Dir(StylesheetPath)), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, StylesheetPath), renderer.Stylesheet(), 0o644); err != nil {
		return nil, fmt.Errorf("writing stylesheet: %w", err)
	}

	manifest := &Manifest{
		BuildID:   uuid.NewString(),
		Release:   g.Config.Release.Current,
		Download:  g.Config.Download.Release,
		Versions:  g.Config.Docs.Versions,
		Generated: time.Now().UTC(),
	}

	g.Reporter.Start(len(pages))
	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := p.FileName()
		if err := g.writePage(renderer, p); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		manifest.Pages = append(manifest.Pages, name)
		g.Reporter.Update(i+1, name)
		g.Logger.Debug("page written", zap.String("page", name))
	}
	g.Reporter.Finish()

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, ManifestName), append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	g.Logger.Info("site built",
		zap.String("build_id", manifest.BuildID),
		zap.String("output", g.OutputDir),
		zap.Int("pages", len(manifest.Pages)))
	return manifest, nil
}

func (g *Generator) selectPages() []content.Page {
	if len(g.Patterns) == 0 {
		return content.Pages
	}
	var pages []content.Page
	for _, p := range content.Pages {
		if matchesAny(p.FileName(), g.Patterns) {
			pages = append(pages, p)
		}
	}
	return pages
}

// matchesAny reports whether name matches one of the patterns, with or
// without its .html extension.
func matchesAny(name string, patterns []string) bool {
	bare := name[:len(name)-len(filepath.Ext(name))]
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, bare); ok {
			return true
		}
	}
	return false
}

// writePage renders into memory first so that a failed render never leaves
// a truncated file behind.
func (g *Generator) writePage(renderer *content.Renderer, p content.Page) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, p); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, p.FileName()), buf.Bytes(), 0o644)
}

// ReadManifest loads the manifest of a previous build in dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}
	return &m, nil
}
