// Package artifacts checks that the documentation files the version tables
// link to exist under the document root.
package artifacts

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/scons/sconsweb/internal/page"
)

// ProductionDir is the doc/ directory that mirrors the current release. It
// is linked from the documentation page rather than the version tables.
const ProductionDir = "production"

// formatDirs matches the format directories of every version.
const formatDirs = "doc/*/{HTML,PDF,PS,TEXT}"

// Kind says what a Warning is about.
type Kind string

const (
	// Missing means a configured version lacks a linked artifact.
	Missing Kind = "missing"
	// Undeclared means a version exists on disk but is not configured.
	Undeclared Kind = "undeclared"
)

// Warning is one problem found by Check. None of them stop a build.
type Warning struct {
	Kind    Kind
	Version string
	Table   string
	Path    string
}

func (w Warning) String() string {
	switch w.Kind {
	case Missing:
		return fmt.Sprintf("version %s: %s table links missing %s", w.Version, w.Table, w.Path)
	case Undeclared:
		return fmt.Sprintf("version %s: documentation found under doc/%s but not listed in docs.versions", w.Version, w.Version)
	default:
		return fmt.Sprintf("version %s: %s", w.Version, w.Kind)
	}
}

// Check returns a warning for every artifact of tables, for every version,
// that fsys does not contain, followed by the undeclared versions found on
// disk. fsys is rooted at the document root, so paths start with doc/.
func Check(fsys fs.FS, versions []string, tables ...page.Table) ([]Warning, error) {
	var warnings []Warning
	for _, t := range tables {
		for _, row := range t.Rows(versions) {
			for _, link := range row.Links {
				if _, err := fs.Stat(fsys, link.Href); err != nil {
					if !errors.Is(err, fs.ErrNotExist) {
						return nil, fmt.Errorf("checking %s: %w", link.Href, err)
					}
					warnings = append(warnings, Warning{Kind: Missing, Version: row.Version, Table: t.Name, Path: link.Href})
				}
			}
		}
	}

	found, err := Discover(fsys)
	if err != nil {
		return nil, err
	}
	declared := make(map[string]bool, len(versions))
	for _, v := range versions {
		declared[v] = true
	}
	for _, v := range found {
		if !declared[v] {
			warnings = append(warnings, Warning{Kind: Undeclared, Version: v})
		}
	}
	return warnings, nil
}

// Discover lists the versions that have at least one format directory under
// doc/, sorted, excluding the production mirror.
func Discover(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, formatDirs)
	if err != nil {
		return nil, fmt.Errorf("scanning doc/: %w", err)
	}
	seen := make(map[string]bool)
	var versions []string
	for _, m := range matches {
		v := path.Base(path.Dir(m))
		if v == ProductionDir || seen[v] {
			continue
		}
		seen[v] = true
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions, nil
}
