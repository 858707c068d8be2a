package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// Format is one documentation format column of a version table.
type Format struct {
	// Heading is the column heading, which may contain line breaks.
	Heading template.HTML
	// Label is the link text, e.g. ".html".
	Label string
	// Dir is the format directory under doc/<version>/, e.g. "HTML".
	Dir string
	// Name is the artifact path under Dir, e.g. "scons-man.html".
	Name string
}

// Path returns the artifact path of this format for version.
func (f Format) Path(version string) string {
	return "doc/" + version + "/" + f.Dir + "/" + f.Name
}

// Table lists, per release version, links to that version's documentation
// in a fixed set of formats.
type Table struct {
	Name    string
	Formats []Format
}

// Row is one version of a Table.
type Row struct {
	Version string
	Links   []Link
}

var (
	singlePageHTML = template.HTML("Single-<br />page<br />HTML")
	multiPageHTML  = template.HTML("Multi-<br />page<br />HTML")
)

// ManPageTable links the man page of each version.
var ManPageTable = Table{
	Name: "man",
	Formats: []Format{
		{Heading: singlePageHTML, Label: ".html", Dir: "HTML", Name: "scons-man.html"},
		{Heading: "PostScript", Label: ".ps", Dir: "PS", Name: "scons-man.ps"},
		{Heading: "Plain text", Label: ".txt", Dir: "TEXT", Name: "scons-man.txt"},
	},
}

// UserGuideTable links the User's Guide of each version.
var UserGuideTable = Table{
	Name: "user",
	Formats: []Format{
		{Heading: singlePageHTML, Label: ".html", Dir: "HTML", Name: "scons-user.html"},
		{Heading: multiPageHTML, Label: ".html", Dir: "HTML", Name: "scons-user/book1.html"},
		{Heading: "PDF", Label: ".pdf", Dir: "PDF", Name: "scons-user.pdf"},
		{Heading: "PostScript", Label: ".ps", Dir: "PS", Name: "scons-user.ps"},
		{Heading: "Plain text", Label: ".txt", Dir: "TEXT", Name: "scons-user.txt"},
	},
}

// Rows returns one row per version, in input order. Duplicates are kept.
func (t Table) Rows(versions []string) []Row {
	rows := make([]Row, 0, len(versions))
	for _, v := range versions {
		links := make([]Link, 0, len(t.Formats))
		for _, f := range t.Formats {
			links = append(links, Link{Label: f.Label, Href: f.Path(v)})
		}
		rows = append(rows, Row{Version: v, Links: links})
	}
	return rows
}

type tableData struct {
	Name    string
	Formats []Format
	Rows    []Row
}

// WriteHTML writes the table: a heading row, then one row per version. An
// empty version list writes the heading row only.
func (t Table) WriteHTML(w io.Writer, versions []string) error {
	data := tableData{Name: t.Name, Formats: t.Formats, Rows: t.Rows(versions)}
	if err := templates.ExecuteTemplate(w, "versiontable", data); err != nil {
		return fmt.Errorf("writing %s version table: %w", t.Name, err)
	}
	return nil
}

// HTML renders the table for embedding in a page body.
func (t Table) HTML(versions []string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.WriteHTML(&buf, versions); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- produced by html/template
}
