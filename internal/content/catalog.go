package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scons/sconsweb/internal/page"
)

// ErrUnknownPage is returned by Lookup for slugs outside the catalog.
var ErrUnknownPage = errors.New("unknown page")

// Page describes one page of the site.
type Page struct {
	// Slug is the page's path without extension. The home page has the
	// empty slug.
	Slug  string
	Title string
	// ID selects the highlighted menu entry.
	ID page.ID
	// Template names the body template.
	Template string
}

// Pages is the catalog, in build order.
var Pages = []Page{
	{Slug: "", Title: "A software construction tool", ID: page.Home, Template: "home.html.tmpl"},
	{Slug: "download", Title: "Download", ID: page.Download, Template: "download.html.tmpl"},
	{Slug: "documentation", Title: "Documentation", ID: page.Docs, Template: "documentation.html.tmpl"},
	{Slug: "docversions", Title: "Version-Specific SCons Documentation", ID: page.Docs, Template: "docversions.html.tmpl"},
	{Slug: "faq", Title: "FAQ", ID: page.FAQ, Template: "faq.html.tmpl"},
	{Slug: "dev", Title: "Development", ID: page.Dev, Template: "dev.html.tmpl"},
	{Slug: "guidelines", Title: "Developer's Guidelines", ID: page.Guidelines, Template: "guidelines.html.tmpl"},
	{Slug: "lists", Title: "Mailing Lists", ID: page.Lists, Template: "lists.html.tmpl"},
	{Slug: "links", Title: "Links", ID: page.Links, Template: "links.html.tmpl"},
	{Slug: "contact", Title: "Contact", ID: page.Contact, Template: "contact.html.tmpl"},
	{Slug: "references", Title: "References", ID: page.References, Template: "references.html.tmpl"},
	{Slug: "donate", Title: "Donate", ID: page.Donate, Template: "donate.html.tmpl"},
}

// NotFound is rendered for paths outside the catalog. It highlights no
// menu entry.
var NotFound = Page{Title: "Page not found", ID: page.None, Template: "notfound.html.tmpl"}

// legacySlugs maps old script names whose stem differs from the slug.
var legacySlugs = map[string]string{
	"index": "",
	"refer": "references",
}

// Lookup returns the catalog page for slug.
func Lookup(slug string) (Page, error) {
	for _, p := range Pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, slug)
}

// LookupLegacy resolves an old script name such as "download.php" or
// "refer.php" to its catalog page.
func LookupLegacy(name string) (Page, error) {
	stem, ok := strings.CutSuffix(name, ".php")
	if !ok {
		return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	if slug, ok := legacySlugs[stem]; ok {
		stem = slug
	} else if stem == "" {
		return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	return Lookup(stem)
}

// FileName returns the output file of p in a static build.
func (p Page) FileName() string {
	if p.Slug == "" {
		return "index.html"
	}
	return p.Slug + ".html"
}
