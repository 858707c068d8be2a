package content

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/scons/sconsweb/internal/config"
	"github.com/scons/sconsweb/internal/page"
)

func newTestRenderer(t *testing.T, cfg *config.Config, opts Options) *Renderer {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	r, err := NewRenderer(cfg, opts)
	require.NoError(t, err)
	return r
}

func renderDoc(t *testing.T, r *Renderer, p Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderEveryPage(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})
	for _, p := range Pages {
		doc := renderDoc(t, r, p)

		require.Equal(t, "SCons: "+p.Title, doc.Find("title").Text(), "page %q", p.Slug)
		require.Equal(t, 1, doc.Find("#menu").Length(), "page %q", p.Slug)
		require.Equal(t, 1, doc.Find("#bodycontent").Length(), "page %q", p.Slug)
		require.Equal(t, 1, doc.Find("#footer").Length(), "page %q", p.Slug)

		current := doc.Find("#currentpage")
		if p.ID == page.Guidelines {
			require.Equal(t, 0, current.Length(), "guidelines has no menu entry")
			continue
		}
		require.Equal(t, 1, current.Length(), "page %q", p.Slug)
	}
}

func TestRenderDownloadPage(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})
	p, err := Lookup("download")
	require.NoError(t, err)
	doc := renderDoc(t, r, p)

	require.Equal(t, "Download", strings.TrimSpace(doc.Find("#currentpage").Text()))
	require.Equal(t, "0.96.1", doc.Find("#bodycontent .release").Text())

	packages := doc.Find("#bodycontent a.package")
	require.Equal(t, 10, packages.Length())
	require.Equal(t, "http://prdownloads.sourceforge.net/scons/scons-0.96.1.tar.gz", packages.First().AttrOr("href", ""))
	require.Equal(t, "scons-src-0.96.1.zip", packages.Last().Text())
}

func TestRenderDownloadUsesItsOwnRelease(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Download.Release = "0.96.92"
	r := newTestRenderer(t, cfg, Options{})

	p, err := Lookup("download")
	require.NoError(t, err)
	doc := renderDoc(t, r, p)

	require.Equal(t, "0.96.92", doc.Find("#bodycontent .release").Text())
	require.Contains(t, doc.Find("#bodycontent a.package").First().AttrOr("href", ""), "scons-0.96.92.tar.gz")

	// The menu quick links follow the site-wide release.
	var tarball string
	doc.Find("#menu .submenuitems a").Each(func(_ int, a *goquery.Selection) {
		if a.Text() == "Tarball" {
			tarball = a.AttrOr("href", "")
		}
	})
	require.True(t, strings.HasSuffix(tarball, "scons-0.96.1.tar.gz"), tarball)
}

func TestRenderDocVersions(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Docs.Versions = []string{"0.96.1", "0.96"}
	r := newTestRenderer(t, cfg, Options{})

	p, err := Lookup("docversions")
	require.NoError(t, err)
	doc := renderDoc(t, r, p)

	require.Equal(t, "Documentation", strings.TrimSpace(doc.Find("#currentpage").Text()))

	man := doc.Find(`table[data-table="man"] tr.sconsversionrow`)
	require.Equal(t, 2, man.Length())
	require.Equal(t, "0.96.1", man.Eq(0).Find(".sconsversion").Text())
	require.Equal(t, "0.96", man.Eq(1).Find(".sconsversion").Text())

	user := doc.Find(`table[data-table="user"] tr.sconsversionrow`)
	require.Equal(t, 2, user.Length())
	require.Equal(t, "doc/0.96/PDF/scons-user.pdf", user.Eq(1).Find("a").Eq(2).AttrOr("href", ""))
}

func TestRenderDocVersionsEmpty(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Docs.Versions = nil
	r := newTestRenderer(t, cfg, Options{})

	p, err := Lookup("docversions")
	require.NoError(t, err)
	doc := renderDoc(t, r, p)

	require.Equal(t, 2, doc.Find("tr.sconsversionheading").Length())
	require.Equal(t, 0, doc.Find("tr.sconsversionrow").Length())
}

func TestRenderMarkdownSections(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})

	faq, err := Lookup("faq")
	require.NoError(t, err)
	doc := renderDoc(t, r, faq)
	require.Equal(t, 1, doc.Find(`#bodycontent .faq h3#what-is-scons`).Length())
	require.Greater(t, doc.Find("#bodycontent .faq pre.chroma").Length(), 0)

	guidelines, err := Lookup("guidelines")
	require.NoError(t, err)
	doc = renderDoc(t, r, guidelines)
	require.Equal(t, 1, doc.Find(`#bodycontent .guidelines h2#testing-methodology`).Length())
	require.Equal(t, "/dev", doc.Find(`#bodycontent a:contains("Development")`).AttrOr("href", ""))
}

func TestRenderHomeNews(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})
	home, err := Lookup("")
	require.NoError(t, err)
	doc := renderDoc(t, r, home)

	require.Equal(t, "Home", strings.TrimSpace(doc.Find("#currentpage").Text()))
	require.Equal(t, 6, doc.Find("#bodycontent .newsitem").Length())
	require.Equal(t, "23 August 2004", doc.Find("#bodycontent .date").Eq(4).Text())
}

func TestRenderListsPage(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})
	p, err := Lookup("lists")
	require.NoError(t, err)
	doc := renderDoc(t, r, p)

	require.Equal(t, len(MailingLists), doc.Find("#bodycontent .mailinglist").Length())
	require.Equal(t, "mailto:issues@scons.tigris.org", doc.Find("#list-issues h3 a").AttrOr("href", ""))

	archive := doc.Find("#list-issues ul.hack a.archive")
	require.Equal(t, 1, archive.Length())
	require.Equal(t, "http://scons.tigris.org/servlets/SummarizeList?listName=issues", archive.AttrOr("href", ""))

	subscribe := doc.Find("#list-users ul.hack a.subscribe")
	require.Equal(t, 1, subscribe.Length())
	require.Equal(t, "mailto:users-subscribe@scons.tigris.org", subscribe.AttrOr("href", ""))

	// Every list links its own archive, not the heading address.
	for _, l := range MailingLists {
		href := doc.Find("#list-" + l.Name + " a.archive").AttrOr("href", "")
		require.Equal(t, "http://scons.tigris.org/servlets/SummarizeList?listName="+l.Name, href, l.Name)
	}
}

func TestRenderHTMLLinkStyle(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{LinkStyle: config.LinkHTML})
	p, err := Lookup("faq")
	require.NoError(t, err)
	doc := renderDoc(t, r, p)

	require.Equal(t, "faq.html", doc.Find("#currentpage").AttrOr("href", ""))
	require.Equal(t, "css/scons.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	require.Equal(t, "index.html", doc.Find(`#menu a:contains("Home")`).AttrOr("href", ""))
	require.Equal(t, "download.html", r.Href("download"))
}

func TestRenderNotFound(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})
	doc := renderDoc(t, r, NotFound)
	require.Equal(t, 0, doc.Find("#currentpage").Length())
	require.Equal(t, "SCons: Page not found", doc.Find("title").Text())
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{})
	for _, p := range Pages {
		var a, b bytes.Buffer
		require.NoError(t, r.Render(&a, p))
		require.NoError(t, r.Render(&b, p))
		require.Equal(t, a.String(), b.String(), "page %q", p.Slug)
	}
}

func TestRenderLiveReload(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, nil, Options{LiveReload: "/livereload"})
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Pages[0]))
	require.Contains(t, buf.String(), "new WebSocket")
}

func TestNewRendererUnknownLinkStyle(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(config.DefaultConfig(), Options{LinkStyle: "pretty"})
	require.Error(t, err)
}

func TestNewRendererMissingTemplate(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"news.yml":                     {Data: []byte("[]")},
		"markdown/faq.md":              {Data: []byte("# FAQ")},
		"markdown/guidelines.md":       {Data: []byte("# Guidelines")},
		"templates/home.html.tmpl":     {Data: []byte("<div id=\"bodycontent\"></div>")},
		"templates/notfound.html.tmpl": {Data: []byte("<div id=\"bodycontent\"></div>")},
	}
	_, err := NewRendererFS(config.DefaultConfig(), fsys, Options{})
	require.ErrorContains(t, err, "download.html.tmpl")
}

func TestNewRendererContentDir(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Content.Dir = t.TempDir() + "/missing"
	_, err := NewRenderer(cfg, Options{})
	require.Error(t, err)
}

func TestStylesheet(t *testing.T) {
	t.Parallel()

	css := string(newTestRenderer(t, nil, Options{}).Stylesheet())
	require.Contains(t, css, "#currentpage")
	require.Contains(t, css, ".chroma")
}

func TestLookup(t *testing.T) {
	p, err := Lookup("dev")
	require.NoError(t, err)
	require.Equal(t, page.Dev, p.ID)

	_, err = Lookup("blog")
	require.True(t, errors.Is(err, ErrUnknownPage))
}

func TestLookupLegacy(t *testing.T) {
	tests := []struct {
		name string
		slug string
		ok   bool
	}{
		{"download.php", "download", true},
		{"index.php", "", true},
		{"refer.php", "references", true},
		{"docversions.php", "docversions", true},
		{".php", "", false},
		{"download.html", "", false},
		{"blog.php", "", false},
	}
	for _, tt := range tests {
		p, err := LookupLegacy(tt.name)
		if !tt.ok {
			require.ErrorIs(t, err, ErrUnknownPage, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.slug, p.Slug, tt.name)
	}
}

func TestPageFileName(t *testing.T) {
	require.Equal(t, "index.html", Page{}.FileName())
	require.Equal(t, "faq.html", Page{Slug: "faq"}.FileName())
}
