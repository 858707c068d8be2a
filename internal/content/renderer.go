package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/scons/sconsweb/internal/config"
	"github.com/scons/sconsweb/internal/markdown"
	"github.com/scons/sconsweb/internal/page"
)

//go:embed site
var embedded embed.FS

// templatePattern matches the body templates inside a content source.
const templatePattern = "templates/**/*.html.tmpl"

// Source returns the content filesystem: dir when set, otherwise the
// content embedded in the binary.
func Source(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "site")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Options selects how a Renderer links pages.
type Options struct {
	// LinkStyle is config.LinkClean for the server and config.LinkHTML for
	// static builds. Empty means clean.
	LinkStyle config.LinkStyle
	// LiveReload is passed to the frame; empty disables the reload script.
	LiveReload string
}

// BodyData is the value every body template executes with.
type BodyData struct {
	Page            Page
	SiteName        string
	Release         string
	DownloadRelease string
	DownloadPage    string
	ListArchive     string
	TigrisURL       string
	ManTable        template.HTML
	GuideTable      template.HTML
	Packages        []PackageGroup
	Lists           []MailingList
	News            []NewsItem
	FAQ             template.HTML
	Guidelines      template.HTML
}

// Renderer writes complete pages. It is immutable after construction and
// safe for concurrent use.
type Renderer struct {
	frame      *page.Frame
	bodies     *template.Template
	base       BodyData
	href       func(string) string
	stylesheet []byte
}

// NewRenderer builds a Renderer from cfg. Content is read from
// cfg.Content.Dir when set.
func NewRenderer(cfg *config.Config, opts Options) (*Renderer, error) {
	fsys, err := Source(cfg.Content.Dir)
	if err != nil {
		return nil, err
	}
	return NewRendererFS(cfg, fsys, opts)
}

// NewRendererFS builds a Renderer reading content from fsys.
func NewRendererFS(cfg *config.Config, fsys fs.FS, opts Options) (*Renderer, error) {
	href, assetBase, err := linkStyle(opts.LinkStyle)
	if err != nil {
		return nil, err
	}

	frame, err := page.NewFrame(page.FrameOptions{
		SiteName: cfg.Site.Name,
		Menu: page.Menu(page.MenuOptions{
			Release:      cfg.Release.Current,
			DownloadPage: cfg.Release.DownloadPage,
			ListArchive:  cfg.Lists.ArchiveURL,
			TigrisURL:    cfg.Site.TigrisURL,
			WikiURL:      cfg.Site.WikiURL,
		}),
		Hosting:       page.Link{Label: cfg.Site.Hosting.Label, Href: cfg.Site.Hosting.URL},
		Copyright:     cfg.Site.Copyright,
		FoundationURL: cfg.Site.FoundationURL,
		Href:          href,
		AssetBase:     assetBase,
		LiveReload:    opts.LiveReload,
	})
	if err != nil {
		return nil, err
	}

	md := markdown.New()
	r := &Renderer{frame: frame, href: href}

	r.base = BodyData{
		SiteName:        cfg.Site.Name,
		Release:         cfg.Release.Current,
		DownloadRelease: cfg.Download.Release,
		DownloadPage:    cfg.Release.DownloadPage,
		ListArchive:     cfg.Lists.ArchiveURL,
		TigrisURL:       cfg.Site.TigrisURL,
		Packages:        Packages(cfg.Release.DownloadPage, cfg.Download.Release),
		Lists:           MailingLists,
	}
	if r.base.ManTable, err = page.ManPageTable.HTML(cfg.Docs.Versions); err != nil {
		return nil, err
	}
	if r.base.GuideTable, err = page.UserGuideTable.HTML(cfg.Docs.Versions); err != nil {
		return nil, err
	}
	if r.base.News, err = loadNews(fsys, md); err != nil {
		return nil, err
	}
	if r.base.FAQ, err = loadMarkdown(fsys, "markdown/faq.md", md); err != nil {
		return nil, err
	}
	if r.base.Guidelines, err = loadMarkdown(fsys, "markdown/guidelines.md", md); err != nil {
		return nil, err
	}

	if r.bodies, err = parseBodies(fsys, r.funcs()); err != nil {
		return nil, err
	}

	var css bytes.Buffer
	css.Write(page.StyleSheet)
	css.WriteString("\n")
	if err := markdown.WriteCSS(&css); err != nil {
		return nil, err
	}
	r.stylesheet = css.Bytes()

	return r, nil
}

func linkStyle(style config.LinkStyle) (href func(string) string, assetBase string, err error) {
	switch style {
	case "", config.LinkClean:
		return func(slug string) string { return "/" + slug }, "/", nil
	case config.LinkHTML:
		return func(slug string) string { return Page{Slug: slug}.FileName() }, "", nil
	default:
		return nil, "", fmt.Errorf("unknown link style %q", style)
	}
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"href": r.href,
		"listArchive": func(list string) string {
			return page.ListArchiveURL(r.base.ListArchive, list)
		},
	}
}

func parseBodies(fsys fs.FS, funcs template.FuncMap) (*template.Template, error) {
	matches, err := doublestar.Glob(fsys, templatePattern)
	if err != nil {
		return nil, fmt.Errorf("finding body templates: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no body templates match %s", templatePattern)
	}
	tmpl, err := template.New("bodies").Funcs(funcs).ParseFS(fsys, matches...)
	if err != nil {
		return nil, fmt.Errorf("parsing body templates: %w", err)
	}
	for _, p := range Pages {
		if tmpl.Lookup(p.Template) == nil {
			return nil, fmt.Errorf("page %q: missing template %s", p.Slug, p.Template)
		}
	}
	if tmpl.Lookup(NotFound.Template) == nil {
		return nil, fmt.Errorf("missing template %s", NotFound.Template)
	}
	return tmpl, nil
}

// Render writes p as a complete document: frame top, body, frame bottom.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if err := r.frame.WriteTop(w, p.Title, p.ID); err != nil {
		return err
	}
	data := r.base
	data.Page = p
	if err := r.bodies.ExecuteTemplate(w, p.Template, data); err != nil {
		return fmt.Errorf("rendering %s body: %w", p.Template, err)
	}
	return r.frame.WriteBottom(w)
}

// Href resolves a page slug with the renderer's link style.
func (r *Renderer) Href(slug string) string {
	return r.href(slug)
}

// Stylesheet returns the site stylesheet, including the code highlighting
// rules.
func (r *Renderer) Stylesheet() []byte {
	return r.stylesheet
}
