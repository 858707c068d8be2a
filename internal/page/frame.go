package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("page").ParseFS(templateFS, "templates/*.tmpl"))

// ratings are the choices offered by the OSDir rating widget, best first.
var ratings = []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

// FrameOptions configures a Frame. Every field is fixed for the lifetime of
// the Frame.
type FrameOptions struct {
	SiteName      string
	Menu          []Item
	Hosting       Link
	Copyright     string
	FoundationURL string

	// Href maps an internal page slug to the link written into the page.
	// The empty slug is the home page.
	Href func(slug string) string

	// AssetBase prefixes the stylesheet and favicon paths.
	AssetBase string

	// LiveReload is the websocket path polled for reload notices. Empty
	// disables the script.
	LiveReload string
}

// Frame writes the markup shared by every page: the head, the navigation
// menu and the rating widget before the body, and the footer after it.
type Frame struct {
	opts FrameOptions
}

type topData struct {
	Title     string
	SiteName  string
	AssetBase string
	Menu      []Entry
	Ratings   []int
	Hosting   Link
}

type bottomData struct {
	SiteName      string
	Copyright     string
	FoundationURL string
	LiveReload    string
}

// NewFrame returns a Frame for the given options.
func NewFrame(opts FrameOptions) (*Frame, error) {
	if opts.Href == nil {
		return nil, fmt.Errorf("frame: Href is required")
	}
	if opts.SiteName == "" {
		opts.SiteName = "SCons"
	}
	return &Frame{opts: opts}, nil
}

// WriteTop writes the opening of a page titled title, marking the menu
// entry for id as current.
func (f *Frame) WriteTop(w io.Writer, title string, id ID) error {
	data := topData{
		Title:     title,
		SiteName:  f.opts.SiteName,
		AssetBase: f.opts.AssetBase,
		Menu:      Mark(f.opts.Menu, id, f.opts.Href),
		Ratings:   ratings,
		Hosting:   f.opts.Hosting,
	}
	if err := templates.ExecuteTemplate(w, "top", data); err != nil {
		return fmt.Errorf("writing frame top: %w", err)
	}
	return nil
}

// WriteBottom writes the footer and closes the document.
func (f *Frame) WriteBottom(w io.Writer) error {
	data := bottomData{
		SiteName:      f.opts.SiteName,
		Copyright:     f.opts.Copyright,
		FoundationURL: f.opts.FoundationURL,
		LiveReload:    f.opts.LiveReload,
	}
	if err := templates.ExecuteTemplate(w, "bottom", data); err != nil {
		return fmt.Errorf("writing frame bottom: %w", err)
	}
	return nil
}

// Href resolves an internal page slug with the frame's link style.
func (f *Frame) Href(slug string) string {
	return f.opts.Href(slug)
}

// Asset returns the path of a static asset relative to the asset base.
func (f *Frame) Asset(name string) string {
	return f.opts.AssetBase + name
}
