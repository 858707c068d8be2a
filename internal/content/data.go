package content

import (
	"fmt"
	"html/template"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/scons/sconsweb/internal/markdown"
	"github.com/scons/sconsweb/internal/page"
)

// Package is one downloadable file of a release.
type Package struct {
	File        string
	URL         string
	Description template.HTML
}

// PackageGroup is a family of release packages.
type PackageGroup struct {
	Name    string
	Summary template.HTML
	Files   []Package
}

// Packages returns the download groups of release, linked under base.
func Packages(base, release string) []PackageGroup {
	pkg := func(file string, desc template.HTML) Package {
		return Package{File: file, URL: page.PackageURL(base, file), Description: desc}
	}
	return []PackageGroup{
		{
			Name: "scons",
			Summary: `The <span class="sconslogo">scons</span> packages are the basic packages for installing
<span class="sconslogo">SCons</span> on your system and using it or experimenting with it.
You only need one of the following packages if you just want to try out SCons:`,
			Files: []Package{
				pkg("scons-"+release+".tar.gz", "Gzipped tar file, installable using the Python <code>setup.py</code> script."),
				pkg("scons-"+release+".zip", "Zip file, installable using the Python <code>setup.py</code> script."),
				pkg("scons-"+release+"-1.noarch.rpm", "Redhat RPM"),
				pkg("scons_"+release+"-0.1_all.deb", "Debian package"),
				pkg("scons-"+release+".win32.exe", "Windows installer"),
				pkg("scons-"+release+"-1.src.rpm", "Source RPM, containing the <code>.tar.gz</code> and <code>.spec</code> files for building your own RPM."),
			},
		},
		{
			Name: "scons-local",
			Summary: `The <span class="sconslogo">scons-local</span> packages run standalone out of a local
directory. They are meant to be dropped in to and shipped with other software that builds with
SCons, so that its users do not have to install SCons first:`,
			Files: []Package{
				pkg("scons-local-"+release+".tar.gz", "Tarball of a locally-executable package, suitable for dropping in and shipping with other software."),
				pkg("scons-local-"+release+".zip", "Zip of a locally-executable package, suitable for dropping in and shipping with other software."),
			},
		},
		{
			Name: "scons-src",
			Summary: `The <span class="sconslogo">scons-src</span> packages contain the complete source tree,
including everything used to package SCons and all of the regression tests. Pick one of these to
run the regression tests on your own system or to contribute to development:`,
			Files: []Package{
				pkg("scons-src-"+release+".tar.gz", "Tarball of the checked-in source tree, including all of the regression tests."),
				pkg("scons-src-"+release+".zip", "Zip of the checked-in source tree, including all of the regression tests."),
			},
		},
	}
}

// MailingList is one list on the mailing lists page.
type MailingList struct {
	Name        string
	Description string
	Gmane       string
}

// Address returns the posting address of the list.
func (l MailingList) Address() string { return l.Name + "@scons.tigris.org" }

// Subscribe returns the subscription address of the list.
func (l MailingList) Subscribe() string { return l.Name + "-subscribe@scons.tigris.org" }

// MailingLists are the project's lists, most widely read first.
var MailingLists = []MailingList{
	{
		Name:        "announce",
		Description: "Announcements and news related to SCons. This is a low-volume list for people who simply want to know when the next release is available, or when a significant update occurs to the web site.",
		Gmane:       "http://news.gmane.org/gmane.comp.programming.tools.scons.announce",
	},
	{
		Name:        "users",
		Description: "Information and discussion about using SCons.",
		Gmane:       "http://news.gmane.org/gmane.comp.programming.tools.scons.user",
	},
	{
		Name:        "dev",
		Description: "Discussion among developers working on SCons. Subscription is by approval, but in practice no one will be turned away at this stage of development.",
		Gmane:       "http://news.gmane.org/gmane.comp.programming.tools.scons.devel",
	},
	{
		Name:        "cvs",
		Description: "Notification of changes committed to the public repositories at Tigris.org and SourceForge. Subscribe if you use the repositories to participate in, or monitor, SCons development.",
	},
	{
		Name:        "issues",
		Description: "Notification whenever issues (bugs, feature requests, etc.) are added or updated in the tracker, or when project documents are updated.",
	},
}

// NewsItem is one entry of the home page news list.
type NewsItem struct {
	Title string        `yaml:"title"`
	Date  string        `yaml:"date"`
	Body  string        `yaml:"body"`
	HTML  template.HTML `yaml:"-"`
}

// loadNews reads news.yml from fsys and renders each body.
func loadNews(fsys fs.FS, md *markdown.Renderer) ([]NewsItem, error) {
	data, err := fs.ReadFile(fsys, "news.yml")
	if err != nil {
		return nil, fmt.Errorf("reading news: %w", err)
	}
	var items []NewsItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing news: %w", err)
	}
	for i := range items {
		if items[i].Title == "" {
			return nil, fmt.Errorf("news item %d has no title", i)
		}
		body, err := md.Render([]byte(items[i].Body))
		if err != nil {
			return nil, fmt.Errorf("rendering news item %q: %w", items[i].Title, err)
		}
		items[i].HTML = body
	}
	return items, nil
}

// loadMarkdown renders one Markdown section from fsys.
func loadMarkdown(fsys fs.FS, name string, md *markdown.Renderer) (template.HTML, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	out, err := md.Render(src)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return out, nil
}
