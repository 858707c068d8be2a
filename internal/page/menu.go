package page

import "net/url"

// Link is a navigation link. Internal links set Slug and are resolved through
// the frame's link style; fixed and external links set Href.
type Link struct {
	Label string
	Slug  string
	Href  string
}

// Item is one top-level entry of the navigation menu.
type Item struct {
	Link
	// Page is the ID that marks this entry as current. Entries with None
	// are never current.
	Page     ID
	Note     string
	Children []Link
}

// Entry is a menu item resolved for one render.
type Entry struct {
	Label    string
	Href     string
	Current  bool
	Note     string
	Children []Entry
}

// MenuOptions carries the values interpolated into the menu links.
type MenuOptions struct {
	Release      string
	DownloadPage string
	ListArchive  string
	TigrisURL    string
	WikiURL      string
}

// Menu returns the fixed, ordered navigation menu.
func Menu(opts MenuOptions) []Item {
	return []Item{
		{Link: Link{Label: "Home", Slug: ""}, Page: Home},
		{Link: Link{Label: "Wiki", Href: opts.WikiURL}},
		{
			Link:     Link{Label: "Download", Slug: "download"},
			Page:     Download,
			Children: quickDownloads(opts.DownloadPage, opts.Release),
		},
		{
			Link: Link{Label: "Documentation", Slug: "documentation"},
			Page: Docs,
			Children: []Link{
				{Label: "User's Guide (" + opts.Release + ")", Href: "/doc/HTML/scons-user/book1.html"},
				{Label: "Man page (" + opts.Release + ")", Href: "/doc/HTML/scons-man.html"},
				{Label: "Other releases", Slug: "docversions"},
			},
		},
		{Link: Link{Label: "FAQ", Slug: "faq"}, Page: FAQ},
		{Link: Link{Label: "Development", Slug: "dev"}, Page: Dev},
		{
			Link: Link{Label: "Mailing Lists", Slug: "lists"},
			Page: Lists,
			Note: "Archives:",
			Children: []Link{
				{Label: "announce", Href: ListArchiveURL(opts.ListArchive, "announce")},
				{Label: "dev", Href: ListArchiveURL(opts.ListArchive, "dev")},
				{Label: "users", Href: ListArchiveURL(opts.ListArchive, "users")},
			},
		},
		{
			Link: Link{Label: "Tigris.org", Href: opts.TigrisURL + "/"},
			Children: []Link{
				{Label: "Report bugs", Href: opts.TigrisURL + "/bug-submission.html"},
				{Label: "Submit patches", Href: opts.TigrisURL + "/patch-submission.html"},
				{Label: "Feature requests", Href: opts.TigrisURL + "/feature-request.html"},
			},
		},
		{Link: Link{Label: "Links", Slug: "links"}, Page: Links},
		{Link: Link{Label: "Contact", Slug: "contact"}, Page: Contact},
		{Link: Link{Label: "References", Slug: "references"}, Page: References},
		{Link: Link{Label: "Donate", Slug: "donate"}, Page: Donate},
	}
}

func quickDownloads(base, release string) []Link {
	return []Link{
		{Label: "Tarball", Href: PackageURL(base, "scons-"+release+".tar.gz")},
		{Label: "Zip", Href: PackageURL(base, "scons-"+release+".zip")},
		{Label: "Windows", Href: PackageURL(base, "scons-"+release+".win32.exe")},
		{Label: "Redhat", Href: PackageURL(base, "scons-"+release+"-1.noarch.rpm")},
		{Label: "Debian", Href: PackageURL(base, "scons_"+release+"-0.1_all.deb")},
		{Label: "Source", Href: PackageURL(base, "scons-src-"+release+".tar.gz")},
	}
}

// PackageURL joins the download base and a package file name.
func PackageURL(base, file string) string {
	return base + "/" + file
}

// ListArchiveURL returns the archive link for a mailing list.
func ListArchiveURL(archive, list string) string {
	return archive + "?listName=" + url.QueryEscape(list)
}

// Mark resolves the menu for one render. Only the entry whose Page equals
// current is marked; a current ID with no entry marks nothing.
func Mark(items []Item, current ID, href func(slug string) string) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		e := Entry{
			Label:   it.Label,
			Href:    resolve(it.Link, href),
			Current: it.Page != None && it.Page == current,
			Note:    it.Note,
		}
		for _, c := range it.Children {
			e.Children = append(e.Children, Entry{Label: c.Label, Href: resolve(c, href)})
		}
		entries = append(entries, e)
	}
	return entries
}

func resolve(l Link, href func(string) string) string {
	if l.Href != "" {
		return l.Href
	}
	return href(l.Slug)
}
