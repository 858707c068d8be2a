package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func newTestFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := NewFrame(FrameOptions{
		SiteName:      "SCons",
		Menu:          Menu(testMenuOptions),
		Hosting:       Link{Label: "pair.com", Href: "http://www.pair.com/"},
		Copyright:     "2004",
		FoundationURL: "http://www.scons.org",
		Href:          cleanHref,
		AssetBase:     "/",
	})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	return f
}

func renderFrame(t *testing.T, f *Frame, title string, id ID) string {
	t.Helper()
	var buf bytes.Buffer
	if err := f.WriteTop(&buf, title, id); err != nil {
		t.Fatalf("WriteTop: %v", err)
	}
	buf.WriteString(`<div id="bodycontent">body</div>`)
	if err := f.WriteBottom(&buf); err != nil {
		t.Fatalf("WriteBottom: %v", err)
	}
	return buf.String()
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing html: %v", err)
	}
	return doc
}

func TestNewFrameRequiresHref(t *testing.T) {
	t.Parallel()

	if _, err := NewFrame(FrameOptions{}); err == nil {
		t.Fatal("expected an error without Href")
	}
}

func TestFrameMarksDownloadCurrent(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderFrame(t, newTestFrame(t), "Download", Download))

	current := doc.Find("#currentpage")
	if current.Length() != 1 {
		t.Fatalf("current entries = %d, want exactly 1", current.Length())
	}
	if got := strings.TrimSpace(current.Text()); got != "Download" {
		t.Errorf("current entry = %q, want Download", got)
	}
	if got := current.AttrOr("href", ""); got != "/download" {
		t.Errorf("current href = %q, want /download", got)
	}
}

func TestFrameMarksEveryListedPage(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t)
	for _, it := range Menu(testMenuOptions) {
		if it.Page == None {
			continue
		}
		doc := parseDoc(t, renderFrame(t, f, it.Label, it.Page))
		current := doc.Find("#currentpage")
		if current.Length() != 1 {
			t.Errorf("page %v: current entries = %d, want 1", it.Page, current.Length())
			continue
		}
		if got := strings.TrimSpace(current.Text()); got != it.Label {
			t.Errorf("page %v: current entry = %q, want %q", it.Page, got, it.Label)
		}
	}
}

func TestFrameWithoutMenuEntryMarksNothing(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t)
	for _, id := range []ID{None, Guidelines} {
		doc := parseDoc(t, renderFrame(t, f, "Developer's Guidelines", id))
		if n := doc.Find("#currentpage").Length(); n != 0 {
			t.Errorf("page %v: current entries = %d, want 0", id, n)
		}
	}
}

func TestFrameHeadAndFooter(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderFrame(t, newTestFrame(t), "FAQ", FAQ))

	if got := doc.Find("title").Text(); got != "SCons: FAQ" {
		t.Errorf("title = %q", got)
	}
	if got := doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""); got != "/css/scons.css" {
		t.Errorf("stylesheet = %q", got)
	}
	// The first option is the "Select" placeholder.
	if n := doc.Find(`#osrating select[name="rating"] option`).Length() - 1; n != 10 {
		t.Errorf("rating options = %d, want 10", n)
	}
	if !strings.Contains(doc.Find("#footer").Text(), "The SCons Foundation") {
		t.Errorf("footer = %q", doc.Find("#footer").Text())
	}
	if got := doc.Find(".hosting a").AttrOr("href", ""); got != "http://www.pair.com/" {
		t.Errorf("hosting href = %q", got)
	}
	if n := doc.Find("#bodycontent").Length(); n != 1 {
		t.Errorf("bodycontent = %d, want 1", n)
	}
	if n := doc.Find("script").Length(); n != 0 {
		t.Errorf("scripts = %d, live reload is off by default", n)
	}
}

func TestFrameEscapesTitle(t *testing.T) {
	t.Parallel()

	html := renderFrame(t, newTestFrame(t), "<b>x</b>", Home)
	if !strings.Contains(html, "SCons: &lt;b&gt;x&lt;/b&gt;") {
		t.Error("title was not escaped")
	}
}

func TestFrameIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newTestFrame(t)
	first := renderFrame(t, f, "Contact", Contact)
	second := renderFrame(t, f, "Contact", Contact)
	if first != second {
		t.Error("rendering the same page twice gave different output")
	}
}

func TestFrameLiveReloadScript(t *testing.T) {
	t.Parallel()

	f, err := NewFrame(FrameOptions{
		Menu:       Menu(testMenuOptions),
		Href:       cleanHref,
		LiveReload: "/livereload",
	})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	var buf bytes.Buffer
	if err := f.WriteBottom(&buf); err != nil {
		t.Fatalf("WriteBottom: %v", err)
	}
	script := parseDoc(t, buf.String()).Find("script").Text()
	for _, want := range []string{"new WebSocket", "livereload", "JSON.parse(event.data)", `msg.type === "reload"`} {
		if !strings.Contains(script, want) {
			t.Errorf("live reload script missing %q:\n%s", want, script)
		}
	}
}

// The hub greets every connection with a "hello" frame, so the script must
// only reload on "reload" frames or each page load would trigger another.
func TestFrameLiveReloadIgnoresOtherMessages(t *testing.T) {
	t.Parallel()

	f, err := NewFrame(FrameOptions{
		Menu:       Menu(testMenuOptions),
		Href:       cleanHref,
		LiveReload: "/livereload",
	})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	var buf bytes.Buffer
	if err := f.WriteBottom(&buf); err != nil {
		t.Fatalf("WriteBottom: %v", err)
	}
	script := parseDoc(t, buf.String()).Find("script").Text()

	reload := strings.Index(script, "location.reload()")
	check := strings.Index(script, `msg.type === "reload"`)
	if reload < 0 || check < 0 || check > reload {
		t.Errorf("location.reload() is not guarded by a message type check:\n%s", script)
	}
	if strings.Contains(script, "function() { location.reload(); }") {
		t.Error("onmessage reloads on every frame")
	}
}
