package chrome_test

import (
	"context"
	"starlight/internal/controllers/chrome"
	"starlight/internal/page"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const markup = `<html><body>
<header>
  <button data-role="nav-toggle" aria-expanded="false">Menu</button>
  <nav data-role="nav-panel"><a href="#services">Services</a><a href="#missing">Gone</a><a href="#">Top</a></nav>
</header>
<section id="services" data-role="reveal">Services</section>
<section data-role="reveal">Diagram</section>
<footer>&copy; <span data-role="year">2000</span></footer>
</body></html>`

func parse(t *testing.T) *page.Document {
	t.Helper()

	doc, err := page.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

func click(t *testing.T, doc *page.Document, n *html.Node) *page.Event {
	t.Helper()

	ev := &page.Event{Type: "click"}
	_, err := doc.Dispatch(context.Background(), doc.Key(n), ev)
	require.NoError(t, err)

	return ev
}

func link(doc *page.Document, href string) *html.Node {
	return page.FindFirst(doc.Root(), func(n *html.Node) bool {
		v, _ := page.Attr(n, "href")

		return v == href
	})
}

func TestInstallYear(t *testing.T) {
	doc := parse(t)

	chrome.InstallYear(doc, 2026)

	assert.Equal(t, "2026", page.Text(doc.ByRole(chrome.RoleYear)))
}

func TestInstallNav(t *testing.T) {
	doc := parse(t)
	toggle := doc.ByRole(chrome.RoleNavToggle)
	panel := doc.ByRole(chrome.RoleNavPanel)

	chrome.InstallNav(doc)

	click(t, doc, toggle)
	assert.True(t, page.HasClass(panel, chrome.ClassOpen))

	expanded, _ := page.Attr(toggle, "aria-expanded")
	assert.Equal(t, "true", expanded)

	click(t, doc, toggle)
	assert.False(t, page.HasClass(panel, chrome.ClassOpen))

	expanded, _ = page.Attr(toggle, "aria-expanded")
	assert.Equal(t, "false", expanded)

	click(t, doc, toggle)
	click(t, doc, link(doc, "#services"))
	assert.False(t, page.HasClass(panel, chrome.ClassOpen))
}

func TestInstallNavWithoutPanel(t *testing.T) {
	doc, err := page.Parse(strings.NewReader(`<html><body><button data-role="nav-toggle">Menu</button></body></html>`))
	require.NoError(t, err)

	assert.NotPanics(t, func() { chrome.InstallNav(doc) })
	assert.Zero(t, doc.ListenerCount(doc.ByRole(chrome.RoleNavToggle), "click"))
}

func TestInstallSmoothScroll(t *testing.T) {
	doc := parse(t)

	chrome.InstallSmoothScroll(doc)

	assert.Zero(t, doc.ListenerCount(link(doc, "#"), "click"))

	ev := &page.Event{Type: "click"}
	fx, err := doc.Dispatch(context.Background(), doc.Key(link(doc, "#services")), ev)
	require.NoError(t, err)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, doc.Key(doc.ByID("services")), fx.ScrollTo)

	ev = &page.Event{Type: "click"}
	fx, err = doc.Dispatch(context.Background(), doc.Key(link(doc, "#missing")), ev)
	require.NoError(t, err)
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, fx.ScrollTo)
}

func TestInstallReveal(t *testing.T) {
	doc := parse(t)
	doc.SetCapability(page.CapabilityIntersection, true)

	chrome.InstallReveal(doc)

	first := doc.AllByRole(chrome.RoleReveal)[0]
	second := doc.AllByRole(chrome.RoleReveal)[1]

	assert.False(t, page.HasClass(first, chrome.ClassVisible))

	_, err := doc.Dispatch(context.Background(), doc.Key(first), &page.Event{Type: chrome.EventIntersect})
	require.NoError(t, err)

	assert.True(t, page.HasClass(first, chrome.ClassVisible))
	assert.False(t, page.HasClass(second, chrome.ClassVisible))
	assert.Zero(t, doc.ListenerCount(first, chrome.EventIntersect))
	assert.Equal(t, 1, doc.ListenerCount(second, chrome.EventIntersect))
}

func TestInstallRevealWithoutIntersection(t *testing.T) {
	doc := parse(t)

	chrome.InstallReveal(doc)

	for _, el := range doc.AllByRole(chrome.RoleReveal) {
		assert.True(t, page.HasClass(el, chrome.ClassVisible))
		assert.Zero(t, doc.ListenerCount(el, chrome.EventIntersect))
	}
}
