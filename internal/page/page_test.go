package page_test

import (
	"bytes"
	"context"
	"starlight/internal/page"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const markup = `<!doctype html><html><head><title>t</title></head><body>
<nav><button data-role="nav-toggle" aria-expanded="false">Menu</button>
<ul data-role="nav-panel"><li><a href="#about">About</a></li></ul></nav>
<section id="about" data-role="reveal" class="card">About</section>
<form data-role="quick-form">
  <input name="name" value="">
  <input name="email" type="email">
  <input name="agree" type="checkbox" value="yes">
  <textarea name="notes">hello</textarea>
  <select name="kind"><option value="natal">Natal</option><option value="solar">Solar</option></select>
  <button type="submit">Book</button>
</form>
</body></html>`

func parse(t *testing.T) *page.Document {
	t.Helper()

	doc, err := page.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

func TestParse(t *testing.T) {
	doc := parse(t)

	assert.NotNil(t, doc.Body())
	assert.NotNil(t, doc.ByRole("nav-toggle"))
	assert.Len(t, doc.AllByRole("reveal"), 1)
	assert.Equal(t, "About", page.Text(doc.ByID("about")))
	assert.Nil(t, doc.ByRole("diagram"))

	key, ok := page.Attr(doc.ByRole("nav-toggle"), page.AttrNode)
	require.True(t, ok)
	assert.Same(t, doc.ByRole("nav-toggle"), doc.ByKey(key))
}

func TestDispatchBubbles(t *testing.T) {
	doc := parse(t)
	ctx := context.Background()
	link := page.FindFirst(doc.Root(), page.HasAttr("href"))

	var order []string

	doc.On(link, "click", func(_ context.Context, ev *page.Event) {
		order = append(order, "link")
		assert.Same(t, link, ev.CurrentTarget)
	})
	doc.On(doc.ByRole("nav-panel"), "click", func(_ context.Context, ev *page.Event) {
		order = append(order, "panel")
		assert.Same(t, link, ev.Target)
		ev.PreventDefault()
	})
	doc.On(doc.Root(), "click", func(context.Context, *page.Event) {
		order = append(order, "document")
	})

	ev := &page.Event{Type: "click"}
	_, err := doc.Dispatch(ctx, doc.Key(link), ev)
	require.NoError(t, err)

	assert.Equal(t, []string{"link", "panel", "document"}, order)
	assert.True(t, ev.DefaultPrevented())
}

func TestStopPropagation(t *testing.T) {
	doc := parse(t)
	toggle := doc.ByRole("nav-toggle")
	reached := false

	doc.On(toggle, "click", func(_ context.Context, ev *page.Event) { ev.StopPropagation() })
	doc.On(doc.Root(), "click", func(context.Context, *page.Event) { reached = true })

	_, err := doc.Dispatch(context.Background(), doc.Key(toggle), &page.Event{Type: "click"})
	require.NoError(t, err)
	assert.False(t, reached)
}

func TestOffRemovesListener(t *testing.T) {
	doc := parse(t)
	toggle := doc.ByRole("nav-toggle")
	calls := 0

	off := doc.On(toggle, "click", func(context.Context, *page.Event) { calls++ })
	assert.Equal(t, 1, doc.ListenerCount(toggle, "click"))

	off()
	off()
	assert.Equal(t, 0, doc.ListenerCount(toggle, "click"))

	_, err := doc.Dispatch(context.Background(), doc.Key(toggle), &page.Event{Type: "click"})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestDispatchUnknownTarget(t *testing.T) {
	doc := parse(t)

	_, err := doc.Dispatch(context.Background(), "missing", &page.Event{Type: "click"})
	assert.ErrorIs(t, err, page.ErrUnknownTarget)
}

func TestFormSyncAndReset(t *testing.T) {
	doc := parse(t)
	form := doc.ByRole("quick-form")

	var seen map[string]string

	doc.On(form, "submit", func(context.Context, *page.Event) { seen = page.FormValues(form) })

	_, err := doc.Dispatch(context.Background(), doc.Key(form), &page.Event{
		Type:   "submit",
		Values: map[string]string{"name": "Asha", "email": "a@x.com", "agree": "yes", "notes": "hi", "kind": "solar"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"name":  "Asha",
		"email": "a@x.com",
		"agree": "yes",
		"notes": "hi",
		"kind":  "solar",
	}, seen)

	doc.ResetForm(form)

	assert.Equal(t, map[string]string{
		"name":  "",
		"email": "",
		"notes": "hello",
		"kind":  "natal",
	}, page.FormValues(form))
}

func TestClassHelpers(t *testing.T) {
	n := page.Element("div", "class", "card")

	page.AddClass(n, "visible")
	assert.True(t, page.HasClass(n, "visible"))
	assert.Equal(t, []string{"card", "visible"}, page.Classes(n))

	assert.False(t, page.ToggleClass(n, "visible"))
	assert.True(t, page.ToggleClass(n, "open"))

	page.RemoveClass(n, "card")
	page.RemoveClass(n, "open")

	_, ok := page.Attr(n, "class")
	assert.False(t, ok)
}

func TestRenderMarksListeners(t *testing.T) {
	doc := parse(t)
	toggle := doc.ByRole("nav-toggle")

	doc.On(toggle, "click", func(context.Context, *page.Event) {})
	doc.On(toggle, "keydown", func(context.Context, *page.Event) {})
	off := doc.On(doc.Root(), "keydown", func(context.Context, *page.Event) {})

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `data-on="click keydown"`)
	assert.Contains(t, buf.String(), `<html data-node="n1" data-on="keydown">`)

	off()
	buf.Reset()
	require.NoError(t, doc.Render(&buf))
	assert.NotContains(t, buf.String(), `<html data-node="n1" data-on`)
}

func TestEffectsAreDrained(t *testing.T) {
	doc := parse(t)
	toggle := doc.ByRole("nav-toggle")
	about := doc.ByID("about")

	doc.On(toggle, "click", func(context.Context, *page.Event) {
		doc.Alert("Booking saved locally")
		doc.ScrollIntoView(about)
		doc.Focus(toggle)
	})

	fx, err := doc.Dispatch(context.Background(), doc.Key(toggle), &page.Event{Type: "click"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Booking saved locally"}, fx.Alerts)
	assert.Equal(t, doc.Key(about), fx.ScrollTo)
	assert.Equal(t, doc.Key(toggle), fx.Focus)

	var buf bytes.Buffer
	fx, err = doc.RenderBody(&buf)
	require.NoError(t, err)
	assert.Empty(t, fx.Alerts)
	assert.Empty(t, fx.ScrollTo)
	assert.Empty(t, fx.Focus)
	assert.NotContains(t, buf.String(), "<body")
}

func TestParseFragment(t *testing.T) {
	nodes, err := page.ParseFragment("<p>One</p><p>Two</p>")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, html.ElementNode, nodes[0].Type)
	assert.Equal(t, "Two", page.Text(nodes[1]))
}
