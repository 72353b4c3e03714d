package page

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the whole page.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.prepare()

	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}

// RenderBody writes the body's children and drains pending effects.
func (d *Document) RenderBody(w io.Writer) (Effects, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.prepare()

	for c := d.body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return Effects{}, fmt.Errorf("failed to render page body: %w", err)
		}
	}

	return d.takeEffects(), nil
}

// prepare keys every element and marks the event types the browser must
// forward for it. Document level listeners are marked on <html>.
func (d *Document) prepare() {
	d.assignKeys()

	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode {
			RemoveAttr(n, AttrOn)
		}
	})

	for n, ls := range d.listeners {
		holder := n
		if n.Type == html.DocumentNode {
			holder = FindFirst(d.root, func(x *html.Node) bool { return x.DataAtom == atom.Html })
		}

		if holder == nil || !IsConnected(holder) {
			continue
		}

		types := strings.Fields(attrOr(holder, AttrOn))
		for _, l := range ls {
			if !slices.Contains(types, l.typ) {
				types = append(types, l.typ)
			}
		}

		slices.Sort(types)
		SetAttr(holder, AttrOn, strings.Join(types, " "))
	}
}

func attrOr(n *html.Node, name string) string {
	v, _ := Attr(n, name)

	return v
}
