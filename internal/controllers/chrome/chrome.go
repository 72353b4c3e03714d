// Package chrome wires the cosmetic page behaviour: footer year, the mobile
// navigation toggle, smooth in-page scrolling and reveal-on-scroll. None of
// it touches booking data.
package chrome

import (
	"context"
	"starlight/internal/page"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	RoleYear      = "year"
	RoleNavToggle = "nav-toggle"
	RoleNavPanel  = "nav-panel"
	RoleReveal    = "reveal"

	ClassOpen    = "open"
	ClassVisible = "visible"

	EventIntersect = "intersect"
)

// InstallYear writes year into the footer placeholder.
func InstallYear(doc *page.Document, year int) {
	if el := doc.ByRole(RoleYear); el != nil {
		page.SetText(el, strconv.Itoa(year))
	}
}

// InstallNav toggles the navigation panel from its button. Following a link
// inside an open panel closes it again.
func InstallNav(doc *page.Document) {
	toggle := doc.ByRole(RoleNavToggle)
	panel := doc.ByRole(RoleNavPanel)

	if toggle == nil || panel == nil {
		return
	}

	setExpanded := func(open bool) {
		page.SetAttr(toggle, "aria-expanded", strconv.FormatBool(open))
	}

	setExpanded(page.HasClass(panel, ClassOpen))

	doc.On(toggle, "click", func(_ context.Context, _ *page.Event) {
		setExpanded(page.ToggleClass(panel, ClassOpen))
	})

	doc.On(panel, "click", func(_ context.Context, ev *page.Event) {
		link := page.Closest(ev.Target, func(n *html.Node) bool { return n.DataAtom == atom.A })
		if link == nil || !page.HasClass(panel, ClassOpen) {
			return
		}

		page.RemoveClass(panel, ClassOpen)
		setExpanded(false)
	})
}

func isFragmentLink(n *html.Node) bool {
	if n.DataAtom != atom.A {
		return false
	}

	href, _ := page.Attr(n, "href")

	return strings.HasPrefix(href, "#") && len(href) > 1
}

// InstallSmoothScroll turns in-page anchor clicks into smooth scrolls. A
// link whose target does not exist keeps its default behaviour.
func InstallSmoothScroll(doc *page.Document) {
	for _, link := range page.FindAll(doc.Root(), isFragmentLink) {
		doc.On(link, "click", func(_ context.Context, ev *page.Event) {
			href, _ := page.Attr(link, "href")

			target := doc.ByID(strings.TrimPrefix(href, "#"))
			if target == nil {
				return
			}

			ev.PreventDefault()
			doc.ScrollIntoView(target)
		})
	}
}

// InstallReveal shows each reveal candidate the first time it intersects the
// viewport. Without intersection support everything is shown at once.
func InstallReveal(doc *page.Document) {
	candidates := doc.AllByRole(RoleReveal)

	if !doc.Supports(page.CapabilityIntersection) {
		for _, el := range candidates {
			page.AddClass(el, ClassVisible)
		}

		return
	}

	for _, el := range candidates {
		var off func()

		off = doc.On(el, EventIntersect, func(_ context.Context, _ *page.Event) {
			page.AddClass(el, ClassVisible)
			off()
		})
	}
}
