// Package modal shows a single dismissible overlay on a page.
package modal

import (
	"context"
	"starlight/internal/page"

	"golang.org/x/net/html"
)

const (
	RoleModal = "modal"
	RoleClose = "modal-close"

	keyEscape = "Escape"
)

// Content is what the panel displays: plain text lines, each in its own
// paragraph, or an already sanitized fragment.
type Content struct {
	Lines    []string
	Fragment []*html.Node
}

func Text(lines ...string) Content {
	return Content{Lines: lines}
}

func Fragment(nodes []*html.Node) Content {
	return Content{Fragment: nodes}
}

// Presenter owns the modal of one document.
type Presenter struct {
	doc    *page.Document
	active *instance
}

type instance struct {
	backdrop *html.Node
	offs     []func()
}

func New(doc *page.Document) *Presenter {
	return &Presenter{doc: doc}
}

// Show replaces any open modal with one displaying content and focuses its
// close button.
func (p *Presenter) Show(content Content) {
	p.Close()

	backdrop := page.Element("div",
		"class", "modal-backdrop",
		page.AttrRole, RoleModal,
		"role", "dialog",
		"aria-modal", "true",
	)
	panel := page.Element("div", "class", "modal-panel")
	closeButton := page.Element("button",
		"type", "button",
		"class", "modal-close",
		page.AttrRole, RoleClose,
		"aria-label", "Close",
	)
	page.SetText(closeButton, "×")

	body := page.Element("div", "class", "modal-content")

	for _, line := range content.Lines {
		para := page.Element("p")
		page.SetText(para, line)
		body.AppendChild(para)
	}

	for _, n := range content.Fragment {
		page.Detach(n)
		body.AppendChild(n)
	}

	panel.AppendChild(closeButton)
	panel.AppendChild(body)
	backdrop.AppendChild(panel)
	p.doc.Body().AppendChild(backdrop)

	inst := &instance{backdrop: backdrop}
	inst.offs = []func(){
		p.doc.On(closeButton, "click", func(_ context.Context, ev *page.Event) {
			ev.PreventDefault()
			p.dismiss(inst)
		}),
		p.doc.On(backdrop, "click", func(_ context.Context, ev *page.Event) {
			if ev.Target == backdrop {
				p.dismiss(inst)
			}
		}),
		p.doc.On(p.doc.Root(), "keydown", func(_ context.Context, ev *page.Event) {
			if ev.Key == keyEscape {
				p.dismiss(inst)
			}
		}),
	}

	p.active = inst
	p.doc.Focus(closeButton)
}

// Close dismisses the open modal, if any.
func (p *Presenter) Close() {
	if p.active != nil {
		p.dismiss(p.active)
	}
}

// Active returns the backdrop of the open modal, or nil.
func (p *Presenter) Active() *html.Node {
	if p.active == nil {
		return nil
	}

	return p.active.backdrop
}

func (p *Presenter) dismiss(inst *instance) {
	page.Detach(inst.backdrop)

	for _, off := range inst.offs {
		off()
	}

	if p.active == inst {
		p.active = nil
	}
}
