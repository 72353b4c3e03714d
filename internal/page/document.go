// Package page holds a visitor's parsed page and the event listeners that
// feature controllers attach to it. Browser events are forwarded to the
// server and dispatched here; the page is then rendered back.
//
// A Document is not safe for concurrent use. Dispatch and Render take the
// document lock, so handlers and installers run one at a time and may call
// any other method freely.
package page

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	AttrNode = "data-node"
	AttrRole = "data-role"
	AttrOn   = "data-on"
)

// Capability names a browser feature the page may rely on.
type Capability string

const CapabilityIntersection Capability = "intersection"

var (
	ErrNoBody        = errors.New("page: document has no body")
	ErrUnknownTarget = errors.New("page: unknown event target")
)

type Document struct {
	mu sync.Mutex

	root *html.Node
	body *html.Node

	listeners    map[*html.Node][]*listener
	defaults     map[*html.Node]string
	capabilities map[Capability]bool
	lastKey      int

	focused    *html.Node
	focusDirty bool
	scrollTo   *html.Node
	alerts     []string
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	doc := &Document{
		root:         root,
		listeners:    map[*html.Node][]*listener{},
		defaults:     map[*html.Node]string{},
		capabilities: map[Capability]bool{},
	}

	doc.body = FindFirst(root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	if doc.body == nil {
		return nil, ErrNoBody
	}

	doc.assignKeys()

	return doc, nil
}

// Root is the document node; listeners on it see every bubbling event.
func (d *Document) Root() *html.Node { return d.root }

func (d *Document) Body() *html.Node { return d.body }

func (d *Document) SetCapability(c Capability, enabled bool) {
	d.capabilities[c] = enabled
}

func (d *Document) Supports(c Capability) bool {
	return d.capabilities[c]
}

// ByRole returns the first element carrying data-role=role, or nil.
func (d *Document) ByRole(role string) *html.Node {
	return FindFirst(d.root, hasAttrValue(AttrRole, role))
}

func (d *Document) AllByRole(role string) []*html.Node {
	return FindAll(d.root, hasAttrValue(AttrRole, role))
}

func (d *Document) ByID(id string) *html.Node {
	return FindFirst(d.root, hasAttrValue("id", id))
}

// ByKey resolves the node key the browser sends back with an event.
func (d *Document) ByKey(key string) *html.Node {
	if key == "" {
		return nil
	}

	return FindFirst(d.root, hasAttrValue(AttrNode, key))
}

// Key returns the node key of n, assigning one if needed.
func (d *Document) Key(n *html.Node) string {
	if key, ok := Attr(n, AttrNode); ok {
		return key
	}

	d.lastKey++
	key := "n" + strconv.Itoa(d.lastKey)
	SetAttr(n, AttrNode, key)

	return key
}

func (d *Document) assignKeys() {
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode {
			d.Key(n)
		}
	})
}

// Focus moves focus to n.
func (d *Document) Focus(n *html.Node) {
	d.focused = n
	d.focusDirty = true
}

func (d *Document) Focused() *html.Node { return d.focused }

// ScrollIntoView asks the browser to smoothly scroll n into view.
func (d *Document) ScrollIntoView(n *html.Node) {
	d.scrollTo = n
}

// Alert queues a message the browser shows to the visitor.
func (d *Document) Alert(msg string) {
	d.alerts = append(d.alerts, msg)
}

// Effects are browser-side actions produced by handlers since the last
// render.
type Effects struct {
	Alerts   []string `json:"alerts,omitempty"`
	ScrollTo string   `json:"scrollTo,omitempty"`
	Focus    string   `json:"focus,omitempty"`
}

func (d *Document) takeEffects() Effects {
	var fx Effects

	fx.Alerts, d.alerts = d.alerts, nil

	if d.scrollTo != nil && IsConnected(d.scrollTo) {
		fx.ScrollTo = d.Key(d.scrollTo)
	}

	d.scrollTo = nil

	if d.focusDirty && d.focused != nil && IsConnected(d.focused) {
		fx.Focus = d.Key(d.focused)
	}

	d.focusDirty = false

	return fx
}
