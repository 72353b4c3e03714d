package page

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// FindFirst returns the first element under root (inclusive) matching pred
// in document order.
func FindFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if root.Type == html.ElementNode && pred(root) {
		return root
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindFirst(c, pred); found != nil {
			return found
		}
	}

	return nil
}

func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node

	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
	})

	return out
}

// Closest walks from n up through its ancestors.
func Closest(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && pred(n) {
			return n
		}
	}

	return nil
}

func ClosestForm(n *html.Node) *html.Node {
	return Closest(n, func(x *html.Node) bool { return x.DataAtom == atom.Form })
}

// IsConnected reports whether n is still attached to a document.
func IsConnected(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n.Type == html.DocumentNode {
			return true
		}
	}

	return false
}

func hasAttrValue(name, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := Attr(n, name)

		return ok && v == value
	}
}

func HasAttr(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		_, ok := Attr(n, name)

		return ok
	}
}

func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

func SetAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr[i].Val = value

			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func RemoveAttr(n *html.Node, name string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == name
	})
}

func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")

	return strings.Fields(v)
}

func HasClass(n *html.Node, class string) bool {
	return slices.Contains(Classes(n), class)
}

func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}

	SetAttr(n, "class", strings.Join(append(Classes(n), class), " "))
}

func RemoveClass(n *html.Node, class string) {
	classes := slices.DeleteFunc(Classes(n), func(c string) bool { return c == class })
	if len(classes) == 0 {
		RemoveAttr(n, "class")

		return
	}

	SetAttr(n, "class", strings.Join(classes, " "))
}

// ToggleClass flips class on n and reports whether it is now present.
func ToggleClass(n *html.Node, class string) bool {
	if HasClass(n, class) {
		RemoveClass(n, class)

		return false
	}

	AddClass(n, class)

	return true
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder

	walk(n, func(x *html.Node) {
		if x.Type == html.TextNode {
			sb.WriteString(x.Data)
		}
	})

	return sb.String()
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, text string) {
	RemoveChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func RemoveChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// Detach removes n from its parent, if any.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Element builds a detached element. attrs are name/value pairs.
func Element(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}

	return n
}

// ParseFragment parses markup in the context of a div.
func ParseFragment(markup string) ([]*html.Node, error) {
	context := Element("div")

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return nodes, nil
}
