package page

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// absent marks a default where an unchecked control had no value.
const absent = "\x00"

// Control is a named form control.
type Control struct {
	Node *html.Node
	Name string
	// Type is the lower-case input type, or the tag name for textarea and
	// select.
	Type string
}

func isControl(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Input, atom.Textarea, atom.Select:
		_, named := Attr(n, "name")

		return named
	default:
		return false
	}
}

func Controls(form *html.Node) []Control {
	var out []Control

	for _, n := range FindAll(form, isControl) {
		name, _ := Attr(n, "name")
		typ := n.Data

		if n.DataAtom == atom.Input {
			typ = "text"
			if t, ok := Attr(n, "type"); ok && t != "" {
				typ = t
			}
		}

		out = append(out, Control{Node: n, Name: name, Type: typ})
	}

	return out
}

// Value returns the current value of a control. Unchecked checkboxes and
// radios have no value.
func Value(c Control) (string, bool) {
	switch c.Type {
	case "checkbox", "radio":
		if _, checked := Attr(c.Node, "checked"); !checked {
			return "", false
		}

		if v, ok := Attr(c.Node, "value"); ok {
			return v, true
		}

		return "on", true
	case "textarea":
		return Text(c.Node), true
	case "select":
		selected := FindFirst(c.Node, func(n *html.Node) bool {
			_, ok := Attr(n, "selected")

			return n.DataAtom == atom.Option && ok
		})
		if selected == nil {
			selected = FindFirst(c.Node, func(n *html.Node) bool { return n.DataAtom == atom.Option })
		}

		if selected == nil {
			return "", true
		}

		if v, ok := Attr(selected, "value"); ok {
			return v, true
		}

		return Text(selected), true
	default:
		v, _ := Attr(c.Node, "value")

		return v, true
	}
}

// SetValue writes v into a control the way the browser would hold it.
func SetValue(c Control, v string, present bool) {
	switch c.Type {
	case "checkbox", "radio":
		own, ok := Attr(c.Node, "value")
		if !ok {
			own = "on"
		}

		if present && own == v {
			SetAttr(c.Node, "checked", "")
		} else {
			RemoveAttr(c.Node, "checked")
		}
	case "textarea":
		SetText(c.Node, v)
	case "select":
		for _, opt := range FindAll(c.Node, func(n *html.Node) bool { return n.DataAtom == atom.Option }) {
			ov, ok := Attr(opt, "value")
			if !ok {
				ov = Text(opt)
			}

			if present && ov == v {
				SetAttr(opt, "selected", "")
			} else {
				RemoveAttr(opt, "selected")
			}
		}
	default:
		SetAttr(c.Node, "value", v)
	}
}

// FormValues collects the named, valued controls of form.
func FormValues(form *html.Node) map[string]string {
	values := map[string]string{}

	for _, c := range Controls(form) {
		if v, ok := Value(c); ok {
			values[c.Name] = v
		}
	}

	return values
}

// TrackForm remembers the current control values of form as the state
// ResetForm returns to. Controls already tracked keep their first value.
func (d *Document) TrackForm(form *html.Node) {
	for _, c := range Controls(form) {
		if _, seen := d.defaults[c.Node]; seen {
			continue
		}

		v, present := Value(c)
		if !present {
			v = absent
		}

		d.defaults[c.Node] = v
	}
}

func (d *Document) syncForm(form *html.Node, values map[string]string) {
	d.TrackForm(form)

	for _, c := range Controls(form) {
		v, present := values[c.Name]
		SetValue(c, v, present)
	}
}

// ResetForm restores every control of form to the value it had when the
// page was first served.
func (d *Document) ResetForm(form *html.Node) {
	for _, c := range Controls(form) {
		v, seen := d.defaults[c.Node]
		if !seen {
			continue
		}

		SetValue(c, v, v != absent)
	}
}
