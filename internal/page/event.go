package page

import (
	"context"
	"slices"

	"golang.org/x/net/html"
)

// Event is one forwarded browser event.
type Event struct {
	Type string
	// Key is the keyboard key for keydown events.
	Key string
	// Values carries the current form control values when the target is a
	// form or sits inside one.
	Values map[string]string

	Target        *html.Node
	CurrentTarget *html.Node

	defaultPrevented bool
	stopped          bool
}

func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

func (e *Event) StopPropagation() { e.stopped = true }

type Handler func(ctx context.Context, ev *Event)

type listener struct {
	typ     string
	handler Handler
	removed bool
}

// On registers handler for events of typ reaching n and returns the func
// that removes it. Calling the returned func more than once is harmless.
func (d *Document) On(n *html.Node, typ string, handler Handler) (off func()) {
	l := &listener{typ: typ, handler: handler}
	d.listeners[n] = append(d.listeners[n], l)

	return func() {
		if l.removed {
			return
		}

		l.removed = true
		d.listeners[n] = slices.DeleteFunc(d.listeners[n], func(x *listener) bool { return x == l })

		if len(d.listeners[n]) == 0 {
			delete(d.listeners, n)
		}
	}
}

// ListenerCount reports how many live listeners of typ are attached to n.
func (d *Document) ListenerCount(n *html.Node, typ string) int {
	count := 0

	for _, l := range d.listeners[n] {
		if l.typ == typ {
			count++
		}
	}

	return count
}

// Dispatch delivers ev to the element with the given node key and bubbles it
// up to the document root. It reports whether a handler prevented the
// browser's default action.
func (d *Document) Dispatch(ctx context.Context, key string, ev *Event) (Effects, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	target := d.ByKey(key)
	if target == nil {
		return Effects{}, ErrUnknownTarget
	}

	d.dispatch(ctx, target, ev)

	return d.takeEffects(), nil
}

func (d *Document) dispatch(ctx context.Context, target *html.Node, ev *Event) {
	ev.Target = target

	if len(ev.Values) > 0 {
		if form := ClosestForm(target); form != nil {
			d.syncForm(form, ev.Values)
		}
	}

	for n := target; n != nil && !ev.stopped; n = n.Parent {
		// Handlers may register or remove listeners on n; iterate a snapshot.
		current := slices.Clone(d.listeners[n])
		for _, l := range current {
			if l.removed || l.typ != ev.Type {
				continue
			}

			ev.CurrentTarget = n
			l.handler(ctx, ev)
		}
	}

	ev.CurrentTarget = nil
}
