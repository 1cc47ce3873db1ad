package vdom

import (
	"fmt"
	"strings"

	"github.com/fern-ui/fern/pkg/host"
)

// reservedProps never reach the host node as attributes.
func reservedProp(k string) bool {
	return k == "key" || k == "children"
}

// isEventKey reports whether a prop key names an event handler ("onClick",
// "onchange", ...). The check is case-insensitive on the "on" prefix.
func isEventKey(k string) bool {
	return len(k) > 2 && strings.EqualFold(k[:2], "on")
}

// eventName maps a handler prop key to the host event it binds. The DOM
// "change" event is folded into "input" so text inputs re-render per
// keystroke rather than on blur.
func eventName(k string) string {
	name := strings.ToLower(k[2:])
	if name == "change" {
		return "input"
	}
	return name
}

// attrName maps prop keys to attribute names. Only className needs
// translating; everything else passes through lowercased.
func attrName(k string) string {
	if k == "className" {
		return "class"
	}
	return strings.ToLower(k)
}

// attrValue stringifies a prop value for SetAttribute. The bool true maps
// to the empty string (presence-only attributes like disabled); false and
// nil mean "absent" and are handled by the caller.
func attrValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// absent reports a prop value that should remove the attribute rather
// than set it.
func absent(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}

// styleOf coerces a style prop value to a Style map.
func styleOf(v any) Style {
	switch t := v.(type) {
	case Style:
		return t
	case map[string]string:
		return t
	case nil:
		return nil
	default:
		return nil
	}
}

// toListener adapts the handler shapes the builder accepts to a
// host.Listener. Unrecognized values yield nil and the binding is skipped.
func toListener(v any) host.Listener {
	switch fn := v.(type) {
	case host.Listener:
		return fn
	case func(host.Event):
		return host.Listener(fn)
	case func():
		return func(host.Event) { fn() }
	default:
		return nil
	}
}

// patchProps diffs two prop maps onto a host node: a removal pass for keys
// present only in the old map, then an apply pass that sets changed values.
// Event handlers go through the root's listener table so stale closures are
// unbound before their replacements attach. Unchanged values, compared by
// identity, touch nothing.
func (r *Root) patchProps(n host.Node, oldProps, newProps Props) {
	for k, oldV := range oldProps {
		if reservedProp(k) {
			continue
		}
		if _, still := newProps[k]; still {
			continue
		}
		switch {
		case isEventKey(k):
			r.unbind(n, eventName(k))
		case k == "style":
			for prop := range styleOf(oldV) {
				n.RemoveStyle(prop)
				r.stats.StyleWrites++
			}
		default:
			n.RemoveAttribute(attrName(k))
			r.stats.AttrWrites++
		}
	}

	for k, newV := range newProps {
		if reservedProp(k) {
			continue
		}
		oldV, hadOld := oldProps[k]
		switch {
		case isEventKey(k):
			if hadOld && identical(oldV, newV) {
				continue
			}
			event := eventName(k)
			r.unbind(n, event)
			if l := toListener(newV); l != nil {
				n.AddEventListener(event, l)
				r.rememberListener(n, event, l)
				r.stats.ListenerBinds++
			}
		case k == "style":
			r.patchStyle(n, styleOf(oldV), styleOf(newV))
		default:
			if absent(newV) {
				if hadOld && !absent(oldV) {
					n.RemoveAttribute(attrName(k))
					r.stats.AttrWrites++
				}
				continue
			}
			val := attrValue(newV)
			if hadOld && !absent(oldV) && attrValue(oldV) == val {
				continue
			}
			n.SetAttribute(attrName(k), val)
			r.stats.AttrWrites++
		}
	}
}

// patchStyle diffs style maps property by property.
func (r *Root) patchStyle(n host.Node, oldS, newS Style) {
	for prop := range oldS {
		if _, still := newS[prop]; !still {
			n.RemoveStyle(prop)
			r.stats.StyleWrites++
		}
	}
	for prop, val := range newS {
		if oldS[prop] == val {
			if _, had := oldS[prop]; had {
				continue
			}
		}
		n.SetStyle(prop, val)
		r.stats.StyleWrites++
	}
}

// rememberListener records the bound listener so a later patch or unmount
// can detach exactly the closure that was attached.
func (r *Root) rememberListener(n host.Node, event string, l host.Listener) {
	m := r.listeners[n]
	if m == nil {
		m = make(map[string]host.Listener)
		r.listeners[n] = m
	}
	m[event] = l
}

// unbind removes the listener table entry for (node, event), if any.
func (r *Root) unbind(n host.Node, event string) {
	m := r.listeners[n]
	l, ok := m[event]
	if !ok {
		return
	}
	n.RemoveEventListener(event, l)
	delete(m, event)
	if len(m) == 0 {
		delete(r.listeners, n)
	}
	r.stats.ListenerUnbinds++
}

// unbindAll drops every listener bound to a node. Used at unmount, before
// the node detaches from the host tree.
func (r *Root) unbindAll(n host.Node) {
	for event, l := range r.listeners[n] {
		n.RemoveEventListener(event, l)
		r.stats.ListenerUnbinds++
	}
	delete(r.listeners, n)
}
