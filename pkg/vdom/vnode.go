package vdom

import (
	"reflect"

	"github.com/fern-ui/fern/pkg/host"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Component function invocation
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes, event handlers, and the style map.
type Props map[string]any

// Style is the value type of the "style" prop: inline style properties.
type Style map[string]string

// ComponentFunc renders a virtual subtree from props. Hooks may only be
// called while the function is executing inside a render pass.
type ComponentFunc func(Props) *VNode

// VNode is the virtual DOM node. Instances are built fresh on every render;
// the reconciler carries identity (host node, component scope, rendered
// child) forward from the previous tree.
type VNode struct {
	Kind     VKind
	Tag      string        // element tag name, KindElement only
	Props    Props         // attributes and event handlers
	Children []*VNode      // normalized children, KindElement only
	Key      string        // reconciliation key, "" when unkeyed
	Text     string        // KindText content
	Comp     ComponentFunc // KindComponent render function

	// Reconciler-owned state, carried across renders.
	dom      host.Node
	rendered *VNode // component output, KindComponent only
	scope    *scope // hook slots, KindComponent only
}

// DOM returns the live host node this virtual node materialized as, or nil
// before first mount. For component nodes it is the host node of the
// rendered output.
func (v *VNode) DOM() host.Node {
	if v == nil {
		return nil
	}
	return v.dom
}

// Rendered returns the subtree produced by the last invocation of a
// component node's function. Nil for non-component nodes.
func (v *VNode) Rendered() *VNode {
	if v == nil {
		return nil
	}
	return v.rendered
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler prop.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// sameKind reports whether old and new describe the same underlying node
// identity: same kind, and for elements the same tag, for components the
// same function.
func sameKind(old, new *VNode) bool {
	if old.Kind != new.Kind {
		return false
	}
	switch old.Kind {
	case KindElement:
		return old.Tag == new.Tag
	case KindComponent:
		return funcPtr(old.Comp) == funcPtr(new.Comp)
	default:
		return true
	}
}

// funcPtr returns the code pointer of a component function. Go functions
// are not comparable with ==, so identity is by pointer.
func funcPtr(fn ComponentFunc) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}
