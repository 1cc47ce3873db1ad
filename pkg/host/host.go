package host

// Document creates nodes in a host UI tree.
//
// The reconciler never constructs host nodes directly; it asks the
// container's Document for them. This keeps the core independent of any
// particular host tree implementation (an in-memory DOM, a remote client,
// a test double).
type Document interface {
	// CreateElement creates a detached element node for the given tag.
	CreateElement(tag string) Node

	// CreateText creates a detached text node with the given content.
	CreateText(text string) Node
}

// Event is a UI event delivered to listeners.
type Event interface {
	// Type returns the normalized event name ("click", "input", ...).
	Type() string

	// Target returns the node the event was dispatched on.
	Target() Node

	// Value returns the target's current value for input-style events,
	// or the empty string when the event carries no value.
	Value() string
}

// Listener handles a dispatched event.
type Listener func(Event)

// Node is a live node in the host UI tree.
//
// Implementations must be comparable (pointer-backed): the reconciler keys
// its listener side table and root registry by Node identity.
type Node interface {
	// Document returns the Document that created this node.
	Document() Document

	// Parent returns the current parent node, or nil when detached.
	Parent() Node

	// NextSibling returns the node immediately after this one under the
	// same parent, or nil when this is the last child or detached.
	NextSibling() Node

	// AppendChild attaches child as the last child of this node.
	AppendChild(child Node)

	// InsertBefore attaches child immediately before the ref child.
	// A nil ref behaves like AppendChild.
	InsertBefore(child, ref Node)

	// ReplaceChild swaps oldChild for newChild in place.
	ReplaceChild(newChild, oldChild Node)

	// RemoveChild detaches child from this node.
	RemoveChild(child Node)

	// SetAttribute sets a string attribute by name.
	SetAttribute(name, value string)

	// RemoveAttribute removes an attribute by name.
	RemoveAttribute(name string)

	// AddEventListener registers a listener for the normalized event name.
	AddEventListener(event string, l Listener)

	// RemoveEventListener removes a previously added listener. The listener
	// is matched by function identity.
	RemoveEventListener(event string, l Listener)

	// SetStyle sets a single inline style property.
	SetStyle(prop, value string)

	// RemoveStyle clears a single inline style property.
	RemoveStyle(prop string)

	// SetText replaces the text content of a text node.
	SetText(text string)
}
