package memdom

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/fern-ui/fern/pkg/host"
)

// NodeKind discriminates element and text nodes.
type NodeKind uint8

const (
	KindElement NodeKind = iota
	KindText
)

// Document is an in-memory host document. It implements host.Document and
// hands out *Node values that implement host.Node.
//
// A Document is single-threaded by contract, matching the reconciler's
// execution model: all mutations for one document happen on one goroutine.
type Document struct {
	nextID   uint64
	nodes    map[string]*Node
	observer func(Mutation)
}

// NewDocument creates an empty in-memory document.
func NewDocument() *Document {
	return &Document{nodes: make(map[string]*Node)}
}

// Observe registers a callback invoked synchronously for every mutation
// applied to nodes of this document. Passing nil stops observation.
func (d *Document) Observe(fn func(Mutation)) {
	d.observer = fn
}

// ByID returns the node with the given ID, or nil if it does not exist
// or has been removed from the document.
func (d *Document) ByID(id string) *Node {
	return d.nodes[id]
}

// CreateElement implements host.Document.
func (d *Document) CreateElement(tag string) host.Node {
	n := d.newNode(KindElement)
	n.tag = tag
	d.record(Mutation{Kind: OpCreateElement, NodeID: n.id, Tag: tag})
	return n
}

// CreateText implements host.Document.
func (d *Document) CreateText(text string) host.Node {
	n := d.newNode(KindText)
	n.text = text
	d.record(Mutation{Kind: OpCreateText, NodeID: n.id, Text: text})
	return n
}

func (d *Document) newNode(kind NodeKind) *Node {
	d.nextID++
	n := &Node{
		doc:  d,
		id:   fmt.Sprintf("n%d", d.nextID),
		kind: kind,
	}
	d.nodes[n.id] = n
	return n
}

func (d *Document) record(m Mutation) {
	if d.observer != nil {
		d.observer(m)
	}
}

// forget drops a node subtree from the ID index. Called on removal so the
// index does not leak entries for destroyed nodes.
func (d *Document) forget(n *Node) {
	delete(d.nodes, n.id)
	for _, c := range n.children {
		d.forget(c)
	}
}

// listenerEntry pairs a listener with its reflected pointer for identity
// matched removal.
type listenerEntry struct {
	fn  host.Listener
	ptr uintptr
}

// Node is an in-memory host node.
type Node struct {
	doc      *Document
	id       string
	kind     NodeKind
	tag      string
	text     string
	attrs    map[string]string
	styles   map[string]string
	parent   *Node
	children []*Node

	listeners map[string][]listenerEntry
}

// ID returns the document-unique node identifier.
func (n *Node) ID() string { return n.id }

// Kind returns whether this is an element or text node.
func (n *Node) Kind() NodeKind { return n.kind }

// Tag returns the element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *Node) Text() string { return n.text }

// Attr returns the value of an attribute and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// AttrNames returns the set attribute names in sorted order.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleProp returns the value of an inline style property and whether it
// is set.
func (n *Node) StyleProp(prop string) (string, bool) {
	v, ok := n.styles[prop]
	return v, ok
}

// StyleNames returns the set style property names in sorted order.
func (n *Node) StyleNames() []string {
	names := make([]string, 0, len(n.styles))
	for name := range n.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ListenerCount returns the number of listeners registered for an event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// Document implements host.Node.
func (n *Node) Document() host.Document { return n.doc }

// Parent implements host.Node.
func (n *Node) Parent() host.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// NextSibling implements host.Node.
func (n *Node) NextSibling() host.Node {
	if n.parent == nil {
		return nil
	}
	sibs := n.parent.children
	for i, c := range sibs {
		if c == n && i+1 < len(sibs) {
			return sibs[i+1]
		}
	}
	return nil
}

// AppendChild implements host.Node.
func (n *Node) AppendChild(child host.Node) {
	c := child.(*Node)
	c.detach()
	c.parent = n
	n.children = append(n.children, c)
	n.doc.record(Mutation{Kind: OpInsert, NodeID: c.id, ParentID: n.id})
}

// InsertBefore implements host.Node.
func (n *Node) InsertBefore(child, ref host.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	c := child.(*Node)
	r := ref.(*Node)
	c.detach()
	idx := n.indexOf(r)
	if idx < 0 {
		panic(fmt.Sprintf("memdom: InsertBefore reference %s is not a child of %s", r.id, n.id))
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
	n.doc.record(Mutation{Kind: OpInsert, NodeID: c.id, ParentID: n.id, RefID: r.id})
}

// ReplaceChild implements host.Node.
func (n *Node) ReplaceChild(newChild, oldChild host.Node) {
	nc := newChild.(*Node)
	oc := oldChild.(*Node)
	idx := n.indexOf(oc)
	if idx < 0 {
		panic(fmt.Sprintf("memdom: ReplaceChild old node %s is not a child of %s", oc.id, n.id))
	}
	nc.detach()
	oc.parent = nil
	nc.parent = n
	n.children[idx] = nc
	n.doc.forget(oc)
	n.doc.record(Mutation{Kind: OpReplace, NodeID: nc.id, ParentID: n.id, RefID: oc.id})
}

// RemoveChild implements host.Node.
func (n *Node) RemoveChild(child host.Node) {
	c := child.(*Node)
	idx := n.indexOf(c)
	if idx < 0 {
		panic(fmt.Sprintf("memdom: RemoveChild node %s is not a child of %s", c.id, n.id))
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	c.parent = nil
	n.doc.forget(c)
	n.doc.record(Mutation{Kind: OpRemove, NodeID: c.id, ParentID: n.id})
}

// SetAttribute implements host.Node.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	n.doc.record(Mutation{Kind: OpSetAttr, NodeID: n.id, Name: name, Value: value})
}

// RemoveAttribute implements host.Node.
func (n *Node) RemoveAttribute(name string) {
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	n.doc.record(Mutation{Kind: OpRemoveAttr, NodeID: n.id, Name: name})
}

// AddEventListener implements host.Node.
func (n *Node) AddEventListener(event string, l host.Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	n.listeners[event] = append(n.listeners[event], listenerEntry{
		fn:  l,
		ptr: reflect.ValueOf(l).Pointer(),
	})
	n.doc.record(Mutation{Kind: OpListen, NodeID: n.id, Name: event})
}

// RemoveEventListener implements host.Node.
func (n *Node) RemoveEventListener(event string, l host.Listener) {
	entries := n.listeners[event]
	ptr := reflect.ValueOf(l).Pointer()
	for i, e := range entries {
		if e.ptr == ptr {
			n.listeners[event] = append(entries[:i], entries[i+1:]...)
			n.doc.record(Mutation{Kind: OpUnlisten, NodeID: n.id, Name: event})
			return
		}
	}
}

// SetStyle implements host.Node.
func (n *Node) SetStyle(prop, value string) {
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[prop] = value
	n.doc.record(Mutation{Kind: OpSetStyle, NodeID: n.id, Name: prop, Value: value})
}

// RemoveStyle implements host.Node.
func (n *Node) RemoveStyle(prop string) {
	if _, ok := n.styles[prop]; !ok {
		return
	}
	delete(n.styles, prop)
	n.doc.record(Mutation{Kind: OpRemoveStyle, NodeID: n.id, Name: prop})
}

// SetText implements host.Node.
func (n *Node) SetText(text string) {
	n.text = text
	n.doc.record(Mutation{Kind: OpSetText, NodeID: n.id, Text: text})
}

// Dispatch delivers an event of the given type to this node's listeners,
// in registration order. The value is exposed through host.Event.Value.
func (n *Node) Dispatch(event, value string) {
	e := &domEvent{typ: event, target: n, value: value}
	// Copy: a listener may mutate the listener list (re-render).
	entries := make([]listenerEntry, len(n.listeners[event]))
	copy(entries, n.listeners[event])
	for _, le := range entries {
		le.fn(e)
	}
}

// Click is shorthand for Dispatch("click", "").
func (n *Node) Click() {
	n.Dispatch("click", "")
}

// Input is shorthand for Dispatch("input", value).
func (n *Node) Input(value string) {
	n.Dispatch("input", value)
}

func (n *Node) indexOf(c *Node) int {
	for i, ch := range n.children {
		if ch == c {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	idx := p.indexOf(n)
	if idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	n.parent = nil
}

// domEvent implements host.Event.
type domEvent struct {
	typ    string
	target *Node
	value  string
}

func (e *domEvent) Type() string      { return e.typ }
func (e *domEvent) Target() host.Node { return e.target }
func (e *domEvent) Value() string     { return e.value }
