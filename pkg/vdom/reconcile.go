package vdom

import "github.com/fern-ui/fern/pkg/host"

// reconcile applies the difference between the old and new virtual nodes to
// the host tree under parentDOM. Four cases: both nil is a no-op, old-only
// unmounts, new-only mounts, and both present either updates in place (same
// kind) or replaces.
func (r *Root) reconcile(old, new *VNode, parentDOM host.Node) {
	switch {
	case old == nil && new == nil:
		return
	case old == nil:
		r.mount(new, parentDOM, nil)
	case new == nil:
		r.unmount(old)
	case !sameKind(old, new):
		r.replace(old, new, parentDOM)
	default:
		r.update(old, new, parentDOM)
	}
}

// update patches a node in place, carrying host identity and component
// scope forward from the old node.
func (r *Root) update(old, new *VNode, parentDOM host.Node) {
	switch new.Kind {
	case KindText:
		new.dom = old.dom
		if new.Text != old.Text {
			new.dom.SetText(new.Text)
			r.stats.TextWrites++
		}
	case KindElement:
		new.dom = old.dom
		r.patchProps(new.dom, old.Props, new.Props)
		r.reconcileChildren(old.Children, new.Children, new.dom)
	case KindComponent:
		new.scope = old.scope
		r.renderComponent(new, parentDOM)
		r.reconcile(old.rendered, new.rendered, parentDOM)
		new.dom = new.rendered.dom
	}
}

// mount materializes a virtual subtree and inserts it under parentDOM,
// before ref, or appended when ref is nil.
func (r *Root) mount(v *VNode, parentDOM host.Node, ref host.Node) {
	if v == nil {
		return
	}
	if v.Kind == KindComponent {
		r.renderComponent(v, parentDOM)
		r.mount(v.rendered, parentDOM, ref)
		v.dom = v.rendered.dom
		return
	}
	n := r.build(v, parentDOM.Document())
	if ref != nil {
		parentDOM.InsertBefore(n, ref)
	} else {
		parentDOM.AppendChild(n)
	}
}

// build creates the host subtree for an element or text node without
// attaching its top node anywhere. Children attach inside it as they are
// built, component children included.
func (r *Root) build(v *VNode, doc host.Document) host.Node {
	if v.Kind == KindText {
		v.dom = doc.CreateText(v.Text)
		r.stats.Creates++
		return v.dom
	}
	n := doc.CreateElement(v.Tag)
	v.dom = n
	r.stats.Creates++
	r.patchProps(n, nil, v.Props)
	for _, c := range v.Children {
		r.mount(c, n, nil)
	}
	return n
}

// unmount runs the cleanup walk over the subtree and detaches its host node.
func (r *Root) unmount(v *VNode) {
	if v == nil {
		return
	}
	r.cleanup(v)
	r.detach(v)
}

// cleanup walks the subtree disposing component scopes (running their
// effect cleanups) and unbinding listeners. Children first, so inner
// cleanups observe their ancestors still live. The host tree is not
// touched; the caller detaches afterward.
func (r *Root) cleanup(v *VNode) {
	if v == nil {
		return
	}
	switch v.Kind {
	case KindComponent:
		r.cleanup(v.rendered)
		if v.scope != nil {
			v.scope.dispose()
		}
	case KindElement:
		for _, c := range v.Children {
			r.cleanup(c)
		}
		if v.dom != nil {
			r.unbindAll(v.dom)
		}
	}
}

// detach removes the subtree's host node from its parent. One removal
// detaches every descendant with it.
func (r *Root) detach(v *VNode) {
	d := v.DOM()
	if d == nil {
		return
	}
	if p := d.Parent(); p != nil {
		p.RemoveChild(d)
		r.stats.Removes++
	}
}

// replace swaps an old subtree for a new one of a different kind at the
// same position. The old subtree's cleanup walk runs before any host
// mutation. Element and text replacements build the new subtree detached
// and use a single ReplaceChild; a new component mounts where the old
// node sat.
func (r *Root) replace(old, new *VNode, parentDOM host.Node) {
	r.cleanup(old)
	r.stats.Replaces++

	if new.Kind == KindComponent {
		var ref host.Node
		if old.dom != nil {
			ref = old.dom.NextSibling()
		}
		r.detach(old)
		r.mount(new, parentDOM, ref)
		return
	}

	n := r.build(new, parentDOM.Document())
	if old.dom != nil {
		parentDOM.ReplaceChild(n, old.dom)
	} else {
		parentDOM.AppendChild(n)
	}
}

// renderComponent invokes a component function with its scope installed as
// the currently rendering one, and stores the coerced output on the node.
// A nil return renders as an empty text node so the slot keeps a host
// position.
func (r *Root) renderComponent(v *VNode, parentDOM host.Node) {
	if v.scope == nil {
		v.scope = &scope{}
	}
	prev := v.scope.beginRender(r, v, parentDOM)
	defer v.scope.endRender(prev)

	r.stats.ComponentRenders++
	out := v.Comp(v.Props)
	if out == nil {
		out = Text("")
	}
	v.rendered = out
}

// listKey identifies a child within one list diff: explicit key when
// present, otherwise position among the unkeyed children. Mixing keyed
// and unkeyed children makes the unkeyed ones match positionally, which
// churns on insertion at the front; callers wanting stability use keys.
type listKey struct {
	s     string
	i     int
	keyed bool
}

func childKeys(children []*VNode) []listKey {
	keys := make([]listKey, len(children))
	unkeyed := 0
	for i, c := range children {
		if c.Key != "" {
			keys[i] = listKey{s: c.Key, keyed: true}
		} else {
			keys[i] = listKey{i: unkeyed}
			unkeyed++
		}
	}
	return keys
}

// reconcileChildren diffs two child lists under one host parent.
//
// Matching: old children are indexed by listKey; each new child that finds
// an old child of the same key and kind updates it in place, and one whose
// key matches but whose kind changed replaces the old child at its
// position. Everything else mounts appended at the end; unmatched old
// children unmount.
//
// Ordering: a back-to-front pass walks the new list from the second-to-last
// child down, moving a child's host node with InsertBefore only when its
// NextSibling is not the host node of its successor. The last child is
// never moved, so a reorder costs at most len-1 moves; a swap of two
// adjacent children costs one.
func (r *Root) reconcileChildren(oldCh, newCh []*VNode, parentDOM host.Node) {
	oldKeys := childKeys(oldCh)
	newKeys := childKeys(newCh)

	oldByKey := make(map[listKey]*VNode, len(oldCh))
	for i, c := range oldCh {
		oldByKey[oldKeys[i]] = c
	}

	matched := make(map[*VNode]bool, len(oldCh))
	for i, c := range newCh {
		old := oldByKey[newKeys[i]]
		switch {
		case old == nil || matched[old]:
			r.mount(c, parentDOM, nil)
		case sameKind(old, c):
			matched[old] = true
			r.update(old, c, parentDOM)
		default:
			// Same key, new kind: replace at the old position instead of
			// appending a fresh mount, so the host never holds both.
			matched[old] = true
			r.replace(old, c, parentDOM)
		}
	}

	for _, c := range oldCh {
		if !matched[c] {
			r.unmount(c)
		}
	}

	if len(newCh) < 2 {
		return
	}
	ref := newCh[len(newCh)-1].dom
	for i := len(newCh) - 2; i >= 0; i-- {
		d := newCh[i].dom
		if d == nil {
			continue
		}
		if ref != nil && d.NextSibling() != ref {
			parentDOM.InsertBefore(d, ref)
			r.stats.Moves++
		}
		ref = d
	}
}
