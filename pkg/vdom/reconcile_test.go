package vdom

import (
	"testing"

	"github.com/fern-ui/fern/pkg/host"
	"github.com/fern-ui/fern/pkg/host/memdom"
)

func newTestRoot(t *testing.T) (*memdom.Document, *memdom.Node, *Root) {
	t.Helper()
	doc := memdom.NewDocument()
	body := doc.CreateElement("body").(*memdom.Node)
	return doc, body, NewRoot(body)
}

func TestMountElementTree(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Div(Class("box"),
		Span("hello"),
		Button("go"),
	))

	kids := body.Children()
	if len(kids) != 1 {
		t.Fatalf("body children = %d, want 1", len(kids))
	}
	div := kids[0]
	if div.Tag() != "div" {
		t.Errorf("Tag = %q, want div", div.Tag())
	}
	if v, _ := div.Attr("class"); v != "box" {
		t.Errorf("class = %q, want box", v)
	}
	if len(div.Children()) != 2 {
		t.Fatalf("div children = %d, want 2", len(div.Children()))
	}
	span := div.Children()[0]
	if span.Tag() != "span" || span.Children()[0].Text() != "hello" {
		t.Errorf("first child = %s %q", span.Tag(), span.Children()[0].Text())
	}
}

func TestRerenderEquivalentTreeIsNoop(t *testing.T) {
	_, _, root := newTestRoot(t)

	// The handler must be a shared value: a fresh closure per render is a
	// different func and would rebind.
	onClick := func() {}
	tree := func() *VNode {
		return Div(Class("box"),
			Button(OnClick(onClick), "go"),
			Span(StyleOf(Style{"color": "red"}), "hi"),
		)
	}

	root.Render(tree())
	before := root.Stats()
	root.Render(tree())
	d := root.Stats().Delta(before)

	if d.Mutations() != 0 {
		t.Errorf("mutations = %d, want 0 (%+v)", d.Mutations(), d)
	}
}

func TestTextUpdateInPlace(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Div(Text("old")))
	textID := body.Children()[0].Children()[0].ID()

	before := root.Stats()
	root.Render(Div(Text("new")))
	d := root.Stats().Delta(before)

	if d.Creates != 0 || d.Removes != 0 {
		t.Errorf("creates/removes = %d/%d, want 0/0", d.Creates, d.Removes)
	}
	if d.TextWrites != 1 {
		t.Errorf("text writes = %d, want 1", d.TextWrites)
	}
	got := body.Children()[0].Children()[0]
	if got.ID() != textID {
		t.Error("text node identity not preserved")
	}
	if got.Text() != "new" {
		t.Errorf("text = %q, want new", got.Text())
	}
}

func TestPropPatching(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Div(Class("a"), ID("x"), StyleOf(Style{"color": "red", "margin": "0"})))
	div := body.Children()[0]

	root.Render(Div(Class("b"), StyleOf(Style{"color": "blue"})))

	if v, _ := div.Attr("class"); v != "b" {
		t.Errorf("class = %q, want b", v)
	}
	if _, ok := div.Attr("id"); ok {
		t.Error("id should have been removed")
	}
	if v, _ := div.StyleProp("color"); v != "blue" {
		t.Errorf("color = %q, want blue", v)
	}
	if _, ok := div.StyleProp("margin"); ok {
		t.Error("margin should have been removed")
	}
}

func TestReservedPropsNeverReachHost(t *testing.T) {
	_, body, root := newTestRoot(t)

	// Raw Props entries, as a caller bypassing the builders might set them.
	n := Div()
	n.Props["key"] = "k1"
	n.Props["children"] = []*VNode{Span("x")}
	root.Render(n)

	div := body.Children()[0]
	if _, ok := div.Attr("key"); ok {
		t.Error("key prop became a host attribute")
	}
	if _, ok := div.Attr("children"); ok {
		t.Error("children prop became a host attribute")
	}
}

func TestBooleanAttr(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Input(Disabled()))
	in := body.Children()[0]
	if v, ok := in.Attr("disabled"); !ok || v != "" {
		t.Errorf("disabled = %q,%v, want present empty", v, ok)
	}

	root.Render(Input(AttrIf(false, Disabled())))
	if _, ok := in.Attr("disabled"); ok {
		t.Error("disabled should have been removed")
	}
}

func TestReplaceOnTagMismatch(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Div(Span("x"), P("mid"), Span("y")))
	div := body.Children()[0]
	oldMid := div.Children()[1].ID()

	before := root.Stats()
	root.Render(Div(Span("x"), Section("mid"), Span("y")))
	d := root.Stats().Delta(before)

	if d.Replaces != 1 {
		t.Errorf("replaces = %d, want 1", d.Replaces)
	}
	mid := div.Children()[1]
	if mid.Tag() != "section" {
		t.Errorf("mid tag = %q, want section", mid.Tag())
	}
	if mid.ID() == oldMid {
		t.Error("replacement should be a fresh host node")
	}
	// Position held: flanking spans untouched.
	if div.Children()[0].Tag() != "span" || div.Children()[2].Tag() != "span" {
		t.Error("siblings disturbed by replace")
	}
}

func TestUnmountDetachesTree(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Div(Span("x")))
	root.Render(nil)

	if len(body.Children()) != 0 {
		t.Fatalf("body children = %d, want 0", len(body.Children()))
	}
	if root.Tree() != nil {
		t.Error("Tree() should be nil after unmount")
	}
}

func keyedList(keys ...string) *VNode {
	items := make([]*VNode, len(keys))
	for i, k := range keys {
		items[i] = Li(Key(k), k)
	}
	return Ul(items)
}

func hostIDsByKey(ul *memdom.Node) map[string]string {
	ids := make(map[string]string)
	for _, li := range ul.Children() {
		ids[li.Children()[0].Text()] = li.ID()
	}
	return ids
}

func TestKeyedReorderPreservesHostNodes(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(keyedList("a", "b", "c", "d"))
	ul := body.Children()[0]
	idsBefore := hostIDsByKey(ul)

	before := root.Stats()
	root.Render(keyedList("d", "a", "b", "c"))
	d := root.Stats().Delta(before)

	if d.Creates != 0 || d.Removes != 0 {
		t.Errorf("creates/removes = %d/%d, want 0/0", d.Creates, d.Removes)
	}
	if d.Moves < 1 || d.Moves > 3 {
		t.Errorf("moves = %d, want between 1 and n-1=3", d.Moves)
	}

	order := ""
	for _, li := range ul.Children() {
		k := li.Children()[0].Text()
		order += k
		if li.ID() != idsBefore[k] {
			t.Errorf("host node for %q not preserved", k)
		}
	}
	if order != "dabc" {
		t.Errorf("order = %q, want dabc", order)
	}
}

func TestKeyedAdjacentSwapSingleMove(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(keyedList("a", "b", "c"))
	before := root.Stats()
	root.Render(keyedList("b", "a", "c"))
	d := root.Stats().Delta(before)

	if d.Moves != 1 {
		t.Errorf("moves = %d, want 1", d.Moves)
	}
	ul := body.Children()[0]
	order := ""
	for _, li := range ul.Children() {
		order += li.Children()[0].Text()
	}
	if order != "bac" {
		t.Errorf("order = %q, want bac", order)
	}
}

func TestKeyedInsertAtFront(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(keyedList("b", "c"))
	ul := body.Children()[0]
	idsBefore := hostIDsByKey(ul)

	before := root.Stats()
	root.Render(keyedList("a", "b", "c"))
	d := root.Stats().Delta(before)

	// One li and its text node are new; the existing two move nowhere new.
	if d.Creates != 2 {
		t.Errorf("creates = %d, want 2", d.Creates)
	}
	if d.Removes != 0 {
		t.Errorf("removes = %d, want 0", d.Removes)
	}
	for _, k := range []string{"b", "c"} {
		if hostIDsByKey(ul)[k] != idsBefore[k] {
			t.Errorf("host node for %q not preserved", k)
		}
	}
	if ul.Children()[0].Children()[0].Text() != "a" {
		t.Error("new item not at front")
	}
}

func TestKeyedRemoval(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(keyedList("a", "b", "c"))
	before := root.Stats()
	root.Render(keyedList("a", "c"))
	d := root.Stats().Delta(before)

	if d.Removes != 1 {
		t.Errorf("removes = %d, want 1", d.Removes)
	}
	ul := body.Children()[0]
	order := ""
	for _, li := range ul.Children() {
		order += li.Children()[0].Text()
	}
	if order != "ac" {
		t.Errorf("order = %q, want ac", order)
	}
}

func TestKeyedKindChangeReplacesInPlace(t *testing.T) {
	_, body, root := newTestRoot(t)

	root.Render(Ul(
		Li(Key("a"), "a"),
		Li(Key("b"), "b"),
		Li(Key("c"), "c"),
	))
	ul := body.Children()[0]
	idsBefore := hostIDsByKey(ul)

	before := root.Stats()
	root.Render(Ul(
		Li(Key("a"), "a"),
		P(Key("b"), "b"),
		Li(Key("c"), "c"),
	))
	d := root.Stats().Delta(before)

	// A single replacement, not an appended mount plus a removal.
	if d.Replaces != 1 {
		t.Errorf("replaces = %d, want 1", d.Replaces)
	}
	if d.Removes != 0 {
		t.Errorf("removes = %d, want 0", d.Removes)
	}
	if d.Moves != 0 {
		t.Errorf("moves = %d, want 0", d.Moves)
	}

	kids := ul.Children()
	if len(kids) != 3 {
		t.Fatalf("children = %d, want 3", len(kids))
	}
	if kids[1].Tag() != "p" || kids[1].Children()[0].Text() != "b" {
		t.Errorf("middle child = %s %q, want p \"b\"", kids[1].Tag(), kids[1].Children()[0].Text())
	}
	for _, k := range []string{"a", "c"} {
		if hostIDsByKey(ul)[k] != idsBefore[k] {
			t.Errorf("host node for %q not preserved", k)
		}
	}
}

func TestUnkeyedFrontInsertChurns(t *testing.T) {
	// Without keys children match by position, so a front insert rewrites
	// every text and creates one trailing item. The sharp edge is kept on
	// purpose: keys are what buy stability.
	_, body, root := newTestRoot(t)

	root.Render(Ul(Li("b"), Li("c")))
	before := root.Stats()
	root.Render(Ul(Li("a"), Li("b"), Li("c")))
	d := root.Stats().Delta(before)

	if d.TextWrites != 2 {
		t.Errorf("text writes = %d, want 2", d.TextWrites)
	}
	if d.Creates != 2 {
		t.Errorf("creates = %d, want 2", d.Creates)
	}

	ul := body.Children()[0]
	order := ""
	for _, li := range ul.Children() {
		order += li.Children()[0].Text()
	}
	if order != "abc" {
		t.Errorf("order = %q, want abc", order)
	}
}

func TestComponentNilOutputRendersEmptyText(t *testing.T) {
	_, body, root := newTestRoot(t)

	empty := func(Props) *VNode { return nil }
	root.Render(Div(Component(empty, nil)))

	div := body.Children()[0]
	if len(div.Children()) != 1 {
		t.Fatalf("div children = %d, want 1", len(div.Children()))
	}
	if div.Children()[0].Kind() != memdom.KindText || div.Children()[0].Text() != "" {
		t.Error("nil component output should mount an empty text node")
	}
}

func TestEventDispatchReachesHandler(t *testing.T) {
	_, body, root := newTestRoot(t)

	var got string
	root.Render(Div(
		Input(OnInput(func(e host.Event) { got = e.Value() })),
	))

	in := body.Children()[0].Children()[0]
	in.Input("typed")

	if got != "typed" {
		t.Errorf("handler saw %q, want typed", got)
	}
}

func TestListenerRebindOnChange(t *testing.T) {
	_, body, root := newTestRoot(t)

	hits := 0
	first := func() { hits += 10 }
	second := func() { hits++ }

	root.Render(Button(OnClick(first)))
	btn := body.Children()[0]
	root.Render(Button(OnClick(second)))

	btn.Click()
	if hits != 1 {
		t.Errorf("hits = %d, want 1 (stale handler still bound?)", hits)
	}
	if btn.ListenerCount("click") != 1 {
		t.Errorf("listeners = %d, want 1", btn.ListenerCount("click"))
	}
}
