package memdom

import (
	"testing"

	"github.com/fern-ui/fern/pkg/host"
)

func TestCreateAndByID(t *testing.T) {
	doc := NewDocument()

	el := doc.CreateElement("div").(*Node)
	txt := doc.CreateText("hi").(*Node)

	if el.ID() != "n1" || txt.ID() != "n2" {
		t.Errorf("IDs = %s, %s, want n1, n2", el.ID(), txt.ID())
	}
	if doc.ByID("n1") != el {
		t.Error("ByID(n1) should return the element")
	}
	if el.Kind() != KindElement || txt.Kind() != KindText {
		t.Error("kinds wrong")
	}
}

func TestTreeOperations(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul").(*Node)
	a := doc.CreateElement("li").(*Node)
	b := doc.CreateElement("li").(*Node)
	c := doc.CreateElement("li").(*Node)

	parent.AppendChild(a)
	parent.AppendChild(c)
	parent.InsertBefore(b, c)

	kids := parent.Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Fatalf("children = %v", kids)
	}
	if a.NextSibling() != host.Node(b) {
		t.Error("NextSibling(a) should be b")
	}
	if c.NextSibling() != nil {
		t.Error("NextSibling(c) should be nil")
	}
	if b.Parent() != host.Node(parent) {
		t.Error("Parent(b) should be parent")
	}

	// InsertBefore on an attached child moves it.
	parent.InsertBefore(c, a)
	kids = parent.Children()
	if kids[0] != c || kids[1] != a || kids[2] != b {
		t.Errorf("after move children = %v, %v, %v", kids[0].ID(), kids[1].ID(), kids[2].ID())
	}

	parent.RemoveChild(a)
	if len(parent.Children()) != 2 {
		t.Error("remove failed")
	}
	if a.Parent() != nil {
		t.Error("removed child keeps parent")
	}
}

func TestReplaceChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").(*Node)
	old := doc.CreateText("old").(*Node)
	parent.AppendChild(old)

	repl := doc.CreateText("new").(*Node)
	parent.ReplaceChild(repl, old)

	kids := parent.Children()
	if len(kids) != 1 || kids[0] != repl {
		t.Error("replacement not in place")
	}
	if old.Parent() != nil {
		t.Error("replaced child keeps parent")
	}
}

func TestRemovalForgetsSubtree(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").(*Node)
	child := doc.CreateElement("span").(*Node)
	grand := doc.CreateText("x").(*Node)
	parent.AppendChild(child)
	child.AppendChild(grand)

	parent.RemoveChild(child)

	if doc.ByID(child.ID()) != nil || doc.ByID(grand.ID()) != nil {
		t.Error("detached subtree should leave the ID registry")
	}
	if doc.ByID(parent.ID()) == nil {
		t.Error("parent should stay registered")
	}
}

func TestAttributesAndStyles(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div").(*Node)

	el.SetAttribute("class", "a")
	if v, ok := el.Attr("class"); !ok || v != "a" {
		t.Errorf("class = %q,%v", v, ok)
	}
	el.RemoveAttribute("class")
	if _, ok := el.Attr("class"); ok {
		t.Error("attr not removed")
	}

	el.SetStyle("color", "red")
	if v, _ := el.StyleProp("color"); v != "red" {
		t.Errorf("color = %q", v)
	}
	el.RemoveStyle("color")
	if _, ok := el.StyleProp("color"); ok {
		t.Error("style not removed")
	}
}

func TestListenerIdentityRemoval(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button").(*Node)

	hits := 0
	var a host.Listener = func(host.Event) { hits++ }
	var b host.Listener = func(host.Event) { hits += 10 }

	el.AddEventListener("click", a)
	el.AddEventListener("click", b)
	el.RemoveEventListener("click", a)

	el.Click()
	if hits != 10 {
		t.Errorf("hits = %d, want 10 (wrong listener removed)", hits)
	}
	if el.ListenerCount("click") != 1 {
		t.Errorf("listeners = %d, want 1", el.ListenerCount("click"))
	}
}

func TestDispatchSurvivesRebindDuringDelivery(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button").(*Node)

	hits := 0
	var h host.Listener
	h = func(host.Event) {
		hits++
		// Handlers that re-render swap listeners mid-dispatch.
		el.RemoveEventListener("click", h)
		el.AddEventListener("click", func(host.Event) { hits += 100 })
	}
	el.AddEventListener("click", h)

	el.Click()
	if hits != 1 {
		t.Errorf("hits = %d, want 1 (replacement ran in same dispatch?)", hits)
	}
}

func TestDispatchEventValues(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input").(*Node)

	var typ, val string
	var target host.Node
	el.AddEventListener("input", func(e host.Event) {
		typ, val, target = e.Type(), e.Value(), e.Target()
	})

	el.Input("abc")
	if typ != "input" || val != "abc" {
		t.Errorf("event = %s %q, want input abc", typ, val)
	}
	if target != host.Node(el) {
		t.Error("target should be the dispatching node")
	}
}

func TestObserveMutations(t *testing.T) {
	doc := NewDocument()
	var muts []Mutation
	doc.Observe(func(m Mutation) { muts = append(muts, m) })

	parent := doc.CreateElement("div").(*Node)
	txt := doc.CreateText("hi").(*Node)
	parent.AppendChild(txt)
	txt.SetText("bye")
	parent.RemoveChild(txt)

	wantOps := []Op{OpCreateElement, OpCreateText, OpInsert, OpSetText, OpRemove}
	if len(muts) != len(wantOps) {
		t.Fatalf("mutations = %d, want %d", len(muts), len(wantOps))
	}
	for i, op := range wantOps {
		if muts[i].Kind != op {
			t.Errorf("mutation %d = %v, want %v", i, muts[i].Kind, op)
		}
	}
	if muts[2].ParentID != parent.ID() || muts[2].NodeID != txt.ID() {
		t.Errorf("insert mutation = %+v", muts[2])
	}
	if muts[2].RefID != "" {
		t.Errorf("append should carry empty RefID, got %q", muts[2].RefID)
	}
}
