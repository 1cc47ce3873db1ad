package vdom

import "testing"

func TestCreateElementBasic(t *testing.T) {
	n := Div(Class("box"), ID("main"))

	if n.Kind != KindElement {
		t.Fatalf("Kind = %v, want KindElement", n.Kind)
	}
	if n.Tag != "div" {
		t.Errorf("Tag = %q, want div", n.Tag)
	}
	if n.Props["class"] != "box" {
		t.Errorf("class = %v, want box", n.Props["class"])
	}
	if n.Props["id"] != "main" {
		t.Errorf("id = %v, want main", n.Props["id"])
	}
}

func TestCreateElementChildren(t *testing.T) {
	n := Ul(
		Li("one"),
		nil, // conditional child that rendered Nothing
		[]*VNode{Li("two"), nil, Li("three")},
		"four",
		42,
	)

	if len(n.Children) != 5 {
		t.Fatalf("len(Children) = %d, want 5", len(n.Children))
	}
	if n.Children[3].Kind != KindText || n.Children[3].Text != "four" {
		t.Errorf("Children[3] = %+v, want text 'four'", n.Children[3])
	}
	if n.Children[4].Text != "42" {
		t.Errorf("Children[4].Text = %q, want 42", n.Children[4].Text)
	}
}

func TestCreateElementBooleanChildDropped(t *testing.T) {
	n := Div(false, true, "kept")
	if len(n.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(n.Children))
	}
}

func TestKeyRoutesToKeyField(t *testing.T) {
	n := Li(Key("item-7"), "seven")

	if n.Key != "item-7" {
		t.Errorf("Key = %q, want item-7", n.Key)
	}
	if _, ok := n.Props["key"]; ok {
		t.Error("key should not appear in Props")
	}
}

func TestKeyNonString(t *testing.T) {
	n := Li(Key(7))
	if n.Key != "7" {
		t.Errorf("Key = %q, want 7", n.Key)
	}
}

func TestEventHandlerArg(t *testing.T) {
	clicked := false
	n := Button(OnClick(func() { clicked = true }), "go")

	h, ok := n.Props["onclick"]
	if !ok {
		t.Fatal("onclick not in Props")
	}
	fn, ok := h.(func())
	if !ok {
		t.Fatalf("handler is %T, want func()", h)
	}
	fn()
	if !clicked {
		t.Error("handler did not run")
	}
}

func TestComponentArg(t *testing.T) {
	child := func(Props) *VNode { return Span("hi") }
	n := Div(ComponentFunc(child))

	if len(n.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(n.Children))
	}
	if n.Children[0].Kind != KindComponent {
		t.Errorf("child Kind = %v, want KindComponent", n.Children[0].Kind)
	}
}

func TestComponentKeyFromProps(t *testing.T) {
	fn := func(Props) *VNode { return nil }
	n := Component(fn, Props{"key": "row-3", "label": "x"})

	if n.Key != "row-3" {
		t.Errorf("Key = %q, want row-3", n.Key)
	}
	if _, ok := n.Props["key"]; ok {
		t.Error("key should not stay in Props")
	}
	if n.Props["label"] != "x" {
		t.Errorf("label = %v, want x", n.Props["label"])
	}
}

func TestClasses(t *testing.T) {
	n := Div(Classes(map[string]bool{"on": true, "off": false}))
	if n.Props["class"] != "on" {
		t.Errorf("class = %v, want on", n.Props["class"])
	}

	n = Div(Classes([]string{"a", "b"}))
	if n.Props["class"] != "a b" {
		t.Errorf("class = %v, want 'a b'", n.Props["class"])
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Error("br should be void")
	}
	if IsVoidElement("div") {
		t.Error("div should not be void")
	}
}

func TestSameKind(t *testing.T) {
	if !sameKind(Div(), Div()) {
		t.Error("same tag elements should match")
	}
	if sameKind(Div(), Span()) {
		t.Error("different tags should not match")
	}
	if sameKind(Div(), Text("x")) {
		t.Error("element and text should not match")
	}

	a := func(Props) *VNode { return nil }
	b := func(Props) *VNode { return nil }
	if !sameKind(Component(a, nil), Component(a, nil)) {
		t.Error("same component func should match")
	}
	if sameKind(Component(a, nil), Component(b, nil)) {
		t.Error("different component funcs should not match")
	}
}
