// Package demo holds the example application served by the dev server and
// rendered by the export command: a counter and a keyed todo list, enough
// to exercise state, effects, list reordering, and input handling.
package demo

import (
	"strconv"
	"strings"

	"github.com/fern-ui/fern/pkg/host"
	"github.com/fern-ui/fern/pkg/vdom"
)

// App is the demo root component.
func App(vdom.Props) *vdom.VNode {
	return vdom.Div(vdom.Class("app"),
		vdom.H1("fern demo"),
		vdom.Component(Counter, nil),
		vdom.Component(TodoList, nil),
	)
}

// Counter renders a number with increment and decrement buttons. The
// handlers are memoized so re-renders keep the same listener identity and
// the buttons are never re-bound.
func Counter(vdom.Props) *vdom.VNode {
	n, set := vdom.UseState(0)

	dec := vdom.UseCallback(func() { set.Update(func(v int) int { return v - 1 }) }, vdom.Deps())
	inc := vdom.UseCallback(func() { set.Update(func(v int) int { return v + 1 }) }, vdom.Deps())

	return vdom.Section(vdom.Class("counter"),
		vdom.Button(vdom.ID("dec"), vdom.OnClick(dec), "-"),
		vdom.Span(vdom.ID("count"), vdom.Textf("%d", n)),
		vdom.Button(vdom.ID("inc"), vdom.OnClick(inc), "+"),
	)
}

// itemRegistry records which todo items are currently mounted. Each item
// registers itself in an effect and unregisters in its cleanup, so the
// set shrinks when items are deleted and empties at unmount.
type itemRegistry struct {
	ids map[int]bool
}

func newItemRegistry() *itemRegistry {
	return &itemRegistry{ids: map[int]bool{}}
}

func (r *itemRegistry) add(id int)    { r.ids[id] = true }
func (r *itemRegistry) remove(id int) { delete(r.ids, id) }
func (r *itemRegistry) size() int     { return len(r.ids) }

type todo struct {
	id    int
	title string
	done  bool
}

// TodoList renders a keyed list with an input to add items and per-item
// toggle and delete. Item identity follows the key, so host nodes and any
// per-item state survive reorders.
func TodoList(props vdom.Props) *vdom.VNode {
	items, setItems := vdom.UseStateLazy(func() []todo {
		return []todo{
			{id: 1, title: "write components"},
			{id: 2, title: "wire the reconciler"},
		}
	})
	draft, setDraft := vdom.UseState("")
	nextID, setNextID := vdom.UseState(3)

	reg, _ := props["registry"].(*itemRegistry)

	// Recomputed only when the list itself changes; typing in the draft
	// re-renders without touching it.
	remaining := vdom.UseMemo(func() int {
		left := 0
		for _, t := range items {
			if !t.done {
				left++
			}
		}
		return left
	}, vdom.Deps(items))

	add := func() {
		title := strings.TrimSpace(draft)
		if title == "" {
			return
		}
		id := nextID
		setNextID.Set(id + 1)
		setItems.Update(func(ts []todo) []todo {
			out := make([]todo, len(ts), len(ts)+1)
			copy(out, ts)
			return append(out, todo{id: id, title: title})
		})
		setDraft.Set("")
	}

	return vdom.Section(vdom.Class("todos"),
		vdom.Form(vdom.OnSubmit(add),
			vdom.Input(vdom.ID("draft"),
				vdom.Type("text"),
				vdom.Placeholder("what needs doing?"),
				vdom.Value(draft),
				vdom.OnInput(func(e host.Event) { setDraft.Set(e.Value()) }),
			),
			vdom.Button(vdom.ID("add"), vdom.Type("submit"), "add"),
		),
		vdom.Ul(vdom.Range(items, func(t todo, _ int) *vdom.VNode {
			return vdom.Component(TodoItem, vdom.Props{
				"key":      itemKey(t.id),
				"todo":     t,
				"registry": reg,
				"onToggle": toggleFn(setItems, t.id),
				"onDelete": deleteFn(setItems, t.id),
			})
		})),
		vdom.Footer(vdom.ID("remaining"), vdom.Textf("%d left", remaining)),
	)
}

// TodoItem renders one list entry. Props: "todo" (todo), "onToggle" and
// "onDelete" (func()), and optionally "registry" (*itemRegistry).
func TodoItem(props vdom.Props) *vdom.VNode {
	t := props["todo"].(todo)
	onToggle := props["onToggle"].(func())
	onDelete := props["onDelete"].(func())
	reg, _ := props["registry"].(*itemRegistry)

	vdom.UseEffect(func() vdom.Cleanup {
		if reg == nil {
			return nil
		}
		reg.add(t.id)
		return func() { reg.remove(t.id) }
	}, vdom.Deps(t.id))

	return vdom.Li(
		vdom.ClassIf(t.done, "done"),
		vdom.Label(
			vdom.Input(vdom.Type("checkbox"),
				vdom.AttrIf(t.done, vdom.Checked()),
				vdom.OnClick(onToggle)),
			vdom.Span(t.title),
		),
		vdom.Button(vdom.Class("delete"), vdom.OnClick(onDelete), "x"),
	)
}

func itemKey(id int) string {
	return strconv.Itoa(id)
}

func toggleFn(set vdom.Setter[[]todo], id int) func() {
	return func() {
		set.Update(func(ts []todo) []todo {
			out := make([]todo, len(ts))
			copy(out, ts)
			for i := range out {
				if out[i].id == id {
					out[i].done = !out[i].done
				}
			}
			return out
		})
	}
}

func deleteFn(set vdom.Setter[[]todo], id int) func() {
	return func() {
		set.Update(func(ts []todo) []todo {
			out := make([]todo, 0, len(ts))
			for _, t := range ts {
				if t.id != id {
					out = append(out, t)
				}
			}
			return out
		})
	}
}
