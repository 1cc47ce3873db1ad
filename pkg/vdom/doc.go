// Package vdom implements the virtual DOM: declarative element builders,
// the reconciler that diffs successive virtual trees onto a host document,
// and the hook runtime (UseState, UseEffect, UseMemo) that gives component
// functions state across renders.
//
// A tree is described with the element factories:
//
//	vdom.Div(vdom.Class("counter"),
//		vdom.Span(vdom.Textf("count: %d", n)),
//		vdom.Button(vdom.OnClick(func() { set(n + 1) }), "+"),
//	)
//
// and mounted with Render. Re-rendering an equivalent tree performs no
// host mutations; keyed children reorder by moving existing host nodes.
//
// The runtime is synchronous and single-threaded per Root: state setters
// re-render the owning component's subtree before returning, and effects
// flush in FIFO order at the end of each pass.
package vdom
