// Package fern provides the public API for the fern rendering library.
//
// This is the recommended import for applications:
//
//	import "github.com/fern-ui/fern"
//
// Usage:
//
//	func Counter(fern.Props) *fern.VNode {
//		n, set := fern.UseState(0)
//		return fern.Div(
//			fern.Span(fern.Textf("%d", n)),
//			fern.Button(fern.OnClick(func() { set.Set(n + 1) }), "+"),
//		)
//	}
//
//	root := fern.Render(fern.Component(Counter, nil), container)
//
// The underlying packages remain importable directly: pkg/vdom for the
// reconciler and hooks, pkg/host for the host-tree contract, pkg/render
// for HTML output, pkg/web for serving live sessions.
package fern

import (
	"github.com/fern-ui/fern/pkg/host"
	"github.com/fern-ui/fern/pkg/vdom"
)

// Core types.
type (
	// VNode is a virtual tree node.
	VNode = vdom.VNode

	// Props holds attributes, event handlers, and the style map.
	Props = vdom.Props

	// Style is the inline style map.
	Style = vdom.Style

	// ComponentFunc renders a virtual subtree from props.
	ComponentFunc = vdom.ComponentFunc

	// Attr is a single attribute.
	Attr = vdom.Attr

	// EventHandler is an event handler prop.
	EventHandler = vdom.EventHandler

	// Root owns one mounted tree.
	Root = vdom.Root

	// RootOption configures a Root.
	RootOption = vdom.RootOption

	// Stats counts host mutations and runtime activity.
	Stats = vdom.Stats

	// Cleanup undoes an effect.
	Cleanup = vdom.Cleanup

	// Event is a host event delivered to handlers.
	Event = host.Event

	// Node is a host tree node.
	Node = host.Node

	// Document creates host nodes.
	Document = host.Document
)

// Mounting.
var (
	// Render mounts or updates a tree in a container.
	Render = vdom.Render

	// Unmount removes a container's tree.
	Unmount = vdom.Unmount

	// NewRoot creates a root bound to a container.
	NewRoot = vdom.NewRoot

	// WithLogger sets a root's logger.
	WithLogger = vdom.WithLogger

	// Component creates a component node.
	Component = vdom.Component
)

// Hooks. Generic functions cannot be aliased, so these are thin wrappers.

// UseState returns a state slot's value and setter.
func UseState[T any](initial T) (T, vdom.Setter[T]) {
	return vdom.UseState(initial)
}

// UseStateLazy is UseState with a once-only initializer.
func UseStateLazy[T any](init func() T) (T, vdom.Setter[T]) {
	return vdom.UseStateLazy(init)
}

// UseEffect schedules a side effect after render when deps change.
func UseEffect(callback func() Cleanup, deps []any) {
	vdom.UseEffect(callback, deps)
}

// UseMemo caches a computed value until deps change.
func UseMemo[T any](compute func() T, deps []any) T {
	return vdom.UseMemo(compute, deps)
}

// UseCallback returns an identity-stable function until deps change.
func UseCallback[F any](fn F, deps []any) F {
	return vdom.UseCallback(fn, deps)
}

// Deps builds a deps slice.
var Deps = vdom.Deps

// Helpers.
var (
	Text    = vdom.Text
	Textf   = vdom.Textf
	If      = vdom.If
	IfElse  = vdom.IfElse
	When    = vdom.When
	Repeat  = vdom.Repeat
	Key     = vdom.Key
	Nothing = vdom.Nothing
)

// Range maps a slice to child nodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}

// Common elements. The full set lives in pkg/vdom.
var (
	Div      = vdom.Div
	Span     = vdom.Span
	P        = vdom.P
	A        = vdom.A
	Ul       = vdom.Ul
	Ol       = vdom.Ol
	Li       = vdom.Li
	H1       = vdom.H1
	H2       = vdom.H2
	H3       = vdom.H3
	Form     = vdom.Form
	Input    = vdom.Input
	Button   = vdom.Button
	Label    = vdom.Label
	Select   = vdom.Select
	Textarea = vdom.Textarea
	Img      = vdom.Img
	Section  = vdom.Section
	Header   = vdom.Header
	Footer   = vdom.Footer
	Main     = vdom.Main
	Nav      = vdom.Nav
	Table    = vdom.Table
	Br       = vdom.Br
	Hr       = vdom.Hr
)

// Common attributes.
var (
	ID          = vdom.ID
	Class       = vdom.Class
	ClassIf     = vdom.ClassIf
	Classes     = vdom.Classes
	StyleOf     = vdom.StyleOf
	AttrIf      = vdom.AttrIf
	Href        = vdom.Href
	Src         = vdom.Src
	Alt         = vdom.Alt
	Type        = vdom.Type
	Value       = vdom.Value
	Placeholder = vdom.Placeholder
	Disabled    = vdom.Disabled
	Checked     = vdom.Checked
	Data        = vdom.Data
)

// Common events.
var (
	OnClick   = vdom.OnClick
	OnInput   = vdom.OnInput
	OnChange  = vdom.OnChange
	OnSubmit  = vdom.OnSubmit
	OnKeyDown = vdom.OnKeyDown
	OnFocus   = vdom.OnFocus
	OnBlur    = vdom.OnBlur
)
