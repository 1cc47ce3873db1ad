package vdom

import (
	"runtime"
	"sync"
)

// renderContext holds the hook runtime state for one goroutine: which
// component scope is currently rendering. Hooks consult it to find their
// slot storage; everything else in a render pass is parameter-threaded.
//
// A per-goroutine holder (rather than a package-level variable) keeps
// independent roots rendering on different goroutines from trampling each
// other, even though a single root is strictly single-threaded.
type renderContext struct {
	// currentScope is the component scope whose function is executing.
	// nil outside component renders; hooks panic in that case.
	currentScope *scope
}

// renderContexts stores per-goroutine render contexts.
var renderContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the runtime stack header ("goroutine <id> ...").
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getRenderContext returns the render context for the current goroutine,
// creating it on first use.
func getRenderContext() *renderContext {
	gid := getGoroutineID()

	if ctx, ok := renderContexts.Load(gid); ok {
		return ctx.(*renderContext)
	}

	ctx := &renderContext{}
	renderContexts.Store(gid, ctx)
	return ctx
}

// currentScope returns the scope of the component currently rendering on
// this goroutine, or nil when no component render is in progress.
func currentScope() *scope {
	return getRenderContext().currentScope
}

// setCurrentScope installs s as the currently rendering scope and returns
// the previous one so nested component renders can restore it.
func setCurrentScope(s *scope) *scope {
	ctx := getRenderContext()
	old := ctx.currentScope
	ctx.currentScope = s
	return old
}
