package vdom

import (
	"log/slog"
	"sync"

	"github.com/fern-ui/fern/pkg/host"
)

// Stats counts host mutations and runtime activity since the root was
// created. Tests and the serving layer read deltas across a pass; an
// unchanged tree re-rendered against itself moves none of the mutation
// counters.
type Stats struct {
	Creates  int // host nodes created
	Removes  int // subtree detachments
	Replaces int // kind-mismatch replacements
	Moves    int // reorder InsertBefore calls

	TextWrites  int
	AttrWrites  int
	StyleWrites int

	ListenerBinds   int
	ListenerUnbinds int

	ComponentRenders int
	EffectRuns       int
}

// Delta returns the change from an earlier snapshot.
func (s Stats) Delta(prev Stats) Stats {
	return Stats{
		Creates:          s.Creates - prev.Creates,
		Removes:          s.Removes - prev.Removes,
		Replaces:         s.Replaces - prev.Replaces,
		Moves:            s.Moves - prev.Moves,
		TextWrites:       s.TextWrites - prev.TextWrites,
		AttrWrites:       s.AttrWrites - prev.AttrWrites,
		StyleWrites:      s.StyleWrites - prev.StyleWrites,
		ListenerBinds:    s.ListenerBinds - prev.ListenerBinds,
		ListenerUnbinds:  s.ListenerUnbinds - prev.ListenerUnbinds,
		ComponentRenders: s.ComponentRenders - prev.ComponentRenders,
		EffectRuns:       s.EffectRuns - prev.EffectRuns,
	}
}

// Mutations is the number of host-tree writes in the snapshot. Zero means
// a pass left the host tree untouched.
func (s Stats) Mutations() int {
	return s.Creates + s.Removes + s.Replaces + s.Moves +
		s.TextWrites + s.AttrWrites + s.StyleWrites +
		s.ListenerBinds + s.ListenerUnbinds
}

// Root owns one mounted virtual tree and its host container. All methods
// must be called from a single goroutine; event dispatch and setter calls
// re-enter the render machinery synchronously.
type Root struct {
	container host.Node
	tree      *VNode
	log       *slog.Logger

	// listeners maps host node and event name to the bound closure, so
	// patches and unmounts detach exactly what was attached.
	listeners map[host.Node]map[string]host.Listener

	// pendingEffects is the FIFO of effect slots due after the current
	// pass. Flushed after every render and every setter-driven re-render.
	pendingEffects []*effectSlot

	stats Stats
}

// RootOption configures a Root.
type RootOption func(*Root)

// WithLogger sets the logger for render-pass debug output.
func WithLogger(l *slog.Logger) RootOption {
	return func(r *Root) { r.log = l }
}

// NewRoot creates a root bound to a host container node.
func NewRoot(container host.Node, opts ...RootOption) *Root {
	r := &Root{
		container: container,
		log:       slog.Default(),
		listeners: make(map[host.Node]map[string]host.Listener),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Container returns the host node this root renders into.
func (r *Root) Container() host.Node { return r.container }

// Tree returns the currently mounted virtual tree, nil when unmounted.
func (r *Root) Tree() *VNode { return r.tree }

// Stats returns a snapshot of the root's counters.
func (r *Root) Stats() Stats { return r.stats }

// Render reconciles node against the previously rendered tree, then
// flushes effects that became due. Rendering nil unmounts.
func (r *Root) Render(node *VNode) {
	before := r.stats
	r.reconcile(r.tree, node, r.container)
	r.tree = node
	r.flushEffects()

	d := r.stats.Delta(before)
	r.log.Debug("render pass",
		"mutations", d.Mutations(),
		"components", d.ComponentRenders,
		"effects", d.EffectRuns)
}

// Unmount removes the mounted tree, running every effect cleanup.
func (r *Root) Unmount() {
	r.Render(nil)
}

// rerender re-invokes the component owning s and reconciles its output
// against the previous one, then flushes effects. Entered synchronously
// from state setters; disposed scopes are ignored.
func (r *Root) rerender(s *scope) {
	if s.disposed {
		return
	}
	node := s.node
	oldRendered := node.rendered
	r.renderComponent(node, s.parentDOM)
	r.reconcile(oldRendered, node.rendered, s.parentDOM)
	node.dom = node.rendered.dom
	r.flushEffects()
}

// enqueueEffect queues an effect slot for the next flush. A slot already
// queued stays queued once.
func (r *Root) enqueueEffect(e *effectSlot) {
	if e.pending || e.disposed {
		return
	}
	e.pending = true
	r.pendingEffects = append(r.pendingEffects, e)
}

// flushEffects drains the pending queue in enqueue order. Each run first
// invokes the previous cleanup, then the callback, storing its returned
// cleanup. Effects whose setters trigger nested re-renders may enqueue
// more work; the loop drains that too.
func (r *Root) flushEffects() {
	for len(r.pendingEffects) > 0 {
		e := r.pendingEffects[0]
		r.pendingEffects = r.pendingEffects[1:]
		e.pending = false
		if e.disposed {
			continue
		}
		if e.cleanup != nil {
			e.cleanup()
			e.cleanup = nil
		}
		e.cleanup = e.callback()
		r.stats.EffectRuns++
	}
}

// roots tracks the Root bound to each container so the package-level
// Render is idempotent per container.
var (
	rootsMu sync.Mutex
	roots   = make(map[host.Node]*Root)
)

// Render mounts or updates node in container, creating a Root for the
// container on first use. Rendering nil unmounts the container's tree;
// the Root sticks around for the next mount.
func Render(node *VNode, container host.Node, opts ...RootOption) *Root {
	rootsMu.Lock()
	r, ok := roots[container]
	if !ok {
		r = NewRoot(container, opts...)
		roots[container] = r
	}
	rootsMu.Unlock()

	r.Render(node)
	return r
}

// Unmount unmounts the container's tree and forgets its Root.
func Unmount(container host.Node) {
	rootsMu.Lock()
	r := roots[container]
	delete(roots, container)
	rootsMu.Unlock()

	if r != nil {
		r.Unmount()
	}
}
