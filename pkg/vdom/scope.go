package vdom

import "github.com/fern-ui/fern/pkg/host"

// scope is the per-component hook storage. It survives re-renders of the
// same component identity: when the reconciler matches a new component node
// to an old one, the scope moves to the new node and the slots carry over.
//
// Slot index is positional. A component must call its hooks in the same
// order on every render; the runtime cannot verify this cheaply, so a
// violation silently misattributes state to the wrong slot.
type scope struct {
	root *Root

	// node is the component VNode currently owning this scope. Updated on
	// every render so setter handles can locate the re-render entry point.
	node *VNode

	// parentDOM is the host node the component's output mounts under.
	parentDOM host.Node

	// slots holds one record per hook call, indexed by call order:
	// *stateSlot, *effectSlot, or *memoSlot.
	slots []any

	// slotIdx is the next slot to serve during the current render.
	slotIdx int

	// disposed is set when the owning component unmounts. Disposed scopes
	// ignore setter calls and their pending effects are skipped.
	disposed bool
}

// beginRender prepares the scope for a component invocation and installs
// it as the currently rendering scope.
func (s *scope) beginRender(root *Root, node *VNode, parentDOM host.Node) *scope {
	s.root = root
	s.node = node
	s.parentDOM = parentDOM
	s.slotIdx = 0
	return setCurrentScope(s)
}

// endRender restores the previously rendering scope.
func (s *scope) endRender(prev *scope) {
	setCurrentScope(prev)
}

// nextSlot returns the slot record for the current hook call, or nil on
// first render of this slot, advancing the slot index either way. The
// caller stores a fresh record via setSlot when nil is returned.
func (s *scope) nextSlot() any {
	idx := s.slotIdx
	s.slotIdx++

	if idx < len(s.slots) {
		return s.slots[idx]
	}
	return nil
}

// setSlot stores a record for the slot just served by nextSlot.
func (s *scope) setSlot(record any) {
	s.slots = append(s.slots, record)
}

// dispose runs every live effect cleanup in slot order and marks the scope
// dead. Called during unmount, before the host node detaches.
func (s *scope) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for _, record := range s.slots {
		if eff, ok := record.(*effectSlot); ok {
			eff.disposed = true
			if eff.cleanup != nil {
				eff.cleanup()
				eff.cleanup = nil
			}
		}
	}
}

// stateSlot holds one useState value.
type stateSlot struct {
	value any
}

// effectSlot holds one useEffect record.
type effectSlot struct {
	callback func() Cleanup
	deps     []any
	hasDeps  bool // false when the deps argument was absent (nil)
	cleanup  Cleanup
	pending  bool // queued for the next flush
	disposed bool
}

// memoSlot holds one useMemo (or useCallback) record.
type memoSlot struct {
	value   any
	deps    []any
	hasDeps bool
}
