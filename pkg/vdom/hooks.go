package vdom

import "fmt"

// Cleanup is returned by an effect callback to undo its work. It runs
// immediately before the effect's next invocation, or once at unmount.
type Cleanup func()

// Setter updates one state slot. It is an explicit handle — component
// identity plus slot index captured at hook-call time — so it stays valid
// across re-renders of the owning component.
type Setter[T any] struct {
	scope *scope
	slot  int
}

// Set stores v in the slot and synchronously re-renders the owning
// component's subtree, then flushes any effects that became due.
func (st Setter[T]) Set(v T) {
	st.apply(func(T) T { return v })
}

// Update stores fn(current) in the slot, then re-renders like Set.
func (st Setter[T]) Update(fn func(T) T) {
	st.apply(fn)
}

func (st Setter[T]) apply(fn func(T) T) {
	s := st.scope
	if s == nil || s.disposed {
		// The component unmounted; late setter calls are dropped.
		return
	}
	slot := s.slots[st.slot].(*stateSlot)
	slot.value = fn(slot.value.(T))
	s.root.rerender(s)
}

// UseState returns the slot's current value and a setter for it. On the
// first render of the slot the initial value is stored; on every later
// render the initial argument is ignored and the stored value returned.
//
// Valid only while a component is rendering.
func UseState[T any](initial T) (T, Setter[T]) {
	s := mustScope("UseState")
	idx := s.slotIdx
	rec := s.nextSlot()
	if rec == nil {
		rec = &stateSlot{value: initial}
		s.setSlot(rec)
	}
	slot := asSlot[*stateSlot](rec, "UseState")
	return slot.value.(T), Setter[T]{scope: s, slot: idx}
}

// UseStateLazy is UseState with a lazy initializer: init is invoked exactly
// once, on the slot's first render.
func UseStateLazy[T any](init func() T) (T, Setter[T]) {
	s := mustScope("UseStateLazy")
	idx := s.slotIdx
	rec := s.nextSlot()
	if rec == nil {
		rec = &stateSlot{value: init()}
		s.setSlot(rec)
	}
	slot := asSlot[*stateSlot](rec, "UseStateLazy")
	return slot.value.(T), Setter[T]{scope: s, slot: idx}
}

// UseEffect schedules callback to run after the current render pass when
// the slot is new or deps changed since the previous render. A nil deps
// slice means "changed on every render"; an empty non-nil slice means
// "run once, on mount". Dep comparison is by identity, not deep equality.
//
// The callback's returned Cleanup runs immediately before the next
// invocation of this effect, or at unmount.
func UseEffect(callback func() Cleanup, deps []any) {
	s := mustScope("UseEffect")
	rec := s.nextSlot()
	if rec == nil {
		slot := &effectSlot{callback: callback, deps: deps, hasDeps: deps != nil}
		s.setSlot(slot)
		s.root.enqueueEffect(slot)
		return
	}
	slot := asSlot[*effectSlot](rec, "UseEffect")
	if !slot.hasDeps || deps == nil || depsChanged(slot.deps, deps) {
		slot.callback = callback
		slot.deps = deps
		slot.hasDeps = deps != nil
		s.root.enqueueEffect(slot)
	}
}

// UseMemo returns a value recomputed only when deps change, with the same
// deps semantics as UseEffect. The compute function runs synchronously
// during render.
func UseMemo[T any](compute func() T, deps []any) T {
	s := mustScope("UseMemo")
	rec := s.nextSlot()
	if rec == nil {
		slot := &memoSlot{value: compute(), deps: deps, hasDeps: deps != nil}
		s.setSlot(slot)
		return slot.value.(T)
	}
	slot := asSlot[*memoSlot](rec, "UseMemo")
	if !slot.hasDeps || deps == nil || depsChanged(slot.deps, deps) {
		slot.value = compute()
		slot.deps = deps
		slot.hasDeps = deps != nil
	}
	return slot.value.(T)
}

// UseCallback returns an identity-stable wrapper: the same fn value until
// deps change.
func UseCallback[F any](fn F, deps []any) F {
	return UseMemo(func() F { return fn }, deps)
}

// Deps builds a deps slice. It exists so call sites read naturally:
// UseEffect(fn, Deps(x, y)) versus UseEffect(fn, nil).
func Deps(vals ...any) []any {
	if vals == nil {
		return []any{}
	}
	return vals
}

// depsChanged reports whether two present deps slices differ: unequal
// length, or any pairwise identity difference.
func depsChanged(old, new []any) bool {
	if len(old) != len(new) {
		return true
	}
	for i := range new {
		if !identical(old[i], new[i]) {
			return true
		}
	}
	return false
}

// mustScope returns the currently rendering scope or panics with a usage
// error. Hooks called outside a component render are programming errors;
// the panic aborts the caller's render pass without rolling back host
// mutations already applied.
func mustScope(hook string) *scope {
	s := currentScope()
	if s == nil {
		panic(fmt.Sprintf("fern: %s called outside of component render", hook))
	}
	return s
}

// asSlot asserts a slot record's type, panicking on hook-order corruption
// severe enough to change the record type at a slot.
func asSlot[S any](rec any, hook string) S {
	slot, ok := rec.(S)
	if !ok {
		panic(fmt.Sprintf("fern: hook slot type mismatch in %s; hooks must be called in the same order on every render", hook))
	}
	return slot
}
