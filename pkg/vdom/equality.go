package vdom

import "reflect"

// identical reports identity sameness between two values. Funcs, maps,
// slices, and channels compare by header pointer; comparable values
// compare with ==; anything uncomparable is never identical. Equal-valued
// but distinct slices therefore count as changed — deps callers pass
// scalars or stable references for a reason.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return false
	}
	switch va.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() || va.Type() != vb.Type() {
		return false
	}
	return a == b
}
