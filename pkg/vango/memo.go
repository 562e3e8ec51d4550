package vango

import (
	"math"
	"reflect"
)

// Memo kinds reported to the MemoObserver.
const (
	MemoKindDeps    = "memo"
	MemoKindOptions = "options"
)

// DepsMemo caches a value derived from a tuple of dependency values.
// The value is recomputed only when the tuple changes between calls.
//
// A DepsMemo belongs to a single component instance and is not safe for
// concurrent use; render passes of one instance never overlap.
type DepsMemo[T any] struct {
	kind  string
	deps  []any
	value T
	valid bool
}

// Get returns the cached value if deps equal the previous call's deps,
// otherwise it runs compute and caches the result.
func (m *DepsMemo[T]) Get(deps []any, compute func() T) T {
	kind := m.kind
	if kind == "" {
		kind = MemoKindDeps
	}

	changed := -1
	if m.valid {
		changed = changedDep(m.deps, deps)
		if changed < 0 {
			notifyMemo(kind, false)
			return m.value
		}
	}

	if Debug.LogRecompute {
		if m.valid {
			debugLogger().Debug("memo recomputed", "kind", kind, "dep", changed)
		} else {
			debugLogger().Debug("memo computed", "kind", kind, "deps", len(deps))
		}
	}

	m.value = compute()
	m.deps = append(make([]any, 0, len(deps)), deps...)
	m.valid = true
	notifyMemo(kind, true)
	return m.value
}

// Reset drops the cached value; the next Get recomputes.
func (m *DepsMemo[T]) Reset() {
	var zero T
	m.value = zero
	m.deps = nil
	m.valid = false
}

// UseMemo returns compute's result, recomputing it only when deps change
// between renders of the current component.
//
//	total := vango.UseMemo(func() int { return sum(items) }, items)
func UseMemo[T any](compute func() T, deps ...any) T {
	memo := useSlot(HookMemo, func() *DepsMemo[T] {
		return &DepsMemo[T]{kind: MemoKindDeps}
	})
	return memo.Get(deps, compute)
}

// UseOnce returns compute's result from the first render of the current
// component on every later render.
func UseOnce[T any](compute func() T) T {
	return UseMemo(compute)
}

// changedDep returns the index of the first dependency that differs, or -1.
// A length change counts as a change at the shorter length.
func changedDep(prev, next []any) int {
	n := min(len(prev), len(next))
	for i := 0; i < n; i++ {
		if !DepsEqual(prev[i], next[i]) {
			return i
		}
	}
	if len(prev) != len(next) {
		return n
	}
	return -1
}

// DepsEqual reports whether two dependency values are the same.
//
// Comparable values compare with ==, except that NaN equals NaN. Maps,
// pointers and channels compare by identity, slices by backing array and
// length. Functions are only equal when both are nil. Other values fall
// back to reflect.DeepEqual.
func DepsEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		fa, fb := va.Float(), vb.Float()
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}

	if va.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
