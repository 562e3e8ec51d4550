package vango

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/reconcile/internal/errors"
)

// HookType identifies the type of hook call for order validation.
type HookType uint8

const (
	HookMemo HookType = iota + 1
	HookOptions
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookMemo:
		return "Memo"
	case HookOptions:
		return "Options"
	default:
		return "Unknown"
	}
}

// Owner represents one component instance. It holds the hook state that
// must survive between renders of that instance, and the cleanups to run
// when the instance goes away.
//
// Owners form a hierarchy mirroring the component tree. Disposing an Owner
// disposes its children first.
type Owner struct {
	id uint64

	// parent is nil for a root Owner.
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	// cleanups are manual cleanup functions registered via OnCleanup.
	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool

	// Dev-mode hook order tracking (only used when DebugMode is true)
	hookOrder   []HookType // Expected order from first render
	hookIndex   int        // Current index during render
	renderCount int        // 0 = first render, 1+ = subsequent

	// Hook slot storage for stable identity across renders.
	hookSlots   []any
	hookSlotIdx int
}

// NewOwner creates a new Owner with the given parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(o)
	}

	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		// Already disposed, run cleanup immediately
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose disposes this Owner and all its children, then runs cleanups in
// reverse registration order. Hook state is dropped.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.hookSlots = nil
}

// Render runs fn as one render pass of this Owner: the Owner becomes the
// current owner and hooks called by fn resolve against its slots.
func (o *Owner) Render(fn func()) {
	old := setCurrentOwner(o)
	o.StartRender()

	completed := false
	defer func() {
		// EndRender may panic on a hook order change
		defer func() {
			setCurrentOwner(old)
			if old == nil && !isInRender() {
				cleanupGoroutineContext()
			}
		}()
		if completed {
			o.EndRender()
		} else {
			// fn panicked; leave hook validation state alone
			endRender()
		}
	}()

	fn()
	completed = true
}

// =============================================================================
// Dev-mode Hook Order Validation
// =============================================================================

// StartRender is called at the beginning of a component render.
// It resets the hook slot index, and in debug mode the order validation index.
func (o *Owner) StartRender() {
	beginRender()

	o.hookSlotIdx = 0
	if DebugMode {
		o.hookIndex = 0
	}
}

// EndRender is called at the end of a component render.
// In debug mode, it validates that all expected hooks were called.
func (o *Owner) EndRender() {
	endRender()

	if !DebugMode {
		return
	}
	if o.renderCount == 0 {
		// First render complete, lock in hook order
		o.renderCount = 1
	} else if o.hookIndex < len(o.hookOrder) {
		panic(errors.New("E002").WithDetail(fmt.Sprintf(
			"expected %d hooks, got %d", len(o.hookOrder), o.hookIndex)))
	}
}

// TrackHook records a hook call during render for order validation.
// In debug mode, hooks must be called in the same order on every render.
func (o *Owner) TrackHook(ht HookType) {
	if !DebugMode {
		return
	}

	if o.renderCount == 0 {
		o.hookOrder = append(o.hookOrder, ht)
	} else {
		if o.hookIndex >= len(o.hookOrder) {
			panic(errors.New("E002").WithDetail(fmt.Sprintf(
				"extra %s hook at index %d", ht, o.hookIndex)))
		}
		if expected := o.hookOrder[o.hookIndex]; expected != ht {
			panic(errors.New("E002").WithDetail(fmt.Sprintf(
				"at index %d: expected %s, got %s", o.hookIndex, expected, ht)))
		}
	}
	o.hookIndex++
}

// =============================================================================
// Hook Slot Storage for Stable Identity
// =============================================================================

// UseHookSlot returns the stored value for the current hook slot, or nil on
// the first render. The caller then creates the value and calls SetHookSlot.
//
//	func SomeHook() *state {
//	    if slot := owner.UseHookSlot(); slot != nil {
//	        return slot.(*state)
//	    }
//	    s := &state{}
//	    owner.SetHookSlot(s)
//	    return s
//	}
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++

	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores a value in the current hook slot.
// Must be called after UseHookSlot returns nil (first render).
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}

// useSlot resolves the hook slot of the current owner, creating its state on
// the owner's first render. It panics when called outside a render.
func useSlot[S any](ht HookType, create func() S) S {
	owner := getCurrentOwner()
	if owner == nil || !isInRender() {
		panic(errors.New("E001").WithDetail(fmt.Sprintf("%s hook called with no component rendering", ht)))
	}

	owner.TrackHook(ht)

	if slot := owner.UseHookSlot(); slot != nil {
		state, ok := slot.(S)
		if !ok {
			panic(errors.New("E003").WithDetail(fmt.Sprintf(
				"%s hook found %T in its slot", ht, slot)))
		}
		return state
	}

	state := create()
	owner.SetHookSlot(state)
	return state
}
