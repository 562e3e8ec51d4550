package vango

import (
	"runtime"
	"sync"
)

// TrackingContext holds the render state for a goroutine.
// Each goroutine has its own tracking context so components can render
// concurrently on different goroutines.
type TrackingContext struct {
	// currentOwner is the Owner whose hook slots are used by hooks.
	// Set during component rendering.
	currentOwner *Owner

	// renderDepth tracks nested StartRender/EndRender pairs.
	// Hooks are only valid while it is > 0.
	renderDepth int
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine.
// This uses the runtime stack to extract the goroutine ID.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack starts with "goroutine <id> "
	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine.
// If no context exists, creates a new one.
func getTrackingContext() *TrackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*TrackingContext)
	}

	ctx := &TrackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// getCurrentOwner returns the current owner for the goroutine.
// Returns nil if no owner context is set.
func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner sets the current owner.
// Returns the previous owner so it can be restored.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

func beginRender() {
	getTrackingContext().renderDepth++
}

func endRender() {
	ctx := getTrackingContext()
	if ctx.renderDepth > 0 {
		ctx.renderDepth--
	}
}

func isInRender() bool {
	return getTrackingContext().renderDepth > 0
}

// WithOwner runs a function with the specified owner as the current owner.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// cleanupGoroutineContext removes the tracking context for the current goroutine.
// Contexts are small; this only matters for long-lived pools of short renders.
func cleanupGoroutineContext() {
	trackingContexts.Delete(getGoroutineID())
}
