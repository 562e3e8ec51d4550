package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates sequential hydration IDs.
type HIDGenerator struct {
	mu      sync.Mutex
	counter uint32
}

// NewHIDGenerator creates a new HID generator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// AssignHIDs gives every element and text node in the tree a hydration ID,
// depth first. Nodes that already have one keep it.
func AssignHIDs(root *VNode, gen *HIDGenerator) {
	if root == nil {
		return
	}
	if root.HID == "" && (root.Kind == KindElement || root.Kind == KindText) {
		root.HID = gen.Next()
	}
	for _, child := range root.Children {
		AssignHIDs(child, gen)
	}
}
