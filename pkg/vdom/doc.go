// Package vdom provides the virtual DOM model and its reconciliation.
//
// # Core Types
//
// VNode represents elements, text, fragments and components. Key identifies
// a node among its siblings; strings and numbers are valid keys and the zero
// Key means unkeyed.
//
//	El("ul",
//	    Keyed("a", El("li", "Apples")),
//	    Keyed("b", El("li", "Bananas")),
//	)
//
// # Child Updates
//
// Updates and ChildrenUpdates compare two child lists by key and report which
// old children left and which new children arrived:
//
//	u := ChildrenUpdates(next, prev)
//	for _, i := range u.IndicesToRemove { ... }  // positions in prev
//	for _, i := range u.IndicesToAdd { ... }     // positions in next
//	render(u.All)                                // next, then removed children
//
// Unkeyed children never match, so they always count as both removed and
// added.
//
// # Diffing
//
// Diff compares two trees and returns patches (SetText, SetAttr, RemoveAttr,
// InsertNode, RemoveNode, MoveNode, ReplaceNode). Keyed child lists are
// reconciled with ChildrenUpdates; unkeyed lists are diffed by position.
package vdom
