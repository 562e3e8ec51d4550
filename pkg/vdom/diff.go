package vdom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Diff compares two VNode trees and returns the patches needed to transform prev into next.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches.
// parentHID is the HID of the parent element, used for text patches that don't have their own HID.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		diffFragment(prev, next, parentHID, patches)
	case KindComponent:
		diffComponent(prev, next, parentHID, patches)
	}
}

// diffText compares text nodes.
func diffText(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   targetHID,
				Value: next.Text,
			})
		}
	}
}

// diffElement compares element nodes.
func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID
	diffProps(prev, next, patches)
	diffChildren(prev, next, prev.HID, patches)
}

// diffFragment compares fragment nodes. Fragments have no HID of their own,
// so children patch against the enclosing element.
func diffFragment(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID
	diffChildren(prev, next, parentHID, patches)
}

// diffComponent renders both components and diffs the output.
func diffComponent(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID
	if prev.Comp != nil && next.Comp != nil {
		diff(prev.Comp.Render(), next.Comp.Render(), parentHID, patches)
	}
}

// diffProps compares and patches attributes.
func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, prevVal := range prev.Props {
		if key == "key" {
			continue
		}

		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		} else if !propsEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if key == "key" {
			continue
		}
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}
}

// diffChildren compares and patches child nodes.
func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	} else {
		diffUnkeyedChildren(prev, prev.Children, next.Children, parentHID, patches)
	}
}

// diffUnkeyedChildren handles children without keys using positional matching.
func diffUnkeyedChildren(parent *VNode, prev, next []*VNode, parentHID string, patches *[]Patch) {
	maxLen := max(len(prev), len(next))

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		default:
			diff(prevChild, nextChild, parentHID, patches)
		}
	}
}

// diffKeyedChildren handles keyed children. ChildrenUpdates decides which
// children enter and leave; the rest are paired with the first unused
// previous child carrying the same key, then moved and diffed.
func diffKeyedChildren(parent *VNode, prev, next []*VNode, parentHID string, patches *[]Patch) {
	updates := ChildrenUpdates(next, prev)

	added := make(map[int]bool, len(updates.IndicesToAdd))
	for _, i := range updates.IndicesToAdd {
		added[i] = true
	}
	removed := make(map[int]bool, len(updates.IndicesToRemove))
	for _, i := range updates.IndicesToRemove {
		removed[i] = true
	}

	// key -> unused prev indices, in order
	candidates := make(map[Key][]int)
	for i, child := range prev {
		if removed[i] {
			continue
		}
		k := NodeKey(child)
		candidates[k] = append(candidates[k], i)
	}

	for nextIdx, nextChild := range next {
		prevIdx := -1
		if !added[nextIdx] {
			k := NodeKey(nextChild)
			if queue := candidates[k]; len(queue) > 0 {
				prevIdx = queue[0]
				candidates[k] = queue[1:]
			}
		}

		if prevIdx < 0 {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.HID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		prevChild := prev[prevIdx]
		if prevIdx != nextIdx {
			*patches = append(*patches, Patch{
				Op:       PatchMoveNode,
				HID:      prevChild.HID,
				ParentID: parent.HID,
				Index:    nextIdx,
			})
		}
		diff(prevChild, nextChild, parentHID, patches)
	}

	for _, i := range updates.IndicesToRemove {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev[i].HID,
		})
	}

	// Duplicate keys left over once every next child is paired, in prev order.
	leftover := make(map[int]bool)
	for _, queue := range candidates {
		for _, i := range queue {
			leftover[i] = true
		}
	}
	for i, child := range prev {
		if leftover[i] {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: child.HID,
			})
		}
	}
}

// hasKeys returns true if any child has a key.
func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if !NodeKey(child).IsZero() {
			return true
		}
	}
	return false
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to a string for the patch.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
