package vdom

// ChildUpdates describes what changed between two renders of a child list.
type ChildUpdates[T any] struct {
	// IndicesToRemove are positions in the previous list whose key matches
	// no key in the next list.
	IndicesToRemove []int `json:"indicesToRemove"`

	// IndicesToAdd are positions in the next list whose key matches no key
	// in the previous list.
	IndicesToAdd []int `json:"indicesToAdd"`

	// Removed holds the previous elements at IndicesToRemove.
	Removed []T `json:"removed"`

	// Added holds the next elements at IndicesToAdd.
	Added []T `json:"added"`

	// All is the next list followed by Removed, so callers can keep
	// rendering removed elements (e.g. while they animate out).
	All []T `json:"all"`
}

// Empty reports whether nothing was added or removed.
func (u ChildUpdates[T]) Empty() bool {
	return len(u.IndicesToAdd) == 0 && len(u.IndicesToRemove) == 0
}

// ExitIndex maps a position in All back to the previous-list index of a
// removed element. ok is false when i refers to a current element.
func (u ChildUpdates[T]) ExitIndex(i int) (prevIndex int, ok bool) {
	kept := len(u.All) - len(u.Removed)
	if i < kept || i >= len(u.All) {
		return 0, false
	}
	return u.IndicesToRemove[i-kept], true
}

// Updates compares two child lists by key.
//
// An element is removed when no element of next shares its key, and added
// when no element of prev shares its key. Matching is existential: with
// duplicate keys, every duplicate counts as present as long as one element
// on the other side carries the key. Unkeyed elements never match, so they
// always appear as both removed (from prev) and added (from next).
//
// prev may be nil. The returned slices are never nil.
func Updates[T any](next, prev []T, keyOf func(T) Key) ChildUpdates[T] {
	nextKeys := keySet(next, keyOf)
	prevKeys := keySet(prev, keyOf)

	u := ChildUpdates[T]{
		IndicesToRemove: []int{},
		IndicesToAdd:    []int{},
		Removed:         []T{},
		Added:           []T{},
	}

	for i, child := range prev {
		if !present(nextKeys, keyOf(child)) {
			u.IndicesToRemove = append(u.IndicesToRemove, i)
			u.Removed = append(u.Removed, child)
		}
	}

	for i, child := range next {
		if !present(prevKeys, keyOf(child)) {
			u.IndicesToAdd = append(u.IndicesToAdd, i)
			u.Added = append(u.Added, child)
		}
	}

	u.All = make([]T, 0, len(next)+len(u.Removed))
	u.All = append(u.All, next...)
	u.All = append(u.All, u.Removed...)

	notifyUpdates(len(u.Added), len(u.Removed))

	return u
}

// ChildrenUpdates compares two VNode child lists using NodeKey.
func ChildrenUpdates(next, prev []*VNode) ChildUpdates[*VNode] {
	return Updates(next, prev, NodeKey)
}

// keySet collects the matchable keys of a list.
func keySet[T any](list []T, keyOf func(T) Key) map[Key]struct{} {
	set := make(map[Key]struct{}, len(list))
	for _, item := range list {
		if k := keyOf(item); k.indexable() {
			set[k] = struct{}{}
		}
	}
	return set
}

func present(set map[Key]struct{}, k Key) bool {
	if !k.indexable() {
		return false
	}
	_, ok := set[k]
	return ok
}
