package vdom

import (
	"math"
	"reflect"
	"sync"
	"testing"
)

func keys(nodes []*VNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = NodeKey(n).String()
	}
	return out
}

func li(key string) *VNode {
	return Keyed(key, El("li", key))
}

func TestChildrenUpdatesEmptyPrev(t *testing.T) {
	next := []*VNode{li("a"), li("b"), El("li")}

	for _, prev := range [][]*VNode{nil, {}} {
		u := ChildrenUpdates(next, prev)

		if len(u.IndicesToRemove) != 0 || len(u.Removed) != 0 {
			t.Errorf("expected no removals, got %v", u.IndicesToRemove)
		}
		if !reflect.DeepEqual(u.IndicesToAdd, []int{0, 1, 2}) {
			t.Errorf("IndicesToAdd = %v, want [0 1 2]", u.IndicesToAdd)
		}
		if !reflect.DeepEqual(u.Added, next) {
			t.Errorf("Added = %v, want next", keys(u.Added))
		}
		if !reflect.DeepEqual(u.All, next) {
			t.Errorf("All = %v, want next", keys(u.All))
		}
	}
}

func TestChildrenUpdatesSameKeys(t *testing.T) {
	prev := []*VNode{li("a"), li("b"), li("c")}
	next := []*VNode{li("a"), li("b"), li("c")}

	u := ChildrenUpdates(next, prev)

	if !u.Empty() {
		t.Errorf("expected empty updates, got remove=%v add=%v", u.IndicesToRemove, u.IndicesToAdd)
	}
	if len(u.All) != 3 {
		t.Errorf("len(All) = %d, want 3", len(u.All))
	}
}

func TestChildrenUpdatesReorderIsNotAChange(t *testing.T) {
	prev := []*VNode{li("a"), li("b"), li("c")}
	next := []*VNode{li("c"), li("a"), li("b")}

	if u := ChildrenUpdates(next, prev); !u.Empty() {
		t.Errorf("reorder produced updates: remove=%v add=%v", u.IndicesToRemove, u.IndicesToAdd)
	}
}

func TestChildrenUpdatesAddAndRemove(t *testing.T) {
	a, b1, b2, c := li("a"), li("b"), li("b"), li("c")
	prev := []*VNode{a, b1}
	next := []*VNode{b2, c}

	u := ChildrenUpdates(next, prev)

	if !reflect.DeepEqual(u.IndicesToRemove, []int{0}) {
		t.Errorf("IndicesToRemove = %v, want [0]", u.IndicesToRemove)
	}
	if !reflect.DeepEqual(u.IndicesToAdd, []int{1}) {
		t.Errorf("IndicesToAdd = %v, want [1]", u.IndicesToAdd)
	}
	if len(u.Removed) != 1 || u.Removed[0] != a {
		t.Errorf("Removed = %v, want [a]", keys(u.Removed))
	}
	if len(u.Added) != 1 || u.Added[0] != c {
		t.Errorf("Added = %v, want [c]", keys(u.Added))
	}

	want := []*VNode{b2, c, a}
	if len(u.All) != len(want) {
		t.Fatalf("All = %v", keys(u.All))
	}
	for i := range want {
		if u.All[i] != want[i] {
			t.Errorf("All[%d] = %s, want %s", i, NodeKey(u.All[i]), NodeKey(want[i]))
		}
	}
}

func TestChildrenUpdatesUnkeyedNeverMatch(t *testing.T) {
	prev := []*VNode{El("li")}
	next := []*VNode{El("li")}

	u := ChildrenUpdates(next, prev)

	if !reflect.DeepEqual(u.IndicesToRemove, []int{0}) {
		t.Errorf("IndicesToRemove = %v, want [0]", u.IndicesToRemove)
	}
	if !reflect.DeepEqual(u.IndicesToAdd, []int{0}) {
		t.Errorf("IndicesToAdd = %v, want [0]", u.IndicesToAdd)
	}
	if len(u.All) != 2 {
		t.Errorf("len(All) = %d, want 2", len(u.All))
	}
}

func TestChildrenUpdatesKeyTypesAreStrict(t *testing.T) {
	prev := []*VNode{Keyed(1, El("li")), Keyed("2", El("li")), Keyed(3, El("li"))}
	next := []*VNode{Keyed("1", El("li")), Keyed(2, El("li")), Keyed(3.0, El("li"))}

	u := ChildrenUpdates(next, prev)

	if !reflect.DeepEqual(u.IndicesToRemove, []int{0, 1}) {
		t.Errorf("IndicesToRemove = %v, want [0 1]", u.IndicesToRemove)
	}
	if !reflect.DeepEqual(u.IndicesToAdd, []int{0, 1}) {
		t.Errorf("IndicesToAdd = %v, want [0 1]", u.IndicesToAdd)
	}
}

func TestChildrenUpdatesPropKeyFallback(t *testing.T) {
	prev := []*VNode{El("li", A("key", "x"))}
	next := []*VNode{{Kind: KindElement, Tag: "li", Props: Props{"key": "x"}}}

	if u := ChildrenUpdates(next, prev); !u.Empty() {
		t.Errorf("prop keys should match: remove=%v add=%v", u.IndicesToRemove, u.IndicesToAdd)
	}
}

func TestChildrenUpdatesNaNNeverMatches(t *testing.T) {
	prev := []*VNode{Keyed(math.NaN(), El("li"))}
	next := []*VNode{Keyed(math.NaN(), El("li"))}

	u := ChildrenUpdates(next, prev)
	if len(u.IndicesToRemove) != 1 || len(u.IndicesToAdd) != 1 {
		t.Errorf("NaN keys matched: remove=%v add=%v", u.IndicesToRemove, u.IndicesToAdd)
	}
}

func TestChildrenUpdatesDuplicateKeysAreExistential(t *testing.T) {
	prev := []*VNode{li("a"), li("a")}
	next := []*VNode{li("a")}

	u := ChildrenUpdates(next, prev)

	// Both old "a" elements count as present because one new "a" exists.
	if !u.Empty() {
		t.Errorf("remove=%v add=%v, want none", u.IndicesToRemove, u.IndicesToAdd)
	}
}

func TestChildrenUpdatesAllDoesNotAliasNext(t *testing.T) {
	next := make([]*VNode, 1, 8)
	next[0] = li("b")
	prev := []*VNode{li("a")}

	u := ChildrenUpdates(next, prev)
	u.All[0] = nil

	if next[0] == nil {
		t.Error("All shares backing storage with next")
	}
}

func TestChildrenUpdatesNilSlicesAreEmpty(t *testing.T) {
	u := ChildrenUpdates(nil, nil)
	if u.IndicesToRemove == nil || u.IndicesToAdd == nil || u.Removed == nil || u.Added == nil || u.All == nil {
		t.Errorf("expected non-nil empty slices, got %+v", u)
	}
}

func TestUpdatesGeneric(t *testing.T) {
	type item struct {
		id   int
		name string
	}
	keyOf := func(it item) Key {
		if it.id == 0 {
			return NoKey
		}
		return IntKey(int64(it.id))
	}

	prev := []item{{1, "one"}, {2, "two"}, {0, "anon"}}
	next := []item{{2, "two"}, {3, "three"}}

	u := Updates(next, prev, keyOf)

	if !reflect.DeepEqual(u.IndicesToRemove, []int{0, 2}) {
		t.Errorf("IndicesToRemove = %v, want [0 2]", u.IndicesToRemove)
	}
	if !reflect.DeepEqual(u.IndicesToAdd, []int{1}) {
		t.Errorf("IndicesToAdd = %v, want [1]", u.IndicesToAdd)
	}
	wantAll := []item{{2, "two"}, {3, "three"}, {1, "one"}, {0, "anon"}}
	if !reflect.DeepEqual(u.All, wantAll) {
		t.Errorf("All = %v, want %v", u.All, wantAll)
	}
}

func TestExitIndex(t *testing.T) {
	prev := []*VNode{li("a"), li("b"), li("c")}
	next := []*VNode{li("b")}

	u := ChildrenUpdates(next, prev)

	tests := []struct {
		all    int
		want   int
		wantOK bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 2, true},
		{3, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := u.ExitIndex(tt.all)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ExitIndex(%d) = %d, %v; want %d, %v", tt.all, got, ok, tt.want, tt.wantOK)
		}
	}
}

type countingObserver struct {
	mu      sync.Mutex
	calls   int
	added   int
	removed int
}

func (o *countingObserver) ObserveChildUpdates(added, removed int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	o.added += added
	o.removed += removed
}

func TestUpdatesObserver(t *testing.T) {
	obs := &countingObserver{}
	SetUpdatesObserver(obs)
	defer SetUpdatesObserver(nil)

	ChildrenUpdates([]*VNode{li("b"), li("c")}, []*VNode{li("a"), li("b")})

	if obs.calls != 1 || obs.added != 1 || obs.removed != 1 {
		t.Errorf("observer saw calls=%d added=%d removed=%d", obs.calls, obs.added, obs.removed)
	}

	SetUpdatesObserver(nil)
	ChildrenUpdates([]*VNode{li("x")}, nil)
	if obs.calls != 1 {
		t.Error("observer called after removal")
	}
}
