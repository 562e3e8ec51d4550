package vango

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
)

func TestDepsMemoCachesUntilDepsChange(t *testing.T) {
	var m DepsMemo[int]
	computations := 0
	compute := func(v int) func() int {
		return func() int {
			computations++
			return v * 2
		}
	}

	if got := m.Get([]any{1, "a"}, compute(1)); got != 2 {
		t.Errorf("first Get = %d, want 2", got)
	}
	if got := m.Get([]any{1, "a"}, compute(100)); got != 2 {
		t.Errorf("cached Get = %d, want 2", got)
	}
	if computations != 1 {
		t.Errorf("computations = %d, want 1", computations)
	}

	if got := m.Get([]any{1, "b"}, compute(5)); got != 10 {
		t.Errorf("Get after change = %d, want 10", got)
	}
	if computations != 2 {
		t.Errorf("computations = %d, want 2", computations)
	}
}

func TestDepsMemoLengthChange(t *testing.T) {
	var m DepsMemo[string]
	calls := 0
	compute := func() string { calls++; return "v" }

	m.Get([]any{1}, compute)
	m.Get([]any{1, 2}, compute)
	m.Get([]any{1, 2}, compute)
	m.Get(nil, compute)

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDepsMemoDoesNotAliasDeps(t *testing.T) {
	var m DepsMemo[int]
	deps := []any{1}
	calls := 0

	m.Get(deps, func() int { calls++; return 0 })
	deps[0] = 2
	m.Get([]any{1}, func() int { calls++; return 0 })

	if calls != 1 {
		t.Errorf("mutating the caller's deps slice affected the cache, calls = %d", calls)
	}
}

func TestDepsMemoReset(t *testing.T) {
	var m DepsMemo[int]
	calls := 0
	m.Get(nil, func() int { calls++; return 1 })
	m.Reset()
	m.Get(nil, func() int { calls++; return 1 })

	if calls != 2 {
		t.Errorf("calls = %d, want 2 after Reset", calls)
	}
}

func TestDepsEqual(t *testing.T) {
	m1 := map[string]int{"a": 1}
	m2 := map[string]int{"a": 1}
	s := []int{1, 2, 3}
	p := new(int)
	fn := func() {}
	var nilFn func()

	type point struct{ X, Y int }
	type withSlice struct{ S []int }

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil value", nil, 0, false},
		{"ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"int vs int64", 1, int64(1), false},
		{"strings", "a", "a", true},
		{"nan", math.NaN(), math.NaN(), true},
		{"floats", 1.5, 1.5, true},
		{"same map", m1, m1, true},
		{"equal maps", m1, m2, false},
		{"same slice", s, s, true},
		{"resliced", s, s[:2], false},
		{"same pointer", p, p, true},
		{"different pointers", p, new(int), false},
		{"func", fn, fn, false},
		{"nil funcs", nilFn, nilFn, true},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"uncomparable structs", withSlice{[]int{1}}, withSlice{[]int{1}}, true},
		{"absent", absentOption{}, absentOption{}, true},
		{"absent vs nil", absentOption{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DepsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("DepsEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUseMemoAcrossRenders(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	computations := 0
	var results []int

	render := func(n int) {
		owner.Render(func() {
			results = append(results, UseMemo(func() int {
				computations++
				return n * n
			}, n))
		})
	}

	render(3)
	render(3)
	render(4)

	if computations != 2 {
		t.Errorf("computations = %d, want 2", computations)
	}
	want := []int{9, 9, 16}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("render %d = %d, want %d", i, results[i], want[i])
		}
	}
}

func TestUseMemoSlotsArePerOwner(t *testing.T) {
	a, b := NewOwner(nil), NewOwner(nil)
	calls := 0

	for _, o := range []*Owner{a, b, a, b} {
		o.Render(func() {
			UseMemo(func() int { calls++; return 0 }, "same")
		})
	}

	if calls != 2 {
		t.Errorf("calls = %d, want one per owner", calls)
	}
}

func TestUseOnce(t *testing.T) {
	owner := NewOwner(nil)
	calls := 0
	var first, second *int

	owner.Render(func() {
		first = UseOnce(func() *int { calls++; return new(int) })
	})
	owner.Render(func() {
		second = UseOnce(func() *int { calls++; return new(int) })
	})

	if calls != 1 || first != second {
		t.Errorf("UseOnce recomputed: calls=%d same=%v", calls, first == second)
	}
}

type recordingMemoObserver struct {
	mu     sync.Mutex
	hits   map[string]int
	misses map[string]int
}

func newRecordingMemoObserver() *recordingMemoObserver {
	return &recordingMemoObserver{hits: map[string]int{}, misses: map[string]int{}}
}

func (r *recordingMemoObserver) ObserveMemo(kind string, recomputed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if recomputed {
		r.misses[kind]++
	} else {
		r.hits[kind]++
	}
}

func TestMemoObserver(t *testing.T) {
	obs := newRecordingMemoObserver()
	SetMemoObserver(obs)
	defer SetMemoObserver(nil)

	var m DepsMemo[int]
	m.Get([]any{1}, func() int { return 1 })
	m.Get([]any{1}, func() int { return 1 })
	m.Get([]any{2}, func() int { return 2 })

	if obs.misses[MemoKindDeps] != 2 || obs.hits[MemoKindDeps] != 1 {
		t.Errorf("observer saw hits=%v misses=%v", obs.hits, obs.misses)
	}
}

func TestDebugLogRecompute(t *testing.T) {
	var buf bytes.Buffer
	old := Debug
	Debug = DebugConfig{
		LogRecompute: true,
		Logger:       slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	defer func() { Debug = old }()

	var m DepsMemo[int]
	m.Get([]any{1, 2}, func() int { return 0 })
	m.Get([]any{1, 3}, func() int { return 0 })

	out := buf.String()
	if !strings.Contains(out, "memo computed") {
		t.Errorf("missing first computation record:\n%s", out)
	}
	if !strings.Contains(out, "memo recomputed") || !strings.Contains(out, "dep=1") {
		t.Errorf("missing recompute record with changed dep:\n%s", out)
	}
}
