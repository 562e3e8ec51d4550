package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/reconcile/pkg/vango"
	"github.com/vango-dev/reconcile/pkg/vdom"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestObserveChildUpdates(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))

	m.ObserveChildUpdates(2, 1)
	m.ObserveChildUpdates(0, 3)

	if got := metricCounterValue(t, m.updatesTotal); got != 2 {
		t.Errorf("updates = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.childrenAdded); got != 2 {
		t.Errorf("added = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.childrenRemoved); got != 4 {
		t.Errorf("removed = %v, want 4", got)
	}
	if got := metricHistogramCount(t, m.childrenChanged); got != 2 {
		t.Errorf("histogram samples = %d, want 2", got)
	}
}

func TestObserveMemo(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))

	m.ObserveMemo(vango.MemoKindOptions, true)
	m.ObserveMemo(vango.MemoKindOptions, false)
	m.ObserveMemo(vango.MemoKindOptions, false)

	if got := metricCounterValue(t, m.memoLookups.WithLabelValues("options", "hit")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.memoLookups.WithLabelValues("options", "recompute")); got != 1 {
		t.Errorf("recomputes = %v, want 1", got)
	}
}

func TestInstall(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))
	m.Install()
	defer Uninstall()

	prev := []*vdom.VNode{vdom.Keyed("a", vdom.El("li"))}
	next := []*vdom.VNode{vdom.Keyed("b", vdom.El("li"))}
	vdom.ChildrenUpdates(next, prev)

	owner := vango.NewOwner(nil)
	owner.Render(func() {
		vango.UseOptions(nil, vango.Options{"a": 1})
	})

	if got := metricCounterValue(t, m.updatesTotal); got != 1 {
		t.Errorf("updates = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.memoLookups.WithLabelValues("options", "recompute")); got != 1 {
		t.Errorf("options recomputes = %v, want 1", got)
	}

	Uninstall()
	vdom.ChildrenUpdates(next, prev)
	if got := metricCounterValue(t, m.updatesTotal); got != 1 {
		t.Errorf("updates after Uninstall = %v, want 1", got)
	}
}

func TestCustomNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("ui"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{1, 2}),
	)
	m.ObserveChildUpdates(1, 0)
	m.ObserveMemo("memo", true)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"app_ui_child_updates_total",
		"app_ui_children_added_total",
		"app_ui_children_removed_total",
		"app_ui_children_changed",
		"app_ui_memo_lookups_total",
	} {
		if !names[want] {
			t.Errorf("missing metric family %s (have %v)", want, names)
		}
	}
}
