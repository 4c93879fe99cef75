package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/nodeweb/internal/network"
)

func sampleNodes() []network.Node {
	return []network.Node{
		{Opacity: 0.2},
		{Opacity: 0.6},
		{Kind: network.KindPointer},
		{Opacity: 1.0},
	}
}

func TestNodeCount(t *testing.T) {
	m := NewNodeCount()
	m.Observe(sampleNodes(), 0)
	if m.Value() != 3 {
		t.Errorf("expected 3 particles, got %v", m.Value())
	}
	m.Observe(sampleNodes()[:1], 0)
	if m.Value() != 1 || m.Peak() != 3 {
		t.Errorf("value=%v peak=%d, want 1 and 3", m.Value(), m.Peak())
	}
	m.Reset()
	if m.Value() != 0 || m.Peak() != 0 {
		t.Error("reset did not clear")
	}
}

func TestEdgeCount(t *testing.T) {
	m := NewEdgeCount()
	if m.Value() != 0 {
		t.Error("empty metric should be 0")
	}
	m.Observe(nil, 4)
	m.Observe(nil, 8)
	if m.Value() != 6 || m.Last() != 8 {
		t.Errorf("mean=%v last=%d, want 6 and 8", m.Value(), m.Last())
	}
}

func TestMeanOpacity(t *testing.T) {
	m := NewMeanOpacity()
	m.Observe(sampleNodes(), 0)
	if math.Abs(m.Value()-0.6) > 1e-12 {
		t.Errorf("mean opacity = %v, want 0.6", m.Value())
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(NewEdgeCount(), 3)
	for _, e := range []int{2, 4, 6, 8} {
		h.Observe(nil, e)
	}
	vals := h.Values()
	want := []float64{3, 4, 5}
	if len(vals) != len(want) {
		t.Fatalf("history = %v, want %v", vals, want)
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("history = %v, want %v", vals, want)
		}
	}
	h.Reset()
	if len(h.Values()) != 0 || h.Value() != 0 {
		t.Error("reset did not clear history")
	}
}

func TestSet(t *testing.T) {
	s := Set{NewNodeCount(), NewEdgeCount()}
	s.OnFrame(sampleNodes(), 5)
	vals := s.Values()
	if vals["nodes"] != 3 || vals["edges"] != 5 {
		t.Errorf("values = %v", vals)
	}
	s.Reset()
	if s.Values()["edges"] != 0 {
		t.Error("reset did not clear")
	}
}
