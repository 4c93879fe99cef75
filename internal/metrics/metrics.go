package metrics

import "github.com/san-kum/nodeweb/internal/network"

// Metric accumulates a value over observed frames.
type Metric interface {
	Name() string
	Observe(nodes []network.Node, edges int)
	Value() float64
	Reset()
}

// NodeCount tracks the number of ordinary nodes, ignoring the pointer.
type NodeCount struct {
	last int
	peak int
}

// NewNodeCount returns a zeroed node counter.
func NewNodeCount() *NodeCount { return &NodeCount{} }

func (m *NodeCount) Name() string { return "nodes" }

func (m *NodeCount) Observe(nodes []network.Node, edges int) {
	m.last = 0
	for i := range nodes {
		if !nodes[i].IsPointer() {
			m.last++
		}
	}
	m.peak = max(m.peak, m.last)
}

func (m *NodeCount) Value() float64 { return float64(m.last) }

// Peak is the largest count seen since the last Reset.
func (m *NodeCount) Peak() int { return m.peak }

func (m *NodeCount) Reset() {
	m.last = 0
	m.peak = 0
}

// EdgeCount averages the number of edges drawn per frame.
type EdgeCount struct {
	total   int
	samples int
	last    int
}

// NewEdgeCount returns a zeroed edge counter.
func NewEdgeCount() *EdgeCount { return &EdgeCount{} }

func (m *EdgeCount) Name() string { return "edges" }

func (m *EdgeCount) Observe(nodes []network.Node, edges int) {
	m.last = edges
	m.total += edges
	m.samples++
}

// Value is the mean number of edges per frame.
func (m *EdgeCount) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

// Last is the edge count of the most recent frame.
func (m *EdgeCount) Last() int { return m.last }

func (m *EdgeCount) Reset() {
	m.total = 0
	m.samples = 0
	m.last = 0
}

// MeanOpacity averages node opacity over every observed frame.
type MeanOpacity struct {
	sum     float64
	samples int
}

// NewMeanOpacity returns a zeroed opacity average.
func NewMeanOpacity() *MeanOpacity { return &MeanOpacity{} }

func (m *MeanOpacity) Name() string { return "mean_opacity" }

func (m *MeanOpacity) Observe(nodes []network.Node, edges int) {
	for i := range nodes {
		if nodes[i].IsPointer() {
			continue
		}
		m.sum += nodes[i].Opacity
		m.samples++
	}
}

func (m *MeanOpacity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanOpacity) Reset() {
	m.sum = 0
	m.samples = 0
}

// History keeps the last capacity values of a metric, one per frame.
type History struct {
	metric   Metric
	capacity int
	values   []float64
}

// NewHistory wraps m and records its value after every frame.
func NewHistory(m Metric, capacity int) *History {
	return &History{metric: m, capacity: capacity, values: make([]float64, 0, capacity)}
}

func (h *History) Name() string { return h.metric.Name() }

func (h *History) Observe(nodes []network.Node, edges int) {
	h.metric.Observe(nodes, edges)
	h.values = append(h.values, h.metric.Value())
	if len(h.values) > h.capacity {
		h.values = h.values[1:]
	}
}

func (h *History) Value() float64 { return h.metric.Value() }

// Values returns the recorded values, oldest first. The slice is reused.
func (h *History) Values() []float64 { return h.values }

func (h *History) Reset() {
	h.metric.Reset()
	h.values = h.values[:0]
}

// Set fans one frame out to several metrics. It satisfies scene.Observer.
type Set []Metric

func (s Set) OnFrame(nodes []network.Node, edges int) {
	for _, m := range s {
		m.Observe(nodes, edges)
	}
}

// Values maps each metric name to its current value.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}
