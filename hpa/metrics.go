package hpa

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search kinds used as the "kind" label of hierpath_searches_total.
const (
	searchGrid     = "grid"
	searchAbstract = "abstract"
)

// Metrics holds the Prometheus collectors updated while building and
// querying a Map. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Searches counts A* runs, labeled by kind (grid or abstract).
	Searches *prometheus.CounterVec

	// EdgesAdded counts abstract edges created, labeled by level.
	EdgesAdded *prometheus.CounterVec

	// EmptyGroups counts cluster groups skipped for lack of entrances.
	EmptyGroups prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Searches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hierpath_searches_total",
				Help: "Total number of A* searches run by the hierarchical map",
			},
			[]string{"kind"},
		),
		EdgesAdded: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hierpath_edges_added_total",
				Help: "Total number of abstract edges added",
			},
			[]string{"level"},
		),
		EmptyGroups: f.NewCounter(
			prometheus.CounterOpts{
				Name: "hierpath_empty_groups_total",
				Help: "Cluster groups skipped because no entrance reaches their level",
			},
		),
	}
}

func (m *Metrics) search(kind string) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(kind).Inc()
}

func (m *Metrics) edges(level, n int) {
	if m == nil {
		return
	}
	m.EdgesAdded.WithLabelValues(strconv.Itoa(level)).Add(float64(n))
}

func (m *Metrics) emptyGroup() {
	if m == nil {
		return
	}
	m.EmptyGroups.Inc()
}
