package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the Store.
type Metrics struct {
	// Committed snapshots
	Snapshots prometheus.Counter

	// Saved storage items by contract name
	StorageItems *prometheus.CounterVec

	// Saved notifications by name
	Events *prometheus.CounterVec
}

// NewMetrics creates Metrics registered in the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Snapshots: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ulpin",
			Subsystem: "snapshot",
			Name:      "snapshots_total",
			Help:      "Total committed contract snapshots",
		}),
		StorageItems: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ulpin",
			Subsystem: "snapshot",
			Name:      "storage_items_total",
			Help:      "Total saved contract storage items by contract",
		}, []string{"contract"}),
		Events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ulpin",
			Subsystem: "snapshot",
			Name:      "events_total",
			Help:      "Total saved contract notifications by name",
		}, []string{"name"}),
	}
}

func (m *Metrics) addSnapshot(storageItems map[string]int) {
	if m == nil {
		return
	}
	m.Snapshots.Inc()
	for name, n := range storageItems {
		m.StorageItems.WithLabelValues(name).Add(float64(n))
	}
}

func (m *Metrics) addEvents(counts map[string]int) {
	if m == nil {
		return
	}
	for name, n := range counts {
		m.Events.WithLabelValues(name).Add(float64(n))
	}
}
