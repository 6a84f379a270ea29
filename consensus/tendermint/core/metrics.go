package core

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the observable side effects named in §6: a gauge tracking
// the height currently being driven, and a counter of sync preemptions.
type Metrics struct {
	height    prometheus.Gauge
	syncCount prometheus.Counter
}

// NewMetrics builds a Metrics and registers it against reg. Passing nil
// returns metrics that are tracked in-process but never exposed, which is
// what tests that construct several managers concurrently want (so they
// don't collide registering against prometheus.DefaultRegisterer).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "consensus",
			Name:      "height",
			Help:      "Height the multi-height manager is currently driving consensus for.",
		}),
		syncCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "consensus",
			Name:      "sync_count",
			Help:      "Number of times an out-of-band sync signal preempted an in-progress height.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.height, m.syncCount)
	}
	return m
}

// NewNopMetrics returns metrics not registered against any registerer.
func NewNopMetrics() *Metrics {
	return NewMetrics(nil)
}

func (m *Metrics) SetHeight(h Height) {
	m.height.Set(float64(h))
}

func (m *Metrics) IncSyncCount() {
	m.syncCount.Inc()
}
