package opbench

import "github.com/prometheus/client_golang/prometheus"

// CounterCollector exposes the tallies of a live Counter to Prometheus
// as one counter metric per operation kind, labelled by slot name.
//
// It is a read-only view: collecting never mutates the Counter and
// counts nothing itself. Collection must not race with a running
// session; scrape between sessions, or hand the collector a counter
// you have already read out.
type CounterCollector struct {
	counter *Counter
	desc    *prometheus.Desc
}

var _ prometheus.Collector = (*CounterCollector)(nil)

// NewCounterCollector wraps c for registration with a Prometheus
// registry.
func NewCounterCollector(c *Counter) *CounterCollector {
	return &CounterCollector{
		counter: c,
		desc: prometheus.NewDesc(
			"opbench_operations_total",
			"Instrumented operations observed, by operation kind.",
			[]string{"op"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (cc *CounterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.desc
}

// Collect implements prometheus.Collector. Emits one const metric per
// tally slot, in slot order.
func (cc *CounterCollector) Collect(ch chan<- prometheus.Metric) {
	counts := cc.counter.Get()
	names := OpNames()
	for op := OpNew; op < numOps; op++ {
		ch <- prometheus.MustNewConstMetric(
			cc.desc,
			prometheus.CounterValue,
			float64(counts[op]),
			names[op],
		)
	}
}
