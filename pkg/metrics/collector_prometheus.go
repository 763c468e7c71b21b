package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ Collector            = (*PrometheusCollector)(nil)
	_ prometheus.Collector = (*PrometheusCollector)(nil)
)

// PrometheusCollector implements Collector using Prometheus metrics.
type PrometheusCollector struct {
	name   string
	labels prometheus.Labels

	// Counters - use atomic operations for lock-free performance
	additionCount    int64
	removalCount     int64
	lookupCount      int64
	lookupErrorCount int64

	// Gauges
	members      int64
	virtualNodes int64
	sizeBytes    int64

	// Static configuration gauges
	settingsReplicas prometheus.Gauge
	settingsSpread   prometheus.Gauge

	// Prometheus metric descriptors
	additionDesc     *prometheus.Desc
	removalDesc      *prometheus.Desc
	lookupDesc       *prometheus.Desc
	lookupErrorDesc  *prometheus.Desc
	membersDesc      *prometheus.Desc
	virtualNodesDesc *prometheus.Desc
	sizeDesc         *prometheus.Desc
}

// NewPrometheusCollector creates a new Prometheus-based metric collector.
func NewPrometheusCollector(name string, labels map[string]string, replicas uint32, spread uint32) *PrometheusCollector {
	collector := &PrometheusCollector{
		name:   name,
		labels: prometheus.Labels(labels),
	}

	collector.additionDesc = prometheus.NewDesc(
		"hashring_addition_total",
		"Total number of node additions requested",
		nil, labels,
	)
	collector.removalDesc = prometheus.NewDesc(
		"hashring_removal_total",
		"Total number of node removals requested",
		nil, labels,
	)
	collector.lookupDesc = prometheus.NewDesc(
		"hashring_lookup_total",
		"Total number of item lookups",
		nil, labels,
	)
	collector.lookupErrorDesc = prometheus.NewDesc(
		"hashring_lookup_error_total",
		"Total number of failed item lookups",
		nil, labels,
	)
	collector.membersDesc = prometheus.NewDesc(
		"hashring_members",
		"Current number of physical nodes",
		nil, labels,
	)
	collector.virtualNodesDesc = prometheus.NewDesc(
		"hashring_virtual_nodes",
		"Current number of virtual nodes on the ring",
		nil, labels,
	)
	collector.sizeDesc = prometheus.NewDesc(
		"hashring_size_bytes",
		"Approximate size of the ring in bytes",
		nil, labels,
	)

	//
	// Ring settings
	//

	collector.settingsReplicas = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "hashring_settings_replicas",
		Help:        "Number of virtual nodes per physical node",
		ConstLabels: labels,
	})
	collector.settingsReplicas.Set(float64(replicas))

	collector.settingsSpread = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "hashring_settings_spread",
		Help:        "Multiplier applied to virtual node indexes",
		ConstLabels: labels,
	})
	collector.settingsSpread.Set(float64(spread))

	return collector
}

// IncAddition atomically increments the addition counter.
func (p *PrometheusCollector) IncAddition() {
	atomic.AddInt64(&p.additionCount, 1)
}

// IncRemoval atomically increments the removal counter.
func (p *PrometheusCollector) IncRemoval() {
	atomic.AddInt64(&p.removalCount, 1)
}

// IncLookup atomically increments the lookup counter.
func (p *PrometheusCollector) IncLookup() {
	atomic.AddInt64(&p.lookupCount, 1)
}

// IncLookupError atomically increments the failed lookup counter.
func (p *PrometheusCollector) IncLookupError() {
	atomic.AddInt64(&p.lookupErrorCount, 1)
}

// UpdateMembers atomically updates the number of physical nodes.
func (p *PrometheusCollector) UpdateMembers(count int64) {
	atomic.StoreInt64(&p.members, count)
}

// UpdateVirtualNodes atomically updates the number of virtual nodes.
func (p *PrometheusCollector) UpdateVirtualNodes(count int64) {
	atomic.StoreInt64(&p.virtualNodes, count)
}

// UpdateSizeBytes atomically updates the ring size in bytes.
func (p *PrometheusCollector) UpdateSizeBytes(bytes int64) {
	atomic.StoreInt64(&p.sizeBytes, bytes)
}

// Describe implements prometheus.Collector interface.
func (p *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.additionDesc
	ch <- p.removalDesc
	ch <- p.lookupDesc
	ch <- p.lookupErrorDesc
	ch <- p.membersDesc
	ch <- p.virtualNodesDesc
	ch <- p.sizeDesc
	ch <- p.settingsReplicas.Desc()
	ch <- p.settingsSpread.Desc()
}

// Collect implements prometheus.Collector interface.
func (p *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(p.additionDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.additionCount)))
	ch <- prometheus.MustNewConstMetric(p.removalDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.removalCount)))
	ch <- prometheus.MustNewConstMetric(p.lookupDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.lookupCount)))
	ch <- prometheus.MustNewConstMetric(p.lookupErrorDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.lookupErrorCount)))

	ch <- prometheus.MustNewConstMetric(p.membersDesc, prometheus.GaugeValue, float64(atomic.LoadInt64(&p.members)))
	ch <- prometheus.MustNewConstMetric(p.virtualNodesDesc, prometheus.GaugeValue, float64(atomic.LoadInt64(&p.virtualNodes)))
	ch <- prometheus.MustNewConstMetric(p.sizeDesc, prometheus.GaugeValue, float64(atomic.LoadInt64(&p.sizeBytes)))

	p.settingsReplicas.Collect(ch)
	p.settingsSpread.Collect(ch)
}
