package metrics

// NewCollector creates a Prometheus collector for a ring.
// The name is exported as the "name" label.
func NewCollector(name string, replicas uint32, spread uint32) Collector {
	labels := map[string]string{
		"name": name,
	}

	return NewPrometheusCollector(name, labels, replicas, spread)
}

// Collector defines the interface for metric collection operations.
// This allows for both real Prometheus metrics and no-op implementations.
type Collector interface {
	IncAddition()
	IncRemoval()
	IncLookup()
	IncLookupError()
	UpdateMembers(count int64)
	UpdateVirtualNodes(count int64)
	UpdateSizeBytes(bytes int64)
}
