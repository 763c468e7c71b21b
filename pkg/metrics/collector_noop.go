package metrics

var _ Collector = (*NoOpCollector)(nil)

// NoOpCollector is a no-op implementation of Collector that does nothing.
// This provides better performance than conditional checks when metrics are disabled.
type NoOpCollector struct{}

func (n *NoOpCollector) IncAddition()                   {}
func (n *NoOpCollector) IncRemoval()                    {}
func (n *NoOpCollector) IncLookup()                     {}
func (n *NoOpCollector) IncLookupError()                {}
func (n *NoOpCollector) UpdateMembers(count int64)      {}
func (n *NoOpCollector) UpdateVirtualNodes(count int64) {}
func (n *NoOpCollector) UpdateSizeBytes(bytes int64)    {}
