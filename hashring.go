package hashring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/hashring/pkg/base"
	"github.com/samber/hashring/pkg/metrics"
)

var _ prometheus.Collector = (*HashRing[base.StringNode])(nil)

var (
	// ErrNoServerNodes is returned by Get when the ring holds no node.
	ErrNoServerNodes = base.ErrNoServerNodes
	// ErrRingCorrupted is returned by Get when the ring is in an inconsistent state.
	ErrRingCorrupted = base.ErrRingCorrupted
)

type (
	// StringNode is a node identified by a string.
	StringNode = base.StringNode
	// BytesNode is a node identified by an opaque byte sequence.
	BytesNode = base.BytesNode
)

func newHashRing[N base.Node[N]](ring base.Ring[N], collector metrics.Collector) *HashRing[N] {
	return &HashRing[N]{
		ring:      ring,
		collector: collector,
	}
}

// HashRing assigns items to nodes with consistent hashing.
// Adding or removing a node only moves the items owned by that node.
type HashRing[N base.Node[N]] struct {
	ring base.Ring[N]

	collector metrics.Collector
}

// Add registers a node. Adding a node twice is a no-op.
func (r *HashRing[N]) Add(nodes ...N) {
	for _, node := range nodes {
		r.collector.IncAddition()
		r.ring.Add(node)
	}
}

// Remove unregisters a node. Removing an unknown node is a no-op.
func (r *HashRing[N]) Remove(nodes ...N) {
	for _, node := range nodes {
		r.collector.IncRemoval()
		r.ring.Remove(node)
	}
}

// Get returns the node owning the item.
// Returns ErrNoServerNodes when no node is registered.
func (r *HashRing[N]) Get(item base.Hashable) (N, error) {
	r.collector.IncLookup()

	node, err := r.ring.Get(item)
	if err != nil {
		r.collector.IncLookupError()
	}

	return node, err
}

// GetString is a shortcut for Get(StringNode(item)).
func (r *HashRing[N]) GetString(item string) (N, error) {
	return r.Get(base.StringNode(item))
}

// GetBytes is a shortcut for Get(BytesNode(item)).
func (r *HashRing[N]) GetBytes(item []byte) (N, error) {
	return r.Get(base.BytesNode(item))
}

// MustGet returns the node owning the item. Panics when the lookup fails.
func (r *HashRing[N]) MustGet(item base.Hashable) N {
	node, err := r.Get(item)
	if err != nil {
		panic(err)
	}

	return node
}

// Has checks if a node is registered.
func (r *HashRing[N]) Has(node N) bool {
	return r.ring.Has(node)
}

// Set replaces the membership with the given nodes.
func (r *HashRing[N]) Set(nodes ...N) {
	r.ring.Set(nodes...)
}

// Members returns the registered nodes, ordered by ring position.
func (r *HashRing[N]) Members() []N {
	return r.ring.Members()
}

// Purge removes every node.
func (r *HashRing[N]) Purge() {
	r.ring.Purge()
}

// Count returns the number of registered physical nodes.
func (r *HashRing[N]) Count() int {
	return r.ring.Count()
}

// Len returns the number of virtual nodes on the ring.
func (r *HashRing[N]) Len() int {
	return r.ring.Len()
}

// Replicas returns the number of virtual nodes per physical node.
func (r *HashRing[N]) Replicas() uint32 {
	return r.ring.Replicas()
}

// Spread returns the multiplier applied to virtual node indexes.
func (r *HashRing[N]) Spread() uint32 {
	return r.ring.Spread()
}

// SizeBytes returns the approximate memory held by the ring.
func (r *HashRing[N]) SizeBytes() int64 {
	return r.ring.SizeBytes()
}

// Describe implements the prometheus.Collector interface.
func (r *HashRing[N]) Describe(ch chan<- *prometheus.Desc) {
	if collector, ok := r.collector.(prometheus.Collector); ok {
		collector.Describe(ch)
	}
}

// Collect implements the prometheus.Collector interface.
func (r *HashRing[N]) Collect(ch chan<- prometheus.Metric) {
	collector, ok := r.collector.(prometheus.Collector)
	if !ok {
		return
	}

	// Gauges are refreshed on scrape. SizeBytes walks the whole ring.
	r.collector.UpdateMembers(int64(r.ring.Count()))
	r.collector.UpdateVirtualNodes(int64(r.ring.Len()))
	r.collector.UpdateSizeBytes(r.ring.SizeBytes())

	collector.Collect(ch)
}
