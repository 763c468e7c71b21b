package hashring

import (
	"github.com/samber/hashring/pkg/base"
	"github.com/samber/hashring/pkg/consistent"
	"github.com/samber/hashring/pkg/hasher"
	"github.com/samber/hashring/pkg/metrics"
	"github.com/samber/hashring/pkg/safe"
)

// NewHashRing starts the configuration of a ring.
// Defaults: 11 virtual nodes per node, spread 7, BLAKE2s positions, locking enabled, no metrics.
func NewHashRing[N base.Node[N]]() HashRingConfig[N] {
	return HashRingConfig[N]{
		replicas: consistent.DefaultReplicas,
		spread:   consistent.DefaultSpread,
		hasher:   hasher.Blake2s,
	}
}

// HashRingConfig is an immutable builder: each With* method returns a modified copy.
type HashRingConfig[N base.Node[N]] struct {
	replicas uint32
	spread   uint32
	hasher   hasher.Hasher

	lockingDisabled bool

	prometheusMetricsEnabled bool
	name                     string
}

// WithReplicas sets the number of virtual nodes per physical node.
// More replicas smooth the distribution at the cost of memory.
func (cfg HashRingConfig[N]) WithReplicas(replicas uint32) HashRingConfig[N] {
	assertValue(replicas > 0, "replicas must be a positive value")

	cfg.replicas = replicas
	return cfg
}

// WithSpread sets the multiplier applied to virtual node indexes before hashing.
func (cfg HashRingConfig[N]) WithSpread(spread uint32) HashRingConfig[N] {
	assertValue(spread > 0, "spread must be a positive value")

	cfg.spread = spread
	return cfg
}

// WithHasher replaces the default BLAKE2s hasher.
// Rings using different hashers do not agree on item placement.
func (cfg HashRingConfig[N]) WithHasher(h hasher.Hasher) HashRingConfig[N] {
	assertValue(h != nil, "hasher must not be nil")

	cfg.hasher = h
	return cfg
}

// WithoutLocking disables the read-write mutex. The ring must then be used from a single goroutine.
func (cfg HashRingConfig[N]) WithoutLocking() HashRingConfig[N] {
	cfg.lockingDisabled = true
	return cfg
}

// WithPrometheusMetrics enables metric collection. The ring must be registered
// to a prometheus.Registerer to expose them.
func (cfg HashRingConfig[N]) WithPrometheusMetrics(name string) HashRingConfig[N] {
	assertValue(name != "", "name must not be empty")

	cfg.prometheusMetricsEnabled = true
	cfg.name = name
	return cfg
}

// Build creates the ring.
func (cfg HashRingConfig[N]) Build() *HashRing[N] {
	// metrics are scraped from another goroutine
	assertValue(!cfg.prometheusMetricsEnabled || !cfg.lockingDisabled, "lockingDisabled and prometheusMetrics cannot be used together")

	var ring base.Ring[N] = consistent.New[N](consistent.Config{
		Replicas: cfg.replicas,
		Spread:   cfg.spread,
		Hasher:   cfg.hasher,
	})

	if !cfg.lockingDisabled {
		ring = safe.NewSafeRing[N](ring)
	}

	var collector metrics.Collector = &metrics.NoOpCollector{}
	if cfg.prometheusMetricsEnabled {
		collector = metrics.NewCollector(cfg.name, cfg.replicas, cfg.spread)
	}

	return newHashRing(ring, collector)
}
