package consistent

import (
	"github.com/samber/hashring/internal"
	"github.com/samber/hashring/pkg/base"
	"github.com/samber/hashring/pkg/hasher"
	"github.com/samber/hashring/pkg/store"
)

// New creates an empty consistent hashing ring.
// Panics if replicas or spread is zero.
func New[N base.Node[N]](cfg Config) *ConsistentHash[N] {
	if cfg.Replicas == 0 {
		panic("replicas must be greater than 0")
	}
	if cfg.Spread == 0 {
		panic("spread must be greater than 0")
	}
	if cfg.Hasher == nil {
		cfg.Hasher = hasher.Blake2s
	}

	return &ConsistentHash[N]{
		replicas: cfg.Replicas,
		spread:   cfg.Spread,
		hash:     cfg.Hasher,
		nodes:    store.New[N](),
		count:    0,
	}
}

// ConsistentHash maps items to physical nodes through virtual nodes placed on a 64 bit ring.
// It is not safe for concurrent use. See pkg/safe.
type ConsistentHash[N base.Node[N]] struct {
	noCopy internal.NoCopy

	replicas uint32
	spread   uint32
	hash     hasher.Hasher

	// virtual node position -> physical node
	nodes *store.Store[N]
	// number of physical nodes
	count int
}

var _ base.Ring[base.StringNode] = (*ConsistentHash[base.StringNode])(nil)

// Add registers a node and its virtual nodes. It is a no-op if the node is already present.
func (c *ConsistentHash[N]) Add(node N) {
	v := node.Bytes()
	if c.nodes.Has(c.virtualKey(v, representative)) {
		return
	}

	c.count++
	for i := representative; i < c.replicas; i++ {
		// collisions with another node's virtual node are resolved by overwriting
		c.nodes.Set(c.virtualKey(v, i), node.Clone())
	}
}

// Remove unregisters a node and its virtual nodes. It is a no-op if the node is absent.
func (c *ConsistentHash[N]) Remove(node N) {
	v := node.Bytes()
	if !c.nodes.Has(c.virtualKey(v, representative)) {
		return
	}

	// a foreign virtual node colliding with our representative could make us miss
	// an Add and still see a Remove
	if c.count > 0 {
		c.count--
	}
	for i := representative; i < c.replicas; i++ {
		c.nodes.Delete(c.virtualKey(v, i))
	}
}

// Get returns the node owning the item. The item is hashed once, without replica
// spreading, then the ring is walked clockwise to the first virtual node.
func (c *ConsistentHash[N]) Get(item base.Hashable) (N, error) {
	if c.nodes.Len() == 0 {
		return zero[N](), base.ErrNoServerNodes
	}

	_, node, ok := c.nodes.Successor(c.hash(item.Bytes()))
	if !ok {
		return zero[N](), base.ErrRingCorrupted
	}

	return node.Clone(), nil
}

// Has checks if a node is registered.
func (c *ConsistentHash[N]) Has(node N) bool {
	return c.nodes.Has(c.virtualKey(node.Bytes(), representative))
}

// Set replaces the membership with the given nodes. Duplicates are added once.
func (c *ConsistentHash[N]) Set(nodes ...N) {
	c.Purge()
	for _, node := range nodes {
		c.Add(node)
	}
}

// Members returns the physical nodes, ordered by the position of their representative virtual node.
// Time complexity: O(n) hashes where n is the number of virtual nodes.
func (c *ConsistentHash[N]) Members() []N {
	members := make([]N, 0, c.count)
	c.nodes.Range(func(position uint64, node N) bool {
		if c.virtualKey(node.Bytes(), representative) == position {
			members = append(members, node.Clone())
		}
		return true
	})
	return members
}

// Purge removes every node.
func (c *ConsistentHash[N]) Purge() {
	c.nodes.Purge()
	c.count = 0
}

// Count returns the number of physical nodes.
func (c *ConsistentHash[N]) Count() int {
	return c.count
}

// Len returns the number of virtual nodes stored in the ring.
func (c *ConsistentHash[N]) Len() int {
	return c.nodes.Len()
}

// Replicas returns the number of virtual nodes per physical node.
func (c *ConsistentHash[N]) Replicas() uint32 {
	return c.replicas
}

// Spread returns the virtual node index multiplier.
func (c *ConsistentHash[N]) Spread() uint32 {
	return c.spread
}

// SizeBytes returns the approximate memory held by the ring.
func (c *ConsistentHash[N]) SizeBytes() int64 {
	return c.nodes.SizeBytes()
}

func (c *ConsistentHash[N]) virtualKey(node []byte, index uint32) uint64 {
	return hasher.VirtualKey(c.hash, node, index, c.spread)
}

func zero[T any]() T {
	var t T
	return t
}
