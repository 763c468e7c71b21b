package base

// Hashable is anything that can be placed on the ring by its canonical byte encoding.
// Two values with the same encoding land on the same ring position.
type Hashable interface {
	Bytes() []byte
}

// Node is a physical member of the ring.
// Clone must return a copy that does not alias the receiver, since the ring
// keeps one copy per virtual node and hands copies back to callers.
type Node[N any] interface {
	Hashable
	Clone() N
}

// Ring represents a consistent hashing ring abstraction.
// Add and Remove are idempotent, so they do not return errors.
// Get is the only operation that can fail, when no node is registered.
type Ring[N Node[N]] interface {
	// Add registers a physical node and all of its virtual nodes.
	// Adding a node that is already present is a no-op.
	Add(node N)

	// Remove unregisters a physical node and all of its virtual nodes.
	// Removing an absent node is a no-op.
	Remove(node N)

	// Get returns the node owning the given item: the first virtual node found
	// walking clockwise from the item hash.
	// Returns ErrNoServerNodes when the ring is empty.
	Get(item Hashable) (N, error)

	// Has checks if a physical node is registered.
	Has(node N) bool

	// Set replaces the whole membership with the given nodes.
	Set(nodes ...N)

	// Members returns the registered physical nodes, ordered by ring position
	// of their representative virtual node.
	Members() []N

	// Purge removes every node.
	Purge()

	// Statistics and metadata

	// Count returns the number of physical nodes.
	Count() int

	// Len returns the number of virtual nodes stored in the ring.
	Len() int

	// Replicas returns the number of virtual nodes per physical node.
	Replicas() uint32

	// Spread returns the multiplier applied to virtual node indexes.
	Spread() uint32

	// SizeBytes returns the approximate memory held by the ring.
	SizeBytes() int64
}
