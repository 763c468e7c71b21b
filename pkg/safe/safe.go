package safe

import (
	"sync"

	"github.com/samber/hashring/pkg/base"
)

// NewSafeRing creates a thread-safe wrapper around an existing ring implementation.
// Lookups share a read lock, so concurrent Get calls never block each other.
// Membership changes take the write lock.
func NewSafeRing[N base.Node[N]](ring base.Ring[N]) base.Ring[N] {
	return &SafeRing[N]{
		Ring:    ring,
		RWMutex: sync.RWMutex{},
	}
}

// SafeRing is a thread-safe wrapper around any ring implementation.
// It uses a read-write mutex to protect all ring operations, allowing multiple
// concurrent readers but only one writer at a time.
type SafeRing[N base.Node[N]] struct {
	base.Ring[N] // Embedded ring implementation
	sync.RWMutex // Read-write mutex for thread safety
}

// Ensure SafeRing implements Ring interface
var _ base.Ring[base.StringNode] = (*SafeRing[base.StringNode])(nil)

// Add registers a node with exclusive write lock.
func (r *SafeRing[N]) Add(node N) {
	r.Lock()
	r.Ring.Add(node)
	r.Unlock()
}

// Remove unregisters a node with exclusive write lock.
func (r *SafeRing[N]) Remove(node N) {
	r.Lock()
	r.Ring.Remove(node)
	r.Unlock()
}

// Get returns the node owning the item using a shared read lock.
// The successor search does not modify the ring.
func (r *SafeRing[N]) Get(item base.Hashable) (N, error) {
	r.RLock()
	defer r.RUnlock()
	return r.Ring.Get(item)
}

// Has checks if a node is registered using a shared read lock.
func (r *SafeRing[N]) Has(node N) bool {
	r.RLock()
	defer r.RUnlock()
	return r.Ring.Has(node)
}

// Set replaces the membership using an exclusive write lock.
// Readers never observe a partially rebuilt ring.
func (r *SafeRing[N]) Set(nodes ...N) {
	r.Lock()
	r.Ring.Set(nodes...)
	r.Unlock()
}

// Members returns a snapshot of the physical nodes using a shared read lock.
func (r *SafeRing[N]) Members() []N {
	r.RLock()
	defer r.RUnlock()
	return r.Ring.Members()
}

// Purge removes every node using an exclusive write lock.
func (r *SafeRing[N]) Purge() {
	r.Lock()
	r.Ring.Purge()
	r.Unlock()
}

// Count returns the number of physical nodes using a shared read lock.
func (r *SafeRing[N]) Count() int {
	r.RLock()
	defer r.RUnlock()
	return r.Ring.Count()
}

// Len returns the number of virtual nodes using a shared read lock.
func (r *SafeRing[N]) Len() int {
	r.RLock()
	defer r.RUnlock()
	return r.Ring.Len()
}

// Replicas doesn't require locking as it is immutable.
func (r *SafeRing[N]) Replicas() uint32 {
	return r.Ring.Replicas()
}

// Spread doesn't require locking as it is immutable.
func (r *SafeRing[N]) Spread() uint32 {
	return r.Ring.Spread()
}

// SizeBytes returns the approximate memory held by the ring using a shared read lock.
func (r *SafeRing[N]) SizeBytes() int64 {
	r.RLock()
	defer r.RUnlock()
	return r.Ring.SizeBytes()
}
