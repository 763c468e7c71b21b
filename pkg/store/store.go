package store

import (
	"github.com/DmitriyVTitov/size"
	"github.com/google/btree"
)

// degree of the underlying b-tree. Rings hold a few thousand entries at most,
// so a small degree keeps nodes within a couple of cache lines.
const degree = 8

// entry is a virtual node: a position on the ring and the physical node owning it.
type entry[N any] struct {
	key  uint64
	node N
}

func less[N any](a, b entry[N]) bool {
	return a.key < b.key
}

// New creates an empty ordered store.
func New[N any]() *Store[N] {
	return &Store[N]{
		tree: btree.NewG[entry[N]](degree, less[N]),
	}
}

// Store is an ordered map from ring positions to nodes.
// Iteration is always in ascending key order. Keys are unique: setting an
// existing key overwrites the previous node.
// Store is not safe for concurrent use.
type Store[N any] struct {
	tree *btree.BTreeG[entry[N]]
}

// Set stores a node at the given position, replacing any previous node.
// Returns true if a node was replaced.
func (s *Store[N]) Set(key uint64, node N) bool {
	_, replaced := s.tree.ReplaceOrInsert(entry[N]{key: key, node: node})
	return replaced
}

// Has checks if a position is taken.
func (s *Store[N]) Has(key uint64) bool {
	return s.tree.Has(entry[N]{key: key})
}

// Get returns the node stored at the given position.
func (s *Store[N]) Get(key uint64) (node N, ok bool) {
	e, ok := s.tree.Get(entry[N]{key: key})
	return e.node, ok
}

// Delete frees a position. Returns true if the position was taken.
func (s *Store[N]) Delete(key uint64) bool {
	_, ok := s.tree.Delete(entry[N]{key: key})
	return ok
}

// Successor returns the entry with the smallest position greater than or equal to key.
// When key is greater than every stored position, it wraps around and returns the
// entry with the smallest position. ok is false only if the store is empty.
// Time complexity: O(log n).
func (s *Store[N]) Successor(key uint64) (position uint64, node N, ok bool) {
	s.tree.AscendGreaterOrEqual(entry[N]{key: key}, func(e entry[N]) bool {
		position, node, ok = e.key, e.node, true
		return false
	})
	if ok {
		return position, node, true
	}

	return s.Min()
}

// Min returns the entry with the smallest position.
func (s *Store[N]) Min() (position uint64, node N, ok bool) {
	e, ok := s.tree.Min()
	return e.key, e.node, ok
}

// Max returns the entry with the largest position.
func (s *Store[N]) Max() (position uint64, node N, ok bool) {
	e, ok := s.tree.Max()
	return e.key, e.node, ok
}

// Keys returns all positions in ascending order.
func (s *Store[N]) Keys() []uint64 {
	keys := make([]uint64, 0, s.tree.Len())
	s.tree.Ascend(func(e entry[N]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// Range iterates over all entries in ascending position order.
// The iteration stops if the function returns false.
func (s *Store[N]) Range(f func(position uint64, node N) bool) {
	s.tree.Ascend(func(e entry[N]) bool {
		return f(e.key, e.node)
	})
}

// Len returns the number of stored positions.
func (s *Store[N]) Len() int {
	return s.tree.Len()
}

// Purge removes every entry.
func (s *Store[N]) Purge() {
	s.tree.Clear(false)
}

// SizeBytes returns the approximate size of the stored positions and nodes in bytes.
// Nodes that cannot be measured (holding a func or a chan) only count for their position.
func (s *Store[N]) SizeBytes() int64 {
	var total int64
	s.tree.Ascend(func(e entry[N]) bool {
		total += 8
		if n := size.Of(e.node); n > 0 {
			total += int64(n)
		}
		return true
	})
	return total
}
