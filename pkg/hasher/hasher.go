package hasher

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2s"
)

// Hasher is responsible for generating an unsigned, 64 bit position on the ring from raw bytes.
// It must be deterministic and spread inputs uniformly over the key space.
type Hasher func(data []byte) uint64

// Blake2s hashes data with BLAKE2s-256 and keeps the first 8 bytes of the digest, read big-endian.
// This is the default hasher: positions computed with it are stable across implementations.
func Blake2s(data []byte) uint64 {
	sum := blake2s.Sum256(data)
	return binary.BigEndian.Uint64(sum[:8])
}

// XXHash is a faster, non-cryptographic alternative.
// Rings built with different hashers do not agree on ring positions.
func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// VirtualKey derives the ring position of the virtual node `index` of a physical node.
// The index is spread by multiplying it with `spread`, encoded as 4 big-endian bytes,
// and placed on both sides of the node encoding: hash(idx || node || idx).
func VirtualKey(fn Hasher, node []byte, index uint32, spread uint32) uint64 {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index*spread)

	buf := make([]byte, 0, len(node)+8)
	buf = append(buf, idx[:]...)
	buf = append(buf, node...)
	buf = append(buf, idx[:]...)

	return fn(buf)
}
