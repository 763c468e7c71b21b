package consistent

import "github.com/samber/hashring/pkg/hasher"

const (
	// DefaultReplicas is the number of virtual nodes per physical node.
	DefaultReplicas uint32 = 11
	// DefaultSpread is the multiplier applied to a virtual node index before hashing.
	DefaultSpread uint32 = 7
)

// representative is the virtual node index used to check the presence of a physical node.
const representative uint32 = 0

// Config holds the tunables of a ring.
type Config struct {
	// Replicas is the number of virtual nodes per physical node. Must be > 0.
	Replicas uint32
	// Spread is multiplied with each virtual node index before hashing. Must be > 0.
	Spread uint32
	// Hasher places bytes on the ring. Defaults to hasher.Blake2s when nil.
	Hasher hasher.Hasher
}

// DefaultConfig returns the configuration used when nothing is tuned.
func DefaultConfig() Config {
	return Config{
		Replicas: DefaultReplicas,
		Spread:   DefaultSpread,
		Hasher:   hasher.Blake2s,
	}
}
