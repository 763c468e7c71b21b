package base

import "errors"

var (
	// ErrNoServerNodes is returned by lookups on an empty ring.
	ErrNoServerNodes = errors.New("hashring: there are no server nodes currently registered in the hasher")

	// ErrRingCorrupted is returned when a lookup cannot find a successor on a non-empty ring.
	// It denotes a bug in the ring, not a caller mistake.
	ErrRingCorrupted = errors.New("hashring: no successor found in a non-empty ring")
)
