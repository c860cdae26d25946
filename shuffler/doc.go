// Package shuffler implements the shuffle engine.
//
// Shuffling needs only the element width from the typekind registry, so
// every kind with a concrete representation can be shuffled, including
// the integer aliases that have no comparator.
//
// Each call seeds its own PCG generator from the requested mode (auto,
// seeded, secure) and consumes it locally; no generator state is shared
// or persisted across calls, so concurrent shuffles of different buffers
// are independent.
package shuffler
