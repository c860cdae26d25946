// Package searcher implements the search engine.
//
// Search returns the index of a matching element or an error from the
// engine's taxonomy (not found, invalid input, unknown type, unknown or
// unsupported algorithm). Apart from linear search, every algorithm
// requires the buffer to already be sorted according to the requested
// order; the engine never verifies that precondition, and violating it
// yields unspecified (non-crashing) results.
//
// On ties the returned index is the first one found by the algorithm's own
// traversal order. Only linear search guarantees the leftmost match.
package searcher
