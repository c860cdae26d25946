// Package sorter implements the in-place sort engine.
//
// Every algorithm operates on a raw byte buffer through width-sized block
// swaps and copies; none of them assumes a concrete element type. The
// element width and the ascending comparator come from the typekind
// registry, and descending order is a comparator sign flip (or, for the
// non-comparison sorts, an ascending pass followed by a buffer reversal).
//
// # Algorithms
//
//   - AlgorithmAuto: merge when stability is requested, insertion below
//     32 elements, quick otherwise
//   - AlgorithmQuick, AlgorithmMerge, AlgorithmHeap, AlgorithmInsertion,
//     AlgorithmShell, AlgorithmBubble: comparison sorts
//   - AlgorithmCounting (widths 1/2/4) and AlgorithmRadix (widths 1/2/4/8):
//     unsigned-representation sorts that never consult a comparator
//
// Merge, counting, and radix acquire their scratch space up front through a
// resource.Controller: a denied reservation returns ErrResourceExhausted
// with the buffer untouched.
package sorter
