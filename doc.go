// Package algokit is a type-generic sorting, searching, and shuffling
// toolkit over homogeneous arrays whose element type is selected at call
// time by a string identifier.
//
// The root package mirrors the classic C-style contract: raw byte buffers,
// string identifiers, and small negative status codes. Identifier strings
// are resolved once at this boundary into closed enums (typekind.Kind and
// the per-engine Algorithm/Order/Mode types) and dispatched exhaustively
// from there.
//
// # Quick Start
//
// String-keyed, status-code API:
//
//	data := []byte{...}                  // five i32 values
//	status := algokit.Sort(data, 5, "i32", "merge", "desc")
//	idx := algokit.Search(data, 5, key, "i32", "binary", "desc")
//	status = algokit.Shuffle(data, 5, "i32", "fisher-yates", "seeded", 42)
//
// Typed facade over Go slices (same engines underneath):
//
//	xs := []int32{1, 4, 2, 8, 6}
//	err := algokit.SortSlice(xs, sorter.AlgorithmQuick, sorter.OrderAsc)
//	idx, err := algokit.SearchSlice(xs, 8, searcher.AlgorithmBinary, searcher.OrderAsc)
//
// # Status Codes
//
// Each engine keeps its own small negative taxonomy; the codes are
// enumerated constants, not arithmetic magnitudes:
//
//	Sort     0 ok   -1 invalid input  -2 unknown type  -3 unknown algorithm  -4 resource exhausted
//	Search   >=0 index  -1 not found  -2 invalid input  -3 unknown type  -4 unknown algorithm
//	Shuffle  0 ok   -1 invalid input  -2 unknown type  -3 unknown algorithm
//
// # Ownership and Concurrency
//
// Buffers are owned by the caller and mutated strictly in place; no call
// retains state between invocations. Single calls are synchronous and
// lock-free. SortBatch and SearchBatch run independent buffers
// concurrently; sharing one buffer across concurrent calls is the
// caller's bug.
package algokit
