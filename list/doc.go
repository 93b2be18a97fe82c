// Package list provides the singly linked integer list used across lvalgo.
//
// A list is a forward chain of *Node values. Every node is owned by exactly
// one chain and chains never contain cycles; algorithms such as kmerge rely on
// that invariant and relink nodes in place instead of copying values.
//
// Besides the basic helpers (FromSlice, Values, Len, IsSorted, Validate) the
// package ships deterministic generators for tests and benchmarks:
//
//	rng := list.WithSeed(42)
//	heads := list.RandomLists(8, 100, rng, list.WithRange(-50, 50))
//
// Complexity:
//
//   - FromSlice, Values, Len, IsSorted: O(n) time.
//   - Validate: O(n) time, O(1) space (Floyd's tortoise and hare).
//   - RandomSorted: O(n log n) time (sorts the generated values once).
package list
