// Package kmerge merges K individually sorted singly linked lists into one
// ascending list by relinking the existing nodes.
//
// Overview:
//
//   - Merge seeds a min-heap with the head (the "frontier") of every non-empty
//     input list, then repeatedly extracts the smallest frontier node, appends
//     it to the output tail and enqueues its successor.
//   - No node is copied or allocated: the output is made of the very same
//     *list.Node values, so input chains are consumed by the call.
//   - The heap never holds more than one frontier node per input list.
//
// Complexity:
//
//	– Time:  O(N log K)   where N = total node count, K = number of lists
//	   • Every node is extracted from the heap exactly once (N extractions).
//	   • Each extraction costs one sift of O(log K); the successor replaces the root.
//	– Space: O(K)
//	   • At most one frontier node per input list lives in the heap.
//
// Options:
//
//	– WithStableTies(): equal values leave in input-list index order.
//	– WithCycleCheck(): validate every input chain first (extra O(N) pass).
//	– WithOnPop(fn):    call fn(val, listIdx) for every extracted node.
//
// Ties:
//
//	By default the relative order of equal values taken from different lists is
//	unspecified (container/heap is not stable). WithStableTies() makes equal
//	values leave in input-list index order, at no asymptotic cost.
//
// Errors (sentinel):
//
//	– ErrNegativeCount   if k < 0.
//	– ErrNilLists        if lists is nil while k != 0.
//	– ErrCountMismatch   if len(lists) != k.
//	– ErrCycle           if WithCycleCheck() is set and an input loops.
//	– ErrOptionViolation if an option received a meaningless argument.
//
// All validation happens before the first node is relinked, so a failed call
// leaves every input chain untouched.
//
// Variants:
//
//   - MergeTwo:      classic linear two-way merge, ties favor the first list.
//   - MergePairwise: divide-and-conquer rounds of MergeTwo, also O(N log K).
//   - MergeAll:      variadic convenience around Merge that cannot fail.
//
// Thread safety: calls share no state. Concurrent calls are safe as long as
// they operate on disjoint input chains.
package kmerge
