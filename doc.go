// Package lvalgo is a small, dependency-light collection of classic
// algorithms written as plain, well-tested Go.
//
// What is inside:
//
//	list/     singly linked integer list, validators and seeded generators
//	kmerge/   K-way merge of sorted linked lists (heap and pairwise), by relinking
//	sched/    aging priority scheduling and least-slack-time scheduling
//	arrays/   juggling rotation, counting sort, ternary search
//	sequence/ Juggler sequence with exact big-integer steps
//	tree/     binary-tree construction and pre/in/post/level traversals
//	phonetic/ NATO (ICAO) spelling alphabet encode/decode
//	cmd/lvalgo command-line front end for all of the above
//
// Conventions shared by every package:
//
//   - Sentinel errors (ErrXxx) checked with errors.Is; inputs are validated
//     before any work, so failures never leave partial results behind.
//   - Functional options (WithXxx) with DefaultOptions; option constructors
//     panic on meaningless arguments, algorithms never panic.
//   - Hooks (OnPop, OnVisit) instead of logging inside the library.
//
// Quick example:
//
//	head, err := kmerge.Merge([]*list.Node{
//		list.FromSlice([]int{1, 4, 5}),
//		list.FromSlice([]int{1, 3, 4}),
//		list.FromSlice([]int{2, 6}),
//	}, 3)
//	// head: [1 1 2 3 4 4 5 6]
//
//	go get github.com/katalvlaran/lvalgo
package lvalgo
