package kmerge

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvalgo/list"
)

// Merge merges k ascending lists into a single ascending list and returns its head.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. k must be non-negative (ErrNegativeCount).
//  3. lists must be non-nil unless k == 0 (ErrNilLists).
//  4. len(lists) must equal k (ErrCountMismatch).
//  5. With WithCycleCheck, no input may loop (ErrCycle).
//
// Any element of lists may be nil. If no nodes exist at all the result is
// (nil, nil). The input chains are consumed: their nodes are relinked into the
// returned chain.
func Merge(lists []*list.Node, k int, opts ...Option) (*list.Node, error) {
	// 1) Build options; a bad option is reported before anything else.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate count, slice and (optionally) acyclicity. Nothing is relinked yet.
	if err := validate(lists, k, cfg.CycleCheck); err != nil {
		return nil, err
	}

	// 3) Prepare a heap with room for one frontier per list.
	m := &merger{
		options: cfg,
		pq: frontierPQ{
			items:  make([]frontier, 0, k),
			stable: cfg.StableTies,
		},
	}
	// 4) Seed the heap with every non-empty head, then drain it.
	m.init(lists)

	return m.run(), nil
}

// MergeAll merges the given lists. It never fails because the count is
// derived from the arguments.
func MergeAll(lists ...*list.Node) *list.Node {
	head, _ := Merge(lists, len(lists))

	return head
}

// validate rejects malformed input before any node is touched.
func validate(lists []*list.Node, k int, cycleCheck bool) error {
	if k < 0 {
		return fmt.Errorf("%w: k=%d", ErrNegativeCount, k)
	}
	if lists == nil && k != 0 {
		return fmt.Errorf("%w: k=%d", ErrNilLists, k)
	}
	if len(lists) != k {
		return fmt.Errorf("%w: k=%d, len(lists)=%d", ErrCountMismatch, k, len(lists))
	}
	if !cycleCheck {
		return nil
	}
	for i, head := range lists {
		if err := list.Validate(head); err != nil {
			return fmt.Errorf("%w: list %d: %w", ErrCycle, i, err)
		}
	}

	return nil
}

// merger holds the mutable state of a single Merge call.
type merger struct {
	options Options
	pq      frontierPQ
}

// init pushes the head of every non-empty list onto the heap.
func (m *merger) init(lists []*list.Node) {
	for i, head := range lists {
		if head != nil {
			m.pq.items = append(m.pq.items, frontier{node: head, idx: i})
		}
	}
	heap.Init(&m.pq)
}

// run drains the heap, appending each extracted node to the output tail.
//
// Loop invariant: the heap holds exactly one frontier node for every input
// list that still has unmerged nodes, and tail is the last node already linked.
func (m *merger) run() *list.Node {
	// A stack-allocated sentinel head; only sentinel.Next escapes.
	var sentinel list.Node
	tail := &sentinel
	for m.pq.Len() > 0 {
		// 1) Peek the smallest frontier and report it to the hook.
		top := m.pq.items[0]
		if m.options.OnPop != nil {
			m.options.OnPop(top.node.Val, top.idx)
		}

		// 2) Remember its successor before relinking, then append it to the tail.
		next := top.node.Next
		tail.Next = top.node
		tail = top.node

		// 3) If the list continues, its successor becomes the new frontier:
		//    replace the root in place and sift once instead of Pop + Push.
		//    Otherwise the list is exhausted and its entry leaves the heap.
		if next != nil {
			m.pq.items[0].node = next
			heap.Fix(&m.pq, 0)
		} else {
			heap.Pop(&m.pq)
		}
	}

	// 4) Terminate the chain; the last node came from an exhausted list.
	tail.Next = nil

	return sentinel.Next
}

// frontier is the earliest not-yet-merged node of input list idx.
type frontier struct {
	node *list.Node
	idx  int
}

// frontierPQ is a min-heap of frontier nodes ordered by node value.
// With stable set, equal values are ordered by list index.
type frontierPQ struct {
	items  []frontier
	stable bool
}

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq.items) }

// Less orders by value, then by list index when stable.
func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.node.Val != b.node.Val {
		return a.node.Val < b.node.Val
	}

	return pq.stable && a.idx < b.idx
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap. x must be a frontier.
func (pq *frontierPQ) Push(x any) { pq.items = append(pq.items, x.(frontier)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontierPQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
