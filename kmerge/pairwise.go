package kmerge

import "github.com/katalvlaran/lvalgo/list"

// MergeTwo merges two ascending chains by relinking. On equal values the node
// from a comes first, so the merge is stable.
// Complexity: O(len(a) + len(b)) time, O(1) space.
func MergeTwo(a, b *list.Node) *list.Node {
	var sentinel list.Node
	tail := &sentinel
	for a != nil && b != nil {
		if b.Val < a.Val {
			tail.Next, b = b, b.Next
		} else {
			tail.Next, a = a, a.Next
		}
		tail = tail.Next
	}
	// whichever chain remains is already sorted
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return sentinel.Next
}

// MergePairwise merges k ascending lists by repeatedly merging neighbours
// (0+1, 2+3, ...) until a single chain remains. It applies the same validation
// as Merge and, unlike the heap merge, is always stable.
// Complexity: O(N log K) time, O(1) extra space beyond a copy of the heads.
func MergePairwise(lists []*list.Node, k int) (*list.Node, error) {
	if err := validate(lists, k, false); err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, nil
	}

	heads := make([]*list.Node, k)
	copy(heads, lists)
	for step := 1; step < k; step *= 2 {
		for i := 0; i+step < k; i += 2 * step {
			heads[i] = MergeTwo(heads[i], heads[i+step])
		}
	}

	return heads[0], nil
}
