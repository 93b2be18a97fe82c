package list

import (
	"fmt"
	"sort"
	"strings"
)

// FromSlice builds a fresh chain holding vals in order. An empty slice yields nil.
func FromSlice(vals []int) *Node {
	var head, tail *Node
	for _, v := range vals {
		n := &Node{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// Values collects the chain's payloads from head to tail.
// The result is non-nil even for an empty chain.
func Values(head *Node) []int {
	out := make([]int, 0, Len(head))
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out
}

// Len counts the nodes reachable from head.
func Len(head *Node) int {
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}

	return n
}

// IsSorted reports whether values are non-decreasing from head to tail.
func IsSorted(head *Node) bool {
	for n := head; n != nil && n.Next != nil; n = n.Next {
		if n.Next.Val < n.Val {
			return false
		}
	}

	return true
}

// Validate returns ErrCycle if following Next from head never reaches nil.
func Validate(head *Node) error {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return fmt.Errorf("%w: node with value %d revisited", ErrCycle, slow.Val)
		}
	}

	return nil
}

// String renders the chain as "[1 2 3]". It must only be called on acyclic chains.
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for cur := n; cur != nil; cur = cur.Next {
		if cur != n {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", cur.Val)
	}
	sb.WriteByte(']')

	return sb.String()
}

// RandomSorted returns an ascending chain of n values drawn from the configured range.
// n <= 0 yields nil.
func RandomSorted(n int, opts ...Option) *Node {
	cfg := newGenConfig(opts)

	return randomSorted(cfg, n)
}

// RandomLists returns k ascending chains whose lengths are drawn from [0, maxLen].
// All chains share one RNG stream so the result is reproducible for a given seed.
func RandomLists(k, maxLen int, opts ...Option) []*Node {
	cfg := newGenConfig(opts)
	if k <= 0 {
		return []*Node{}
	}
	out := make([]*Node, k)
	for i := range out {
		n := 0
		if maxLen > 0 {
			n = cfg.rng.Intn(maxLen + 1)
		}
		out[i] = randomSorted(cfg, n)
	}

	return out
}

func randomSorted(cfg genConfig, n int) *Node {
	if n <= 0 {
		return nil
	}
	// span is 0 when [lo, hi] covers every int; Uint64 is then used unreduced
	span := uint64(cfg.hi) - uint64(cfg.lo) + 1
	vals := make([]int, n)
	for i := range vals {
		r := cfg.rng.Uint64()
		if span != 0 {
			r %= span
		}
		vals[i] = cfg.lo + int(r)
	}
	sort.Ints(vals)

	return FromSlice(vals)
}
