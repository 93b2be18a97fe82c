package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the tree package.
var (
	// ErrUnknownOrder indicates an Order value or name that is not supported.
	ErrUnknownOrder = errors.New("tree: unknown traversal order")

	// ErrVisitAborted wraps an error returned by an OnVisit hook.
	ErrVisitAborted = errors.New("tree: traversal aborted by OnVisit")
)

// Node is a binary-tree node.
type Node[T any] struct {
	Val   T
	Left  *Node[T]
	Right *Node[T]
}

// Order selects a traversal order.
type Order int

const (
	OrderPre   Order = iota // node, left, right
	OrderIn                 // left, node, right
	OrderPost               // left, right, node
	OrderLevel              // breadth-first, top to bottom, left to right
)

var orderNames = map[Order]string{
	OrderPre:   "pre",
	OrderIn:    "in",
	OrderPost:  "post",
	OrderLevel: "level",
}

// String returns the short name used by ParseOrder.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder maps "pre", "in", "post" or "level" to an Order.
func ParseOrder(s string) (Order, error) {
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Options configures Walk.
type Options[T any] struct {
	// OnVisit, if non-nil, is called for every visited value with its depth
	// (root = 0). Returning an error stops the walk.
	OnVisit func(val T, depth int) error
}

// Option represents a functional option for Walk.
type Option[T any] func(*Options[T])

// WithOnVisit installs fn as the visit hook. A nil fn is ignored.
func WithOnVisit[T any](fn func(val T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
