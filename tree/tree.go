package tree

import "fmt"

// FromLevelOrder builds a tree from a level-order listing where nil marks a
// missing child, e.g. [1, 2, 3, nil, 4] (the usual array encoding). Children
// of missing nodes are not listed. An empty listing or a nil root yields nil.
func FromLevelOrder[T any](vals []*T) *Node[T] {
	if len(vals) == 0 || vals[0] == nil {
		return nil
	}

	root := &Node[T]{Val: *vals[0]}
	queue := []*Node[T]{root}
	i := 1
	for len(queue) > 0 && i < len(vals) {
		n := queue[0]
		queue = queue[1:]

		if v := vals[i]; v != nil {
			n.Left = &Node[T]{Val: *v}
			queue = append(queue, n.Left)
		}
		i++
		if i < len(vals) {
			if v := vals[i]; v != nil {
				n.Right = &Node[T]{Val: *v}
				queue = append(queue, n.Right)
			}
			i++
		}
	}

	return root
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height[T any](root *Node[T]) int {
	return len(LevelOrder(root))
}

// PreOrder returns values in node-left-right order.
func PreOrder[T any](root *Node[T]) []T {
	out, _ := Walk(root, OrderPre)
	return out
}

// InOrder returns values in left-node-right order.
func InOrder[T any](root *Node[T]) []T {
	out, _ := Walk(root, OrderIn)
	return out
}

// PostOrder returns values in left-right-node order.
func PostOrder[T any](root *Node[T]) []T {
	out, _ := Walk(root, OrderPost)
	return out
}

// LevelOrder returns values grouped by depth, root level first.
func LevelOrder[T any](root *Node[T]) [][]T {
	levels := [][]T{}
	_, _ = Walk(root, OrderLevel, WithOnVisit(func(v T, depth int) error {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], v)
		return nil
	}))

	return levels
}

// Walk traverses root in the given order and returns the visited values.
// A hook error aborts the walk with ErrVisitAborted wrapping it; the values
// visited so far are returned alongside.
func Walk[T any](root *Node[T], order Order, opts ...Option[T]) ([]T, error) {
	if _, ok := orderNames[order]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}
	o := Options[T]{}
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[T]{opts: o, out: []T{}}
	if root == nil {
		return w.out, nil
	}
	if order == OrderLevel {
		return w.out, w.level(root)
	}

	return w.out, w.depthFirst(root, order)
}

// frame is a stack entry; ready frames are visited when popped, others expand.
type frame[T any] struct {
	node  *Node[T]
	depth int
	ready bool
}

// walker accumulates visited values and dispatches the hook.
type walker[T any] struct {
	opts Options[T]
	out  []T
}

func (w *walker[T]) visit(n *Node[T], depth int) error {
	w.out = append(w.out, n.Val)
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(n.Val, depth); err != nil {
		return fmt.Errorf("%w: %w", ErrVisitAborted, err)
	}

	return nil
}

// depthFirst expands each node into its children and itself, pushed in the
// reverse of the order they must be visited.
func (w *walker[T]) depthFirst(root *Node[T], order Order) error {
	stack := []frame[T]{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.ready {
			if err := w.visit(f.node, f.depth); err != nil {
				return err
			}
			continue
		}

		self := frame[T]{node: f.node, depth: f.depth, ready: true}
		push := func(c *Node[T]) {
			if c != nil {
				stack = append(stack, frame[T]{node: c, depth: f.depth + 1})
			}
		}
		switch order {
		case OrderPre:
			push(f.node.Right)
			push(f.node.Left)
			stack = append(stack, self)
		case OrderIn:
			push(f.node.Right)
			stack = append(stack, self)
			push(f.node.Left)
		case OrderPost:
			stack = append(stack, self)
			push(f.node.Right)
			push(f.node.Left)
		}
	}

	return nil
}

// level visits nodes breadth-first.
func (w *walker[T]) level(root *Node[T]) error {
	queue := []frame[T]{{node: root}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if err := w.visit(f.node, f.depth); err != nil {
			return err
		}
		if f.node.Left != nil {
			queue = append(queue, frame[T]{node: f.node.Left, depth: f.depth + 1})
		}
		if f.node.Right != nil {
			queue = append(queue, frame[T]{node: f.node.Right, depth: f.depth + 1})
		}
	}

	return nil
}
