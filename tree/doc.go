// Package tree provides binary-tree construction and traversals.
//
// Depth-first orders (pre, in, post) are computed iteratively with one
// explicit stack, so deep, degenerate trees cannot overflow the goroutine
// stack. Level order uses a FIFO queue.
//
// Walk is the hookable entry point: WithOnVisit registers a callback that sees
// each value with its depth and may abort the traversal by returning an error.
//
// Complexity: every traversal is O(n) time and O(h) extra space for the
// depth-first orders (h = height) or O(w) for level order (w = max width).
package tree
