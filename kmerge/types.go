package kmerge

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the merge routines.
var (
	// ErrNegativeCount indicates that k < 0.
	ErrNegativeCount = errors.New("kmerge: list count must be non-negative")

	// ErrNilLists indicates a nil lists slice paired with a non-zero count.
	ErrNilLists = errors.New("kmerge: lists is nil but count is non-zero")

	// ErrCountMismatch indicates that len(lists) disagrees with k.
	ErrCountMismatch = errors.New("kmerge: list count does not match slice length")

	// ErrCycle indicates that an input chain loops back on itself.
	ErrCycle = errors.New("kmerge: input list contains a cycle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmerge: invalid option supplied")
)

// Options configures Merge.
type Options struct {
	// StableTies emits equal values in ascending input-list index order.
	StableTies bool

	// CycleCheck validates every input chain before merging.
	CycleCheck bool

	// OnPop, if non-nil, is called for every node taken from the heap with
	// its value and the index of the list it came from.
	OnPop func(val, listIdx int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Merge.
type Option func(*Options)

// DefaultOptions returns Options with arbitrary tie order, no cycle check
// and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithStableTies makes equal values leave the heap in input-list index order.
func WithStableTies() Option {
	return func(o *Options) {
		o.StableTies = true
	}
}

// WithCycleCheck validates every input chain in O(N) before merging and fails
// with ErrCycle instead of looping forever on a corrupted input.
func WithCycleCheck() Option {
	return func(o *Options) {
		o.CycleCheck = true
	}
}

// WithOnPop registers a hook invoked for every extracted node.
// A nil fn is recorded and surfaced as ErrOptionViolation.
func WithOnPop(fn func(val, listIdx int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnPop hook is nil", ErrOptionViolation)
			return
		}
		o.OnPop = fn
	}
}
