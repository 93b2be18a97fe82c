package arrays

import "errors"

var (
	// ErrRangeTooLarge indicates that max-min+1 of the keys exceeds the allowed span.
	ErrRangeTooLarge = errors.New("arrays: key span exceeds limit")
	// ErrEmptyRange indicates lo > hi.
	ErrEmptyRange = errors.New("arrays: empty search range")
)

// DefaultMaxSpan bounds the counting array allocated by CountingSort.
const DefaultMaxSpan = 1 << 24
