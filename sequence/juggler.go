// Package sequence generates integer sequences.
//
// The Juggler sequence starting at n is
//
//	a0 = n
//	a(k+1) = floor(a(k)^(1/2))  if a(k) is even
//	a(k+1) = floor(a(k)^(3/2))  if a(k) is odd
//
// and ends at the first 1. Odd terms can grow very quickly, so every step is
// computed exactly with math/big and ErrOverflow is reported as soon as a term
// no longer fits in a uint64 (the smallest such start is 113).
package sequence

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrZeroStart indicates n == 0, which never reaches 1.
	ErrZeroStart = errors.New("sequence: juggler start must be positive")
	// ErrOverflow indicates a term larger than math.MaxUint64.
	ErrOverflow = errors.New("sequence: juggler term overflows uint64")
)

// Juggler returns the Juggler sequence from n down to 1, both included.
func Juggler(n uint64) ([]uint64, error) {
	if n == 0 {
		return nil, ErrZeroStart
	}

	seq := []uint64{n}
	var x big.Int
	for cur := n; cur != 1; {
		x.SetUint64(cur)
		if cur%2 == 1 {
			x.Mul(&x, &x).Mul(&x, new(big.Int).SetUint64(cur))
		}
		x.Sqrt(&x)
		if !x.IsUint64() {
			return seq, fmt.Errorf("%w: after %d (step %d)", ErrOverflow, cur, len(seq))
		}
		cur = x.Uint64()
		seq = append(seq, cur)
	}

	return seq, nil
}

// JugglerSteps returns the number of steps needed to reach 1 from n.
func JugglerSteps(n uint64) (int, error) {
	seq, err := Juggler(n)
	if err != nil {
		return 0, err
	}

	return len(seq) - 1, nil
}

// JugglerMax returns the largest term of the sequence starting at n.
func JugglerMax(n uint64) (uint64, error) {
	seq, err := Juggler(n)
	if err != nil {
		return 0, err
	}
	best := seq[0]
	for _, v := range seq[1:] {
		best = max(best, v)
	}

	return best, nil
}
