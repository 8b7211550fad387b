// SPDX-License-Identifier: MIT

package combin

import (
	"fmt"
	"math/bits"
)

// maxGrayBits keeps the step counter inside a uint64.
const maxGrayBits = 63

// Gray walks the binary reflected Gray code over subsets of {0..n-1},
// starting from the empty set. Step i toggles the element at the position
// of the lowest set bit of i, so every subset is visited exactly once in
// 2^n - 1 steps.
type Gray struct {
	step, end uint64
	mask      uint64
}

// NewGray returns a walker over subsets of {0..n-1}, 0 ≤ n ≤ 63.
func NewGray(n int) (*Gray, error) {
	if n < 0 || n > maxGrayBits {
		return nil, fmt.Errorf("NewGray(n=%d): %w", n, ErrBadSize)
	}
	return &Gray{end: uint64(1) << uint(n)}, nil
}

// Next toggles one element and returns it together with whether it is now
// a member. ok is false once every subset has been visited.
func (g *Gray) Next() (elem int, added, ok bool) {
	g.step++
	if g.step >= g.end {
		return 0, false, false
	}
	elem = bits.TrailingZeros64(g.step)
	g.mask ^= 1 << uint(elem)
	return elem, g.mask&(1<<uint(elem)) != 0, true
}

// Mask returns the current subset as a bitmask.
func (g *Gray) Mask() uint64 { return g.mask }
