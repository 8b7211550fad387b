// SPDX-License-Identifier: MIT

package combin

import (
	"errors"
	"fmt"
)

// ErrBadSize is returned when k or n is outside 1 ≤ k ≤ n.
var ErrBadSize = errors.New("combin: require 1 <= k <= n")

// Revolving walks all k-subsets of {0..n-1} in revolving-door order. It
// starts at {0..k-1}; after C(n,k)-1 successful calls to Next the walk wraps
// and Next reports false with the state reset to {0..k-1}.
type Revolving struct {
	n, k int
	a    []int // a[0..k-1] is the current subset in increasing order
}

// NewRevolving returns a walker positioned at {0..k-1}.
func NewRevolving(n, k int) (*Revolving, error) {
	r := &Revolving{}
	if err := r.Reset(n, k); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset repositions the walker at {0..k-1} over a ground set of size n,
// reusing its buffer when large enough.
func (r *Revolving) Reset(n, k int) error {
	if k < 1 || k > n {
		return fmt.Errorf("Reset(n=%d, k=%d): %w", n, k, ErrBadSize)
	}
	if cap(r.a) < k {
		r.a = make([]int, k)
	}
	r.a = r.a[:k]
	for i := range r.a {
		r.a[i] = i
	}
	r.n, r.k = n, k
	return nil
}

// Subset returns the current subset in increasing order. The slice aliases
// internal state and is only valid until the next call to Next or Reset.
func (r *Revolving) Subset() []int { return r.a }

// Next advances to the following subset and reports the inserted and removed
// elements. When the walk is exhausted it returns ok=false, resets the state
// to {0..k-1} and reports in=k-1, out=n-1, the swap that would have closed
// the cycle; that swap is not applied to the caller's view of the subset.
func (r *Revolving) Next() (in, out int, ok bool) {
	a, k := r.a, r.k
	j := 0
	if k&1 == 1 {
		if in, out, ok = r.grow(j); ok {
			return in, out, true
		}
		j++
	}
	for j < k {
		if a[j] != j {
			out = a[j]
			a[j]--
			in = a[j]
			if j != 0 {
				in = j - 1
				a[j-1] = in
			}
			return in, out, true
		}
		j++
		if in, out, ok = r.grow(j); ok {
			return in, out, true
		}
		j++
	}
	a[k-1] = k - 1
	return k - 1, r.n - 1, false
}

// grow tries to increase a[j] by one within its current slack.
func (r *Revolving) grow(j int) (in, out int, ok bool) {
	if j >= r.k {
		return 0, 0, false
	}
	a := r.a
	limit := r.n - 1
	if j < r.k-1 {
		limit = a[j+1] - 1
	}
	if limit == a[j] {
		return 0, 0, false
	}
	out = a[j]
	a[j]++
	in = a[j]
	if j != 0 {
		a[j-1] = out
		out = j - 1
	}
	return in, out, true
}
