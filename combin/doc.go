// SPDX-License-Identifier: MIT

// Package combin provides Gray-code enumerators over subsets of a small
// ground set, the two walks used by the incremental sparsity checks.
//
// What:
//
//   - Revolving: the revolving-door combinatorial Gray code over k-subsets of
//     {0..n-1}. Every step removes exactly one element and inserts exactly one,
//     so a quantity defined on the subset (an induced edge count) can be
//     updated in time proportional to one vertex degree.
//   - Gray: the binary reflected Gray code over all subsets of {0..n-1}; every
//     step toggles exactly one element.
//
// Both walkers allocate only at construction and are not safe for
// concurrent use; give each goroutine its own.
//
// Reference: A. Nijenhuis and H. S. Wilf, Combinatorial Algorithms for
// Computers and Calculators, 2nd ed., Academic Press, 1978 (routine NXKSRD).
package combin
