// SPDX-License-Identifier: MIT

// Package rigidity estimates the generic infinitesimal rigidity of a graph
// in d-dimensional space by the rank of its rigidity matrix at random
// realizations.
//
// What:
//
//	A realization places vertex i at p_i ∈ ℝ^d, drawn uniformly from
//	[-1,1)^d. The rigidity matrix has one row per edge {u,v} and d columns
//	per vertex: p_u - p_v in u's block, p_v - p_u in v's block, zeros
//	elsewhere. At a generic realization its rank is a property of the graph
//	alone, and
//
//	  RigidRank(n) = d·n - d(d+1)/2
//
//	is the rank of a generically rigid framework on n vertices. The excess
//	degrees of freedom RigidRank(n) - rank are 0 exactly for rigid graphs.
//
// Why several trials:
//
//	A random realization is generic with probability one, but floating
//	point rank decisions are not exact. Measure repeats the experiment an
//	odd number of times and reports the majority, together with how many
//	trials agreed, so callers can surface disagreement as uncertainty.
//
// Rank methods:
//
//   - PivotedQR: Householder QR with column pivoting (default).
//   - SVD:       gonum's singular value decomposition.
//
// Both count diagonal entries (or singular values) above tol·max, where
// tol defaults to machine epsilon times the smaller matrix dimension.
//
// Determinism:
//
//	Every call takes a caller-owned *rand.Rand; StreamRNG derives an
//	independent deterministic stream per work item from one seed.
//
// Errors:
//
//   - ErrDim        dimension below 1
//   - ErrTrials     trial count not positive and odd
//   - ErrTolerance  negative tolerance
//   - ErrMethod     unknown rank method
package rigidity
