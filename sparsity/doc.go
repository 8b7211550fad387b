// SPDX-License-Identifier: MIT

// Package sparsity decides (k,l)-sparsity of graphs built vertex by vertex,
// and exposes the pruning predicate an exhaustive graph generator calls on
// every candidate.
//
// What:
//
//   - Params: rational (k,l) in lowest terms plus the subgraph-size threshold
//     MinVertices below which no subgraph can violate the bound.
//   - Strategy: one typed interface with variants
//     KindCombination (revolving-door k-subset walk),
//     KindBitmask (binary Gray-code powerset walk),
//     KindPebble (Lee–Streinu pebble game, integer 0 ≤ l < 2k only),
//     KindHenneberg (type-I decomposability, final size only), and
//     KindNone.
//   - Select: picks and validates a Strategy once, at configuration time.
//   - IsSparse: full verdict for a finished graph.
//   - Pruner: the generator callback ShouldPrune(g, n, maxn).
//   - Counter: caller-owned progress counter.
//
// Incremental checking:
//
// Generators append one vertex at a time and stop a branch as soon as the
// predicate fires, so when vertex n-1 arrives every subset avoiding it has
// already been checked. The enumeration strategies therefore only examine
// subsets that contain vertex n-1, which cuts the walk in half at every
// step and lets a violation prune the whole subtree: sparsity is monotone,
// so no supergraph of a rejected graph can be sparse.
//
// Errors:
//
//   - ErrBadRational     malformed or zero-denominator rational
//   - ErrNonPositiveK    k ≤ 0
//   - ErrMinVertices     negative threshold
//   - ErrLWithoutK       l supplied without k
//   - ErrIncompatible    Henneberg mode combined with l or a fractional k
//   - ErrStrategyDomain  forced strategy outside its valid (k,l) regime
package sparsity
