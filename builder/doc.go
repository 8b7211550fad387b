// SPDX-License-Identifier: MIT

// Package builder provides functional-options building blocks for the
// fixture graphs the certification packages are tested and benchmarked on.
//
// Every Constructor appends a new component to a bitgraph.Builder: its
// vertices are allocated after those already present, so constructors
// compose into disjoint unions in call order. Henneberg is the exception
// that may also attach to what came before.
//
// The package offers:
//
//   - Orchestration: BuildGraph(bopts, cons...) resolves options once and
//     applies constructors in order.
//   - Deterministic topologies: Complete, Path, Cycle, Star, Wheel,
//     CompleteBipartite, Grid and PlatonicSolid.
//   - Stochastic topologies (need WithSeed or WithRand):
//     – RandomSparse:  G(n,p).
//     – Henneberg:     generically rigid (k, k(k+1)/2)-tight graphs grown by
//     type-I vertex additions and type-II edge splits.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same graph.
//   - Never panics at runtime; option constructors panic on nil inputs.
//   - Structured errors wrapping the sentinels below with the constructor name.
//
// Errors:
//
//   - ErrTooFewVertices      size parameter below the constructor minimum.
//   - ErrInvalidProbability  probability outside [0,1].
//   - ErrNeedRandSource      stochastic constructor without an RNG.
//   - ErrOptionViolation     unknown enum value.
//   - ErrConstructFailed     nil constructor or bitgraph capacity exceeded.
package builder
