// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the builder,
//     resolves cfg, runs cons in order.
//   - Factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rigidity/bitgraph"
)

// Constructor appends a component to b using the resolved builderConfig.
// Constructors validate parameters before touching b and return sentinel
// errors; they never panic.
type Constructor func(b *bitgraph.Builder, cfg builderConfig) error

// BuildGraph resolves bopts and applies all constructors to an empty
// builder in order. Any constructor error is wrapped with "BuildGraph: %w"
// and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*bitgraph.Graph, error) {
	b, err := bitgraph.NewBuilder(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return b.Graph(), nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *bitgraph.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}
