// SPDX-License-Identifier: MIT

// RNG utilities shared by the oracle and its callers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use StreamRNG to create independent streams for parallel workers.

package rigidity

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// StreamRNG returns the stream-th independent generator derived from seed.
// Results keyed by stream do not depend on how work is scheduled.
func StreamRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
