// SPDX-License-Identifier: MIT

package sparsity

import "errors"

var (
	// ErrBadRational is returned by ParseRational and NewRational for
	// malformed input or a zero denominator.
	ErrBadRational = errors.New("sparsity: invalid rational number")

	// ErrNonPositiveK indicates k ≤ 0.
	ErrNonPositiveK = errors.New("sparsity: k must be positive")

	// ErrMinVertices indicates a negative subgraph-size threshold.
	ErrMinVertices = errors.New("sparsity: minimum subgraph size cannot be negative")

	// ErrLWithoutK indicates that l was configured without k.
	ErrLWithoutK = errors.New("sparsity: k is required when providing l")

	// ErrIncompatible indicates Henneberg mode combined with an explicit l
	// or a non-integer k.
	ErrIncompatible = errors.New("sparsity: henneberg mode needs an integer k and no explicit l")

	// ErrStrategyDomain indicates a forced strategy that is not valid for the
	// configured parameters.
	ErrStrategyDomain = errors.New("sparsity: strategy not valid for these parameters")
)
