// SPDX-License-Identifier: MIT

package rigidity

import (
	"errors"
	"fmt"
)

// Sentinel errors for option validation.
var (
	ErrDim       = errors.New("rigidity: dimension has to be positive")
	ErrTrials    = errors.New("rigidity: trials has to be positive and odd")
	ErrTolerance = errors.New("rigidity: tolerance cannot be negative")
	ErrMethod    = errors.New("rigidity: unknown rank method")
)

// Method selects the numerical rank algorithm.
type Method int

const (
	// PivotedQR is Householder QR with column pivoting.
	PivotedQR Method = iota
	// SVD is gonum's singular value decomposition.
	SVD
)

var methodNames = [...]string{"qr", "svd"}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if name == s {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrMethod)
}

// Options configures an Oracle.
type Options struct {
	// Dim is the ambient dimension d ≥ 1.
	Dim int
	// Trials is the odd number of random realizations per measurement.
	Trials int
	// Tolerance is the relative rank threshold; 0 selects
	// machine epsilon times the smaller matrix dimension.
	Tolerance float64
	// Method is the rank algorithm.
	Method Method
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Dim 3, one trial, automatic tolerance, PivotedQR.
func DefaultOptions() Options {
	return Options{Dim: 3, Trials: 1, Method: PivotedQR}
}

// WithDim sets the ambient dimension.
func WithDim(d int) Option { return func(o *Options) { o.Dim = d } }

// WithTrials sets the number of random realizations; it must be odd.
func WithTrials(n int) Option { return func(o *Options) { o.Trials = n } }

// WithTolerance sets the relative rank threshold.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithMethod selects the rank algorithm.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

func (o Options) validate() error {
	switch {
	case o.Dim < 1:
		return fmt.Errorf("dim=%d: %w", o.Dim, ErrDim)
	case o.Trials < 1 || o.Trials%2 == 0:
		return fmt.Errorf("trials=%d: %w", o.Trials, ErrTrials)
	case o.Tolerance < 0:
		return fmt.Errorf("tolerance=%g: %w", o.Tolerance, ErrTolerance)
	case o.Method != PivotedQR && o.Method != SVD:
		return fmt.Errorf("%v: %w", o.Method, ErrMethod)
	}
	return nil
}

// Trial is the outcome of one random realization.
type Trial struct {
	Rank      int
	ExcessDof int
}

// Measurement aggregates the trials of one graph.
type Measurement struct {
	// RigidRank is d·n - d(d+1)/2 for the measured graph.
	RigidRank int
	// Ranks and ExcessDof hold one entry per trial, in trial order.
	Ranks     []int
	ExcessDof []int
	// Majority is the most frequent excess, ties going to the smaller value.
	Majority int
	// Agreement is the number of trials whose excess equals Majority.
	Agreement int
}

// Unanimous reports whether every trial measured the same excess.
func (m Measurement) Unanimous() bool { return m.Agreement == len(m.ExcessDof) }

// Vote counts the trials whose excess satisfies pred and reports whether
// they form a strict majority.
func (m Measurement) Vote(pred func(excess int) bool) (passes int, ok bool) {
	for _, e := range m.ExcessDof {
		if pred(e) {
			passes++
		}
	}
	return passes, passes > len(m.ExcessDof)/2
}
