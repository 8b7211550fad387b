// SPDX-License-Identifier: MIT

package sparsity

import "fmt"

// Options configures Select.
type Options struct {
	K, L        *Rational
	MinVertices int
	Henneberg   bool

	// Kind forces a strategy; nil lets Select choose.
	Kind *Kind
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options that select KindNone.
func DefaultOptions() Options { return Options{} }

// WithK sets k.
func WithK(k Rational) Option {
	return func(o *Options) { o.K = &k }
}

// WithL sets l. It is an error without WithK.
func WithL(l Rational) Option {
	return func(o *Options) { o.L = &l }
}

// WithMinVertices fixes the subgraph-size threshold instead of deriving it.
func WithMinVertices(n int) Option {
	return func(o *Options) { o.MinVertices = n }
}

// WithHenneberg selects type-I decomposability checking with l = k(k+1)/2.
func WithHenneberg() Option {
	return func(o *Options) { o.Henneberg = true }
}

// WithKind forces a strategy; Select still checks that it is valid for the
// parameters.
func WithKind(k Kind) Option {
	return func(o *Options) { o.Kind = &k }
}

// Select validates the configuration and returns the strategy to run.
//
// With only k set, l defaults to k(k+1)/2. Unless forced, the pebble game is
// chosen whenever it is exact for the parameters, the combination walk when
// k < 2 and the bitmask walk otherwise. Without k nothing is pruned.
func Select(opts ...Option) (Strategy, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Kind != nil && *o.Kind == KindHenneberg {
		o.Henneberg = true
	}

	if o.K == nil {
		if o.L != nil {
			return nil, fmt.Errorf("Select: %w", ErrLWithoutK)
		}
		if o.Henneberg {
			return nil, fmt.Errorf("Select: henneberg without k: %w", ErrIncompatible)
		}
		if o.Kind != nil && *o.Kind != KindNone {
			return nil, fmt.Errorf("Select: %s without k: %w", *o.Kind, ErrStrategyDomain)
		}
		return noneStrategy{}, nil
	}

	l := DefaultL(*o.K)
	if o.L != nil {
		l = *o.L
	}
	p, err := NewParams(*o.K, l, o.MinVertices)
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}

	if o.Henneberg {
		if o.L != nil || !p.K.IsInt() {
			return nil, fmt.Errorf("Select: k=%s: %w", p.K, ErrIncompatible)
		}
		if o.Kind != nil && *o.Kind != KindHenneberg {
			return nil, fmt.Errorf("Select: %s with henneberg: %w", *o.Kind, ErrIncompatible)
		}
		return hennebergStrategy{p: p, k: int(p.K.Num)}, nil
	}

	kind := autoKind(p)
	if o.Kind != nil {
		kind = *o.Kind
	}
	return strategyFor(kind, p)
}

// autoKind picks the cheapest exact strategy for p.
func autoKind(p Params) Kind {
	switch {
	case p.IntegerPebbleRegime():
		return KindPebble
	case p.K.Num < 2*p.K.Den:
		return KindCombination
	default:
		return KindBitmask
	}
}

func strategyFor(kind Kind, p Params) (Strategy, error) {
	switch kind {
	case KindNone:
		return noneStrategy{p: p}, nil
	case KindCombination:
		return combinationStrategy{p: p}, nil
	case KindBitmask:
		return bitmaskStrategy{p: p}, nil
	case KindPebble:
		if !p.IntegerPebbleRegime() {
			return nil, fmt.Errorf("Select: pebble with %s: %w", p, ErrStrategyDomain)
		}
		return pebbleStrategy{p: p, k: int(p.K.Num), l: int(p.L.Num)}, nil
	default:
		return nil, fmt.Errorf("Select: %s: %w", kind, ErrStrategyDomain)
	}
}
