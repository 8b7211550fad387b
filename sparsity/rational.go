// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational is a fraction Num/Den kept in lowest terms with Den > 0.
type Rational struct {
	Num, Den int64
}

// Int returns the integer n as a Rational.
func Int(n int64) Rational { return Rational{Num: n, Den: 1} }

// NewRational reduces num/den and moves the sign to the numerator.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("NewRational(%d/%d): %w", num, den, ErrBadRational)
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num, den = num/g, den/g
	}
	return Rational{Num: num, Den: den}, nil
}

// ParseRational accepts "a" or "a/b" with optional signs.
func ParseRational(s string) (Rational, error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrBadRational)
	}
	den := int64(1)
	if hasDen {
		if den, err = strconv.ParseInt(denStr, 10, 64); err != nil {
			return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrBadRational)
		}
	}
	return NewRational(num, den)
}

// IsInt reports whether r is an integer.
func (r Rational) IsInt() bool { return r.Den == 1 }

// Floor returns ⌊r⌋.
func (r Rational) Floor() int64 {
	q := r.Num / r.Den
	if r.Num%r.Den != 0 && r.Num < 0 {
		q--
	}
	return q
}

// String renders integers without a denominator.
func (r Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
