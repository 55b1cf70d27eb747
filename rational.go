// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	_ encoding.TextUnmarshaler = (*Rational)(nil)
	_ encoding.TextMarshaler   = Rational{}
	_ encoding.TextUnmarshaler = (*SignedRational)(nil)
	_ encoding.TextMarshaler   = SignedRational{}
)

// Rational is an unsigned fraction as stored in EXIF type 5.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// NewRational returns a new Rational.
// If simplify is set, the fraction is reduced, see Simplify.
func NewRational(num, den uint32, simplify bool) Rational {
	if !simplify {
		return Rational{Numerator: num, Denominator: den}
	}
	lr := longRational{num: int64(num), den: int64(den)}.simplify()
	return Rational{Numerator: uint32(lr.num), Denominator: uint32(lr.den)}
}

// RationalFromFloat64 returns the fraction closest to v.
// If bestPrecision is false, the search stops as soon as the fraction is within 1e-6 of v.
// Negative values are stored as their absolute value.
func RationalFromFloat64(v float64, bestPrecision bool) Rational {
	lr := longRationalFromFloat64(math.Abs(v), bestPrecision, math.MaxUint32)
	return Rational{Numerator: uint32(lr.num), Denominator: uint32(lr.den)}
}

// Float64 returns the float64 representation of the rational number.
// 0/0 is NaN and n/0 is positive infinity.
func (r Rational) Float64() float64 {
	return r.long().float64()
}

// Simplify returns r reduced by the greatest common divisor.
func (r Rational) Simplify() Rational {
	return NewRational(r.Numerator, r.Denominator, true)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string will be the numerator only.
func (r Rational) String() string {
	return r.long().String()
}

// Kind implements Value.
func (r Rational) Kind() Kind { return KindRational }

// IsArray implements Value.
func (r Rational) IsArray() bool { return false }

func (r Rational) sealed() {}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts "n/d", a plain integer or a decimal number.
func (r *Rational) UnmarshalText(text []byte) error {
	lr, err := parseLongRational(string(text), math.MaxUint32)
	if err != nil {
		return err
	}
	if lr.num < 0 {
		return fmt.Errorf("failed to parse %q as a rational number: negative value", text)
	}
	r.Numerator, r.Denominator = uint32(lr.num), uint32(lr.den)
	return nil
}

func (r Rational) long() longRational {
	return longRational{num: int64(r.Numerator), den: int64(r.Denominator)}
}

// SignedRational is a signed fraction as stored in EXIF type 10.
type SignedRational struct {
	Numerator   int32
	Denominator int32
}

// NewSignedRational returns a new SignedRational.
// If simplify is set, the fraction is reduced, see Simplify.
func NewSignedRational(num, den int32, simplify bool) SignedRational {
	if !simplify {
		return SignedRational{Numerator: num, Denominator: den}
	}
	lr := longRational{num: int64(num), den: int64(den)}.simplify()
	if lr.num > math.MaxInt32 || lr.den > math.MaxInt32 {
		// Moving the sign of math.MinInt32 to the numerator overflows.
		return SignedRational{Numerator: num, Denominator: den}
	}
	return SignedRational{Numerator: int32(lr.num), Denominator: int32(lr.den)}
}

// SignedRationalFromFloat64 returns the fraction closest to v.
// If bestPrecision is false, the search stops as soon as the fraction is within 1e-6 of v.
func SignedRationalFromFloat64(v float64, bestPrecision bool) SignedRational {
	lr := longRationalFromFloat64(v, bestPrecision, math.MaxInt32)
	return SignedRational{Numerator: int32(lr.num), Denominator: int32(lr.den)}
}

// Float64 returns the float64 representation of the rational number.
func (r SignedRational) Float64() float64 {
	return r.long().float64()
}

// Simplify returns r reduced by the greatest common divisor.
func (r SignedRational) Simplify() SignedRational {
	return NewSignedRational(r.Numerator, r.Denominator, true)
}

// String returns the string representation of the rational number.
func (r SignedRational) String() string {
	return r.long().String()
}

// Kind implements Value.
func (r SignedRational) Kind() Kind { return KindSignedRational }

// IsArray implements Value.
func (r SignedRational) IsArray() bool { return false }

func (r SignedRational) sealed() {}

// MarshalText implements encoding.TextMarshaler.
func (r SignedRational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *SignedRational) UnmarshalText(text []byte) error {
	lr, err := parseLongRational(string(text), math.MaxInt32)
	if err != nil {
		return err
	}
	r.Numerator, r.Denominator = int32(lr.num), int32(lr.den)
	return nil
}

func (r SignedRational) long() longRational {
	return longRational{num: int64(r.Numerator), den: int64(r.Denominator)}
}

// longRational is the 64-bit working form of both rational types.
// Infinity is stored as ±1/0 and an indeterminate value as 0/0.
type longRational struct {
	num int64
	den int64
}

func (r longRational) isIndeterminate() bool {
	return r.den == 0 && r.num == 0
}

func (r longRational) isPositiveInfinity() bool {
	return r.den == 0 && r.num == 1
}

func (r longRational) isNegativeInfinity() bool {
	return r.den == 0 && r.num == -1
}

func (r longRational) isInteger() bool {
	return r.den == 1
}

func (r longRational) isZero() bool {
	return r.den == 1 && r.num == 0
}

func (r longRational) float64() float64 {
	switch {
	case r.isIndeterminate():
		return math.NaN()
	case r.den == 0 && r.num < 0:
		return math.Inf(-1)
	case r.den == 0:
		return math.Inf(1)
	}
	return float64(r.num) / float64(r.den)
}

func (r longRational) String() string {
	switch {
	case r.isIndeterminate():
		return "[ Indeterminate ]"
	case r.isPositiveInfinity():
		return "[ PositiveInfinity ]"
	case r.isNegativeInfinity():
		return "[ NegativeInfinity ]"
	case r.isZero():
		return "0"
	case r.isInteger():
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func (r longRational) simplify() longRational {
	if r.isIndeterminate() || r.isPositiveInfinity() || r.isNegativeInfinity() || r.isInteger() {
		return r
	}
	if r.num == 0 {
		r.den = 0
		return r
	}
	if r.num == r.den {
		return longRational{num: 1, den: 1}
	}

	// Denominator must be positive.
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}

	if d := gcd(abs64(r.num), r.den); d > 1 {
		r.num, r.den = r.num/d, r.den/d
	}
	return r
}

// longRationalFromFloat64 approximates v with continued fractions.
// Both numerator and denominator are kept within limit.
func longRationalFromFloat64(v float64, bestPrecision bool, limit int64) longRational {
	switch {
	case math.IsNaN(v):
		return longRational{}
	case math.IsInf(v, 1):
		return longRational{num: 1}
	case math.IsInf(v, -1):
		return longRational{num: -1}
	}

	const epsilon = 0.000001

	neg := v < 0
	x := math.Abs(v)
	if x > float64(limit) {
		x = float64(limit)
	}

	// Convergents h/k.
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	f := x
	for i := 0; i < 64; i++ {
		a := math.Floor(f)
		if a > float64(limit) {
			break
		}
		ai := int64(a)
		h2 := ai*h1 + h0
		k2 := ai*k1 + k0
		if h2 > limit || k2 > limit {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2

		diff := math.Abs(float64(h1)/float64(k1) - x)
		if diff == 0 || (!bestPrecision && diff <= epsilon) {
			break
		}
		frac := f - a
		if frac == 0 {
			break
		}
		f = 1 / frac
	}

	if k1 == 0 {
		// x did not fit a single convergent; use the clamped integer.
		h1, k1 = int64(x), 1
	}

	if neg {
		h1 = -h1
	}
	if h1 == 0 {
		return longRational{num: 0, den: 1}
	}
	return longRational{num: h1, den: k1}.simplify()
}

func parseLongRational(s string, limit int64) (longRational, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return longRational{}, fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return longRational{}, fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		if abs64(n) > limit || abs64(d) > limit {
			return longRational{}, fmt.Errorf("failed to parse %q as a rational number: out of range", s)
		}
		return longRational{num: n, den: d}, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if abs64(n) > limit {
			return longRational{}, fmt.Errorf("failed to parse %q as a rational number: out of range", s)
		}
		return longRational{num: n, den: 1}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return longRational{}, fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	return longRationalFromFloat64(f, false, limit), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
