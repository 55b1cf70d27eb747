// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile_test

import (
	"encoding"
	"math"
	"testing"

	"github.com/bep/exifprofile"

	qt "github.com/frankban/quicktest"
)

func TestRational(t *testing.T) {
	c := qt.New(t)

	c.Run("NewRational", func(c *qt.C) {
		c.Assert(exifprofile.NewRational(6, 9, false), qt.Equals, exifprofile.Rational{Numerator: 6, Denominator: 9})
		c.Assert(exifprofile.NewRational(6, 9, true), qt.Equals, exifprofile.Rational{Numerator: 2, Denominator: 3})
		c.Assert(exifprofile.NewRational(90, 600, true), qt.Equals, exifprofile.Rational{Numerator: 3, Denominator: 20})
		c.Assert(exifprofile.NewRational(7, 7, true), qt.Equals, exifprofile.Rational{Numerator: 1, Denominator: 1})
		c.Assert(exifprofile.NewRational(5, 1, true), qt.Equals, exifprofile.Rational{Numerator: 5, Denominator: 1})
		// A zero numerator collapses to the indeterminate form.
		c.Assert(exifprofile.NewRational(0, 5, true), qt.Equals, exifprofile.Rational{})
	})

	c.Run("NewSignedRational", func(c *qt.C) {
		c.Assert(exifprofile.NewSignedRational(13, -3, true), qt.Equals, exifprofile.SignedRational{Numerator: -13, Denominator: 3})
		c.Assert(exifprofile.NewSignedRational(-6, -9, true), qt.Equals, exifprofile.SignedRational{Numerator: 2, Denominator: 3})
		c.Assert(exifprofile.NewSignedRational(-6, 9, false), qt.Equals, exifprofile.SignedRational{Numerator: -6, Denominator: 9})
		c.Assert(exifprofile.NewSignedRational(-1, 0, true), qt.Equals, exifprofile.SignedRational{Numerator: -1, Denominator: 0})
		c.Assert(exifprofile.NewSignedRational(math.MinInt32, -2, true), qt.Equals, exifprofile.SignedRational{Numerator: 1 << 30, Denominator: 1})

		// The positive form of math.MinInt32/-1 does not fit.
		r := exifprofile.NewSignedRational(math.MinInt32, -1, true)
		c.Assert(r, qt.Equals, exifprofile.SignedRational{Numerator: math.MinInt32, Denominator: -1})
		c.Assert(r.Float64(), qt.Equals, 2147483648.0)
		r = exifprofile.NewSignedRational(3, math.MinInt32, true)
		c.Assert(r.Float64() < 0, qt.IsTrue)
	})

	c.Run("FromFloat64", func(c *qt.C) {
		c.Assert(exifprofile.RationalFromFloat64(2.5, false), qt.Equals, exifprofile.Rational{Numerator: 5, Denominator: 2})
		c.Assert(exifprofile.RationalFromFloat64(0.5, true), qt.Equals, exifprofile.Rational{Numerator: 1, Denominator: 2})
		c.Assert(exifprofile.RationalFromFloat64(1.0/3, false), qt.Equals, exifprofile.Rational{Numerator: 1, Denominator: 3})
		c.Assert(exifprofile.RationalFromFloat64(0, false), qt.Equals, exifprofile.Rational{Numerator: 0, Denominator: 1})
		c.Assert(exifprofile.RationalFromFloat64(42, false), qt.Equals, exifprofile.Rational{Numerator: 42, Denominator: 1})
		c.Assert(exifprofile.RationalFromFloat64(math.Inf(1), false), qt.Equals, exifprofile.Rational{Numerator: 1, Denominator: 0})
		c.Assert(exifprofile.RationalFromFloat64(math.NaN(), false), qt.Equals, exifprofile.Rational{})

		c.Assert(exifprofile.SignedRationalFromFloat64(-0.25, false), qt.Equals, exifprofile.SignedRational{Numerator: -1, Denominator: 4})
		c.Assert(exifprofile.SignedRationalFromFloat64(math.Inf(-1), false), qt.Equals, exifprofile.SignedRational{Numerator: -1, Denominator: 0})

		pi := exifprofile.RationalFromFloat64(math.Pi, false)
		c.Assert(math.Abs(pi.Float64()-math.Pi) <= 0.000001, qt.IsTrue)
		piBest := exifprofile.RationalFromFloat64(math.Pi, true)
		c.Assert(math.Abs(piBest.Float64()-math.Pi) <= math.Abs(pi.Float64()-math.Pi), qt.IsTrue)
	})

	c.Run("Float64", func(c *qt.C) {
		c.Assert(exifprofile.Rational{Numerator: 1, Denominator: 4}.Float64(), qt.Equals, 0.25)
		c.Assert(math.IsNaN(exifprofile.Rational{}.Float64()), qt.IsTrue)
		c.Assert(math.IsInf(exifprofile.Rational{Numerator: 3, Denominator: 0}.Float64(), 1), qt.IsTrue)
		c.Assert(math.IsInf(exifprofile.SignedRational{Numerator: -3, Denominator: 0}.Float64(), -1), qt.IsTrue)
	})

	c.Run("Float64 pairs", func(c *qt.C) {
		for _, test := range []struct {
			num, den int64
		}{
			{50, 100},
			{1, 3},
			{355, 113},
			{4294967295, 2},
			{17, 4294967291},
			{-7, 9},
			{2147483647, -2147483648},
		} {
			want := float64(test.num) / float64(test.den)
			if test.num >= 0 && test.den > 0 {
				for _, simplify := range []bool{false, true} {
					r := exifprofile.NewRational(uint32(test.num), uint32(test.den), simplify)
					c.Assert(math.Abs(r.Float64()-want) <= 1e-9*math.Abs(want), qt.IsTrue, qt.Commentf("%d/%d", test.num, test.den))
				}
			}
			if test.num >= math.MinInt32 && test.num <= math.MaxInt32 && test.den >= math.MinInt32 && test.den <= math.MaxInt32 {
				for _, simplify := range []bool{false, true} {
					r := exifprofile.NewSignedRational(int32(test.num), int32(test.den), simplify)
					c.Assert(math.Abs(r.Float64()-want) <= 1e-9*math.Abs(want), qt.IsTrue, qt.Commentf("%d/%d", test.num, test.den))
				}
			}
		}
	})

	c.Run("String", func(c *qt.C) {
		c.Assert(exifprofile.Rational{Numerator: 1, Denominator: 2}.String(), qt.Equals, "1/2")
		c.Assert(exifprofile.Rational{Numerator: 4, Denominator: 1}.String(), qt.Equals, "4")
		c.Assert(exifprofile.Rational{Numerator: 0, Denominator: 1}.String(), qt.Equals, "0")
		c.Assert(exifprofile.Rational{}.String(), qt.Equals, "[ Indeterminate ]")
		c.Assert(exifprofile.Rational{Numerator: 1}.String(), qt.Equals, "[ PositiveInfinity ]")
		c.Assert(exifprofile.SignedRational{Numerator: -1}.String(), qt.Equals, "[ NegativeInfinity ]")
		c.Assert(exifprofile.SignedRational{Numerator: -3, Denominator: 4}.String(), qt.Equals, "-3/4")
	})

	c.Run("MarshalText", func(c *qt.C) {
		text, err := encoding.TextMarshaler(exifprofile.Rational{Numerator: 1, Denominator: 2}).MarshalText()
		c.Assert(err, qt.IsNil)
		c.Assert(string(text), qt.Equals, "1/2")
	})

	c.Run("UnmarshalText", func(c *qt.C) {
		var r exifprofile.Rational
		c.Assert(r.UnmarshalText([]byte("3/4")), qt.IsNil)
		c.Assert(r, qt.Equals, exifprofile.Rational{Numerator: 3, Denominator: 4})
		c.Assert(r.UnmarshalText([]byte("4")), qt.IsNil)
		c.Assert(r, qt.Equals, exifprofile.Rational{Numerator: 4, Denominator: 1})
		c.Assert(r.UnmarshalText([]byte("0.5")), qt.IsNil)
		c.Assert(r, qt.Equals, exifprofile.Rational{Numerator: 1, Denominator: 2})
		c.Assert(r.UnmarshalText([]byte("-1/2")), qt.ErrorMatches, ".*negative.*")
		c.Assert(r.UnmarshalText([]byte("a/b")), qt.IsNotNil)

		var sr exifprofile.SignedRational
		c.Assert(sr.UnmarshalText([]byte("-1/2")), qt.IsNil)
		c.Assert(sr, qt.Equals, exifprofile.SignedRational{Numerator: -1, Denominator: 2})
		c.Assert(sr.UnmarshalText([]byte("4294967295")), qt.ErrorMatches, ".*out of range")
	})
}
