// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

// Kind identifies the Go type used for the elements of a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindByte
	KindSByte
	KindShort
	KindSShort
	KindLong
	KindSLong
	KindFloat
	KindDouble
	KindRational
	KindSignedRational
	KindString
)

// Value is the payload of an ExifValue.
// The set of implementations is closed: the scalar types Byte, SByte, Short, SShort,
// Long, SLong, Float, Double, Rational, SignedRational and String, and the array types
// Bytes, SBytes, Shorts, SShorts, Longs, SLongs, Floats, Doubles, Rationals and SignedRationals.
type Value interface {
	// Kind returns the element kind.
	Kind() Kind
	// IsArray reports whether the value holds a slice of elements.
	IsArray() bool

	sealed()
}

type (
	Byte   uint8
	SByte  int8
	Short  uint16
	SShort int16
	Long   uint32
	SLong  int32
	Float  float32
	Double float64
	String string

	Bytes           []uint8
	SBytes          []int8
	Shorts          []uint16
	SShorts         []int16
	Longs           []uint32
	SLongs          []int32
	Floats          []float32
	Doubles         []float64
	Rationals       []Rational
	SignedRationals []SignedRational
)

func (Byte) Kind() Kind            { return KindByte }
func (SByte) Kind() Kind           { return KindSByte }
func (Short) Kind() Kind           { return KindShort }
func (SShort) Kind() Kind          { return KindSShort }
func (Long) Kind() Kind            { return KindLong }
func (SLong) Kind() Kind           { return KindSLong }
func (Float) Kind() Kind           { return KindFloat }
func (Double) Kind() Kind          { return KindDouble }
func (String) Kind() Kind          { return KindString }
func (Bytes) Kind() Kind           { return KindByte }
func (SBytes) Kind() Kind          { return KindSByte }
func (Shorts) Kind() Kind          { return KindShort }
func (SShorts) Kind() Kind         { return KindSShort }
func (Longs) Kind() Kind           { return KindLong }
func (SLongs) Kind() Kind          { return KindSLong }
func (Floats) Kind() Kind          { return KindFloat }
func (Doubles) Kind() Kind         { return KindDouble }
func (Rationals) Kind() Kind       { return KindRational }
func (SignedRationals) Kind() Kind { return KindSignedRational }

func (Byte) IsArray() bool            { return false }
func (SByte) IsArray() bool           { return false }
func (Short) IsArray() bool           { return false }
func (SShort) IsArray() bool          { return false }
func (Long) IsArray() bool            { return false }
func (SLong) IsArray() bool           { return false }
func (Float) IsArray() bool           { return false }
func (Double) IsArray() bool          { return false }
func (String) IsArray() bool          { return false }
func (Bytes) IsArray() bool           { return true }
func (SBytes) IsArray() bool          { return true }
func (Shorts) IsArray() bool          { return true }
func (SShorts) IsArray() bool         { return true }
func (Longs) IsArray() bool           { return true }
func (SLongs) IsArray() bool          { return true }
func (Floats) IsArray() bool          { return true }
func (Doubles) IsArray() bool         { return true }
func (Rationals) IsArray() bool       { return true }
func (SignedRationals) IsArray() bool { return true }

func (Byte) sealed()            {}
func (SByte) sealed()           {}
func (Short) sealed()           {}
func (SShort) sealed()          {}
func (Long) sealed()            {}
func (SLong) sealed()           {}
func (Float) sealed()           {}
func (Double) sealed()          {}
func (String) sealed()          {}
func (Bytes) sealed()           {}
func (SBytes) sealed()          {}
func (Shorts) sealed()          {}
func (SShorts) sealed()         {}
func (Longs) sealed()           {}
func (SLongs) sealed()          {}
func (Floats) sealed()          {}
func (Doubles) sealed()         {}
func (Rationals) sealed()       {}
func (SignedRationals) sealed() {}

// valueLen returns the number of elements in v.
// Strings count their UTF-8 bytes.
func valueLen(v Value) int {
	switch vv := v.(type) {
	case nil:
		return 0
	case String:
		return len(vv)
	case Bytes:
		return len(vv)
	case SBytes:
		return len(vv)
	case Shorts:
		return len(vv)
	case SShorts:
		return len(vv)
	case Longs:
		return len(vv)
	case SLongs:
		return len(vv)
	case Floats:
		return len(vv)
	case Doubles:
		return len(vv)
	case Rationals:
		return len(vv)
	case SignedRationals:
		return len(vv)
	default:
		return 1
	}
}
