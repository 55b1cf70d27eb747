// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ExifValue is a single EXIF entry: a tag, its data type and its payload.
type ExifValue struct {
	tag      Tag
	dataType DataType
	isArray  bool
	value    Value
}

// NewValue creates an entry for tag with the tag's canonical data type.
//
// raw may be a Value of the matching kind, text in the invariant number format
// (whitespace or comma separated for arrays, "n/d" or decimals for rationals),
// a []byte or string for byte arrays, or nil for an entry without a value.
// Other types are formatted with fmt and parsed as text.
func NewValue(tag Tag, raw any) (*ExifValue, error) {
	def, ok := tagDefs[tag]
	if !ok {
		return nil, fmt.Errorf("%w: no definition for tag %s", ErrNotSupported, tag)
	}

	v := &ExifValue{tag: tag, dataType: def.dataType, isArray: def.isArray}
	if raw == nil {
		return v, nil
	}

	val, err := parseValue(def.dataType, def.isArray, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrNotSupported, tag, err)
	}
	v.value = val

	return v, nil
}

// Tag returns the entry's tag.
func (v *ExifValue) Tag() Tag {
	return v.tag
}

// DataType returns the entry's data type.
func (v *ExifValue) DataType() DataType {
	return v.dataType
}

// IsArray reports whether the entry holds a slice of elements.
func (v *ExifValue) IsArray() bool {
	return v.isArray
}

// Value returns the payload, nil if unset.
func (v *ExifValue) Value() Value {
	return v.value
}

// SetValue replaces the payload.
// val must match the entry's data type and arity, else ErrTypeMismatch is returned
// and the old payload is kept. A nil val clears the payload.
func (v *ExifValue) SetValue(val Value) error {
	if val == nil {
		v.value = nil
		return nil
	}
	if val.Kind() != v.dataType.Kind() || val.IsArray() != v.isArray {
		return fmt.Errorf("%w: %s is %s (array: %t), got %T", ErrTypeMismatch, v.tag, v.dataType, v.isArray, val)
	}
	v.value = val
	return nil
}

// NumberOfComponents returns the element count written to the entry header.
// For ASCII this is the UTF-8 byte length of the text.
func (v *ExifValue) NumberOfComponents() uint32 {
	if v.value == nil {
		if v.isArray || v.dataType == DataTypeASCII {
			return 0
		}
		return 1
	}
	if v.dataType == DataTypeASCII || v.isArray {
		return uint32(valueLen(v.value))
	}
	return 1
}

// Length returns the encoded size of the payload in bytes, at least 4.
func (v *ExifValue) Length() uint32 {
	if v.value == nil {
		return 4
	}
	n := v.NumberOfComponents() * v.dataType.Size()
	if n < 4 {
		return 4
	}
	return n
}

// hasValue reports whether the entry has anything to write.
func (v *ExifValue) hasValue() bool {
	if v.value == nil {
		return false
	}
	if s, ok := v.value.(String); ok {
		return len(s) > 0
	}
	return true
}

// Equal reports whether v and o have the same tag, data type, arity and payload.
func (v *ExifValue) Equal(o *ExifValue) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	return v.tag == o.tag && v.dataType == o.dataType && v.isArray == o.isArray && valuesEqual(v.value, o.value)
}

// String returns a human readable rendition of the payload.
// Enumerated tags render their description, e.g. "Horizontal (normal)" for Orientation 1.
func (v *ExifValue) String() string {
	if v.value == nil {
		return ""
	}
	if s, ok := describe(v.tag, v.value); ok {
		return s
	}
	return formatValue(v.value)
}

func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.IsArray() != b.IsArray() {
		return false
	}
	if !a.IsArray() {
		return a == b
	}
	// Kind and arity identify the concrete type.
	switch av := a.(type) {
	case Bytes:
		return slices.Equal(av, b.(Bytes))
	case SBytes:
		return slices.Equal(av, b.(SBytes))
	case Shorts:
		return slices.Equal(av, b.(Shorts))
	case SShorts:
		return slices.Equal(av, b.(SShorts))
	case Longs:
		return slices.Equal(av, b.(Longs))
	case SLongs:
		return slices.Equal(av, b.(SLongs))
	case Floats:
		return slices.Equal(av, b.(Floats))
	case Doubles:
		return slices.Equal(av, b.(Doubles))
	case Rationals:
		return slices.Equal(av, b.(Rationals))
	case SignedRationals:
		return slices.Equal(av, b.(SignedRationals))
	default:
		return false
	}
}

func formatValue(val Value) string {
	switch vv := val.(type) {
	case String:
		return string(vv)
	case Byte:
		return fmt.Sprintf("%02X", uint8(vv))
	case SByte:
		return fmt.Sprintf("%02X", uint8(vv))
	case Short:
		return strconv.FormatUint(uint64(vv), 10)
	case SShort:
		return strconv.FormatInt(int64(vv), 10)
	case Long:
		return strconv.FormatUint(uint64(vv), 10)
	case SLong:
		return strconv.FormatInt(int64(vv), 10)
	case Float:
		return strconv.FormatFloat(float64(vv), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(float64(vv), 'g', -1, 64)
	case Rational:
		return vv.String()
	case SignedRational:
		return vv.String()
	case Bytes:
		return joinFormatted(vv, func(e uint8) Value { return Byte(e) })
	case SBytes:
		return joinFormatted(vv, func(e int8) Value { return SByte(e) })
	case Shorts:
		return joinFormatted(vv, func(e uint16) Value { return Short(e) })
	case SShorts:
		return joinFormatted(vv, func(e int16) Value { return SShort(e) })
	case Longs:
		return joinFormatted(vv, func(e uint32) Value { return Long(e) })
	case SLongs:
		return joinFormatted(vv, func(e int32) Value { return SLong(e) })
	case Floats:
		return joinFormatted(vv, func(e float32) Value { return Float(e) })
	case Doubles:
		return joinFormatted(vv, func(e float64) Value { return Double(e) })
	case Rationals:
		return joinFormatted(vv, func(e Rational) Value { return e })
	case SignedRationals:
		return joinFormatted(vv, func(e SignedRational) Value { return e })
	default:
		return fmt.Sprintf("%v", val)
	}
}

func joinFormatted[S ~[]E, E any](s S, toValue func(E) Value) string {
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatValue(toValue(e)))
	}
	return sb.String()
}

// parseValue converts raw into a Value of the given data type and arity.
func parseValue(dataType DataType, isArray bool, raw any) (Value, error) {
	kind := dataType.Kind()
	if v, ok := raw.(Value); ok && v.Kind() == kind && v.IsArray() == isArray {
		return v, nil
	}

	if kind == KindByte && isArray {
		switch rv := raw.(type) {
		case []byte:
			return Bytes(slices.Clone(rv)), nil
		case string:
			return Bytes(rv), nil
		}
	}

	s := toText(raw)
	if kind == KindString {
		return String(s), nil
	}

	if !isArray {
		return parseScalar(kind, strings.TrimSpace(s))
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '[' || r == ']' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no value in %q", s)
	}

	switch kind {
	case KindByte:
		return parseElements[Bytes](fields, parseUint[uint8])
	case KindSByte:
		return parseElements[SBytes](fields, parseInt[int8])
	case KindShort:
		return parseElements[Shorts](fields, parseUint[uint16])
	case KindSShort:
		return parseElements[SShorts](fields, parseInt[int16])
	case KindLong:
		return parseElements[Longs](fields, parseUint[uint32])
	case KindSLong:
		return parseElements[SLongs](fields, parseInt[int32])
	case KindFloat:
		return parseElements[Floats](fields, parseFloat[float32])
	case KindDouble:
		return parseElements[Doubles](fields, parseFloat[float64])
	case KindRational:
		return parseElements[Rationals](fields, parseRational)
	case KindSignedRational:
		return parseElements[SignedRationals](fields, parseSignedRational)
	default:
		return nil, fmt.Errorf("unsupported kind %s", kind)
	}
}

func parseScalar(kind Kind, s string) (Value, error) {
	switch kind {
	case KindByte:
		v, err := parseUint[uint8](s)
		return Byte(v), err
	case KindSByte:
		v, err := parseInt[int8](s)
		return SByte(v), err
	case KindShort:
		v, err := parseUint[uint16](s)
		return Short(v), err
	case KindSShort:
		v, err := parseInt[int16](s)
		return SShort(v), err
	case KindLong:
		v, err := parseUint[uint32](s)
		return Long(v), err
	case KindSLong:
		v, err := parseInt[int32](s)
		return SLong(v), err
	case KindFloat:
		v, err := parseFloat[float32](s)
		return Float(v), err
	case KindDouble:
		v, err := parseFloat[float64](s)
		return Double(v), err
	case KindRational:
		return parseRational(s)
	case KindSignedRational:
		return parseSignedRational(s)
	default:
		return nil, fmt.Errorf("unsupported kind %s", kind)
	}
}

func parseElements[S ~[]E, E any](fields []string, parse func(string) (E, error)) (Value, error) {
	s := make(S, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return nil, err
		}
		s[i] = v
	}
	return any(s).(Value), nil
}

func parseUint[T uint8 | uint16 | uint32](s string) (T, error) {
	var zero T
	v, err := strconv.ParseUint(s, 10, bitSize(zero))
	return T(v), err
}

func parseInt[T int8 | int16 | int32](s string) (T, error) {
	var zero T
	v, err := strconv.ParseInt(s, 10, bitSize(zero))
	return T(v), err
}

func parseFloat[T float32 | float64](s string) (T, error) {
	var zero T
	v, err := strconv.ParseFloat(s, bitSize(zero))
	return T(v), err
}

func bitSize(v any) int {
	switch v.(type) {
	case uint8, int8:
		return 8
	case uint16, int16:
		return 16
	case uint32, int32, float32:
		return 32
	default:
		return 64
	}
}

func parseRational(s string) (Rational, error) {
	var r Rational
	err := r.UnmarshalText([]byte(s))
	return r, err
}

func parseSignedRational(s string) (SignedRational, error) {
	var r SignedRational
	err := r.UnmarshalText([]byte(s))
	return r, err
}

func toText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(raw)
	}
}
