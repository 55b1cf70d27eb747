// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

// DataType is the TIFF/EXIF field type code stored in each directory entry.
//
//go:generate stringer -type=DataType,Kind -output=datatype_string.go
type DataType uint16

const (
	// DataTypeUnknown is used for type codes this package does not know.
	DataTypeUnknown DataType = 0

	DataTypeByte           DataType = 1
	DataTypeASCII          DataType = 2
	DataTypeShort          DataType = 3
	DataTypeLong           DataType = 4
	DataTypeRational       DataType = 5
	DataTypeSignedByte     DataType = 6
	DataTypeUndefined      DataType = 7
	DataTypeSignedShort    DataType = 8
	DataTypeSignedLong     DataType = 9
	DataTypeSignedRational DataType = 10
	DataTypeSingleFloat    DataType = 11
	DataTypeDoubleFloat    DataType = 12
)

// Size in bytes of one element of each type.
var dataTypeSize = [...]uint32{
	DataTypeUnknown:        0,
	DataTypeByte:           1,
	DataTypeASCII:          1,
	DataTypeShort:          2,
	DataTypeLong:           4,
	DataTypeRational:       8,
	DataTypeSignedByte:     1,
	DataTypeUndefined:      1,
	DataTypeSignedShort:    2,
	DataTypeSignedLong:     4,
	DataTypeSignedRational: 8,
	DataTypeSingleFloat:    4,
	DataTypeDoubleFloat:    8,
}

// Size returns the size in bytes of one element of t, 0 if t is unknown.
func (t DataType) Size() uint32 {
	if int(t) >= len(dataTypeSize) {
		return 0
	}
	return dataTypeSize[t]
}

// IsKnown reports whether t is one of the twelve EXIF types.
func (t DataType) IsKnown() bool {
	return t >= DataTypeByte && t <= DataTypeDoubleFloat
}

// Kind returns the Go value kind used to hold elements of t.
func (t DataType) Kind() Kind {
	switch t {
	case DataTypeByte, DataTypeUndefined:
		return KindByte
	case DataTypeASCII:
		return KindString
	case DataTypeShort:
		return KindShort
	case DataTypeLong:
		return KindLong
	case DataTypeRational:
		return KindRational
	case DataTypeSignedByte:
		return KindSByte
	case DataTypeSignedShort:
		return KindSShort
	case DataTypeSignedLong:
		return KindSLong
	case DataTypeSignedRational:
		return KindSignedRational
	case DataTypeSingleFloat:
		return KindFloat
	case DataTypeDoubleFloat:
		return KindDouble
	default:
		return KindNone
	}
}

func toDataType(v uint16) DataType {
	t := DataType(v)
	if !t.IsKnown() {
		return DataTypeUnknown
	}
	return t
}
