// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"encoding/binary"
	"math"
)

// Write encodes the values of the selected parts into an EXIF blob, little endian,
// starting with the "Exif\x00\x00" identifier.
// Entries without a value and empty ASCII entries are skipped.
// It returns nil if there is nothing to write.
func Write(values []*ExifValue, parts Parts) []byte {
	enc := &metaEncoderEXIF{
		byteOrder: binary.LittleEndian,
		values:    values,
		parts:     parts,
	}
	return enc.encode()
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type metaEncoderEXIF struct {
	byteOrder byteOrder
	values    []*ExifValue
	parts     Parts
}

func (e *metaEncoderEXIF) encode() []byte {
	ifd := e.collect(IfdTags)
	exif := e.collect(ExifTags)
	gps := e.collect(GPSTags)

	// The pointer entries get their offsets once the directory sizes are known.
	var exifPointer, gpsPointer *ExifValue
	if len(exif) > 0 {
		exifPointer = &ExifValue{tag: TagSubIFDOffset, dataType: DataTypeLong, value: Long(0)}
		ifd = append(ifd, exifPointer)
	}
	if len(gps) > 0 {
		gpsPointer = &ExifValue{tag: TagGPSIFDOffset, dataType: DataTypeLong, value: Long(0)}
		ifd = append(ifd, gpsPointer)
	}

	ifdLength := 2 + directoryLength(ifd) + 4
	exifLength := directoryLength(exif)
	gpsLength := directoryLength(gps)
	if exifLength > 0 {
		exifLength += 6
	}
	if gpsLength > 0 {
		gpsLength += 6
	}

	length := ifdLength + exifLength + gpsLength
	if length == 6 {
		return nil
	}

	// Identifier, TIFF header, directories and a trailing 0 short.
	buf := make([]byte, 0, len(exifIdentifier)+8+int(length)+2)
	buf = append(buf, exifIdentifier...)
	if e.byteOrder == binary.BigEndian {
		buf = binary.BigEndian.AppendUint16(buf, byteOrderBigEndian)
	} else {
		buf = binary.BigEndian.AppendUint16(buf, byteOrderLittleEndian)
	}
	buf = e.byteOrder.AppendUint16(buf, meaningOfLife)

	ifdOffset := uint32(len(buf)-len(exifIdentifier)) + 4
	if exifPointer != nil {
		exifPointer.value = Long(ifdOffset + ifdLength)
	}
	if gpsPointer != nil {
		gpsPointer.value = Long(ifdOffset + ifdLength + exifLength)
	}
	buf = e.byteOrder.AppendUint32(buf, ifdOffset)

	buf = e.appendDirectory(buf, ifd)
	if len(exif) > 0 {
		buf = e.appendDirectory(buf, exif)
	}
	if len(gps) > 0 {
		buf = e.appendDirectory(buf, gps)
	}

	return e.byteOrder.AppendUint16(buf, 0)
}

// collect returns the values belonging to part, in input order.
func (e *metaEncoderEXIF) collect(part Parts) []*ExifValue {
	if !e.parts.Has(part) {
		return nil
	}
	var values []*ExifValue
	for _, v := range e.values {
		if v == nil || v.tag.Part() != part || !v.hasValue() {
			continue
		}
		values = append(values, v)
	}
	return values
}

// directoryLength returns the size of the entries and their out-of-line data.
func directoryLength(values []*ExifValue) uint32 {
	var n uint32
	for _, v := range values {
		n += entrySize
		if l := v.Length(); l > 4 {
			n += l
		}
	}
	return n
}

// appendDirectory appends the entry count, the entries, a zero next-directory
// pointer and the out-of-line data of values to buf.
func (e *metaEncoderEXIF) appendDirectory(buf []byte, values []*ExifValue) []byte {
	buf = e.byteOrder.AppendUint16(buf, uint16(len(values)))

	offsets := make([]int, 0, len(values))
	for _, v := range values {
		buf = e.byteOrder.AppendUint16(buf, uint16(v.tag))
		buf = e.byteOrder.AppendUint16(buf, uint16(v.dataType))
		buf = e.byteOrder.AppendUint32(buf, v.NumberOfComponents())

		pos := len(buf)
		if v.Length() > 4 {
			offsets = append(offsets, pos)
			buf = append(buf, 0, 0, 0, 0)
			continue
		}
		buf = e.appendValue(buf, v.value)
		for len(buf) < pos+4 {
			buf = append(buf, 0)
		}
	}

	buf = e.byteOrder.AppendUint32(buf, 0)

	i := 0
	for _, v := range values {
		if v.Length() <= 4 {
			continue
		}
		e.byteOrder.PutUint32(buf[offsets[i]:], uint32(len(buf)-len(exifIdentifier)))
		i++
		buf = e.appendValue(buf, v.value)
	}

	return buf
}

func (e *metaEncoderEXIF) appendValue(buf []byte, val Value) []byte {
	o := e.byteOrder
	switch vv := val.(type) {
	case String:
		return append(buf, vv...)
	case Byte:
		return append(buf, byte(vv))
	case SByte:
		return append(buf, byte(vv))
	case Short:
		return o.AppendUint16(buf, uint16(vv))
	case SShort:
		return o.AppendUint16(buf, uint16(vv))
	case Long:
		return o.AppendUint32(buf, uint32(vv))
	case SLong:
		return o.AppendUint32(buf, uint32(vv))
	case Float:
		return o.AppendUint32(buf, math.Float32bits(float32(vv)))
	case Double:
		return o.AppendUint64(buf, math.Float64bits(float64(vv)))
	case Rational:
		buf = o.AppendUint32(buf, vv.Numerator)
		return o.AppendUint32(buf, vv.Denominator)
	case SignedRational:
		buf = o.AppendUint32(buf, uint32(vv.Numerator))
		return o.AppendUint32(buf, uint32(vv.Denominator))
	case Bytes:
		return append(buf, vv...)
	case SBytes:
		for _, b := range vv {
			buf = append(buf, byte(b))
		}
		return buf
	case Shorts:
		for _, s := range vv {
			buf = o.AppendUint16(buf, s)
		}
		return buf
	case SShorts:
		for _, s := range vv {
			buf = o.AppendUint16(buf, uint16(s))
		}
		return buf
	case Longs:
		for _, l := range vv {
			buf = o.AppendUint32(buf, l)
		}
		return buf
	case SLongs:
		for _, l := range vv {
			buf = o.AppendUint32(buf, uint32(l))
		}
		return buf
	case Floats:
		for _, f := range vv {
			buf = o.AppendUint32(buf, math.Float32bits(f))
		}
		return buf
	case Doubles:
		for _, f := range vv {
			buf = o.AppendUint64(buf, math.Float64bits(f))
		}
		return buf
	case Rationals:
		for _, r := range vv {
			buf = o.AppendUint32(buf, r.Numerator)
			buf = o.AppendUint32(buf, r.Denominator)
		}
		return buf
	case SignedRationals:
		for _, r := range vv {
			buf = o.AppendUint32(buf, uint32(r.Numerator))
			buf = o.AppendUint32(buf, uint32(r.Denominator))
		}
		return buf
	default:
		return buf
	}
}
