// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"bytes"
	"encoding/binary"
	"math"
	"slices"
	"strings"
)

const (
	byteOrderBigEndian    = 0x4d4d
	byteOrderLittleEndian = 0x4949
	meaningOfLife         = 42

	// Size of one directory entry: tag, type, count and value/offset.
	entrySize = 12
)

var exifIdentifier = []byte("Exif\x00\x00")

// Decoded is the result of reading an EXIF blob.
type Decoded struct {
	// Values holds the entries of the primary, Exif and GPS directories
	// in the order they were read. Each tag occurs at most once.
	Values []*ExifValue

	// InvalidTags holds the tags whose entries could not be read,
	// e.g. because their data offset pointed outside the blob.
	InvalidTags []Tag

	// ThumbnailOffset is the index into the input slice of the embedded JPEG
	// thumbnail, counting the "Exif\x00\x00" identifier if present.
	// It is not relative to the TIFF header.
	// ThumbnailOffset and ThumbnailLength are 0 if there is no thumbnail.
	ThumbnailOffset uint32
	ThumbnailLength uint32
}

// Read decodes the EXIF blob in data.
// The blob may start with the "Exif\x00\x00" identifier.
// Read never fails: a malformed blob yields the entries that could be read before the damage.
func Read(data []byte, opts Options) Decoded {
	opts.init()
	dec := &metaDecoderEXIF{
		c:    cursor{data: data, order: binary.LittleEndian},
		opts: opts,
	}
	dec.decode()
	return dec.result
}

type metaDecoderEXIF struct {
	c          cursor
	startIndex int
	opts       Options

	numTags    uint32
	exifOffset uint32
	gpsOffset  uint32

	result Decoded
}

func (e *metaDecoderEXIF) decode() {
	data := e.c.data
	if bytes.HasPrefix(data, exifIdentifier) {
		e.startIndex = len(exifIdentifier)
	}
	if len(data)-e.startIndex < 8 {
		return
	}

	e.c.seek(e.startIndex)
	switch binary.BigEndian.Uint16(e.c.bytes(2)) {
	case byteOrderLittleEndian:
		e.c.order = binary.LittleEndian
	case byteOrderBigEndian:
		e.c.order = binary.BigEndian
	default:
		// Everything that isn't "II" is read as big endian.
		e.c.order = binary.BigEndian
	}

	if e.c.read2() != meaningOfLife {
		e.opts.Warnf("exif: invalid TIFF header")
		return
	}

	ifdOffset := e.c.read4()

	// The IFD1 pointer follows a complete IFD0 only, but the
	// sub-directories found before a cut are still read.
	if e.decodeTagsAt(&e.result.Values, ifdOffset, true) {
		thumbnailOffset, err := e.c.read4E()
		if err == nil && thumbnailOffset != 0 {
			e.decodeThumbnail(thumbnailOffset)
		}
	}

	if e.exifOffset != 0 {
		e.decodeTagsAt(&e.result.Values, e.exifOffset, false)
	}

	if e.gpsOffset != 0 {
		e.decodeTagsAt(&e.result.Values, e.gpsOffset, false)
	}
}

// decodeTagsAt decodes the directory at offset into values.
// Pointer tags are followed only in the primary directory.
// It returns false if the directory was cut short.
func (e *metaDecoderEXIF) decodeTagsAt(values *[]*ExifValue, offset uint32, primary bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if r != errStop {
				panic(r)
			}
			ok = false
		}
	}()

	e.c.seek(e.startIndex + int(offset))
	e.decodeTags(values, primary)
	return true
}

func (e *metaDecoderEXIF) decodeTags(values *[]*ExifValue, primary bool) {
	if e.c.remaining() < 2 {
		panic(errStop)
	}
	count := e.c.read2()

	for i := 0; i < int(count); i++ {
		e.numTags++
		if e.numTags > e.opts.LimitNumTags {
			e.opts.Warnf("exif: too many tags, stopping after %d", e.opts.LimitNumTags)
			panic(errStop)
		}

		v := e.decodeTag()
		if v == nil {
			continue
		}

		if slices.ContainsFunc(*values, func(vv *ExifValue) bool { return vv.tag == v.tag }) {
			continue
		}

		switch v.tag {
		case TagSubIFDOffset:
			if offset, ok := pointerValue(v); ok && primary && e.exifOffset == 0 {
				e.exifOffset = offset
			}
		case TagGPSIFDOffset:
			if offset, ok := pointerValue(v); ok && primary && e.gpsOffset == 0 {
				e.gpsOffset = offset
			}
		default:
			*values = append(*values, v)
		}
	}
}

func (e *metaDecoderEXIF) decodeThumbnail(offset uint32) {
	var values []*ExifValue
	e.decodeTagsAt(&values, offset, false)

	for _, v := range values {
		l, ok := v.value.(Long)
		if !ok {
			continue
		}
		switch v.tag {
		case TagJPEGInterchangeFormat:
			e.result.ThumbnailOffset = uint32(l) + uint32(e.startIndex)
		case TagJPEGInterchangeFormatLength:
			e.result.ThumbnailLength = uint32(l)
		}
	}
}

// decodeTag reads one directory entry.
// It returns nil if the entry's payload could not be read.
func (e *metaDecoderEXIF) decodeTag() *ExifValue {
	if e.c.remaining() < entrySize {
		if e.c.remaining() >= 2 {
			tag := Tag(e.c.read2())
			e.opts.Warnf("exif: truncated entry for tag %s", tag)
			e.addInvalidTag(tag)
		}
		panic(errStop)
	}

	tag := Tag(e.c.read2())
	dataType := toDataType(e.c.read2())
	count := e.c.read4()

	if dataType == DataTypeUnknown {
		e.c.skip(4)
		return &ExifValue{tag: tag, dataType: DataTypeUnknown}
	}

	// Some writers store 0 for UNDEFINED values that fit in the entry.
	if dataType == DataTypeUndefined && count == 0 {
		count = 4
	}

	size := uint64(count) * uint64(dataType.Size())
	var b []byte
	if size > 4 {
		offset := uint64(e.c.read4())
		start := uint64(e.startIndex) + offset
		if start > uint64(len(e.c.data)) || uint64(len(e.c.data))-start < size {
			e.opts.Warnf("exif: data for tag %s at offset %d with size %d is out of bounds", tag, offset, size)
			e.addInvalidTag(tag)
			return nil
		}
		e.c.preservePos(func() {
			e.c.seek(int(start))
			b = e.c.bytes(int(size))
		})
	} else {
		b = e.c.bytes(4)[:size]
	}

	val := e.convertValues(dataType, int(count), b)
	return &ExifValue{
		tag:      tag,
		dataType: dataType,
		isArray:  val != nil && count > 1 && dataType != DataTypeASCII,
		value:    val,
	}
}

func (e *metaDecoderEXIF) addInvalidTag(tag Tag) {
	if !slices.Contains(e.result.InvalidTags, tag) {
		e.result.InvalidTags = append(e.result.InvalidTags, tag)
	}
}

// convertValues converts count elements of typ in b.
// A single element becomes a scalar, more become a slice.
func (e *metaDecoderEXIF) convertValues(typ DataType, count int, b []byte) Value {
	if typ == DataTypeASCII {
		return String(asciiString(b))
	}
	if count == 0 {
		return nil
	}

	order := e.c.order
	size := int(typ.Size())
	elem := func(i int) []byte {
		return b[i*size : (i+1)*size]
	}

	switch typ {
	case DataTypeByte, DataTypeUndefined:
		if count == 1 {
			return Byte(b[0])
		}
		return Bytes(slices.Clone(b))
	case DataTypeSignedByte:
		if count == 1 {
			return SByte(int8(b[0]))
		}
		return convertSlice(count, func(i int) int8 { return int8(b[i]) }, SBytes(nil))
	case DataTypeShort:
		if count == 1 {
			return Short(order.Uint16(b))
		}
		return convertSlice(count, func(i int) uint16 { return order.Uint16(elem(i)) }, Shorts(nil))
	case DataTypeSignedShort:
		if count == 1 {
			return SShort(int16(order.Uint16(b)))
		}
		return convertSlice(count, func(i int) int16 { return int16(order.Uint16(elem(i))) }, SShorts(nil))
	case DataTypeLong:
		if count == 1 {
			return Long(order.Uint32(b))
		}
		return convertSlice(count, func(i int) uint32 { return order.Uint32(elem(i)) }, Longs(nil))
	case DataTypeSignedLong:
		if count == 1 {
			return SLong(int32(order.Uint32(b)))
		}
		return convertSlice(count, func(i int) int32 { return int32(order.Uint32(elem(i))) }, SLongs(nil))
	case DataTypeSingleFloat:
		if count == 1 {
			return Float(math.Float32frombits(order.Uint32(b)))
		}
		return convertSlice(count, func(i int) float32 { return math.Float32frombits(order.Uint32(elem(i))) }, Floats(nil))
	case DataTypeDoubleFloat:
		if count == 1 {
			return Double(math.Float64frombits(order.Uint64(b)))
		}
		return convertSlice(count, func(i int) float64 { return math.Float64frombits(order.Uint64(elem(i))) }, Doubles(nil))
	case DataTypeRational:
		rat := func(i int) Rational {
			p := elem(i)
			return Rational{Numerator: order.Uint32(p), Denominator: order.Uint32(p[4:])}
		}
		if count == 1 {
			return rat(0)
		}
		return convertSlice(count, rat, Rationals(nil))
	case DataTypeSignedRational:
		rat := func(i int) SignedRational {
			p := elem(i)
			return SignedRational{Numerator: int32(order.Uint32(p)), Denominator: int32(order.Uint32(p[4:]))}
		}
		if count == 1 {
			return rat(0)
		}
		return convertSlice(count, rat, SignedRationals(nil))
	default:
		return nil
	}
}

func convertSlice[S ~[]E, E any](count int, conv func(i int) E, _ S) S {
	s := make(S, count)
	for i := range s {
		s[i] = conv(i)
	}
	return s
}

// asciiString returns the text in b up to the first NUL.
func asciiString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func pointerValue(v *ExifValue) (uint32, bool) {
	switch vv := v.value.(type) {
	case Long:
		return uint32(vv), true
	case Short:
		return uint32(vv), true
	default:
		return 0, false
	}
}
