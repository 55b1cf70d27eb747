// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"encoding/binary"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func mustNewValue(c *qt.C, tag Tag, raw any) *ExifValue {
	c.Helper()
	v, err := NewValue(tag, raw)
	c.Assert(err, qt.IsNil)
	return v
}

func TestWriteImageWidth(t *testing.T) {
	c := qt.New(t)

	b := Write([]*ExifValue{mustNewValue(c, TagImageWidth, 640)}, AllParts)
	c.Assert(b, qt.DeepEquals, []byte("Exif\x00\x00II*\x00\x08\x00\x00\x00\x01\x00\x00\x01\x04\x00\x01\x00\x00\x00\x80\x02\x00\x00\x00\x00\x00\x00\x00\x00"))
}

func TestWriteExifDirectory(t *testing.T) {
	c := qt.New(t)

	b := Write([]*ExifValue{mustNewValue(c, TagExposureTime, "1/200")}, AllParts)

	expect := newBlobBuilder(binary.LittleEndian)
	expect.u16(1).
		entry(TagSubIFDOffset, DataTypeLong, 1, 26).
		u32(0).
		u16(1).
		entry(TagExposureTime, DataTypeRational, 1, 44).
		u32(0).
		u32(1).u32(200).
		u16(0)

	c.Assert(b, qt.DeepEquals, expect.exif())
	c.Assert(len(b), qt.Equals, 60)
}

func TestWriteGPSDirectory(t *testing.T) {
	c := qt.New(t)

	values := []*ExifValue{
		mustNewValue(c, TagGPSLatitudeRef, "N"),
		mustNewValue(c, TagImageWidth, 640),
		mustNewValue(c, TagExposureTime, "1/200"),
	}
	b := Write(values, AllParts)

	const (
		ifdLength  = 2 + 3*12 + 4
		exifLength = 2 + 12 + 8 + 4
		exifIFD    = 8 + ifdLength
		gpsIFD     = exifIFD + exifLength
	)

	expect := newBlobBuilder(binary.LittleEndian)
	expect.u16(3).
		entry(TagImageWidth, DataTypeLong, 1, 640).
		entry(TagSubIFDOffset, DataTypeLong, 1, exifIFD).
		entry(TagGPSIFDOffset, DataTypeLong, 1, gpsIFD).
		u32(0).
		u16(1).
		entry(TagExposureTime, DataTypeRational, 1, exifIFD+2+12+4).
		u32(0).
		u32(1).u32(200).
		u16(1).
		entryInline(TagGPSLatitudeRef, DataTypeASCII, 1, []byte("N")).
		u32(0).
		u16(0)

	c.Assert(b, qt.DeepEquals, expect.exif())

	d := Read(b, Options{})
	c.Assert(d.Values, qt.HasLen, 3)
	c.Assert(d.Values[0].Tag(), qt.Equals, TagImageWidth)
	c.Assert(d.Values[1].Tag(), qt.Equals, TagExposureTime)
	c.Assert(d.Values[2].Tag(), qt.Equals, TagGPSLatitudeRef)
	c.Assert(d.Values[2].Value(), qt.Equals, String("N"))
}

func TestWriteParts(t *testing.T) {
	c := qt.New(t)

	values := []*ExifValue{
		mustNewValue(c, TagImageWidth, 640),
		mustNewValue(c, TagExposureTime, "1/200"),
		mustNewValue(c, TagGPSLatitudeRef, "N"),
	}

	tags := func(b []byte) []Tag {
		var tags []Tag
		for _, v := range Read(b, Options{}).Values {
			tags = append(tags, v.Tag())
		}
		return tags
	}

	c.Assert(tags(Write(values, AllParts)), qt.DeepEquals, []Tag{TagImageWidth, TagExposureTime, TagGPSLatitudeRef})
	c.Assert(tags(Write(values, IfdTags)), qt.DeepEquals, []Tag{TagImageWidth})
	c.Assert(tags(Write(values, ExifTags|GPSTags)), qt.DeepEquals, []Tag{TagExposureTime, TagGPSLatitudeRef})

	// Only the Exif pointer in IFD0.
	b := Write(values, ExifTags)
	c.Assert(tags(b), qt.DeepEquals, []Tag{TagExposureTime})
	c.Assert(b[14:16], qt.DeepEquals, []byte{1, 0})
	c.Assert(binary.LittleEndian.Uint16(b[16:18]), qt.Equals, uint16(TagSubIFDOffset))

	// No pointers without sub-directories.
	b = Write(values, IfdTags)
	c.Assert(b[14:16], qt.DeepEquals, []byte{1, 0})

	c.Assert(Write(values, Parts(0)), qt.IsNil)
}

func TestWriteNothing(t *testing.T) {
	c := qt.New(t)

	c.Assert(Write(nil, AllParts), qt.IsNil)
	c.Assert(Write([]*ExifValue{mustNewValue(c, TagMake, "")}, AllParts), qt.IsNil)
	c.Assert(Write([]*ExifValue{mustNewValue(c, TagMake, nil), nil}, AllParts), qt.IsNil)
	// Unknown and pointer tags belong to no directory.
	c.Assert(Write([]*ExifValue{{tag: Tag(0x1234), dataType: DataTypeLong, value: Long(1)}}, AllParts), qt.IsNil)
	c.Assert(Write([]*ExifValue{{tag: TagSubIFDOffset, dataType: DataTypeLong, value: Long(1)}}, AllParts), qt.IsNil)
}

func TestWriteDoesNotModifyInput(t *testing.T) {
	c := qt.New(t)

	values := []*ExifValue{
		mustNewValue(c, TagImageWidth, 640),
		mustNewValue(c, TagExposureTime, "1/200"),
	}
	Write(values, AllParts)
	c.Assert(values, qt.HasLen, 2)
	c.Assert(values[0].Value(), qt.Equals, Long(640))
}

func TestWriteRoundTrip(t *testing.T) {
	c := qt.New(t)

	values := []*ExifValue{
		mustNewValue(c, TagImageWidth, 640),
		mustNewValue(c, TagOrientation, 6),
		mustNewValue(c, TagBitsPerSample, "8 8 8"),
		mustNewValue(c, TagMake, "Canon"),
		mustNewValue(c, TagModel, "EOS"),
		mustNewValue(c, TagXResolution, "72/1"),
		mustNewValue(c, TagXPTitle, []byte{'H', 0, 'i', 0, 0, 0}),
		{tag: TagImageLength, dataType: DataTypeSignedLong, value: SLong(-5)},
		{tag: TagYResolution, dataType: DataTypeDoubleFloat, value: Double(72.5)},
		{tag: TagCellWidth, dataType: DataTypeSingleFloat, isArray: true, value: Floats{1, 2}},
		{tag: TagCellLength, dataType: DataTypeSignedShort, isArray: true, value: SShorts{-1, 2, 3}},
		{tag: TagFillOrder, dataType: DataTypeSignedByte, value: SByte(-3)},
		{tag: TagStripOffsets, dataType: DataTypeSignedRational, isArray: true, value: SignedRationals{{Numerator: -1, Denominator: 2}, {Numerator: 3, Denominator: 4}}},
		{tag: TagStripByteCounts, dataType: DataTypeLong, isArray: true, value: Longs{100, 200}},
		{tag: TagTransferFunction, dataType: DataTypeDoubleFloat, isArray: true, value: Doubles{0.5, 1.5}},
		{tag: TagWhitePoint, dataType: DataTypeSignedLong, isArray: true, value: SLongs{-7, 7}},
		{tag: TagSampleFormat, dataType: DataTypeSignedByte, isArray: true, value: SBytes{-1, 1}},
		mustNewValue(c, TagExposureTime, "1/200"),
		mustNewValue(c, TagExposureBiasValue, "-1/3"),
		mustNewValue(c, TagExifVersion, "0230"),
		mustNewValue(c, TagGPSLatitude, "59/1 55/1 1234/100"),
		mustNewValue(c, TagGPSAltitudeRef, 1),
	}

	for _, order := range []byteOrder{binary.LittleEndian, binary.BigEndian} {
		c.Run(fmt.Sprint(order), func(c *qt.C) {
			enc := &metaEncoderEXIF{byteOrder: order, values: values, parts: AllParts}
			b := enc.encode()

			d := Read(b, Options{})
			c.Assert(d.InvalidTags, qt.HasLen, 0)
			c.Assert(d.Values, qt.HasLen, len(values))
			for i, v := range d.Values {
				c.Assert(v.Equal(values[i]), qt.IsTrue, qt.Commentf("%s: got %v want %v", values[i].Tag(), v.Value(), values[i].Value()))
			}

			// Writing what was read gives the same bytes.
			enc = &metaEncoderEXIF{byteOrder: order, values: d.Values, parts: AllParts}
			c.Assert(enc.encode(), qt.DeepEquals, b)
		})
	}
}

func TestParts(t *testing.T) {
	c := qt.New(t)

	c.Assert(AllParts.Has(ExifTags), qt.IsTrue)
	c.Assert(AllParts.Remove(ExifTags).Has(ExifTags), qt.IsFalse)
	c.Assert(AllParts.Remove(ExifTags).Has(GPSTags), qt.IsTrue)
	c.Assert(IfdTags.Remove(IfdTags).IsZero(), qt.IsTrue)
	c.Assert(Parts(0).Has(IfdTags), qt.IsFalse)
}
