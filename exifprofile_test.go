// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile_test

import (
	"bytes"
	"testing"

	"github.com/bep/exifprofile"
	"github.com/rwcarlsen/goexif/exif"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

var eq = qt.CmpEquals(
	cmp.Comparer(func(x, y *exifprofile.ExifValue) bool {
		return x.Equal(y)
	}),
)

func newTestValues(c *qt.C) []*exifprofile.ExifValue {
	c.Helper()
	var values []*exifprofile.ExifValue
	for _, v := range []struct {
		tag exifprofile.Tag
		raw any
	}{
		{exifprofile.TagImageWidth, 640},
		{exifprofile.TagImageLength, 480},
		{exifprofile.TagOrientation, 6},
		{exifprofile.TagMake, "Canon"},
		{exifprofile.TagModel, "Canon EOS R5"},
		{exifprofile.TagExposureTime, "1/200"},
		{exifprofile.TagFNumber, "28/10"},
		{exifprofile.TagExposureProgram, 2},
		{exifprofile.TagDateTimeOriginal, "2024:05:17 08:30:00"},
		{exifprofile.TagGPSLatitudeRef, "N"},
		{exifprofile.TagGPSLatitude, "59/1 55/1 1234/100"},
	} {
		ev, err := exifprofile.NewValue(v.tag, v.raw)
		c.Assert(err, qt.IsNil)
		values = append(values, ev)
	}
	return values
}

func TestProfile(t *testing.T) {
	c := qt.New(t)

	data := exifprofile.Write(newTestValues(c), exifprofile.AllParts)

	c.Run("Values", func(c *qt.C) {
		p := exifprofile.NewProfile(data, exifprofile.Options{})
		c.Assert(p.Values(), eq, newTestValues(c))
		c.Assert(p.InvalidTags(), qt.HasLen, 0)
		c.Assert(p.Parts(), qt.Equals, exifprofile.AllParts)

		v, found := p.Value(exifprofile.TagOrientation)
		c.Assert(found, qt.IsTrue)
		c.Assert(v.String(), qt.Equals, "Rotate 90 CW")
		_, found = p.Value(exifprofile.TagArtist)
		c.Assert(found, qt.IsFalse)
	})

	c.Run("Bytes unchanged", func(c *qt.C) {
		raw := append([]byte(nil), data...)
		raw = append(raw, 0xAB)
		p := exifprofile.NewProfile(raw, exifprofile.Options{})
		c.Assert(p.Bytes(), qt.DeepEquals, raw)
	})

	c.Run("Bytes re-encoded", func(c *qt.C) {
		p := exifprofile.NewProfile(data, exifprofile.Options{})
		c.Assert(len(p.Values()), qt.Equals, 11)
		c.Assert(p.Bytes(), qt.DeepEquals, data)
	})

	c.Run("SetValue", func(c *qt.C) {
		p := exifprofile.NewProfile(data, exifprofile.Options{})
		c.Assert(p.SetValue(exifprofile.TagOrientation, 1), qt.IsNil)
		c.Assert(p.SetValue(exifprofile.TagOrientation, "x"), qt.ErrorIs, exifprofile.ErrTypeMismatch)
		c.Assert(p.SetValue(exifprofile.TagArtist, "Bjørn Erik Pedersen"), qt.IsNil)
		c.Assert(p.SetValue(exifprofile.TagUnknown, 1), qt.ErrorIs, exifprofile.ErrNotSupported)

		p2 := exifprofile.NewProfile(p.Bytes(), exifprofile.Options{})
		v, _ := p2.Value(exifprofile.TagOrientation)
		c.Assert(v.Value(), qt.Equals, exifprofile.Short(1))
		v, _ = p2.Value(exifprofile.TagArtist)
		c.Assert(v.String(), qt.Equals, "Bjørn Erik Pedersen")
		c.Assert(p2.Values(), qt.HasLen, 12)
	})

	c.Run("RemoveValue", func(c *qt.C) {
		p := exifprofile.NewProfile(data, exifprofile.Options{})
		c.Assert(p.RemoveValue(exifprofile.TagMake), qt.IsTrue)
		c.Assert(p.RemoveValue(exifprofile.TagMake), qt.IsFalse)

		p2 := exifprofile.NewProfile(p.Bytes(), exifprofile.Options{})
		_, found := p2.Value(exifprofile.TagMake)
		c.Assert(found, qt.IsFalse)
		c.Assert(p2.Values(), qt.HasLen, 10)
	})

	c.Run("SetParts", func(c *qt.C) {
		p := exifprofile.NewProfile(data, exifprofile.Options{Parts: exifprofile.IfdTags | exifprofile.GPSTags})
		c.Assert(p.Parts(), qt.Equals, exifprofile.IfdTags|exifprofile.GPSTags)
		p.Values()
		p2 := exifprofile.NewProfile(p.Bytes(), exifprofile.Options{})
		_, found := p2.Value(exifprofile.TagExposureTime)
		c.Assert(found, qt.IsFalse)
		_, found = p2.Value(exifprofile.TagGPSLatitude)
		c.Assert(found, qt.IsTrue)

		p.SetParts(exifprofile.ExifTags)
		p2 = exifprofile.NewProfile(p.Bytes(), exifprofile.Options{})
		c.Assert(p2.Values(), qt.HasLen, 4)
	})

	c.Run("Empty", func(c *qt.C) {
		p := exifprofile.NewProfile(nil, exifprofile.Options{})
		c.Assert(p.Bytes(), qt.IsNil)
		c.Assert(p.Values(), qt.HasLen, 0)
		c.Assert(p.Bytes(), qt.IsNil)
		c.Assert(p.Thumbnail(), qt.IsNil)

		c.Assert(p.SetValue(exifprofile.TagImageWidth, 10), qt.IsNil)
		c.Assert(p.Bytes(), qt.Not(qt.IsNil))

		p = exifprofile.NewProfile(data, exifprofile.Options{})
		for _, v := range newTestValues(c) {
			c.Assert(p.RemoveValue(v.Tag()), qt.IsTrue)
		}
		c.Assert(p.Bytes(), qt.IsNil)
	})
}

// Verifies that what we write can be read by another EXIF implementation.
func TestWriteReadWithGoexif(t *testing.T) {
	c := qt.New(t)

	data := exifprofile.Write(newTestValues(c), exifprofile.AllParts)
	x, err := exif.Decode(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)

	intVal := func(name exif.FieldName) int {
		tag, err := x.Get(name)
		c.Assert(err, qt.IsNil)
		i, err := tag.Int(0)
		c.Assert(err, qt.IsNil)
		return i
	}

	ratVal := func(name exif.FieldName, i int) [2]int64 {
		tag, err := x.Get(name)
		c.Assert(err, qt.IsNil)
		num, den, err := tag.Rat2(i)
		c.Assert(err, qt.IsNil)
		return [2]int64{num, den}
	}

	strVal := func(name exif.FieldName) string {
		tag, err := x.Get(name)
		c.Assert(err, qt.IsNil)
		s, err := tag.StringVal()
		c.Assert(err, qt.IsNil)
		return s
	}

	c.Assert(intVal(exif.ImageWidth), qt.Equals, 640)
	c.Assert(intVal(exif.ImageLength), qt.Equals, 480)
	c.Assert(intVal(exif.Orientation), qt.Equals, 6)
	c.Assert(intVal(exif.ExposureProgram), qt.Equals, 2)
	c.Assert(strVal(exif.Make), qt.Equals, "Canon")
	c.Assert(strVal(exif.Model), qt.Equals, "Canon EOS R5")
	c.Assert(strVal(exif.DateTimeOriginal), qt.Equals, "2024:05:17 08:30:00")
	c.Assert(ratVal(exif.ExposureTime, 0), qt.Equals, [2]int64{1, 200})
	c.Assert(ratVal(exif.FNumber, 0), qt.Equals, [2]int64{28, 10})
	c.Assert(ratVal(exif.GPSLatitude, 0), qt.Equals, [2]int64{59, 1})
	c.Assert(ratVal(exif.GPSLatitude, 2), qt.Equals, [2]int64{1234, 100})
}

func BenchmarkRead(b *testing.B) {
	data := exifprofile.Write(newTestValues(qt.New(b)), exifprofile.AllParts)

	b.Run("bep/exifprofile", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			d := exifprofile.Read(data, exifprofile.Options{})
			if len(d.Values) == 0 {
				b.Fatal("no values")
			}
		}
	})

	b.Run("rwcarlsen/goexif", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := exif.Decode(bytes.NewReader(data)); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkWrite(b *testing.B) {
	values := newTestValues(qt.New(b))
	for i := 0; i < b.N; i++ {
		if exifprofile.Write(values, exifprofile.AllParts) == nil {
			b.Fatal("no data")
		}
	}
}
