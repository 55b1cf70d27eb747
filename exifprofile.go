// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package exifprofile reads, edits and writes EXIF metadata blobs.
package exifprofile

import (
	"fmt"
	"io"
	"slices"
)

// UnknownPrefix is used as prefix for unknown tags.
const UnknownPrefix = "UnknownTag_"

const defaultLimitNumTags = 5000

// Options contains the options for reading and writing EXIF data.
type Options struct {
	// Parts selects the directories written by Profile.Bytes.
	// Defaults to AllParts.
	Parts Parts

	// Warnf will be called for each warning, e.g. an entry pointing outside the blob.
	Warnf func(string, ...any)

	// LimitNumTags is the maximum number of directory entries to read.
	// Defaults to 5000.
	LimitNumTags uint32
}

func (o *Options) init() {
	if o.Parts.IsZero() {
		o.Parts = AllParts
	}
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
	if o.LimitNumTags == 0 {
		o.LimitNumTags = defaultLimitNumTags
	}
}

// Profile is an EXIF profile backed by a raw blob.
// The blob is decoded on first access to its values.
// A Profile is not safe for concurrent modification.
type Profile struct {
	data  []byte
	opts  Options
	parts Parts

	isDecoded bool
	decoded   Decoded
}

// NewProfile creates a profile from the EXIF blob in data.
// data is retained and must not be modified.
func NewProfile(data []byte, opts Options) *Profile {
	opts.init()
	return &Profile{
		data:  data,
		opts:  opts,
		parts: opts.Parts,
	}
}

// NewProfileFromReader extracts the EXIF blob from an image in the given format.
// It returns ErrNoEXIF if the image has no EXIF data.
func NewProfileFromReader(r io.ReadSeeker, format ImageFormat, opts Options) (*Profile, error) {
	data, err := Extract(r, format)
	if err != nil {
		return nil, err
	}
	return NewProfile(data, opts), nil
}

func (p *Profile) decode() {
	if p.isDecoded {
		return
	}
	p.isDecoded = true
	p.decoded = Read(p.data, p.opts)
}

// Values returns the profile's entries.
func (p *Profile) Values() []*ExifValue {
	p.decode()
	return p.decoded.Values
}

// Value returns the entry for tag.
func (p *Profile) Value(tag Tag) (*ExifValue, bool) {
	p.decode()
	for _, v := range p.decoded.Values {
		if v.tag == tag {
			return v, true
		}
	}
	return nil, false
}

// SetValue sets the payload of tag, adding an entry if there is none.
// raw is converted as in NewValue, using the data type of an existing entry.
func (p *Profile) SetValue(tag Tag, raw any) error {
	p.decode()
	if v, ok := p.Value(tag); ok {
		if raw == nil {
			return v.SetValue(nil)
		}
		val, err := parseValue(v.dataType, v.isArray, raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrTypeMismatch, tag, err)
		}
		return v.SetValue(val)
	}

	v, err := NewValue(tag, raw)
	if err != nil {
		return err
	}
	p.decoded.Values = append(p.decoded.Values, v)
	return nil
}

// RemoveValue removes the entry for tag and reports whether there was one.
func (p *Profile) RemoveValue(tag Tag) bool {
	p.decode()
	i := slices.IndexFunc(p.decoded.Values, func(v *ExifValue) bool { return v.tag == tag })
	if i < 0 {
		return false
	}
	p.decoded.Values = slices.Delete(p.decoded.Values, i, i+1)
	return true
}

// InvalidTags returns the tags whose entries could not be read.
func (p *Profile) InvalidTags() []Tag {
	p.decode()
	return p.decoded.InvalidTags
}

// Parts returns the directories written by Bytes.
func (p *Profile) Parts() Parts {
	return p.parts
}

// SetParts sets the directories written by Bytes.
func (p *Profile) SetParts(parts Parts) {
	p.parts = parts
}

// Bytes returns the profile as an EXIF blob.
// If the values were never accessed, the original blob is returned unchanged.
// It returns nil if the profile has no values.
func (p *Profile) Bytes() []byte {
	if !p.isDecoded {
		if len(p.data) == 0 {
			return nil
		}
		return p.data
	}
	if len(p.decoded.Values) == 0 {
		return nil
	}
	return Write(p.decoded.Values, p.parts)
}

// Thumbnail returns the embedded JPEG thumbnail, nil if there is none.
// The returned slice aliases the profile's blob.
func (p *Profile) Thumbnail() []byte {
	p.decode()
	offset, length := uint64(p.decoded.ThumbnailOffset), uint64(p.decoded.ThumbnailLength)
	if offset == 0 || length == 0 || offset+length > uint64(len(p.data)) {
		return nil
	}
	return p.data[offset : offset+length]
}
