// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ImageFormat is the image format.
//
//go:generate stringer -type=ImageFormat
type ImageFormat int

const (
	// ImageFormatAuto signals that the image format should be detected automatically (not implemented yet).
	ImageFormatAuto ImageFormat = iota
	// JPEG is the JPEG image format.
	JPEG
	// TIFF is the TIFF image format.
	TIFF
	// PNG is the PNG image format.
	PNG
	// WebP is the WebP image format.
	WebP
)

// ErrNoEXIF is returned by Extract when the image has no EXIF data.
var ErrNoEXIF = errors.New("exifprofile: no EXIF data")

type baseStreamingDecoder struct {
	*streamReader
	result []byte
}

func (e *baseStreamingDecoder) streamErr() error {
	if e.readErr != nil {
		return e.readErr
	}
	return nil
}

// Extract reads the raw EXIF blob from the image in r.
// For JPEG the blob starts with the "Exif\x00\x00" identifier, for the other formats
// it starts with the TIFF header. Both forms can be passed to Read and NewProfile.
// It returns ErrNoEXIF if the image has no EXIF data.
func Extract(r io.ReadSeeker, format ImageFormat) (data []byte, err error) {
	var base *baseStreamingDecoder

	errFinal := func(err2 error) error {
		if err2 == nil || err2 == errStop {
			err2 = nil
			if base != nil {
				err2 = base.streamErr()
			}
		}

		if err2 == nil || err2 == io.EOF {
			return nil
		}

		if isInvalidFormatErrorCandidate(err2) {
			err2 = newInvalidFormatError(err2)
		}

		return err2
	}

	errFromRecover := func(r any) (err2 error) {
		if r == nil {
			return nil
		}
		if errp, ok := r.(error); ok {
			if isInvalidFormatErrorCandidate(errp) {
				err2 = newInvalidFormatError(errp)
			} else {
				err2 = errp
			}
		} else {
			err2 = fmt.Errorf("unknown panic: %v", r)
		}

		return
	}

	defer func() {
		err2 := errFromRecover(recover())
		if err == nil {
			err = err2
		}
		err = errFinal(err)
		if err == nil && data == nil {
			err = ErrNoEXIF
		}
		if err != nil {
			data = nil
		}
	}()

	if r == nil {
		return nil, fmt.Errorf("no reader provided")
	}

	base = &baseStreamingDecoder{
		streamReader: newStreamReader(r, binary.BigEndian),
	}

	var dec decoder

	switch format {
	case JPEG:
		dec = &imageDecoderJPEG{baseStreamingDecoder: base}
	case TIFF:
		dec = &imageDecoderTIF{baseStreamingDecoder: base}
	case PNG:
		dec = &imageDecoderPNG{baseStreamingDecoder: base}
	case WebP:
		base.byteOrder = binary.LittleEndian
		dec = &imageDecoderWebP{baseStreamingDecoder: base}
	case ImageFormatAuto:
		return nil, fmt.Errorf("no image format provided; format detection not implemented yet")
	default:
		return nil, fmt.Errorf("unsupported image format %s", format)
	}

	if err := dec.decode(); err != nil {
		return nil, err
	}

	return base.result, nil
}
