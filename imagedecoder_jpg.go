// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import "bytes"

const (
	markerSOI      = 0xffd8
	markerApp1EXIF = 0xffe1
	markerSOS      = 0xffda
)

type imageDecoderJPEG struct {
	*baseStreamingDecoder
}

func (e *imageDecoderJPEG) decode() error {
	// JPEG SOI marker.
	soi, err := e.read2E()
	if err != nil {
		return err
	}

	if soi != markerSOI {
		return errInvalidFormat
	}

	for {
		marker := e.read2()
		if e.isEOF {
			return nil
		}

		if marker == 0 {
			continue
		}

		if marker == markerSOS {
			// Start of scan. We're done.
			return nil
		}

		// Read the 16-bit length of the segment. The value includes the 2 bytes for the
		// length itself, so we subtract 2 to get the number of remaining bytes.
		length := e.read2()
		if length < 2 {
			return errInvalidFormat
		}
		length -= 2

		if marker == markerApp1EXIF {
			// APP1 is shared with XMP.
			b := e.readBytes(int(length))
			if bytes.HasPrefix(b, exifIdentifier) {
				e.result = b
				return nil
			}
			continue
		}

		e.skip(int64(length))
	}
}
