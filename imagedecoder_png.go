// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import "bytes"

const (
	pngEXIFMarker = 0x65584966 // eXIf
	pngIENDMarker = 0x49454e44 // IEND
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

type imageDecoderPNG struct {
	*baseStreamingDecoder
}

func (e *imageDecoderPNG) decode() error {
	// http://ftp-osl.osuosl.org/pub/libpng/documents/pngext-1.5.0.html#C.eXIf
	// The data segment of the eXIf chunk starts with the TIFF header;
	// the "Exif" identifier used in JPEG is not included.
	if !bytes.Equal(e.readBytesVolatile(len(pngSignature)), pngSignature) {
		return errInvalidFormat
	}

	for {
		chunkLength, typ := e.read4(), e.read4()
		if e.isEOF {
			return nil
		}

		switch typ {
		case pngEXIFMarker:
			e.result = e.readBytes(int(chunkLength))
			return nil
		case pngIENDMarker:
			return nil
		}

		e.skip(int64(chunkLength))
		e.skip(4) // skip CRC
	}
}
