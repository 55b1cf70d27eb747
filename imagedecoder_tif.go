// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"encoding/binary"
	"io"
)

type imageDecoderTIF struct {
	*baseStreamingDecoder
}

// decode returns the whole file: a TIFF file is itself an EXIF blob
// without the identifier, and its offsets are relative to the start of the file.
func (e *imageDecoderTIF) decode() error {
	byteOrderTag := e.read2()
	switch byteOrderTag {
	case byteOrderBigEndian:
		e.byteOrder = binary.BigEndian
	case byteOrderLittleEndian:
		e.byteOrder = binary.LittleEndian
	default:
		return errInvalidFormat
	}

	if id := e.read2(); id != meaningOfLife {
		return errInvalidFormat
	}

	ifdOffset := e.read4()
	if ifdOffset < 8 {
		return errInvalidFormat
	}

	if _, err := e.r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	b, err := io.ReadAll(io.LimitReader(e.r, maxBufSize+1))
	if err != nil {
		return err
	}
	if len(b) > maxBufSize {
		return newInvalidFormatErrorf("file size exceeds max %d", maxBufSize)
	}
	e.result = b

	return nil
}
