// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"io"

	"golang.org/x/image/riff"
)

var (
	fccVP8X = riff.FourCC{'V', 'P', '8', 'X'}
	fccWEBP = riff.FourCC{'W', 'E', 'B', 'P'}
	fccEXIF = riff.FourCC{'E', 'X', 'I', 'F'}
)

type imageDecoderWebP struct {
	*baseStreamingDecoder
}

func (e *imageDecoderWebP) decode() error {
	formType, riffReader, err := riff.NewReader(e.r)
	if err != nil {
		return newInvalidFormatError(err)
	}
	if formType != fccWEBP {
		return newInvalidFormatErrorf("not a WebP file")
	}

	var buf [10]byte

	for {
		chunkID, chunkLen, chunkData, err := riffReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return newInvalidFormatError(err)
		}

		switch chunkID {
		case fccVP8X:
			if chunkLen != 10 {
				return errInvalidFormat
			}
			const exifMetadataBit = 1 << 3

			if _, err := io.ReadFull(chunkData, buf[:10]); err != nil {
				return err
			}

			if buf[0]&exifMetadataBit == 0 {
				return nil
			}
		case fccEXIF:
			if chunkLen > maxBufSize {
				return newInvalidFormatErrorf("EXIF chunk length %d exceeds max %d", chunkLen, maxBufSize)
			}
			b := make([]byte, chunkLen)
			if _, err := io.ReadFull(chunkData, b); err != nil {
				return err
			}
			e.result = b
			return nil
		}
	}
}
