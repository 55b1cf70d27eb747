// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"encoding/binary"
	"errors"
	"io"
)

var errShortRead = errors.New("short read")

// 10 MB should be plenty for image metadata.
const maxBufSize = 10 * 1024 * 1024

type decoder interface {
	decode() error
}

// streamReader is a wrapper around a Reader that provides methods to read binary data.
// Note that this is not thread safe.
type streamReader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder

	buf []byte

	isEOF   bool
	readErr error
}

func newStreamReader(r io.ReadSeeker, byteOrder binary.ByteOrder) *streamReader {
	return &streamReader{
		r:         r,
		byteOrder: byteOrder,
	}
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *streamReader) read2() uint16 {
	const n = 2
	e.readNIntoBuf(n)
	return e.byteOrder.Uint16(e.buf[:n])
}

func (e *streamReader) read2E() (uint16, error) {
	const n = 2
	if err := e.readNIntoBufE(n); err != nil {
		return 0, err
	}
	return e.byteOrder.Uint16(e.buf[:n]), nil
}

func (e *streamReader) read4() uint32 {
	const n = 4
	e.readNIntoBuf(n)
	return e.byteOrder.Uint32(e.buf[:n])
}

// readBytes reads n bytes into a newly allocated slice.
func (e *streamReader) readBytes(n int) []byte {
	if n < 0 || n > maxBufSize {
		panic(newInvalidFormatErrorf("length %d exceeds max %d", n, maxBufSize))
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(e.r, b); err != nil {
		e.stop(err)
	}
	return b
}

// readBytesVolatile reads a slice of bytes from the stream
// which is not guaranteed to be valid after the next read.
func (e *streamReader) readBytesVolatile(n int) []byte {
	e.readNIntoBuf(n)
	return e.buf[:n]
}

func (e *streamReader) readNIntoBuf(n int) {
	if err := e.readNIntoBufE(n); err != nil {
		e.stop(err)
	}
}

func (e *streamReader) readNIntoBufE(n int) error {
	e.allocateBuf(n)
	n2, err := io.ReadFull(e.r, e.buf[:n])
	if err != nil {
		return err
	}
	if n != n2 {
		return errShortRead
	}
	return nil
}

func (e *streamReader) skip(n int64) {
	if _, err := e.r.Seek(n, io.SeekCurrent); err != nil {
		e.stop(err)
	}
}

func (e *streamReader) stop(err error) {
	// Alow one silent EOF.
	// This allows the client to not having to check for EOF on every read.
	if err == io.EOF && !e.isEOF {
		e.isEOF = true
		return
	}
	if err != nil {
		e.readErr = err
	}
	panic(errStop)
}

// cursor is a read position in an in-memory EXIF buffer.
// Reads past the end of data panic with errStop.
type cursor struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

func (c *cursor) remaining() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

func (c *cursor) seek(pos int) {
	c.pos = pos
}

func (c *cursor) skip(n int) {
	c.pos += n
}

func (c *cursor) preservePos(f func()) {
	pos := c.pos
	defer func() {
		c.pos = pos
	}()
	f()
}

// bytes returns the next n bytes. The slice aliases data.
func (c *cursor) bytes(n int) []byte {
	if n < 0 || c.remaining() < n {
		panic(errStop)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

func (c *cursor) read2() uint16 {
	return c.order.Uint16(c.bytes(2))
}

func (c *cursor) read4() uint32 {
	return c.order.Uint32(c.bytes(4))
}

func (c *cursor) read4E() (uint32, error) {
	if c.remaining() < 4 {
		return 0, errShortRead
	}
	return c.read4(), nil
}
