// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifprofile

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotSupported is returned when a value cannot be created for a tag,
	// e.g. the unknown tag or text that does not parse as the tag's type.
	ErrNotSupported = errors.New("exifprofile: not supported")

	// ErrTypeMismatch is returned when a value does not match the data type of an entry.
	ErrTypeMismatch = errors.New("exifprofile: type mismatch")

	errInvalidFormat = errors.New("exifprofile: invalid format")

	// Internal error to signal that we should stop any further processing.
	errStop = errors.New("stop")
)

// InvalidFormatError is used when the container format is invalid.
type InvalidFormatError struct {
	Err error
}

func (e *InvalidFormatError) Error() string {
	if e.Err == nil || e.Err == errInvalidFormat {
		return errInvalidFormat.Error()
	}
	return fmt.Sprintf("%s: %s", errInvalidFormat, e.Err)
}

// Is reports whether target is an invalid format error.
func (e *InvalidFormatError) Is(target error) bool {
	return target == errInvalidFormat
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// IsInvalidFormat reports whether err is an invalid format error.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, errInvalidFormat)
}

func newInvalidFormatError(err error) error {
	var ife *InvalidFormatError
	if errors.As(err, &ife) {
		return err
	}
	return &InvalidFormatError{Err: err}
}

func newInvalidFormatErrorf(format string, args ...any) error {
	return newInvalidFormatError(fmt.Errorf(format, args...))
}

func isInvalidFormatErrorCandidate(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, errShortRead) || errors.Is(err, errInvalidFormat)
}
