// seehuhn.de/go/ezel - fast raster charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ezel

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/ezel/axis"
)

// Errors returned by ezel.  Use [errors.Is] to test for them.
var (
	// ErrDomainMismatch is returned when values from different domains
	// are mixed, for example a date column on a duration axis.
	ErrDomainMismatch = axis.ErrDomainMismatch

	// ErrInvalidRange is returned for a range whose low bound is not
	// below its high bound.
	ErrInvalidRange = axis.ErrInvalidRange

	// ErrInvalidValue is returned for NaN or infinite data.
	ErrInvalidValue = axis.ErrInvalidValue

	// ErrInvalidRegion is returned when a region cannot be split or used.
	ErrInvalidRegion = errors.New("ezel: invalid region")

	// ErrLengthMismatch is returned when the x and y columns of a series
	// have different lengths.
	ErrLengthMismatch = errors.New("ezel: length mismatch")

	// ErrEncode is returned when the image cannot be encoded or written.
	ErrEncode = errors.New("ezel: encoding failed")
)

// RegionError describes an invalid operation on a region.
type RegionError struct {
	Op     string // "split", "bind" or "draw"
	Bounds image.Rectangle
	Reason string
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("ezel: %s region %v: %s", e.Op, e.Bounds, e.Reason)
}

func (e *RegionError) Unwrap() error {
	return ErrInvalidRegion
}

// EncodeError is returned when writing the image fails.
type EncodeError struct {
	Path string // empty when writing to an io.Writer
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return "ezel: encode: " + e.Err.Error()
	}
	return fmt.Sprintf("ezel: encode %q: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncode, e.Err}
}
