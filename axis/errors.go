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

package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrDomainMismatch is returned when values from two different domains
	// are combined, e.g. a date as the low bound and a duration as the high
	// bound of a Range.
	ErrDomainMismatch = errors.New("axis: domain mismatch")

	// ErrInvalidRange is returned when the low bound of a Range is not
	// strictly below the high bound.
	ErrInvalidRange = errors.New("axis: invalid range")

	// ErrInvalidValue is returned for values which cannot be placed on an
	// axis: NaN, infinities, the zero Value and unparsable input.
	ErrInvalidValue = errors.New("axis: invalid value")
)

// DomainError describes a domain mismatch.
type DomainError struct {
	Op   string // "range", "normalize" or "column"
	Want Domain
	Got  Domain
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("axis: %s: domain mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

func (e *DomainError) Unwrap() error {
	return ErrDomainMismatch
}

// ValueError describes a value which cannot be placed on an axis.
type ValueError struct {
	Index int    // position in the column, or -1 for a single value
	Value string // the offending input
	Err   error  // underlying cause, may be nil
}

func (e *ValueError) Error() string {
	msg := "axis: invalid value " + e.Value
	if e.Index >= 0 {
		msg = fmt.Sprintf("axis: invalid value %s at index %d", e.Value, e.Index)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValueError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidValue}
	}
	return []error{ErrInvalidValue, e.Err}
}
