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
	"fmt"
	"math"
	"time"
)

// Range is a closed interval [Low, High] of values from one domain.
// A Range maps values affinely to positions, with Low at 0 and High at 1.
// Values outside the interval map outside of [0, 1].
//
// The zero Range is invalid; use one of the constructors.
type Range struct {
	lo, hi Value

	// Positions inside the range are measured in seconds from origin
	// for the time domains.  The origin is 0 for Float and Date.
	origin   int64
	pLo, pHi float64
	span     float64
}

// NewRange returns the range [lo, hi]. Both values must belong to the same
// domain and lo must be strictly smaller than hi.
func NewRange(lo, hi Value) (Range, error) {
	if lo.dom != hi.dom {
		return Range{}, &DomainError{Op: "range", Want: lo.dom, Got: hi.dom}
	}
	if !lo.valid() {
		return Range{}, &ValueError{Index: -1, Value: lo.String()}
	}
	if !hi.valid() {
		return Range{}, &ValueError{Index: -1, Value: hi.String()}
	}

	origin := lo.origin()
	pLo, pHi := lo.relPos(origin), hi.relPos(origin)
	if !(pLo < pHi) {
		return Range{}, fmt.Errorf("%w: %s is not below %s", ErrInvalidRange, lo, hi)
	}
	span := pHi - pLo
	if math.IsInf(span, 0) {
		return Range{}, fmt.Errorf("%w: [%s, %s] is too wide", ErrInvalidRange, lo, hi)
	}
	return Range{lo: lo, hi: hi, origin: origin, pLo: pLo, pHi: pHi, span: span}, nil
}

// FloatRange returns the range [lo, hi] in the Float domain.
func FloatRange(lo, hi float64) (Range, error) {
	return NewRange(FloatValue(lo), FloatValue(hi))
}

// DateRange returns the range of calendar dates from lo to hi.
func DateRange(lo, hi time.Time) (Range, error) {
	return NewRange(DateValue(lo), DateValue(hi))
}

// DateTimeRange returns the range of points in time from lo to hi.
func DateTimeRange(lo, hi time.Time) (Range, error) {
	return NewRange(DateTimeValue(lo), DateTimeValue(hi))
}

// DurationRange returns the range of durations from lo to hi.
func DurationRange(lo, hi time.Duration) (Range, error) {
	return NewRange(DurationValue(lo), DurationValue(hi))
}

// Must is a helper that wraps a call to a Range constructor and panics if
// the error is non-nil. It is intended for ranges built from constants.
func Must(r Range, err error) Range {
	if err != nil {
		panic(err)
	}
	return r
}

// Domain returns the domain of the range.
func (r Range) Domain() Domain {
	return r.lo.dom
}

// Low returns the lower bound.
func (r Range) Low() Value {
	return r.lo
}

// High returns the upper bound.
func (r Range) High() Value {
	return r.hi
}

// IsZero reports whether r is the zero Range.
func (r Range) IsZero() bool {
	return r.lo.dom == 0
}

// Normalize returns the position of v relative to the range: 0 for Low, 1
// for High. Values outside the range give results outside [0, 1].
func (r Range) Normalize(v Value) (float64, error) {
	if v.dom != r.lo.dom {
		return 0, &DomainError{Op: "normalize", Want: r.lo.dom, Got: v.dom}
	}
	if !v.valid() {
		return 0, &ValueError{Index: -1, Value: v.String()}
	}
	return r.normRel(v.relPos(r.origin)), nil
}

func (r Range) normRel(p float64) float64 {
	return (p - r.pLo) / r.span
}

// NormalizePos is like Normalize, but takes a linear position as returned
// by [Value.Pos] or [Column.Pos]. It does not check its argument.
// For the time domains, the result is only as precise as the position;
// use [Range.Normalizer] for exact results.
func (r Range) NormalizePos(p float64) float64 {
	return (p - float64(r.origin) - r.pLo) / r.span
}

// Normalizer returns a function which maps the i-th value of c to its
// normalized position, as Normalize does.  The values of c are not
// checked, see [Check].
func (r Range) Normalizer(c Column) func(i int) float64 {
	switch c := c.(type) {
	case Floats:
		return func(i int) float64 { return (c[i] - r.pLo) / r.span }
	case DateTimes:
		return func(i int) float64 { return r.normRel(timeRel(c[i], r.origin)) }
	case Durations:
		return func(i int) float64 { return r.normRel(durationRel(c[i], r.origin)) }
	case Values:
		return func(i int) float64 { return r.normRel(c[i].relPos(r.origin)) }
	default:
		return func(i int) float64 { return r.NormalizePos(c.Pos(i)) }
	}
}

// Affine returns scale and offset such that NormalizePos(p) equals
// p*scale + offset up to rounding.
func (r Range) Affine() (scale, offset float64) {
	scale = 1 / r.span
	return scale, -(float64(r.origin) + r.pLo) * scale
}

// Contains reports whether v lies in the closed range.
func (r Range) Contains(v Value) bool {
	if v.dom != r.lo.dom || !v.valid() {
		return false
	}
	p := v.relPos(r.origin)
	return p >= r.pLo && p <= r.pHi
}

func (r Range) String() string {
	return fmt.Sprintf("%s[%s, %s]", r.lo.dom, r.lo, r.hi)
}
