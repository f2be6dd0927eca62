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
	"math"
	"strconv"
	"time"
)

// Column is a sequence of values from a single domain.
type Column interface {
	// Domain returns the domain of all values in the column.
	Domain() Domain

	// Len returns the number of values.
	Len() int

	// Pos returns the linear position of value i, see [Value.Pos].
	Pos(i int) float64
}

// Floats is a column of real numbers.
type Floats []float64

func (Floats) Domain() Domain        { return Float }
func (c Floats) Len() int            { return len(c) }
func (c Floats) Pos(i int) float64   { return c[i] }
func (c Floats) check() (int, error) { return checkFloats(c) }

// Float32s is a column of real numbers stored with single precision.
type Float32s []float32

func (Float32s) Domain() Domain      { return Float }
func (c Float32s) Len() int          { return len(c) }
func (c Float32s) Pos(i int) float64 { return float64(c[i]) }

func (c Float32s) check() (int, error) {
	for i, x := range c {
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return i, nil
		}
	}
	return -1, nil
}

// Int64s is a column of integers, shown in the Float domain.
type Int64s []int64

func (Int64s) Domain() Domain      { return Float }
func (c Int64s) Len() int          { return len(c) }
func (c Int64s) Pos(i int) float64 { return float64(c[i]) }

// Int32s is a column of integers, shown in the Float domain.
type Int32s []int32

func (Int32s) Domain() Domain      { return Float }
func (c Int32s) Len() int          { return len(c) }
func (c Int32s) Pos(i int) float64 { return float64(c[i]) }

// Dates is a column of calendar dates. The time of day is ignored.
type Dates []time.Time

func (Dates) Domain() Domain      { return Date }
func (c Dates) Len() int          { return len(c) }
func (c Dates) Pos(i int) float64 { return datePos(c[i]) }

// DateTimes is a column of points in time.
type DateTimes []time.Time

func (DateTimes) Domain() Domain      { return DateTime }
func (c DateTimes) Len() int          { return len(c) }
func (c DateTimes) Pos(i int) float64 { return dateTimePos(c[i]) }

// Durations is a column of durations.
type Durations []time.Duration

func (Durations) Domain() Domain      { return Duration }
func (c Durations) Len() int          { return len(c) }
func (c Durations) Pos(i int) float64 { return durationPos(c[i]) }

// Values is a column of individually tagged values.
// All values must belong to the same domain.
type Values []Value

// Domain returns the domain of the first value, or 0 for an empty column.
func (c Values) Domain() Domain {
	if len(c) == 0 {
		return 0
	}
	return c[0].dom
}

func (c Values) Len() int          { return len(c) }
func (c Values) Pos(i int) float64 { return c[i].Pos() }

func (c Values) check() (int, error) {
	if len(c) == 0 {
		return -1, nil
	}
	dom := c[0].dom
	for i, v := range c {
		if !v.valid() {
			return i, &ValueError{Index: i, Value: v.String()}
		}
		if v.dom != dom {
			return i, &DomainError{Op: "column", Want: dom, Got: v.dom}
		}
	}
	return -1, nil
}

// checker is implemented by columns which can hold values that cannot be
// placed on an axis. It returns the index of the first bad value, or -1,
// and optionally a more specific error.
type checker interface {
	check() (int, error)
}

// Check verifies that all values of col belong to the domain want and can
// be placed on an axis.
func Check(col Column, want Domain) error {
	if col.Len() == 0 {
		return nil
	}
	if v, ok := col.(Values); ok && !v[0].valid() {
		return &ValueError{Index: 0, Value: v[0].String()}
	}
	if got := col.Domain(); got != want {
		return &DomainError{Op: "column", Want: want, Got: got}
	}
	c, ok := col.(checker)
	if !ok {
		return nil
	}
	i, err := c.check()
	if err != nil {
		return err
	}
	if i >= 0 {
		return &ValueError{
			Index: i,
			Value: strconv.FormatFloat(col.Pos(i), 'g', -1, 64),
		}
	}
	return nil
}

func checkFloats(c []float64) (int, error) {
	for i, x := range c {
		// x-x is NaN for both NaN and infinities
		if x-x != 0 {
			return i, nil
		}
	}
	return -1, nil
}
