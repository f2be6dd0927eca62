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

// Package axis implements the coordinate domains of a chart axis.
//
// Every value on an axis belongs to one of four domains: real numbers,
// calendar dates, points in time and durations. Each domain maps its values
// to a linear position (the number itself, days since 1970-01-01, seconds
// since the Unix epoch and seconds, respectively). A [Range] uses these
// positions to map values to the unit interval.  For points in time and
// durations, a Range measures positions relative to its low bound in
// integer arithmetic, so that ranges of a few nanoseconds work.
package axis

import (
	"math"
	"strconv"
	"time"
)

// Domain identifies the set of values an axis can show.
// The zero Domain is invalid.
type Domain uint8

// These are the supported domains.
const (
	Float Domain = iota + 1
	Date
	DateTime
	Duration
)

func (d Domain) String() string {
	switch d {
	case Float:
		return "float64"
	case Date:
		return "date"
	case DateTime:
		return "datetime"
	case Duration:
		return "duration"
	default:
		return "Domain(" + strconv.Itoa(int(d)) + ")"
	}
}

const secondsPerDay = 24 * 60 * 60

// Value is a single value from one of the domains.
// The zero Value has no domain and cannot be used on an axis.
type Value struct {
	dom Domain
	f   float64
	t   time.Time
	d   time.Duration
}

// FloatValue returns a value in the Float domain.
func FloatValue(x float64) Value {
	return Value{dom: Float, f: x}
}

// DateValue returns the calendar date of t as a value in the Date domain.
// The time of day is ignored.
func DateValue(t time.Time) Value {
	y, m, d := t.Date()
	return Value{dom: Date, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// CivilDate returns the given calendar date as a value in the Date domain.
func CivilDate(year int, month time.Month, day int) Value {
	return Value{dom: Date, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateTimeValue returns a value in the DateTime domain.
func DateTimeValue(t time.Time) Value {
	return Value{dom: DateTime, t: t}
}

// DurationValue returns a value in the Duration domain.
func DurationValue(d time.Duration) Value {
	return Value{dom: Duration, d: d}
}

// TimeOfDay returns the time elapsed since midnight as a value in the
// Duration domain.
func TimeOfDay(hour, min, sec, nsec int) Value {
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(nsec)
	return Value{dom: Duration, d: d}
}

// Domain returns the domain of v.
func (v Value) Domain() Domain {
	return v.dom
}

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool {
	return v.dom == 0
}

// Float returns the number stored in a Float value.
func (v Value) Float() float64 {
	return v.f
}

// Time returns the time stored in a Date or DateTime value.
func (v Value) Time() time.Time {
	return v.t
}

// Duration returns the duration stored in a Duration value.
func (v Value) Duration() time.Duration {
	return v.d
}

// Pos returns the linear position of v.
// Positions of values from different domains are not comparable.
// For points in time far from 1970 the resolution is only a fraction of
// a microsecond; [Range.Normalize] and [Range.Normalizer] are exact.
func (v Value) Pos() float64 {
	switch v.dom {
	case Float:
		return v.f
	case Date:
		return datePos(v.t)
	case DateTime:
		return dateTimePos(v.t)
	case Duration:
		return durationPos(v.d)
	default:
		return math.NaN()
	}
}

func (v Value) String() string {
	switch v.dom {
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Date:
		return v.t.Format(time.DateOnly)
	case DateTime:
		return v.t.Format(time.RFC3339Nano)
	case Duration:
		return v.d.String()
	default:
		return "<invalid>"
	}
}

// valid reports whether v can be placed on an axis.
func (v Value) valid() bool {
	switch v.dom {
	case Float:
		return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
	case Date, DateTime, Duration:
		return true
	default:
		return false
	}
}

// fromRelPos is the inverse of relPos, used to construct tick values.
// The location of DateTime values is taken from ref.
func fromRelPos(p float64, origin int64, ref Value) Value {
	switch ref.dom {
	case Float:
		return FloatValue(p)
	case Date:
		days := int64(math.Round(p))
		return Value{dom: Date, t: time.Unix(days*secondsPerDay, 0).UTC()}
	case DateTime:
		sec, frac := math.Modf(p)
		t := time.Unix(origin+int64(sec), int64(math.Round(frac*1e9)))
		if loc := ref.t.Location(); loc != nil {
			t = t.In(loc)
		}
		return Value{dom: DateTime, t: t}
	case Duration:
		sec, frac := math.Modf(p)
		d := time.Duration(origin+int64(sec))*time.Second +
			time.Duration(math.Round(frac*1e9))
		return Value{dom: Duration, d: d}
	default:
		return Value{}
	}
}

// datePos returns the number of days between 1970-01-01 and the
// calendar date of t, ignoring the time of day.
func datePos(t time.Time) float64 {
	y, m, d := t.Date()
	return float64(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func dateTimePos(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func durationPos(d time.Duration) float64 {
	return d.Seconds()
}

// origin returns the whole seconds of v, for the time domains.
// Positions relative to the origin are exact to the nanosecond.
func (v Value) origin() int64 {
	switch v.dom {
	case DateTime:
		return v.t.Unix()
	case Duration:
		return int64(v.d / time.Second)
	default:
		return 0
	}
}

// relPos returns the position of v minus origin seconds.
// For Float and Date this is the same as Pos.
func (v Value) relPos(origin int64) float64 {
	switch v.dom {
	case DateTime:
		return timeRel(v.t, origin)
	case Duration:
		return durationRel(v.d, origin)
	default:
		return v.Pos()
	}
}

func timeRel(t time.Time, origin int64) float64 {
	return float64(t.Unix()-origin) + float64(t.Nanosecond())/1e9
}

func durationRel(d time.Duration, origin int64) float64 {
	return float64(int64(d/time.Second)-origin) + float64(d%time.Second)/1e9
}
