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
	"strconv"
	"time"
)

// Timestamps converts integer timestamps to points in time.
// The unit must be one of time.Second, time.Millisecond,
// time.Microsecond or time.Nanosecond.
func Timestamps(ts []int64, unit time.Duration) (DateTimes, error) {
	if unit <= 0 || unit > time.Second || time.Second%unit != 0 {
		return nil, &ValueError{Index: -1, Value: "unit " + unit.String()}
	}
	perSecond := int64(time.Second / unit)

	res := make(DateTimes, len(ts))
	for i, x := range ts {
		sec, frac := x/perSecond, x%perSecond
		if frac < 0 {
			sec--
			frac += perSecond
		}
		res[i] = time.Unix(sec, frac*int64(unit)).UTC()
	}
	return res, nil
}

// iso8601Layouts are tried in order by ParseISO8601.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseISO8601 parses strings in one of the common ISO 8601 forms.
// Strings without a time zone are interpreted as UTC.
func ParseISO8601(ss []string) (DateTimes, error) {
	res := make(DateTimes, len(ss))
outer:
	for i, s := range ss {
		var firstErr error
		for _, layout := range iso8601Layouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				res[i] = t
				continue outer
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return nil, &ValueError{Index: i, Value: strconv.Quote(s), Err: firstErr}
	}
	return res, nil
}

// ParseDateTimes parses strings using the given layout, see [time.Parse].
func ParseDateTimes(ss []string, layout string) (DateTimes, error) {
	res := make(DateTimes, len(ss))
	for i, s := range ss {
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, &ValueError{Index: i, Value: strconv.Quote(s), Err: err}
		}
		res[i] = t
	}
	return res, nil
}

// ParseDates parses calendar dates using the given layout.
// An empty layout means "2006-01-02".
func ParseDates(ss []string, layout string) (Dates, error) {
	if layout == "" {
		layout = time.DateOnly
	}
	res, err := ParseDateTimes(ss, layout)
	return Dates(res), err
}

// TimesOfDay converts the clock times of ts to durations since midnight.
func TimesOfDay(ts []time.Time) Durations {
	res := make(Durations, len(ts))
	for i, t := range ts {
		res[i] = TimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()).d
	}
	return res
}
