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
	"testing"
	"time"
)

func TestTimestamps(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 15, 250_000_000, time.UTC)
	cases := []struct {
		unit time.Duration
		ts   int64
	}{
		{time.Millisecond, want.UnixMilli()},
		{time.Microsecond, want.UnixMicro()},
		{time.Nanosecond, want.UnixNano()},
	}
	for _, c := range cases {
		got, err := Timestamps([]int64{c.ts}, c.unit)
		if err != nil {
			t.Fatal(err)
		}
		if !got[0].Equal(want) {
			t.Errorf("unit %v: got %v, want %v", c.unit, got[0], want)
		}
	}

	// negative timestamps round towards the past
	got, err := Timestamps([]int64{-1500}, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if w := time.Unix(-2, 500_000_000).UTC(); !got[0].Equal(w) {
		t.Errorf("got %v, want %v", got[0], w)
	}

	for _, unit := range []time.Duration{0, time.Minute, 3 * time.Millisecond} {
		if _, err := Timestamps([]int64{1}, unit); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("unit %v: got %v, want ErrInvalidValue", unit, err)
		}
	}
}

func TestParseISO8601(t *testing.T) {
	in := []string{
		"2020-04-06T08:15:00Z",
		"2020-04-06T10:15:00+02:00",
		"2020-04-06 08:15:00",
		"2020-04-06T08:15",
	}
	got, err := ParseISO8601(in)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2020, 4, 6, 8, 15, 0, 0, time.UTC)
	for i, g := range got {
		if !g.Equal(want) {
			t.Errorf("%q: got %v, want %v", in[i], g, want)
		}
	}

	_, err = ParseISO8601([]string{"2020-04-06", "yesterday"})
	var ve *ValueError
	if !errors.As(err, &ve) || ve.Index != 1 {
		t.Errorf("got %v, want a ValueError at index 1", err)
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("error %v does not match ErrInvalidValue", err)
	}
}

func TestParseDates(t *testing.T) {
	got, err := ParseDates([]string{"2020-01-01", "2020-12-31"}, "")
	if err != nil {
		t.Fatal(err)
	}
	r := Must(DateRange(got[0], got[1]))
	if x := r.NormalizePos(got.Pos(1)); x != 1 {
		t.Errorf("high end at %g", x)
	}

	got, err = ParseDates([]string{"06/04/2020"}, "02/01/2006")
	if err != nil {
		t.Fatal(err)
	}
	if y, m, d := got[0].Date(); y != 2020 || m != time.April || d != 6 {
		t.Errorf("got %v", got[0])
	}

	if _, err := ParseDateTimes([]string{"12:00"}, time.DateTime); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got %v, want ErrInvalidValue", err)
	}
}

func TestTimesOfDay(t *testing.T) {
	ts := []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 7, 4, 13, 45, 30, 5, time.UTC),
	}
	got := TimesOfDay(ts)
	want := Durations{0, 13*time.Hour + 45*time.Minute + 30*time.Second + 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %v, want %v", i, got[i], want[i])
		}
	}
	if got.Domain() != Duration {
		t.Errorf("domain %v", got.Domain())
	}
}
