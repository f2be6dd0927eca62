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

package testcases

import (
	"time"

	"seehuhn.de/go/ezel"
	"seehuhn.de/go/ezel/axis"
)

var timeCases = []TestCase{
	{
		Name: "chrono",
		Draw: drawChrono,
	},
	{
		Name:   "durations",
		Width:  600,
		Height: 300,
		Draw:   drawDurations,
	},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// drawChrono shows the same three values over date, datetime and
// time-of-day axes, in three regions of one canvas.
func drawChrono(c *ezel.Canvas) error {
	days := []time.Time{date(2020, 1, 1), date(2020, 4, 6), date(2020, 11, 12)}
	clock := []time.Duration{
		23*time.Hour + 11*time.Minute + 20*time.Second + 555*time.Microsecond,
		11*time.Hour + 23*time.Minute + 52*time.Second + 912*time.Microsecond,
		1*time.Hour + 0*time.Minute + 2*time.Second + 11*time.Microsecond,
	}
	stamps := make(axis.DateTimes, len(days))
	for i := range days {
		stamps[i] = days[i].Add(clock[i])
	}
	y := axis.Floats{100, 200, 150}
	yRange, err := axis.FloatRange(0, 200)
	if err != nil {
		return err
	}

	top, bottom, err := c.SplitVertically()
	if err != nil {
		return err
	}
	left, right, err := bottom.SplitHorizontally()
	if err != nil {
		return err
	}

	dtRange, err := axis.DateTimeRange(date(2020, 1, 1), date(2020, 12, 31))
	if err != nil {
		return err
	}
	ch, err := ezel.NewChart(top, dtRange, yRange, ezel.WithCaption("datetime"))
	if err != nil {
		return err
	}
	if err := ch.Line(stamps, y); err != nil {
		return err
	}

	dRange, err := axis.DateRange(date(2020, 1, 1), date(2020, 12, 31))
	if err != nil {
		return err
	}
	ch, err = ezel.NewChart(left, dRange, yRange, ezel.WithCaption("date"))
	if err != nil {
		return err
	}
	if err := ch.Line(axis.Dates(days), y); err != nil {
		return err
	}

	tRange, err := axis.DurationRange(0, 24*time.Hour)
	if err != nil {
		return err
	}
	ch, err = ezel.NewChart(right, tRange, yRange, ezel.WithCaption("time"))
	if err != nil {
		return err
	}
	return ch.Scatter(axis.TimesOfDay(stamps), y)
}

// drawDurations plots a decaying curve over a duration axis.
func drawDurations(c *ezel.Canvas) error {
	const n = 500
	xs := make(axis.Durations, n)
	ys := make(axis.Floats, n)
	for i := range n {
		d := time.Duration(i) * 90 * time.Second
		xs[i] = d
		ys[i] = 1 / (1 + d.Hours())
	}
	xr, err := axis.DurationRange(0, 12*time.Hour)
	if err != nil {
		return err
	}
	yr, err := axis.FloatRange(0, 1)
	if err != nil {
		return err
	}
	ch, err := ezel.NewChart(c, xr, yr,
		ezel.WithCaption("decay"),
		ezel.WithLabelArea(40, 20))
	if err != nil {
		return err
	}
	return ch.Line(xs, ys, ezel.StrokeWidth(2))
}
