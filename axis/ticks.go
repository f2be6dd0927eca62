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
	"strings"
	"time"

	"github.com/aclements/go-moremath/scale"
)

// Tick is a labelled position on an axis.
type Tick struct {
	Value Value
	Pos   float64 // normalized position in [0, 1]
	Label string
}

// Ticks returns at most max ticks inside r, in increasing order.
//
// Tick positions are multiples of a step size.  For the Float domain, steps
// are 1, 2 or 5 times a power of ten.  For the time domains, steps follow
// calendar units (seconds, minutes, hours, days, weeks, months, years) but
// are placed linearly, so that a "month" is a fixed number of days.
func (r Range) Ticks(max int) []Tick {
	if r.IsZero() || max < 1 {
		return nil
	}

	var stepOf func(level int) float64
	guess := 0
	switch r.Domain() {
	case Float:
		stepOf = decimalStep
		guess = int(math.Floor(3 * math.Log10(r.span/float64(max))))
	case Date:
		stepOf = ladderStep(dateSteps, 365)
	case DateTime:
		stepOf = ladderStep(dateTimeSteps, 365*secondsPerDay)
	case Duration:
		stepOf = ladderStep(durationSteps, 365*secondsPerDay)
	}

	// Steps of at least one divide into whole seconds, steps below one
	// divide one second.  For large steps, shift is the offset of the
	// origin from the previous multiple of the step, so that all
	// arithmetic stays exact.
	lo, hi := r.pLo, r.pHi
	grid := func(step float64) (k0, k1, shift float64) {
		if step >= 1 {
			shift = math.Mod(float64(r.origin), step)
		}
		k0 = math.Ceil((shift + lo) / step)
		k1 = math.Floor((shift + hi) / step)
		return k0, k1, shift
	}
	count := func(level int) int {
		k0, k1, _ := grid(stepOf(level))
		n := k1 - k0 + 1
		if n > math.MaxInt32 {
			return math.MaxInt32
		}
		return int(n)
	}
	positions := func(level int) []float64 {
		step := stepOf(level)
		k0, k1, shift := grid(step)
		res := make([]float64, 0, int(k1-k0)+1)
		for k := k0; k <= k1; k++ {
			if step < 1 {
				// k/10 is exact where k*0.1 is not
				res = append(res, k/math.Round(1/step))
			} else {
				res = append(res, k*step-shift)
			}
		}
		return res
	}

	opt := scale.TickOptions{Max: max}
	if r.Domain() == Date {
		// no ticks between days
		opt.MinLevel, opt.MaxLevel = 0, 1000
	}
	level, ok := opt.FindLevel(tickLevels{count, positions}, guess)
	if !ok {
		return nil
	}

	step := stepOf(level)
	format := r.labeller(step)
	var ticks []Tick
	for _, p := range positions(level) {
		v := fromRelPos(p, r.origin, r.lo)
		ticks = append(ticks, Tick{
			Value: v,
			Pos:   r.normRel(p),
			Label: format(v),
		})
	}
	return ticks
}

// fracDigits returns the number of decimal places needed to show
// multiples of a sub-second step, between 1 and 9.
func fracDigits(step float64) int {
	return min(max(int(math.Ceil(-math.Log10(step)-1e-9)), 1), 9)
}

// tickLevels presents the tick positions of a range as a scale.Ticker.
type tickLevels struct {
	count     func(level int) int
	positions func(level int) []float64
}

func (t tickLevels) CountTicks(level int) int { return t.count(level) }

func (t tickLevels) TicksAtLevel(level int) interface{} { return t.positions(level) }

// decimalStep returns 1, 2 or 5 times a power of ten. Level 0 is 1,
// level 1 is 2, level 3 is 10 and level -1 is 0.5.
func decimalStep(level int) float64 {
	exp := level / 3
	idx := level % 3
	if idx < 0 {
		idx += 3
		exp--
	}
	return [3]float64{1, 2, 5}[idx] * math.Pow(10, float64(exp))
}

// ladderStep returns a step function which uses decimal steps below
// level 0, the given ladder for levels 0 to len(ladder)-1, and multiples of
// year beyond that.
func ladderStep(ladder []float64, year float64) func(int) float64 {
	return func(level int) float64 {
		switch {
		case level < 0:
			return ladder[0] * decimalStep(level)
		case level < len(ladder):
			return ladder[level]
		default:
			return year * decimalStep(level-len(ladder))
		}
	}
}

// Step ladders, in units of the domain's positions.
var (
	dateSteps = []float64{1, 2, 7, 14, 30, 61, 91, 182}

	dateTimeSteps = []float64{
		1, 2, 5, 10, 15, 30, // seconds
		60, 120, 300, 600, 900, 1800, // minutes
		3600, 2 * 3600, 3 * 3600, 6 * 3600, 12 * 3600, // hours
		secondsPerDay, 2 * secondsPerDay, 7 * secondsPerDay, 14 * secondsPerDay,
		30 * secondsPerDay, 61 * secondsPerDay, 91 * secondsPerDay, 182 * secondsPerDay,
	}

	durationSteps = dateTimeSteps
)

// labeller returns a function which formats tick values for the given step.
func (r Range) labeller(step float64) func(Value) string {
	switch r.Domain() {
	case Float:
		digits := 0
		if step < 1 {
			digits = int(math.Ceil(-math.Log10(step)))
		}
		if step >= 1e7 || (step < 1e-6 && step > 0) {
			return func(v Value) string {
				return strconv.FormatFloat(v.f, 'g', 4, 64)
			}
		}
		return func(v Value) string {
			return strconv.FormatFloat(v.f, 'f', digits, 64)
		}
	case Date:
		return func(v Value) string { return v.t.Format(time.DateOnly) }
	case DateTime:
		layout := "15:04:05"
		switch {
		case step >= secondsPerDay:
			layout = time.DateOnly
		case step >= 60:
			layout = "01-02 15:04"
		case step < 1:
			layout += "." + strings.Repeat("0", fracDigits(step))
		}
		return func(v Value) string { return v.t.Format(layout) }
	case Duration:
		unit := time.Second
		if step < 1 {
			unit = time.Duration(math.Pow10(9 - fracDigits(step)))
		}
		return func(v Value) string { return v.d.Round(unit).String() }
	default:
		return func(v Value) string { return v.String() }
	}
}
