// Copyright (C) 2021  Alexander Staudt
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

package libcalendar

import "math"

// minJDN and maxJDN bracket civil years [-9999, 9999] with headroom;
// arithmetic that would leave this range saturates instead of wrapping.
const (
	minJDN int64 = -2000000
	maxJDN int64 = 6000000
)

func clampJDN(n int64) int64 {
	if n < minJDN {
		return minJDN
	}
	if n > maxJDN {
		return maxJDN
	}
	return n
}

// Date is an opaque, immutable day identity: a single Julian Day Number.
// The zero value is JDN 0 (proleptic Gregorian -4713-11-24); construct
// other dates with FromJDN or FromJD.
type Date struct {
	jdn int64
}

// FromJDN constructs a Date directly from its Julian Day Number.
func FromJDN(n int64) Date {
	return Date{jdn: clampJDN(n)}
}

// FromJD constructs a Date from a real-valued Julian Date, civil midnight
// to midnight boundaries at UT.
func FromJD(jd float64) Date {
	return Date{jdn: clampJDN(int64(math.Floor(jd + 0.5)))}
}

// FromJDWithTZ constructs a Date from a real-valued Julian Date, shifting
// by the timezone offset tz (hours) before flooring to a civil day.
func FromJDWithTZ(jd float64, tz float64) Date {
	return Date{jdn: clampJDN(int64(math.Floor(jd + 0.5 - tz/24)))}
}

// FromUnixTimeWithTZ constructs a Date from Unix seconds and a timezone
// offset tz (hours).
func FromUnixTimeWithTZ(sec int64, tz float64) Date {
	return FromJD(float64(sec)/86400 + 2440587.5 - tz/24)
}

// JDN returns the date's Julian Day Number.
func (d Date) JDN() int64 {
	return d.jdn
}

// JulianDate returns the Julian Date at civil midnight of d (jdn - 0.5).
func (d Date) JulianDate() float64 {
	return float64(d.jdn) - 0.5
}

// MidnightJD returns the real-valued Julian Date of the start of the
// civil day in timezone tz (hours).
func (d Date) MidnightJD(tz float64) float64 {
	return float64(d.jdn) - 0.5 - tz/24
}

// NoonJD returns the real-valued Julian Date of the midpoint of the
// civil day in timezone tz (hours).
func (d Date) NoonJD(tz float64) float64 {
	return float64(d.jdn) - tz/24
}

// Succ returns the following civil day.
func (d Date) Succ() Date {
	return FromJDN(d.jdn + 1)
}

// Pred returns the preceding civil day.
func (d Date) Pred() Date {
	return FromJDN(d.jdn - 1)
}

// Add returns the date k days after d (k may be negative).
func (d Date) Add(k int64) Date {
	return FromJDN(d.jdn + k)
}

// Sub returns the number of days from o to d.
func (d Date) Sub(o Date) int64 {
	return d.jdn - o.jdn
}

// Equal reports whether d and o are the same civil day.
func (d Date) Equal(o Date) bool {
	return d.jdn == o.jdn
}

// Before reports whether d precedes o.
func (d Date) Before(o Date) bool {
	return d.jdn < o.jdn
}

// After reports whether d follows o.
func (d Date) After(o Date) bool {
	return d.jdn > o.jdn
}

// Weekday returns the day of the week, calibrated so that jdn = 0 is a
// Monday.
func (d Date) Weekday() Weekday {
	return Weekday(modi(d.jdn, 7))
}

// Weekday is a closed set of the seven days of the week, ordered
// Monday..Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// numWeekdays is the size of the Weekday closed set.
const numWeekdays = 7

// Ord returns the 0-based ordinal of w (Monday = 0).
func (w Weekday) Ord() int {
	return int(w)
}

// WeekdayFromOrd returns the Weekday with the given 0-based ordinal, or
// false if ord is out of range.
func WeekdayFromOrd(ord int) (Weekday, bool) {
	if ord < 0 || ord >= numWeekdays {
		return 0, false
	}
	return Weekday(ord), true
}

// Succ returns the following weekday, wrapping from Sunday to Monday.
func (w Weekday) Succ() Weekday {
	return Weekday(modi(int64(w)+1, numWeekdays))
}

// Pred returns the preceding weekday, wrapping from Monday to Sunday.
func (w Weekday) Pred() Weekday {
	return Weekday(modi(int64(w)-1, numWeekdays))
}
