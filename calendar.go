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

// Package libcalendar implements a Julian-Day-Number date kernel, an
// astronomical event locator (solar terms, lunar phases), and the
// proleptic Gregorian and astronomically-driven Chinese lunisolar
// calendars built on top of it.
package libcalendar

// YearOf generalizes a calendar year value that enumerates its months.
// GregorianYear and ChineseYear both satisfy this for their own month
// type.
type YearOf[M any] interface {
	Ord() int
	NumMonths() int
	Month(ord int) (M, bool)
	IsLeap() bool
}

// MonthOf generalizes a calendar month value that enumerates its days.
type MonthOf[D any] interface {
	Ord() int
	NumDays() int
	Day(ord int) (D, bool)
	IsLeap() bool
}

// DayOf generalizes a calendar day value convertible to an absolute Date.
type DayOf interface {
	Ord() int
	AsDate() Date
}

// Months returns every month of y, in year order.
func Months[M any](y YearOf[M]) []M {
	months := make([]M, 0, y.NumMonths())
	for i := 1; i <= y.NumMonths(); i++ {
		if m, ok := y.Month(i); ok {
			months = append(months, m)
		}
	}
	return months
}

// FirstMonth returns the first month of y.
func FirstMonth[M any](y YearOf[M]) M {
	m, _ := y.Month(1)
	return m
}

// LastMonth returns the last month of y.
func LastMonth[M any](y YearOf[M]) M {
	m, _ := y.Month(y.NumMonths())
	return m
}

// Days returns every day of m, in month order.
func Days[D any](m MonthOf[D]) []D {
	days := make([]D, 0, m.NumDays())
	for i := 1; i <= m.NumDays(); i++ {
		if d, ok := m.Day(i); ok {
			days = append(days, d)
		}
	}
	return days
}

// FirstDay returns the first day of m.
func FirstDay[D any](m MonthOf[D]) D {
	d, _ := m.Day(1)
	return d
}

// LastDay returns the last day of m.
func LastDay[D any](m MonthOf[D]) D {
	d, _ := m.Day(m.NumDays())
	return d
}

// WeekdayOf returns the weekday of d.
func WeekdayOf(d DayOf) Weekday {
	return d.AsDate().Weekday()
}
