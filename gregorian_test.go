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

import "testing"

func TestGregorianJDNAnchors(t *testing.T) {
	tests := []struct {
		name              string
		year, month, day  int
		jdn               int64
	}{
		{"JDN epoch", -4713, 11, 24, 0},
		{"year 1", 1, 1, 1, 1721426},
		{"Gregorian reform", 1582, 10, 15, 2299161},
		{"J2000 epoch day", 2000, 1, 1, 2451545},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gd, ok := NewGregorianDay(tt.year, tt.month, tt.day)
			if !ok {
				t.Fatalf("NewGregorianDay(%d, %d, %d) failed", tt.year, tt.month, tt.day)
			}
			if got := gd.AsDate().JDN(); got != tt.jdn {
				t.Errorf("AsDate().JDN() = %v, want %v", got, tt.jdn)
			}
			back := GregorianDayFromDate(FromJDN(tt.jdn))
			if back.Year().Ord() != tt.year || back.Month().Ord() != tt.month || back.Ord() != tt.day {
				t.Errorf("GregorianDayFromDate(%d) = %d-%d-%d, want %d-%d-%d",
					tt.jdn, back.Year().Ord(), back.Month().Ord(), back.Ord(), tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestGregorianWeekdayAnchors(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             Weekday
	}{
		{1582, 10, 15, Friday},
		{2024, 2, 11, Sunday},
	}
	for _, tt := range tests {
		gd, ok := NewGregorianDay(tt.year, tt.month, tt.day)
		if !ok {
			t.Fatalf("NewGregorianDay(%d, %d, %d) failed", tt.year, tt.month, tt.day)
		}
		if got := gd.Weekday(); got != tt.want {
			t.Errorf("%04d-%02d-%02d.Weekday() = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	for jdn := int64(2415021); jdn < 2415021+366*5; jdn++ { // 1900-01-01 + 5 years
		gd := GregorianDayFromDate(FromJDN(jdn))
		if got := gd.AsDate().JDN(); got != jdn {
			t.Errorf("round-trip(%d) = %d, want %d", jdn, got, jdn)
		}
	}
}

func TestGregorianLeapYear(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2400, true},
	}
	for _, tt := range tests {
		if got := NewGregorianYear(tt.year).IsLeap(); got != tt.leap {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.leap)
		}
	}
}

func TestGregorianMonthOutOfRange(t *testing.T) {
	if _, ok := NewGregorianDay(2023, 2, 30); ok {
		t.Errorf("NewGregorianDay(2023, 2, 30) succeeded, want failure")
	}
	if _, ok := NewGregorianDay(2024, 2, 29); !ok {
		t.Errorf("NewGregorianDay(2024, 2, 29) failed, want success")
	}
	if _, ok := NewGregorianDay(2023, 13, 1); ok {
		t.Errorf("NewGregorianDay(2023, 13, 1) succeeded, want failure")
	}
}

func TestGregorianMonthSuccPredCarry(t *testing.T) {
	y, _ := NewGregorianYear(2023).Month(12)
	next := y.Succ()
	if next.Year().Ord() != 2024 || next.Ord() != 1 {
		t.Errorf("December 2023.Succ() = %d-%d, want 2024-1", next.Year().Ord(), next.Ord())
	}
	prev := next.Pred()
	if prev.Year().Ord() != 2023 || prev.Ord() != 12 {
		t.Errorf("January 2024.Pred() = %d-%d, want 2023-12", prev.Year().Ord(), prev.Ord())
	}
}

func TestGregorianDaySuccPredCarry(t *testing.T) {
	d, _ := NewGregorianDay(2023, 12, 31)
	next := d.Succ()
	if next.Year().Ord() != 2024 || next.Month().Ord() != 1 || next.Ord() != 1 {
		t.Errorf("2023-12-31.Succ() = %d-%d-%d, want 2024-1-1", next.Year().Ord(), next.Month().Ord(), next.Ord())
	}
	prev := next.Pred()
	if prev.Year().Ord() != 2023 || prev.Month().Ord() != 12 || prev.Ord() != 31 {
		t.Errorf("2024-1-1.Pred() = %d-%d-%d, want 2023-12-31", prev.Year().Ord(), prev.Month().Ord(), prev.Ord())
	}
}
