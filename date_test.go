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

func TestFromJDAnchors(t *testing.T) {
	tests := []struct {
		name string
		jd   float64
		jdn  int64
	}{
		{"J2000 epoch", 2451545.0, 2451545},
		{"JDN epoch", 0.0, 0},
		{"proleptic Gregorian epoch", 1721425.5, 1721426},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromJD(tt.jd).JDN(); got != tt.jdn {
				t.Errorf("FromJD(%v).JDN() = %v, want %v", tt.jd, got, tt.jdn)
			}
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := FromJDN(2451545)
	for _, k := range []int64{-400, -1, 0, 1, 365, 10000} {
		if got := d.Add(k).Add(-k); !got.Equal(d) {
			t.Errorf("d.Add(%d).Add(-%d) = %v, want %v", k, k, got, d)
		}
		if got := d.Add(k).Sub(d); got != k {
			t.Errorf("d.Add(%d).Sub(d) = %v, want %v", k, got, k)
		}
	}
	if !d.Succ().Pred().Equal(d) {
		t.Errorf("d.Succ().Pred() = %v, want %v", d.Succ().Pred(), d)
	}
	if !d.Pred().Succ().Equal(d) {
		t.Errorf("d.Pred().Succ() = %v, want %v", d.Pred().Succ(), d)
	}
}

func TestWeekdayPeriodicity(t *testing.T) {
	for _, jdn := range []int64{0, 1, 1721426, 2451545, 2299161} {
		d1 := FromJDN(jdn)
		d2 := FromJDN(jdn + 7)
		if d1.Weekday() != d2.Weekday() {
			t.Errorf("weekday(%d) = %v, weekday(%d) = %v, want equal", jdn, d1.Weekday(), jdn+7, d2.Weekday())
		}
	}
}

func TestWeekdayCalibration(t *testing.T) {
	if got := FromJDN(0).Weekday(); got != Monday {
		t.Errorf("FromJDN(0).Weekday() = %v, want Monday", got)
	}
}

func TestUnixEpochAnchor(t *testing.T) {
	d := FromUnixTimeWithTZ(0, 0)
	if got := d.JDN(); got != 2440588 {
		t.Errorf("FromUnixTimeWithTZ(0, 0).JDN() = %v, want 2440588", got)
	}
	if got := d.Weekday(); got != Thursday {
		t.Errorf("FromUnixTimeWithTZ(0, 0).Weekday() = %v, want Thursday", got)
	}
}

func TestWeekdaySuccPred(t *testing.T) {
	for w := Monday; w <= Sunday; w++ {
		if w.Succ().Pred() != w {
			t.Errorf("%v.Succ().Pred() = %v, want %v", w, w.Succ().Pred(), w)
		}
	}
	if Sunday.Succ() != Monday {
		t.Errorf("Sunday.Succ() = %v, want Monday", Sunday.Succ())
	}
	if Monday.Pred() != Sunday {
		t.Errorf("Monday.Pred() = %v, want Sunday", Monday.Pred())
	}
}

func TestWeekdayFromOrd(t *testing.T) {
	if _, ok := WeekdayFromOrd(-1); ok {
		t.Errorf("WeekdayFromOrd(-1) succeeded, want failure")
	}
	if _, ok := WeekdayFromOrd(7); ok {
		t.Errorf("WeekdayFromOrd(7) succeeded, want failure")
	}
	for ord := 0; ord < numWeekdays; ord++ {
		w, ok := WeekdayFromOrd(ord)
		if !ok || w.Ord() != ord {
			t.Errorf("WeekdayFromOrd(%d) = (%v, %v), want ord %d", ord, w, ok, ord)
		}
	}
}
