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

import "fmt"

// Weekday
var weekdayEnglish = [numWeekdays]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayAbbrev = [numWeekdays]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

var weekdayChineseLong = [numWeekdays]string{
	"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日",
}

var weekdayChineseShort = [numWeekdays]string{
	"周一", "周二", "周三", "周四", "周五", "周六", "周日",
}

func (w Weekday) String() string {
	return weekdayEnglish[w]
}

// Format lets Weekday render in its four presentations: English
// ("%v"), three-letter abbreviation ("%-v"), Chinese long form ("%#v"),
// and Chinese short form ("%#-v"/"%-#v").
func (w Weekday) Format(f fmt.State, verb rune) {
	switch {
	case f.Flag('#') && f.Flag('-'):
		fmt.Fprint(f, weekdayChineseShort[w])
	case f.Flag('#'):
		fmt.Fprint(f, weekdayChineseLong[w])
	case f.Flag('-'):
		fmt.Fprint(f, weekdayAbbrev[w])
	default:
		fmt.Fprint(f, weekdayEnglish[w])
	}
}

// Gregorian calendar
func (y GregorianYear) String() string {
	return fmt.Sprintf("%04d", y.year)
}

// Format renders y as "YYYY", or "YYYY年" in the alternate form.
func (y GregorianYear) Format(f fmt.State, verb rune) {
	if f.Flag('#') {
		fmt.Fprintf(f, "%04d年", y.year)
		return
	}
	fmt.Fprintf(f, "%04d", y.year)
}

func (m GregorianMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.year.year, m.Ord())
}

// Format renders m as "YYYY-MM", or "YYYY年MM月" in the alternate form.
func (m GregorianMonth) Format(f fmt.State, verb rune) {
	if f.Flag('#') {
		fmt.Fprintf(f, "%04d年%02d月", m.year.year, m.Ord())
		return
	}
	fmt.Fprintf(f, "%04d-%02d", m.year.year, m.Ord())
}

func (d GregorianDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.month.year.year, d.month.Ord(), d.day)
}

// Format renders d as "YYYY-MM-DD", or "YYYY年MM月DD日" in the alternate
// form.
func (d GregorianDay) Format(f fmt.State, verb rune) {
	if f.Flag('#') {
		fmt.Fprintf(f, "%04d年%02d月%02d日", d.month.year.year, d.month.Ord(), d.day)
		return
	}
	fmt.Fprintf(f, "%04d-%02d-%02d", d.month.year.year, d.month.Ord(), d.day)
}

// Astronomy: solar terms and lunar phases
func (t SolarTerm) String() string {
	return t.Chinese()
}

func (p LunarPhase) String() string {
	return p.Emoji()
}

// Chinese calendar
var leapNames = [2]string{"", "闰"}

var monthNames = [12]string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

var dayNames = [30]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

func (y ChineseYear) String() string {
	return fmt.Sprintf("%s年", y.StemBranch())
}

func (m ChineseMonth) String() string {
	leap := 0
	if m.IsLeap() {
		leap = 1
	}
	return fmt.Sprintf("%s%s%s", m.year, leapNames[leap], monthNames[m.OrdWithoutLeap()-1])
}

func (d ChineseDay) String() string {
	return fmt.Sprintf("%s%s", d.month, dayNames[d.day-1])
}

// Stem, Branch, StemBranch
func (s Stem) String() string {
	return s.Chinese()
}

func (b Branch) String() string {
	return b.Chinese()
}

func (sb StemBranch) String() string {
	return fmt.Sprintf("%s%s", sb.stem, sb.branch)
}
