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

// beijingTZ is the fixed timezone offset, in hours, that the Chinese
// calendar is defined against.
const beijingTZ = 8.0

// getWinterSolstice returns the first day on or after Gregorian
// December 21 of the given year whose solar term is the Winter
// Solstice.
func getWinterSolstice(year int, tz float64) Date {
	gd, _ := NewGregorianDay(year, 12, 21)
	d := gd.AsDate()
	for {
		st, ok := d.SolarTerm(DefaultEphemeris, tz)
		if ok && st == WinterSolstice {
			return d
		}
		d = d.Succ()
	}
}

// getPrevNewMoon walks backward from date until it finds a new moon.
func getPrevNewMoon(date Date, tz float64) Date {
	d := date
	for d.LunarPhase(DefaultEphemeris, tz) != NewMoon {
		d = d.Pred()
	}
	return d
}

// calcChineseYearPeriodData sweeps one winter-solstice-to-winter-solstice
// period, starting at the new moon before year-1's solstice and running
// through the day of year's solstice, emitting one (length-in-days)
// entry per lunar month and noting whether any entry has no mid-term
// (the leap-month candidate). Returns the period's starting date, its
// month lengths, and the 0-based index of the no-mid-term month if the
// period has 13 months. Panics if a month is not 29 or 30 days long, or
// if a 13-month period has no month without a mid-term.
func calcChineseYearPeriodData(year int) (start Date, lengths []int, leapIndex int, hasLeap bool) {
	lastWS := getWinterSolstice(year-1, beijingTZ)
	nextWS := getWinterSolstice(year, beijingTZ)
	nmBeforeLastWS := getPrevNewMoon(lastWS, beijingTZ)

	type monthEntry struct {
		days   int
		hasMid bool
	}
	var entries []monthEntry

	d := nmBeforeLastWS
	var lastNM Date
	haveLastNM := false
	hasMT := false
	end := nextWS.Succ()
	for !d.Equal(end) {
		lp := d.LunarPhase(DefaultEphemeris, beijingTZ)
		st, hasST := d.SolarTerm(DefaultEphemeris, beijingTZ)
		if lp == NewMoon || hasST {
			if lp == NewMoon {
				if haveLastNM {
					entries = append(entries, monthEntry{days: int(d.Sub(lastNM)), hasMid: hasMT})
				}
				lastNM = d
				haveLastNM = true
				hasMT = false
			}
			if hasST && st.IsMidTerm() {
				hasMT = true
			}
		}
		d = d.Succ()
	}

	isLeapPeriod := len(entries) > 12
	leapIndex = -1
	for i, e := range entries {
		if isLeapPeriod && leapIndex < 0 && !e.hasMid {
			leapIndex = i
			break
		}
	}
	if isLeapPeriod && leapIndex < 0 {
		panic(fmt.Errorf("omnical: period %d has %d lunar months but none without a mid-term", year, len(entries)))
	}

	lengths = make([]int, len(entries))
	for i, e := range entries {
		if e.days != 29 && e.days != 30 {
			panic(fmt.Errorf("omnical: lunar month %d of period %d has %d days", i, year, e.days))
		}
		lengths[i] = e.days
	}
	if leapIndex >= 0 {
		return nmBeforeLastWS, lengths, leapIndex, true
	}
	return nmBeforeLastWS, lengths, 0, false
}

// calcChineseYearData stitches the periods of year and year+1 into the
// 12- or 13-month structure of the civil Chinese year, per the
// no-mid-term leap rule.
func calcChineseYearData(year int) (firstDayJDN int64, lengths [13]int, leapMonth int) {
	fd1, data1, lm1, hasLm1 := calcChineseYearPeriodData(year)
	_, data2, lm2, hasLm2 := calcChineseYearPeriodData(year + 1)

	off1 := 2
	nlm1, hasNlm1 := 0, false
	if hasLm1 {
		if lm1 <= 2 {
			off1 = 3
		} else {
			nlm1, hasNlm1 = lm1-2, true
		}
	}

	off2 := 2
	nlm2, hasNlm2 := 0, false
	if hasLm2 {
		if lm2 <= 2 {
			off2 = 3
			nlm2, hasNlm2 = lm2+10, true
		}
	}

	data := make([]int, 0, 13)
	data = append(data, data1[off1:]...)
	data = append(data, data2[:off2]...)
	if len(data) == 12 {
		data = append(data, 0)
	}
	copy(lengths[:], data)

	leapMonth = 13
	switch {
	case hasNlm1:
		leapMonth = nlm1
	case hasNlm2:
		leapMonth = nlm2
	}

	fd := fd1
	for _, n := range data1[:off1] {
		fd = fd.Add(int64(n))
	}
	firstDayJDN = fd.JDN()
	return
}

// ChineseYear is the astronomically-derived Chinese lunisolar civil
// year, computed once and plain enough to copy freely.
type ChineseYear struct {
	year        int
	firstDayJDN int64
	lengths     [13]int
	leapMonth   int
}

// NewChineseYear runs the builder for the given civil year.
func NewChineseYear(year int) ChineseYear {
	fd, lengths, leapMonth := calcChineseYearData(year)
	return ChineseYear{year: year, firstDayJDN: fd, lengths: lengths, leapMonth: leapMonth}
}

// Ord returns the year's civil ordinal.
func (y ChineseYear) Ord() int {
	return y.year
}

// FirstDayJDN returns the Julian Day Number of the year's first day.
func (y ChineseYear) FirstDayJDN() int64 {
	return y.firstDayJDN
}

// MonthLengths returns the year's 13-entry month-length table (unused
// trailing slots are 0).
func (y ChineseYear) MonthLengths() [13]int {
	return y.lengths
}

// LeapMonthIndex returns the 0-based index of the intercalary month, or
// 13 if the year has none.
func (y ChineseYear) LeapMonthIndex() int {
	return y.leapMonth
}

// IsLeap reports whether y has an intercalary month.
func (y ChineseYear) IsLeap() bool {
	return y.leapMonth < 13
}

// NumMonths returns 13 in a leap year, else 12.
func (y ChineseYear) NumMonths() int {
	if y.IsLeap() {
		return 13
	}
	return 12
}

// NumDays returns the total number of days in the year.
func (y ChineseYear) NumDays() int {
	total := 0
	for i := 0; i < y.NumMonths(); i++ {
		total += y.lengths[i]
	}
	return total
}

// Month returns the ord-th month of y (1-based), or false if ord is out
// of range.
func (y ChineseYear) Month(ord int) (ChineseMonth, bool) {
	if ord < 1 || ord > y.NumMonths() {
		return ChineseMonth{}, false
	}
	return ChineseMonth{year: y, index: ord - 1}, true
}

// Succ returns the following civil year.
func (y ChineseYear) Succ() ChineseYear {
	return NewChineseYear(y.year + 1)
}

// Pred returns the preceding civil year.
func (y ChineseYear) Pred() ChineseYear {
	return NewChineseYear(y.year - 1)
}

// Stem returns the year's Heavenly Stem.
func (y ChineseYear) Stem() Stem {
	return StemFromYear(y.year)
}

// Branch returns the year's Earthly Branch.
func (y ChineseYear) Branch() Branch {
	return BranchFromYear(y.year)
}

// StemBranch returns the year's combined stem-branch.
func (y ChineseYear) StemBranch() StemBranch {
	return StemBranchFromYear(y.year)
}

// ChineseMonth is a month within a ChineseYear.
type ChineseMonth struct {
	year  ChineseYear
	index int // 0-based index into year.lengths
}

// Year returns the month's year.
func (m ChineseMonth) Year() ChineseYear {
	return m.year
}

// Ord returns the month's 1-based index into the year's month table.
// Use OrdWithoutLeap for the traditional "2nd month"/"leap 2nd month"
// naming.
func (m ChineseMonth) Ord() int {
	return m.index + 1
}

// IsLeap reports whether m is the year's intercalary month.
func (m ChineseMonth) IsLeap() bool {
	return m.year.leapMonth == m.index
}

// OrdWithoutLeap returns the traditional 1-based month number, shared by
// an intercalary month and the ordinary month it follows.
func (m ChineseMonth) OrdWithoutLeap() int {
	if !m.year.IsLeap() || m.index < m.year.leapMonth {
		return m.index + 1
	}
	return m.index
}

// NumDays returns the number of days in m.
func (m ChineseMonth) NumDays() int {
	return m.year.lengths[m.index]
}

// Day returns the ord-th day of m (1-based), or false if ord is out of
// range.
func (m ChineseMonth) Day(ord int) (ChineseDay, bool) {
	if ord < 1 || ord > m.NumDays() {
		return ChineseDay{}, false
	}
	return ChineseDay{month: m, day: ord}, true
}

// Succ returns the following month, carrying into the next year as
// needed.
func (m ChineseMonth) Succ() ChineseMonth {
	if m.index < m.year.NumMonths()-1 {
		return ChineseMonth{year: m.year, index: m.index + 1}
	}
	next, _ := m.year.Succ().Month(1)
	return next
}

// Pred returns the preceding month, carrying into the previous year as
// needed.
func (m ChineseMonth) Pred() ChineseMonth {
	if m.index > 0 {
		return ChineseMonth{year: m.year, index: m.index - 1}
	}
	prevYear := m.year.Pred()
	prev, _ := prevYear.Month(prevYear.NumMonths())
	return prev
}

// ChineseMonthFromYM returns the ordinary (non-leap) month named by its
// 1-based traditional number within the given civil year.
func ChineseMonthFromYM(year, month int) (ChineseMonth, bool) {
	return ChineseMonthFromYLM(year, false, month)
}

// ChineseMonthFromYLM returns the month named by its 1-based traditional
// number within the given civil year, leap if leap is true, or false if
// no such month exists (e.g. a leap request in a year with no matching
// leap month).
func ChineseMonthFromYLM(year int, leap bool, month int) (ChineseMonth, bool) {
	y := NewChineseYear(year)
	lm := y.leapMonth
	if leap && month != lm {
		return ChineseMonth{}, false
	}
	if month < lm || (!leap && month == lm) {
		return y.Month(month)
	}
	return y.Month(month + 1)
}

// ChineseDay is a day within a ChineseMonth.
type ChineseDay struct {
	month ChineseMonth
	day   int // 1-based
}

// ChineseDayFromYMD returns the day named by its ordinary (non-leap)
// year/month/day numbers.
func ChineseDayFromYMD(year, month, day int) (ChineseDay, bool) {
	m, ok := ChineseMonthFromYM(year, month)
	if !ok {
		return ChineseDay{}, false
	}
	return m.Day(day)
}

// ChineseDayFromYLMD returns the day named by its year/leap/month/day
// numbers.
func ChineseDayFromYLMD(year int, leap bool, month, day int) (ChineseDay, bool) {
	m, ok := ChineseMonthFromYLM(year, leap, month)
	if !ok {
		return ChineseDay{}, false
	}
	return m.Day(day)
}

// ChineseDayFromDate converts an absolute Date to its ChineseDay, at the
// fixed Beijing timezone.
func ChineseDayFromDate(date Date) ChineseDay {
	yg := GregorianDayFromDate(date).Year().Ord()
	cy := NewChineseYear(yg)
	if date.JDN() < cy.firstDayJDN {
		cy = NewChineseYear(yg - 1)
	}
	offset := date.JDN() - cy.firstDayJDN
	index := 0
	for offset >= int64(cy.lengths[index]) {
		offset -= int64(cy.lengths[index])
		index++
	}
	m := ChineseMonth{year: cy, index: index}
	day, _ := m.Day(int(offset) + 1)
	return day
}

// Ord returns the day's 1-based ordinal within its month.
func (d ChineseDay) Ord() int {
	return d.day
}

// Year returns the day's year.
func (d ChineseDay) Year() ChineseYear {
	return d.month.year
}

// Month returns the day's month.
func (d ChineseDay) Month() ChineseMonth {
	return d.month
}

// Succ returns the following day, carrying into the next month as
// needed.
func (d ChineseDay) Succ() ChineseDay {
	if d.day < d.month.NumDays() {
		return ChineseDay{month: d.month, day: d.day + 1}
	}
	next := d.month.Succ()
	first, _ := next.Day(1)
	return first
}

// Pred returns the preceding day, carrying into the previous month as
// needed.
func (d ChineseDay) Pred() ChineseDay {
	if d.day > 1 {
		return ChineseDay{month: d.month, day: d.day - 1}
	}
	prev := d.month.Pred()
	last, _ := prev.Day(prev.NumDays())
	return last
}

// Weekday returns the day of the week on which d falls.
func (d ChineseDay) Weekday() Weekday {
	return d.AsDate().Weekday()
}

// AsDate converts d to its absolute Date.
func (d ChineseDay) AsDate() Date {
	var sum int64
	for i := 0; i < d.month.index; i++ {
		sum += int64(d.month.year.lengths[i])
	}
	return FromJDN(d.month.year.firstDayJDN + sum + int64(d.day-1))
}

// StemBranch returns the day's sexagenary cycle name.
func (d ChineseDay) StemBranch() StemBranch {
	repr := int(modi(d.AsDate().JDN()+49, 60))
	return StemBranchFromRepr(repr)
}

// Stem is one of the ten Heavenly Stems (天干).
type Stem int

const (
	Jia Stem = iota
	Yi
	Bing
	Ding
	StemWu
	Ji
	Geng
	Xin
	Ren
	Gui
)

// numStems is the size of the Stem closed set.
const numStems = 10

var stemChinese = [numStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Ord returns the 1-based ordinal of s.
func (s Stem) Ord() int {
	return int(s) + 1
}

// StemFromOrd returns the Stem with the given 1-based ordinal, or false
// if ord is out of range.
func StemFromOrd(ord int) (Stem, bool) {
	if ord < 1 || ord > numStems {
		return 0, false
	}
	return Stem(ord - 1), true
}

// StemFromYear returns the Stem of a Chinese civil year.
func StemFromYear(year int) Stem {
	return Stem(modi(int64(year-4), numStems))
}

// Chinese returns the stem's Chinese character.
func (s Stem) Chinese() string {
	return stemChinese[s]
}

// Branch is one of the twelve Earthly Branches (地支).
type Branch int

const (
	Zi Branch = iota
	Chou
	BranchYin
	Mao
	Chen
	Si
	BranchWu
	Wei
	Shen
	You
	Xu
	Hai
)

// numBranches is the size of the Branch closed set.
const numBranches = 12

var branchChinese = [numBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Ord returns the 1-based ordinal of b.
func (b Branch) Ord() int {
	return int(b) + 1
}

// BranchFromOrd returns the Branch with the given 1-based ordinal, or
// false if ord is out of range.
func BranchFromOrd(ord int) (Branch, bool) {
	if ord < 1 || ord > numBranches {
		return 0, false
	}
	return Branch(ord - 1), true
}

// BranchFromYear returns the Branch of a Chinese civil year.
func BranchFromYear(year int) Branch {
	return Branch(modi(int64(year-4), numBranches))
}

// Chinese returns the branch's Chinese character.
func (b Branch) Chinese() string {
	return branchChinese[b]
}

// StemBranch pairs a Stem and a Branch; only 60 of the 120 possible
// pairs are valid, those where stem and branch ordinals share parity.
type StemBranch struct {
	stem   Stem
	branch Branch
}

// NewStemBranch pairs stem and branch without checking parity; prefer
// StemBranchFromStemBranch when the pairing needs validating.
func NewStemBranch(stem Stem, branch Branch) StemBranch {
	return StemBranch{stem: stem, branch: branch}
}

// StemBranchFromRepr builds the StemBranch whose stem and branch are
// repr's residues mod 10 and mod 12, respectively; repr must be
// non-negative.
func StemBranchFromRepr(repr int) StemBranch {
	return StemBranch{stem: Stem(repr % numStems), branch: Branch(repr % numBranches)}
}

// Stem returns the pair's stem.
func (sb StemBranch) Stem() Stem {
	return sb.stem
}

// Branch returns the pair's branch.
func (sb StemBranch) Branch() Branch {
	return sb.branch
}

// Ord returns the pair's 1-based ordinal in the 60-cycle, with
// (Jia, Zi) = 1.
func (sb StemBranch) Ord() int {
	m := int64(sb.stem)
	n := int64(sb.branch)
	return int(modi(m*6-n*5, 60)) + 1
}

// StemBranchFromOrd returns the StemBranch with the given 1-based
// ordinal in the 60-cycle, or false if ord is out of range.
func StemBranchFromOrd(ord int) (StemBranch, bool) {
	if ord < 1 || ord > 60 {
		return StemBranch{}, false
	}
	return StemBranchFromRepr(ord - 1), true
}

// StemBranchFromStemBranch pairs stem and branch, or returns false if
// they do not share ordinal parity (an invalid 60-cycle pairing).
func StemBranchFromStemBranch(stem Stem, branch Branch) (StemBranch, bool) {
	if stem.Ord()%2 != branch.Ord()%2 {
		return StemBranch{}, false
	}
	return StemBranch{stem: stem, branch: branch}, true
}

// StemBranchFromYear returns the combined stem-branch of a Chinese civil
// year.
func StemBranchFromYear(year int) StemBranch {
	return NewStemBranch(StemFromYear(year), BranchFromYear(year))
}
