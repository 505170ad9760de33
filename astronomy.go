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

// Ephemeris gives the geocentric ecliptic longitude of the Sun and Moon,
// in degrees in [0, 360), for a real-valued Julian Date. Implementations
// must resolve longitudes to better than 0.01 degrees.
type Ephemeris interface {
	SunEclipticLongitude(jd float64) float64
	MoonEclipticLongitude(jd float64) float64
}

// SolarTerm is a closed set of the 24 annual Sun ecliptic-longitude
// waypoints, spaced 15 degrees apart and starting at the Winter
// Solstice (270 degrees).
type SolarTerm int

const (
	WinterSolstice SolarTerm = iota
	MinorCold
	MajorCold
	BeginningOfSpring
	RainWater
	AwakeningOfInsects
	SpringEquinox
	PureBrightness
	GrainRain
	BeginningOfSummer
	GrainBuds
	GrainInEar
	SummerSolstice
	MinorHeat
	MajorHeat
	BeginningOfAutumn
	EndOfHeat
	WhiteDew
	AutumnEquinox
	ColdDew
	FrostsDescent
	BeginningOfWinter
	MinorSnow
	MajorSnow
)

// numSolarTerms is the size of the SolarTerm closed set.
const numSolarTerms = 24

var solarTermChinese = [numSolarTerms]string{
	"冬至", "小寒", "大寒", "立春", "雨水", "惊蛰",
	"春分", "清明", "谷雨", "立夏", "小满", "芒种",
	"夏至", "小暑", "大暑", "立秋", "处暑", "白露",
	"秋分", "寒露", "霜降", "立冬", "小雪", "大雪",
}

// Ord returns the 0-based ordinal of t.
func (t SolarTerm) Ord() int {
	return int(t)
}

// SolarTermFromOrd returns the SolarTerm with the given 0-based ordinal,
// or false if ord is out of range.
func SolarTermFromOrd(ord int) (SolarTerm, bool) {
	if ord < 0 || ord >= numSolarTerms {
		return 0, false
	}
	return SolarTerm(ord), true
}

// IsMidTerm reports whether t is a mid-term (中气): the twelve
// even-indexed terms (solstices, equinoxes, and the terms between).
func (t SolarTerm) IsMidTerm() bool {
	return int(t)%2 == 0
}

// Succ returns the next solar term in the annual cycle.
func (t SolarTerm) Succ() SolarTerm {
	return SolarTerm(modi(int64(t)+1, numSolarTerms))
}

// Pred returns the previous solar term in the annual cycle.
func (t SolarTerm) Pred() SolarTerm {
	return SolarTerm(modi(int64(t)-1, numSolarTerms))
}

// Degrees returns the Sun ecliptic longitude, in degrees, at which t
// occurs.
func (t SolarTerm) Degrees() float64 {
	return float64(modi(int64(t)+18, numSolarTerms)) * 15.0
}

// Chinese returns the term's Chinese label.
func (t SolarTerm) Chinese() string {
	return solarTermChinese[t]
}

// SolarTermFromDegreeRange returns the solar term whose boundary
// longitude lies in [begin, end), given the Sun's ecliptic longitude at
// the start and end of a civil day. Callers must unwrap the 360-degree
// wraparound (subtract 360 from begin if end < begin) before calling.
func SolarTermFromDegreeRange(begin, end float64) (SolarTerm, bool) {
	beginOrd := int64(math.Ceil(begin / 15.0))
	endOrd := int64(math.Ceil(end / 15.0))
	if beginOrd < endOrd {
		return SolarTerm(modi(beginOrd-18, numSolarTerms)), true
	}
	return 0, false
}

// LunarPhase is a closed set of the 8 octants of Moon-Sun ecliptic
// longitude, spaced 45 degrees apart and starting at New Moon
// (conjunction).
type LunarPhase int

const (
	NewMoon LunarPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// numLunarPhases is the size of the LunarPhase closed set.
const numLunarPhases = 8

var lunarPhaseChinese = [numLunarPhases]string{
	"新月", "眉月", "上弦月", "上凸月", "满月", "下凸月", "下弦月", "残月",
}

var lunarPhaseEmoji = [numLunarPhases]string{
	"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘",
}

// Ord returns the 0-based ordinal of p.
func (p LunarPhase) Ord() int {
	return int(p)
}

// LunarPhaseFromOrd returns the LunarPhase with the given 0-based
// ordinal, or false if ord is out of range.
func LunarPhaseFromOrd(ord int) (LunarPhase, bool) {
	if ord < 0 || ord >= numLunarPhases {
		return 0, false
	}
	return LunarPhase(ord), true
}

// IsCardinal reports whether p is one of the four cardinal phases (New,
// First Quarter, Full, Last Quarter).
func (p LunarPhase) IsCardinal() bool {
	return int(p)%2 == 0
}

// Succ returns the next lunar phase in the cycle.
func (p LunarPhase) Succ() LunarPhase {
	return LunarPhase(modi(int64(p)+1, numLunarPhases))
}

// Pred returns the previous lunar phase in the cycle.
func (p LunarPhase) Pred() LunarPhase {
	return LunarPhase(modi(int64(p)-1, numLunarPhases))
}

// Degrees returns the Moon-Sun ecliptic longitude, in degrees, at which
// p occurs.
func (p LunarPhase) Degrees() float64 {
	return float64(p) * 45.0
}

// Chinese returns the phase's Chinese label.
func (p LunarPhase) Chinese() string {
	return lunarPhaseChinese[p]
}

// Emoji returns the phase's Unicode emoji.
func (p LunarPhase) Emoji() string {
	return lunarPhaseEmoji[p]
}

// LunarPhaseFromDegreeRange returns the lunar phase spanning [begin,
// end), given the Moon-Sun ecliptic longitude at the start and end of a
// civil day: the cardinal phase whose 90-degree multiple lies in the
// range, else the intermediate phase of the quadrant containing it.
// Unlike SolarTermFromDegreeRange, this is always defined.
func LunarPhaseFromDegreeRange(begin, end float64) LunarPhase {
	beginOrd := int64(math.Ceil(begin / 90.0))
	endOrd := int64(math.Ceil(end / 90.0))
	if beginOrd < endOrd {
		return LunarPhase(modi(beginOrd*2, numLunarPhases))
	}
	return LunarPhase(modi(beginOrd*2-1, numLunarPhases))
}

// SolarTerm returns the solar term that falls within the civil day d in
// timezone tz (hours), sampling the Sun's ecliptic longitude at the
// day's midnight boundaries via eph, or false if no term falls within
// the day.
func (d Date) SolarTerm(eph Ephemeris, tz float64) (SolarTerm, bool) {
	lambda0 := eph.SunEclipticLongitude(d.MidnightJD(tz))
	lambda1 := eph.SunEclipticLongitude(d.Succ().MidnightJD(tz))
	if lambda1 < lambda0 {
		lambda0 -= 360
	}
	return SolarTermFromDegreeRange(lambda0, lambda1)
}

// LunarPhase returns the lunar phase of the civil day d in timezone tz
// (hours), sampling the Moon-Sun ecliptic longitude at the day's
// midnight boundaries via eph. Always defined.
func (d Date) LunarPhase(eph Ephemeris, tz float64) LunarPhase {
	long0 := mod(eph.MoonEclipticLongitude(d.MidnightJD(tz))-eph.SunEclipticLongitude(d.MidnightJD(tz)), 360)
	long1 := mod(eph.MoonEclipticLongitude(d.Succ().MidnightJD(tz))-eph.SunEclipticLongitude(d.Succ().MidnightJD(tz)), 360)
	if long1 < long0 {
		long0 -= 360
	}
	return LunarPhaseFromDegreeRange(long0, long1)
}
