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

package main

import (
	"fmt"

	lc "github.com/hanwentao/omnical"
)

// convert from a Gregorian date to its Chinese lunisolar date, and report
// the astronomical events (solar term, lunar phase) falling on that day.
func main() {
	// 1. set Gregorian date
	gregorianDay, _ := lc.NewGregorianDay(2024, 2, 10)

	// 2. convert Gregorian date to the absolute (JDN) date
	date := gregorianDay.AsDate()

	// 3. convert the absolute date into the corresponding Chinese date
	chineseDay := lc.ChineseDayFromDate(date)

	fmt.Println("Gregorian:\t", gregorianDay)
	fmt.Println("Weekday:\t", date.Weekday())
	fmt.Printf("Weekday (%s):\t%#v\n", "Chinese", date.Weekday())
	fmt.Println("Chinese:\t", chineseDay)
	fmt.Println("Stem-Branch day:", chineseDay.StemBranch())

	if term, ok := date.SolarTerm(lc.DefaultEphemeris, 8.0); ok {
		fmt.Println("Solar term:\t", term)
	} else {
		fmt.Println("Solar term:\t none")
	}
	fmt.Println("Lunar phase:\t", date.LunarPhase(lc.DefaultEphemeris, 8.0))

	// 4. round-trip back through the Gregorian calendar
	fmt.Println("Round-trip:\t", lc.GregorianDayFromDate(chineseDay.AsDate()))
}
