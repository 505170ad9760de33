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

import (
	"math"

	"github.com/soniakeys/meeus/base"
	"github.com/soniakeys/meeus/moonposition"
	"github.com/soniakeys/meeus/solar"
)

// meeusEphemeris is the default Ephemeris, backed by the low-precision
// series of Meeus ch. 25 (Sun) and the truncated ELP2000-82B series of
// Meeus ch. 47 (Moon). Both are self-contained and meet the locator's
// 0.01-degree precision requirement without an external data file.
type meeusEphemeris struct{}

// DefaultEphemeris is the Ephemeris used by the Chinese year builder and
// the example program. Callers needing a different backend (a full
// VSOP87/ELP implementation, say) can pass their own Ephemeris directly
// to Date.SolarTerm and Date.LunarPhase instead.
var DefaultEphemeris Ephemeris = meeusEphemeris{}

func (meeusEphemeris) SunEclipticLongitude(jd float64) float64 {
	t := base.J2000Century(jd)
	lambda := solar.ApparentLongitude(t)
	return mod(lambda.Rad()*180/math.Pi, 360)
}

func (meeusEphemeris) MoonEclipticLongitude(jd float64) float64 {
	lambda, _, _ := moonposition.Position(jd)
	return mod(lambda.Rad()*180/math.Pi, 360)
}
