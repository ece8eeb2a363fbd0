/*
Copyright © 2020 the Kilonova authors.
This file is part of Kilonova.

Kilonova is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Kilonova is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Kilonova.  If not, see <http://www.gnu.org/licenses/>.
*/

package kilonova

import "math"

// Physical constants in CGS units, shared by all science packages.
const (
	// CCGS is the speed of light [cm/s].
	CCGS = 2.99792458e10
	// GCGS is the gravitational constant [cm3/(g s2)].
	GCGS = 6.67430e-8
	// MSunCGS is the solar mass [g].
	MSunCGS = 1.98892e33
	// KMCGS is one kilometer [cm].
	KMCGS = 1.0e5
	// DayCGS is one day [s].
	DayCGS = 86400.0
	// FOE is 10^51 erg, the canonical supernova energy scale.
	FOE = 1.0e51

	// FourPi is the solid angle of the full sphere [sr].
	FourPi = 4 * math.Pi

	// CKM is the speed of light [km/s]. Ejecta velocities cross
	// module boundaries in these units.
	CKM = CCGS / KMCGS
)
