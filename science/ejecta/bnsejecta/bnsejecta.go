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

// Package bnsejecta generates ejecta masses, velocities and opacities
// from binary neutron star parameters.
//
// Tidal and shocked dynamical ejecta and disk wind ejecta follow the
// quasi-universal fits of Dietrich and Ujevic (2017) and Coughlin et
// al. (2019). Compositions come from Sekiguchi et al. (2016),
// Lippuner et al. (2017) and Metzger and Fernandez (2014), and grey
// opacities from Tanaka et al. (2019).
//
// The ignorance parameter Alpha models additional neutron-star-driven
// winds that increase the fraction of blue ejecta (Mdyn_blue /= alpha
// when the remnant avoids prompt collapse); setting Alpha = 1 turns
// surface winds off.
//
// The fits are evaluated as given, without domain validation: inputs
// outside their calibrated range (q ≤ 0, radius_ns ≤ 0, an opening
// angle narrower than the 0.01 rad quadrature step) propagate NaN or
// Inf into the outputs, and extreme electron fractions can produce a
// negative opacity. Callers are expected to constrain parameters
// upstream, e.g. with priors or with package bnsconstraint.
package bnsejecta

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/transientmodel/kilonova"
)

// Inputs holds the binary parameters of the merger.
type Inputs struct {
	// MChirp is the chirp mass of the binary [M☉].
	MChirp float64
	// Q is the mass ratio of the lighter to the heavier star,
	// 0 < q ≤ 1.
	Q float64
	// DiskFrac is the fraction of the remnant disk mass that is
	// ejected as a wind, in [0, 1].
	DiskFrac float64
	// MTOV is the maximum mass of a non-rotating neutron star [M☉].
	MTOV float64
	// RadiusNS is the neutron star radius [km].
	RadiusNS float64
	// Alpha ≥ 1 rescales the blue dynamical ejecta when the merger
	// avoids prompt collapse; 1 disables the rescaling.
	Alpha float64
	// CosThetaOpen is the cosine of the half-opening angle of the
	// lanthanide-poor polar region.
	CosThetaOpen float64
	// ErrMdyn and ErrMdisk are multiplicative systematic scatter
	// factors on the dynamical ejecta and disk masses; set both to
	// 1 for the fits as published.
	ErrMdyn, ErrMdisk float64
}

// Outputs holds the derived ejecta properties. Masses are in solar
// masses, velocities in km/s, opacity in cm2/g.
type Outputs struct {
	// Dynamical ejecta, split into a polar lanthanide-poor (blue)
	// and an equatorial lanthanide-rich (red) component.
	MejectaBlue, MejectaRed, MejectaDyn float64
	VejectaBlue, VejectaRed             float64

	// Disk wind ("purple") ejecta and its grey opacity.
	MejectaPurple, VejectaPurple, KappaPurple float64

	// Component masses recovered from the chirp mass, M1 ≥ M2.
	M1, M2 float64
	// RadiusNS is passed through for downstream consumers.
	RadiusNS float64
}

// Fitting coefficients.
const (
	// Dynamical ejecta mass, Dietrich and Ujevic (2017) eq. 7.
	dynA = -1.35695
	dynB = 6.11252
	dynC = -49.43355
	dynD = 16.1144
	dynN = -2.5484

	// Red (Ye < 0.25) mass fraction vs. M1/M2, fit to Sekiguchi et
	// al. (2016); consistent with Dietrich: mostly blue at
	// M1/M2 = 1, all red by M1/M2 = 1.2.
	redA = 14.8609
	redB = -28.6148
	redC = 13.9597

	// In-plane dynamical ejecta velocity, Dietrich and Ujevic
	// (2017) eq. 14.
	vpA = -0.219479
	vpB = 0.444836
	vpC = -2.67385

	// Polar dynamical ejecta velocity, Dietrich and Ujevic (2017)
	// eq. 15.
	vzA = -0.315585
	vzB = 0.63808
	vzC = -1.00757

	// Disk mass vs. Mtot/Mthr, Coughlin et al. (2019) eq. 6.
	diskA = -31.335
	diskB = -0.9760
	diskC = 1.0474
	diskD = 0.05957

	// Grey opacity vs. electron fraction for Ye ≥ 0.25, Tanaka et
	// al. (2019).
	kappaA = 2112.0
	kappaB = -2238.9
	kappaC = 742.35
	kappaD = -73.14

	// Disk wind velocity endpoints, Metzger and Fernandez (2014).
	vdiskMax = 0.15
	vdiskMin = 0.03

	// Quadrature step for angular averages [rad].
	dtheta = 0.01
)

// Evaluate derives the ejecta properties for one set of binary
// parameters.
func Evaluate(in Inputs) Outputs {
	// Component masses from the chirp mass and mass ratio.
	m1 := in.MChirp * math.Pow(in.Q, -0.6) * math.Pow(in.Q+1, 0.2)
	m2 := m1 * in.Q
	mTotal := m1 + m2

	thetaOpen := math.Acos(in.CosThetaOpen)

	// Compactness GM/(Rc²) of each star.
	c1 := kilonova.GCGS * m1 * kilonova.MSunCGS / (in.RadiusNS * kilonova.KMCGS * kilonova.CCGS * kilonova.CCGS)
	c2 := kilonova.GCGS * m2 * kilonova.MSunCGS / (in.RadiusNS * kilonova.KMCGS * kilonova.CCGS * kilonova.CCGS)

	// Baryonic masses, Gao et al. (2019).
	mb1 := m1 + 0.08*m1*m1
	mb2 := m2 + 0.08*m2*m2

	mejDyn := 1e-3 * (dynA*(math.Cbrt(m2/m1)*(1-2*c1)/c1*mb1+
		math.Cbrt(m1/m2)*(1-2*c2)/c2*mb2) +
		dynB*(math.Pow(m2/m1, dynN)*mb1+math.Pow(m1/m2, dynN)*mb2) +
		dynC*(mb1-m1+mb2-m2) + dynD)
	mejDyn *= in.ErrMdyn
	if mejDyn < 0 {
		mejDyn = 0
	}

	// Fraction of dynamical ejecta with Ye < 0.25. The shocked
	// (blue) component decreases with M1/M2 (Bauswein et al. 2013).
	// Capped above at 1; there is intentionally no lower cap.
	r := m1 / m2
	fRed := redA*r*r + redB*r + redC
	if fRed > 1 {
		fRed = 1
	}

	vdynp := vpA*((m1/m2)*(1+vpC*c1)+(m2/m1)*(1+vpC*c2)) + vpB
	vdynz := vzA*((m1/m2)*(1+vzC*c1)+(m2/m1)*(1+vzC*c2)) + vzB

	// Average the speed over solid angle inside and outside the
	// opening angle.
	vejBlue := angularAverage(vdynp, vdynz, 0, thetaOpen)
	vejRed := angularAverage(vdynp, vdynz, thetaOpen, math.Pi/2)

	mejRed := mejDyn * fRed
	mejBlue := mejDyn * (1 - fRed)
	vejBlue *= kilonova.CKM
	vejRed *= kilonova.CKM

	// Threshold mass for prompt collapse to a black hole, Bauswein
	// et al. (2013).
	mThr := (2.38 - 3.606*in.MTOV/in.RadiusNS) * in.MTOV

	if mTotal < mThr {
		mejBlue /= in.Alpha
	}

	// Disk mass, floored at 10^-3 M☉ where the tanh saturates.
	logMdisk := diskA * (1 + diskB*math.Tanh((diskC-mTotal/mThr)/diskD))
	if logMdisk < -3 {
		logMdisk = -3
	}
	mDisk := math.Pow(10, logMdisk) * in.ErrMdisk
	mejPurple := mDisk * in.DiskFrac

	ye, vdisk := diskRegime(mTotal, in.MTOV, mThr)
	kappaPurple := ((kappaA*ye+kappaB)*ye+kappaC)*ye + kappaD

	return Outputs{
		MejectaBlue:   mejBlue,
		MejectaRed:    mejRed,
		MejectaPurple: mejPurple,
		MejectaDyn:    mejDyn,
		VejectaBlue:   vejBlue,
		VejectaRed:    vejRed,
		VejectaPurple: vdisk * kilonova.CKM,
		KappaPurple:   kappaPurple,
		M1:            m1,
		M2:            m2,
		RadiusNS:      in.RadiusNS,
	}
}

// angularAverage returns the solid-angle weighted mean of the
// dynamical ejecta speed over polar angles in [lo, hi), sampled every
// dtheta. The average of an interval holding fewer than two samples
// is NaN.
func angularAverage(vdynp, vdynz, lo, hi float64) float64 {
	var theta, num, den []float64
	for i := 0; ; i++ {
		t := lo + float64(i)*dtheta
		if t >= hi {
			break
		}
		v := math.Hypot(vdynz*math.Cos(t), vdynp*math.Sin(t))
		a := 2 * math.Pi * math.Sin(t)
		theta = append(theta, t)
		num = append(num, v*a)
		den = append(den, a)
	}
	if len(theta) < 2 {
		return math.NaN()
	}
	return integrate.Trapezoidal(theta, num) / integrate.Trapezoidal(theta, den)
}

// diskRegime returns the mass-averaged electron fraction and wind
// velocity of the disk ejecta as a function of the remnant lifetime,
// which is set by the total mass relative to the stability thresholds
// (Lippuner et al. 2017; lifetime vs. mass from Metzger 2020, table
// 3). Branches are checked in ascending mass order and the Ye and
// vdisk interpolants are continuous across the boundaries.
func diskRegime(mTotal, mTOV, mThr float64) (ye, vdisk float64) {
	vSlope := (vdiskMin - vdiskMax) / (mThr - mTOV)
	switch {
	case mTotal < mTOV:
		// Stable neutron star.
		return 0.38, vdiskMax
	case mTotal < 1.2*mTOV:
		// Long-lived (>> 100 ms) supramassive remnant.
		ye = 0.38 + (0.34-0.38)*(mTotal-mTOV)/(0.2*mTOV)
		return ye, vdiskMax + vSlope*(mTotal-mTOV)
	case mTotal < mThr:
		// Short-lived hypermassive remnant.
		ye = 0.34 + (0.25-0.34)*(mTotal-1.2*mTOV)/(mThr-1.2*mTOV)
		return ye, vdiskMax + vSlope*(mTotal-mTOV)
	default:
		// Prompt collapse to a black hole; the disk is red.
		return 0.25, vdiskMin
	}
}
