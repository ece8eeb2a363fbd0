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

// Package shockcocoon computes cooling emission from a cocoon of
// ejecta shock-heated by a relativistic jet, following Piro and
// Kollmeier (2018).
//
// Shock heating can be turned off in a merger pipeline by setting
// cos_theta_cocoon = 1.
package shockcocoon

import (
	"math"

	"github.com/transientmodel/kilonova"
)

// diffConst combines the constants of the Arnett-type diffusion
// timescale, t_d² = κ M / (4π c v).
const diffConst = kilonova.MSunCGS / (kilonova.FourPi * kilonova.CCGS * kilonova.KMCGS)

// Inputs holds the shocked-ejecta parameters and the epochs to
// evaluate.
type Inputs struct {
	// Times are the observation epochs [days]. They are assumed to
	// be sorted ascending.
	Times []float64
	// TExplosion is the explosion epoch [days], in the same frame
	// as Times.
	TExplosion float64
	// Kappa is the grey opacity of the shocked ejecta [cm2/g].
	Kappa float64
	// MEjecta is the shocked ejecta mass [M☉].
	MEjecta float64
	// VEjecta is the shocked ejecta velocity [km/s].
	VEjecta float64
	// CosThetaCocoon is the cosine of the cocoon opening angle,
	// between 1 and cos_theta_open for polar kilonova ejecta.
	CosThetaCocoon float64
	// S is the power law index of the shocked density profile.
	// The luminosity power law is undefined at s = -2.
	S float64
	// TShock is the shock breakout timescale [s]; the breakout
	// radius is c·TShock.
	TShock float64
}

// Evaluate returns the cocoon luminosity [erg/s] at each input epoch,
// index-aligned with in.Times. Epochs before the explosion, and any
// epoch whose power law evaluates to a non-finite number, yield 0.
func Evaluate(in Inputs) []float64 {
	// Radius where the material is shocked by the jet.
	r := kilonova.CCGS * in.TShock

	theta := math.Acos(in.CosThetaCocoon)

	// Diffusion timescale [days].
	tauDiff := math.Sqrt(diffConst*in.Kappa*in.MEjecta/in.VEjecta) / kilonova.DayCGS

	l0 := math.Cbrt(theta*theta/2) * in.MEjecta * kilonova.MSunCGS *
		in.VEjecta * kilonova.KMCGS * r / math.Pow(tauDiff*kilonova.DayCGS, 2)

	expon := -4 / (in.S + 2)

	luminosities := make([]float64, len(in.Times))
	for i, t := range in.Times {
		dt := math.Inf(1) // pre-explosion epochs decay to zero
		if t >= in.TExplosion {
			dt = t - in.TExplosion
		}
		l := l0 * math.Pow(dt/tauDiff, expon)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			l = 0
		}
		luminosities[i] = l
	}
	return luminosities
}

// Module adapts Evaluate to the kilonova.Module named-parameter
// boundary.
type Module struct {
	Prefix string
}

// Name fulfils the kilonova.Module interface.
func (m Module) Name() string { return "shockcocoon" }

// Requires lists the parameters the module reads; all are scalars
// except the dense_times series.
func (m Module) Requires() []string {
	names := []string{
		"dense_times", "resttexplosion", "kappa", "mejecta",
		"vejecta", "cos_theta_cocoon", "s", "tshock",
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = kilonova.Key(m.Prefix, n)
	}
	return out
}

// Provides lists the series the module writes.
func (m Module) Provides() []string {
	return []string{kilonova.Key(m.Prefix, "luminosities")}
}

// Eval unpacks the named shock parameters, evaluates the light curve,
// and packs the luminosity series.
func (m Module) Eval(p kilonova.Params) (kilonova.Params, error) {
	times, err := p.SeriesParam(kilonova.Key(m.Prefix, "dense_times"))
	if err != nil {
		return kilonova.Params{}, err
	}
	in := Inputs{Times: times}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"resttexplosion", &in.TExplosion},
		{"kappa", &in.Kappa},
		{"mejecta", &in.MEjecta},
		{"vejecta", &in.VEjecta},
		{"cos_theta_cocoon", &in.CosThetaCocoon},
		{"s", &in.S},
		{"tshock", &in.TShock},
	} {
		v, err := p.Scalar(kilonova.Key(m.Prefix, f.name))
		if err != nil {
			return kilonova.Params{}, err
		}
		*f.dst = v
	}

	out := kilonova.NewParams()
	out.Series[kilonova.Key(m.Prefix, "luminosities")] = Evaluate(in)
	return out, nil
}
