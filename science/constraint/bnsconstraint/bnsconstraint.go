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

// Package bnsconstraint scores the physical plausibility of binary
// neutron star parameters against the equation of state:
//
//  1. M1 ≤ Mtov
//  2. M2 ≥ 0.8 M☉
//  3. 9 km ≤ R1, R2 ≤ 16 km
//  4. the causality bound relating Mtov and radius
//
// Free sampling parameters are typically Mchirp and q, so a large q
// can push M1 above, or M2 below, what the equation of state allows.
// The score penalizes masses outside the range with soft quadratic
// penalties rather than hard cuts, and a realistic equation of state
// keeps the radius away from extreme values.
package bnsconstraint

import "github.com/transientmodel/kilonova"

// Inputs holds the stellar parameters to score.
type Inputs struct {
	// M1 and M2 are the heavier and lighter component masses [M☉].
	M1, M2 float64
	// MTOV is the maximum mass of a non-rotating neutron star [M☉].
	MTOV float64
	// R1 and R2 are the component radii [km].
	R1, R2 float64
}

// Evaluate returns a non-positive log-likelihood modifier: 0 when all
// constraints hold, and a penalty proportional to the squared
// violation otherwise, scaled so a 0.1 M☉ mass excess scores -100.
func Evaluate(in Inputs) float64 {
	score := 0.0

	if in.M1 > in.MTOV {
		score -= sq(100 * (in.M1 - in.MTOV))
	}
	if in.M2 < 0.8 {
		score -= sq(100 * (0.8 - in.M2))
	}
	for _, r := range [2]float64{in.R1, in.R2} {
		if r > 16 {
			score -= sq(20 * (r - 16))
		}
		if r < 9 {
			score -= sq(20 * (9 - r))
		}
	}

	// Causality: Mtov < c²R/(2.82 G) (Lattimer and Prakash).
	mCaus := in.R1 * kilonova.KMCGS * kilonova.CCGS * kilonova.CCGS /
		(2.82 * kilonova.GCGS * kilonova.MSunCGS)
	if in.MTOV > mCaus {
		score -= sq(100 * (in.MTOV - mCaus))
	}

	return score
}

func sq(x float64) float64 { return x * x }

// Module adapts Evaluate to the kilonova.Module named-parameter
// boundary. The radius parameters R1 and R2 both default to the
// radius_ns passthrough of the ejecta model when wired in a pipeline.
type Module struct {
	Prefix string
}

// Name fulfils the kilonova.Module interface.
func (m Module) Name() string { return "bnsconstraint" }

// Requires lists the scalar parameters the module reads.
func (m Module) Requires() []string {
	names := []string{"M1", "M2", "Mtov", "R1", "R2"}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = kilonova.Key(m.Prefix, n)
	}
	return out
}

// Provides lists the scalar parameters the module writes.
func (m Module) Provides() []string {
	return []string{kilonova.Key(m.Prefix, "score_modifier")}
}

// Eval unpacks the stellar parameters and packs the constraint score.
func (m Module) Eval(p kilonova.Params) (kilonova.Params, error) {
	var in Inputs
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"M1", &in.M1},
		{"M2", &in.M2},
		{"Mtov", &in.MTOV},
		{"R1", &in.R1},
		{"R2", &in.R2},
	} {
		v, err := p.Scalar(kilonova.Key(m.Prefix, f.name))
		if err != nil {
			return kilonova.Params{}, err
		}
		*f.dst = v
	}

	out := kilonova.NewParams()
	out.Scalars[kilonova.Key(m.Prefix, "score_modifier")] = Evaluate(in)
	return out, nil
}
