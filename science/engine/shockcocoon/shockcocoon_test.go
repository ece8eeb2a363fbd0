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

package shockcocoon

import (
	"math"
	"testing"

	"github.com/transientmodel/kilonova"
)

func testInputs() Inputs {
	return Inputs{
		Times:          []float64{-1, 0, 1, 5, 10},
		TExplosion:     0,
		Kappa:          1,
		MEjecta:        0.01,
		VEjecta:        0.1 * kilonova.CKM,
		CosThetaCocoon: 0.99,
		S:              1,
		TShock:         100,
	}
}

func TestPreExplosionEpochs(t *testing.T) {
	in := testInputs()
	lum := Evaluate(in)

	if len(lum) != len(in.Times) {
		t.Fatalf("want %d luminosities, got %d", len(in.Times), len(lum))
	}
	if lum[0] != 0 {
		t.Errorf("pre-explosion luminosity: want exactly 0, got %g", lum[0])
	}
	// At the explosion epoch itself the power law diverges and is
	// replaced by 0.
	if lum[1] != 0 {
		t.Errorf("explosion-epoch luminosity: want 0, got %g", lum[1])
	}
	for i := 2; i < len(lum); i++ {
		if math.IsNaN(lum[i]) || math.IsInf(lum[i], 0) || lum[i] <= 0 {
			t.Errorf("t=%g: want finite positive luminosity, got %g",
				in.Times[i], lum[i])
		}
	}
	if !(lum[2] > lum[3] && lum[3] > lum[4]) {
		t.Errorf("want strictly decreasing decay, got %v", lum[2:])
	}
}

// For s > -2 the light curve decays monotonically after the
// diffusion time.
func TestMonotoneDecay(t *testing.T) {
	in := testInputs()
	in.Times = nil
	for ti := 1.0; ti <= 50; ti += 0.5 {
		in.Times = append(in.Times, ti)
	}
	lum := Evaluate(in)
	for i := 1; i < len(lum); i++ {
		if lum[i] >= lum[i-1] {
			t.Fatalf("t=%g: luminosity %g did not decrease from %g",
				in.Times[i], lum[i], lum[i-1])
		}
	}
}

// Setting cos_theta_cocoon = 1 turns shock heating off entirely.
func TestCocoonOff(t *testing.T) {
	in := testInputs()
	in.CosThetaCocoon = 1
	for i, l := range Evaluate(in) {
		if l != 0 {
			t.Errorf("t=%g: want 0 with no cocoon, got %g", in.Times[i], l)
		}
	}
}

// The peak normalization is linear in the breakout radius, so
// doubling tshock doubles every post-explosion luminosity.
func TestBreakoutRadiusScaling(t *testing.T) {
	const tolerance = 1e-12

	in := testInputs()
	base := Evaluate(in)
	in.TShock = 200
	scaled := Evaluate(in)
	for i := 2; i < len(base); i++ {
		if math.Abs(scaled[i]-2*base[i]) > tolerance*scaled[i] {
			t.Errorf("t=%g: want %g, got %g", in.Times[i], 2*base[i], scaled[i])
		}
	}
}

func TestModuleEval(t *testing.T) {
	in := testInputs()
	m := Module{Prefix: "cocoon"}

	p := kilonova.NewParams()
	p.Series["cocoon_dense_times"] = in.Times
	for name, v := range map[string]float64{
		"resttexplosion":   in.TExplosion,
		"kappa":            in.Kappa,
		"mejecta":          in.MEjecta,
		"vejecta":          in.VEjecta,
		"cos_theta_cocoon": in.CosThetaCocoon,
		"s":                in.S,
		"tshock":           in.TShock,
	} {
		p.Scalars[kilonova.Key("cocoon", name)] = v
	}

	out, err := m.Eval(p)
	if err != nil {
		t.Fatal(err)
	}
	lum, err := out.SeriesParam("cocoon_luminosities")
	if err != nil {
		t.Fatal(err)
	}
	want := Evaluate(in)
	for i := range want {
		if lum[i] != want[i] {
			t.Errorf("t=%g: want %g, got %g", in.Times[i], want[i], lum[i])
		}
	}
}

func TestModuleMissingTimes(t *testing.T) {
	p := kilonova.NewParams()
	if _, err := (Module{}).Eval(p); err == nil {
		t.Error("want an error for a missing dense_times series, got nil")
	}
}
