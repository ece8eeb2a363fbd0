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

package aspherical

import (
	"math"
	"testing"

	"github.com/transientmodel/kilonova"
)

// The blue and red areas always partition the projected disk.
func TestAreaPartition(t *testing.T) {
	const tolerance = 1e-12

	for _, cosTheta := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		for _, cosOpen := range []float64{0.2, 0.5, 0.8, 0.95} {
			o := Evaluate(Inputs{CosTheta: cosTheta, CosThetaOpen: cosOpen})
			if math.Abs(o.AreaBlue+o.AreaRed-math.Pi) > tolerance {
				t.Errorf("cosTheta=%g cosOpen=%g: blue+red=%g, want π",
					cosTheta, cosOpen, o.AreaBlue+o.AreaRed)
			}
			if o.AreaBlue < 0 || o.AreaBlue > math.Pi+tolerance {
				t.Errorf("cosTheta=%g cosOpen=%g: blue area %g outside [0, π]",
					cosTheta, cosOpen, o.AreaBlue)
			}
		}
	}
}

// Viewed pole-on with a narrow cone, only the near opening is
// visible and it projects to an ellipse.
func TestPoleOnView(t *testing.T) {
	const tolerance = 1e-12

	cosOpen := math.Cos(0.3)
	o := Evaluate(Inputs{CosTheta: 1, CosThetaOpen: cosOpen})
	want := math.Pi * math.Sin(0.3)
	if math.Abs(o.AreaBlue-want) > tolerance {
		t.Errorf("pole-on blue area: want %g, got %g", want, o.AreaBlue)
	}
}

// A 90° opening angle removes the red region entirely.
func TestFullOpening(t *testing.T) {
	const tolerance = 1e-10

	o := Evaluate(Inputs{CosTheta: 0.3, CosThetaOpen: 0})
	if math.Abs(o.AreaBlue-math.Pi) > tolerance {
		t.Errorf("blue area: want π, got %g", o.AreaBlue)
	}
	if math.Abs(o.AreaRed) > tolerance {
		t.Errorf("red area: want 0, got %g", o.AreaRed)
	}
}

// At the reference viewing angle the areas equal their reference
// values.
func TestReferenceAngle(t *testing.T) {
	o := Evaluate(Inputs{CosTheta: refCosTheta, CosThetaOpen: 0.8})
	if o.AreaBlue != o.AreaBlueRef {
		t.Errorf("blue area %g != reference %g", o.AreaBlue, o.AreaBlueRef)
	}
	if o.AreaRed != o.AreaRedRef {
		t.Errorf("red area %g != reference %g", o.AreaRed, o.AreaRedRef)
	}
}

func TestModuleEval(t *testing.T) {
	in := Inputs{CosTheta: 0.7, CosThetaOpen: 0.8}
	p := kilonova.NewParams()
	p.Scalars["cos_theta"] = in.CosTheta
	p.Scalars["cos_theta_open"] = in.CosThetaOpen

	out, err := (Module{}).Eval(p)
	if err != nil {
		t.Fatal(err)
	}
	want := Evaluate(in)
	if v := out.Scalars["area_blue"]; v != want.AreaBlue {
		t.Errorf("area_blue: want %g, got %g", want.AreaBlue, v)
	}
	if v := out.Scalars["area_red_ref"]; v != want.AreaRedRef {
		t.Errorf("area_red_ref: want %g, got %g", want.AreaRedRef, v)
	}

	if _, err := (Module{Prefix: "view"}).Eval(p); err == nil {
		t.Error("want an error for missing prefixed parameters, got nil")
	}
}
