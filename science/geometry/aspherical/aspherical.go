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

// Package aspherical computes the projected emitting areas of an
// opaque photosphere with lanthanide-poor conical openings at both
// poles, following Darbha and Kasen (2020). The areas scale the blue
// and red kilonova luminosities with viewing angle.
//
// Only valid for opening angles theta_open ≤ π/2.
package aspherical

import (
	"math"

	"github.com/transientmodel/kilonova"
)

// refCosTheta is the reference viewing angle cosine that the area
// ratios are normalized against.
const refCosTheta = 0.5

// Inputs holds the viewing geometry.
type Inputs struct {
	// CosTheta is the cosine of the viewing angle.
	CosTheta float64
	// CosThetaOpen is the cosine of the cone half-opening angle.
	CosThetaOpen float64
}

// Outputs holds projected areas on the unit sphere, so the full disk
// has area π.
type Outputs struct {
	// AreaBlue is the projected area of the polar cones and
	// AreaRed the remainder of the disk, at the input viewing
	// angle.
	AreaBlue, AreaRed float64
	// AreaBlueRef and AreaRedRef are the same areas at the
	// reference viewing angle, for normalizing light curves.
	AreaBlueRef, AreaRedRef float64
}

// Evaluate returns the projected blue and red areas for one viewing
// geometry.
func Evaluate(in Inputs) Outputs {
	// sin(theta_open); a cone rim seen edge-on projects to this
	// radius.
	ct := math.Sqrt(1 - in.CosThetaOpen*in.CosThetaOpen)

	blue := projectedCones(in.CosTheta, in.CosThetaOpen, ct)
	blueRef := projectedCones(refCosTheta, in.CosThetaOpen, ct)

	return Outputs{
		AreaBlue:    blue,
		AreaRed:     math.Pi - blue,
		AreaBlueRef: blueRef,
		AreaRedRef:  math.Pi - blueRef,
	}
}

// projectedCones returns the projected area of the near and far polar
// cones for a viewer at the given angle cosine. ct is sin(theta_open).
func projectedCones(cosTheta, cosThetaOpen, ct float64) float64 {
	// Near (top) cone.
	var top float64
	if cosTheta > ct {
		// The cone opening is seen fully; it projects to an
		// ellipse.
		top = math.Pi * ct * cosTheta
	} else {
		sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
		thetaP := math.Acos(cosThetaOpen / sinTheta)
		thetaD := math.Atan(math.Sin(thetaP) / cosThetaOpen *
			sinTheta / math.Abs(cosTheta))
		top = (thetaP - math.Sin(thetaP)*math.Cos(thetaP)) -
			ct*cosTheta*(thetaD-math.Sin(thetaD)*math.Cos(thetaD)-math.Pi)
	}

	// Far (bottom) cone, visible over the limb for near-equatorial
	// viewers.
	mct := -cosTheta
	var bot float64
	if mct >= -ct {
		sinTheta := math.Sqrt(1 - mct*mct)
		thetaP := math.Acos(cosThetaOpen / sinTheta)
		thetaD := math.Atan(math.Sin(thetaP) / cosThetaOpen *
			sinTheta / math.Abs(mct))
		bot = (thetaP - math.Sin(thetaP)*math.Cos(thetaP)) +
			ct*mct*(thetaD-math.Sin(thetaD)*math.Cos(thetaD))
		if bot < 0 {
			bot = 0
		}
	}

	return top + bot
}

// Module adapts Evaluate to the kilonova.Module named-parameter
// boundary.
type Module struct {
	Prefix string
}

// Name fulfils the kilonova.Module interface.
func (m Module) Name() string { return "aspherical" }

// Requires lists the scalar parameters the module reads.
func (m Module) Requires() []string {
	return []string{
		kilonova.Key(m.Prefix, "cos_theta"),
		kilonova.Key(m.Prefix, "cos_theta_open"),
	}
}

// Provides lists the scalar parameters the module writes.
func (m Module) Provides() []string {
	return []string{
		kilonova.Key(m.Prefix, "area_blue"),
		kilonova.Key(m.Prefix, "area_blue_ref"),
		kilonova.Key(m.Prefix, "area_red"),
		kilonova.Key(m.Prefix, "area_red_ref"),
	}
}

// Eval unpacks the viewing geometry, evaluates the projections, and
// packs the named areas.
func (m Module) Eval(p kilonova.Params) (kilonova.Params, error) {
	var in Inputs
	var err error
	if in.CosTheta, err = p.Scalar(kilonova.Key(m.Prefix, "cos_theta")); err != nil {
		return kilonova.Params{}, err
	}
	if in.CosThetaOpen, err = p.Scalar(kilonova.Key(m.Prefix, "cos_theta_open")); err != nil {
		return kilonova.Params{}, err
	}

	o := Evaluate(in)

	out := kilonova.NewParams()
	out.Scalars[kilonova.Key(m.Prefix, "area_blue")] = o.AreaBlue
	out.Scalars[kilonova.Key(m.Prefix, "area_blue_ref")] = o.AreaBlueRef
	out.Scalars[kilonova.Key(m.Prefix, "area_red")] = o.AreaRed
	out.Scalars[kilonova.Key(m.Prefix, "area_red_ref")] = o.AreaRedRef
	return out, nil
}
