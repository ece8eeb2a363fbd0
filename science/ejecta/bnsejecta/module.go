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

package bnsejecta

import "github.com/transientmodel/kilonova"

// Module adapts Evaluate to the kilonova.Module named-parameter
// boundary. Prefix namespaces the parameter names so that several
// instances can share one pipeline.
type Module struct {
	Prefix string
}

// Name fulfils the kilonova.Module interface.
func (m Module) Name() string { return "bnsejecta" }

var requires = []string{
	"Mchirp", "q", "disk_frac", "Mtov", "radius_ns", "alpha",
	"cos_theta_open", "errMdyn", "errMdisk",
}

var provides = []string{
	"mejecta_blue", "mejecta_red", "mejecta_purple", "mejecta_dyn",
	"vejecta_blue", "vejecta_red", "vejecta_purple", "kappa_purple",
	"M1", "M2", "radius_ns",
}

// Requires lists the scalar parameters the module reads.
func (m Module) Requires() []string { return m.keys(requires) }

// Provides lists the scalar parameters the module writes.
func (m Module) Provides() []string { return m.keys(provides) }

func (m Module) keys(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = kilonova.Key(m.Prefix, n)
	}
	return out
}

// Eval unpacks the named binary parameters, evaluates the ejecta
// model, and packs the named ejecta properties.
func (m Module) Eval(p kilonova.Params) (kilonova.Params, error) {
	var in Inputs
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"Mchirp", &in.MChirp},
		{"q", &in.Q},
		{"disk_frac", &in.DiskFrac},
		{"Mtov", &in.MTOV},
		{"radius_ns", &in.RadiusNS},
		{"alpha", &in.Alpha},
		{"cos_theta_open", &in.CosThetaOpen},
		{"errMdyn", &in.ErrMdyn},
		{"errMdisk", &in.ErrMdisk},
	} {
		v, err := p.Scalar(kilonova.Key(m.Prefix, f.name))
		if err != nil {
			return kilonova.Params{}, err
		}
		*f.dst = v
	}

	o := Evaluate(in)

	out := kilonova.NewParams()
	for name, v := range map[string]float64{
		"mejecta_blue":   o.MejectaBlue,
		"mejecta_red":    o.MejectaRed,
		"mejecta_purple": o.MejectaPurple,
		"mejecta_dyn":    o.MejectaDyn,
		"vejecta_blue":   o.VejectaBlue,
		"vejecta_red":    o.VejectaRed,
		"vejecta_purple": o.VejectaPurple,
		"kappa_purple":   o.KappaPurple,
		"M1":             o.M1,
		"M2":             o.M2,
		"radius_ns":      o.RadiusNS,
	} {
		out.Scalars[kilonova.Key(m.Prefix, name)] = v
	}
	return out, nil
}
