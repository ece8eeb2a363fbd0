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

package kilonovautil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/transientmodel/kilonova"
)

// scalarParams pulls the named configuration values into a parameter
// set, converting each to float64.
func scalarParams(cfg *viper.Viper, names []string) (kilonova.Params, error) {
	p := kilonova.NewParams()
	for _, name := range names {
		v, err := cast.ToFloat64E(cfg.Get(name))
		if err != nil {
			return kilonova.Params{}, fmt.Errorf("kilonova: configuration variable %s: %v", name, err)
		}
		p.Scalars[name] = v
	}
	return p, nil
}

// ejectaParamNames are the configuration variables consumed by the
// ejecta model.
var ejectaParamNames = []string{
	"Mchirp", "q", "disk_frac", "Mtov", "radius_ns", "alpha",
	"cos_theta_open", "errMdyn", "errMdisk",
}

// shockParamNames are the scalar configuration variables consumed by
// the shock cooling model; the dense_times series is built
// separately from the times.* variables.
var shockParamNames = []string{
	"resttexplosion", "kappa", "mejecta", "vejecta",
	"cos_theta_cocoon", "s", "tshock",
}

// timeGrid builds the dense_times series from the times.*
// configuration variables.
func timeGrid(cfg *viper.Viper) ([]float64, error) {
	begin, err := cast.ToFloat64E(cfg.Get("times.begin"))
	if err != nil {
		return nil, fmt.Errorf("kilonova: configuration variable times.begin: %v", err)
	}
	end, err := cast.ToFloat64E(cfg.Get("times.end"))
	if err != nil {
		return nil, fmt.Errorf("kilonova: configuration variable times.end: %v", err)
	}
	n, err := cast.ToIntE(cfg.Get("times.n"))
	if err != nil {
		return nil, fmt.Errorf("kilonova: configuration variable times.n: %v", err)
	}
	return kilonova.TimeGrid(begin, end, n)
}
