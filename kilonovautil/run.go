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
	"io"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/ctessum/unit"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/transientmodel/kilonova"
	"github.com/transientmodel/kilonova/science/constraint/bnsconstraint"
	"github.com/transientmodel/kilonova/science/ejecta/bnsejecta"
	"github.com/transientmodel/kilonova/science/engine/shockcocoon"
	"github.com/transientmodel/kilonova/science/geometry/aspherical"
)

// Log receives progress and result information. It can be swapped out
// for a custom logger before running any commands.
var Log logrus.FieldLogger = logrus.StandardLogger()

// SI dimensions of the reported quantities.
var (
	meters          = unit.Dimensions{unit.LengthDim: 1}
	metersPerSecond = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
	sqMetersPerKilo = unit.Dimensions{unit.LengthDim: 2, unit.MassDim: -1}
	watts           = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3}
)

// Conversions from the model's working units to SI.
const (
	kgPerMsun    = kilonova.MSunCGS * 1e-3 // M☉ → kg
	mPerSecPerKm = 1e3                     // km/s → m/s
	siOpacity    = 0.1                     // cm²/g → m²/kg
	siLuminosity = 1e-7                    // erg/s → W
	mPerKm       = 1e3                     // km → m
)

// RunEjecta evaluates the binary neutron star ejecta model with the
// given configuration and writes a unit-annotated report to w.
func RunEjecta(cfg *viper.Viper, w io.Writer) error {
	p, err := scalarParams(cfg, ejectaParamNames)
	if err != nil {
		return err
	}
	out, err := kilonova.Pipeline{bnsejecta.Module{}}.Run(p)
	if err != nil {
		return err
	}

	Log.WithFields(logrus.Fields{
		"M1":          out.Scalars["M1"],
		"M2":          out.Scalars["M2"],
		"mejecta_dyn": out.Scalars["mejecta_dyn"],
	}).Info("derived ejecta properties")

	return writeEjectaReport(w, out)
}

// writeEjectaReport prints each derived quantity with its SI value.
func writeEjectaReport(w io.Writer, out kilonova.Params) error {
	rows := []struct {
		name   string
		factor float64
		dims   unit.Dimensions
	}{
		{"M1", kgPerMsun, unit.Kilogram},
		{"M2", kgPerMsun, unit.Kilogram},
		{"mejecta_dyn", kgPerMsun, unit.Kilogram},
		{"mejecta_blue", kgPerMsun, unit.Kilogram},
		{"mejecta_red", kgPerMsun, unit.Kilogram},
		{"mejecta_purple", kgPerMsun, unit.Kilogram},
		{"vejecta_blue", mPerSecPerKm, metersPerSecond},
		{"vejecta_red", mPerSecPerKm, metersPerSecond},
		{"vejecta_purple", mPerSecPerKm, metersPerSecond},
		{"kappa_purple", siOpacity, sqMetersPerKilo},
		{"radius_ns", mPerKm, meters},
	}
	for _, row := range rows {
		v, err := out.Scalar(row.name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%v\n", row.name, unit.New(v*row.factor, row.dims)); err != nil {
			return err
		}
	}
	return nil
}

// RunShock evaluates the shock cooling model on the configured time
// grid and writes the light curve to w.
func RunShock(cfg *viper.Viper, w io.Writer) error {
	p, err := scalarParams(cfg, shockParamNames)
	if err != nil {
		return err
	}
	times, err := timeGrid(cfg)
	if err != nil {
		return err
	}
	p.Series["dense_times"] = times

	out, err := kilonova.Pipeline{shockcocoon.Module{}}.Run(p)
	if err != nil {
		return err
	}
	lum, err := out.SeriesParam("luminosities")
	if err != nil {
		return err
	}

	logLightCurve(times, lum)
	return writeLightCurve(w, times, lum)
}

// RunLightCurve chains the ejecta model into the shock cooling model:
// the blue dynamical ejecta component is the shocked cocoon material.
// The parameters are also scored against the equation of state
// constraints, with violations logged as warnings.
func RunLightCurve(cfg *viper.Viper, w io.Writer) error {
	p, err := scalarParams(cfg, ejectaParamNames)
	if err != nil {
		return err
	}
	ejecta, err := kilonova.Pipeline{bnsejecta.Module{}}.Run(p)
	if err != nil {
		return err
	}

	// The ejecta model emits M1, M2 and radius_ns, so the
	// constraint module can run on its output directly, reusing
	// radius_ns for both stars.
	ejecta.Scalars["R1"] = ejecta.Scalars["radius_ns"]
	ejecta.Scalars["R2"] = ejecta.Scalars["radius_ns"]
	scored, err := kilonova.Pipeline{bnsconstraint.Module{}}.Run(ejecta)
	if err != nil {
		return err
	}
	if score := scored.Scalars["score_modifier"]; score < 0 {
		Log.WithFields(logrus.Fields{
			"score_modifier": score,
		}).Warn("parameters violate equation of state constraints")
	}

	sp, err := scalarParams(cfg, []string{
		"resttexplosion", "kappa", "cos_theta_cocoon", "s", "tshock",
	})
	if err != nil {
		return err
	}
	sp.Scalars["mejecta"] = ejecta.Scalars["mejecta_blue"]
	sp.Scalars["vejecta"] = ejecta.Scalars["vejecta_blue"]
	times, err := timeGrid(cfg)
	if err != nil {
		return err
	}
	sp.Series["dense_times"] = times

	out, err := kilonova.Pipeline{shockcocoon.Module{}}.Run(sp)
	if err != nil {
		return err
	}
	lum, err := out.SeriesParam("luminosities")
	if err != nil {
		return err
	}

	// Scale the polar emission by the projected area of the
	// lanthanide-poor opening at the configured viewing angle.
	cosTheta, err := cast.ToFloat64E(cfg.Get("cos_theta"))
	if err != nil {
		return fmt.Errorf("kilonova: configuration variable cos_theta: %v", err)
	}
	geom := aspherical.Evaluate(aspherical.Inputs{
		CosTheta:     cosTheta,
		CosThetaOpen: p.Scalars["cos_theta_open"],
	})
	scale := geom.AreaBlue / geom.AreaBlueRef
	for i := range lum {
		lum[i] *= scale
	}

	logLightCurve(times, lum)
	return writeLightCurve(w, times, lum)
}

// logLightCurve logs summary statistics of a luminosity series.
func logLightCurve(times, lum []float64) {
	peak := 0
	for i, l := range lum {
		if l > lum[peak] {
			peak = i
		}
	}
	Log.WithFields(logrus.Fields{
		"epochs":    len(times),
		"peak_time": times[peak],
		"peak_lum":  unit.New(lum[peak]*siLuminosity, watts),
		"mean_lum":  stats.StatsMean(lum),
		"max_lum":   stats.StatsMax(lum),
		"min_lum":   stats.StatsMin(lum),
	}).Info("shock cooling light curve")
}

// writeLightCurve prints one epoch [days] and luminosity [erg/s] per
// line.
func writeLightCurve(w io.Writer, times, lum []float64) error {
	for i, t := range times {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", t, lum[i]); err != nil {
			return err
		}
	}
	return nil
}
