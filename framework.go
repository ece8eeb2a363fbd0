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

// Package kilonova provides components for modeling the light curves
// of kilonovae and other binary neutron star merger transients.
// Each physical model lives in its own sub-package of science/ as a
// pure function from a typed input record to a typed output record;
// this package holds the named-parameter boundary that connects the
// models to each other and to their callers.
package kilonova

import "fmt"

// Version gives the version number.
const Version = "0.1.0"

// Params carries named physical quantities across module boundaries.
// Scalar parameters and time-series parameters are held separately.
type Params struct {
	Scalars map[string]float64
	Series  map[string][]float64
}

// NewParams returns an empty parameter set.
func NewParams() Params {
	return Params{
		Scalars: make(map[string]float64),
		Series:  make(map[string][]float64),
	}
}

// Scalar returns the named scalar parameter, or an error if it has
// not been set.
func (p Params) Scalar(name string) (float64, error) {
	v, ok := p.Scalars[name]
	if !ok {
		return 0, fmt.Errorf("kilonova: missing scalar parameter %s", name)
	}
	return v, nil
}

// SeriesParam returns the named time-series parameter, or an error if
// it has not been set.
func (p Params) SeriesParam(name string) ([]float64, error) {
	v, ok := p.Series[name]
	if !ok {
		return nil, fmt.Errorf("kilonova: missing series parameter %s", name)
	}
	return v, nil
}

// Merge copies all parameters in o into p, overwriting any
// parameters that share a name.
func (p Params) Merge(o Params) {
	for k, v := range o.Scalars {
		p.Scalars[k] = v
	}
	for k, v := range o.Series {
		p.Series[k] = v
	}
}

// Key returns the namespaced name of a parameter belonging to a
// module instance with the given prefix. An empty prefix leaves the
// name unchanged, so single-instance pipelines can use bare names.
func Key(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}

// Module is a model component that derives named output quantities
// from named input quantities. Implementations must be stateless:
// every quantity a module reads or writes crosses the Params
// boundary, and concurrent Eval calls on one value must be safe.
type Module interface {
	// Name identifies the module type in errors and logs.
	Name() string

	// Requires lists the parameter names the module reads.
	Requires() []string

	// Provides lists the parameter names the module writes.
	Provides() []string

	// Eval derives the module's outputs from the given parameters.
	// The only error condition is a missing required parameter;
	// physically out-of-range values flow through as NaN or Inf.
	Eval(p Params) (Params, error)
}

// Pipeline evaluates modules in order, merging each module's outputs
// into the shared parameter set so that later modules can consume
// them. It is the minimal composition needed to chain an ejecta model
// into a luminosity model; samplers and likelihoods are left to the
// caller.
type Pipeline []Module

// Run evaluates the pipeline starting from the given parameters and
// returns the final parameter set, which includes the inputs and all
// module outputs. The input parameter set is not modified.
func (pl Pipeline) Run(p Params) (Params, error) {
	state := NewParams()
	state.Merge(p)
	for _, m := range pl {
		out, err := m.Eval(state)
		if err != nil {
			return Params{}, fmt.Errorf("kilonova: module %s: %v", m.Name(), err)
		}
		state.Merge(out)
	}
	return state, nil
}
