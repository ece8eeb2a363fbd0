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

package kilonova

import (
	"fmt"
	"testing"
)

func TestKey(t *testing.T) {
	if got := Key("", "mejecta"); got != "mejecta" {
		t.Errorf("empty prefix: want mejecta, got %s", got)
	}
	if got := Key("blue", "mejecta"); got != "blue_mejecta" {
		t.Errorf("prefixed: want blue_mejecta, got %s", got)
	}
}

func TestParamsMissing(t *testing.T) {
	p := NewParams()
	if _, err := p.Scalar("q"); err == nil {
		t.Error("want an error for a missing scalar, got nil")
	}
	if _, err := p.SeriesParam("dense_times"); err == nil {
		t.Error("want an error for a missing series, got nil")
	}

	p.Scalars["q"] = 0.9
	if v, err := p.Scalar("q"); err != nil || v != 0.9 {
		t.Errorf("q: want 0.9, got %g (err %v)", v, err)
	}
}

// doubler is a test module that provides "out" = 2 * "in".
type doubler struct{ prefix string }

func (d doubler) Name() string       { return "doubler" }
func (d doubler) Requires() []string { return []string{Key(d.prefix, "in")} }
func (d doubler) Provides() []string { return []string{Key(d.prefix, "out")} }
func (d doubler) Eval(p Params) (Params, error) {
	v, err := p.Scalar(Key(d.prefix, "in"))
	if err != nil {
		return Params{}, err
	}
	out := NewParams()
	out.Scalars[Key(d.prefix, "out")] = 2 * v
	return out, nil
}

// relay is a test module that copies one parameter to another name.
type relay struct{ from, to string }

func (r relay) Name() string       { return "relay" }
func (r relay) Requires() []string { return []string{r.from} }
func (r relay) Provides() []string { return []string{r.to} }
func (r relay) Eval(p Params) (Params, error) {
	v, err := p.Scalar(r.from)
	if err != nil {
		return Params{}, err
	}
	out := NewParams()
	out.Scalars[r.to] = v
	return out, nil
}

func TestPipelineChaining(t *testing.T) {
	p := NewParams()
	p.Scalars["in"] = 3

	// The relay feeds the output of the first doubler into the
	// prefixed instance of the second.
	pl := Pipeline{
		doubler{},
		relay{from: "out", to: "b_in"},
		doubler{prefix: "b"},
	}
	out, err := pl.Run(p)
	if err != nil {
		t.Fatal(err)
	}
	if v := out.Scalars["b_out"]; v != 12 {
		t.Errorf("b_out: want 12, got %g", v)
	}
	// The original parameter set is untouched.
	if len(p.Scalars) != 1 {
		t.Errorf("input parameters grew to %d entries", len(p.Scalars))
	}
}

func TestPipelineError(t *testing.T) {
	pl := Pipeline{doubler{prefix: "missing"}}
	_, err := pl.Run(NewParams())
	if err == nil {
		t.Fatal("want an error for a missing module input, got nil")
	}
	want := fmt.Sprintf("kilonova: module %s:", "doubler")
	if got := err.Error(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("error must name the failing module: %v", err)
	}
}
