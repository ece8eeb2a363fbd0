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

	"gonum.org/v1/gonum/floats"
)

// TimeGrid returns n epochs uniformly spaced over [begin, end],
// inclusive of both endpoints, for use as the dense_times series
// consumed by luminosity modules. n must be at least 2 and end must
// be greater than begin.
func TimeGrid(begin, end float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("kilonova: time grid needs at least 2 epochs; got %d", n)
	}
	if end <= begin {
		return nil, fmt.Errorf("kilonova: time grid end %g must be after begin %g", end, begin)
	}
	return floats.Span(make([]float64, n), begin, end), nil
}
