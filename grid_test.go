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
	"math"
	"testing"
)

func TestTimeGrid(t *testing.T) {
	const tolerance = 1e-12

	times, err := TimeGrid(0.1, 30, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 100 {
		t.Fatalf("want 100 epochs, got %d", len(times))
	}
	if times[0] != 0.1 || math.Abs(times[99]-30) > tolerance {
		t.Errorf("endpoints: got %g, %g", times[0], times[99])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Fatalf("epochs not strictly increasing at index %d", i)
		}
	}
}

func TestTimeGridErrors(t *testing.T) {
	if _, err := TimeGrid(0, 10, 1); err == nil {
		t.Error("want an error for n < 2, got nil")
	}
	if _, err := TimeGrid(10, 10, 5); err == nil {
		t.Error("want an error for an empty interval, got nil")
	}
}
