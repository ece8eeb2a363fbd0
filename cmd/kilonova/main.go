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

// Command kilonova is a command-line interface for evaluating
// analytic models of binary neutron star merger transients.
package main

import (
	"fmt"
	"os"

	"github.com/transientmodel/kilonova/kilonovautil"
)

func main() {
	if err := kilonovautil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
