/*
Copyright © 2026 the MemTK authors.
This file is part of MemTK.

MemTK is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MemTK is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MemTK.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package potential relates measured membrane potentials to membrane
// selectivity.
package potential

import "fmt"

// ApparentPermselectivity calculates the apparent permselectivity of an
// ion exchange membrane from the electrical potential Emem measured
// across it, the potential Eideal across an ideally-selective membrane
// (usually from the Nernst equation), and the bulk-solution transport
// number tCounter of the counter-ion:
//
//	α_app = (Emem/Eideal + 1 - 2 t_counter) / (2 - 2 t_counter)
//
// Apparent permselectivity ranges from 0 (non-selective) to 1
// (perfectly selective). tCounter must be between 0 and 1.
func ApparentPermselectivity(Emem, Eideal, tCounter float64) (float64, error) {
	if tCounter < 0 || tCounter > 1 {
		return 0, fmt.Errorf("potential: counter-ion transport number must be between 0 and 1, got %.3f", tCounter)
	}
	return (Emem/Eideal + 1 - 2*tCounter) / (2 - 2*tCounter), nil
}
