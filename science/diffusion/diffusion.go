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

// Package diffusion provides membrane-phase diffusion coefficient
// models that depend only on polymer hydration, independent of any
// electrostatic theory.
package diffusion

import "fmt"

// MackieMeares scales the bulk-solution diffusion coefficient D to the
// membrane phase using the Mackie-Meares tortuosity model,
//
//	D_mem = D * (φ_w / (2 - φ_w))²
//
// where φ_w (volFrac) is the volume fraction of water sorbed by the
// membrane, between 0 and 1.
//
// Reference: Mackie, J. S.; Meares, P. The Diffusion of Electrolytes in
// a Cation-Exchange Resin Membrane. Proc. R. Soc. London A 1955, 232,
// 498-509.
func MackieMeares(D, volFrac float64) (float64, error) {
	if volFrac < 0 || volFrac > 1 {
		return 0, fmt.Errorf("diffusion: water volume fraction must be between 0 and 1, got %g", volFrac)
	}
	f := volFrac / (2 - volFrac)
	return D * f * f, nil
}
