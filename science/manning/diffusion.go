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

package manning

import (
	"fmt"
	"math"

	"github.com/spatialmodel/memtk/science/diffusion"
)

// DefaultLatticeOrder is the truncation order of the lattice sum. At
// n = 50 the sum reproduces literature diffusion coefficients to three
// significant digits; doubling n moves the sixth significant digit.
const DefaultLatticeOrder = 50

// LatticeSum evaluates the doubly-infinite lattice sum A(x, y)
//
//	A = Σ_{m1} Σ_{m2} [ (π/x)(m1²+m2²) + |z_ct| + (ν_ct+ν_co)|z_ct z_co|/y ]⁻²
//
// over the square lattice excluding the origin, truncated at order n
// (n <= 0 selects DefaultLatticeOrder). The sum approximates an integral
// with no closed form and converges slowly; the truncation bounds
// [-n, n) match the published tabulations this model is validated
// against. x and y must be positive.
//
// In the condensed regime callers pass x = 1/|z_ct|, y = X/(ξ|z_ct|);
// in the uncondensed regime x = ξ, y = X.
func LatticeSum(x, y float64, st Stoich, n int) (float64, error) {
	if x <= 0 || y <= 0 {
		return 0, fmt.Errorf("manning: lattice sum A(x, y) is undefined for x=%g, y=%g; both must be positive", x, y)
	}
	if n <= 0 {
		n = DefaultLatticeOrder
	}
	zCt := math.Abs(float64(st.ZCounter))
	// The (m1, m2)-independent part of each term.
	c := zCt + float64(st.NuCounter+st.NuCo)*math.Abs(float64(st.ZCounter*st.ZCo))/y
	piOverX := math.Pi / x

	var sum float64
	for m1 := -n; m1 < n; m1++ {
		for m2 := -n; m2 < n; m2++ {
			if m1 == 0 && m2 == 0 {
				continue
			}
			t := piOverX*float64(m1*m1+m2*m2) + c
			sum += 1 / (t * t)
		}
	}
	return sum, nil
}

// A evaluates the lattice sum at the default truncation order.
func A(x, y float64, st Stoich) (float64, error) {
	return LatticeSum(x, y, st, DefaultLatticeOrder)
}

// DiffusionCoefficient returns the normalized ion diffusion coefficient
// D_membrane/D_bulk inside a charged polymer according to Manning
// theory, including the Mackie-Meares tortuosity correction for the
// polymer's water volume fraction volFrac. role selects the counter-ion
// or co-ion.
func DiffusionCoefficient(xi, Cfix, Cs, volFrac float64, role string, st Stoich) (float64, error) {
	if err := validRole(role, RoleCounter, RoleCo); err != nil {
		return 0, err
	}
	if err := st.Validate(Cfix); err != nil {
		return 0, err
	}
	// The porosity factor validates volFrac's range.
	mm, err := diffusion.MackieMeares(1, volFrac)
	if err != nil {
		return 0, err
	}

	X := math.Abs(Cfix / Cs)
	zCt := math.Abs(float64(st.ZCounter))
	nuCt := float64(st.NuCounter)

	var a, dCounter float64
	if xi >= st.XiCritical() {
		a, err = A(1/zCt, X/xi/zCt, st)
		if err != nil {
			return 0, err
		}
		dCounter = (X/(zCt*zCt*nuCt*xi) + 1) / (X/(zCt*nuCt) + 1) *
			(1 - zCt*zCt*a/3) * mm
	} else {
		a, err = A(xi, X, st)
		if err != nil {
			return 0, err
		}
		dCounter = (1 - zCt*zCt*a/3) * mm
	}
	if role == RoleCounter {
		return dCounter, nil
	}
	zCo := float64(st.ZCo)
	return (1 - zCo*zCo*a/3) * mm, nil
}
