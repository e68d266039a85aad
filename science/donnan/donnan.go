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

// Package donnan computes the simple Donnan equilibrium (no counter-ion
// condensation) between a charged membrane and a bulk salt solution.
//
// The equilibrium condition between a membrane with fixed charge
// concentration C_fix (mol per L of sorbed water) and a bulk solution of
// concentration C_bulk is
//
//	C_co^ν_co ((z_co C_co + z_fix C_fix)/z_ct)^ν_ct =
//	    -Γ ν_ct^ν_ct ν_co^ν_co C_bulk^(ν_ct+ν_co)
//
// where Γ is the stoichiometrically-weighted ratio of bulk to membrane
// activity coefficients. Setting Γ = 1 assumes equal ion activity
// coefficients in both phases; Manning theory (package manning) can
// supply the membrane-phase coefficients for a direct calculation.
//
// Reference: Donnan, F. G. The theory of membrane equilibria.
// Chem. Rev. 1924, 1 (1), 73-90.
package donnan

import (
	"fmt"
	"math"

	"github.com/spatialmodel/memtk/internal/roots"
)

// Params holds the salt stoichiometry, the membrane charge sign, and the
// activity coefficient ratio for an equilibrium calculation.
// DefaultParams describes a monovalent 1:1 salt against a
// cation-exchange membrane with Γ = 1.
type Params struct {
	ZCounter, ZCo   int     // signed ion charges
	NuCounter, NuCo int     // stoichiometric coefficients, both positive
	ZFix            int     // sign of the fixed membrane charge
	Gamma           float64 // bulk-to-membrane activity coefficient ratio Γ
}

// DefaultParams returns parameters for a monovalent 1:1 salt and a
// negatively charged membrane with Γ = 1.
func DefaultParams() Params {
	return Params{ZCounter: 1, ZCo: -1, NuCounter: 1, NuCo: 1, ZFix: -1, Gamma: 1}
}

func (p Params) validate() error {
	if p.NuCounter <= 0 || p.NuCo <= 0 {
		return fmt.Errorf("donnan: invalid stoichiometry: stoichiometric coefficients must be positive (nu_counter=%d, nu_co=%d)",
			p.NuCounter, p.NuCo)
	}
	if p.NuCounter*p.ZCounter != -p.NuCo*p.ZCo {
		return fmt.Errorf("donnan: invalid stoichiometry: nu_counter*z_counter (%d) != -nu_co*z_co (%d)",
			p.NuCounter*p.ZCounter, -p.NuCo*p.ZCo)
	}
	if p.ZFix*p.ZCounter >= 0 {
		return fmt.Errorf("donnan: mismatch between signs of fixed charge (%d) and counter-ion (%d); they must be opposite",
			p.ZFix, p.ZCounter)
	}
	return nil
}

// Equilibrium returns the membrane-phase co-ion concentration [mol/L of
// sorbed water] in Donnan equilibrium with a bulk salt solution of
// concentration Cbulk [mol/L]. Cfix is the fixed charge concentration
// without sign; its sign is carried by p.ZFix. Note that for salts
// containing a multivalent ion the co-ion concentration is not the same
// as the mobile salt concentration.
func Equilibrium(Cbulk, Cfix float64, p Params) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	nuCt := float64(p.NuCounter)
	nuCo := float64(p.NuCo)
	gamma := p.Gamma

	// With no fixed charge the equilibrium has the closed form
	// C_co = Γ^(1/(ν_ct+ν_co)) ν_co C_bulk; solving numerically would
	// chase a degenerate root, so return it directly.
	if Cfix == 0 {
		return Cbulk * nuCo * math.Pow(gamma, 1/(nuCt+nuCo)), nil
	}

	zCt := float64(p.ZCounter)
	zCo := float64(p.ZCo)
	zFix := float64(p.ZFix)
	rhs := gamma * math.Pow(nuCo, nuCo) * math.Pow(nuCt, nuCt) * math.Pow(Cbulk, nuCt+nuCo)
	residual := func(Cco float64) float64 {
		return math.Pow(Cco, nuCo)*math.Pow((zCo*Cco+zFix*Cfix)/zCt, nuCt) + rhs
	}

	// The bracket endpoints derive from the bulk concentration bounds
	// and are part of the physical contract; a failure here means bad
	// input, not a transient condition.
	root, err := roots.Bracketed(residual, 0, 2*nuCo*Cbulk, 1e-6, 0)
	if err != nil {
		return 0, fmt.Errorf("donnan equilibrium: %w", err)
	}
	return root, nil
}
