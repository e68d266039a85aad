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

// Package manning implements Manning's counter-ion condensation theory
// for the thermodynamics and transport of ions in charged polymers.
//
// Every calculation branches on the Manning parameter ξ relative to its
// critical value ξ_c = 1/|z_counter|: at ξ ≥ ξ_c counter-ions condense
// onto the polymer backbone and the condensed-regime expressions apply;
// below ξ_c the uncondensed expressions apply. Both branches are
// continuous at ξ_c.
//
// All concentrations are mol per liter of water sorbed by the polymer.
//
// References:
//
// Kamcev, J.; Paul, D. R.; Freeman, B. D. Ion Activity Coefficients in
// Ion Exchange Polymers: Applicability of Manning's Counterion
// Condensation Theory. Macromolecules 2015, 48 (21), 8011-8024.
//
// Kamcev, J.; Paul, D. R.; Manning, G. S.; Freeman, B. D. Ion Diffusion
// Coefficients in Ion Exchange Membranes: Significance of Counter-Ion
// Condensation. Macromolecules 2018, 51 (15), 5519-5529.
//
// Manning, G. S. Limiting Laws and Counterion Condensation in
// Polyelectrolyte Solutions I & II. J. Chem. Phys. 1969, 51 (3), 924-938.
package manning

import (
	"fmt"
	"math"
)

// Roles select which ion (or combination) a calculation refers to.
const (
	RoleCounter = "counter"
	RoleCo      = "co"
	RoleMean    = "mean"
)

// Stoich holds the signed charges and stoichiometric coefficients of the
// counter-ion and co-ion of the dissolved salt. The counter-ion is the
// ion whose charge opposes the membrane's fixed charge.
type Stoich struct {
	NuCounter, NuCo int // stoichiometric coefficients, both positive
	ZCounter, ZCo   int // signed charges
}

// Validate checks the stoichiometry against the free-salt
// electroneutrality invariant and against the sign of the fixed charge
// concentration Cfix: the counter-ion charge must oppose the fixed
// charge and the co-ion charge must match it.
func (s Stoich) Validate(Cfix float64) error {
	if s.NuCounter <= 0 || s.NuCo <= 0 {
		return fmt.Errorf("manning: invalid stoichiometry: stoichiometric coefficients must be positive (nu_counter=%d, nu_co=%d)",
			s.NuCounter, s.NuCo)
	}
	if s.NuCounter*s.ZCounter != -s.NuCo*s.ZCo {
		return fmt.Errorf("manning: invalid stoichiometry: nu_counter*z_counter (%d) != -nu_co*z_co (%d)",
			s.NuCounter*s.ZCounter, -s.NuCo*s.ZCo)
	}
	if Cfix < 0 {
		if !(s.ZCounter > 0 && s.ZCo < 0) {
			return fmt.Errorf("manning: mismatch between signs of fixed charge (%g), counter-ion (%d), and co-ion (%d)",
				Cfix, s.ZCounter, s.ZCo)
		}
	} else {
		if !(s.ZCounter < 0 && s.ZCo > 0) {
			return fmt.Errorf("manning: mismatch between signs of fixed charge (%g), counter-ion (%d), and co-ion (%d)",
				Cfix, s.ZCounter, s.ZCo)
		}
	}
	return nil
}

// XiCritical returns the critical Manning parameter 1/|z_counter| that
// separates the condensed and uncondensed regimes.
func (s Stoich) XiCritical() float64 {
	return 1 / math.Abs(float64(s.ZCounter))
}

func validRole(role string, roles ...string) error {
	for _, r := range roles {
		if role == r {
			return nil
		}
	}
	return fmt.Errorf("manning: invalid role %q; valid roles are %v", role, roles)
}

// ActivityCoefficient returns an ion activity coefficient inside a
// charged polymer according to Manning theory.
//
// xi is the Manning parameter, Cfix the signed fixed charge
// concentration, and Cs the mobile salt concentration inside the
// polymer, both in mol/L of sorbed water. role selects the counter-ion,
// co-ion, or mean ionic activity coefficient.
func ActivityCoefficient(xi, Cfix, Cs float64, role string, st Stoich) (float64, error) {
	if err := validRole(role, RoleCounter, RoleCo, RoleMean); err != nil {
		return 0, err
	}
	if err := st.Validate(Cfix); err != nil {
		return 0, err
	}

	gCounter, gCo := activityCoefficients(xi, Cfix, Cs, st)
	switch role {
	case RoleCounter:
		return gCounter, nil
	case RoleCo:
		return gCo, nil
	default:
		nuCt := float64(st.NuCounter)
		nuCo := float64(st.NuCo)
		return math.Pow(math.Pow(gCounter, nuCt)*math.Pow(gCo, nuCo), 1/(nuCt+nuCo)), nil
	}
}

// activityCoefficients evaluates the condensed or uncondensed Manning
// expressions for the counter-ion and co-ion activity coefficients.
// Inputs must already be validated.
func activityCoefficients(xi, Cfix, Cs float64, st Stoich) (gCounter, gCo float64) {
	// Ratio of fixed charge to mobile salt concentration.
	X := math.Abs(Cfix / Cs)
	zCt := math.Abs(float64(st.ZCounter))
	zCo := float64(st.ZCo)
	nuCt := float64(st.NuCounter)
	nuCo := float64(st.NuCo)
	azz := math.Abs(float64(st.ZCounter * st.ZCo))

	if xi >= st.XiCritical() {
		gCounter = (X/zCt/xi + zCt*nuCt) / (X + zCt*nuCt) *
			math.Exp(-(X/2)/(X+azz*xi*(nuCo+nuCt)))
		gCo = math.Exp(-(X / 2 * (zCo / zCt) * (zCo / zCt)) /
			(X + azz*xi*(nuCo+nuCt)))
	} else {
		common := -(xi * X / 2) /
			(X*zCt + (nuCt*zCt*zCt + nuCo*zCo*zCo))
		gCounter = math.Exp(common * zCt * zCt)
		gCo = math.Exp(common * zCo * zCo)
	}
	return gCounter, gCo
}

// Beta returns the thermodynamic factor for the counter-ion or co-ion in
// the condensed regime. Ccounter is the membrane-phase counter-ion
// concentration. The factor is only defined for ξ ≥ ξ_c; below the
// critical value Beta fails with a domain error.
func Beta(xi, Cfix, Ccounter, Cs float64, role string, st Stoich) (float64, error) {
	if err := validRole(role, RoleCounter, RoleCo); err != nil {
		return 0, err
	}
	if err := st.Validate(Cfix); err != nil {
		return 0, err
	}
	if xi < st.XiCritical() {
		return 0, fmt.Errorf("manning: cannot calculate beta below critical value (xi=%g < %g)",
			xi, st.XiCritical())
	}

	cf := math.Abs(Cfix)
	zCt := math.Abs(float64(st.ZCounter))
	zRatio := float64(st.ZCo) / float64(st.ZCounter)
	nuCt := float64(st.NuCounter)
	nuSum := float64(st.NuCounter + st.NuCo)

	if role == RoleCounter {
		d := cf + zCt*nuCt*nuSum*xi*Cs
		return 1 +
			cf*(1-1/(zCt*xi))/(cf/(zCt*xi)+zCt*nuCt*Cs) +
			nuSum*zCt*xi*cf*Ccounter/(2*d*d), nil
	}
	d := cf + zCt*nuCt*nuSum*xi*Cs
	return 1 + 0.5*zRatio*zRatio*zCt*nuCt*nuSum*xi*cf*Cs/(d*d), nil
}
