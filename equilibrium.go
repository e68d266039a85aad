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

package memtk

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/memtk/internal/roots"
	"github.com/spatialmodel/memtk/science/manning"
)

// Equilibrate brings a copy of the bulk solution s into Donnan-Manning
// equilibrium with a membrane of Manning parameter xi and signed
// fixed-charge concentration fixedCharge, using the default solver
// configuration. See SolverConfig.Equilibrate.
func Equilibrate(s Solution, xi float64, fixedCharge *unit.Unit) (Solution, error) {
	return DefaultSolverConfig().Equilibrate(s, xi, fixedCharge)
}

// Equilibrate returns a Solution in equilibrium with the given fixed
// charge concentration according to Manning's counter-ion condensation
// theory. fixedCharge is a signed molar concentration (mol per liter of
// water sorbed by the membrane): negative for a cation-exchange
// membrane, positive for an anion-exchange membrane. The input Solution
// is never mutated; results are written into a copy.
//
// Degenerate inputs short-circuit without error: a zero fixed charge
// (logged as a warning) or a zero bulk concentration of either ion
// returns an unmodified copy of s.
//
// Reference: Kamcev, J.; Galizia, M.; Benedetti, F. M.; Jang, E.-S.;
// Paul, D. R.; Freeman, B.; Manning, G. S. Partitioning of Mobile Ions
// Between Ion Exchange Polymers and Aqueous Salt Solutions: Importance
// of Counter-ion Condensation. Phys. Chem. Chem. Phys. 2016, 6021-6031.
func (cfg SolverConfig) Equilibrate(s Solution, xi float64, fixedCharge *unit.Unit) (Solution, error) {
	if err := CheckConcentration(fixedCharge, "fixed charge concentration"); err != nil {
		return nil, err
	}
	salt, err := s.Salt()
	if err != nil {
		return nil, fmt.Errorf("memtk: identifying salt: %v", err)
	}

	eq := s.Copy()

	cf := fixedCharge.Value()
	if cf == 0 {
		logrus.Warn("memtk: fixed charge concentration is zero, Donnan equilibrium cannot be established; returning a copy of the bulk solution")
		return eq, nil
	}

	// The counter-ion is the ion whose charge opposes the fixed charge:
	// the anion for an anion-exchange membrane (cf > 0), the cation for
	// a cation-exchange membrane (cf < 0).
	var counterIon, coIon string
	var st manning.Stoich
	if cf > 0 {
		counterIon, coIon = salt.Anion, salt.Cation
		st = manning.Stoich{
			NuCounter: salt.NuAnion, NuCo: salt.NuCation,
			ZCounter: salt.ZAnion, ZCo: salt.ZCation,
		}
	} else {
		counterIon, coIon = salt.Cation, salt.Anion
		st = manning.Stoich{
			NuCounter: salt.NuCation, NuCo: salt.NuAnion,
			ZCounter: salt.ZCation, ZCo: salt.ZAnion,
		}
	}

	concCounter, err := s.Amount(counterIon)
	if err != nil {
		return nil, err
	}
	concCo, err := s.Amount(coIon)
	if err != nil {
		return nil, err
	}
	if err := CheckConcentration(concCounter, counterIon+" concentration"); err != nil {
		return nil, err
	}
	if err := CheckConcentration(concCo, coIon+" concentration"); err != nil {
		return nil, err
	}
	// No equilibrium to establish if either ion is absent.
	if concCounter.Value() == 0 || concCo.Value() == 0 {
		return eq, nil
	}

	if err := st.Validate(cf); err != nil {
		return nil, err
	}

	aCounter, err := s.Activity(counterIon)
	if err != nil {
		return nil, err
	}
	aCo, err := s.Activity(coIon)
	if err != nil {
		return nil, err
	}

	nuCt := float64(st.NuCounter)
	nuCo := float64(st.NuCo)
	zCt := float64(st.ZCounter)
	zCo := float64(st.ZCo)
	Cfix := math.Abs(cf)
	zFix := cf / Cfix

	// The bulk salt activity fixes the right-hand side of the
	// equilibrium condition.
	rhs := math.Pow(aCounter, nuCt) * math.Pow(aCo, nuCo)

	// Residual of the Donnan-Manning electroneutrality equation as a
	// function of the membrane-phase co-ion concentration. The
	// counter-ion concentration is always derived from
	// electroneutrality, never solved independently.
	var acErr error
	residual := func(Cco float64) float64 {
		gMean, err := manning.ActivityCoefficient(xi, Cfix*zFix, Cco, manning.RoleMean, st)
		if err != nil {
			acErr = err
			return math.NaN()
		}
		lhs := math.Pow(Cco, nuCo) *
			math.Pow((-zCo*Cco-zFix*Cfix)/zCt, nuCt) *
			math.Pow(gMean, nuCt+nuCo)
		return lhs - rhs
	}

	root, err := roots.Bracketed(residual, 1e-10, 2*concCo.Value(), cfg.Tolerance, cfg.MaxIter)
	if acErr != nil {
		return nil, acErr
	}
	if err != nil {
		return nil, fmt.Errorf("memtk: equilibrate: %w", err)
	}

	// Back-solve the counter-ion concentration from electroneutrality.
	resultCounter := -(root*zCo + zFix*Cfix) / zCt

	if err := eq.SetAmount(counterIon, Molar(resultCounter)); err != nil {
		return nil, err
	}
	if err := eq.SetAmount(coIon, Molar(root)); err != nil {
		return nil, err
	}

	// Store the membrane-phase activity coefficients when the
	// composition supports it, so that the equilibrated composition's
	// activities are consistent with the equilibrium that produced it.
	if setter, ok := eq.(ActivityCoefficientSetter); ok {
		for _, ion := range []struct{ species, role string }{
			{counterIon, manning.RoleCounter},
			{coIon, manning.RoleCo},
		} {
			g, err := manning.ActivityCoefficient(xi, Cfix*zFix, root, ion.role, st)
			if err != nil {
				return nil, err
			}
			if err := setter.SetActivityCoefficient(ion.species, g); err != nil {
				return nil, err
			}
		}
	}
	return eq, nil
}
