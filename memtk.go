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

// Package memtk models ion partitioning and transport in charged
// (ion-exchange) membranes using Donnan exclusion and Manning's
// counter-ion condensation theory. Given a bulk electrolyte composition
// and a membrane's fixed-charge density, it computes the equilibrium ion
// concentrations in the membrane phase along with membrane-phase ion
// activity coefficients and normalized ion diffusion coefficients.
//
// The physics lives in unit-agnostic subpackages under science/;
// dimension-checked wrappers for every calculation are in package
// unitized. This package holds the shared quantity dimensions, the
// boundary contract with the bulk-solution collaborator, and the
// Donnan-Manning equilibrium solver that ties them together.
package memtk

import (
	"fmt"

	"github.com/ctessum/unit"
)

// AmountDim is the amount-of-substance dimension (mol).
// The unit library only predefines the SI mechanical and electrical
// dimensions, so we register amount of substance here. The symbol "mol"
// itself is reserved by the library.
var AmountDim = unit.NewDimension("mole")

// Dimensions of the quantities exchanged with the engine. Concentrations
// are molar (mol per liter of water sorbed by the membrane); the liter is
// the canonical volume for every concentration in this package.
var (
	Dimless       = unit.Dimensions{}
	Concentration = unit.Dimensions{AmountDim: 1, unit.LengthDim: -3}
	Diffusivity   = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
	Potential     = unit.Dimensions{
		unit.MassDim:    1,
		unit.LengthDim:  2,
		unit.TimeDim:    -3,
		unit.CurrentDim: -1,
	}
	IonExchangeCapacity = unit.Dimensions{AmountDim: 1, unit.MassDim: -1}
	AreaResistance      = unit.Dimensions{ // ohm·m²
		unit.MassDim:    1,
		unit.LengthDim:  4,
		unit.TimeDim:    -3,
		unit.CurrentDim: -2,
	}
)

// Molar returns a molar concentration quantity [mol/L].
func Molar(v float64) *unit.Unit { return unit.New(v, Concentration) }

// Volts returns an electrical potential quantity [V].
func Volts(v float64) *unit.Unit { return unit.New(v, Potential) }

// CheckDims validates that q is a unit-tagged quantity with the given
// dimensions. A nil quantity is a bare number and is rejected: callers
// must not mix bare values with unit-tagged quantities.
func CheckDims(q *unit.Unit, d unit.Dimensions, what string) error {
	if q == nil {
		return fmt.Errorf("memtk: missing unit: %s requires a unit-tagged quantity, not a bare number", what)
	}
	if err := q.Check(d); err != nil {
		return fmt.Errorf("memtk: %s: %v", what, err)
	}
	return nil
}

// CheckConcentration validates that q is a molar concentration quantity.
func CheckConcentration(q *unit.Unit, what string) error {
	return CheckDims(q, Concentration, what)
}

// Salt describes the dissolved salt in a bulk composition: the formulas,
// signed charges, and stoichiometric coefficients of its cation and anion.
type Salt struct {
	Cation, Anion     string
	ZCation, ZAnion   int
	NuCation, NuAnion int
}

// Solution is the boundary contract with the bulk-composition
// collaborator. The engine reads concentrations and activities through
// it and writes solved membrane-phase concentrations into a copy; it
// never mutates the Solution it was given.
//
// Amounts are molar concentrations [mol/L].
type Solution interface {
	// Salt identifies the dissolved salt.
	Salt() (Salt, error)

	// Amount returns the molar concentration of the given species.
	Amount(species string) (*unit.Unit, error)

	// Activity returns the dimensionless thermodynamic activity of the
	// given species.
	Activity(species string) (float64, error)

	// SetAmount sets the molar concentration of the given species.
	SetAmount(species string, amount *unit.Unit) error

	// Copy returns an independent copy of the Solution.
	Copy() Solution
}

// ActivityCoefficientSetter is optionally implemented by Solutions whose
// species activity coefficients can be set directly. When the membrane
// composition returned by Equilibrate supports it, the solver stores the
// Manning activity coefficients of the counter-ion and co-ion there, so
// that the composition's activities are consistent with the equilibrium
// that produced it (and re-equilibrating it is a fixed point).
type ActivityCoefficientSetter interface {
	SetActivityCoefficient(species string, gamma float64) error
}
