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

// Package unitized wraps the unit-agnostic calculations under science/
// with dimension-checked quantities. Each wrapper rejects nil (bare)
// values with a missing-unit error and wrong dimensions with a
// dimensionality error before any numeric work, then delegates to the
// corresponding core function. All physics stays in the core packages;
// nothing here does more than check and unwrap.
package unitized

import (
	"github.com/ctessum/unit"

	"github.com/spatialmodel/memtk"
	"github.com/spatialmodel/memtk/science/diffusion"
	"github.com/spatialmodel/memtk/science/donnan"
	"github.com/spatialmodel/memtk/science/manning"
	"github.com/spatialmodel/memtk/science/potential"
)

// ActivityCoefficient is the unit-checked form of
// manning.ActivityCoefficient. Cfix and Cs are molar concentrations.
func ActivityCoefficient(xi float64, Cfix, Cs *unit.Unit, role string, st manning.Stoich) (float64, error) {
	if err := memtk.CheckConcentration(Cfix, "fixed charge concentration"); err != nil {
		return 0, err
	}
	if err := memtk.CheckConcentration(Cs, "mobile salt concentration"); err != nil {
		return 0, err
	}
	return manning.ActivityCoefficient(xi, Cfix.Value(), Cs.Value(), role, st)
}

// DiffusionCoefficient is the unit-checked form of
// manning.DiffusionCoefficient. volFrac is dimensionless.
func DiffusionCoefficient(xi float64, Cfix, Cs, volFrac *unit.Unit, role string, st manning.Stoich) (float64, error) {
	if err := memtk.CheckConcentration(Cfix, "fixed charge concentration"); err != nil {
		return 0, err
	}
	if err := memtk.CheckConcentration(Cs, "mobile salt concentration"); err != nil {
		return 0, err
	}
	if err := memtk.CheckDims(volFrac, memtk.Dimless, "water volume fraction"); err != nil {
		return 0, err
	}
	return manning.DiffusionCoefficient(xi, Cfix.Value(), Cs.Value(), volFrac.Value(), role, st)
}

// Beta is the unit-checked form of manning.Beta.
func Beta(xi float64, Cfix, Ccounter, Cs *unit.Unit, role string, st manning.Stoich) (float64, error) {
	if err := memtk.CheckConcentration(Cfix, "fixed charge concentration"); err != nil {
		return 0, err
	}
	if err := memtk.CheckConcentration(Ccounter, "counter-ion concentration"); err != nil {
		return 0, err
	}
	if err := memtk.CheckConcentration(Cs, "mobile salt concentration"); err != nil {
		return 0, err
	}
	return manning.Beta(xi, Cfix.Value(), Ccounter.Value(), Cs.Value(), role, st)
}

// MackieMeares is the unit-checked form of diffusion.MackieMeares.
// D is a diffusion coefficient [m²/s]; the result carries the same
// dimensions.
func MackieMeares(D, volFrac *unit.Unit) (*unit.Unit, error) {
	if err := memtk.CheckDims(D, memtk.Diffusivity, "diffusion coefficient"); err != nil {
		return nil, err
	}
	if err := memtk.CheckDims(volFrac, memtk.Dimless, "water volume fraction"); err != nil {
		return nil, err
	}
	d, err := diffusion.MackieMeares(D.Value(), volFrac.Value())
	if err != nil {
		return nil, err
	}
	return unit.New(d, memtk.Diffusivity), nil
}

// DonnanEquilibrium is the unit-checked form of donnan.Equilibrium.
// Cfix is unsigned; the membrane charge sign is carried by p.ZFix.
func DonnanEquilibrium(Cbulk, Cfix *unit.Unit, p donnan.Params) (*unit.Unit, error) {
	if err := memtk.CheckConcentration(Cbulk, "bulk salt concentration"); err != nil {
		return nil, err
	}
	if err := memtk.CheckConcentration(Cfix, "fixed charge concentration"); err != nil {
		return nil, err
	}
	c, err := donnan.Equilibrium(Cbulk.Value(), Cfix.Value(), p)
	if err != nil {
		return nil, err
	}
	return memtk.Molar(c), nil
}

// ApparentPermselectivity is the unit-checked form of
// potential.ApparentPermselectivity. Emem and Eideal are electrical
// potentials [V].
func ApparentPermselectivity(Emem, Eideal *unit.Unit, tCounter float64) (float64, error) {
	if err := memtk.CheckDims(Emem, memtk.Potential, "membrane potential"); err != nil {
		return 0, err
	}
	if err := memtk.CheckDims(Eideal, memtk.Potential, "ideal membrane potential"); err != nil {
		return 0, err
	}
	return potential.ApparentPermselectivity(Emem.Value(), Eideal.Value(), tCounter)
}
