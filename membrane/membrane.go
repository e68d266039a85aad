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

// Package membrane holds the measured properties of an ion exchange
// membrane and derives the hydration quantities the transport models
// consume.
package membrane

import (
	"fmt"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/memtk"
)

// Density of water at 25 °C [kg/L].
const rhoWater = 0.998

// Membrane contains the properties of an ion exchange membrane.
type Membrane struct {
	// Name is a short identifier for the membrane.
	Name string

	// Description is a longer descriptive name, e.g. "Neosepta ACS".
	Description string

	// IEC is the signed ion exchange capacity, mol of fixed charge per
	// kg of dry polymer: negative for a cation-exchange membrane,
	// positive for an anion-exchange membrane.
	IEC *unit.Unit

	// Swelling is the swelling degree, kg of water sorbed per kg of dry
	// polymer.
	Swelling float64

	// PolymerDensity is the dry polymer density [kg/L].
	PolymerDensity float64

	// Xi is the Manning parameter of the polymer, dimensionless.
	Xi float64

	// Thickness of the membrane.
	Thickness *unit.Unit

	// AreaResistance is the area-specific electrical resistance of the
	// membrane [Ω·m²]. Zero represents an ideal membrane.
	AreaResistance *unit.Unit

	// Permselectivity is the apparent permselectivity of the membrane,
	// between 0 (non-selective) and 1 (ideally selective).
	Permselectivity float64
}

// New creates a Membrane from its ion exchange capacity [mol/kg, signed]
// and swelling degree [kg water / kg dry polymer]. Defaults describe an
// ideal membrane: dry polymer density 1.2 kg/L, thickness 100 μm, zero
// area resistance, permselectivity 1.
func New(name string, iec *unit.Unit, swelling float64) (*Membrane, error) {
	if err := memtk.CheckDims(iec, memtk.IonExchangeCapacity, "ion exchange capacity"); err != nil {
		return nil, err
	}
	if swelling <= 0 {
		return nil, fmt.Errorf("membrane: swelling degree must be positive, got %g", swelling)
	}
	return &Membrane{
		Name:            name,
		IEC:             iec,
		Swelling:        swelling,
		PolymerDensity:  1.2,
		Thickness:       unit.New(100e-6, unit.Dimensions{unit.LengthDim: 1}),
		AreaResistance:  unit.New(0, memtk.AreaResistance),
		Permselectivity: 1,
	}, nil
}

// FixedChargeConcentration converts the ion exchange capacity to a
// signed fixed charge concentration in mol per liter of sorbed water:
//
//	C_fix = IEC / SD · ρ_w
func (m *Membrane) FixedChargeConcentration() *unit.Unit {
	return memtk.Molar(m.IEC.Value() / m.Swelling * rhoWater)
}

// WaterVolumeFraction returns the volume fraction of water in the
// swollen membrane,
//
//	φ_w = SD / (SD + ρ_w/ρ_p)
//
// where SD is the swelling degree and ρ_w, ρ_p are the densities of
// water and of the dry polymer.
func (m *Membrane) WaterVolumeFraction() float64 {
	return m.Swelling / (m.Swelling + rhoWater/m.PolymerDensity)
}

// Equilibrate brings a copy of the bulk solution s into Donnan-Manning
// equilibrium with this membrane, using its Manning parameter and fixed
// charge concentration. See memtk.Equilibrate.
func (m *Membrane) Equilibrate(s memtk.Solution) (memtk.Solution, error) {
	return memtk.Equilibrate(s, m.Xi, m.FixedChargeConcentration())
}
