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

// Package bulk provides a minimal electrolyte solution satisfying the
// memtk.Solution contract: per-species molar concentrations with ideal
// (unit) activity coefficients by default. It carries just enough
// thermodynamics to drive the equilibrium solver; full bulk-phase
// activity coefficient models are outside the scope of this repository.
//
// Ion species are written with an explicit charge suffix, e.g. "Na+",
// "Cl-", "Ca+2", "SO4-2".
package bulk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/memtk"
)

// Solution is a bulk electrolyte composition holding one dissolved salt.
type Solution struct {
	conc   map[string]float64 // molar concentration [mol/L]
	gamma  map[string]float64 // activity coefficients, default 1
	charge map[string]int     // signed charge parsed from the formula
}

// NewSolution creates a Solution from species formulas and molar
// concentrations. Exactly one cation and one anion must be given.
func NewSolution(amounts map[string]*unit.Unit) (*Solution, error) {
	s := &Solution{
		conc:   make(map[string]float64),
		gamma:  make(map[string]float64),
		charge: make(map[string]int),
	}
	for species, amount := range amounts {
		z, err := ParseCharge(species)
		if err != nil {
			return nil, err
		}
		if err := memtk.CheckConcentration(amount, species+" concentration"); err != nil {
			return nil, err
		}
		s.conc[species] = amount.Value()
		s.gamma[species] = 1
		s.charge[species] = z
	}
	var nCations, nAnions int
	for _, z := range s.charge {
		if z > 0 {
			nCations++
		} else {
			nAnions++
		}
	}
	if nCations != 1 || nAnions != 1 {
		return nil, fmt.Errorf("bulk: solution must contain exactly one cation and one anion, got %d and %d", nCations, nAnions)
	}
	return s, nil
}

// ParseCharge extracts the signed charge from an ion formula with a
// trailing charge suffix: "Na+", "Cl-", "Ca+2", "SO4-2".
func ParseCharge(species string) (int, error) {
	i := strings.LastIndexAny(species, "+-")
	if i < 1 {
		return 0, fmt.Errorf("bulk: species %q has no charge suffix; ions must be written like Na+, Cl-, or Ca+2", species)
	}
	magnitude := 1
	if suffix := species[i+1:]; suffix != "" {
		var err error
		magnitude, err = strconv.Atoi(suffix)
		if err != nil || magnitude <= 0 {
			return 0, fmt.Errorf("bulk: species %q has an invalid charge suffix %q", species, suffix)
		}
	}
	if species[i] == '-' {
		return -magnitude, nil
	}
	return magnitude, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Salt identifies the dissolved salt: the cation/anion pair together
// with the stoichiometric coefficients of the neutral salt derived from
// the ion charges.
func (s *Solution) Salt() (memtk.Salt, error) {
	var salt memtk.Salt
	for species, z := range s.charge {
		if z > 0 {
			salt.Cation = species
			salt.ZCation = z
		} else {
			salt.Anion = species
			salt.ZAnion = z
		}
	}
	g := gcd(salt.ZCation, -salt.ZAnion)
	salt.NuCation = -salt.ZAnion / g
	salt.NuAnion = salt.ZCation / g
	return salt, nil
}

// Amount returns the molar concentration of the given species.
func (s *Solution) Amount(species string) (*unit.Unit, error) {
	c, ok := s.conc[species]
	if !ok {
		return nil, fmt.Errorf("bulk: solution does not contain species %q", species)
	}
	return memtk.Molar(c), nil
}

// SetAmount sets the molar concentration of the given species.
func (s *Solution) SetAmount(species string, amount *unit.Unit) error {
	if _, ok := s.conc[species]; !ok {
		return fmt.Errorf("bulk: solution does not contain species %q", species)
	}
	if err := memtk.CheckConcentration(amount, species+" concentration"); err != nil {
		return err
	}
	s.conc[species] = amount.Value()
	return nil
}

// Activity returns the dimensionless activity of the given species,
// γ·C referenced to 1 mol/L.
func (s *Solution) Activity(species string) (float64, error) {
	c, ok := s.conc[species]
	if !ok {
		return 0, fmt.Errorf("bulk: solution does not contain species %q", species)
	}
	return s.gamma[species] * c, nil
}

// SetActivityCoefficient sets the activity coefficient of the given
// species, replacing the ideal default of 1.
func (s *Solution) SetActivityCoefficient(species string, gamma float64) error {
	if _, ok := s.gamma[species]; !ok {
		return fmt.Errorf("bulk: solution does not contain species %q", species)
	}
	s.gamma[species] = gamma
	return nil
}

// ActivityCoefficient returns the activity coefficient of the given
// species.
func (s *Solution) ActivityCoefficient(species string) (float64, error) {
	g, ok := s.gamma[species]
	if !ok {
		return 0, fmt.Errorf("bulk: solution does not contain species %q", species)
	}
	return g, nil
}

// Copy returns an independent copy of the Solution.
func (s *Solution) Copy() memtk.Solution {
	o := &Solution{
		conc:   make(map[string]float64),
		gamma:  make(map[string]float64),
		charge: make(map[string]int),
	}
	for k, v := range s.conc {
		o.conc[k] = v
	}
	for k, v := range s.gamma {
		o.gamma[k] = v
	}
	for k, v := range s.charge {
		o.charge[k] = v
	}
	return o
}
