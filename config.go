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

	"github.com/BurntSushi/toml"
)

// SolverConfig holds the numerical settings of the equilibrium solver.
// Results are deterministic: for identical inputs and settings, the
// solver output is bit-for-bit reproducible.
type SolverConfig struct {
	// Tolerance is the absolute convergence tolerance on the solved
	// co-ion concentration [mol/L].
	Tolerance float64

	// MaxIter bounds the root-finder iteration count.
	MaxIter int
}

// DefaultSolverConfig returns the settings used by Equilibrate:
// tolerance 1e-6 mol/L and an iteration budget of 100.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{Tolerance: 1e-6, MaxIter: 100}
}

// LoadSolverConfig reads solver settings in TOML format from the given
// file. Settings not present in the file keep their default values.
func LoadSolverConfig(filename string) (SolverConfig, error) {
	c := DefaultSolverConfig()
	if _, err := toml.DecodeFile(filename, &c); err != nil {
		return SolverConfig{}, fmt.Errorf("memtk: reading solver config %s: %v", filename, err)
	}
	if c.Tolerance <= 0 {
		return SolverConfig{}, fmt.Errorf("memtk: solver config %s: Tolerance must be positive, got %g", filename, c.Tolerance)
	}
	if c.MaxIter <= 0 {
		return SolverConfig{}, fmt.Errorf("memtk: solver config %s: MaxIter must be positive, got %d", filename, c.MaxIter)
	}
	return c, nil
}
