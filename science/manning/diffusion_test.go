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
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// Reference value computed at the default truncation order for the
// nominal condensed case xi = 2, Cfix = 5, Cs = 0.5 (x = 1, y = 5).
func TestLatticeSum(t *testing.T) {
	got, err := A(1, 5, monovalent)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(got, 0.35295440167760833, 1e-12) {
		t.Errorf("A(1, 5) = %v, want 0.35295440167760833", got)
	}
}

// Doubling the truncation order must only move the sixth significant
// digit, so n = 50 is converged to the three digits the literature
// comparisons need.
func TestLatticeSumConvergence(t *testing.T) {
	a50, err := LatticeSum(1, 5, monovalent, 50)
	if err != nil {
		t.Fatal(err)
	}
	a100, err := LatticeSum(1, 5, monovalent, 100)
	if err != nil {
		t.Fatal(err)
	}
	rel := math.Abs(a100-a50) / a50
	if rel > 2.5e-4 {
		t.Errorf("relative truncation change %g between n=50 and n=100 is too large", rel)
	}
	if a50 == a100 {
		t.Error("truncation orders 50 and 100 should not agree exactly")
	}
}

func TestLatticeSumDomain(t *testing.T) {
	if _, err := LatticeSum(0, 5, monovalent, 50); err == nil {
		t.Error("expected a domain error for x = 0")
	}
	if _, err := LatticeSum(1, 0, monovalent, 50); err == nil {
		t.Error("expected a domain error for y = 0")
	}
	if _, err := LatticeSum(-1, 5, monovalent, 50); err == nil {
		t.Error("expected a domain error for x < 0")
	}
}

// Co-ion diffusion coefficient against the condensed-regime literature
// case xi = 2, Cfix = -3.21, Cs = 1, phi_w = 0.5.
func TestDiffusionAgainstLit(t *testing.T) {
	got, err := DiffusionCoefficient(2, -3.21, 1, 0.5, RoleCo, monovalent)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(got, 0.1008, 1e-3) {
		t.Errorf("co-ion: got %v, want 0.1008", got)
	}
	got, err = DiffusionCoefficient(2, -3.21, 1, 0.5, RoleCounter, monovalent)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(got, 0.062386543189391616, 1e-9) {
		t.Errorf("counter-ion: got %v", got)
	}
}

// The condensed and uncondensed expressions must agree at the critical
// value of the Manning parameter.
func TestDiffusionContinuity(t *testing.T) {
	for _, role := range []string{RoleCounter, RoleCo} {
		below, err := DiffusionCoefficient(0.99, -2.66, 0.0007, 0.3, role, monovalent)
		if err != nil {
			t.Fatal(err)
		}
		above, err := DiffusionCoefficient(1.01, -2.66, 0.0007, 0.3, role, monovalent)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbs(below, above, 0.01) {
			t.Errorf("%s diffusion coefficient is discontinuous at xi_c: %g below vs %g above",
				role, below, above)
		}
	}
}

func TestDiffusionBadInput(t *testing.T) {
	if _, err := DiffusionCoefficient(2, -3.21, 1, 0.5, RoleMean, monovalent); err == nil {
		t.Error("expected an invalid role error for the mean role")
	}
	if _, err := DiffusionCoefficient(2, 3.21, 1, 0.5, RoleCo, monovalent); err == nil {
		t.Error("expected a sign mismatch error")
	}
	_, err := DiffusionCoefficient(2, -3.21, 1, 1.5, RoleCo, monovalent)
	if err == nil || !strings.Contains(err.Error(), "volume fraction") {
		t.Errorf("expected a volume fraction range error, got %v", err)
	}
}
