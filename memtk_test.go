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
	"strings"
	"testing"

	"github.com/ctessum/unit"
)

func TestCheckDims(t *testing.T) {
	if err := CheckConcentration(Molar(0.5), "salt concentration"); err != nil {
		t.Error(err)
	}
	if err := CheckDims(Volts(0.04), Potential, "membrane potential"); err != nil {
		t.Error(err)
	}

	err := CheckConcentration(nil, "salt concentration")
	if err == nil || !strings.Contains(err.Error(), "missing unit") {
		t.Errorf("got %v, want a missing unit error", err)
	}
	if !strings.Contains(err.Error(), "salt concentration") {
		t.Errorf("error %v does not name the offending quantity", err)
	}

	err = CheckConcentration(Volts(0.5), "salt concentration")
	if err == nil {
		t.Error("expected a dimensionality error")
	}

	// A dimensionless quantity carries empty dimensions, not nil.
	if err := CheckDims(unit.New(0.3, Dimless), Dimless, "volume fraction"); err != nil {
		t.Error(err)
	}
}

func TestQuantityConstructors(t *testing.T) {
	c := Molar(1.5)
	if c.Value() != 1.5 {
		t.Errorf("Molar(1.5).Value() = %v", c.Value())
	}
	if err := c.Check(Concentration); err != nil {
		t.Error(err)
	}
	if !c.Dimensions().Matches(Concentration) {
		t.Errorf("Molar dimensions = %v, want %v", c.Dimensions(), Concentration)
	}
	v := Volts(0.04)
	if err := v.Check(Potential); err != nil {
		t.Error(err)
	}
}
