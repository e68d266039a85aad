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

package diffusion

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestMackieMeares(t *testing.T) {
	tests := []struct {
		D, volFrac, want float64
	}{
		{1.5e-9, 1, 1.5e-9}, // pure water, no obstruction
		{1.5e-9, 0, 0},      // dry polymer blocks all transport
		{2, 0.5, 2.0 / 9.0},
		{1, 0.4, 0.0625},
	}
	for _, test := range tests {
		got, err := MackieMeares(test.D, test.volFrac)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbs(got, test.want, 1e-15) {
			t.Errorf("MackieMeares(%v, %v) = %v, want %v", test.D, test.volFrac, got, test.want)
		}
	}
}

func TestMackieMearesRange(t *testing.T) {
	for _, volFrac := range []float64{-0.1, 1.1} {
		if _, err := MackieMeares(1, volFrac); err == nil {
			t.Errorf("expected a range error for volFrac=%v", volFrac)
		}
	}
}
