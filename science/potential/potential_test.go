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

package potential

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestApparentPermselectivity(t *testing.T) {
	tests := []struct {
		name                  string
		Emem, Eideal, tCation float64
		want                  float64
	}{
		{"no potential means no selectivity", 0, -40, 0.5, 0},
		{"ideal potential means perfect selectivity", -40, -40, 0.5, 1},
		{"mirrored potentials agree", 40, 40, 0.5, 1},
		{"partial selectivity", 30, 40, 0.5, 0.75},
		{"reported NaCl measurement", 35, 37.8, 0.396, 0.9386},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ApparentPermselectivity(test.Emem, test.Eideal, test.tCation)
			if err != nil {
				t.Fatal(err)
			}
			if !floats.EqualWithinAbs(got, test.want, 1e-4) {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestApparentPermselectivityRange(t *testing.T) {
	for _, tc := range []float64{2, -2} {
		if _, err := ApparentPermselectivity(-40, -40, tc); err == nil {
			t.Errorf("expected a range error for transport number %v", tc)
		}
	}
}
