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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "solver.toml")
	if err := os.WriteFile(f, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadSolverConfig(t *testing.T) {
	f := writeConfig(t, "Tolerance = 1e-8\nMaxIter = 250\n")
	c, err := LoadSolverConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if c.Tolerance != 1e-8 || c.MaxIter != 250 {
		t.Errorf("got %+v", c)
	}
}

// Settings absent from the file keep their defaults.
func TestLoadSolverConfigPartial(t *testing.T) {
	f := writeConfig(t, "MaxIter = 50\n")
	c, err := LoadSolverConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultSolverConfig()
	want.MaxIter = 50
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestLoadSolverConfigInvalid(t *testing.T) {
	tests := []struct {
		name, contents, want string
	}{
		{"negative tolerance", "Tolerance = -1e-6\n", "Tolerance must be positive"},
		{"zero iterations", "MaxIter = 0\n", "MaxIter must be positive"},
		{"malformed", "Tolerance = = 1\n", "reading solver config"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := writeConfig(t, test.contents)
			_, err := LoadSolverConfig(f)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got %v, want an error containing %q", err, test.want)
			}
		})
	}
}

func TestLoadSolverConfigMissingFile(t *testing.T) {
	_, err := LoadSolverConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
