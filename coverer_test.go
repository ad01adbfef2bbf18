/*
Copyright © 2026 the s2rdf authors.
This file is part of s2rdf.

s2rdf is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

s2rdf is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with s2rdf.  If not, see <http://www.gnu.org/licenses/>.
*/

package s2rdf

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

func TestNewCovererDefaults(t *testing.T) {
	c := NewCoverer(-1, -1, 0)
	if c.MinLevel() != 0 {
		t.Errorf("have min level %d, want 0", c.MinLevel())
	}
	if c.MaxLevel() != 30 {
		t.Errorf("have max level %d, want 30", c.MaxLevel())
	}
	if c.MaxCells() != 8 {
		t.Errorf("have max cells %d, want 8", c.MaxCells())
	}
}

func TestNewCovererExplicitBounds(t *testing.T) {
	c := NewCoverer(4, 12, 100)
	if c.MinLevel() != 4 || c.MaxLevel() != 12 || c.MaxCells() != 100 {
		t.Errorf("have (%d,%d,%d), want (4,12,100)", c.MinLevel(), c.MaxLevel(), c.MaxCells())
	}
}

func TestSetMinLevelRejectsAboveMax(t *testing.T) {
	c := NewCoverer(0, 10, 8)
	if err := c.SetMinLevel(11); err == nil {
		t.Fatal("expected InvalidConfig setting min_level above max_level")
	}
	if c.MinLevel() != 0 {
		t.Error("a rejected SetMinLevel must not mutate the coverer")
	}
}

func TestSetMaxLevelRejectsBelowMin(t *testing.T) {
	c := NewCoverer(5, 10, 8)
	if err := c.SetMaxLevel(4); err == nil {
		t.Fatal("expected InvalidConfig setting max_level below min_level")
	}
}

func TestSetMaxCellsRejectsNonPositive(t *testing.T) {
	c := NewCoverer(0, 10, 8)
	if err := c.SetMaxCells(0); err == nil {
		t.Fatal("expected InvalidConfig setting max_cells to 0")
	}
}

func TestCoveringRespectsLevelBounds(t *testing.T) {
	c := NewCoverer(2, 4, 200)
	region := s2.CapFromCenterAngle(s2.PointFromLatLng(s2.LatLngFromDegrees(0, 0)), s1.Angle(0.2))
	cells := c.Covering(region)
	if len(cells) == 0 {
		t.Fatal("expected a non-empty covering of a small cap")
	}
	for _, cell := range cells {
		if cell.Level() < 2 || cell.Level() > 4 {
			t.Errorf("cell level %d outside [2,4]", cell.Level())
		}
	}
}

func TestInteriorCoveringIsSubsetOfCovering(t *testing.T) {
	c := NewCoverer(0, 16, 500)
	region := s2.CapFromCenterAngle(s2.PointFromLatLng(s2.LatLngFromDegrees(10, 10)), s1.Angle(0.05))
	exterior := c.Covering(region)
	interior := c.InteriorCovering(region)
	if len(interior) > len(exterior) {
		t.Errorf("interior covering (%d cells) larger than exterior covering (%d cells)", len(interior), len(exterior))
	}
}
