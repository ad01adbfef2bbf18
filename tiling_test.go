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

	"github.com/paulmach/orb"
)

func bigCCWSquare() orb.Ring {
	return orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
}

func TestInteriorFillingRejectsNonPolygon(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 16, 8)
	g := Geometry{Kind: GeomLineString, LineString: orb.LineString{{0, 0}, {1, 1}}}
	if _, err := e.InteriorFilling(g, coverer); err == nil {
		t.Fatal("expected UnsupportedGeometry for a LineString")
	} else if e2, ok := err.(*Error); !ok || e2.Kind != KindUnsupportedGeometry {
		t.Errorf("have %#v, want KindUnsupportedGeometry", err)
	}
}

func TestInteriorFillingTerminatesWithCells(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	e.MinSaturationExponent = 1
	e.MaxSaturationExponent = 3
	coverer := NewCoverer(0, 16, 8)
	g := Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{bigCCWSquare()}}
	cells, err := e.InteriorFilling(g, coverer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected a non-empty interior filling of a 4x4 degree square")
	}
	if coverer.MaxCells() < ipow(10, e.MinSaturationExponent) {
		t.Errorf("coverer max_cells %d never reached the starting budget 10^%d", coverer.MaxCells(), e.MinSaturationExponent)
	}
}

func TestIpow(t *testing.T) {
	cases := []struct{ base, exp, want int }{
		{10, 0, 1},
		{10, 1, 10},
		{10, 4, 10000},
		{2, 3, 8},
	}
	for _, c := range cases {
		if got := ipow(c.base, c.exp); got != c.want {
			t.Errorf("ipow(%d,%d) = %d, want %d", c.base, c.exp, got, c.want)
		}
	}
}

func TestPolygonRingsCollectsMultiPolygonRings(t *testing.T) {
	mp := orb.MultiPolygon{
		{bigCCWSquare()},
		{bigCCWSquare()},
	}
	g := Geometry{Kind: GeomMultiPolygon, MultiPolygon: mp}
	rings, err := polygonRings(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rings) != 2 {
		t.Errorf("have %d rings, want 2", len(rings))
	}
}

func TestPolygonRingsRejectsPoint(t *testing.T) {
	g := Geometry{Kind: GeomPoint, Point: orb.Point{0, 0}}
	if _, err := polygonRings(g); err == nil {
		t.Fatal("expected UnsupportedGeometry for a Point")
	}
}

func TestBoundaryOverlapReturnsCellsNearTheRing(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 16, 16)
	g := Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{bigCCWSquare()}}
	cells, err := e.BoundaryOverlap(g, coverer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected a non-empty boundary-overlap covering")
	}
}

func TestLineCrossingRejectsPolygon(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 16, 16)
	g := Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{bigCCWSquare()}}
	if _, err := e.LineCrossing(g, coverer); err == nil {
		t.Fatal("expected UnsupportedGeometry for a Polygon")
	}
}

func TestLineCrossingReturnsCellsNearTheLine(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 16, 16)
	g := Geometry{Kind: GeomLineString, LineString: orb.LineString{{0, 0}, {2, 2}, {4, 0}}}
	cells, err := e.LineCrossing(g, coverer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected a non-empty line-crossing covering")
	}
}

func TestPointContainmentReturnsParentOfLeafCell(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	g := Geometry{Kind: GeomPoint, Point: orb.Point{2, 2}}
	c, err := e.PointContainment(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf := FromPoint(2, 2)
	want, err := leaf.Parent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Equal(want) {
		t.Errorf("have cell %d, want %d", c.ID(), want.ID())
	}
}

func TestPointContainmentRejectsNonPoint(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	g := Geometry{Kind: GeomLineString, LineString: orb.LineString{{0, 0}, {1, 1}}}
	if _, err := e.PointContainment(g); err == nil {
		t.Fatal("expected UnsupportedGeometry for a LineString")
	}
}

func TestInteriorFillingBreaksOnFirstExponentBelowGrowth(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.001))
	e.MinSaturationExponent = 4
	e.MaxSaturationExponent = 8
	e.SaturationGrowth = 10
	coverer := NewCoverer(0, 8, 8)
	// A tiny square: its natural filling at level<=8 saturates far below
	// the 10^4 starting budget, so the loop should break immediately.
	tiny := orb.Ring{{0, 0}, {0.01, 0}, {0.01, 0.01}, {0, 0.01}, {0, 0}}
	g := Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{tiny}}
	if _, err := e.InteriorFilling(g, coverer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coverer.MaxCells() != ipow(10, e.MinSaturationExponent) {
		t.Errorf("have max_cells %d, want the loop to break at the first exponent (10^%d)", coverer.MaxCells(), e.MinSaturationExponent)
	}
}

func TestInteriorFillingRespectsCustomSaturationGrowth(t *testing.T) {
	lenient := NewTilingEngine(NewGeometryAdapter(0.5))
	lenient.MinSaturationExponent = 1
	lenient.MaxSaturationExponent = 4
	lenient.SaturationGrowth = 1
	coverer := NewCoverer(0, 16, 8)
	g := Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{bigCCWSquare()}}
	if _, err := lenient.InteriorFilling(g, coverer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coverer.MaxCells() != ipow(10, lenient.MaxSaturationExponent) {
		t.Errorf("have max_cells %d, want the loop to run to the max exponent (10^%d) with growth=1", coverer.MaxCells(), lenient.MaxSaturationExponent)
	}
}

func TestHomogeneousCoveringOfPolygonReturnsCells(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 1, 64)
	g := Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{bigCCWSquare()}}
	cells, err := e.HomogeneousCovering(g, coverer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected a non-empty homogeneous covering of a 4x4 degree square")
	}
}

func TestHomogeneousCoveringOfMultiLineStringUnionsPerLine(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 16, 16)
	g := Geometry{
		Kind: GeomMultiLineString,
		MultiLineString: orb.MultiLineString{
			{{0, 0}, {1, 1}},
			{{10, 10}, {11, 11}},
		},
	}
	cells, err := e.HomogeneousCovering(g, coverer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected a non-empty covering of two disjoint lines")
	}
}

func TestHomogeneousCoveringOfPointReturnsOneCellAtMaxLevel(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 10, 8)
	g := Geometry{Kind: GeomPoint, Point: orb.Point{2, 2}}
	cells, err := e.HomogeneousCovering(g, coverer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("have %d cells, want 1 for a point", len(cells))
	}
	if cells[0].Level() != 10 {
		t.Errorf("have level %d, want the coverer's max level 10", cells[0].Level())
	}
}

func TestHomogeneousCoveringRejectsUnsupportedKind(t *testing.T) {
	e := NewTilingEngine(NewGeometryAdapter(0.5))
	coverer := NewCoverer(0, 16, 16)
	g := Geometry{}
	g.Kind = GeometryKind(-1)
	if _, err := e.HomogeneousCovering(g, coverer); err == nil {
		t.Fatal("expected UnsupportedGeometry for an unrecognized kind")
	}
}
