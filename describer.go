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
	"fmt"
	"strings"

	"github.com/golang/geo/s2"
)

// CellDescriber emits the full metadata triple set for one cell. It
// carries no state across calls; Describe is a pure function of its
// arguments.
type CellDescriber struct {
	IRIs IRIFactory
}

// NewCellDescriber returns a CellDescriber using the given IRIFactory.
func NewCellDescriber(iris IRIFactory) CellDescriber {
	return CellDescriber{IRIs: iris}
}

func cellLabel(c CellIdentity) string {
	return fmt.Sprintf("S2 Cell at level %d with ID %d", c.Level(), c.ID())
}

func cellWKT(c CellIdentity) string {
	cell := s2.CellFromCellID(c.s2CellID())
	var coords []string
	for k := 0; k < 4; k++ {
		ll := s2.LatLngFromPoint(cell.Vertex(k))
		coords = append(coords, fmt.Sprintf("%g %g", ll.Lng.Degrees(), ll.Lat.Degrees()))
	}
	coords = append(coords, coords[0])
	return "POLYGON((" + strings.Join(coords, ", ") + "))"
}

// Describe emits cell's full metadata: type, label, numeric id, area,
// vertex-polygon geometry, neighbor sfTouches edges, and the parent
// sfWithin/sfContains pair. If targetParentLevel is non-nil, the parent
// edge points at that level (via ParentAt) instead of one level up;
// ParentAt's InvalidLevel failure propagates to the caller.
func (d CellDescriber) Describe(c CellIdentity, targetParentLevel *int) ([]Triple, error) {
	const op = "CellDescriber.Describe"
	buf := NewTripleBuffer()
	cellIRI := d.IRIs.CellIRI(c)

	buf.Add(Triple{cellIRI, PredRDFType, IRI(S2CellLevelClass(c.Level()))})
	buf.Add(Triple{cellIRI, PredRDFSLabel, StringLiteral(cellLabel(c))})
	buf.Add(Triple{cellIRI, PredCellID, IntegerLiteral(c.ID())})

	cell := s2.CellFromCellID(c.s2CellID())
	areaM2 := cell.ApproxArea() * earthRadiusMeters * earthRadiusMeters
	buf.Add(Triple{cellIRI, PredGeoHasMetricArea, FloatLiteral(areaM2)})

	geomIRI := d.IRIs.CellGeometryIRI(c)
	buf.Add(Triple{cellIRI, PredGeoHasGeometry, IRI(geomIRI)})
	buf.Add(Triple{cellIRI, PredGeoHasDefaultGeo, IRI(geomIRI)})
	buf.Add(Triple{geomIRI, PredRDFType, IRI(ClassGeometry)})
	buf.Add(Triple{geomIRI, PredRDFType, IRI(ClassSFPolygon)})
	buf.Add(Triple{geomIRI, PredRDFSLabel, StringLiteral(fmt.Sprintf("Geometry of the polygon formed from the vertices of the %s", cellLabel(c)))})
	buf.Add(Triple{geomIRI, PredGeoAsWKT, WKTLiteral(cellWKT(c))})

	for _, n := range c.NeighborsAt(c.Level()) {
		nIRI := d.IRIs.CellIRI(n)
		buf.Add(Triple{cellIRI, PredSfTouches, IRI(nIRI)})
		buf.Add(Triple{nIRI, PredSfTouches, IRI(cellIRI)})
	}

	if c.Level() > 0 && c.Level() < 31 {
		var parent CellIdentity
		var err error
		if targetParentLevel != nil {
			parent, err = c.ParentAt(*targetParentLevel)
		} else {
			parent, err = c.Parent()
		}
		if err != nil {
			return nil, wrapErr(KindInvalidLevel, op, "computing parent edge", err)
		}
		parentIRI := d.IRIs.CellIRI(parent)
		buf.Add(Triple{cellIRI, PredSfWithin, IRI(parentIRI)})
		buf.Add(Triple{parentIRI, PredSfContains, IRI(cellIRI)})
	}

	return buf.Triples(), nil
}
