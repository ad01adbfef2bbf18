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

// RelationMaterializer turns a feature's geometry into the topological
// relation triples between that feature and the cells the TilingEngine
// discovers for it. It never emits cell metadata; that is CellDescriber's
// job, invoked separately by the run mode when cell metadata is wanted.
type RelationMaterializer struct {
	Tiling TilingEngine
	IRIs   IRIFactory
}

// NewRelationMaterializer returns a RelationMaterializer over the given
// tiling engine and IRI factory.
func NewRelationMaterializer(tiling TilingEngine, iris IRIFactory) RelationMaterializer {
	return RelationMaterializer{Tiling: tiling, IRIs: iris}
}

// Materialize dispatches on geom's kind and returns the topological
// relation triples between featureIRI and the cells covering geom, using
// coverer for the boundary/crossing/interior queries. It fails with
// UnsupportedGeometry for any geometry kind outside Polygon, MultiPolygon,
// LineString, MultiLineString, and Point.
func (m RelationMaterializer) Materialize(featureIRI string, geom Geometry, coverer *Coverer) ([]Triple, error) {
	const op = "RelationMaterializer.Materialize"
	buf := NewTripleBuffer()

	switch geom.Kind {
	case GeomPolygon, GeomMultiPolygon:
		interior, err := m.Tiling.InteriorFilling(geom, coverer)
		if err != nil {
			return nil, err
		}
		for _, c := range interior {
			cIRI := m.IRIs.CellIRI(c)
			buf.Add(Triple{featureIRI, PredSfContains, IRI(cIRI)})
			buf.Add(Triple{cIRI, PredSfWithin, IRI(featureIRI)})
		}
		boundary, err := m.Tiling.BoundaryOverlap(geom, coverer)
		if err != nil {
			return nil, err
		}
		for _, c := range boundary {
			cIRI := m.IRIs.CellIRI(c)
			buf.Add(Triple{featureIRI, PredSfOverlaps, IRI(cIRI)})
			buf.Add(Triple{cIRI, PredSfOverlaps, IRI(featureIRI)})
		}

	case GeomLineString, GeomMultiLineString:
		crossing, err := m.Tiling.LineCrossing(geom, coverer)
		if err != nil {
			return nil, err
		}
		for _, c := range crossing {
			cIRI := m.IRIs.CellIRI(c)
			buf.Add(Triple{featureIRI, PredSfCrosses, IRI(cIRI)})
			buf.Add(Triple{cIRI, PredSfCrosses, IRI(featureIRI)})
		}

	case GeomPoint:
		cell, err := m.Tiling.PointContainment(geom)
		if err != nil {
			return nil, err
		}
		cIRI := m.IRIs.CellIRI(cell)
		buf.Add(Triple{featureIRI, PredSfWithin, IRI(cIRI)})
		buf.Add(Triple{cIRI, PredSfContains, IRI(featureIRI)})

	default:
		return nil, newErr(KindUnsupportedGeometry, op, "geometry kind not in the supported variant set")
	}

	return buf.Triples(), nil
}
