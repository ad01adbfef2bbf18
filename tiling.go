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
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// TilingEngine turns a feature's geometry into the cell sets the
// relation materializer needs: a saturated interior filling, a
// boundary-overlap covering, a line-crossing covering, and a homogeneous
// covering (the unbuffered exterior covering of a geometry's own shape,
// used to drive overlap mode). It owns no state of its own; the
// GeometryAdapter and Coverer it is given carry the tolerance and level
// bounds for one feature.
type TilingEngine struct {
	Adapter GeometryAdapter

	// MinSaturationExponent and MaxSaturationExponent bound the
	// interior-filling budget-doubling loop (decimal exponents of
	// max_cells), defaulting to DefaultSaturationMinExponent and
	// DefaultSaturationMaxExponent.
	MinSaturationExponent int
	MaxSaturationExponent int

	// SaturationGrowth is the growth-factor threshold (10, by default)
	// below which the filling is considered saturated.
	SaturationGrowth int
}

// NewTilingEngine returns a TilingEngine with the source's default
// saturation constants.
func NewTilingEngine(adapter GeometryAdapter) TilingEngine {
	return TilingEngine{
		Adapter:               adapter,
		MinSaturationExponent: DefaultSaturationMinExponent,
		MaxSaturationExponent: DefaultSaturationMaxExponent,
		SaturationGrowth:      DefaultSaturationGrowth,
	}
}

func ipow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// InteriorFilling computes the saturated interior covering of a Polygon
// or MultiPolygon: starting from max_cells = 10^MinSaturationExponent, it
// raises the budget by one decimal exponent at a time and stops as soon as
// a covering has fewer than max_cells/SaturationGrowth cells, returning
// the last covering computed. Terminates in at most
// MaxSaturationExponent-MinSaturationExponent+1 iterations.
func (e TilingEngine) InteriorFilling(g Geometry, coverer *Coverer) ([]CellIdentity, error) {
	const op = "TilingEngine.InteriorFilling"
	if g.Kind != GeomPolygon && g.Kind != GeomMultiPolygon {
		return nil, newErr(KindUnsupportedGeometry, op, "interior filling requires a Polygon or MultiPolygon")
	}
	region, err := e.Adapter.ToS2Polygon(g)
	if err != nil {
		return nil, err
	}
	growth := e.SaturationGrowth
	if growth < 1 {
		growth = DefaultSaturationGrowth
	}
	var result []CellIdentity
	for exp := e.MinSaturationExponent; exp <= e.MaxSaturationExponent; exp++ {
		if err := coverer.SetMaxCells(ipow(10, exp)); err != nil {
			return nil, err
		}
		result = coverer.InteriorCovering(region)
		if len(result) < ipow(10, exp)/growth {
			break
		}
	}
	return result, nil
}

func polygonRings(g Geometry) ([]orb.Ring, error) {
	const op = "polygonRings"
	switch g.Kind {
	case GeomPolygon:
		return g.Polygon, nil
	case GeomMultiPolygon:
		var rings []orb.Ring
		for _, p := range g.MultiPolygon {
			rings = append(rings, p...)
		}
		return rings, nil
	default:
		return nil, newErr(KindUnsupportedGeometry, op, "requires a Polygon or MultiPolygon")
	}
}

// BoundaryOverlap computes, for each boundary ring of the feature, a
// buffered exterior covering at [min_level,max_level] (as bound on
// coverer), and unions the results across rings. No deduplication across
// rings is performed; the relation materializer emits into a set-valued
// buffer so duplicates are harmless.
func (e TilingEngine) BoundaryOverlap(g Geometry, coverer *Coverer) ([]CellIdentity, error) {
	rings, err := polygonRings(g)
	if err != nil {
		return nil, err
	}
	bufRadius := e.Adapter.Tolerance / 100
	var out []CellIdentity
	for _, ring := range rings {
		buffered := e.Adapter.Buffer([]orb.Point(ring), bufRadius)
		if len(buffered) == 0 {
			continue
		}
		region, err := e.Adapter.ToS2Polygon(Geometry{Kind: GeomPolygon, Polygon: buffered})
		if err != nil {
			return nil, err
		}
		out = append(out, coverer.Covering(region)...)
	}
	return out, nil
}

// LineCrossing computes a buffered exterior covering of a LineString or
// MultiLineString at [min_level,max_level].
func (e TilingEngine) LineCrossing(g Geometry, coverer *Coverer) ([]CellIdentity, error) {
	const op = "TilingEngine.LineCrossing"
	var lines []orb.LineString
	switch g.Kind {
	case GeomLineString:
		lines = []orb.LineString{g.LineString}
	case GeomMultiLineString:
		lines = g.MultiLineString
	default:
		return nil, newErr(KindUnsupportedGeometry, op, "line crossing requires a LineString or MultiLineString")
	}
	bufRadius := e.Adapter.Tolerance / 100
	var out []CellIdentity
	for _, line := range lines {
		buffered := e.Adapter.Buffer([]orb.Point(line), bufRadius)
		if len(buffered) == 0 {
			continue
		}
		region, err := e.Adapter.ToS2Polygon(Geometry{Kind: GeomPolygon, Polygon: buffered})
		if err != nil {
			return nil, err
		}
		out = append(out, coverer.Covering(region)...)
	}
	return out, nil
}

// PointContainment returns the single cell enclosing a Point: the leaf
// cell's immediate parent, one level up.
func (e TilingEngine) PointContainment(g Geometry) (CellIdentity, error) {
	const op = "TilingEngine.PointContainment"
	if g.Kind != GeomPoint {
		return CellIdentity{}, newErr(KindUnsupportedGeometry, op, "point containment requires a Point")
	}
	leaf := FromPoint(g.Point[1], g.Point[0])
	return leaf.Parent()
}

// HomogeneousCovering computes the unbuffered exterior covering of a
// geometry's own shape, bounded by [min_level,max_level] and max_cells
// on coverer: the single-pass covering overlap mode drives over a
// union-all'd batch of feature geometries, as opposed to
// BoundaryOverlap/LineCrossing's buffered approximations. Grounded on
// GeometricFeature.covering, which calls S2RegionCoverer.GetCovering
// directly on the geometry's s2_approximation with no buffer step.
func (e TilingEngine) HomogeneousCovering(g Geometry, coverer *Coverer) ([]CellIdentity, error) {
	const op = "TilingEngine.HomogeneousCovering"
	switch g.Kind {
	case GeomPolygon, GeomMultiPolygon:
		region, err := e.Adapter.ToS2Polygon(g)
		if err != nil {
			return nil, err
		}
		return coverer.Covering(region), nil
	case GeomLinearRing:
		region, err := e.Adapter.ToS2Polygon(Geometry{Kind: GeomPolygon, Polygon: orb.Polygon{g.LinearRing}})
		if err != nil {
			return nil, err
		}
		return coverer.Covering(region), nil
	case GeomLineString:
		line, err := e.Adapter.ToS2Polyline(g)
		if err != nil {
			return nil, err
		}
		return coverer.Covering(&line), nil
	case GeomMultiLineString:
		var out []CellIdentity
		for _, ls := range g.MultiLineString {
			line, err := e.Adapter.ToS2Polyline(Geometry{Kind: GeomLineString, LineString: ls})
			if err != nil {
				return nil, err
			}
			out = append(out, coverer.Covering(&line)...)
		}
		return out, nil
	case GeomPoint:
		pt, err := e.Adapter.ToS2Point(g)
		if err != nil {
			return nil, err
		}
		return []CellIdentity{FromID(uint64(s2.CellIDFromPoint(pt).Parent(coverer.MaxLevel())))}, nil
	default:
		return nil, newErr(KindUnsupportedGeometry, op, "homogeneous covering requires a supported geometry kind")
	}
}
