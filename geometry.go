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
	"math"

	"github.com/ctessum/polyclip-go"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// GeometryKind tags the closed variant of planar geometries this package
// understands. Dispatch is on this tag rather than a type hierarchy;
// unknown kinds fail fast with UnsupportedGeometry.
type GeometryKind int

// The closed geometry variant.
const (
	GeomPoint GeometryKind = iota
	GeomLineString
	GeomMultiLineString
	GeomLinearRing
	GeomPolygon
	GeomMultiPolygon
)

// Geometry is a tagged union over the planar geometry kinds this pipeline
// accepts, in WGS84 longitude/latitude degrees.
type Geometry struct {
	Kind            GeometryKind
	Point           orb.Point
	LineString      orb.LineString
	MultiLineString orb.MultiLineString
	LinearRing      orb.Ring
	Polygon         orb.Polygon
	MultiPolygon    orb.MultiPolygon
}

// FromOrb maps an orb.Geometry (as produced by the WKT parser
// collaborator) onto the closed Geometry variant, failing with
// UnsupportedGeometry for anything outside it (bounds, collections,
// multi-points).
func FromOrb(g orb.Geometry) (Geometry, error) {
	const op = "FromOrb"
	switch v := g.(type) {
	case orb.Point:
		return Geometry{Kind: GeomPoint, Point: v}, nil
	case orb.LineString:
		return Geometry{Kind: GeomLineString, LineString: v}, nil
	case orb.MultiLineString:
		return Geometry{Kind: GeomMultiLineString, MultiLineString: v}, nil
	case orb.Ring:
		return Geometry{Kind: GeomLinearRing, LinearRing: v}, nil
	case orb.Polygon:
		return Geometry{Kind: GeomPolygon, Polygon: v}, nil
	case orb.MultiPolygon:
		return Geometry{Kind: GeomMultiPolygon, MultiPolygon: v}, nil
	default:
		return Geometry{}, newErr(KindUnsupportedGeometry, op, "geometry kind not in the supported variant set")
	}
}

// GeometryAdapter converts planar WGS84-degree geometry into its
// spherical S2 approximation: orientation-normalized, segmentized to
// Tolerance, and (for the boundary/crossing queries) buffered.
type GeometryAdapter struct {
	Tolerance float64
}

// NewGeometryAdapter returns an adapter with the given tolerance, or
// DefaultTolerance if tolerance <= 0.
func NewGeometryAdapter(tolerance float64) GeometryAdapter {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return GeometryAdapter{Tolerance: tolerance}
}

// signedArea computes the planar shoelace signed area of a ring in input
// coordinates. It is not corrected for spherical distortion; see the
// design notes on antimeridian/pole orientation.
func signedArea(ring []orb.Point) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p0 := ring[i]
		p1 := ring[(i+1)%n]
		sum += p0[0]*p1[1] - p1[0]*p0[1]
	}
	return sum / 2
}

// orient returns a copy of ring whose signed area has the requested
// sign: a ring whose signed area divided by sign is non-negative is kept
// as-is, otherwise it is reversed.
func orient(ring []orb.Point, sign float64) []orb.Point {
	area := signedArea(ring)
	if area/sign >= 0 {
		out := make([]orb.Point, len(ring))
		copy(out, ring)
		return out
	}
	out := make([]orb.Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

func planarDistance(a, b orb.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Hypot(dx, dy)
}

// segmentize inserts intermediate vertices so that no two adjacent
// vertices are farther apart than tolerance, bounding the geodesic
// deviation introduced by replacing planar segments with S2 great-circle
// edges.
func segmentize(points []orb.Point, tolerance float64) []orb.Point {
	if tolerance <= 0 || len(points) < 2 {
		out := make([]orb.Point, len(points))
		copy(out, points)
		return out
	}
	out := make([]orb.Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		d := planarDistance(p0, p1)
		n := int(math.Ceil(d / tolerance))
		for k := 1; k < n; k++ {
			t := float64(k) / float64(n)
			out = append(out, orb.Point{
				p0[0] + (p1[0]-p0[0])*t,
				p0[1] + (p1[1]-p0[1])*t,
			})
		}
		out = append(out, p1)
	}
	return out
}

func dropClosingVertex(ring []orb.Point) []orb.Point {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

func s2PointFrom(p orb.Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0]))
}

// ToS2Point converts a Point geometry to its S2 analog.
func (a GeometryAdapter) ToS2Point(g Geometry) (s2.Point, error) {
	const op = "GeometryAdapter.ToS2Point"
	if g.Kind != GeomPoint {
		return s2.Point{}, newErr(KindUnsupportedGeometry, op, "geometry is not a Point")
	}
	return s2PointFrom(g.Point), nil
}

// orientedSegmentizedLoop applies orientation normalization (to sign)
// then segmentation, and drops the closing vertex, as the algorithmic
// contract requires before lifting a ring to S2.
func (a GeometryAdapter) orientedSegmentizedLoop(ring []orb.Point, sign float64) *s2.Loop {
	r := orient(dropClosingVertex(ring), sign)
	r = segmentize(r, a.Tolerance)
	pts := make([]s2.Point, len(r))
	for i, p := range r {
		pts[i] = s2PointFrom(p)
	}
	return s2.LoopFromPoints(pts)
}

// ToS2Polyline converts a LineString to its S2 analog, after
// segmentation (no orientation concept applies to an open line).
func (a GeometryAdapter) ToS2Polyline(g Geometry) (s2.Polyline, error) {
	const op = "GeometryAdapter.ToS2Polyline"
	if g.Kind != GeomLineString {
		return nil, newErr(KindUnsupportedGeometry, op, "geometry is not a LineString")
	}
	pts := segmentize([]orb.Point(g.LineString), a.Tolerance)
	out := make(s2.Polyline, len(pts))
	for i, p := range pts {
		out[i] = s2PointFrom(p)
	}
	return out, nil
}

// ToS2Polygon converts a Polygon or MultiPolygon to one nested S2Polygon:
// for each boundary ring of each constituent polygon, orient (exterior
// rings sign +1, interior rings sign -1) then convert, then build the
// polygon from all resulting loops (the Go analog of the C++ API's
// InitNested).
func (a GeometryAdapter) ToS2Polygon(g Geometry) (*s2.Polygon, error) {
	const op = "GeometryAdapter.ToS2Polygon"
	var polys []orb.Polygon
	switch g.Kind {
	case GeomPolygon:
		polys = []orb.Polygon{g.Polygon}
	case GeomMultiPolygon:
		polys = []orb.Polygon(g.MultiPolygon)
	default:
		return nil, newErr(KindUnsupportedGeometry, op, "geometry is not a Polygon or MultiPolygon")
	}
	var loops []*s2.Loop
	for _, poly := range polys {
		for i, ring := range poly {
			sign := 1.0
			if i > 0 {
				sign = -1.0
			}
			loops = append(loops, a.orientedSegmentizedLoop([]orb.Point(ring), sign))
		}
	}
	return s2.PolygonFromLoops(loops), nil
}

// bufferQuadSegs is the quad-segments parameter for boundary/crossing
// buffering: 2 segments per circular quarter-arc, matching the source's
// deliberately coarse end caps (the buffer width is much smaller than the
// segmentation step, so cap fidelity barely matters).
const bufferQuadSegs = 2

func toPolyclip(ring []orb.Point) polyclip.Polygon {
	c := make(polyclip.Contour, len(ring))
	for i, p := range ring {
		c[i] = polyclip.Point{X: p[0], Y: p[1]}
	}
	return polyclip.Polygon{c}
}

func fromPolyclip(p polyclip.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, c := range p {
		ring := make(orb.Ring, len(c)+1)
		for j, pt := range c {
			ring[j] = orb.Point{pt.X, pt.Y}
		}
		ring[len(c)] = ring[0]
		out[i] = ring
	}
	return out
}

// segmentBuffer returns a small polygon covering the disk of the given
// radius around segment (p0,p1): the segment's offset rectangle plus a
// quad-segmented circular cap at each endpoint.
func segmentBuffer(p0, p1 orb.Point, radius float64, quadSegs int) polyclip.Polygon {
	dx, dy := p1[0]-p0[0], p1[1]-p0[1]
	length := math.Hypot(dx, dy)
	var nx, ny float64
	if length > 0 {
		nx, ny = -dy/length*radius, dx/length*radius
	} else {
		nx, ny = radius, 0
	}
	var contour polyclip.Contour
	contour = append(contour, polyclip.Point{X: p0[0] + nx, Y: p0[1] + ny})
	contour = append(contour, polyclip.Point{X: p1[0] + nx, Y: p1[1] + ny})
	appendCap(&contour, p1, math.Atan2(ny, nx), -math.Pi, radius, quadSegs)
	contour = append(contour, polyclip.Point{X: p1[0] - nx, Y: p1[1] - ny})
	contour = append(contour, polyclip.Point{X: p0[0] - nx, Y: p0[1] - ny})
	appendCap(&contour, p0, math.Atan2(-ny, -nx), -math.Pi, radius, quadSegs)
	return polyclip.Polygon{contour}
}

// appendCap appends points along a semicircular cap of the given radius
// centered at c, starting at angle start and sweeping through sweep
// radians, with quadSegs segments per quarter circle.
func appendCap(contour *polyclip.Contour, c orb.Point, start, sweep float64, radius float64, quadSegs int) {
	segs := quadSegs * 2
	if segs < 1 {
		segs = 1
	}
	for i := 1; i < segs; i++ {
		a := start + sweep*float64(i)/float64(segs)
		*contour = append(*contour, polyclip.Point{X: c[0] + radius*math.Cos(a), Y: c[1] + radius*math.Sin(a)})
	}
}

// polygonToPolyclip converts every ring of poly (exterior plus any
// holes) into one polyclip.Polygon, one contour per ring.
func polygonToPolyclip(poly orb.Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, len(poly))
	for i, ring := range poly {
		out[i] = toPolyclip([]orb.Point(ring))[0]
	}
	return out
}

// unionPolygons combines a batch of polygons into one via polyclip-go's
// boolean union, the planar stand-in for shapely's union_all.
func unionPolygons(polys []orb.Polygon) orb.Polygon {
	result := polygonToPolyclip(polys[0])
	for _, p := range polys[1:] {
		result = result.Construct(polyclip.UNION, polygonToPolyclip(p))
	}
	return fromPolyclip(result)
}

// UnionAll combines a batch of feature geometries the way overlap
// mode's union-all batching does before computing one shared
// homogeneous covering (source: shapely.union_all in
// s2_overlap_generator.py's get_ids). Polygon-like members are unioned
// into one polygon via polyclip-go; line-like members are concatenated
// into one MultiLineString (HomogeneousCovering already unions line
// coverings per constituent line, so no boolean union is needed there);
// every other kind (points, bare rings) passes through unchanged.
// The polygon-like and the line-like members are each replaced by one
// representative Geometry; pass-through members are returned one for one.
func (a GeometryAdapter) UnionAll(geoms []Geometry) []Geometry {
	var polys []orb.Polygon
	var lines []orb.LineString
	var out []Geometry
	for _, g := range geoms {
		switch g.Kind {
		case GeomPolygon:
			polys = append(polys, g.Polygon)
		case GeomMultiPolygon:
			polys = append(polys, []orb.Polygon(g.MultiPolygon)...)
		case GeomLineString:
			lines = append(lines, g.LineString)
		case GeomMultiLineString:
			lines = append(lines, []orb.LineString(g.MultiLineString)...)
		default:
			out = append(out, g)
		}
	}
	if len(polys) > 0 {
		out = append(out, Geometry{Kind: GeomPolygon, Polygon: unionPolygons(polys)})
	}
	if len(lines) > 0 {
		out = append(out, Geometry{Kind: GeomMultiLineString, MultiLineString: lines})
	}
	return out
}

// Buffer applies a planar buffer of the given radius to a boundary ring
// or line string, segmentized first so the per-segment buffers tile the
// curve without large gaps, then unioned into one polygon via
// polyclip-go's boolean union.
func (a GeometryAdapter) Buffer(points []orb.Point, radius float64) orb.Polygon {
	pts := segmentize(points, a.Tolerance)
	if len(pts) < 2 {
		return orb.Polygon{}
	}
	result := segmentBuffer(pts[0], pts[1], radius, bufferQuadSegs)
	for i := 2; i < len(pts); i++ {
		seg := segmentBuffer(pts[i-1], pts[i], radius, bufferQuadSegs)
		result = result.Construct(polyclip.UNION, seg)
	}
	return fromPolyclip(result)
}
