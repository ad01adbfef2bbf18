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
	"net/url"
)

// BaseIRI is the default resource namespace. A deployment may override it
// through IRIFactory.Base; the literal value here matches the one used in
// worked examples (S1 in the testable-properties scenarios).
const BaseIRI = "http://stko-kwg.geog.ucsb.edu"

// Prefix bindings used throughout the emitted graph.
const (
	PrefixKWGR   = "kwgr"
	PrefixKWGOnt = "kwg-ont"
	PrefixGeo    = "geo"
	PrefixSF     = "sf"
	PrefixRDF    = "rdf"
	PrefixRDFS   = "rdfs"
	PrefixXSD    = "xsd"
)

// Namespace IRIs for the bound prefixes.
const (
	NSGeo  = "http://www.opengis.net/ont/geosparql#"
	NSSF   = "http://www.opengis.net/ont/sf#"
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Predicates used by CellDescriber and RelationMaterializer.
const (
	PredSfEquals         = NSSF + "sfEquals"
	PredSfContains       = NSSF + "sfContains"
	PredSfWithin         = NSSF + "sfWithin"
	PredSfTouches        = NSSF + "sfTouches"
	PredSfOverlaps       = NSSF + "sfOverlaps"
	PredSfCrosses        = NSSF + "sfCrosses"
	PredRDFType          = NSRDF + "type"
	PredRDFSLabel        = NSRDFS + "label"
	PredGeoHasGeometry   = NSGeo + "hasGeometry"
	PredGeoHasDefaultGeo = NSGeo + "hasDefaultGeometry"
	PredGeoHasMetricArea = NSGeo + "hasMetricArea"
	PredGeoAsWKT         = NSGeo + "asWKT"
)

// kwg-ont predicates and classes specific to this ontology, not part of
// GeoSPARQL proper.
const (
	kwgOntBase   = "http://stko-kwg.geog.ucsb.edu/lod/ontology/"
	PredCellID   = kwgOntBase + "cellID"
	PredVertexPG = kwgOntBase + "vertexPolygon"
)

// ClassGeometry and ClassSFPolygon are the GeoSPARQL classes every cell
// geometry resource belongs to.
const (
	ClassGeometry  = NSGeo + "Geometry"
	ClassSFPolygon = NSSF + "Polygon"
)

// S2CellLevelClass returns the kwg-ont:S2Cell_LevelN class IRI for level
// n. n is expected to be in [0,13] per the closed vocabulary, but this
// function does not enforce that — CellDescriber always calls it with a
// real cell level, which may legitimately exceed 13 for deep cells; the
// class is emitted regardless, matching the source's lack of an upper
// clamp.
func S2CellLevelClass(level int) string {
	return fmt.Sprintf("%sS2Cell_Level%d", kwgOntBase, level)
}

// IRIFactory maps cell ids to stable IRIs. The zero value uses BaseIRI.
type IRIFactory struct {
	Base string
}

func (f IRIFactory) base() string {
	if f.Base == "" {
		return BaseIRI
	}
	return f.Base
}

// CellIRI returns the resource IRI for a cell, a pure function of the
// cell's level and 64-bit id.
func (f IRIFactory) CellIRI(c CellIdentity) string {
	return fmt.Sprintf("%s/lod/resource/s2.level%d.%d", f.base(), c.Level(), c.ID())
}

// CellGeometryIRI returns the geometry-node IRI for a cell.
func (f IRIFactory) CellGeometryIRI(c CellIdentity) string {
	return fmt.Sprintf("%s/lod/resource/geometry.polygon.s2.level%d.%d", f.base(), c.Level(), c.ID())
}

// ValidAbsoluteIRI reports whether s parses as a syntactically valid
// absolute IRI, the universal property every generated IRI must satisfy.
func ValidAbsoluteIRI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs()
}
