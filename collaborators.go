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

// WKTRecord is what a FeatureSource yields for one input feature: its
// IRI and the raw WKT text of its geometry. WKT parsing itself is the
// core's job (via a WKTParser), but file discovery and RDF extraction
// are external collaborators.
type WKTRecord struct {
	FeatureIRI string
	WKT        string
}

// FeatureSource discovers input files and extracts
// (?feature geo:hasGeometry ?g . ?g geo:asWKT ?wkt) records from them.
// The core treats a FeatureSource as fully materialized, or partitioned
// per worker, before fan-out; it never shares one FeatureSource instance
// across workers mid-stream.
type FeatureSource interface {
	// Features returns every record found under path. Implementations
	// may read lazily internally, but the contract promises the full set
	// is available synchronously to the driver before fan-out.
	Features(path string) ([]WKTRecord, error)
}

// WKTParser turns a WKT string into the closed Geometry variant.
type WKTParser interface {
	Parse(wkt string) (Geometry, error)
}

// Feature pairs a feature's IRI with its parsed geometry, ready for
// RelationMaterializer.
type Feature struct {
	IRI      string
	Geometry Geometry
}

// Serializer writes a batch of triples to w in one concrete RDF syntax.
// The core only emits logical triples; byte-level serialization is
// delegated to a Serializer, selected by Format.
type Serializer interface {
	// Serialize writes triples in this serializer's concrete syntax.
	Serialize(triples []Triple) ([]byte, error)
}
