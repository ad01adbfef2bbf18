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

// Package rdfio holds the default, swappable implementations of the
// collaborator interfaces the core declares but does not itself
// implement: WKT parsing, RDF feature discovery, and RDF serialization.
package rdfio

import (
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/stko-kwg/s2rdf"
)

// WKTParser decodes WKT text with paulmach/orb and maps the result onto
// the core's closed Geometry variant.
type WKTParser struct{}

// Parse implements s2rdf.WKTParser.
func (WKTParser) Parse(text string) (s2rdf.Geometry, error) {
	g, err := wkt.Unmarshal(text)
	if err != nil {
		return s2rdf.Geometry{}, &s2rdf.Error{Kind: s2rdf.KindParseError, Op: "rdfio.WKTParser.Parse", Message: "malformed WKT", Err: err}
	}
	return s2rdf.FromOrb(g)
}
