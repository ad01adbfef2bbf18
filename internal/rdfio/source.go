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

package rdfio

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/stko-kwg/s2rdf"
)

// tripleLine matches one absolute-IRI-subject, absolute-IRI-predicate
// statement whose object is either an absolute IRI or a quoted literal,
// terminated by a ".". This is intentionally a narrow subset of Turtle/
// N-Triples: byte-level RDF parsing is out of the core's scope (see the
// purpose and scope section), and file discovery here only needs to find
// two predicates (geo:hasGeometry, geo:asWKT), not parse arbitrary RDF.
var tripleLine = regexp.MustCompile(`^\s*<([^>]+)>\s+<([^>]+)>\s+(?:<([^>]+)>|"((?:[^"\\]|\\.)*)"(?:\^\^<[^>]+>)?)\s*\.\s*$`)

const (
	predHasGeometry = "http://www.opengis.net/ont/geosparql#hasGeometry"
	predAsWKT       = "http://www.opengis.net/ont/geosparql#asWKT"
)

// DirSource discovers every regular file directly under a directory and
// scans each one line by line for geo:hasGeometry / geo:asWKT triples.
type DirSource struct{}

// Features implements s2rdf.FeatureSource. It reads the whole directory
// before returning, matching the contract that input is fully
// materialized before fan-out.
func (DirSource) Features(path string) ([]s2rdf.WKTRecord, error) {
	const op = "rdfio.DirSource.Features"
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &s2rdf.Error{Kind: s2rdf.KindIOError, Op: op, Message: "reading input directory", Err: err}
	}

	featureToGeom := map[string]string{}
	geomToWKT := map[string]string{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		full := filepath.Join(path, entry.Name())
		f, err := os.Open(full)
		if err != nil {
			return nil, &s2rdf.Error{Kind: s2rdf.KindIOError, Op: op, Message: "opening " + full, Err: err}
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			m := tripleLine.FindStringSubmatch(scanner.Text())
			if m == nil {
				continue
			}
			subj, pred, objIRI, objLit := m[1], m[2], m[3], m[4]
			switch pred {
			case predHasGeometry:
				if objIRI != "" {
					featureToGeom[subj] = objIRI
				}
			case predAsWKT:
				geomToWKT[subj] = strings.ReplaceAll(objLit, `\"`, `"`)
			}
		}
		f.Close()
	}

	var out []s2rdf.WKTRecord
	for feature, geom := range featureToGeom {
		if wkt, ok := geomToWKT[geom]; ok {
			out = append(out, s2rdf.WKTRecord{FeatureIRI: feature, WKT: wkt})
		}
	}
	return out, nil
}
