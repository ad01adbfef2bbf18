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

import "testing"

func TestIRIFactoryDefaultsToBaseIRI(t *testing.T) {
	f := IRIFactory{}
	c := FromPoint(1, 1)
	iri := f.CellIRI(c)
	if !ValidAbsoluteIRI(iri) {
		t.Errorf("generated IRI %q is not a valid absolute IRI", iri)
	}
	if len(iri) <= len(BaseIRI) {
		t.Errorf("expected CellIRI to extend BaseIRI, got %q", iri)
	}
}

func TestIRIFactoryCustomBase(t *testing.T) {
	f := IRIFactory{Base: "http://example.org"}
	c := FromPoint(1, 1)
	iri := f.CellIRI(c)
	if !ValidAbsoluteIRI(iri) {
		t.Errorf("generated IRI %q is not a valid absolute IRI", iri)
	}
	if iri == (IRIFactory{}).CellIRI(c) {
		t.Error("expected a custom base to change the generated IRI")
	}
}

func TestCellIRIIsDistinctFromCellGeometryIRI(t *testing.T) {
	f := IRIFactory{}
	c := FromPoint(5, 5)
	if f.CellIRI(c) == f.CellGeometryIRI(c) {
		t.Error("a cell's resource IRI must differ from its geometry node IRI")
	}
}

func TestCellIRIIsPureFunctionOfIDAndLevel(t *testing.T) {
	f := IRIFactory{}
	a := FromPoint(12.3, 45.6)
	b := FromID(a.ID())
	if f.CellIRI(a) != f.CellIRI(b) {
		t.Error("CellIRI must be a pure function of (level, id)")
	}
}

func TestS2CellLevelClass(t *testing.T) {
	if got := S2CellLevelClass(7); got == S2CellLevelClass(8) {
		t.Error("distinct levels must produce distinct class IRIs")
	}
}

func TestValidAbsoluteIRIRejectsRelative(t *testing.T) {
	if ValidAbsoluteIRI("not-a-uri") {
		t.Error("expected a bare relative string to be rejected")
	}
	if ValidAbsoluteIRI("/just/a/path") {
		t.Error("expected a path-only string to be rejected")
	}
}
