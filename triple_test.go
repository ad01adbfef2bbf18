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
	"reflect"
	"testing"
)

func TestTripleBufferDeduplicates(t *testing.T) {
	buf := NewTripleBuffer()
	tr := Triple{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:b"}}
	buf.Add(tr)
	buf.Add(tr)
	buf.Add(tr)
	if buf.Len() != 1 {
		t.Errorf("have %d triples, want 1 after three identical adds", buf.Len())
	}
}

func TestTripleBufferAddAllPreservesOrder(t *testing.T) {
	buf := NewTripleBuffer()
	want := []Triple{
		{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:1"}},
		{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:2"}},
		{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:3"}},
	}
	buf.AddAll(want)
	if !reflect.DeepEqual(buf.Triples(), want) {
		t.Errorf("have %#v, want %#v", buf.Triples(), want)
	}
}

func TestTripleBufferClear(t *testing.T) {
	buf := NewTripleBuffer()
	buf.Add(Triple{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:b"}})
	buf.Clear()
	if buf.Len() != 0 {
		t.Errorf("have %d triples after Clear, want 0", buf.Len())
	}
	buf.Add(Triple{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:b"}})
	if buf.Len() != 1 {
		t.Errorf("have %d triples re-adding after Clear, want 1", buf.Len())
	}
}

func TestTermConstructors(t *testing.T) {
	if term := StringLiteral("hi"); term.Kind != TermLiteral || term.Value != "hi" {
		t.Errorf("have %#v, want a string literal \"hi\"", term)
	}
	if term := IntegerLiteral(42); term.Datatype == "" {
		t.Error("expected an integer literal to carry a datatype IRI")
	}
	if term := IRI("urn:x"); term.Kind != TermIRI || term.Value != "urn:x" {
		t.Errorf("have %#v, want an IRI term \"urn:x\"", term)
	}
}

func TestTripleSameSubjectPredicateDifferentObjectNotDuplicate(t *testing.T) {
	buf := NewTripleBuffer()
	buf.Add(Triple{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:1"}})
	buf.Add(Triple{Subject: "urn:a", Predicate: "urn:p", Object: Term{Kind: TermIRI, Value: "urn:2"}})
	if buf.Len() != 2 {
		t.Errorf("have %d triples, want 2 distinct objects kept", buf.Len())
	}
}
