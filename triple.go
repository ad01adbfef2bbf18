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

import "fmt"

// TermKind distinguishes an RDF object position: another resource, or a
// typed literal.
type TermKind int

const (
	// TermIRI is a resource reference.
	TermIRI TermKind = iota
	// TermLiteral is a typed literal value.
	TermLiteral
)

// Term is an RDF object-position value: either an IRI or a typed
// literal. Subjects and predicates are always IRIs and are represented
// as plain strings to keep Triple cheap to construct by the million.
type Term struct {
	Kind     TermKind
	Value    string // the IRI, or the literal's lexical form
	Datatype string // only meaningful when Kind == TermLiteral
}

// IRI builds an object-position IRI term.
func IRI(v string) Term { return Term{Kind: TermIRI, Value: v} }

// Literal builds a typed-literal term.
func Literal(lexical, datatype string) Term {
	return Term{Kind: TermLiteral, Value: lexical, Datatype: datatype}
}

// StringLiteral builds an xsd:string literal.
func StringLiteral(s string) Term { return Literal(s, NSXSD+"string") }

// IntegerLiteral builds an xsd:integer literal from an unsigned value
// (cell ids do not fit in a signed 64-bit xsd:int, so they are printed
// through an unsigned formatter here and typed as xsd:integer per the
// cellID predicate's contract).
func IntegerLiteral(v uint64) Term { return Literal(fmt.Sprintf("%d", v), NSXSD+"integer") }

// FloatLiteral builds an xsd:float literal.
func FloatLiteral(v float64) Term { return Literal(fmt.Sprintf("%g", v), NSXSD+"float") }

// WKTLiteral builds a geo:wktLiteral.
func WKTLiteral(wkt string) Term { return Literal(wkt, NSGeo+"wktLiteral") }

// Triple is one RDF statement. Subject and Predicate are always absolute
// IRIs; Object may be an IRI or a literal.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// key is used for set-valued deduplication inside TripleBuffer.
func (t Triple) key() string {
	return t.Subject + "\x00" + t.Predicate + "\x00" + string(rune(t.Object.Kind)) + "\x00" + t.Object.Value + "\x00" + t.Object.Datatype
}

// TripleBuffer accumulates triples for one flush. Insertion order is
// irrelevant to correctness (the logical contract is a set), but
// duplicate inserts are deduplicated so that, e.g., two boundary rings
// that both cover the same cell do not double-count it in a flush-count
// test.
type TripleBuffer struct {
	seen  map[string]struct{}
	order []Triple
}

// NewTripleBuffer returns an empty buffer.
func NewTripleBuffer() *TripleBuffer {
	return &TripleBuffer{seen: make(map[string]struct{})}
}

// Add inserts a triple if it is not already present.
func (b *TripleBuffer) Add(t Triple) {
	k := t.key()
	if _, ok := b.seen[k]; ok {
		return
	}
	b.seen[k] = struct{}{}
	b.order = append(b.order, t)
}

// AddAll inserts every triple in ts.
func (b *TripleBuffer) AddAll(ts []Triple) {
	for _, t := range ts {
		b.Add(t)
	}
}

// Len returns the number of distinct triples currently buffered.
func (b *TripleBuffer) Len() int { return len(b.order) }

// Triples returns the buffered triples. The returned slice must not be
// mutated by the caller; it is reused internally until Clear.
func (b *TripleBuffer) Triples() []Triple { return b.order }

// Clear empties the buffer so it can be reused for the next flush.
func (b *TripleBuffer) Clear() {
	b.seen = make(map[string]struct{})
	b.order = nil
}
