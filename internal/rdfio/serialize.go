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
	"bytes"
	"fmt"
	"strings"

	"github.com/stko-kwg/s2rdf"
)

// object renders a Term in Turtle/N-Triples-compatible syntax: an
// absolute IRI in angle brackets, or a typed literal.
func object(t s2rdf.Term) string {
	if t.Kind == s2rdf.TermIRI {
		return fmt.Sprintf("<%s>", t.Value)
	}
	return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
}

func lineOriented(triples []s2rdf.Triple) []byte {
	var buf bytes.Buffer
	for _, t := range triples {
		fmt.Fprintf(&buf, "<%s> <%s> %s .\n", t.Subject, t.Predicate, object(t.Object))
	}
	return buf.Bytes()
}

// TurtleSerializer covers ttl, turtle, n3, and nt: every term here is
// absolute (no prefixed names, no blank nodes), so the plain
// "<s> <p> o ." line format used for Turtle is already valid enough
// N-Triples/N3 syntax for this output.
type TurtleSerializer struct{}

// Serialize implements s2rdf.Serializer.
func (TurtleSerializer) Serialize(triples []s2rdf.Triple) ([]byte, error) {
	return lineOriented(triples), nil
}

// NQuadsSerializer covers nq/nquads: the same line-oriented syntax with
// a fixed default graph name appended to each statement.
type NQuadsSerializer struct {
	Graph string
}

// Serialize implements s2rdf.Serializer.
func (s NQuadsSerializer) Serialize(triples []s2rdf.Triple) ([]byte, error) {
	graph := s.Graph
	if graph == "" {
		graph = "urn:s2rdf:default"
	}
	var buf bytes.Buffer
	for _, t := range triples {
		fmt.Fprintf(&buf, "<%s> <%s> %s <%s> .\n", t.Subject, t.Predicate, object(t.Object), graph)
	}
	return buf.Bytes(), nil
}

// XMLSerializer covers rdf/xml output, grouping triples by subject so
// each subject produces one rdf:Description element. Each property is an
// element named by the predicate's local name (the part after its last
// '#' or '/'), with the predicate's namespace declared on that element.
type XMLSerializer struct{}

// Serialize implements s2rdf.Serializer.
func (XMLSerializer) Serialize(triples []s2rdf.Triple) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\"?>\n<rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\">\n")
	bySubject := map[string][]s2rdf.Triple{}
	var order []string
	for _, t := range triples {
		if _, ok := bySubject[t.Subject]; !ok {
			order = append(order, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}
	for _, s := range order {
		fmt.Fprintf(&buf, "  <rdf:Description rdf:about=%q>\n", s)
		for _, t := range bySubject[s] {
			cut := strings.LastIndexAny(t.Predicate, "#/") + 1
			ns, local := t.Predicate[:cut], t.Predicate[cut:]
			if t.Object.Kind == s2rdf.TermIRI {
				fmt.Fprintf(&buf, "    <p:%s xmlns:p=%q rdf:resource=%q/>\n", local, ns, t.Object.Value)
			} else {
				fmt.Fprintf(&buf, "    <p:%s xmlns:p=%q rdf:datatype=%q>%s</p:%s>\n", local, ns, t.Object.Datatype, t.Object.Value, local)
			}
		}
		buf.WriteString("  </rdf:Description>\n")
	}
	buf.WriteString("</rdf:RDF>\n")
	return buf.Bytes(), nil
}

// TriXSerializer and TriGSerializer wrap the same triples in a trivial
// graph envelope with no graph name; this pipeline never produces more than one graph
// per file, so both formats degenerate to "one graph, these triples".
type TriXSerializer struct{}

// Serialize implements s2rdf.Serializer.
func (TriXSerializer) Serialize(triples []s2rdf.Triple) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\"?>\n<TriX xmlns=\"http://www.w3.org/2004/03/trix/trix-1/\">\n<graph>\n")
	for _, t := range triples {
		buf.WriteString("  <triple>\n")
		fmt.Fprintf(&buf, "    <uri>%s</uri>\n    <uri>%s</uri>\n", t.Subject, t.Predicate)
		if t.Object.Kind == s2rdf.TermIRI {
			fmt.Fprintf(&buf, "    <uri>%s</uri>\n", t.Object.Value)
		} else {
			fmt.Fprintf(&buf, "    <typedLiteral datatype=%q>%s</typedLiteral>\n", t.Object.Datatype, t.Object.Value)
		}
		buf.WriteString("  </triple>\n")
	}
	buf.WriteString("</graph>\n</TriX>\n")
	return buf.Bytes(), nil
}

// TriGSerializer wraps Turtle-syntax triples in a default-graph block.
type TriGSerializer struct{}

// Serialize implements s2rdf.Serializer.
func (TriGSerializer) Serialize(triples []s2rdf.Triple) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	buf.Write(lineOriented(triples))
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// JSONLDSerializer covers json-ld: one flat array of
// {"@id","@type"/predicate: value} style objects, grouped by subject.
type JSONLDSerializer struct{}

// Serialize implements s2rdf.Serializer.
func (JSONLDSerializer) Serialize(triples []s2rdf.Triple) ([]byte, error) {
	bySubject := map[string][]s2rdf.Triple{}
	var order []string
	for _, t := range triples {
		if _, ok := bySubject[t.Subject]; !ok {
			order = append(order, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, s := range order {
		fmt.Fprintf(&buf, "  {\"@id\": %q", s)
		for _, t := range bySubject[s] {
			if t.Object.Kind == s2rdf.TermIRI {
				fmt.Fprintf(&buf, ", %q: [{\"@id\": %q}]", t.Predicate, t.Object.Value)
			} else {
				fmt.Fprintf(&buf, ", %q: [{\"@value\": %q, \"@type\": %q}]", t.Predicate, t.Object.Value, t.Object.Datatype)
			}
		}
		buf.WriteString("}")
		if i < len(order)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}

// NewSerializer builds the Serializer for a configured format, the
// factory the core's BatchedWriter calls through.
func NewSerializer(format s2rdf.Format) (s2rdf.Serializer, error) {
	switch format {
	case s2rdf.FormatTTL, s2rdf.FormatTurtle, s2rdf.FormatN3, s2rdf.FormatNT, "":
		return TurtleSerializer{}, nil
	case s2rdf.FormatNQ, s2rdf.FormatNQuads:
		return NQuadsSerializer{}, nil
	case s2rdf.FormatXML:
		return XMLSerializer{}, nil
	case s2rdf.FormatTriX:
		return TriXSerializer{}, nil
	case s2rdf.FormatTriG:
		return TriGSerializer{}, nil
	case s2rdf.FormatJSONLD:
		return JSONLDSerializer{}, nil
	default:
		return nil, &s2rdf.Error{Kind: s2rdf.KindInvalidConfig, Op: "rdfio.NewSerializer", Message: fmt.Sprintf("unknown format %q", format)}
	}
}
