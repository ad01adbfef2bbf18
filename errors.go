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

// Kind classifies the failure modes described in the error-handling design.
type Kind int

const (
	// KindInvalidConfig covers malformed run configuration: min_level >
	// max_level, an unknown serialization format, a negative batch_size,
	// or a non-writable output path. Fatal at startup.
	KindInvalidConfig Kind = iota
	// KindUnsupportedGeometry is raised for a geometry kind outside the
	// closed variant set.
	KindUnsupportedGeometry
	// KindInvalidLevel is raised by Parent at level 0 and by ParentAt
	// when target_level > cell.Level().
	KindInvalidLevel
	// KindIOError covers file open/write/mkdir failures.
	KindIOError
	// KindParseError covers malformed WKT or RDF input; confined to the
	// affected feature.
	KindParseError
	// KindCoverageEmpty names the case of a coverer call returning zero
	// cells for a non-empty geometry. It is not an error and no function in
	// this package returns it: an empty covering simply yields no relation
	// triples.
	KindCoverageEmpty
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConfig:
		return "InvalidConfig"
	case KindUnsupportedGeometry:
		return "UnsupportedGeometry"
	case KindInvalidLevel:
		return "InvalidLevel"
	case KindIOError:
		return "IOError"
	case KindParseError:
		return "ParseError"
	case KindCoverageEmpty:
		return "CoverageEmpty"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type raised by this package. It carries a
// Kind so callers can branch on the taxonomy instead of string-matching.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "CellIdentity.Parent"
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Message: msg}
}

func wrapErr(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: msg, Err: err}
}
