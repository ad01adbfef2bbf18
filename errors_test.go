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
	"errors"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := wrapErr(KindIOError, "op", "msg", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestNewErrHasNilCause(t *testing.T) {
	err := newErr(KindInvalidConfig, "op", "msg")
	if err.Unwrap() != nil {
		t.Error("expected newErr to produce an error with no wrapped cause")
	}
}

func TestKindStringIsStable(t *testing.T) {
	cases := map[Kind]string{
		KindInvalidConfig:       "InvalidConfig",
		KindUnsupportedGeometry: "UnsupportedGeometry",
		KindInvalidLevel:        "InvalidLevel",
		KindIOError:             "IOError",
		KindParseError:          "ParseError",
		KindCoverageEmpty:       "CoverageEmpty",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("have %q, want %q for an out-of-range Kind", got, "Unknown")
	}
}
