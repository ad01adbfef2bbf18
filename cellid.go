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

	"github.com/golang/geo/s2"
)

// CellIdentity is a thin wrapper over s2.CellID. It exists so that the
// rest of this package depends on one small surface rather than reaching
// into golang/geo/s2 directly everywhere, and so the level-0-has-no-parent
// and target-level-out-of-range failure modes are raised the way this
// package's error taxonomy expects rather than as a library panic.
type CellIdentity struct {
	id s2.CellID
}

// FromID constructs a CellIdentity from a raw 64-bit id.
func FromID(id uint64) CellIdentity {
	return CellIdentity{id: s2.CellID(id)}
}

// FromPoint returns the leaf cell (level 30) containing the given
// lat/lng, in degrees.
func FromPoint(latDeg, lngDeg float64) CellIdentity {
	ll := s2.LatLngFromDegrees(latDeg, lngDeg)
	return CellIdentity{id: s2.CellIDFromLatLng(ll)}
}

// ID returns the raw 64-bit id.
func (c CellIdentity) ID() uint64 { return uint64(c.id) }

// Level returns the cell's level, in [0,30].
func (c CellIdentity) Level() int { return c.id.Level() }

// Valid reports whether the wrapped id is a valid S2 cell id.
func (c CellIdentity) Valid() bool { return c.id.IsValid() }

// s2CellID exposes the underlying id to sibling files in this package
// (GeometryAdapter, Coverer) without making the whole wrapper public.
func (c CellIdentity) s2CellID() s2.CellID { return c.id }

// Parent returns the cell's immediate parent, one level up. It fails with
// KindInvalidLevel at level 0, which has no parent.
func (c CellIdentity) Parent() (CellIdentity, error) {
	const op = "CellIdentity.Parent"
	if c.Level() == 0 {
		return CellIdentity{}, newErr(KindInvalidLevel, op, "level 0 has no parent")
	}
	return CellIdentity{id: c.id.Parent(c.Level() - 1)}, nil
}

// ParentAt walks up until the returned cell's level equals targetLevel.
// targetLevel must be in [0, c.Level()]; anything else fails with
// KindInvalidLevel.
func (c CellIdentity) ParentAt(targetLevel int) (CellIdentity, error) {
	const op = "CellIdentity.ParentAt"
	if targetLevel < 0 || targetLevel > c.Level() {
		return CellIdentity{}, newErr(KindInvalidLevel, op,
			fmt.Sprintf("target level %d out of range [0,%d]", targetLevel, c.Level()))
	}
	return CellIdentity{id: c.id.Parent(targetLevel)}, nil
}

// NeighborsAt returns the cells at the given level that touch c, in
// S2's own sense of "touching" (shares an edge or a vertex). When level
// equals c.Level() this is the usual up-to-eight neighborhood; at other
// levels it is the set of same-level cells adjacent to c's footprint.
func (c CellIdentity) NeighborsAt(level int) []CellIdentity {
	ids := c.id.AllNeighbors(level)
	out := make([]CellIdentity, len(ids))
	for i, id := range ids {
		out[i] = CellIdentity{id: id}
	}
	return out
}

// LevelBegin returns the canonical first cell id at the given level, in
// Hilbert-curve iteration order across all six faces.
func LevelBegin(level int) CellIdentity {
	return CellIdentity{id: s2.CellIDBegin(level)}
}

// LevelEnd returns the sentinel one past the last cell id at the given
// level. It is not itself a dereferenceable cell.
func LevelEnd(level int) CellIdentity {
	return CellIdentity{id: s2.CellIDEnd(level)}
}

// Next advances to the next cell id at the same level in iteration order.
// Calling Next on LevelEnd's result is undefined, matching the sentinel
// contract of Begin/End.
func (c CellIdentity) Next() CellIdentity {
	return CellIdentity{id: c.id.Next()}
}

// Equal reports whether two cell identities wrap the same 64-bit id.
func (c CellIdentity) Equal(other CellIdentity) bool { return c.id == other.id }

// IterateLevel calls fn for every cell id at level, in Hilbert-curve
// order, stopping early if fn returns false. This is the iteration
// contract CellIdentity's Begin/End/Next describe, collected into one
// convenience entry point for the pure-cell run mode.
func IterateLevel(level int, fn func(CellIdentity) bool) {
	for c, end := LevelBegin(level), LevelEnd(level); !c.Equal(end); c = c.Next() {
		if !fn(c) {
			return
		}
	}
}
