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

func TestFromPointLevel(t *testing.T) {
	c := FromPoint(34.4, -119.8)
	if c.Level() != 30 {
		t.Errorf("have level %d, want 30", c.Level())
	}
	if !c.Valid() {
		t.Error("expected leaf cell to be valid")
	}
}

func TestParentOfLevelZeroCellFails(t *testing.T) {
	c := FromPoint(0, 0)
	root, err := c.ParentAt(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Level() != 0 {
		t.Errorf("have level %d, want 0", root.Level())
	}

	if _, err := root.Parent(); err == nil {
		t.Fatal("expected an error calling Parent on a level-0 cell")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindInvalidLevel {
		t.Errorf("have %#v, want KindInvalidLevel", err)
	}
}

func TestParentAtOutOfRange(t *testing.T) {
	c := FromPoint(10, 10)
	parent, err := c.ParentAt(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parent.Level() != 5 {
		t.Errorf("have level %d, want 5", parent.Level())
	}

	if _, err := parent.ParentAt(6); err == nil {
		t.Fatal("expected an error for a target level above the cell's own level")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindInvalidLevel {
		t.Errorf("have %#v, want KindInvalidLevel", err)
	}

	if _, err := parent.ParentAt(-1); err == nil {
		t.Fatal("expected an error for a negative target level")
	}
}

func TestParentIsParentAtOneLevelUp(t *testing.T) {
	c := FromPoint(48.8, 2.3)
	viaParent, err := c.Parent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaParentAt, err := c.ParentAt(c.Level() - 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !viaParent.Equal(viaParentAt) {
		t.Errorf("have %d, want %d", viaParent.ID(), viaParentAt.ID())
	}
}

func TestNeighborsAtSameLevel(t *testing.T) {
	c, err := FromPoint(12, 34).ParentAt(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neighbors := c.NeighborsAt(c.Level())
	if len(neighbors) != 8 {
		t.Fatalf("have %d same-level neighbors, want 8 (S2's edge and vertex neighbors)", len(neighbors))
	}
	for _, n := range neighbors {
		if n.Equal(c) {
			t.Error("a cell must not be its own neighbor")
		}
		if n.Level() != c.Level() {
			t.Errorf("neighbor level %d != cell level %d", n.Level(), c.Level())
		}
	}
}

func TestIterateLevelCoversLevelBeginToEnd(t *testing.T) {
	const level = 1
	begin, end := LevelBegin(level), LevelEnd(level)
	var ids []CellIdentity
	IterateLevel(level, func(c CellIdentity) bool {
		ids = append(ids, c)
		return true
	})
	if len(ids) == 0 {
		t.Fatal("expected at least one cell at level 1")
	}
	if !ids[0].Equal(begin) {
		t.Errorf("first id %d != LevelBegin %d", ids[0].ID(), begin.ID())
	}
	last := ids[len(ids)-1]
	if last.Equal(end) {
		t.Error("LevelEnd is a sentinel and must not be yielded")
	}
	if !last.Next().Equal(end) {
		t.Errorf("last.Next() %d != LevelEnd %d", last.Next().ID(), end.ID())
	}
}

func TestIterateLevelStopsEarly(t *testing.T) {
	count := 0
	IterateLevel(2, func(c CellIdentity) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("have %d iterations, want 3 (stopped by returning false)", count)
	}
}

func TestFromIDRoundTrips(t *testing.T) {
	orig := FromPoint(51.5, -0.1)
	round := FromID(orig.ID())
	if !orig.Equal(round) {
		t.Errorf("have %d, want %d", round.ID(), orig.ID())
	}
}
