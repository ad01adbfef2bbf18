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
	"github.com/golang/geo/s2"
)

// Coverer is a bounded region-coverer: a thin, stateful wrapper over
// s2.RegionCoverer. Each worker in the concurrent target owns its own
// Coverer instance; coverers are never shared (see the concurrency and
// resource model).
type Coverer struct {
	minLevel, maxLevel, maxCells int
}

// NewCoverer builds a Coverer from optional bounds. A negative minLevel
// or maxLevel is ignored, leaving that bound at the package default
// (0 and 30 respectively); maxCells defaults to 8 if not positive,
// matching s2.RegionCoverer's own default.
func NewCoverer(minLevel, maxLevel, maxCells int) *Coverer {
	c := &Coverer{minLevel: 0, maxLevel: 30, maxCells: 8}
	if minLevel >= 0 {
		c.minLevel = minLevel
	}
	if maxLevel >= 0 {
		c.maxLevel = maxLevel
	}
	if maxCells >= 1 {
		c.maxCells = maxCells
	}
	return c
}

// MinLevel returns the current lower bound.
func (c *Coverer) MinLevel() int { return c.minLevel }

// MaxLevel returns the current upper bound.
func (c *Coverer) MaxLevel() int { return c.maxLevel }

// MaxCells returns the current cell budget.
func (c *Coverer) MaxCells() int { return c.maxCells }

// SetMinLevel updates the lower bound. It returns InvalidConfig if doing
// so would violate minLevel <= maxLevel.
func (c *Coverer) SetMinLevel(l int) error {
	if l > c.maxLevel {
		return newErr(KindInvalidConfig, "Coverer.SetMinLevel", "min_level would exceed max_level")
	}
	c.minLevel = l
	return nil
}

// SetMaxLevel updates the upper bound. It returns InvalidConfig if doing
// so would violate minLevel <= maxLevel.
func (c *Coverer) SetMaxLevel(l int) error {
	if l < c.minLevel {
		return newErr(KindInvalidConfig, "Coverer.SetMaxLevel", "max_level would fall below min_level")
	}
	c.maxLevel = l
	return nil
}

// SetMaxCells updates the cell budget. It returns InvalidConfig if n < 1.
func (c *Coverer) SetMaxCells(n int) error {
	if n < 1 {
		return newErr(KindInvalidConfig, "Coverer.SetMaxCells", "max_cells must be >= 1")
	}
	c.maxCells = n
	return nil
}

func (c *Coverer) regionCoverer() *s2.RegionCoverer {
	return &s2.RegionCoverer{MinLevel: c.minLevel, MaxLevel: c.maxLevel, MaxCells: c.maxCells}
}

func toCellIdentities(u s2.CellUnion) []CellIdentity {
	out := make([]CellIdentity, len(u))
	for i, id := range u {
		out[i] = CellIdentity{id: id}
	}
	return out
}

// Covering returns an exterior covering of region: cells whose union
// covers it, individual cells possibly overhanging, bounded by
// [min_level, max_level] and max_cells.
func (c *Coverer) Covering(region s2.Region) []CellIdentity {
	return toCellIdentities(c.regionCoverer().Covering(region))
}

// InteriorCovering returns cells wholly inside region, bounded the same
// way as Covering.
func (c *Coverer) InteriorCovering(region s2.Region) []CellIdentity {
	return toCellIdentities(c.regionCoverer().InteriorCovering(region))
}
