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
	"runtime"
)

// Format is a serialization format identifier accepted at the CLI
// boundary, per the format/extension table in the external interfaces.
type Format string

// Accepted format strings.
const (
	FormatTTL     Format = "ttl"
	FormatTurtle  Format = "turtle"
	FormatXML     Format = "xml"
	FormatNT      Format = "nt"
	FormatN3      Format = "n3"
	FormatTriX    Format = "trix"
	FormatTriG    Format = "trig"
	FormatNQ      Format = "nq"
	FormatNQuads  Format = "nquads"
	FormatJSONLD  Format = "json-ld"
)

// Ext returns the file extension associated with a format, per the
// external interfaces' format/extension table.
func (f Format) Ext() (string, error) {
	switch f {
	case FormatTTL, FormatTurtle:
		return ".ttl", nil
	case FormatXML:
		return ".xml", nil
	case FormatN3:
		return ".n3", nil
	case FormatNT:
		return ".nt", nil
	case FormatTriX:
		return ".trix", nil
	case FormatTriG:
		return ".trig", nil
	case FormatNQ, FormatNQuads:
		return ".nq", nil
	case FormatJSONLD:
		return ".jsonld", nil
	default:
		return "", newErr(KindInvalidConfig, "Format.Ext", fmt.Sprintf("unknown format %q", f))
	}
}

func (f Format) valid() bool {
	_, err := f.Ext()
	return err == nil
}

// RunConfig is the configuration record the CLI (out of core scope)
// assembles and hands to the core. Defaults mirror the source values
// named in the design notes.
type RunConfig struct {
	Compressed bool

	Tolerance float64

	MinLevel int
	MaxLevel int

	Format Format

	OutputPath string

	// BatchSize bounds cell-mode batches (default 100000).
	BatchSize int

	// FlushThreshold bounds the number of triples in each feature-mode
	// output file. Zero means the writer chooses an internal default.
	FlushThreshold int

	// TargetParentLevel, if non-nil, is passed to CellDescriber so every
	// cell's parent edge points at that level instead of one level up.
	TargetParentLevel *int

	// PoolSize is the number of parallel workers; zero means
	// runtime.NumCPU().
	PoolSize int

	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string

	// ManifestPath, if non-empty, is where the end-of-run YAML manifest
	// is written.
	ManifestPath string
}

// DefaultTolerance is the default segmentation tolerance, in degrees of
// planar WGS84 longitude/latitude.
const DefaultTolerance = 1e-2

// DefaultBatchSize is the default cell-mode batch size.
const DefaultBatchSize = 100000

// Saturation constants for TilingEngine's interior-filling loop. They are
// parameters of RunConfig-adjacent TilingEngine construction, defaulting
// to the values the source used.
const (
	DefaultSaturationMinExponent = 4
	DefaultSaturationMaxExponent = 8
	DefaultSaturationGrowth      = 10
)

// earthRadiusMeters is R_earth from the metric-area formula in
// CellDescriber's contract.
const earthRadiusMeters = 6.3781e6

// Validate checks the invariants an InvalidConfig failure must catch at
// startup: min <= max within [0,30], a known format, a non-negative batch
// size and flush threshold, and a target parent level within [0,30].
// OutputPath is not checked here; a path that cannot be created or written
// fails later, in the writer, with KindIOError.
func (c RunConfig) Validate() error {
	const op = "RunConfig.Validate"
	if c.MinLevel < 0 || c.MaxLevel > 30 || c.MinLevel > c.MaxLevel {
		return newErr(KindInvalidConfig, op, fmt.Sprintf("invalid level range [%d,%d]", c.MinLevel, c.MaxLevel))
	}
	if c.Format != "" && !c.Format.valid() {
		return newErr(KindInvalidConfig, op, fmt.Sprintf("unknown format %q", c.Format))
	}
	if c.BatchSize < 0 {
		return newErr(KindInvalidConfig, op, "batch_size must not be negative")
	}
	if c.FlushThreshold < 0 {
		return newErr(KindInvalidConfig, op, "flush_threshold must not be negative")
	}
	if c.TargetParentLevel != nil && (*c.TargetParentLevel < 0 || *c.TargetParentLevel > 30) {
		return newErr(KindInvalidConfig, op, "target_parent_level out of range")
	}
	return nil
}

// poolSize returns PoolSize if set, otherwise the number of logical CPUs.
func (c RunConfig) poolSize() int {
	if c.PoolSize > 0 {
		return c.PoolSize
	}
	return runtime.NumCPU()
}

// effectiveMinLevel applies the compressed-mode override: when Compressed
// is true the lower bound of the feature-mode coverer is forced to 0,
// overriding MinLevel. The overlap mode of the cells command does not use
// it; it covers at MaxLevel only.
func (c RunConfig) effectiveMinLevel() int {
	if c.Compressed {
		return 0
	}
	return c.MinLevel
}
