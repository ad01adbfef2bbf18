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

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stko-kwg/s2rdf"
)

// Cfg wraps a *viper.Viper, mirroring the teacher's Cfg type.
type Cfg struct {
	*viper.Viper
}

// bindCommonFlags registers the RunConfig flags on cmd and binds them
// into the package-level viper instance used by ReadConfigFile, the same
// two-step flag-then-bind dance the teacher's InitializeConfig performs.
func bindCommonFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Bool("compressed", false, "force min_level to 0 and emit a multi-resolution relation set")
	flags.Float64("tolerance", s2rdf.DefaultTolerance, "segmentation tolerance, in degrees")
	flags.Int("min-level", 0, "minimum S2 cell level")
	flags.Int("max-level", 13, "maximum S2 cell level")
	flags.String("format", string(s2rdf.FormatTTL), "output serialization format")
	flags.String("output", "./output", "output directory")
	flags.Int("batch-size", s2rdf.DefaultBatchSize, "cell mode batch size")
	flags.Int("flush-threshold", 0, "feature mode flush threshold (0 = default)")
	flags.Int("target-parent-level", -1, "force every cell's parent edge to this level (-1 = one level up)")
	flags.Int("pool-size", 0, "worker pool size (0 = number of logical CPUs)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("manifest", "", "path to write the end-of-run YAML manifest (empty disables it)")

	v := rootViper()
	v.BindPFlags(flags)
}

var sharedViper *viper.Viper

func rootViper() *viper.Viper {
	if sharedViper == nil {
		sharedViper = viper.New()
		sharedViper.SetConfigType("toml")
	}
	return sharedViper
}

// ReadConfigFile loads configuration from path (if non-empty) layered
// under flag and default values, and returns the shared viper instance
// wrapped in a Cfg; Cfg.RunConfig resolves it into a RunConfig.
func ReadConfigFile(path string) (*Cfg, error) {
	v := rootViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &s2rdf.Error{Kind: s2rdf.KindIOError, Op: "cli.ReadConfigFile", Message: "reading " + path, Err: err}
		}
	}
	return &Cfg{Viper: v}, nil
}

// RunConfig resolves the loaded configuration into a s2rdf.RunConfig, run
// through Validate so InvalidConfig failures surface before any worker
// starts.
func (c *Cfg) RunConfig() (s2rdf.RunConfig, error) {
	var targetParent *int
	if tpl := c.GetInt("target-parent-level"); tpl >= 0 {
		targetParent = &tpl
	}
	cfg := s2rdf.RunConfig{
		Compressed:        c.GetBool("compressed"),
		Tolerance:         c.GetFloat64("tolerance"),
		MinLevel:          c.GetInt("min-level"),
		MaxLevel:          c.GetInt("max-level"),
		Format:            s2rdf.Format(c.GetString("format")),
		OutputPath:        c.GetString("output"),
		BatchSize:         c.GetInt("batch-size"),
		FlushThreshold:    c.GetInt("flush-threshold"),
		TargetParentLevel: targetParent,
		PoolSize:          c.GetInt("pool-size"),
		LogLevel:          c.GetString("log-level"),
		ManifestPath:      c.GetString("manifest"),
	}
	if err := cfg.Validate(); err != nil {
		return s2rdf.RunConfig{}, err
	}
	return cfg, nil
}

// LogLevelString is a convenience accessor used by Root's
// PersistentPreRunE before the rest of RunConfig has necessarily been
// validated.
func (c *Cfg) LogLevelString() string { return c.GetString("log-level") }
