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

// Package cli contains the command-line front end for the s2rdf tiling
// pipeline: argument handling, configuration loading, and file discovery
// live here, outside the core packages, per the purpose and scope
// section's out-of-core boundary.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configFile string

// Config holds the process-wide configuration loaded from flags and, if
// given, a config file.
var Config *Cfg

// Root is the main command.
var Root = &cobra.Command{
	Use:   "s2rdf",
	Short: "Tile geospatial features onto the S2 grid and emit RDF.",
	Long: `s2rdf converts vector features and the S2 discrete global grid
into an RDF knowledge graph describing grid cells, their topology, and
their topological relations to input features.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// run and cells share one viper instance; bind the flags of the
		// command actually executing so its values are the ones read.
		rootViper().BindPFlags(cmd.Flags())
		cfg, err := ReadConfigFile(configFile)
		if err != nil {
			return labelErr("loading configuration", err)
		}
		Config = cfg
		setLogLevel(cfg.LogLevelString())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		fmt.Println("s2rdf: run complete")
	},
	DisableAutoGenTag: true,
}

func init() {
	Root.PersistentFlags().StringVar(&configFile, "config", "", "configuration file location (toml)")
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(cellsCmd)
	bindCommonFlags(runCmd)
	bindCommonFlags(cellsCmd)
}

// Version is set at build time via -ldflags; left as a plain default
// here since build tagging is outside the core's concerns.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number",
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("s2rdf v%s\n", Version)
	},
}

func setLogLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func labelErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
