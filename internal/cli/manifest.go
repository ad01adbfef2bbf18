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
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"

	"github.com/stko-kwg/s2rdf"
)

// RunManifest is the operator-readable record of one run, written as YAML
// when RunConfig.ManifestPath is non-empty. Since the writer gives no
// transactional rollback on a worker error, the manifest is what tells an
// operator which files actually landed on disk.
type RunManifest struct {
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Config     s2rdf.RunConfig `json:"config"`

	FilesWritten      []string `json:"filesWritten"`
	TriplesWritten    int      `json:"triplesWritten"`
	FeaturesProcessed int      `json:"featuresProcessed"`
	FeaturesSkipped   int      `json:"featuresSkipped"`
	Errors            []string `json:"errors,omitempty"`
}

// writeManifestBestEffort writes the manifest if cfg.ManifestPath is set.
// A failure to write it is logged, not returned, since the run it
// describes has already either succeeded or failed on its own terms.
func writeManifestBestEffort(cfg s2rdf.RunConfig, started time.Time, summary s2rdf.Summary, runErr error) {
	if cfg.ManifestPath == "" {
		return
	}
	m := RunManifest{
		StartedAt:         started,
		FinishedAt:        time.Now(),
		Config:            cfg,
		FilesWritten:      summary.FilesWritten,
		TriplesWritten:    summary.TriplesWritten,
		FeaturesProcessed: summary.FeaturesProcessed,
		FeaturesSkipped:   summary.FeaturesSkipped,
		Errors:            summary.Errors,
	}
	if runErr != nil {
		m.Errors = append(m.Errors, runErr.Error())
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal run manifest")
		return
	}
	if err := os.WriteFile(cfg.ManifestPath, data, 0o644); err != nil {
		logrus.WithError(err).WithField("path", cfg.ManifestPath).Warn("failed to write run manifest")
	}
}
