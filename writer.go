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
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// defaultFlushThreshold is used in feature mode when RunConfig does not
// name one.
const defaultFlushThreshold = 50000

// BatchedWriter drives parallel execution over either a stream of
// features or a chunked stream of cell-id batches, accumulating triples
// per worker and flushing each worker's own TripleBuffer to its own
// output file. Workers never communicate; each owns its Coverer,
// TripleBuffer, and output files.
type BatchedWriter struct {
	Config RunConfig
	IRIs   IRIFactory
	Log    logrus.FieldLogger

	// NewSerializer builds the Serializer for the configured Format.
	NewSerializer func(Format) (Serializer, error)
}

// NewBatchedWriter returns a BatchedWriter. If log is nil, a
// logrus.StandardLogger is used.
func NewBatchedWriter(cfg RunConfig, iris IRIFactory, newSerializer func(Format) (Serializer, error), log logrus.FieldLogger) *BatchedWriter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &BatchedWriter{Config: cfg, IRIs: iris, NewSerializer: newSerializer, Log: log}
}

// Summary reports what a run actually wrote, for the end-of-run manifest.
type Summary struct {
	FilesWritten      []string
	TriplesWritten    int
	FeaturesProcessed int
	FeaturesSkipped   int
	Errors            []string
}

func ensureDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return wrapErr(KindIOError, "ensureDir", "creating output directory", err)
	}
	return nil
}

func (w *BatchedWriter) writeFile(path string, triples []Triple) error {
	if len(triples) == 0 {
		return nil
	}
	ser, err := w.NewSerializer(w.Config.Format)
	if err != nil {
		return wrapErr(KindInvalidConfig, "BatchedWriter.writeFile", "building serializer", err)
	}
	data, err := ser.Serialize(triples)
	if err != nil {
		return wrapErr(KindIOError, "BatchedWriter.writeFile", "serializing triples", err)
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapErr(KindIOError, "BatchedWriter.writeFile", fmt.Sprintf("writing %s", path), err)
	}
	return nil
}

// RunFeatureMode runs feature mode: every feature is dispatched to a
// worker in the pool, which drives the RelationMaterializer and
// accumulates triples until its buffer holds at least flush_threshold,
// then serializes them in files of at most flush_threshold triples each,
// <outDir>/triples_<worker>_<n>.<ext>, and clears its buffer. A worker
// error does not stop the other work: the remaining features are still
// processed, and the job then returns an error carrying every worker
// error; files already flushed remain on disk.
func (w *BatchedWriter) RunFeatureMode(outDir string, features []Feature) (Summary, error) {
	const op = "BatchedWriter.RunFeatureMode"
	if err := ensureDir(outDir); err != nil {
		return Summary{}, err
	}
	ext, err := w.Config.Format.Ext()
	if err != nil {
		return Summary{}, wrapErr(KindInvalidConfig, op, "resolving format extension", err)
	}
	threshold := w.Config.FlushThreshold
	if threshold <= 0 {
		threshold = defaultFlushThreshold
	}

	jobs := make(chan Feature)
	results := make(chan Summary)
	errs := make(chan error, w.Config.poolSize())

	var wg sync.WaitGroup
	for worker := 0; worker < w.Config.poolSize(); worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			log := w.Log.WithField("worker", workerID)
			coverer := NewCoverer(w.Config.effectiveMinLevel(), w.Config.MaxLevel, 0)
			adapter := NewGeometryAdapter(w.Config.Tolerance)
			materializer := NewRelationMaterializer(NewTilingEngine(adapter), w.IRIs)

			buf := NewTripleBuffer()
			n := 0
			var files []string
			var processed, skipped, written int

			flush := func() error {
				triples := buf.Triples()
				for len(triples) > 0 {
					chunk := triples
					if len(chunk) > threshold {
						chunk = chunk[:threshold]
					}
					path := filepath.Join(outDir, fmt.Sprintf("triples_%d_%d%s", workerID, n, ext))
					if err := w.writeFile(path, chunk); err != nil {
						return err
					}
					files = append(files, path)
					written += len(chunk)
					n++
					triples = triples[len(chunk):]
				}
				buf.Clear()
				return nil
			}

			for f := range jobs {
				triples, err := materializer.Materialize(f.IRI, f.Geometry, coverer)
				if err != nil {
					if err2, ok := err.(*Error); ok && err2.Kind == KindUnsupportedGeometry {
						log.WithField("feature", f.IRI).WithError(err).Warn("skipping feature with unsupported geometry")
						skipped++
						continue
					}
					errs <- wrapErr(KindIOError, op, fmt.Sprintf("materializing feature %s", f.IRI), err)
					continue
				}
				buf.AddAll(triples)
				processed++
				if buf.Len() >= threshold {
					if err := flush(); err != nil {
						errs <- err
						continue
					}
				}
			}
			if err := flush(); err != nil {
				errs <- err
			}
			results <- Summary{FilesWritten: files, TriplesWritten: written, FeaturesProcessed: processed, FeaturesSkipped: skipped}
		}(worker)
	}

	go func() {
		for _, f := range features {
			jobs <- f
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
		close(errs)
	}()

	var errList []string
	errsDone := make(chan struct{})
	go func() {
		for e := range errs {
			errList = append(errList, e.Error())
		}
		close(errsDone)
	}()

	var total Summary
	for r := range results {
		total.FilesWritten = append(total.FilesWritten, r.FilesWritten...)
		total.TriplesWritten += r.TriplesWritten
		total.FeaturesProcessed += r.FeaturesProcessed
		total.FeaturesSkipped += r.FeaturesSkipped
	}
	<-errsDone
	total.Errors = errList
	if len(total.Errors) > 0 {
		return total, fmt.Errorf("%s: %d worker error(s), first: %s", op, len(total.Errors), total.Errors[0])
	}
	return total, nil
}

// RunCellMode runs cell mode: each batch (already chunked to at most
// batch_size cell ids by the caller) is dispatched to a worker, which
// drives CellDescriber for every id in the batch into a fresh
// TripleBuffer, then serializes once per batch to
// <outDir>/level_<L>/<first-cell-id>.<ext>.
func (w *BatchedWriter) RunCellMode(outDir string, level int, batches [][]CellIdentity) (Summary, error) {
	const op = "BatchedWriter.RunCellMode"
	levelDir := filepath.Join(outDir, fmt.Sprintf("level_%d", level))
	if err := ensureDir(levelDir); err != nil {
		return Summary{}, err
	}
	ext, err := w.Config.Format.Ext()
	if err != nil {
		return Summary{}, wrapErr(KindInvalidConfig, op, "resolving format extension", err)
	}

	jobs := make(chan []CellIdentity)
	results := make(chan Summary)
	errs := make(chan error, w.Config.poolSize())

	var wg sync.WaitGroup
	for worker := 0; worker < w.Config.poolSize(); worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			describer := NewCellDescriber(w.IRIs)
			var files []string
			var written int
			for batch := range jobs {
				if len(batch) == 0 {
					continue
				}
				buf := NewTripleBuffer()
				for _, c := range batch {
					triples, err := describer.Describe(c, w.Config.TargetParentLevel)
					if err != nil {
						errs <- wrapErr(KindIOError, op, fmt.Sprintf("describing cell %d", c.ID()), err)
						continue
					}
					buf.AddAll(triples)
				}
				path := filepath.Join(levelDir, fmt.Sprintf("%d%s", batch[0].ID(), ext))
				if err := w.writeFile(path, buf.Triples()); err != nil {
					errs <- err
					continue
				}
				files = append(files, path)
				written += buf.Len()
			}
			results <- Summary{FilesWritten: files, TriplesWritten: written}
		}(worker)
	}

	go func() {
		for _, b := range batches {
			jobs <- b
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
		close(errs)
	}()

	var errList []string
	errsDone := make(chan struct{})
	go func() {
		for e := range errs {
			errList = append(errList, e.Error())
		}
		close(errsDone)
	}()

	var total Summary
	for r := range results {
		total.FilesWritten = append(total.FilesWritten, r.FilesWritten...)
		total.TriplesWritten += r.TriplesWritten
	}
	<-errsDone
	total.Errors = errList
	if len(total.Errors) > 0 {
		return total, fmt.Errorf("%s: %d worker error(s), first: %s", op, len(total.Errors), total.Errors[0])
	}
	return total, nil
}

// ChunkCells splits a sequence of cell ids (e.g. from IterateLevel) into
// batches of at most batchSize, the shape RunCellMode expects.
func ChunkCells(ids []CellIdentity, batchSize int) [][]CellIdentity {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	var out [][]CellIdentity
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[i:end])
	}
	return out
}
