// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the two fixed conversion jobs — graphics and
// text — under one game root directory and runs them in order.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/jonathan-convert/internal/batch"
	"github.com/pdiddy/jonathan-convert/internal/catalog"
	"github.com/pdiddy/jonathan-convert/internal/graphic"
	"github.com/pdiddy/jonathan-convert/internal/text"
	"github.com/pdiddy/jonathan-convert/pkg/types"
)

// Fixed directory layout relative to the game root. Input extensions are
// matched case-insensitively.
const (
	gfxInputDir  = "GRAFIK"
	gfxOutputDir = "GRAFIK_PNG"

	textInputDir  = "TEXT"
	textOutputDir = "TEXT_TXT"
)

// Jobs returns the two conversion jobs rooted at root, graphics first.
func Jobs(root string) []types.Job {
	return []types.Job{
		{
			Name:      "graphics",
			InputDir:  filepath.Join(root, gfxInputDir),
			InputExt:  "PCX",
			OutputDir: filepath.Join(root, gfxOutputDir),
			OutputExt: "PNG",
			Converter: graphic.Converter{},
		},
		{
			Name:      "texts",
			InputDir:  filepath.Join(root, textInputDir),
			InputExt:  "TCT",
			OutputDir: filepath.Join(root, textOutputDir),
			OutputExt: "TXT",
			Converter: text.Converter{},
		},
	}
}

// Run converts all assets under root: the graphics job fully finishes
// before the text job starts, so console output stays grouped by category.
// A job's fatal error (unreadable input directory, unusable output
// directory, malformed filename) aborts the run; per-file conversion
// failures are reported by the batch executor and do not.
func Run(root string, cfg types.PipelineConfig, w io.Writer) error {
	var store *catalog.Store
	if cfg.CatalogPath != "" {
		var err error
		store, err = catalog.Open(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer store.Close()
	}

	report := RunReport{
		Root:    root,
		Started: time.Now().UTC(),
	}

	for i, job := range Jobs(root) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Converting %s ...\n", job.Name)

		outcomes, err := batch.Run(job, cfg.Workers, w)
		if err != nil {
			return fmt.Errorf("converting %s: %w", job.Name, err)
		}

		jr := summarize(job, outcomes)
		fmt.Fprintf(w, "%s: %d converted, %d failed\n", job.Name, jr.Converted, jr.Failed)
		report.Jobs = append(report.Jobs, jr)

		if store != nil {
			if err := store.Record(job.Name, outcomes); err != nil {
				return fmt.Errorf("recording %s outcomes: %w", job.Name, err)
			}
		}
	}

	report.Finished = time.Now().UTC()
	if cfg.ReportPath != "" {
		if err := WriteReport(cfg.ReportPath, report); err != nil {
			return fmt.Errorf("writing run report: %w", err)
		}
	}
	return nil
}

// summarize folds per-file outcomes into the report record for one job.
func summarize(job types.Job, outcomes []types.Outcome) JobReport {
	jr := JobReport{
		Name:      job.Name,
		InputDir:  job.InputDir,
		OutputDir: job.OutputDir,
	}
	for _, o := range outcomes {
		if o.Err == nil {
			jr.Converted++
			continue
		}
		jr.Failed++
		jr.Failures = append(jr.Failures, FileFailure{
			Input:  o.Pair.Input,
			Output: o.Pair.Output,
			Error:  o.Err.Error(),
		})
	}
	return jr
}
