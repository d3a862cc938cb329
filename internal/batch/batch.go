// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch executes one conversion job: scan the input directory,
// pair every candidate with its output path, and run the conversions on a
// bounded worker pool with per-file failure isolation.
package batch

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/pdiddy/jonathan-convert/internal/scan"
	"github.com/pdiddy/jonathan-convert/pkg/types"
)

// Run processes every matching file of job. Scanning, pairing, and output
// directory creation failures abort the job with an error: they mean the
// batch itself cannot proceed. Individual conversion failures do not; they
// are reported as failed outcomes and printed to w after the pool drains,
// and Run still returns nil.
//
// workers bounds concurrent conversions; zero or negative means one per
// available CPU. A progress line naming both paths is printed before each
// conversion starts. Ordering between different files' lines is undefined.
func Run(job types.Job, workers int, w io.Writer) ([]types.Outcome, error) {
	inputs, err := scan.List(job.InputDir, job.InputExt)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", job.OutputDir, err)
	}

	pairs := make([]types.FilePair, len(inputs))
	for i, input := range inputs {
		output, err := scan.OutputFile(input, job.OutputDir, job.OutputExt)
		if err != nil {
			return nil, fmt.Errorf("resolving output path for %s: %w", input, err)
		}
		pairs[i] = types.FilePair{Input: input, Output: output}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]types.Outcome, len(pairs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex // serializes progress lines on w

	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair types.FilePair) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			mu.Lock()
			fmt.Fprintf(w, "Converting '%s' to '%s' ...\n", pair.Input, pair.Output)
			mu.Unlock()

			err := job.Converter.Convert(pair.Input, pair.Output)
			if err != nil {
				err = fmt.Errorf("converting %s to %s: %w", pair.Input, pair.Output, err)
			}
			outcomes[i] = types.Outcome{Pair: pair, Err: err}
		}(i, pair)
	}
	wg.Wait()

	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "error: %v\n", o.Err)
		}
	}
	return outcomes, nil
}
