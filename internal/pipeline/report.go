// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// RunReport is the on-disk record of one conversion run. It names every
// failed file so a batch over thousands of assets can be audited without
// scrolling console output.
type RunReport struct {
	Root     string      `yaml:"root"`
	Started  time.Time   `yaml:"started"`
	Finished time.Time   `yaml:"finished"`
	Jobs     []JobReport `yaml:"jobs"`
}

// JobReport summarizes one job's outcomes.
type JobReport struct {
	Name      string        `yaml:"name"`
	InputDir  string        `yaml:"input_dir"`
	OutputDir string        `yaml:"output_dir"`
	Converted int           `yaml:"converted"`
	Failed    int           `yaml:"failed"`
	Failures  []FileFailure `yaml:"failures,omitempty"`
}

// FileFailure records one file that could not be converted.
type FileFailure struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

// WriteReport saves the run report to path as YAML.
func WriteReport(path string, report RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
