// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records passed between the pipeline
// stages: conversion jobs, file pairs, and per-file outcomes.
package types

// FileStatus indicates the result of converting one input file.
type FileStatus string

const (
	FileConverted FileStatus = "converted"
	FileFailed    FileStatus = "failed"
)

// FileConverter converts one input file into one output file. Graphics and
// text conversions each provide their own implementation.
type FileConverter interface {
	// Convert reads the file at inputPath, transcodes it, and writes the
	// result to outputPath. Callers must not assume outputPath is usable
	// when an error is returned.
	Convert(inputPath, outputPath string) error
}

// Job describes one asset category's end-to-end conversion pass: which
// directory to scan, which files to pick up, and where the results go.
// A Job is immutable once constructed.
type Job struct {
	// Name labels the job in console output and reports (e.g. "graphics").
	Name string `json:"name" yaml:"name"`

	// InputDir is the directory scanned for input files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// InputExt is the extension picked up in InputDir, without leading
	// dot, matched case-insensitively (e.g. "PCX").
	InputExt string `json:"input_ext" yaml:"input_ext"`

	// OutputDir is the sibling directory conversion results are written
	// to. It is created before any file is processed.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OutputExt is the extension of produced files, without leading dot.
	OutputExt string `json:"output_ext" yaml:"output_ext"`

	// Converter performs the per-file transcoding for this category.
	Converter FileConverter `json:"-" yaml:"-"`
}

// FilePair binds one input file to its deterministic output path. Each pair
// is consumed by exactly one conversion call.
type FilePair struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// Outcome is the result of converting a single file pair. Err is nil when
// the conversion succeeded.
type Outcome struct {
	Pair FilePair
	Err  error
}

// Status returns the FileStatus corresponding to the outcome.
func (o Outcome) Status() FileStatus {
	if o.Err != nil {
		return FileFailed
	}
	return FileConverted
}
