// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoStem reports an input path with no usable file name stem, such as
// "." or a filesystem root.
var ErrNoStem = errors.New("path has no file name stem")

// OutputFile computes the output path for inputPath: same stem, outputExt
// as the extension (given without leading dot), outputDir as the parent.
// Pure path arithmetic, no I/O.
func OutputFile(inputPath, outputDir, outputExt string) (string, error) {
	stem, err := Stem(inputPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, stem+"."+outputExt), nil
}

// Stem returns the file name of path without its extension. A leading-dot
// name with no further extension (".profile") is its own stem.
func Stem(path string) (string, error) {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%s: %w", path, ErrNoStem)
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return stem, nil
}
