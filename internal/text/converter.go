// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package text

import (
	"fmt"
	"os"
)

// Converter turns one TCT file into a UTF-8 text file. It implements
// types.FileConverter.
type Converter struct{}

// Convert reads the proprietary-encoded file at inputPath and writes the
// decoded UTF-8 text to outputPath. The output file is only created after
// the whole input decoded successfully, so an illegal byte never leaves a
// partial file behind.
func (Converter) Convert(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file %s: %w", inputPath, err)
	}

	decoded, err := Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, []byte(decoded), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
