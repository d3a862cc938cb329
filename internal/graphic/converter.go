// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphic

import (
	"bufio"
	"fmt"
	"os"
)

// Converter turns one PCX file into an indexed PNG file. It implements
// types.FileConverter.
type Converter struct{}

// Convert decodes the PCX file at inputPath and writes it as PNG to
// outputPath, truncating any existing file. A decode failure leaves no
// output; an encode failure may leave a partial file that callers must
// not rely on.
func (Converter) Convert(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file %s: %w", inputPath, err)
	}

	img, err := DecodePCX(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}

	w := bufio.NewWriter(f)
	if err := EncodePNG(w, img); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
