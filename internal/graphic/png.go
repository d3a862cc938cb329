// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphic

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// EncodePNG writes img to w as an 8-bit indexed PNG with the full 256-entry
// palette embedded as the color table. On error the bytes already written
// to w are unspecified.
func EncodePNG(w io.Writer, img *PaletteImage) error {
	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = color.RGBA{
			R: img.Palette[i*3],
			G: img.Palette[i*3+1],
			B: img.Palette[i*3+2],
			A: 0xff,
		}
	}

	out := image.NewPaletted(image.Rect(0, 0, img.Width, img.Height), palette)
	copy(out.Pix, img.Pix)

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
