// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphic decodes the game's 256-color PCX images and re-encodes
// them as indexed PNG files.
package graphic

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/samuel/go-pcx/pcx"
)

// The asset set predates PCX 3.0 and ships files whose first header bytes
// disagree with their actual contents. Forcing "version 5, RLE, 8 bpp"
// before parsing makes every file in the set readable.
var headerPatch = [4]byte{0x0a, 0x05, 0x01, 0x08}

var (
	// ErrTooSmall reports an input shorter than the patchable header.
	ErrTooSmall = errors.New("file too small to be a PCX image")

	// ErrNotPaletted reports a PCX stream that decoded to something other
	// than a 256-color paletted image.
	ErrNotPaletted = errors.New("image does not carry a 256 color palette")
)

// PaletteImage is a fully decoded 256-color image: one palette index per
// pixel in row-major order, plus the 768-byte RGB color table. It is only
// ever constructed complete; a failed decode produces no PaletteImage.
type PaletteImage struct {
	Width   int
	Height  int
	Pix     []byte // len Width*Height, one palette index per byte
	Palette [768]byte
}

// DecodePCX normalizes the legacy header of data and decodes it as a
// 256-color paletted PCX stream. The input slice is not modified.
func DecodePCX(data []byte) (*PaletteImage, error) {
	if len(data) < len(headerPatch) {
		return nil, ErrTooSmall
	}

	patched := make([]byte, len(data))
	copy(patched, data)
	copy(patched, headerPatch[:])

	img, err := pcx.Decode(bytes.NewReader(patched))
	if err != nil {
		return nil, fmt.Errorf("parsing PCX stream: %w", err)
	}

	paletted, ok := img.(*image.Paletted)
	if !ok || len(paletted.Palette) != 256 {
		return nil, ErrNotPaletted
	}

	bounds := paletted.Bounds()
	out := &PaletteImage{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	out.Pix = make([]byte, out.Width*out.Height)
	for y := 0; y < out.Height; y++ {
		row := paletted.Pix[y*paletted.Stride : y*paletted.Stride+out.Width]
		copy(out.Pix[y*out.Width:], row)
	}

	for i, c := range paletted.Palette {
		r, g, b, _ := c.RGBA()
		out.Palette[i*3] = byte(r >> 8)
		out.Palette[i*3+1] = byte(g >> 8)
		out.Palette[i*3+2] = byte(b >> 8)
	}
	return out, nil
}
