// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphic

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// buildPCX assembles a minimal RLE-compressed 256-color PCX stream: 128-byte
// header, one RLE run per pixel row, then the 0x0C marker and the 768-byte
// extended palette. The header's first four bytes are deliberately zeroed so
// every test also exercises the header normalization.
func buildPCX(width, height int, pix []byte, palette [768]byte) []byte {
	hdr := make([]byte, 128)
	hdr[8] = byte(width - 1) // xmax, little endian
	hdr[9] = byte((width - 1) >> 8)
	hdr[10] = byte(height - 1) // ymax
	hdr[11] = byte((height - 1) >> 8)
	hdr[65] = 1 // planes
	hdr[66] = byte(width)
	hdr[67] = byte(width >> 8)

	var buf bytes.Buffer
	buf.Write(hdr)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := pix[y*width+x]
			if v >= 0xc0 {
				// High values collide with the RLE run marker and need
				// an explicit run of one.
				buf.WriteByte(0xc1)
			}
			buf.WriteByte(v)
		}
	}
	buf.WriteByte(0x0c)
	buf.Write(palette[:])
	return buf.Bytes()
}

func testPalette() [768]byte {
	var pal [768]byte
	// Entry 0 stays (0, 0, 0); give the rest distinct values.
	for i := 1; i < 256; i++ {
		pal[i*3] = byte(i)
		pal[i*3+1] = byte(255 - i)
		pal[i*3+2] = byte(i / 2)
	}
	return pal
}

func TestDecodePCX(t *testing.T) {
	pal := testPalette()
	data := buildPCX(2, 2, []byte{0, 1, 2, 3}, pal)

	img, err := DecodePCX(data)
	if err != nil {
		t.Fatalf("DecodePCX: %v", err)
	}

	if img.Width != 2 || img.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", img.Width, img.Height)
	}
	if !bytes.Equal(img.Pix, []byte{0, 1, 2, 3}) {
		t.Errorf("pixels = %v, want [0 1 2 3]", img.Pix)
	}
	if img.Palette != pal {
		t.Error("palette does not match the embedded color table")
	}
	if img.Palette[0] != 0 || img.Palette[1] != 0 || img.Palette[2] != 0 {
		t.Error("palette entry 0 should be (0, 0, 0)")
	}
}

func TestDecodePCX_NormalizesLegacyHeader(t *testing.T) {
	data := buildPCX(1, 1, []byte{7}, testPalette())
	// buildPCX zeroes the first four bytes; make them actively wrong too.
	copy(data, []byte{0xff, 0xee, 0xdd, 0xcc})

	img, err := DecodePCX(data)
	if err != nil {
		t.Fatalf("DecodePCX: %v", err)
	}
	if img.Pix[0] != 7 {
		t.Errorf("pixel = %d, want 7", img.Pix[0])
	}
}

func TestDecodePCX_HighPixelValues(t *testing.T) {
	// Values >= 0xC0 require RLE escaping; make sure they survive.
	img, err := DecodePCX(buildPCX(2, 1, []byte{0xc0, 0xff}, testPalette()))
	if err != nil {
		t.Fatalf("DecodePCX: %v", err)
	}
	if !bytes.Equal(img.Pix, []byte{0xc0, 0xff}) {
		t.Errorf("pixels = %v, want [192 255]", img.Pix)
	}
}

func TestDecodePCX_TooSmall(t *testing.T) {
	for _, data := range [][]byte{nil, {0x0a}, {0x0a, 0x05, 0x01}} {
		if _, err := DecodePCX(data); !errors.Is(err, ErrTooSmall) {
			t.Errorf("DecodePCX(%d bytes) error = %v, want ErrTooSmall", len(data), err)
		}
	}
}

func TestDecodePCX_TruncatedStream(t *testing.T) {
	data := buildPCX(2, 2, []byte{0, 1, 2, 3}, testPalette())
	_, err := DecodePCX(data[:64])
	if err == nil {
		t.Fatal("DecodePCX should fail on a truncated stream")
	}
	if errors.Is(err, ErrTooSmall) || errors.Is(err, ErrNotPaletted) {
		t.Errorf("truncated stream should be a plain decode error, got %v", err)
	}
}

func TestDecodePCX_MissingPalette(t *testing.T) {
	data := buildPCX(2, 2, []byte{0, 1, 2, 3}, testPalette())
	// Cut off the 0x0C marker and the color table.
	if _, err := DecodePCX(data[:len(data)-769]); err == nil {
		t.Fatal("DecodePCX should fail when the extended palette is missing")
	}
}

func TestDecodePCX_NotPaletted(t *testing.T) {
	data := buildPCX(2, 2, []byte{0, 1, 2, 3}, testPalette())
	data[68] = 2 // grayscale flag; decodes to a non-paletted image

	if _, err := DecodePCX(data); !errors.Is(err, ErrNotPaletted) {
		t.Errorf("error = %v, want ErrNotPaletted", err)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := &PaletteImage{
		Width:   2,
		Height:  2,
		Pix:     []byte{0, 1, 2, 3},
		Palette: testPalette(),
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	paletted, ok := decoded.(*image.Paletted)
	if !ok {
		t.Fatalf("decoded to %T, want *image.Paletted", decoded)
	}

	r, g, b, _ := paletted.Palette[0].RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("color table entry 0 = (%d, %d, %d), want (0, 0, 0)", r>>8, g>>8, b>>8)
	}

	for i, want := range []color.RGBA{
		{0, 0, 0, 255},
		{1, 254, 0, 255},
		{2, 253, 1, 255},
		{3, 252, 1, 255},
	} {
		got := paletted.At(i%2, i/2)
		if got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestConverter_Convert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "TITLE.PCX")
	out := filepath.Join(dir, "TITLE.PNG")
	if err := os.WriteFile(in, buildPCX(2, 2, []byte{0, 1, 2, 3}, testPalette()), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := (Converter{}).Convert(in, out); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("output dimensions = %dx%d, want 2x2", cfg.Width, cfg.Height)
	}
}

func TestConverter_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "BAD.PCX")
	out := filepath.Join(dir, "BAD.PNG")
	if err := os.WriteFile(in, []byte{1, 2}, 0o644); err != nil {
		t.Fatal(err)
	}

	err := (Converter{}).Convert(in, out)
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("Convert error = %v, want ErrTooSmall", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no output file may exist after a decode failure")
	}
}
