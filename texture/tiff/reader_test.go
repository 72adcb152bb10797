package tiff

import (
	"encoding/binary"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// writeTestTIFF assembles a minimal little-endian, uncompressed, striped
// 2x2 RGB TIFF on disk and returns its path.
func writeTestTIFF(t *testing.T) string {
	t.Helper()

	le := binary.LittleEndian
	buf := make([]byte, 0, 160)

	u16 := func(v uint16) { buf = le.AppendUint16(buf, v) }
	u32 := func(v uint32) { buf = le.AppendUint32(buf, v) }
	entry := func(tag, typ uint16, count, value uint32) {
		u16(tag)
		u16(typ)
		u32(count)
		u32(value)
	}

	const (
		ifdOffset       = 8
		numEntries      = 9
		bitsArrayOffset = ifdOffset + 2 + numEntries*12 + 4 // after next-IFD pointer
		pixelDataOffset = bitsArrayOffset + 8               // padded to a word boundary
		typeShort       = 3
		typeLong        = 4
	)

	// File header
	buf = append(buf, 'I', 'I')
	u16(42)
	u32(ifdOffset)

	// IFD
	u16(numEntries)
	entry(tagImageWidth, typeShort, 1, 2)
	entry(tagImageLength, typeShort, 1, 2)
	entry(tagBitsPerSample, typeShort, 3, bitsArrayOffset)
	entry(tagCompression, typeShort, 1, compressionNone)
	entry(tagPhotometricInterpretation, typeShort, 1, photometricRGB)
	entry(tagStripOffsets, typeLong, 1, pixelDataOffset)
	entry(tagSamplesPerPixel, typeShort, 1, 3)
	entry(tagRowsPerStrip, typeShort, 1, 2)
	entry(tagStripByteCounts, typeLong, 1, 12)
	u32(0) // no next IFD

	// BitsPerSample array
	u16(8)
	u16(8)
	u16(8)
	u16(0) // padding

	// Pixel data: red, green / blue, white
	buf = append(buf,
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	)

	path := filepath.Join(t.TempDir(), "test.tif")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write test TIFF: %v", err)
	}
	return path
}

func TestOpenStripedRGB(t *testing.T) {
	img, err := Open(writeTestTIFF(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds %v, want 2x2", b)
	}

	want := map[[2]int]color.RGBA{
		{0, 0}: {255, 0, 0, 255},
		{1, 0}: {0, 255, 0, 255},
		{0, 1}: {0, 0, 255, 255},
		{1, 1}: {255, 255, 255, 255},
	}
	for px, c := range want {
		if got := img.At(px[0], px[1]); got != c {
			t.Errorf("pixel %v: got %v, want %v", px, got, c)
		}
	}

	// Second read of the same strip comes from the cache.
	if got := img.At(0, 0); got != want[[2]int{0, 0}] {
		t.Errorf("cached pixel: got %v", got)
	}
}

func TestOpenRejectsNonTIFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-tiff.png")
	if err := os.WriteFile(path, []byte("\x89PNG definitely not a tiff"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("got %v, want ErrInvalidHeader", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.tif"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if errors.Is(err, ErrInvalidHeader) {
		t.Error("missing file should not be classified as an invalid header")
	}
}
