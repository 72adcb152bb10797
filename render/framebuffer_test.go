package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lightfold/rayscope/colors"
)

func TestFramebufferSetAndAt(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	if fb.At(0, 0) != colors.Black() {
		t.Errorf("fresh buffer pixel: got %v, want opaque black", fb.At(0, 0))
	}

	c := colors.New(0.25, 0.5, 0.75, 1)
	fb.Set(3, 2, c)
	if fb.At(3, 2) != c {
		t.Errorf("got %v, want %v", fb.At(3, 2), c)
	}
}

func TestFramebufferOutOfRangePanics(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range pixel")
		}
	}()
	fb.Set(2, 0, colors.White())
}

func TestFramebufferToNRGBAGammaEncodes(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, colors.White())
	// Mid-gray in linear light is brighter than 128 after gamma encoding.
	fb.Set(1, 0, colors.New(0.5, 0.5, 0.5, 1))

	img := fb.ToNRGBA()
	white := img.NRGBAAt(0, 0)
	if white.R != 255 || white.G != 255 || white.B != 255 || white.A != 255 {
		t.Errorf("white pixel encoded as %v", white)
	}
	gray := img.NRGBAAt(1, 0)
	if gray.R <= 128 {
		t.Errorf("linear 0.5 encoded to %d, expected > 128 after sRGB transfer", gray.R)
	}
}

func TestFramebufferWritePNG(t *testing.T) {
	fb := NewFramebuffer(5, 4)
	fb.Set(2, 2, colors.Red())

	path := filepath.Join(t.TempDir(), "out.png")
	if err := fb.WritePNG(path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 4 {
		t.Errorf("decoded size %v, want 5x4", img.Bounds())
	}
}
