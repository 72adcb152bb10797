package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/lightfold/rayscope/colors"
)

// Framebuffer is a width×height buffer of linear RGBA float pixels. Values
// range from 0 to 1; gamma correction happens only on the way out.
type Framebuffer struct {
	width  int
	height int
	pixels []colors.Color4
}

// NewFramebuffer allocates a buffer of black, opaque pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	pixels := make([]colors.Color4, width*height)
	for i := range pixels {
		pixels[i] = colors.Black()
	}
	return &Framebuffer{width: width, height: height, pixels: pixels}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Set stores the pixel at (x, y). Out-of-range coordinates panic.
func (f *Framebuffer) Set(x, y int, c colors.Color4) {
	f.pixels[f.index(x, y)] = c
}

// At returns the pixel at (x, y).
func (f *Framebuffer) At(x, y int) colors.Color4 {
	return f.pixels[f.index(x, y)]
}

func (f *Framebuffer) index(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("render: pixel (%d,%d) outside %dx%d framebuffer", x, y, f.width, f.height))
	}
	return f.width*y + x
}

// ToNRGBA converts the linear buffer to a gamma-corrected sRGB image.
func (f *Framebuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetNRGBA(x, y, f.At(x, y).ToSRGBA())
		}
	}
	return img
}

// WritePNG encodes the buffer as a PNG file at path.
func (f *Framebuffer) WritePNG(path string) error {
	return WritePNG(path, f.ToNRGBA())
}

// WritePNG writes img to path, encoded for speed rather than size.
func WritePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(out, img)
}
