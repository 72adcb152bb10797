// Package texture samples equirectangular images by view direction, for
// wrapping maps around spheres.
package texture

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"math"
	"os"

	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode

	eftiff "github.com/echoflaresat/tiff"

	"github.com/lightfold/rayscope/colors"
	"github.com/lightfold/rayscope/texture/tiff"
	"github.com/lightfold/rayscope/vectors"
)

// Texture is an equirectangular image sampled by unit direction: longitude
// maps across the width, latitude down the height.
type Texture struct {
	Width  int
	Height int
	img    image.Image
}

// New wraps an already decoded image.
func New(img image.Image) Texture {
	return Texture{
		Width:  img.Bounds().Max.X,
		Height: img.Bounds().Max.Y,
		img:    img,
	}
}

// Load reads the image at path. Baseline TIFFs are memory-mapped and decoded
// lazily; anything else goes through the registered image codecs.
func Load(path string) (Texture, error) {
	img, err := loadImage(path)
	if err != nil {
		return Texture{}, err
	}
	return New(img), nil
}

func loadImage(path string) (image.Image, error) {
	img, err := tiff.Open(path)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, tiff.ErrInvalidHeader) {
		slog.Warn("failed to map TIFF, decoding eagerly", "path", path, "error", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Non-baseline TIFFs the mapped reader rejects.
	img, err = eftiff.Decode(f)
	if err == nil {
		return img, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err = image.Decode(f)
	return img, err
}

// Sample maps the unit direction dir to texel coordinates and returns the
// color there. The world's +Y axis is the texture's north pole; no
// interpolation.
func (t Texture) Sample(dir vectors.Vec3) colors.Color4 {
	lat := math.Atan2(dir.Y, math.Sqrt(dir.X*dir.X+dir.Z*dir.Z))
	lon := math.Atan2(dir.Z, dir.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}

	u := lon / (2 * math.Pi) * float64(t.Width-1)
	v := (0.5 - lat/math.Pi) * float64(t.Height-1)

	x := int(u)
	y := int(v)

	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}

	return colors.FromStandardColor(t.img.At(x, y))
}
