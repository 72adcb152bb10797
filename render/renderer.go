package render

import (
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lightfold/rayscope/colors"
)

// Options controls a render pass.
type Options struct {
	Width, Height int
	Supersample   int // n: n×n rays per pixel; values < 1 mean 1
	Workers       int // parallel row workers; values < 1 mean GOMAXPROCS
}

// GenerateSupersamplingOffsets returns n×n offsets in [-0.5, +0.5] for
// supersampling, as pairs (dx, dy) with pixel-center spacing.
func GenerateSupersamplingOffsets(n int) [][2]float64 {
	if n <= 0 {
		return nil
	}
	step := 1.0 / float64(n)
	out := make([][2]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := (float64(i)+0.5)*step - 0.5
			dy := (float64(j)+0.5)*step - 0.5
			out = append(out, [2]float64{dx, dy})
		}
	}
	return out
}

// Render traces the scene through the camera into an sRGB image. Rows are
// rendered concurrently; every intersection query is a pure function over
// immutable data, so workers share the scene without synchronization.
func Render(scene *Scene, camera Camera, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: invalid image size %dx%d", opts.Width, opts.Height)
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	fb := NewFramebuffer(opts.Width, opts.Height)
	offsets := GenerateSupersamplingOffsets(opts.Supersample)
	invN := 1.0 / float64(len(offsets))

	var g errgroup.Group
	g.SetLimit(opts.Workers)

	for y := 0; y < opts.Height; y++ {
		g.Go(func() error {
			for x := 0; x < opts.Width; x++ {
				accum := colors.Color4{}
				for _, off := range offsets {
					ray := camera.Ray(float64(x)+off[0], float64(y)+off[1], opts.Width, opts.Height)
					accum = accum.Add(scene.Shade(ray))
				}
				fb.Set(x, y, accum.Scale(invN))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fb.ToNRGBA(), nil
}
