package render

import (
	"math"

	"github.com/lightfold/rayscope/vectors"
)

// Camera models a pinhole camera: all rays originate at Position and pass
// through a virtual screen one unit along Forward, sized by the field of view.
type Camera struct {
	FOVDeg     float64
	TanHalfFOV float64
	Position   vectors.Vec3
	Forward    vectors.Vec3
	Right      vectors.Vec3
	Up         vectors.Vec3
}

// NewCamera constructs a camera at position looking toward lookAt, with the
// given horizontal field of view in degrees. The world's +Y axis is up.
func NewCamera(position, lookAt vectors.Vec3, fovDeg float64) Camera {
	fovRad := fovDeg * math.Pi / 180.0
	tanHalf := math.Tan(fovRad / 2.0)

	// Basis vectors
	fwd := lookAt.Sub(position).Normalize()
	globalUp := vectors.Vec3{X: 0, Y: 1, Z: 0}
	right := globalUp.Cross(fwd)
	if right.Norm() < 1e-6 {
		right = vectors.Vec3{X: 1, Y: 0, Z: 0} // looking straight up or down
	}
	right = right.Normalize()
	up := fwd.Cross(right).Normalize()

	return Camera{
		FOVDeg:     fovDeg,
		TanHalfFOV: tanHalf,
		Position:   position,
		Forward:    fwd,
		Right:      right,
		Up:         up,
	}
}

// rotateVec applies Rodrigues’ rotation formula: rotate v around axis by (cosT, sinT).
func rotateVec(v, axis vectors.Vec3, cosT, sinT float64) vectors.Vec3 {
	// v*cos + (axis x v)*sin + axis*(axis·v)*(1-cos)
	return v.Scale(cosT).
		Add(axis.Cross(v).Scale(sinT)).
		Add(axis.Scale(axis.Dot(v) * (1.0 - cosT)))
}

// Tilted returns a copy of the camera pitched up or down around its Right
// axis by tiltDeg.
func (c Camera) Tilted(tiltDeg float64) Camera {
	if tiltDeg == 0 {
		return c
	}
	theta := tiltDeg * math.Pi / 180.0
	cos, sin := math.Cos(theta), math.Sin(theta)

	c.Forward = rotateVec(c.Forward, c.Right, cos, sin).Normalize()
	c.Up = rotateVec(c.Up, c.Right, cos, sin).Normalize()
	return c
}

// Yawed returns a copy of the camera panned left or right around its Up axis
// by yawDeg.
func (c Camera) Yawed(yawDeg float64) Camera {
	if yawDeg == 0 {
		return c
	}
	theta := yawDeg * math.Pi / 180.0
	cos, sin := math.Cos(theta), math.Sin(theta)

	c.Forward = rotateVec(c.Forward, c.Up, cos, sin).Normalize()
	c.Right = rotateVec(c.Right, c.Up, cos, sin).Normalize()
	return c
}

// Ray returns the viewing ray for pixel (i,j) given the image dimensions
// (width,height). i,j can be fractional (for supersampling). The returned
// direction is normalized.
func (c Camera) Ray(i, j float64, width, height int) vectors.Ray {
	w := float64(width)
	h := float64(height)

	// NDC in [-1, +1] (centered), flip Y to make +up in screen space.
	xNDC := (i - (w-1)/2.0) / ((w - 1) / 2.0)
	yNDC := -((j - (h-1)/2.0) / ((h - 1) / 2.0))

	// Square pixels: the vertical extent scales with the aspect ratio.
	xPlane := xNDC * c.TanHalfFOV
	yPlane := yNDC * c.TanHalfFOV * h / w
	zPlane := 1.0

	dir := c.Right.Scale(xPlane).
		Add(c.Up.Scale(yPlane)).
		Add(c.Forward.Scale(zPlane))

	return vectors.NewRay(c.Position, dir.Normalize())
}
