package surfaces

import (
	"math"

	"github.com/lightfold/rayscope/vectors"
)

// BoundingBox is an axis-aligned box used as a cheap rejection test before
// the exact primitive math. Min holds the componentwise-minimum corner and
// Max the componentwise-maximum corner.
type BoundingBox struct {
	Min, Max vectors.Vec3
}

// NewBoundingBox builds the box spanning two opposite corners. The corners
// may come in any order; min and max are derived per axis so the slab test's
// algebra holds regardless of how the caller passed them.
func NewBoundingBox(a, b vectors.Vec3) BoundingBox {
	return BoundingBox{
		Min: vectors.Vec3{
			X: math.Min(a.X, b.X),
			Y: math.Min(a.Y, b.Y),
			Z: math.Min(a.Z, b.Z),
		},
		Max: vectors.Vec3{
			X: math.Max(a.X, b.X),
			Y: math.Max(a.Y, b.Y),
			Z: math.Max(a.Z, b.Z),
		},
	}
}

// Intersects reports whether the ray hits the box, using the slab method:
// the ray's parametric range is intersected against each pair of
// axis-perpendicular bounding planes in turn. Rays starting inside the box
// count as hits.
func (b BoundingBox) Intersects(ray vectors.Ray) bool {
	t := vectors.NewInterval(math.Inf(-1), math.Inf(1))

	axes := [3]struct {
		origin, dir, lo, hi float64
	}{
		{ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X},
		{ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y},
		{ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z},
	}

	for _, a := range axes {
		if a.dir == 0 {
			// The ray travels parallel to this slab. It can only hit
			// the box if it starts between the two bounding planes.
			if a.origin < a.lo || a.origin > a.hi {
				return false
			}
			continue
		}

		t0 := (a.lo - a.origin) / a.dir
		t1 := (a.hi - a.origin) / a.dir

		var ok bool
		t, ok = t.Intersect(vectors.NewInterval(t0, t1))
		if !ok {
			return false
		}
	}

	// Some part of the crossing range must lie at or ahead of the origin.
	return t.Lo >= 0 || t.Hi >= 0
}
