package surfaces

import (
	"fmt"
	"math"

	"github.com/lightfold/rayscope/vectors"
)

// Sphere is a sphere with a center point and a strictly positive radius.
type Sphere struct {
	Center vectors.Vec3
	Radius float64
}

// NewSphere builds a sphere. A radius <= 0 is a programmer error and panics;
// the intersection math silently produces garbage for degenerate spheres, so
// they are rejected up front.
func NewSphere(center vectors.Vec3, radius float64) Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("surfaces: sphere radius must be positive, got %v", radius))
	}
	return Sphere{Center: center, Radius: radius}
}

// BoundingBox returns the minimal axis-aligned box enclosing the sphere,
// center ± radius along each axis. Recomputed on demand, never cached.
func (s Sphere) BoundingBox() BoundingBox {
	r := vectors.Ones().Scale(s.Radius)
	return NewBoundingBox(s.Center.Sub(r), s.Center.Add(r))
}

// ClosestIntersection implements Surface. The bounding box rejects most
// misses before the quadratic runs. Of the two quadratic roots the nearer
// one is preferred; if the origin is inside the sphere (or just past the
// near hit) only the far root is forward, and it is returned instead.
func (s Sphere) ClosestIntersection(ray vectors.Ray) (Intersection, bool) {
	if !s.BoundingBox().Intersects(ray) {
		return Intersection{}, false
	}

	oc := s.Center.Sub(ray.Origin)
	proj := oc.Dot(ray.Direction)
	discriminant := proj*proj - (oc.Norm2() - s.Radius*s.Radius)
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := proj - sqrtD
	if t <= 0 {
		t = proj + sqrtD
		if t <= 0 {
			// Sphere is entirely behind the ray.
			return Intersection{}, false
		}
	}

	normal := ray.Direction.Scale(t).Sub(oc).Normalize()
	return Intersection{Distance: t, Normal: normal}, true
}
