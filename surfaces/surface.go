// Package surfaces implements ray intersection tests for analytic
// geometric primitives.
package surfaces

import "github.com/lightfold/rayscope/vectors"

// Intersection describes where a ray first strikes a surface.
type Intersection struct {
	// Distance is the parametric distance along the ray, in units of the
	// ray direction's length. Always strictly positive.
	Distance float64
	// Normal is the unit surface normal at the hit point. It is not
	// flipped to face the incoming ray; that is the shader's call.
	Normal vectors.Vec3
}

// Surface is anything a ray can intersect.
type Surface interface {
	// ClosestIntersection finds the first forward intersection between the
	// ray and the surface. The second return value is false when the ray
	// misses. A ray starting exactly on the surface counts as a miss, so
	// secondary rays don't immediately re-hit their own origin.
	ClosestIntersection(ray vectors.Ray) (Intersection, bool)
}
