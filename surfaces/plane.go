package surfaces

import "github.com/lightfold/rayscope/vectors"

// Plane is an infinite plane: the set of points p with
// dot(p, normal) == distance.
type Plane struct {
	normal   vectors.Vec3
	distance float64
}

// NewPlane builds a plane from a normal vector and its signed distance from
// the origin along that normal. The normal is normalized here, so callers may
// pass any non-zero vector.
func NewPlane(normal vectors.Vec3, distance float64) Plane {
	return Plane{
		normal:   normal.Normalize(),
		distance: distance,
	}
}

// Normal returns the plane's unit normal.
func (p Plane) Normal() vectors.Vec3 {
	return p.normal
}

// ClosestIntersection implements Surface. A ray parallel to the plane misses,
// including the degenerate ray lying exactly in the plane.
func (p Plane) ClosestIntersection(ray vectors.Ray) (Intersection, bool) {
	d := ray.Direction.Dot(p.normal)
	if d == 0 {
		return Intersection{}, false
	}

	t := (p.distance - ray.Origin.Dot(p.normal)) / d
	if t <= 0 {
		return Intersection{}, false
	}
	return Intersection{Distance: t, Normal: p.normal}, true
}
