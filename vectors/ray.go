package vectors

// Ray is a half-line starting at Origin and extending along Direction,
// parametrized as Origin + t*Direction for t >= 0. Direction does not have
// to be unit length, though normalized directions behave better numerically.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
