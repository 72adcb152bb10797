// Package sun computes the direction of sunlight for a given instant, so
// outdoor scenes can be lit by where the sun actually was.
package sun

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/lightfold/rayscope/vectors"
)

// DirectionECEF returns the unit vector from the Earth's center toward the
// Sun at time t, in Earth-centered Earth-fixed coordinates.
func DirectionECEF(t time.Time) vectors.Vec3 {
	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Step 1: Apparent RA/Dec of the Sun (in radians)
	ra, dec := solar.ApparentEquatorial(jd)

	// Step 2: Unit vector in ECI (Earth-centered inertial)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Step 3: Rotate ECI → ECEF using GMST
	gmst := sidereal.Apparent0UT(jd)
	cosGMST := gmst.Angle().Cos()
	sinGMST := gmst.Angle().Sin()

	xe := x*cosGMST + y*sinGMST
	ye := -x*sinGMST + y*cosGMST
	ze := z

	return vectors.Vec3{X: xe, Y: ye, Z: ze}
}

// DirectionLocal returns the sunlight direction at time t for an observer at
// the given geodetic latitude/longitude (degrees), expressed in the scene
// frame: +X east, +Y up, +Z north. The vector points toward the sun and is
// unit length; a negative Y means the sun is below the horizon.
func DirectionLocal(t time.Time, latDeg, lonDeg float64) vectors.Vec3 {
	s := DirectionECEF(t)

	lat := latDeg * math.Pi / 180.0
	lon := lonDeg * math.Pi / 180.0
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	// ECEF basis of the local tangent frame.
	east := vectors.Vec3{X: -sinLon, Y: cosLon, Z: 0}
	north := vectors.Vec3{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat}
	up := vectors.Vec3{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}

	return vectors.Vec3{
		X: s.Dot(east),
		Y: s.Dot(up),
		Z: s.Dot(north),
	}
}
