package render

import (
	"github.com/lightfold/rayscope/colors"
	"github.com/lightfold/rayscope/surfaces"
	"github.com/lightfold/rayscope/texture"
	"github.com/lightfold/rayscope/vectors"
)

// Material describes how a surface is colored. If Texture is non-nil it is
// sampled as an equirectangular map by the hit normal and wins over Albedo.
type Material struct {
	Albedo  colors.Color4
	Texture *texture.Texture
}

// Object pairs a geometric surface with its material.
type Object struct {
	Surface  surfaces.Surface
	Material Material
}

// Scene is a heterogeneous collection of objects plus the lighting
// environment. It is immutable during rendering and safe for concurrent
// reads.
type Scene struct {
	Objects    []Object
	LightDir   vectors.Vec3 // unit vector pointing toward the light
	Ambient    float64      // base illumination in [0,1]
	Background colors.Color4
}

// ClosestHit queries every object and keeps the minimum positive distance.
// The returned index identifies the hit object; ok is false when the ray
// escapes the scene.
func (s *Scene) ClosestHit(ray vectors.Ray) (hit surfaces.Intersection, idx int, ok bool) {
	for i, obj := range s.Objects {
		h, hitOK := obj.Surface.ClosestIntersection(ray)
		if !hitOK {
			continue
		}
		if !ok || h.Distance < hit.Distance {
			hit, idx, ok = h, i, true
		}
	}
	return hit, idx, ok
}

// Shade traces one ray into the scene and returns its color: flat Lambert
// lighting against the directional light plus an ambient floor. No shadow
// rays, no bounces.
func (s *Scene) Shade(ray vectors.Ray) colors.Color4 {
	hit, idx, ok := s.ClosestHit(ray)
	if !ok {
		return s.Background
	}

	mat := s.Objects[idx].Material
	base := mat.Albedo
	if mat.Texture != nil {
		base = mat.Texture.Sample(hit.Normal)
	}

	// The geometry core reports the stored normal; flip it here so lighting
	// always sees the side the ray actually struck.
	normal := hit.Normal
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Scale(-1)
	}

	lambert := normal.Dot(s.LightDir)
	if lambert < 0 {
		lambert = 0
	}
	shade := s.Ambient + (1.0-s.Ambient)*lambert

	out := base.Scale(shade)
	out.A = base.A
	return out
}
