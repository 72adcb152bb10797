package render

import (
	"math"
	"testing"

	"github.com/lightfold/rayscope/colors"
	"github.com/lightfold/rayscope/surfaces"
	"github.com/lightfold/rayscope/vectors"
)

func testScene() *Scene {
	return &Scene{
		Objects: []Object{
			{
				Surface:  surfaces.NewSphere(vectors.Vec3{X: 0, Y: 0, Z: 5}, 0.5),
				Material: flat(colors.Red()),
			},
			{
				Surface:  surfaces.NewPlane(vectors.Vec3{X: 0, Y: 0, Z: 1}, 10),
				Material: flat(colors.White()),
			},
		},
		LightDir:   vectors.Vec3{X: 0, Y: 0, Z: -1},
		Ambient:    1.0,
		Background: colors.Black(),
	}
}

func flat(c colors.Color4) Material {
	return Material{Albedo: c}
}

func TestSceneClosestHitPicksNearestObject(t *testing.T) {
	s := testScene()
	ray := vectors.NewRay(vectors.Zero(), vectors.Vec3{X: 0, Y: 0, Z: 1})

	hit, idx, ok := s.ClosestHit(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if idx != 0 {
		t.Errorf("hit object %d, want the sphere (0)", idx)
	}
	if math.Abs(hit.Distance-4.5) > 1e-12 {
		t.Errorf("distance: got %v, want 4.5", hit.Distance)
	}
}

func TestSceneShadeMissReturnsBackground(t *testing.T) {
	s := testScene()
	ray := vectors.NewRay(vectors.Zero(), vectors.Vec3{X: 0, Y: 1, Z: 0})

	if got := s.Shade(ray); got != s.Background {
		t.Errorf("got %v, want background", got)
	}
}

func TestSceneShadeFlatAmbient(t *testing.T) {
	s := testScene() // Ambient 1.0: shading is the plain albedo
	ray := vectors.NewRay(vectors.Zero(), vectors.Vec3{X: 0, Y: 0, Z: 1})

	if got := s.Shade(ray); got != colors.Red() {
		t.Errorf("got %v, want flat red", got)
	}
}

func TestSceneShadeLambert(t *testing.T) {
	s := &Scene{
		Objects: []Object{{
			Surface:  surfaces.NewPlane(vectors.Vec3{X: 0, Y: 1, Z: 0}, 0),
			Material: flat(colors.White()),
		}},
		LightDir:   vectors.Vec3{X: 0, Y: 1, Z: 0},
		Ambient:    0.2,
		Background: colors.Black(),
	}
	ray := vectors.NewRay(vectors.Vec3{X: 0, Y: 3, Z: 0}, vectors.Vec3{X: 0, Y: -1, Z: 0})

	// Light straight overhead on a white floor: full Lambert term.
	got := s.Shade(ray)
	if math.Abs(got.R-1) > 1e-12 {
		t.Errorf("overhead light: got %v, want full brightness", got)
	}

	// Light from below the floor contributes nothing; ambient floor remains.
	s.LightDir = vectors.Vec3{X: 0, Y: -1, Z: 0}
	got = s.Shade(ray)
	if math.Abs(got.R-0.2) > 1e-12 {
		t.Errorf("backlit: got %v, want ambient 0.2", got)
	}
}

func TestSceneShadeFlipsNormalTowardRay(t *testing.T) {
	s := &Scene{
		Objects: []Object{{
			Surface:  surfaces.NewPlane(vectors.Vec3{X: 0, Y: 1, Z: 0}, 0),
			Material: flat(colors.White()),
		}},
		LightDir:   vectors.Vec3{X: 0, Y: -1, Z: 0},
		Ambient:    0,
		Background: colors.Black(),
	}

	// Viewed from below with the light below too: the shading normal flips
	// to the underside, which faces the light head on.
	ray := vectors.NewRay(vectors.Vec3{X: 0, Y: -3, Z: 0}, vectors.Vec3{X: 0, Y: 1, Z: 0})
	got := s.Shade(ray)
	if math.Abs(got.R-1) > 1e-12 {
		t.Errorf("underside: got %v, want full brightness", got)
	}
}
