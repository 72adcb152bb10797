package main

import (
	"fmt"
	"math"

	"github.com/lightfold/rayscope/colors"
	"github.com/lightfold/rayscope/render"
	"github.com/lightfold/rayscope/surfaces"
	"github.com/lightfold/rayscope/texture"
	"github.com/lightfold/rayscope/vectors"
)

// defaultFOV matches a 0.64-unit-wide screen half a unit in front of the eye.
var defaultFOV = 2 * math.Atan(0.64) * 180 / math.Pi

// buildScene returns one of the built-in scenes plus a camera that frames it.
// tex is non-nil only when the user supplied a texture file.
func buildScene(name string, tex *texture.Texture) (*render.Scene, render.Camera, error) {
	switch name {
	case "sphere":
		// A single red sphere straight ahead, rendered flat.
		scene := &render.Scene{
			Objects: []render.Object{
				{
					Surface:  surfaces.NewSphere(vectors.Vec3{X: 0, Y: 0, Z: 5}, 0.5),
					Material: render.Material{Albedo: colors.Red()},
				},
			},
			LightDir:   vectors.Vec3{X: 0, Y: 0, Z: -1},
			Ambient:    1.0, // flat shading
			Background: colors.Black(),
		}
		camera := render.NewCamera(vectors.Zero(), vectors.Vec3{X: 0, Y: 0, Z: 1}, defaultFOV)
		return scene, camera, nil

	case "garden":
		gray := colors.New(0.55, 0.55, 0.55, 1)
		scene := &render.Scene{
			Objects: []render.Object{
				{
					Surface:  surfaces.NewPlane(vectors.Vec3{X: 0, Y: 1, Z: 0}, 0),
					Material: render.Material{Albedo: gray},
				},
				{
					Surface:  surfaces.NewSphere(vectors.Vec3{X: 0, Y: 1, Z: 4}, 1),
					Material: render.Material{Albedo: colors.New(0.9, 0.2, 0.15, 1), Texture: tex},
				},
				{
					Surface:  surfaces.NewSphere(vectors.Vec3{X: -2.2, Y: 0.6, Z: 5}, 0.6),
					Material: render.Material{Albedo: colors.New(0.2, 0.45, 0.85, 1)},
				},
				{
					Surface:  surfaces.NewSphere(vectors.Vec3{X: 1.8, Y: 0.4, Z: 3}, 0.4),
					Material: render.Material{Albedo: colors.New(0.95, 0.8, 0.25, 1)},
				},
			},
			Ambient:    0.15,
			Background: colors.New(0.04, 0.05, 0.08, 1),
		}
		camera := render.NewCamera(
			vectors.Vec3{X: 0, Y: 1.4, Z: -3},
			vectors.Vec3{X: 0, Y: 0.8, Z: 4},
			defaultFOV,
		)
		return scene, camera, nil

	case "textured":
		if tex == nil {
			return nil, render.Camera{}, fmt.Errorf("scene %q needs -texture", name)
		}
		scene := &render.Scene{
			Objects: []render.Object{
				{
					Surface:  surfaces.NewSphere(vectors.Vec3{X: 0, Y: 0, Z: 3}, 1),
					Material: render.Material{Texture: tex},
				},
			},
			Ambient:    0.25,
			Background: colors.Black(),
		}
		camera := render.NewCamera(vectors.Zero(), vectors.Vec3{X: 0, Y: 0, Z: 1}, defaultFOV)
		return scene, camera, nil

	default:
		return nil, render.Camera{}, fmt.Errorf("unknown scene %q (have: sphere, garden, textured)", name)
	}
}
