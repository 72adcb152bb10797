package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nfnt/resize"

	"github.com/lightfold/rayscope/render"
	"github.com/lightfold/rayscope/sun"
	"github.com/lightfold/rayscope/texture"
	"github.com/lightfold/rayscope/vectors"
)

type config struct {
	scene             *string
	size, supersample *int
	workers           *int
	fov, tilt, yaw    *float64
	light             *string
	lat, lon          *float64
	timeStr           *string
	texturePath       *string
	out               *string
	thumb             *int
	upload            *string
	showHelp          *bool
}

func defineFlags() config {
	return config{
		scene: flag.String("scene", "sphere", "Scene to render (sphere, garden, textured)"),

		size:        flag.Int("size", 640, "Output image size (width/height in pixels)"),
		supersample: flag.Int("supersample", 3, "Supersampling factor (higher is slower but smoother)"),
		workers:     flag.Int("workers", 0, "Parallel row workers (0 uses all CPUs)"),

		fov:  flag.Float64("fov", 0, "Camera field of view in degrees (0 keeps the scene default)"),
		tilt: flag.Float64("tilt", 0.0, "Camera tilt in degrees"),
		yaw:  flag.Float64("yaw", 0.0, "Camera yaw in degrees"),

		light:   flag.String("light", "", "Light direction as x,y,z (overrides sun position)"),
		lat:     flag.Float64("lat", 47.0, "Observer latitude for sun lighting, in degrees"),
		lon:     flag.Float64("lon", 19.0, "Observer longitude for sun lighting, in degrees"),
		timeStr: flag.String("time", "", "Time in RFC3339 format (e.g., 2025-08-02T15:04:05Z); defaults to now"),

		texturePath: flag.String("texture", "", "Equirectangular texture (TIFF/PNG/JPEG) for textured spheres"),

		out:    flag.String("out", "render.png", "Output PNG file path"),
		thumb:  flag.Int("thumb", 0, "Also write a thumbnail of this width (0 disables)"),
		upload: flag.String("upload", "", "Upload the result to s3://bucket/key after writing it"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `rayscope - analytic ray tracer

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Scene Options", []string{"scene", "texture"})
	printGroup("Camera Options", []string{"fov", "tilt", "yaw"})
	printGroup("Lighting Options", []string{"light", "lat", "lon", "time"})
	printGroup("Rendering Options", []string{"size", "supersample", "workers"})
	printGroup("Output", []string{"out", "thumb", "upload"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-12s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	var tex *texture.Texture
	if *cfg.texturePath != "" {
		t, err := texture.Load(*cfg.texturePath)
		if err != nil {
			log.Fatalf("Failed to load texture: %v", err)
		}
		tex = &t
	}

	scene, camera, err := buildScene(*cfg.scene, tex)
	if err != nil {
		log.Fatal(err)
	}

	if *cfg.fov > 0 {
		camera = render.NewCamera(camera.Position, camera.Position.Add(camera.Forward), *cfg.fov)
	}
	camera = camera.Yawed(*cfg.yaw).Tilted(*cfg.tilt)

	if scene.LightDir == vectors.Zero() || *cfg.light != "" || *cfg.timeStr != "" {
		scene.LightDir, err = resolveLight(cfg)
		if err != nil {
			log.Fatal(err)
		}
	}

	start := time.Now()
	img, err := render.Render(scene, camera, render.Options{
		Width:       *cfg.size,
		Height:      *cfg.size,
		Supersample: *cfg.supersample,
		Workers:     *cfg.workers,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Rendered %s (%dx%d) in %v", *cfg.scene, *cfg.size, *cfg.size, time.Since(start).Round(time.Millisecond))

	if err := render.WritePNG(*cfg.out, img); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}

	if *cfg.thumb > 0 {
		if err := writeThumbnail(*cfg.out, img, uint(*cfg.thumb)); err != nil {
			log.Fatalf("Failed to write thumbnail: %v", err)
		}
	}

	if *cfg.upload != "" {
		if err := uploadPNG(*cfg.upload, *cfg.out); err != nil {
			log.Fatalf("Failed to upload: %v", err)
		}
	}
}

// resolveLight picks the light direction: an explicit -light vector wins,
// otherwise the sun's position at -time for the observer at -lat/-lon.
func resolveLight(cfg config) (vectors.Vec3, error) {
	if *cfg.light != "" {
		return parseVec3(*cfg.light)
	}

	t := time.Now()
	if *cfg.timeStr != "" {
		var err error
		t, err = time.Parse(time.RFC3339, *cfg.timeStr)
		if err != nil {
			return vectors.Vec3{}, fmt.Errorf("invalid time format: %w", err)
		}
	}
	return sun.DirectionLocal(t, *cfg.lat, *cfg.lon), nil
}

func parseVec3(s string) (vectors.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vectors.Vec3{}, fmt.Errorf("light direction must be x,y,z, got %q", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vectors.Vec3{}, fmt.Errorf("light direction component %q: %w", p, err)
		}
		c[i] = v
	}
	v := vectors.Vec3{X: c[0], Y: c[1], Z: c[2]}
	if v == vectors.Zero() {
		return vectors.Vec3{}, fmt.Errorf("light direction must be non-zero")
	}
	return v.Normalize(), nil
}

// writeThumbnail saves a downscaled copy next to the main output.
func writeThumbnail(outPath string, img image.Image, width uint) error {
	thumb := resize.Resize(width, 0, img, resize.Lanczos3)

	ext := ".png"
	base := strings.TrimSuffix(outPath, ext)
	if base == outPath {
		base = outPath + "_thumb"
	} else {
		base += "_thumb"
	}
	return render.WritePNG(base+ext, thumb)
}
