package sun

import (
	"math"
	"testing"
	"time"
)

func TestDirectionECEFIsUnit(t *testing.T) {
	times := []string{
		"2024-03-20T12:00:00Z",
		"2024-06-21T00:00:00Z",
		"2024-12-21T18:30:00Z",
	}
	for _, ts := range times {
		when, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			t.Fatal(err)
		}
		d := DirectionECEF(when)
		if math.Abs(d.Norm()-1) > 1e-9 {
			t.Errorf("%s: |d| = %v, want 1", ts, d.Norm())
		}
	}
}

func TestDirectionECEFIsDeterministic(t *testing.T) {
	when, _ := time.Parse(time.RFC3339, "2024-08-08T09:23:00Z")
	if DirectionECEF(when) != DirectionECEF(when) {
		t.Error("same instant should give the same direction")
	}
}

func TestDirectionECEFSolsticeDeclination(t *testing.T) {
	// Around the June solstice the sun stands ~23.4° north.
	when, _ := time.Parse(time.RFC3339, "2024-06-20T21:00:00Z")
	d := DirectionECEF(when)

	decl := math.Asin(d.Z) * 180 / math.Pi
	if decl < 23 || decl > 24 {
		t.Errorf("June solstice declination %.2f°, want ~23.4°", decl)
	}
}

func TestDirectionLocal(t *testing.T) {
	// Equinox, solar noon near the prime meridian: the sun is roughly
	// straight up for an equatorial observer.
	when, _ := time.Parse(time.RFC3339, "2024-03-20T12:00:00Z")
	d := DirectionLocal(when, 0, 0)

	if math.Abs(d.Norm()-1) > 1e-9 {
		t.Errorf("|d| = %v, want 1", d.Norm())
	}
	if d.Y < 0.95 {
		t.Errorf("up component %v, want near 1 at equatorial noon", d.Y)
	}

	// Twelve hours later the sun is under the horizon.
	night := DirectionLocal(when.Add(12*time.Hour), 0, 0)
	if night.Y > 0 {
		t.Errorf("midnight up component %v, want negative", night.Y)
	}
}
