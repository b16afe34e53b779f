package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var gravity = mgl64.Vec3{0, -98, 0}

func TestImpactPointHitsTargetHeight(t *testing.T) {
	origin := mgl64.Vec3{0, 10, 0}
	points := PredictTrajectory(origin, mgl64.Vec3{0, 0, -100}, gravity, 3, 60, -50)

	impact, ok := ImpactPoint(points, 1.5)
	if !ok {
		t.Fatalf("expected an impact point")
	}
	if math.Abs(impact.Y()-1.5) > 1e-9 {
		t.Errorf("impact height = %f, want 1.5", impact.Y())
	}
	if d := HorizontalDistance(origin, impact); d <= 0 {
		t.Errorf("horizontal distance = %f, want > 0", d)
	}
}

func TestImpactDistanceIncreasesWithSpeed(t *testing.T) {
	origin := mgl64.Vec3{0, 10, 0}
	prev := 0.0
	for _, speed := range []float64{25, 50, 100, 150, 200} {
		points := PredictTrajectory(origin, mgl64.Vec3{0, 0, -speed}, gravity, 3, 60, -50)
		impact, ok := ImpactPoint(points, 1.5)
		if !ok {
			t.Fatalf("speed %.0f: expected an impact point", speed)
		}
		d := HorizontalDistance(origin, impact)
		if d <= prev {
			t.Fatalf("speed %.0f: distance %f not greater than %f", speed, d, prev)
		}
		prev = d
	}
}

func TestPredictTrajectoryStopsBelowFloor(t *testing.T) {
	points := PredictTrajectory(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 0, -10}, gravity, 30, 600, -50)
	if len(points) == 601 {
		t.Fatalf("expected early termination, got all %d samples", len(points))
	}
	last := points[len(points)-1]
	if last.Y() >= -50 {
		t.Errorf("last point y = %f, want below floor", last.Y())
	}
	for _, p := range points[:len(points)-1] {
		if p.Y() < -50 {
			t.Fatalf("point %v below floor before the last sample", p)
		}
	}
}

func TestPredictTrajectoryIsRestartable(t *testing.T) {
	origin := mgl64.Vec3{1, 2, 3}
	vel := mgl64.Vec3{4, 5, 6}
	a := PredictTrajectory(origin, vel, gravity, 1, 10, -50)
	b := PredictTrajectory(origin, vel, gravity, 1, 10, -50)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
	if a[0] != origin {
		t.Errorf("first sample = %v, want origin %v", a[0], origin)
	}
}

func TestImpactPointMissing(t *testing.T) {
	tests := []struct {
		name   string
		points []mgl64.Vec3
	}{
		{"empty", nil},
		{"single", []mgl64.Vec3{{0, 10, 0}}},
		{"rising above", []mgl64.Vec3{{0, 10, 0}, {0, 20, 0}, {0, 25, 0}}},
		{"short horizon", PredictTrajectory(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 0, -100}, gravity, 0.1, 5, -50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p, ok := ImpactPoint(tt.points, 1.5); ok {
				t.Errorf("unexpected impact at %v", p)
			}
		})
	}
}

func TestPredictTrajectoryDegenerate(t *testing.T) {
	origin := mgl64.Vec3{0, 1, 0}
	if pts := PredictTrajectory(origin, mgl64.Vec3{1, 0, 0}, gravity, 0, 10, -50); len(pts) != 1 || pts[0] != origin {
		t.Errorf("zero horizon: got %v", pts)
	}
	if pts := PredictTrajectory(origin, mgl64.Vec3{1, 0, 0}, gravity, 1, 0, -50); len(pts) != 1 || pts[0] != origin {
		t.Errorf("zero samples: got %v", pts)
	}
}
