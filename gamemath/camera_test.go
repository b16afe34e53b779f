package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testCamera() Camera {
	return Camera{
		Position:    mgl64.Vec3{0, 0, 0},
		Orientation: mgl64.QuatIdent(),
		FieldOfView: math.Pi / 2,
		Near:        0.5,
		Width:       200,
		Height:      100,
	}
}

func TestProjectCenter(t *testing.T) {
	x, y, ok := testCamera().Project(mgl64.Vec3{0, 0, -10})
	if !ok {
		t.Fatalf("point ahead should project")
	}
	if math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("projected (%f,%f), want screen center (100,50)", x, y)
	}
}

func TestProjectBehind(t *testing.T) {
	if _, _, ok := testCamera().Project(mgl64.Vec3{0, 0, 10}); ok {
		t.Errorf("point behind camera should not project")
	}
}

func TestProjectUpIsScreenUp(t *testing.T) {
	_, y, ok := testCamera().Project(mgl64.Vec3{0, 5, -10})
	if !ok || y >= 50 {
		t.Errorf("point above center should map above screen center, got y=%f ok=%v", y, ok)
	}
}

func TestProjectSegmentClips(t *testing.T) {
	c := testCamera()
	if _, _, _, _, ok := c.ProjectSegment(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 10}); ok {
		t.Errorf("segment fully behind should be rejected")
	}
	x0, y0, x1, y1, ok := c.ProjectSegment(mgl64.Vec3{0, -1, 5}, mgl64.Vec3{0, -1, -10})
	if !ok {
		t.Fatalf("crossing segment should be clipped, not rejected")
	}
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("clipped segment has invalid coordinate: %v", []float64{x0, y0, x1, y1})
		}
	}
}
