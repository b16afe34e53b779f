package gamemath

import "github.com/go-gl/mathgl/mgl64"

// PredictTrajectory samples the closed-form arc
//
//	p(t) = origin + v*t + a*t²/2
//
// at samples+1 uniform steps over horizon seconds. Sampling stops after the
// first point below floorY, so the result is always finite. The returned
// slice is a fresh copy; callers may keep or mutate it.
func PredictTrajectory(origin, velocity, accel mgl64.Vec3, horizon float64, samples int, floorY float64) []mgl64.Vec3 {
	if samples <= 0 || horizon <= 0 {
		return []mgl64.Vec3{origin}
	}

	step := horizon / float64(samples)
	points := make([]mgl64.Vec3, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) * step
		p := origin.Add(velocity.Mul(t)).Add(accel.Mul(0.5 * t * t))
		points = append(points, p)
		if p.Y() < floorY {
			break
		}
	}
	return points
}

// ImpactPoint finds where the sampled path first crosses the plane
// y = targetHeight, interpolating linearly between the bracketing samples.
// The bool is false when no crossing happens within the samples.
func ImpactPoint(points []mgl64.Vec3, targetHeight float64) (mgl64.Vec3, bool) {
	for i := 0; i+1 < len(points); i++ {
		a := points[i].Y() - targetHeight
		b := points[i+1].Y() - targetHeight
		if a == 0 {
			return points[i], true
		}
		if (a > 0) == (b > 0) && b != 0 {
			continue
		}
		t := a / (a - b)
		p := points[i].Add(points[i+1].Sub(points[i]).Mul(t))
		p[1] = targetHeight
		return p, true
	}
	return mgl64.Vec3{}, false
}
