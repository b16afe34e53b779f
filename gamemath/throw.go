package gamemath

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// CalculateLaunchVelocity returns the release velocity along the aim axis.
// A zero-length aim yields zero velocity.
func CalculateLaunchVelocity(aim mgl64.Vec3, speed float64) mgl64.Vec3 {
	return SafeNormalize(aim).Mul(speed)
}

// CalculateThrowSpin returns the cosmetic release spin: a small uniform
// tumble on X and Z and a full-magnitude spin of random sign on Y.
func CalculateThrowSpin(rng *rand.Rand, tumble, spin float64) mgl64.Vec3 {
	sign := 1.0
	if rng.IntN(2) == 0 {
		sign = -1.0
	}
	return mgl64.Vec3{
		(rng.Float64() - 0.5) * tumble,
		sign * spin,
		(rng.Float64() - 0.5) * tumble,
	}
}
