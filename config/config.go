package config

import (
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// PhysicsConfig contains rigid-body world configuration values
type PhysicsConfig struct {
	Gravity     mgl64.Vec3
	FixedStep   float64 // seconds per simulation sub-step
	MaxSubSteps int     // cap on catch-up work per frame
	GroundY     float64

	// Sleep
	SleepSpeed float64 // linear and angular speed below which a body gets sleepy
	SleepTime  float64 // seconds a body must stay slow before it sleeps

	// Contact response
	GroundFriction float64 // horizontal velocity fraction removed per grounded second
	TipGain        float64 // angular acceleration pushing a grounded cylinder over its balance point
}

// FieldConfig describes the throwing field layout on the ground plane (X/Z)
type FieldConfig struct {
	FoulLineZ float64 // holder is "in" while its Z is below this
	MinX      float64
	MaxX      float64
	MinZ      float64
	MaxZ      float64
	WallSize  float64 // thickness of the boundary walls in the field space
	CellSize  int     // resolv cell size
}

// CanConfig contains target (can) configuration
type CanConfig struct {
	Position       mgl64.Vec3 // rest position (body center)
	Radius         float64
	Height         float64
	Mass           float64
	LinearDamping  float64
	AngularDamping float64
	Friction       float64
	Restitution    float64
	FallenCos      float64 // world-up Y below this counts as knocked down (cos 60°)
}

// SlipperConfig contains projectile (slipper) configuration
type SlipperConfig struct {
	Mass           float64
	HalfExtents    mgl64.Vec3
	LinearDamping  float64
	AngularDamping float64
	Friction       float64
	Restitution    float64

	// Grip pose relative to the holder frame
	GripOffset   mgl64.Vec3
	GripRotation mgl64.Vec3 // euler XYZ, radians

	PickupRadius float64
}

// ThrowConfig contains release parameters. The spin values are cosmetic but
// fixed so that a pinned seed reproduces the same tumble.
type ThrowConfig struct {
	LaunchSpeed     float64
	TumbleMagnitude float64 // rad/s, randomized on X and Z
	SpinMagnitude   float64 // rad/s, randomized sign on Y
	SpinSeed        uint64  // 0 = seed from time
}

// RoundConfig contains countdown and scoring configuration
type RoundConfig struct {
	Duration         float64       // countdown start value (seconds)
	TickStep         float64       // amount removed per tick
	TickInterval     time.Duration // wall-clock cadence of a tick
	WarningThreshold float64       // display turns to warning below this
}

// PlayerConfig contains holder (first-person player) configuration
type PlayerConfig struct {
	Spawn            mgl64.Vec3
	SpawnYaw         float64
	MoveSpeed        float64 // units per second
	MouseSensitivity float64 // radians per pixel
	MaxPitch         float64
	FootprintSize    float64 // square footprint in the field space
}

// TrajectoryConfig contains aim preview configuration
type TrajectoryConfig struct {
	Horizon      float64 // seconds of flight to predict
	Samples      int
	FloorMargin  float64 // how far below the ground the arc may continue
	ImpactHeight float64
	Enabled      bool
}

// CameraConfig contains projection configuration for the wireframe renderer
type CameraConfig struct {
	FieldOfView float64 // vertical, radians
	Near        float64
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	TextColor      color.RGBA
	WarningColor   color.RGBA
	InZoneColor    color.RGBA
	FoulColor      color.RGBA
	OverlayColor   color.RGBA
	PulseDuration  float32 // seconds per warning pulse
	ScorePopScale  float32
	ScorePopLength float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool // draw body and timer diagnostics
	LogInput bool // log swallowed throw/pickup attempts
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Field FieldConfig
var Can CanConfig
var Slipper SlipperConfig
var Throw ThrowConfig
var Round RoundConfig
var Player PlayerConfig
var Trajectory TrajectoryConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Sky          = color.RGBA{R: 20, G: 28, B: 44, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Tumbang Preso",
	}

	Physics = PhysicsConfig{
		Gravity:     mgl64.Vec3{0, -98, 0},
		FixedStep:   1.0 / 60.0,
		MaxSubSteps: 3,
		GroundY:     0,

		SleepSpeed: 0.5,
		SleepTime:  0.5,

		GroundFriction: 4.0,
		TipGain:        30.0,
	}

	Field = FieldConfig{
		FoulLineZ: -100,
		MinX:      -120,
		MaxX:      120,
		MinZ:      -250,
		MaxZ:      80,
		WallSize:  8,
		CellSize:  8,
	}

	Can = CanConfig{
		Position:       mgl64.Vec3{0, 6, 0},
		Radius:         3,
		Height:         12,
		Mass:           1,
		LinearDamping:  0.3,
		AngularDamping: 0.3,
		Friction:       0.4,
		Restitution:    0.2,
		FallenCos:      0.5,
	}

	Slipper = SlipperConfig{
		Mass:           0.3,
		HalfExtents:    mgl64.Vec3{1.5, 0.4, 3.5},
		LinearDamping:  0.1,
		AngularDamping: 0.1,
		Friction:       0.6,
		Restitution:    0.3,

		GripOffset:   mgl64.Vec3{2.5, -2.5, -6},
		GripRotation: mgl64.Vec3{-0.4, 0.3, 0},

		PickupRadius: 20,
	}

	Throw = ThrowConfig{
		LaunchSpeed:     160,
		TumbleMagnitude: 5,
		SpinMagnitude:   20,
	}

	Round = RoundConfig{
		Duration:         15.0,
		TickStep:         0.1,
		TickInterval:     100 * time.Millisecond,
		WarningThreshold: 5.0,
	}

	Player = PlayerConfig{
		Spawn:            mgl64.Vec3{0, 17, -150},
		SpawnYaw:         math.Pi, // facing +Z, toward the can
		MoveSpeed:        60,
		MouseSensitivity: 0.003,
		MaxPitch:         1.4,
		FootprintSize:    4,
	}

	Trajectory = TrajectoryConfig{
		Horizon:      3.0,
		Samples:      60,
		FloorMargin:  50,
		ImpactHeight: 0,
		Enabled:      true,
	}

	Camera = CameraConfig{
		FieldOfView: 75 * math.Pi / 180,
		Near:        0.5,
	}

	HUD = HUDConfig{
		Margin:         12,
		LineHeight:     18,
		TextColor:      White,
		WarningColor:   LightRed,
		InZoneColor:    BrightGreen,
		FoulColor:      Orange,
		OverlayColor:   BlackOverlay,
		PulseDuration:  0.5,
		ScorePopScale:  1.6,
		ScorePopLength: 0.4,
	}

	Debug = DebugConfig{}
}

// SpaceSize returns the resolv space dimensions covering the field plus
// its boundary walls.
func (f FieldConfig) SpaceSize() (int, int) {
	w := int(f.MaxX-f.MinX+2*f.WallSize) + f.CellSize
	h := int(f.MaxZ-f.MinZ+2*f.WallSize) + f.CellSize
	return w, h
}

// ToSpace maps ground-plane world X/Z to field-space coordinates.
func (f FieldConfig) ToSpace(x, z float64) (float64, float64) {
	return x - f.MinX + f.WallSize, z - f.MinZ + f.WallSize
}

// FromSpace maps field-space coordinates back to world X/Z.
func (f FieldConfig) FromSpace(sx, sy float64) (float64, float64) {
	return sx + f.MinX - f.WallSize, sy + f.MinZ - f.WallSize
}
