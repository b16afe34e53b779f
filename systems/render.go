package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridSpacing      = 20.0
	canSegments      = 12
	impactMarkerSize = 3.0
)

// DrawWorld renders the field, can, slipper and aim arc as wireframes from
// the holder's eye.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	cam := gamemath.Camera{
		Position:    player.Position,
		Orientation: player.Orientation(),
		FieldOfView: cfg.Camera.FieldOfView,
		Near:        cfg.Camera.Near,
		Width:       float64(screen.Bounds().Dx()),
		Height:      float64(screen.Bounds().Dy()),
	}

	drawField(screen, cam)

	tags.Can.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		if !t.Visible {
			return
		}
		clr := cfg.Yellow
		if components.Can.Get(e).Fallen {
			clr = cfg.Red
		}
		drawCylinder(screen, cam, t.Position, t.Orientation, cfg.Can.Radius, cfg.Can.Height, clr)
	})

	tags.Slipper.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		if !t.Visible {
			return
		}
		drawBox(screen, cam, t.Position, t.Orientation, cfg.Slipper.HalfExtents, cfg.LightBlue)
	})

	if aimEntry, ok := components.Aim.First(ecs.World); ok {
		drawAim(screen, cam, components.Aim.Get(aimEntry))
	}
}

func drawField(screen *ebiten.Image, cam gamemath.Camera) {
	f := cfg.Field
	y := cfg.Physics.GroundY
	for x := f.MinX; x <= f.MaxX; x += gridSpacing {
		drawLine(screen, cam, mgl64.Vec3{x, y, f.MinZ}, mgl64.Vec3{x, y, f.MaxZ}, cfg.Gray)
	}
	for z := f.MinZ; z <= f.MaxZ; z += gridSpacing {
		drawLine(screen, cam, mgl64.Vec3{f.MinX, y, z}, mgl64.Vec3{f.MaxX, y, z}, cfg.Gray)
	}
	drawLine(screen, cam, mgl64.Vec3{f.MinX, y, f.FoulLineZ}, mgl64.Vec3{f.MaxX, y, f.FoulLineZ}, cfg.HUD.FoulColor)
}

func drawCylinder(screen *ebiten.Image, cam gamemath.Camera, pos mgl64.Vec3, rot mgl64.Quat, radius, height float64, clr color.Color) {
	half := height / 2
	var top, bottom [canSegments]mgl64.Vec3
	for i := 0; i < canSegments; i++ {
		a := 2 * math.Pi * float64(i) / canSegments
		x, z := radius*math.Cos(a), radius*math.Sin(a)
		top[i] = pos.Add(rot.Rotate(mgl64.Vec3{x, half, z}))
		bottom[i] = pos.Add(rot.Rotate(mgl64.Vec3{x, -half, z}))
	}
	for i := 0; i < canSegments; i++ {
		j := (i + 1) % canSegments
		drawLine(screen, cam, top[i], top[j], clr)
		drawLine(screen, cam, bottom[i], bottom[j], clr)
		if i%3 == 0 {
			drawLine(screen, cam, top[i], bottom[i], clr)
		}
	}
}

func drawBox(screen *ebiten.Image, cam gamemath.Camera, pos mgl64.Vec3, rot mgl64.Quat, half mgl64.Vec3, clr color.Color) {
	var corners [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		local := mgl64.Vec3{half.X(), half.Y(), half.Z()}
		if i&1 != 0 {
			local[0] = -local[0]
		}
		if i&2 != 0 {
			local[1] = -local[1]
		}
		if i&4 != 0 {
			local[2] = -local[2]
		}
		corners[i] = pos.Add(rot.Rotate(local))
	}
	// Edges join corners that differ in exactly one axis bit
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if j := i | bit; j != i {
				drawLine(screen, cam, corners[i], corners[j], clr)
			}
		}
	}
}

func drawAim(screen *ebiten.Image, cam gamemath.Camera, aim *components.AimData) {
	if !aim.Visible || len(aim.Points) < 2 {
		return
	}
	for i := 1; i < len(aim.Points); i++ {
		drawLine(screen, cam, aim.Points[i-1], aim.Points[i], cfg.BrightOrange)
	}
	if aim.HasImpact {
		p := aim.Impact
		s := impactMarkerSize
		drawLine(screen, cam, p.Add(mgl64.Vec3{-s, 0, 0}), p.Add(mgl64.Vec3{s, 0, 0}), cfg.White)
		drawLine(screen, cam, p.Add(mgl64.Vec3{0, 0, -s}), p.Add(mgl64.Vec3{0, 0, s}), cfg.White)
	}
}

func drawLine(screen *ebiten.Image, cam gamemath.Camera, a, b mgl64.Vec3, clr color.Color) {
	x0, y0, x1, y1, ok := cam.ProjectSegment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}
